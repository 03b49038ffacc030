// Package lens provides composable functional lenses over immutable values.
//
// A Lens[S, T] pairs a getter and a setter for a single field T within a
// larger value S. Set never mutates its input; it returns a new S. Lenses
// compose sequentially (Compose) and in parallel over a shared source
// (Concat).
//
// The package also provides a per-source-type field registry: generated code
// registers one typed Field key per public struct field, and Lookup resolves
// a key back to its lens without any runtime type assertion that could fail
// for generated keys.
package lens
