// Package gen renders generation plans into formatted Go source files.
//
// Each plan produces one file in the declaring package, emitting in fixed
// order: the typed field-lookup accessor, the canonical constructor (unless
// an existing initializer was reconciled away), the lens namespace, the
// field keys, and the registry. Output is deterministic: byte-identical
// input plans yield byte-identical files.
package gen
