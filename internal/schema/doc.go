// Package schema defines the declaration model consumed by the derivation
// engine, plus the YAML front end that loads declarations from description
// files.
//
// Both front ends (YAML files here, Go packages in internal/analyze) lower
// to the same model:
//   - Decl: declaration kind, ordered members, existing initializers
//   - Member: binding names, optional type, optional default literal,
//     visibility tier
//   - Initializer: ordered (name, type) parameter list
package schema
