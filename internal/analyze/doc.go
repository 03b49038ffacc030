// Package analyze loads Go packages and lowers their named types into the
// declaration model consumed by the derivation engine.
//
// It uses golang.org/x/tools/go/packages with go/types to extract struct
// fields (name, rendered type, visibility) in declaration order, and to
// collect package-level constructor functions as candidate initializers for
// reconciliation.
//
// Visibility mapping: exported fields are public, unexported fields are
// private, and the struct tag `lens:"internal"` demotes an exported field
// to internal. A field tagged `lens:"-"` is left out entirely.
package analyze
