// Package diagnostic defines structured author-facing messages produced by
// the derivation pipeline.
//
// Derivation never aborts mid-declaration: stages accumulate diagnostics and
// the caller decides (via HasErrors) whether any output may be written.
package diagnostic
