// Package plan implements the derivation engine: a pure function from a
// declaration description to a generation plan.
//
// Derivation runs in a fixed order — field extraction, constructor
// reconciliation, lens synthesis, registry synthesis — and preserves
// declaration order throughout, so repeated runs on identical input produce
// identical plans.
package plan
