// Package precond enforces the contour core's precondition contract (spec
// §7: "Precondition violations... are programmer bugs and are enforced by
// assertions; they are not recoverable").
//
// It wraps github.com/aurelien-rainone/assertgo the same way the pack's
// navmesh query code (arl-go-detour's detour.nodePool) wraps it: one
// package-local entry point so call sites read as a single assertion
// vocabulary instead of reaching for the third-party import everywhere.
package precond

import "github.com/aurelien-rainone/assertgo"

// Require panics with a formatted message if cond is false. It is used at
// every precondition named in spec §7 — a non-Move first op, a negative
// arc-length distance, an arc sweep wider than 360 degrees, a measure
// handle used against the wrong contour variant — all of which are
// programmer errors, never recoverable at runtime.
func Require(cond bool, format string, args ...any) {
	assert.True(cond, format, args...)
}
