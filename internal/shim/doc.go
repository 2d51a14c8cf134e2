// Package shim fronts the process-creation primitives. Each adapter keeps the
// contract of the primitive it replaces for callers unaware of interception,
// inserting the routing decision between argument normalization and the real
// call.
//
// Ownership boundary:
// - capability bundle holding the real primitives
// - entry-point adapters (execve, execvp, execl, execlp, system, popen)
// - PATH resolution and the scoped environment scrub for popen
package shim
