// Package protocol owns the routing wire contract and parsing primitives.
//
// Ownership boundary:
// - request line grammar (ROUTE / CONTEXT / CMD / ARG / ENV / END)
// - environment filtering for forwarded requests
// - response status parsing
package protocol
