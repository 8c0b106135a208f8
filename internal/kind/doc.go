// Package kind describes the integer types that take part in truncation and
// decides which ordered (source, destination) pairs are truncations.
//
// Both the generated per-pair API and the generic API consult this rule.
package kind
