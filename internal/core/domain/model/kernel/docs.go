// Package kernel contains the shared value objects of the brokerage domain:
// UUID identifiers, business numbers, the acting-party capability object, and
// passport data.
//
// Value objects in this package are immutable, validated on construction, and
// safe for concurrent use. Aggregates in the sibling packages build on them
// to keep their own invariants small and local.
package kernel
