// Package order provides the order-side rows of the e-commerce data set: the Order
// header, its line Items and customer Reviews, plus the Status categorical and the
// timestamp parsing rules used by the delivery-time metric.
//
// Rows are read-only snapshots produced by the raw table provider. Constructors only
// check what the column semantics imply (identifiers present, amounts non-negative,
// review score within [1, 5]); raw timestamps are kept verbatim and parsed on demand
// so that a malformed value surfaces as an InvalidTimestamp error where it is used.
package order
