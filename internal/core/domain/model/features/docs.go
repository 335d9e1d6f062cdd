// Package features defines the derived tables produced by the order feature pipeline.
//
// Every metric has its own row type keyed by OrderID. Values that can be missing
// in a metric row (the delivery-time fields of an order that was never delivered)
// are pointers; the assembled OrderFeatureRow only carries complete rows, so its
// fields are plain values except for the optional distance.
package features
