// Package dataset defines the typed boundary between the raw table provider and
// the feature pipeline.
//
// A Snapshot holds one slice per logical table of the e-commerce data set. It is
// built once by the provider and then only read: metric computations borrow it,
// never modify it, and allocate their own result tables. Table presence is checked
// when the snapshot is built, so a missing table fails fast with a MissingTable
// error instead of surfacing in the middle of a computation.
package dataset
