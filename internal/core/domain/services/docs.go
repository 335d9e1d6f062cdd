// Package services provides the domain services of the order feature model.
//
// The package includes:
//   - FeaturePipeline: derives per-order metrics from a raw table snapshot and
//     assembles them into the training table
//
// Every metric is a pure function of the snapshot. The pipeline reads the raw
// tables, never writes them, and returns freshly allocated result slices, so
// independent metrics can run concurrently against the same snapshot.
package services
