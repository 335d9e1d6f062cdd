package ports

import (
	"time"

	"orderfeatures/internal/core/domain/model/features"
)

// PipelineMetrics records pipeline and export activity.
type PipelineMetrics interface {
	ObserveBuild(stats features.BuildStats, elapsed time.Duration, err error)
	ObserveExport(rows int, err error)
}
