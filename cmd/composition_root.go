package cmd

import (
	"log/slog"

	httpadapter "orderfeatures/internal/adapters/in/http"
	"orderfeatures/internal/adapters/out/csvsink"
	"orderfeatures/internal/adapters/out/csvsource"
	"orderfeatures/internal/adapters/out/fanout"
	"orderfeatures/internal/adapters/out/kafkasink"
	"orderfeatures/internal/adapters/out/postgres"
	"orderfeatures/internal/core/application/usecases/commands"
	"orderfeatures/internal/core/application/usecases/pipeline"
	"orderfeatures/internal/core/application/usecases/queries"
	"orderfeatures/internal/core/ports"
	"orderfeatures/internal/jobs"
	"orderfeatures/internal/metrics"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	source     *csvsource.Source
	metrics    *metrics.Registry
	builder    *pipeline.Builder
	kafka      *kafkasink.Publisher
	publisher  *fanout.MultiPublisher
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	source := csvsource.NewSource(cfg.DataDir, logger)
	registry := metrics.NewRegistry()

	c := &CompositionRoot{
		cfg:        cfg,
		logger:     logger,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, logger),
		source:     source,
		metrics:    registry,
		builder:    pipeline.NewBuilder(source, registry, logger),
	}

	var targets []ports.TrainingTablePublisher
	if cfg.ExportCSVDir != "" {
		targets = append(targets, csvsink.NewWriter(cfg.ExportCSVDir))
	}
	if cfg.KafkaBrokers != "" {
		c.kafka = kafkasink.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		targets = append(targets, c.kafka)
	}
	c.publisher = fanout.NewMultiPublisher(logger, targets...)

	return c
}

func (c *CompositionRoot) UnitOfWorkFactory() *postgres.GormUnitOfWorkFactory {
	return c.uowFactory
}

func (c *CompositionRoot) Metrics() *metrics.Registry {
	return c.metrics
}

func (c *CompositionRoot) exportUoWFactory() commands.ExportUoWFactory {
	return FuncExportUoWFactory(func() commands.ExportUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateExportTrainingTableCommandHandler() *commands.ExportTrainingTableCommandHandler {
	var publisher ports.TrainingTablePublisher
	if c.publisher.Len() > 0 {
		publisher = c.publisher
	}
	h := commands.NewExportTrainingTableCommandHandler(c.builder, c.exportUoWFactory(), publisher, c.metrics, c.logger)
	return &h
}

func (c *CompositionRoot) CreatePruneExportRunsCommandHandler() *commands.PruneExportRunsCommandHandler {
	h := commands.NewPruneExportRunsCommandHandler(c.exportUoWFactory(), c.logger)
	return &h
}

func (c *CompositionRoot) CreateGetTrainingTableQueryHandler() queries.GetTrainingTableQueryHandler {
	return queries.NewGetTrainingTableQueryHandler(c.builder)
}

func (c *CompositionRoot) CreateGetFeatureMetricQueryHandler() queries.GetFeatureMetricQueryHandler {
	return queries.NewGetFeatureMetricQueryHandler(c.builder)
}

func (c *CompositionRoot) CreateGetExportRunQueryHandler() queries.GetExportRunQueryHandler {
	return queries.NewGetExportRunQueryHandler(c.uowFactory.Create().FeatureRowRepository())
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateExportTrainingTableCommandHandler(),
		c.CreateGetTrainingTableQueryHandler(),
		c.CreateGetFeatureMetricQueryHandler(),
		c.CreateGetExportRunQueryHandler(),
		c.source,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var scheduled []jobs.ScheduledJob
	if c.cfg.ExportEnabled {
		scheduled = append(scheduled, jobs.NewExportJob(
			c.cfg.ExportSchedule,
			c.cfg.ExportDeliveredOnly,
			c.cfg.ExportIncludeDistance,
			c.CreateExportTrainingTableCommandHandler(),
			c.logger,
		))
	}
	if c.cfg.ExportKeepRuns > 0 {
		scheduled = append(scheduled, jobs.NewPruneJob(
			c.cfg.PruneSchedule,
			c.cfg.ExportKeepRuns,
			c.CreatePruneExportRunsCommandHandler(),
			c.logger,
		))
	}
	return jobs.NewJobManager(scheduled...)
}

// Close releases outbound connections.
func (c *CompositionRoot) Close() error {
	if c.kafka != nil {
		return c.kafka.Close()
	}
	return nil
}

type FuncExportUoWFactory func() commands.ExportUoW

func (f FuncExportUoWFactory) Create() commands.ExportUoW {
	return f()
}
