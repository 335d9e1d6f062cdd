package http

import (
	"context"
	"net/http"

	"orderfeatures/internal/core/application/usecases/commands"
	"orderfeatures/internal/core/application/usecases/queries"
	"orderfeatures/internal/core/domain/model/features"
	"orderfeatures/internal/generated/servers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Use case contracts consumed by the HTTP server.
type (
	TrainingTableQueryHandler interface {
		Handle(ctx context.Context, query queries.GetTrainingTableQuery) (features.TrainingTable, error)
	}

	FeatureMetricQueryHandler interface {
		Handle(ctx context.Context, query queries.GetFeatureMetricQuery) (queries.GetFeatureMetricQueryResponse, error)
	}

	ExportRunQueryHandler interface {
		Handle(ctx context.Context, query queries.GetExportRunQuery) (features.ExportRun, error)
	}

	ExportCommandHandler interface {
		Handle(ctx context.Context, cmd commands.ExportTrainingTableCommand) (uuid.UUID, error)
	}

	Pinger interface {
		Ping() string
	}
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	exportHandler ExportCommandHandler

	// Query handlers
	trainingTableHandler TrainingTableQueryHandler
	featureMetricHandler FeatureMetricQueryHandler
	exportRunHandler     ExportRunQueryHandler

	pinger Pinger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	exportHandler ExportCommandHandler,
	trainingTableHandler TrainingTableQueryHandler,
	featureMetricHandler FeatureMetricQueryHandler,
	exportRunHandler ExportRunQueryHandler,
	pinger Pinger,
) *Server {
	return &Server{
		exportHandler:        exportHandler,
		trainingTableHandler: trainingTableHandler,
		featureMetricHandler: featureMetricHandler,
		exportRunHandler:     exportRunHandler,
		pinger:               pinger,
	}
}

// Ping handles GET /api/v1/ping.
//
//	@Summary	Raw table provider liveness check
//	@Tags		health
//	@Produce	plain
//	@Success	200	{string}	string
//	@Router		/ping [get]
func (s *Server) Ping(ctx echo.Context) error {
	return ctx.String(http.StatusOK, s.pinger.Ping())
}

// GetTrainingTable handles GET /api/v1/training-table.
//
//	@Summary	Build the training table from the current raw tables
//	@Tags		features
//	@Produce	json
//	@Param		delivered_only		query		bool	false	"Delivered orders only"	default(true)
//	@Param		include_distance	query		bool	false	"Add seller-customer distance"
//	@Success	200					{object}	servers.TrainingTable
//	@Failure	500					{object}	servers.Error
//	@Router		/training-table [get]
func (s *Server) GetTrainingTable(ctx echo.Context, params servers.GetTrainingTableParams) error {
	query := queries.NewGetTrainingTableQuery(
		boolOr(params.DeliveredOnly, true),
		boolOr(params.IncludeDistance, false),
	)

	table, err := s.trainingTableHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err, "Failed to build training table")
	}

	return ctx.JSON(http.StatusOK, toTrainingTable(table))
}

// GetFeatureMetric handles GET /api/v1/metrics/{metric}.
//
//	@Summary	Compute one feature metric table
//	@Tags		features
//	@Produce	json
//	@Param		metric			path		string	true	"Metric name"
//	@Param		delivered_only	query		bool	false	"Delivered orders only (wait_time)"	default(true)
//	@Success	200				{object}	servers.MetricTable
//	@Failure	400				{object}	servers.Error
//	@Router		/metrics/{metric} [get]
func (s *Server) GetFeatureMetric(
	ctx echo.Context,
	metric servers.GetFeatureMetricParamsMetric,
	params servers.GetFeatureMetricParams,
) error {
	query, err := queries.NewGetFeatureMetricQuery(string(metric), boolOr(params.DeliveredOnly, true))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid metric: " + err.Error(),
		})
	}

	resp, err := s.featureMetricHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err, "Failed to compute metric")
	}

	return ctx.JSON(http.StatusOK, servers.MetricTable{
		Metric:  resp.Metric,
		Columns: resp.Columns,
		Rows:    resp.Rows,
	})
}

// CreateExport handles POST /api/v1/exports.
//
//	@Summary	Build, store and publish the training table
//	@Tags		exports
//	@Produce	json
//	@Param		delivered_only		query		bool	false	"Delivered orders only"	default(true)
//	@Param		include_distance	query		bool	false	"Add seller-customer distance"
//	@Success	201					{object}	servers.ExportCreated
//	@Failure	500					{object}	servers.Error
//	@Router		/exports [post]
func (s *Server) CreateExport(ctx echo.Context, params servers.CreateExportParams) error {
	cmd := commands.NewExportTrainingTableCommand(
		boolOr(params.DeliveredOnly, true),
		boolOr(params.IncludeDistance, false),
	)

	runID, err := s.exportHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return handlerError(ctx, err, "Failed to export training table")
	}

	return ctx.JSON(http.StatusCreated, servers.ExportCreated{RunId: runID})
}

// GetExport handles GET /api/v1/exports/{runId}.
//
//	@Summary	Load a stored export run
//	@Tags		exports
//	@Produce	json
//	@Param		runId	path		string	true	"Export run id"	format(uuid)
//	@Success	200		{object}	servers.ExportRun
//	@Failure	404		{object}	servers.Error
//	@Router		/exports/{runId} [get]
func (s *Server) GetExport(ctx echo.Context, runID openapi_types.UUID) error {
	query, err := queries.NewGetExportRunQuery(runID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid run id: " + err.Error(),
		})
	}

	run, err := s.exportRunHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err, "Failed to load export run")
	}

	return ctx.JSON(http.StatusOK, servers.ExportRun{
		RunId:         run.ID,
		CreatedAt:     run.CreatedAt,
		DeliveredOnly: run.DeliveredOnly,
		Table:         toTrainingTable(run.Table),
	})
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
