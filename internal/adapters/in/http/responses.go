package http

import (
	"context"
	"errors"
	"net/http"

	"orderfeatures/internal/core/domain/model/features"
	"orderfeatures/internal/generated/servers"
	"orderfeatures/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// handlerError maps a use case failure onto an HTTP status.
func handlerError(ctx echo.Context, err error, message string) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrMissingTable), errors.Is(err, errs.ErrMissingColumn):
		code = http.StatusServiceUnavailable
		message = "Raw data set is incomplete: " + err.Error()
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		code = http.StatusServiceUnavailable
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}

func toTrainingTable(table features.TrainingTable) servers.TrainingTable {
	rows := make([]servers.TrainingRow, len(table.Rows))
	for i, r := range table.Rows {
		rows[i] = servers.TrainingRow{
			OrderId:                r.OrderID,
			WaitTime:               r.WaitTime,
			ExpectedWaitTime:       r.ExpectedWaitTime,
			DelayVsExpected:        r.DelayVsExpected,
			OrderStatus:            r.OrderStatus,
			OrderPurchaseTimestamp: r.OrderPurchaseTimestamp,
			ReviewScore:            r.ReviewScore,
			DimIsFiveStar:          r.DimIsFiveStar,
			DimIsOneStar:           r.DimIsOneStar,
			NumberOfItems:          r.NumberOfItems,
			NumberOfSellers:        r.NumberOfSellers,
			Price:                  r.Price,
			FreightValue:           r.FreightValue,
		}
		if table.IncludeDistance {
			rows[i].DistanceSellerCustomer = r.DistanceSellerCustomer
		}
	}

	stats := table.Stats
	return servers.TrainingTable{
		Columns: table.Columns(),
		Rows:    rows,
		Stats: servers.BuildStats{
			Orders:             stats.Orders,
			InvalidTimestamps:  stats.InvalidTimestamps,
			IncompleteGeocodes: stats.IncompleteGeocodes,
			DroppedRows:        stats.DroppedRows,
			Rows:               stats.Rows,
		},
	}
}
