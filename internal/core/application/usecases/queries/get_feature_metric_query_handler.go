package queries

import (
	"context"

	"orderfeatures/internal/core/domain/model/features"
	"orderfeatures/internal/core/domain/services"
	"orderfeatures/internal/pkg/errs"
)

// GetFeatureMetricQueryHandler serves GetFeatureMetricQuery.
type GetFeatureMetricQueryHandler struct {
	builder TrainingTableBuilder
}

func NewGetFeatureMetricQueryHandler(builder TrainingTableBuilder) GetFeatureMetricQueryHandler {
	return GetFeatureMetricQueryHandler{builder: builder}
}

// Handle computes the requested metric over the current snapshot.
func (h GetFeatureMetricQueryHandler) Handle(
	ctx context.Context,
	query GetFeatureMetricQuery,
) (GetFeatureMetricQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetFeatureMetricQueryResponse{}, err
	}

	p, err := h.builder.Pipeline(ctx)
	if err != nil {
		return GetFeatureMetricQueryResponse{}, err
	}

	columns, rows, err := metricTable(p, query)
	if err != nil {
		return GetFeatureMetricQueryResponse{}, err
	}

	return GetFeatureMetricQueryResponse{
		Metric:  query.Metric(),
		Columns: columns,
		Rows:    rows,
	}, nil
}

func metricTable(p *services.FeaturePipeline, query GetFeatureMetricQuery) ([]string, []map[string]any, error) {
	switch query.Metric() {
	case MetricWaitTime:
		rows, err := p.WaitTime(query.DeliveredOnly())
		return waitTimeColumns, convert(rows, waitTimeRecord), err
	case MetricReviewScore:
		rows, err := p.ReviewScore()
		return reviewColumns, convert(rows, reviewRecord), err
	case MetricNumberOfItems:
		rows, err := p.NumberOfItems()
		return itemColumns, convert(rows, itemRecord), err
	case MetricNumberOfSellers:
		rows, err := p.NumberOfSellers()
		return sellerColumns, convert(rows, sellerRecord), err
	case MetricPriceAndFreight:
		rows, err := p.PriceAndFreight()
		return priceFreightColumns, convert(rows, priceFreightRecord), err
	case MetricDistanceSellerCustomer:
		rows, err := p.DistanceSellerCustomer()
		return distanceColumns, convert(rows, distanceRecord), err
	default:
		return nil, nil, errs.NewValueIsInvalidError("metric")
	}
}

var (
	waitTimeColumns = []string{
		features.ColumnOrderID,
		features.ColumnWaitTime,
		features.ColumnExpectedWaitTime,
		features.ColumnDelayVsExpected,
		features.ColumnOrderStatus,
		features.ColumnOrderPurchaseTimestamp,
	}
	reviewColumns = []string{
		features.ColumnOrderID,
		features.ColumnReviewScore,
		features.ColumnDimIsFiveStar,
		features.ColumnDimIsOneStar,
	}
	itemColumns         = []string{features.ColumnOrderID, features.ColumnNumberOfItems}
	sellerColumns       = []string{features.ColumnOrderID, features.ColumnNumberOfSellers}
	priceFreightColumns = []string{features.ColumnOrderID, features.ColumnPrice, features.ColumnFreightValue}
	distanceColumns     = []string{features.ColumnOrderID, features.ColumnDistanceSellerCustomer}
)

func convert[T any](rows []T, record func(T) map[string]any) []map[string]any {
	out := make([]map[string]any, 0, len(rows))
	for _, r := range rows {
		out = append(out, record(r))
	}
	return out
}

func optional[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}

func waitTimeRecord(r features.WaitTime) map[string]any {
	return map[string]any{
		features.ColumnOrderID:                r.OrderID,
		features.ColumnWaitTime:               optional(r.WaitTime),
		features.ColumnExpectedWaitTime:       optional(r.ExpectedWaitTime),
		features.ColumnDelayVsExpected:        optional(r.DelayVsExpected),
		features.ColumnOrderStatus:            r.OrderStatus,
		features.ColumnOrderPurchaseTimestamp: optional(r.PurchaseTimestamp),
	}
}

func reviewRecord(r features.ReviewScore) map[string]any {
	return map[string]any{
		features.ColumnOrderID:       r.OrderID,
		features.ColumnReviewScore:   r.ReviewScore,
		features.ColumnDimIsFiveStar: r.DimIsFiveStar,
		features.ColumnDimIsOneStar:  r.DimIsOneStar,
	}
}

func itemRecord(r features.ItemCount) map[string]any {
	return map[string]any{features.ColumnOrderID: r.OrderID, features.ColumnNumberOfItems: r.NumberOfItems}
}

func sellerRecord(r features.SellerCount) map[string]any {
	return map[string]any{features.ColumnOrderID: r.OrderID, features.ColumnNumberOfSellers: r.NumberOfSellers}
}

func priceFreightRecord(r features.PriceFreight) map[string]any {
	return map[string]any{
		features.ColumnOrderID:      r.OrderID,
		features.ColumnPrice:        r.Price,
		features.ColumnFreightValue: r.FreightValue,
	}
}

func distanceRecord(r features.Distance) map[string]any {
	return map[string]any{
		features.ColumnOrderID:                r.OrderID,
		features.ColumnDistanceSellerCustomer: r.DistanceSellerCustomer,
	}
}
