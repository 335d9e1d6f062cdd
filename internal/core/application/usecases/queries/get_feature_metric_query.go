package queries

import (
	"errors"
	"slices"
	"strings"

	"orderfeatures/internal/pkg/errs"
	"orderfeatures/internal/pkg/guard"
)

// Metric names accepted by GetFeatureMetricQuery.
const (
	MetricWaitTime               = "wait_time"
	MetricReviewScore            = "review_score"
	MetricNumberOfItems          = "number_of_items"
	MetricNumberOfSellers        = "number_of_sellers"
	MetricPriceAndFreight        = "price_and_freight"
	MetricDistanceSellerCustomer = "distance_seller_customer"
)

var ErrGetFeatureMetricQueryIsNotConstructed = errors.New(
	"GetFeatureMetricQuery must be created via NewGetFeatureMetricQuery constructor",
)

// MetricNames returns every metric name in pipeline order.
func MetricNames() []string {
	return []string{
		MetricWaitTime,
		MetricReviewScore,
		MetricNumberOfItems,
		MetricNumberOfSellers,
		MetricPriceAndFreight,
		MetricDistanceSellerCustomer,
	}
}

// GetFeatureMetricQuery requests a single metric table. deliveredOnly only
// affects the wait_time metric.
type GetFeatureMetricQuery struct {
	metric        string
	deliveredOnly bool

	guard guard.ConstructorGuard
}

// NewGetFeatureMetricQuery validates the metric name.
func NewGetFeatureMetricQuery(metric string, deliveredOnly bool) (GetFeatureMetricQuery, error) {
	metric = strings.ToLower(strings.TrimSpace(metric))
	if metric == "" {
		return GetFeatureMetricQuery{}, errs.NewValueIsRequiredError("metric")
	}
	if !slices.Contains(MetricNames(), metric) {
		return GetFeatureMetricQuery{}, errs.NewValueIsInvalidError("metric")
	}

	return GetFeatureMetricQuery{
		metric:        metric,
		deliveredOnly: deliveredOnly,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetFeatureMetricQuery) Validate() error {
	return q.guard.Validate(ErrGetFeatureMetricQueryIsNotConstructed)
}

func (q GetFeatureMetricQuery) Metric() string {
	return q.metric
}

func (q GetFeatureMetricQuery) DeliveredOnly() bool {
	return q.deliveredOnly
}

// GetFeatureMetricQueryResponse is a metric table in generic column form.
// Missing values are nil.
type GetFeatureMetricQueryResponse struct {
	Metric  string
	Columns []string
	Rows    []map[string]any
}
