package features

// Output column names, shared by every export format.
const (
	ColumnOrderID                = "order_id"
	ColumnWaitTime               = "wait_time"
	ColumnExpectedWaitTime       = "expected_wait_time"
	ColumnDelayVsExpected        = "delay_vs_expected"
	ColumnOrderStatus            = "order_status"
	ColumnOrderPurchaseTimestamp = "order_purchase_timestamp"
	ColumnReviewScore            = "review_score"
	ColumnDimIsFiveStar          = "dim_is_five_star"
	ColumnDimIsOneStar           = "dim_is_one_star"
	ColumnNumberOfItems          = "number_of_items"
	ColumnNumberOfSellers        = "number_of_sellers"
	ColumnPrice                  = "price"
	ColumnFreightValue           = "freight_value"
	ColumnDistanceSellerCustomer = "distance_seller_customer"
)

// TrainingColumns returns the training table columns in output order.
func TrainingColumns(includeDistance bool) []string {
	columns := []string{
		ColumnOrderID,
		ColumnWaitTime,
		ColumnExpectedWaitTime,
		ColumnDelayVsExpected,
		ColumnOrderStatus,
		ColumnOrderPurchaseTimestamp,
		ColumnReviewScore,
		ColumnDimIsFiveStar,
		ColumnDimIsOneStar,
		ColumnNumberOfItems,
		ColumnNumberOfSellers,
		ColumnPrice,
		ColumnFreightValue,
	}
	if includeDistance {
		columns = append(columns, ColumnDistanceSellerCustomer)
	}
	return columns
}
