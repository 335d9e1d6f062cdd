// Package csvsink writes exported training tables as CSV files.
package csvsink

import (
	"orderfeatures/internal/core/domain/model/features"
)

// TimestampLayout is the layout of order_purchase_timestamp in exported files,
// matching the source data set.
const TimestampLayout = "2006-01-02 15:04:05"

// RowDTO is the CSV shape of one training row.
type RowDTO struct {
	OrderID                string  `dataframe:"order_id,string"`
	WaitTime               float64 `dataframe:"wait_time,float64"`
	ExpectedWaitTime       float64 `dataframe:"expected_wait_time,float64"`
	DelayVsExpected        float64 `dataframe:"delay_vs_expected,float64"`
	OrderStatus            string  `dataframe:"order_status,string"`
	OrderPurchaseTimestamp string  `dataframe:"order_purchase_timestamp,string"`
	ReviewScore            int     `dataframe:"review_score,int"`
	DimIsFiveStar          int     `dataframe:"dim_is_five_star,int"`
	DimIsOneStar           int     `dataframe:"dim_is_one_star,int"`
	NumberOfItems          int     `dataframe:"number_of_items,int"`
	NumberOfSellers        int     `dataframe:"number_of_sellers,int"`
	Price                  float64 `dataframe:"price,float64"`
	FreightValue           float64 `dataframe:"freight_value,float64"`
	DistanceSellerCustomer float64 `dataframe:"distance_seller_customer,float64"`
}

func fromDomain(row features.OrderFeatureRow) RowDTO {
	dto := RowDTO{
		OrderID:                row.OrderID,
		WaitTime:               row.WaitTime,
		ExpectedWaitTime:       row.ExpectedWaitTime,
		DelayVsExpected:        row.DelayVsExpected,
		OrderStatus:            row.OrderStatus,
		OrderPurchaseTimestamp: row.OrderPurchaseTimestamp.Format(TimestampLayout),
		ReviewScore:            row.ReviewScore,
		DimIsFiveStar:          row.DimIsFiveStar,
		DimIsOneStar:           row.DimIsOneStar,
		NumberOfItems:          row.NumberOfItems,
		NumberOfSellers:        row.NumberOfSellers,
		Price:                  row.Price,
		FreightValue:           row.FreightValue,
	}
	if row.DistanceSellerCustomer != nil {
		dto.DistanceSellerCustomer = *row.DistanceSellerCustomer
	}
	return dto
}
