package order

import (
	"strings"

	"orderfeatures/internal/pkg/errs"
)

// Column names of the orders table.
const (
	ColumnOrderID           = "order_id"
	ColumnCustomerID        = "customer_id"
	ColumnStatus            = "order_status"
	ColumnPurchaseTimestamp = "order_purchase_timestamp"
	ColumnDeliveredCustomer = "order_delivered_customer_date"
	ColumnEstimatedDelivery = "order_estimated_delivery_date"
)

// Order is one row of the orders table.
//
// The date columns are kept as the provider delivered them; use
// ParseTimestamp to read them. Missing dates are empty strings.
type Order struct {
	ID                  string
	CustomerID          string
	Status              Status
	RawStatus           string
	PurchaseTimestamp   string
	DeliveredCustomerAt string
	EstimatedDeliveryAt string
}

// NewOrder creates an order row. Order and customer identifiers are required;
// the raw status string is preserved alongside its parsed Status.
func NewOrder(id, customerID, status, purchase, deliveredCustomer, estimatedDelivery string) (Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Order{}, errs.NewValueIsRequiredError(ColumnOrderID)
	}

	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return Order{}, errs.NewValueIsRequiredError(ColumnCustomerID)
	}

	return Order{
		ID:                  id,
		CustomerID:          customerID,
		Status:              ParseStatus(status),
		RawStatus:           status,
		PurchaseTimestamp:   purchase,
		DeliveredCustomerAt: deliveredCustomer,
		EstimatedDeliveryAt: estimatedDelivery,
	}, nil
}
