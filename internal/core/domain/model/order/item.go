package order

import (
	"math"
	"strings"

	"orderfeatures/internal/pkg/errs"
)

// Column names of the order_items table.
const (
	ColumnItemSeq      = "order_item_id"
	ColumnProductID    = "product_id"
	ColumnSellerID     = "seller_id"
	ColumnPrice        = "price"
	ColumnFreightValue = "freight_value"
)

// Item is one line of an order. An order has one Item row per unit sold, so
// three units of the same product are three rows with increasing Seq.
type Item struct {
	OrderID      string
	Seq          int
	ProductID    string
	SellerID     string
	Price        float64
	FreightValue float64
}

// NewItem creates an order line. Price and freight must be finite and non-negative.
func NewItem(orderID string, seq int, productID, sellerID string, price, freight float64) (Item, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return Item{}, errs.NewValueIsRequiredError(ColumnOrderID)
	}

	sellerID = strings.TrimSpace(sellerID)
	if sellerID == "" {
		return Item{}, errs.NewValueIsRequiredError(ColumnSellerID)
	}

	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return Item{}, errs.NewValueIsOutOfRangeError(ColumnPrice, price, 0, math.Inf(1))
	}

	if math.IsNaN(freight) || math.IsInf(freight, 0) || freight < 0 {
		return Item{}, errs.NewValueIsOutOfRangeError(ColumnFreightValue, freight, 0, math.Inf(1))
	}

	return Item{
		OrderID:      orderID,
		Seq:          seq,
		ProductID:    strings.TrimSpace(productID),
		SellerID:     sellerID,
		Price:        price,
		FreightValue: freight,
	}, nil
}
