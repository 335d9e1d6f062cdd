package dataset

import (
	"errors"

	"orderfeatures/internal/core/domain/model/customer"
	"orderfeatures/internal/core/domain/model/kernel"
	"orderfeatures/internal/core/domain/model/order"
	"orderfeatures/internal/core/domain/model/seller"
	"orderfeatures/internal/pkg/errs"
	"orderfeatures/internal/pkg/guard"
)

// Logical table names.
const (
	TableOrders       = "orders"
	TableOrderItems   = "order_items"
	TableOrderReviews = "order_reviews"
	TableSellers      = "sellers"
	TableCustomers    = "customers"
	TableGeolocation  = "geolocation"
)

// TableNames lists the tables every snapshot must carry, in load order.
func TableNames() []string {
	return []string{
		TableOrders,
		TableOrderItems,
		TableOrderReviews,
		TableSellers,
		TableCustomers,
		TableGeolocation,
	}
}

var ErrSnapshotIsNotConstructed = errors.New("Snapshot must be created via NewSnapshot constructor")

// Tables is the raw provider output. A nil slice means the table was not
// supplied; an empty non-nil slice is a table without rows.
type Tables struct {
	Orders       []order.Order
	OrderItems   []order.Item
	OrderReviews []order.Review
	Sellers      []seller.Seller
	Customers    []customer.Customer
	Geolocation  []kernel.Geolocation
}

// Snapshot is an immutable view over a complete set of raw tables.
// Accessors return the underlying slices; callers must treat them as read-only.
type Snapshot struct {
	tables Tables
	guard  guard.ConstructorGuard
}

// NewSnapshot checks that every table is present and wraps them.
// All missing tables are reported together.
func NewSnapshot(tables Tables) (Snapshot, error) {
	var missing []error
	check := func(name string, present bool) {
		if !present {
			missing = append(missing, errs.NewMissingTableError(name))
		}
	}

	check(TableOrders, tables.Orders != nil)
	check(TableOrderItems, tables.OrderItems != nil)
	check(TableOrderReviews, tables.OrderReviews != nil)
	check(TableSellers, tables.Sellers != nil)
	check(TableCustomers, tables.Customers != nil)
	check(TableGeolocation, tables.Geolocation != nil)

	if err := errors.Join(missing...); err != nil {
		return Snapshot{}, err
	}

	return Snapshot{tables: tables, guard: guard.NewConstructorGuard()}, nil
}

// Validate reports whether the snapshot was built by NewSnapshot.
func (s Snapshot) Validate() error {
	return s.guard.Validate(ErrSnapshotIsNotConstructed)
}

func (s Snapshot) Orders() []order.Order {
	return s.tables.Orders
}

func (s Snapshot) OrderItems() []order.Item {
	return s.tables.OrderItems
}

func (s Snapshot) OrderReviews() []order.Review {
	return s.tables.OrderReviews
}

func (s Snapshot) Sellers() []seller.Seller {
	return s.tables.Sellers
}

func (s Snapshot) Customers() []customer.Customer {
	return s.tables.Customers
}

func (s Snapshot) Geolocation() []kernel.Geolocation {
	return s.tables.Geolocation
}

// RowCounts returns the number of rows per table name.
func (s Snapshot) RowCounts() map[string]int {
	return map[string]int{
		TableOrders:       len(s.tables.Orders),
		TableOrderItems:   len(s.tables.OrderItems),
		TableOrderReviews: len(s.tables.OrderReviews),
		TableSellers:      len(s.tables.Sellers),
		TableCustomers:    len(s.tables.Customers),
		TableGeolocation:  len(s.tables.Geolocation),
	}
}
