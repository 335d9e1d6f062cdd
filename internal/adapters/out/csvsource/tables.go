package csvsource

import (
	"errors"

	"orderfeatures/internal/core/domain/model/customer"
	"orderfeatures/internal/core/domain/model/kernel"
	"orderfeatures/internal/core/domain/model/order"
	"orderfeatures/internal/core/domain/model/seller"
	"orderfeatures/internal/pkg/errs"
)

func parseOrders(f frame) ([]order.Order, error) {
	if err := f.require(
		order.ColumnOrderID,
		order.ColumnCustomerID,
		order.ColumnStatus,
		order.ColumnPurchaseTimestamp,
		order.ColumnDeliveredCustomer,
		order.ColumnEstimatedDelivery,
	); err != nil {
		return nil, err
	}

	ids := f.strings(order.ColumnOrderID)
	customers := f.strings(order.ColumnCustomerID)
	statuses := f.strings(order.ColumnStatus)
	purchased := f.strings(order.ColumnPurchaseTimestamp)
	delivered := f.strings(order.ColumnDeliveredCustomer)
	estimated := f.strings(order.ColumnEstimatedDelivery)

	orders := make([]order.Order, 0, f.rows())
	for i := range f.rows() {
		o, err := order.NewOrder(ids[i], customers[i], statuses[i], purchased[i], delivered[i], estimated[i])
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(f.rowParam(i), err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func parseOrderItems(f frame) ([]order.Item, error) {
	if err := f.require(
		order.ColumnOrderID,
		order.ColumnItemSeq,
		order.ColumnProductID,
		order.ColumnSellerID,
		order.ColumnPrice,
		order.ColumnFreightValue,
	); err != nil {
		return nil, err
	}

	seqs, seqErr := f.ints(order.ColumnItemSeq)
	prices, priceErr := f.floats(order.ColumnPrice)
	freights, freightErr := f.floats(order.ColumnFreightValue)
	if err := errors.Join(seqErr, priceErr, freightErr); err != nil {
		return nil, err
	}

	ids := f.strings(order.ColumnOrderID)
	products := f.strings(order.ColumnProductID)
	sellers := f.strings(order.ColumnSellerID)

	items := make([]order.Item, 0, f.rows())
	for i := range f.rows() {
		item, err := order.NewItem(ids[i], seqs[i], products[i], sellers[i], prices[i], freights[i])
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(f.rowParam(i), err)
		}
		items = append(items, item)
	}
	return items, nil
}

func parseOrderReviews(f frame) ([]order.Review, error) {
	if err := f.require(order.ColumnReviewID, order.ColumnOrderID, order.ColumnReviewScore); err != nil {
		return nil, err
	}

	scores, err := f.ints(order.ColumnReviewScore)
	if err != nil {
		return nil, err
	}

	ids := f.strings(order.ColumnReviewID)
	orderIDs := f.strings(order.ColumnOrderID)

	reviews := make([]order.Review, 0, f.rows())
	for i := range f.rows() {
		r, rowErr := order.NewReview(ids[i], orderIDs[i], scores[i])
		if rowErr != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(f.rowParam(i), rowErr)
		}
		reviews = append(reviews, r)
	}
	return reviews, nil
}

func parseSellers(f frame) ([]seller.Seller, error) {
	if err := f.require(seller.ColumnID, seller.ColumnZipCodePrefix); err != nil {
		return nil, err
	}

	ids := f.strings(seller.ColumnID)
	zips := f.strings(seller.ColumnZipCodePrefix)
	cities := f.optionalStrings(seller.ColumnCity)
	states := f.optionalStrings(seller.ColumnState)

	sellers := make([]seller.Seller, 0, f.rows())
	for i := range f.rows() {
		s, err := seller.NewSeller(ids[i], zips[i], cities[i], states[i])
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(f.rowParam(i), err)
		}
		sellers = append(sellers, s)
	}
	return sellers, nil
}

func parseCustomers(f frame) ([]customer.Customer, error) {
	if err := f.require(customer.ColumnID, customer.ColumnZipCodePrefix); err != nil {
		return nil, err
	}

	ids := f.strings(customer.ColumnID)
	zips := f.strings(customer.ColumnZipCodePrefix)
	uniqueIDs := f.optionalStrings(customer.ColumnUniqueID)
	cities := f.optionalStrings(customer.ColumnCity)
	states := f.optionalStrings(customer.ColumnState)

	customers := make([]customer.Customer, 0, f.rows())
	for i := range f.rows() {
		c, err := customer.NewCustomer(ids[i], uniqueIDs[i], zips[i], cities[i], states[i])
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(f.rowParam(i), err)
		}
		customers = append(customers, c)
	}
	return customers, nil
}

// Column names of the geolocation table.
const (
	columnGeoZipCodePrefix = "geolocation_zip_code_prefix"
	columnGeoLat           = "geolocation_lat"
	columnGeoLng           = "geolocation_lng"
)

// parseGeolocation keeps row order, which decides the representative sample
// of each zip code prefix. Samples with out-of-range coordinates are skipped.
func parseGeolocation(f frame) ([]kernel.Geolocation, int, error) {
	if err := f.require(columnGeoZipCodePrefix, columnGeoLat, columnGeoLng); err != nil {
		return nil, 0, err
	}

	lats, latErr := f.floats(columnGeoLat)
	lngs, lngErr := f.floats(columnGeoLng)
	if err := errors.Join(latErr, lngErr); err != nil {
		return nil, 0, err
	}

	zips := f.strings(columnGeoZipCodePrefix)

	samples := make([]kernel.Geolocation, 0, f.rows())
	skipped := 0
	for i := range f.rows() {
		zip, err := kernel.NewZipCodePrefix(zips[i])
		if err != nil {
			return nil, 0, errs.NewValueIsInvalidErrorWithCause(f.rowParam(i), err)
		}

		point, err := kernel.NewGeoPoint(lats[i], lngs[i])
		if errors.Is(err, errs.ErrValueIsOutOfRange) {
			skipped++
			continue
		}
		if err != nil {
			return nil, 0, err
		}

		samples = append(samples, kernel.Geolocation{ZipCodePrefix: zip, Point: point})
	}
	return samples, skipped, nil
}
