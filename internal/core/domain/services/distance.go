package services

import (
	"errors"

	"orderfeatures/internal/core/domain/model/features"
	"orderfeatures/internal/core/domain/model/kernel"
	"orderfeatures/internal/pkg/errs"
)

// orderParty identifies one seller-customer pair of an order.
type orderParty struct {
	orderID    string
	customerID string
	sellerID   string
}

type distanceAcc struct {
	sum float64
	n   int
}

// DistanceSellerCustomer computes the mean great-circle distance in km between an
// order's customer and each of its distinct sellers, sorted by order id.
//
// Zip code prefixes are resolved through the geolocation table deduplicated
// first-seen. Pairs where either side has no geocode are excluded rather than
// counted as zero; an order left without pairs has no row.
func (p *FeaturePipeline) DistanceSellerCustomer() ([]features.Distance, error) {
	rows, _, err := p.distance()
	return rows, err
}

func (p *FeaturePipeline) distance() ([]features.Distance, int, error) {
	index := kernel.NewGeocodeIndex(p.snapshot.Geolocation())
	p.logger.Debug("geocode index built",
		"samples", len(p.snapshot.Geolocation()),
		"prefixes", index.Len(),
	)

	sellerZip := make(map[string]kernel.ZipCodePrefix, len(p.snapshot.Sellers()))
	for _, s := range p.snapshot.Sellers() {
		if _, ok := sellerZip[s.ID]; !ok {
			sellerZip[s.ID] = s.ZipCodePrefix
		}
	}

	customerZip := make(map[string]kernel.ZipCodePrefix, len(p.snapshot.Customers()))
	for _, c := range p.snapshot.Customers() {
		if _, ok := customerZip[c.ID]; !ok {
			customerZip[c.ID] = c.ZipCodePrefix
		}
	}

	orderCustomer := make(map[string]string, len(p.snapshot.Orders()))
	for _, o := range p.snapshot.Orders() {
		if _, ok := orderCustomer[o.ID]; !ok {
			orderCustomer[o.ID] = o.CustomerID
		}
	}

	seen := make(map[orderParty]struct{})
	acc := make(map[string]distanceAcc)
	incomplete := 0

	for _, item := range p.snapshot.OrderItems() {
		customerID, ok := orderCustomer[item.OrderID]
		if !ok {
			continue
		}
		cZip, ok := customerZip[customerID]
		if !ok {
			continue
		}
		sZip, ok := sellerZip[item.SellerID]
		if !ok {
			continue
		}

		party := orderParty{orderID: item.OrderID, customerID: customerID, sellerID: item.SellerID}
		if _, dup := seen[party]; dup {
			continue
		}
		seen[party] = struct{}{}

		km, err := pairDistance(index, sZip, cZip)
		if errors.Is(err, errs.ErrIncompleteGeocode) {
			incomplete++
			continue
		}
		if err != nil {
			return nil, 0, err
		}

		a := acc[item.OrderID]
		a.sum += km
		a.n++
		acc[item.OrderID] = a
	}

	if incomplete > 0 {
		p.logger.Info("excluded seller-customer pairs without geocode", "count", incomplete)
	}

	rows := make([]features.Distance, 0, len(acc))
	for _, id := range sortedKeys(acc) {
		a := acc[id]
		rows = append(rows, features.Distance{OrderID: id, DistanceSellerCustomer: a.sum / float64(a.n)})
	}

	return rows, incomplete, nil
}

func pairDistance(index kernel.GeocodeIndex, sellerZip, customerZip kernel.ZipCodePrefix) (float64, error) {
	sellerPoint, sellerErr := index.Resolve(sellerZip)
	customerPoint, customerErr := index.Resolve(customerZip)
	if err := errors.Join(sellerErr, customerErr); err != nil {
		return 0, err
	}

	return sellerPoint.DistanceTo(customerPoint)
}
