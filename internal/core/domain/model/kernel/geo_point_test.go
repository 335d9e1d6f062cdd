package kernel_test

import (
	"math"
	"testing"

	"orderfeatures/internal/core/domain/model/kernel"
	"orderfeatures/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("valid coordinates", func(t *testing.T) {
		p, err := kernel.NewGeoPoint(-23.55, -46.63)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.InDelta(t, -23.55, p.Lat(), 1e-12)
		assert.InDelta(t, -46.63, p.Lng(), 1e-12)
	})

	t.Run("boundaries are inclusive", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(90, 180)
		require.NoError(t, err)

		_, err = kernel.NewGeoPoint(-90, -180)
		require.NoError(t, err)
	})

	testCases := []struct {
		name string
		lat  float64
		lng  float64
	}{
		{"latitude above range", 90.5, 0},
		{"latitude below range", -91, 0},
		{"longitude above range", 0, 181},
		{"longitude below range", 0, -180.01},
		{"latitude NaN", math.NaN(), 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := kernel.NewGeoPoint(tc.lat, tc.lng)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			require.Error(t, p.Validate())
		})
	}
}

func TestGeoPoint_ZeroValueIsInvalid(t *testing.T) {
	var p kernel.GeoPoint

	require.ErrorIs(t, p.Validate(), errs.ErrValueIsRequired)

	other, _ := kernel.NewGeoPoint(0, 0)
	_, err := p.DistanceTo(other)
	require.Error(t, err)
}

func TestGeoPoint_DistanceTo(t *testing.T) {
	t.Run("one degree of longitude at the equator", func(t *testing.T) {
		seller, _ := kernel.NewGeoPoint(0, 0)
		customer, _ := kernel.NewGeoPoint(0, 1)

		d, err := seller.DistanceTo(customer)

		require.NoError(t, err)
		assert.InDelta(t, 111.19, d, 0.01)
	})

	t.Run("same point is zero", func(t *testing.T) {
		p, _ := kernel.NewGeoPoint(-15.79, -47.88)

		d, err := p.DistanceTo(p)

		require.NoError(t, err)
		assert.InDelta(t, 0, d, 1e-9)
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		saoPaulo, _ := kernel.NewGeoPoint(-23.5505, -46.6333)
		rio, _ := kernel.NewGeoPoint(-22.9068, -43.1729)

		d1, err := saoPaulo.DistanceTo(rio)
		require.NoError(t, err)
		d2, err := rio.DistanceTo(saoPaulo)
		require.NoError(t, err)

		assert.InDelta(t, d1, d2, 1e-9)
		assert.InDelta(t, 357, d1, 5)
	})

	t.Run("antipodal points are half the circumference", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(0, 0)
		b, _ := kernel.NewGeoPoint(0, 180)

		d, err := a.DistanceTo(b)

		require.NoError(t, err)
		assert.InDelta(t, math.Pi*kernel.EarthRadiusKm, d, 1e-6)
	})
}
