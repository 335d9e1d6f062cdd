// Package featurerepo persists exported training tables. One export run maps to
// a row in export_runs and its feature rows map to order_features, ordered by
// their position in the training table.
package featurerepo

import (
	"time"

	"orderfeatures/internal/core/domain/model/features"

	"github.com/google/uuid"
)

const (
	runsTable     = "export_runs"
	featuresTable = "order_features"
)

// ExportRunDTO represents the database structure of an export run header.
type ExportRunDTO struct {
	ID                 uuid.UUID         `gorm:"type:uuid;primaryKey"`
	CreatedAt          time.Time         `gorm:"type:timestamptz;not null;index"`
	DeliveredOnly      bool              `gorm:"not null"`
	IncludeDistance    bool              `gorm:"not null"`
	Orders             int               `gorm:"type:int;not null"`
	InvalidTimestamps  int               `gorm:"type:int;not null"`
	IncompleteGeocodes int               `gorm:"type:int;not null"`
	DroppedRows        int               `gorm:"type:int;not null"`
	RowCount           int               `gorm:"type:int;not null"`
	Rows               []OrderFeatureDTO `gorm:"foreignKey:RunID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default "export_run_dtos".
func (ExportRunDTO) TableName() string {
	return runsTable
}

// OrderFeatureDTO represents one training table row.
type OrderFeatureDTO struct {
	RunID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position               int       `gorm:"type:int;primaryKey;autoIncrement:false"`
	OrderID                string    `gorm:"type:varchar(64);not null;index"`
	WaitTime               float64   `gorm:"not null"`
	ExpectedWaitTime       float64   `gorm:"not null"`
	DelayVsExpected        float64   `gorm:"not null"`
	OrderStatus            string    `gorm:"type:varchar(32);not null"`
	OrderPurchaseTimestamp time.Time `gorm:"type:timestamptz;not null"`
	ReviewScore            int       `gorm:"type:smallint;not null"`
	DimIsFiveStar          int       `gorm:"type:smallint;not null"`
	DimIsOneStar           int       `gorm:"type:smallint;not null"`
	NumberOfItems          int       `gorm:"type:int;not null"`
	NumberOfSellers        int       `gorm:"type:int;not null"`
	Price                  float64   `gorm:"not null"`
	FreightValue           float64   `gorm:"not null"`
	DistanceSellerCustomer *float64
}

// TableName overrides GORM's default "order_feature_dtos".
func (OrderFeatureDTO) TableName() string {
	return featuresTable
}

func fromDomain(run features.ExportRun) ExportRunDTO {
	stats := run.Table.Stats
	rows := make([]OrderFeatureDTO, 0, len(run.Table.Rows))
	for i, r := range run.Table.Rows {
		rows = append(rows, OrderFeatureDTO{
			RunID:                  run.ID,
			Position:               i,
			OrderID:                r.OrderID,
			WaitTime:               r.WaitTime,
			ExpectedWaitTime:       r.ExpectedWaitTime,
			DelayVsExpected:        r.DelayVsExpected,
			OrderStatus:            r.OrderStatus,
			OrderPurchaseTimestamp: r.OrderPurchaseTimestamp,
			ReviewScore:            r.ReviewScore,
			DimIsFiveStar:          r.DimIsFiveStar,
			DimIsOneStar:           r.DimIsOneStar,
			NumberOfItems:          r.NumberOfItems,
			NumberOfSellers:        r.NumberOfSellers,
			Price:                  r.Price,
			FreightValue:           r.FreightValue,
			DistanceSellerCustomer: r.DistanceSellerCustomer,
		})
	}

	return ExportRunDTO{
		ID:                 run.ID,
		CreatedAt:          run.CreatedAt,
		DeliveredOnly:      run.DeliveredOnly,
		IncludeDistance:    run.Table.IncludeDistance,
		Orders:             stats.Orders,
		InvalidTimestamps:  stats.InvalidTimestamps,
		IncompleteGeocodes: stats.IncompleteGeocodes,
		DroppedRows:        stats.DroppedRows,
		RowCount:           stats.Rows,
		Rows:               rows,
	}
}

func toDomain(dto ExportRunDTO) features.ExportRun {
	rows := make([]features.OrderFeatureRow, 0, len(dto.Rows))
	for _, r := range dto.Rows {
		rows = append(rows, features.OrderFeatureRow{
			OrderID:                r.OrderID,
			WaitTime:               r.WaitTime,
			ExpectedWaitTime:       r.ExpectedWaitTime,
			DelayVsExpected:        r.DelayVsExpected,
			OrderStatus:            r.OrderStatus,
			OrderPurchaseTimestamp: r.OrderPurchaseTimestamp.UTC(),
			ReviewScore:            r.ReviewScore,
			DimIsFiveStar:          r.DimIsFiveStar,
			DimIsOneStar:           r.DimIsOneStar,
			NumberOfItems:          r.NumberOfItems,
			NumberOfSellers:        r.NumberOfSellers,
			Price:                  r.Price,
			FreightValue:           r.FreightValue,
			DistanceSellerCustomer: r.DistanceSellerCustomer,
		})
	}

	return features.ExportRun{
		ID:            dto.ID,
		CreatedAt:     dto.CreatedAt.UTC(),
		DeliveredOnly: dto.DeliveredOnly,
		Table: features.TrainingTable{
			Rows:            rows,
			IncludeDistance: dto.IncludeDistance,
			Stats: features.BuildStats{
				Orders:             dto.Orders,
				InvalidTimestamps:  dto.InvalidTimestamps,
				IncompleteGeocodes: dto.IncompleteGeocodes,
				DroppedRows:        dto.DroppedRows,
				Rows:               dto.RowCount,
			},
		},
	}
}
