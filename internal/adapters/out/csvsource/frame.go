package csvsource

import (
	"errors"
	"fmt"
	"io"
	"math"
	"slices"

	"orderfeatures/internal/pkg/errs"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Columns with a numeric type; everything else is read as a string.
var numericColumns = map[string]series.Type{
	"order_item_id":   series.Int,
	"price":           series.Float,
	"freight_value":   series.Float,
	"review_score":    series.Int,
	"geolocation_lat": series.Float,
	"geolocation_lng": series.Float,
}

// frame is one parsed CSV table.
type frame struct {
	table string
	df    dataframe.DataFrame
}

func readFrame(table string, r io.Reader) (frame, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues([]string{}),
		dataframe.WithTypes(numericColumns),
	)
	if df.Err != nil {
		return frame{}, errs.NewValueIsInvalidErrorWithCause(table, df.Err)
	}

	return frame{table: table, df: df}, nil
}

// require fails with one MissingColumn error per absent column.
func (f frame) require(columns ...string) error {
	names := f.df.Names()

	var missing []error
	for _, c := range columns {
		if !slices.Contains(names, c) {
			missing = append(missing, errs.NewMissingColumnError(f.table, c))
		}
	}
	return errors.Join(missing...)
}

func (f frame) rows() int {
	return f.df.Nrow()
}

func (f frame) strings(column string) []string {
	return f.df.Col(column).Records()
}

func (f frame) ints(column string) ([]int, error) {
	values, err := f.df.Col(column).Int()
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(f.param(column), err)
	}
	return values, nil
}

func (f frame) floats(column string) ([]float64, error) {
	values := f.df.Col(column).Float()
	for i, v := range values {
		if math.IsNaN(v) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				f.param(column),
				fmt.Errorf("row %d is not a number", i+1),
			)
		}
	}
	return values, nil
}

func (f frame) param(column string) string {
	return f.table + "." + column
}

func (f frame) rowParam(row int) string {
	return fmt.Sprintf("%s row %d", f.table, row+1)
}

// optionalStrings returns the column or empty strings when it is absent.
func (f frame) optionalStrings(column string) []string {
	if slices.Contains(f.df.Names(), column) {
		return f.strings(column)
	}
	return make([]string, f.rows())
}
