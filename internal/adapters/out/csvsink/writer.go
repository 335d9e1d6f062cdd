package csvsink

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"orderfeatures/internal/core/domain/model/features"

	"github.com/go-gota/gota/dataframe"
)

// Writer stores every published run as <dir>/training_table_<run id>.csv.
type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Path returns the file a run is written to.
func (w *Writer) Path(run features.ExportRun) string {
	return filepath.Join(w.dir, fmt.Sprintf("training_table_%s.csv", run.ID))
}

// Publish writes the run atomically: a temporary file is renamed into place.
func (w *Writer) Publish(ctx context.Context, run features.ExportRun) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(w.dir, ".training_table_*.csv")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err = Encode(tmp, run.Table); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), w.Path(run))
}

// Encode writes the table as CSV with a header row.
func Encode(out io.Writer, table features.TrainingTable) error {
	if len(table.Rows) == 0 {
		cw := csv.NewWriter(out)
		if err := cw.Write(table.Columns()); err != nil {
			return err
		}
		cw.Flush()
		return cw.Error()
	}

	dtos := make([]RowDTO, 0, len(table.Rows))
	for _, r := range table.Rows {
		dtos = append(dtos, fromDomain(r))
	}

	df := dataframe.LoadStructs(dtos)
	if !table.IncludeDistance {
		df = df.Drop(features.ColumnDistanceSellerCustomer)
	}
	if df.Err != nil {
		return df.Err
	}

	return df.WriteCSV(out)
}
