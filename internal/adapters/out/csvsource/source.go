// Package csvsource implements the raw table provider over a directory of
// olist CSV files.
//
// Each logical table maps to one fixed file name; the directory is never listed.
// Files are parsed with gota dataframes: identifier and date columns are read as
// strings, numeric columns with explicit types so that malformed numbers are
// detected instead of silently becoming zero.
package csvsource

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"orderfeatures/internal/core/domain/model/dataset"
	"orderfeatures/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

// FileNames maps every table to its file in the data directory.
var FileNames = map[string]string{
	dataset.TableOrders:       "olist_orders_dataset.csv",
	dataset.TableOrderItems:   "olist_order_items_dataset.csv",
	dataset.TableOrderReviews: "olist_order_reviews_dataset.csv",
	dataset.TableSellers:      "olist_sellers_dataset.csv",
	dataset.TableCustomers:    "olist_customers_dataset.csv",
	dataset.TableGeolocation:  "olist_geolocation_dataset.csv",
}

// Source loads snapshots from a CSV directory. The first successful load is
// cached; Reload replaces it.
type Source struct {
	dir    string
	logger *slog.Logger

	mu     sync.Mutex
	cached *dataset.Snapshot
}

// NewSource creates a provider reading from dir.
func NewSource(dir string, logger *slog.Logger) *Source {
	if logger == nil {
		logger = slog.Default()
	}
	return &Source{
		dir:    dir,
		logger: logger.With("component", "csvsource"),
	}
}

// Ping always answers "pong".
func (s *Source) Ping() string {
	return "pong"
}

// Load returns the cached snapshot, reading the directory on first use.
func (s *Source) Load(ctx context.Context) (dataset.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil {
		return *s.cached, nil
	}
	return s.reloadLocked(ctx)
}

// Reload reads the directory again and replaces the cached snapshot.
// A failed reload keeps the previous snapshot.
func (s *Source) Reload(ctx context.Context) (dataset.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.reloadLocked(ctx)
}

func (s *Source) reloadLocked(ctx context.Context) (dataset.Snapshot, error) {
	snapshot, err := s.read(ctx)
	if err != nil {
		return dataset.Snapshot{}, err
	}

	s.cached = &snapshot
	s.logger.Info("raw tables loaded", "dir", s.dir, "rows", snapshot.RowCounts())
	return snapshot, nil
}

func (s *Source) read(ctx context.Context) (dataset.Snapshot, error) {
	var tables dataset.Tables

	g, gctx := errgroup.WithContext(ctx)
	load := func(table string, parse func(frame) error) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			f, err := s.open(table)
			if err != nil {
				return err
			}
			return parse(f)
		})
	}

	load(dataset.TableOrders, func(f frame) (err error) {
		tables.Orders, err = parseOrders(f)
		return err
	})
	load(dataset.TableOrderItems, func(f frame) (err error) {
		tables.OrderItems, err = parseOrderItems(f)
		return err
	})
	load(dataset.TableOrderReviews, func(f frame) (err error) {
		tables.OrderReviews, err = parseOrderReviews(f)
		return err
	})
	load(dataset.TableSellers, func(f frame) (err error) {
		tables.Sellers, err = parseSellers(f)
		return err
	})
	load(dataset.TableCustomers, func(f frame) (err error) {
		tables.Customers, err = parseCustomers(f)
		return err
	})
	load(dataset.TableGeolocation, func(f frame) (err error) {
		var skipped int
		tables.Geolocation, skipped, err = parseGeolocation(f)
		if skipped > 0 {
			s.logger.Warn("skipped geolocation samples outside coordinate range", "count", skipped)
		}
		return err
	})

	if err := g.Wait(); err != nil {
		return dataset.Snapshot{}, err
	}

	return dataset.NewSnapshot(tables)
}

func (s *Source) open(table string) (frame, error) {
	path := filepath.Join(s.dir, FileNames[table])

	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return frame{}, errs.NewMissingTableErrorWithCause(table, err)
	}
	if err != nil {
		return frame{}, err
	}
	defer file.Close()

	return readFrame(table, file)
}
