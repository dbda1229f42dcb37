package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"GasMileageTracker/internal/apperr"
	"GasMileageTracker/internal/config"
	"GasMileageTracker/internal/models"
)

// Store reads and rewrites the whole gas_data table.
type Store interface {
	// Read returns the header row and all data rows in storage order.
	Read(ctx context.Context) (*models.Table, error)
	// Write replaces the stored contents with table, header first, from the origin cell.
	Write(ctx context.Context, table *models.Table) error
	Close() error
}

// Append adds rec as the last row of table and rewrites the full table to the store.
// A table without a header gets DefaultHeader. The input table is not modified.
//
// This is a full overwrite: cost grows with the row count, and a failed write may
// leave the store partially rewritten. Nothing is retried or rolled back.
func Append(ctx context.Context, s Store, table *models.Table, rec models.Record) (*models.Table, error) {
	header := models.DefaultHeader
	var rows [][]string
	if table != nil {
		rows = table.Rows
		if len(table.Header) > 0 {
			header = table.Header
		}
	}
	updated := models.NewTable(header, rows)
	updated.Rows = append(updated.Rows, rec.RowFor(updated.Header))

	if err := s.Write(ctx, updated); err != nil {
		return nil, apperr.Store("append", err)
	}
	return updated, nil
}

// Open returns the store selected by cfg.Driver.
func Open(ctx context.Context, cfg config.StoreConfig, logger *zap.Logger) (Store, error) {
	switch cfg.Driver {
	case config.DriverSheets:
		return NewSheetsStore(ctx, cfg.CredentialsFile, cfg.SheetKey, cfg.SheetName, logger)
	case config.DriverSQLite:
		return NewSQLiteStore(cfg.SQLitePath, cfg.SheetName, logger)
	default:
		return nil, apperr.Store("open", fmt.Errorf("unknown driver %q", cfg.Driver))
	}
}
