package storage

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"GasMileageTracker/internal/apperr"
	"GasMileageTracker/internal/models"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLiteStore keeps the gas_data table in a local SQLite file.
// Rows are ordered by their position; the header is the fixed column list.
type SQLiteStore struct {
	db     *sql.DB
	table  string
	logger *zap.Logger
}

func NewSQLiteStore(path, tableName string, logger *zap.Logger) (*SQLiteStore, error) {
	if !tableNamePattern.MatchString(tableName) {
		return nil, apperr.Store("open", fmt.Errorf("invalid table name %q", tableName))
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, apperr.Store("open", fmt.Errorf("open database: %w", err))
	}
	// single writer; also keeps ":memory:" on one connection
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, apperr.Store("open", fmt.Errorf("connect to database: %w", err))
	}

	createTable := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS %q (
			"position" INTEGER PRIMARY KEY,
			"date" TEXT NOT NULL,
			"gas" TEXT NOT NULL,
			"total_mileage" TEXT NOT NULL,
			"mileage" TEXT NOT NULL DEFAULT '',
			"gas_mileage" TEXT NOT NULL DEFAULT ''
	)`, tableName)
	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, apperr.Store("open", fmt.Errorf("create %s table: %w", tableName, err))
	}
	logger.Info("NewSQLiteStore(): opened", zap.String("path", path), zap.String("table", tableName))

	return &SQLiteStore{db: db, table: tableName, logger: logger}, nil
}

func (s *SQLiteStore) Read(ctx context.Context) (*models.Table, error) {
	query := fmt.Sprintf(`
		SELECT date, gas, total_mileage, mileage, gas_mileage
		FROM %q
		ORDER BY position
	`, s.table)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, apperr.Store("read", err)
	}
	defer rows.Close()

	table := models.NewTable(models.DefaultHeader, nil)
	for rows.Next() {
		row := make([]string, len(models.DefaultHeader))
		if err := rows.Scan(&row[0], &row[1], &row[2], &row[3], &row[4]); err != nil {
			return nil, apperr.Store("read", err)
		}
		table.Rows = append(table.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Store("read", err)
	}
	return table, nil
}

// Write replaces every row inside one transaction.
func (s *SQLiteStore) Write(ctx context.Context, table *models.Table) error {
	cols := make([]int, len(models.DefaultHeader))
	for i, name := range models.DefaultHeader {
		if cols[i] = table.Column(name); cols[i] < 0 {
			return apperr.Store("write", fmt.Errorf("column %q missing from header %v", name, table.Header))
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return apperr.Store("write", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %q`, s.table)); err != nil {
		return apperr.Store("write", err)
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		`INSERT INTO %q(position, date, gas, total_mileage, mileage, gas_mileage) VALUES(?, ?, ?, ?, ?, ?)`, s.table))
	if err != nil {
		return apperr.Store("write", err)
	}
	defer stmt.Close()

	for i, row := range table.Rows {
		args := []interface{}{i + 1}
		for _, col := range cols {
			cell := ""
			if col < len(row) {
				cell = row[col]
			}
			args = append(args, cell)
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return apperr.Store("write", fmt.Errorf("row %d: %w", i+1, err))
		}
	}

	if err := tx.Commit(); err != nil {
		return apperr.Store("write", err)
	}
	s.logger.Info("SQLiteStore.Write(): rewrote table", zap.Int("rows", table.Len()))
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
