/**
* Name:        sheets_storage.go
* Description: Google Sheets backed record store
* Workflow:    service account login, values.get for the whole sheet, values.update from A1
 */
package storage

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"GasMileageTracker/internal/apperr"
	"GasMileageTracker/internal/models"
)

// Scopes requested for the service account.
var Scopes = []string{
	sheets.SpreadsheetsScope,
	sheets.DriveScope,
}

type SheetsStore struct {
	service   *sheets.Service
	sheetKey  string
	sheetName string
	logger    *zap.Logger
}

// NewSheetsStore opens the spreadsheet identified by sheetKey.
// Without extra options it authenticates with the service account file credentialsFile.
func NewSheetsStore(ctx context.Context, credentialsFile, sheetKey, sheetName string, logger *zap.Logger, opts ...option.ClientOption) (*SheetsStore, error) {
	if sheetKey == "" {
		return nil, apperr.Store("open", errors.New("spreadsheet key is empty"))
	}
	if len(opts) == 0 {
		opts = []option.ClientOption{
			option.WithCredentialsFile(credentialsFile),
			option.WithScopes(Scopes...),
		}
	}

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, apperr.Store("open", fmt.Errorf("create sheets service: %w", err))
	}
	logger.Info("NewSheetsStore(): connected", zap.String("sheet", sheetName))

	return &SheetsStore{
		service:   service,
		sheetKey:  sheetKey,
		sheetName: sheetName,
		logger:    logger,
	}, nil
}

func (s *SheetsStore) Read(ctx context.Context) (*models.Table, error) {
	resp, err := s.service.Spreadsheets.Values.Get(s.sheetKey, s.sheetName).
		MajorDimension("ROWS").
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, apperr.Store("read", err)
	}

	table := &models.Table{}
	for i, row := range resp.Values {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = fmt.Sprint(v)
		}
		if i == 0 {
			table.Header = cells
			continue
		}
		table.Rows = append(table.Rows, cells)
	}
	s.logger.Debug("SheetsStore.Read(): fetched", zap.Int("rows", table.Len()))
	return table, nil
}

func (s *SheetsStore) Write(ctx context.Context, table *models.Table) error {
	values := make([][]interface{}, 0, table.Len()+1)
	values = append(values, toInterfaces(table.Header))
	for _, row := range table.Rows {
		values = append(values, toInterfaces(row))
	}

	resp, err := s.service.Spreadsheets.Values.Update(s.sheetKey, s.sheetName+"!A1", &sheets.ValueRange{
		MajorDimension: "ROWS",
		Values:         values,
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return apperr.Store("write", err)
	}
	s.logger.Info("SheetsStore.Write(): rewrote sheet",
		zap.String("range", resp.UpdatedRange),
		zap.Int64("rows", resp.UpdatedRows),
	)
	return nil
}

func (s *SheetsStore) Close() error {
	return nil
}

func toInterfaces(cells []string) []interface{} {
	out := make([]interface{}, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}
