package service

import (
	"context"

	"go.uber.org/zap"

	"GasMileageTracker/internal/apperr"
	"GasMileageTracker/internal/mileage"
	"GasMileageTracker/internal/models"
	"GasMileageTracker/internal/presenter"
	"GasMileageTracker/internal/storage"
	"GasMileageTracker/internal/validation"
)

// History is what the page shows below the form.
type History struct {
	Recent []models.Record      `json:"recent"`
	Chart  *presenter.ChartSpec `json:"chart"`
	Total  int                  `json:"total"`
}

// SubmitResult is the outcome of a successful submit.
type SubmitResult struct {
	Record models.Record `json:"record"`
	History
}

// FuelService runs the submit flow against a single store.
type FuelService struct {
	store        storage.Store
	historySize  int
	chartPadding float64
	logger       *zap.Logger
}

func NewFuelService(store storage.Store, historySize int, chartPadding float64, logger *zap.Logger) *FuelService {
	if historySize <= 0 {
		historySize = presenter.DefaultHistorySize
	}
	return &FuelService{
		store:        store,
		historySize:  historySize,
		chartPadding: chartPadding,
		logger:       logger,
	}
}

// Submit validates the input and, only if every field passes, reads the
// table, derives the new record, appends it, reads the table back and
// builds the history views from the fresh copy.
func (s *FuelService) Submit(ctx context.Context, in models.FormInput) (*SubmitResult, error) {
	if err := validation.Validate(in.Date, in.Gas, in.TotalMileage).Err(); err != nil {
		return nil, err
	}

	table, err := s.store.Read(ctx)
	if err != nil {
		return nil, apperr.Store("read", err)
	}

	rec, err := mileage.Calculate(table, in)
	if err != nil {
		return nil, err
	}

	if _, err := storage.Append(ctx, s.store, table, rec); err != nil {
		return nil, err
	}
	s.logger.Info("record appended",
		zap.String("date", rec.Date),
		zap.Float64("gas", rec.Gas),
		zap.Int64("total_mileage", rec.TotalMileage),
		zap.Int("rows", table.Len()+1),
	)

	history, err := s.History(ctx)
	if err != nil {
		return nil, err
	}
	return &SubmitResult{Record: rec, History: *history}, nil
}

// History reads the table and builds the recent-records table and the chart.
func (s *FuelService) History(ctx context.Context) (*History, error) {
	table, err := s.store.Read(ctx)
	if err != nil {
		return nil, apperr.Store("read", err)
	}
	return s.present(table)
}

// Records returns every stored record in storage order.
func (s *FuelService) Records(ctx context.Context) ([]models.Record, error) {
	table, err := s.store.Read(ctx)
	if err != nil {
		return nil, apperr.Store("read", err)
	}
	records, err := table.Records()
	if err != nil {
		return nil, apperr.Computation(err)
	}
	return records, nil
}

func (s *FuelService) present(table *models.Table) (*History, error) {
	recent, err := presenter.Recent(table, s.historySize)
	if err != nil {
		return nil, err
	}
	chart, err := presenter.Chart(table, s.chartPadding)
	if err != nil {
		return nil, err
	}
	return &History{Recent: recent, Chart: chart, Total: table.Len()}, nil
}
