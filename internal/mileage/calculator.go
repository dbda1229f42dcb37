// Package mileage derives the distance and fuel efficiency of a new refuel
// from the last stored odometer reading.
package mileage

import (
	"fmt"
	"strconv"

	"GasMileageTracker/internal/apperr"
	"GasMileageTracker/internal/models"
)

// Round rounds v to one decimal place from its exact binary value, ties to even.
func Round(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// Efficiency returns distance per unit of fuel rounded to one decimal.
func Efficiency(mileage int64, gas float64) (float64, error) {
	if gas == 0 {
		return 0, apperr.Computation(apperr.ErrZeroFuel)
	}
	return Round(float64(mileage) / gas), nil
}

// Calculate builds the record to append from validated form input.
// The predecessor is the last row of table in storage order. An empty table
// yields a seed record with no mileage or efficiency.
// Negative or zero distances are passed through unchanged.
func Calculate(table *models.Table, in models.FormInput) (models.Record, error) {
	gas, err := strconv.ParseFloat(in.Gas, 64)
	if err != nil {
		return models.Record{}, apperr.Computation(fmt.Errorf("parse gas %q: %w", in.Gas, err))
	}
	total, err := strconv.ParseInt(in.TotalMileage, 10, 64)
	if err != nil {
		return models.Record{}, apperr.Computation(fmt.Errorf("parse total mileage %q: %w", in.TotalMileage, err))
	}

	rec := models.Record{
		Date:         in.Date,
		Gas:          gas,
		TotalMileage: total,
	}
	if table.Len() == 0 {
		return rec, nil
	}

	lastText, err := table.Cell(table.Len()-1, models.ColumnTotalMileage)
	if err != nil {
		return models.Record{}, apperr.Computation(err)
	}
	last, err := strconv.ParseInt(lastText, 10, 64)
	if err != nil {
		return models.Record{}, apperr.Computation(fmt.Errorf("parse last total mileage %q: %w", lastText, err))
	}

	distance := total - last
	efficiency, err := Efficiency(distance, gas)
	if err != nil {
		return models.Record{}, err
	}
	rec.Mileage = &distance
	rec.GasMileage = &efficiency
	return rec, nil
}
