// Package presenter turns the stored table into the recent-history view and
// the efficiency trend chart.
package presenter

import (
	"fmt"
	"strconv"

	"GasMileageTracker/internal/apperr"
	"GasMileageTracker/internal/models"
)

const (
	DefaultHistorySize  = 5
	DefaultChartPadding = 10.0

	vegaLiteSchema = "https://vega.github.io/schema/vega-lite/v5.json"
)

// Recent returns the last n records, oldest first.
func Recent(table *models.Table, n int) ([]models.Record, error) {
	start := table.Len() - n
	if start < 0 {
		start = 0
	}
	records := make([]models.Record, 0, table.Len()-start)
	for i := start; i < table.Len(); i++ {
		r, err := table.Record(i)
		if err != nil {
			return nil, apperr.Computation(err)
		}
		records = append(records, r)
	}
	return records, nil
}

// ChartPoint is one plotted (date, efficiency) pair.
type ChartPoint struct {
	Date       string  `json:"date"`
	GasMileage float64 `json:"gas_mileage"`
}

type Scale struct {
	Domain []float64 `json:"domain,omitempty"`
}

type Channel struct {
	Field string `json:"field"`
	Type  string `json:"type"`
	Title string `json:"title,omitempty"`
	Scale *Scale `json:"scale,omitempty"`
}

type Encoding struct {
	X Channel `json:"x"`
	Y Channel `json:"y"`
}

type ChartData struct {
	Values []ChartPoint `json:"values"`
}

// ChartSpec is a Vega-Lite line chart of efficiency over time.
type ChartSpec struct {
	Schema   string    `json:"$schema"`
	Width    string    `json:"width,omitempty"`
	Data     ChartData `json:"data"`
	Mark     string    `json:"mark"`
	Encoding Encoding  `json:"encoding"`
}

// YDomain returns the vertical axis bounds, or false when nothing is plotted.
func (c *ChartSpec) YDomain() (lo, hi float64, ok bool) {
	if c.Encoding.Y.Scale == nil || len(c.Encoding.Y.Scale.Domain) != 2 {
		return 0, 0, false
	}
	return c.Encoding.Y.Scale.Domain[0], c.Encoding.Y.Scale.Domain[1], true
}

// Chart plots every record that has an efficiency, with the y axis padded by
// a fixed amount above the maximum and below the minimum.
func Chart(table *models.Table, padding float64) (*ChartSpec, error) {
	points := make([]ChartPoint, 0, table.Len())
	for i := 0; i < table.Len(); i++ {
		date, err := table.Cell(i, models.ColumnDate)
		if err != nil {
			return nil, apperr.Computation(err)
		}
		text, err := table.Cell(i, models.ColumnGasMileage)
		if err != nil {
			return nil, apperr.Computation(err)
		}
		if text == "" {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, apperr.Computation(fmt.Errorf("row %d: invalid gas_mileage %q: %w", i, text, err))
		}
		points = append(points, ChartPoint{Date: date, GasMileage: v})
	}

	spec := &ChartSpec{
		Schema: vegaLiteSchema,
		Width:  "container",
		Data:   ChartData{Values: points},
		Mark:   "line",
		Encoding: Encoding{
			X: Channel{Field: models.ColumnDate, Type: "temporal", Title: "date"},
			Y: Channel{Field: models.ColumnGasMileage, Type: "quantitative", Title: "km/L"},
		},
	}
	if len(points) == 0 {
		return spec, nil
	}

	lo, hi := points[0].GasMileage, points[0].GasMileage
	for _, p := range points[1:] {
		if p.GasMileage < lo {
			lo = p.GasMileage
		}
		if p.GasMileage > hi {
			hi = p.GasMileage
		}
	}
	spec.Encoding.Y.Scale = &Scale{Domain: []float64{lo - padding, hi + padding}}
	return spec, nil
}
