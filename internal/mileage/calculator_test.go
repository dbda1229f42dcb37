package mileage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GasMileageTracker/internal/apperr"
	"GasMileageTracker/internal/models"
)

func tableWithTail(totals ...string) *models.Table {
	rows := make([][]string, 0, len(totals))
	for _, total := range totals {
		rows = append(rows, []string{"2024/01/01", "30", total, "", ""})
	}
	return models.NewTable(models.DefaultHeader, rows)
}

func TestCalculate(t *testing.T) {
	t.Run("derives distance and efficiency from last row", func(t *testing.T) {
		table := tableWithTail("9500", "10000")
		rec, err := Calculate(table, models.FormInput{Date: "2024/05/01", Gas: "20", TotalMileage: "10300"})
		require.NoError(t, err)

		assert.Equal(t, "2024/05/01", rec.Date)
		assert.Equal(t, 20.0, rec.Gas)
		assert.Equal(t, int64(10300), rec.TotalMileage)
		require.NotNil(t, rec.Mileage)
		require.NotNil(t, rec.GasMileage)
		assert.Equal(t, int64(300), *rec.Mileage)
		assert.Equal(t, 15.0, *rec.GasMileage)
		assert.Equal(t, []string{"2024/05/01", "20", "10300", "300", "15.0"}, rec.Row())
	})

	t.Run("decimal gas", func(t *testing.T) {
		rec, err := Calculate(tableWithTail("10000"), models.FormInput{Date: "2024/05/01", Gas: "35.5", TotalMileage: "10450"})
		require.NoError(t, err)
		assert.Equal(t, 35.5, rec.Gas)
		assert.Equal(t, 12.7, *rec.GasMileage)
	})

	t.Run("zero gas fails", func(t *testing.T) {
		_, err := Calculate(tableWithTail("10000"), models.FormInput{Date: "2024/05/01", Gas: "0", TotalMileage: "10300"})
		require.Error(t, err)

		var ce *apperr.ComputationError
		assert.True(t, errors.As(err, &ce))
		assert.ErrorIs(t, err, apperr.ErrZeroFuel)
	})

	t.Run("decreasing odometer is not guarded", func(t *testing.T) {
		rec, err := Calculate(tableWithTail("10000"), models.FormInput{Date: "2024/05/01", Gas: "10", TotalMileage: "9900"})
		require.NoError(t, err)
		assert.Equal(t, int64(-100), *rec.Mileage)
		assert.Equal(t, -10.0, *rec.GasMileage)
	})

	t.Run("empty table yields seed record", func(t *testing.T) {
		rec, err := Calculate(models.NewTable(models.DefaultHeader, nil), models.FormInput{Date: "2024/05/01", Gas: "20", TotalMileage: "10300"})
		require.NoError(t, err)
		assert.Nil(t, rec.Mileage)
		assert.Nil(t, rec.GasMileage)
		assert.Equal(t, []string{"2024/05/01", "20", "10300", "", ""}, rec.Row())
	})

	t.Run("corrupt predecessor", func(t *testing.T) {
		_, err := Calculate(tableWithTail("ten thousand"), models.FormInput{Date: "2024/05/01", Gas: "20", TotalMileage: "10300"})
		var ce *apperr.ComputationError
		assert.True(t, errors.As(err, &ce))
	})

	t.Run("missing column", func(t *testing.T) {
		table := models.NewTable([]string{"date", "gas"}, [][]string{{"2024/01/01", "30"}})
		_, err := Calculate(table, models.FormInput{Date: "2024/05/01", Gas: "20", TotalMileage: "10300"})
		assert.Equal(t, "computation", apperr.Kind(err))
	})
}

func TestRound(t *testing.T) {
	assert.Equal(t, 15.0, Round(15.04))
	assert.Equal(t, 15.1, Round(15.05))
	assert.Equal(t, 12.3, Round(12.34))
	assert.Equal(t, -1.4, Round(-1.45))
	assert.Equal(t, 0.2, Round(0.25))
}

func TestEfficiency_TiesRoundToEven(t *testing.T) {
	tests := []struct {
		mileage int64
		gas     float64
		want    float64
	}{
		{245, 20, 12.2},
		{45, 20, 2.2},
		{325, 20, 16.2},
		{255, 20, 12.8},
		{300, 20, 15.0},
	}
	for _, tt := range tests {
		got, err := Efficiency(tt.mileage, tt.gas)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%d/%v", tt.mileage, tt.gas)
	}
}
