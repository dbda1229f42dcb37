package presenter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GasMileageTracker/internal/apperr"
	"GasMileageTracker/internal/models"
)

func sampleTable() *models.Table {
	return models.NewTable(models.DefaultHeader, [][]string{
		{"2024/01/05", "30", "9500", "", ""},
		{"2024/02/10", "33.5", "10000", "500", "14.9"},
		{"2024/03/01", "20", "10300", "300", "15.0"},
		{"2024/03/20", "25", "10550", "250", "10.0"},
		{"2024/04/11", "30", "11000", "450", "15.0"},
		{"2024/05/02", "28", "11500", "500", "17.9"},
		{"2024/05/30", "31", "12000", "500", "16.1"},
	})
}

func TestRecent(t *testing.T) {
	t.Run("last five oldest first", func(t *testing.T) {
		records, err := Recent(sampleTable(), DefaultHistorySize)
		require.NoError(t, err)
		require.Len(t, records, 5)
		assert.Equal(t, "2024/03/01", records[0].Date)
		assert.Equal(t, "2024/05/30", records[4].Date)
		assert.Equal(t, 16.1, *records[4].GasMileage)
	})

	t.Run("fewer rows than requested", func(t *testing.T) {
		table := models.NewTable(models.DefaultHeader, sampleTable().Rows[:2])
		records, err := Recent(table, DefaultHistorySize)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Nil(t, records[0].GasMileage)
	})

	t.Run("corrupt row", func(t *testing.T) {
		table := models.NewTable(models.DefaultHeader, [][]string{{"2024/01/05", "lots", "9500", "", ""}})
		_, err := Recent(table, DefaultHistorySize)
		assert.Equal(t, "computation", apperr.Kind(err))
	})
}

func TestChart(t *testing.T) {
	t.Run("covers all records and pads bounds", func(t *testing.T) {
		spec, err := Chart(sampleTable(), DefaultChartPadding)
		require.NoError(t, err)

		// the seed row has no efficiency, every other row is plotted
		assert.Len(t, spec.Data.Values, 6)
		assert.Equal(t, "2024/02/10", spec.Data.Values[0].Date)

		lo, hi, ok := spec.YDomain()
		require.True(t, ok)
		assert.InDelta(t, 0.0, lo, 1e-9)
		assert.InDelta(t, 27.9, hi, 1e-9)
	})

	t.Run("bounds follow new rows", func(t *testing.T) {
		table := sampleTable()
		table.Rows = append(table.Rows, []string{"2024/06/20", "10", "12400", "400", "40.0"})

		spec, err := Chart(table, DefaultChartPadding)
		require.NoError(t, err)
		lo, hi, ok := spec.YDomain()
		require.True(t, ok)
		assert.InDelta(t, 0.0, lo, 1e-9)
		assert.InDelta(t, 50.0, hi, 1e-9)
	})

	t.Run("encoding", func(t *testing.T) {
		spec, err := Chart(sampleTable(), DefaultChartPadding)
		require.NoError(t, err)

		raw, err := json.Marshal(spec)
		require.NoError(t, err)
		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &decoded))

		assert.Equal(t, "line", decoded["mark"])
		enc := decoded["encoding"].(map[string]interface{})
		assert.Equal(t, "temporal", enc["x"].(map[string]interface{})["type"])
		assert.Equal(t, "quantitative", enc["y"].(map[string]interface{})["type"])
	})

	t.Run("nothing to plot", func(t *testing.T) {
		table := models.NewTable(models.DefaultHeader, sampleTable().Rows[:1])
		spec, err := Chart(table, DefaultChartPadding)
		require.NoError(t, err)
		assert.Empty(t, spec.Data.Values)
		_, _, ok := spec.YDomain()
		assert.False(t, ok)
	})

	t.Run("unparseable efficiency", func(t *testing.T) {
		table := models.NewTable(models.DefaultHeader, [][]string{{"2024/01/05", "30", "9500", "500", "n/a"}})
		_, err := Chart(table, DefaultChartPadding)
		assert.Equal(t, "computation", apperr.Kind(err))
	})
}
