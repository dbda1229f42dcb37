package storage

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"GasMileageTracker/internal/apperr"
	"GasMileageTracker/internal/models"
)

const testSheetKey = "sheet-key"

// fakeSheets serves values.get and values.update for a single sheet.
type fakeSheets struct {
	mu      sync.Mutex
	values  [][]interface{}
	paths   []string
	failGet bool
}

func (f *fakeSheets) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paths = append(f.paths, r.Method+" "+r.URL.Path)

	if !strings.HasPrefix(r.URL.Path, "/v4/spreadsheets/"+testSheetKey+"/values/") {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		if f.failGet {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":{"code":403,"message":"The caller does not have permission"}}`))
			return
		}
		json.NewEncoder(w).Encode(sheets.ValueRange{
			Range:          "gas_data!A1:E100",
			MajorDimension: "ROWS",
			Values:         f.values,
		})
	case http.MethodPut:
		if r.URL.Query().Get("valueInputOption") != "RAW" {
			http.Error(w, "valueInputOption required", http.StatusBadRequest)
			return
		}
		var body sheets.ValueRange
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		// overwrite from A1, rows beyond the new range are left as they were
		for i, row := range body.Values {
			if i < len(f.values) {
				f.values[i] = row
			} else {
				f.values = append(f.values, row)
			}
		}
		json.NewEncoder(w).Encode(sheets.UpdateValuesResponse{
			SpreadsheetId: testSheetKey,
			UpdatedRange:  "gas_data!A1",
			UpdatedRows:   int64(len(body.Values)),
		})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newTestSheetsStore(t *testing.T, fake *fakeSheets) *SheetsStore {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	store, err := NewSheetsStore(context.Background(), "", testSheetKey, "gas_data", zap.NewNop(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)
	return store
}

func TestSheetsStore_Read(t *testing.T) {
	fake := &fakeSheets{values: [][]interface{}{
		{"date", "gas", "total_mileage", "mileage", "gas_mileage"},
		{"2024/01/05", "30", "9500"},
		{"2024/02/10", "33.5", "10000", "500", "14.9"},
	}}
	store := newTestSheetsStore(t, fake)

	table, err := store.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultHeader, table.Header)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, []string{"2024/01/05", "30", "9500"}, table.Rows[0])

	seed, err := table.Record(0)
	require.NoError(t, err)
	assert.Nil(t, seed.Mileage)
	assert.Equal(t, "GET /v4/spreadsheets/sheet-key/values/gas_data", fake.paths[0])
}

func TestSheetsStore_ReadEmptySheet(t *testing.T) {
	store := newTestSheetsStore(t, &fakeSheets{})

	table, err := store.Read(context.Background())
	require.NoError(t, err)
	assert.Empty(t, table.Header)
	assert.Equal(t, 0, table.Len())
}

func TestSheetsStore_AppendRoundTrip(t *testing.T) {
	ctx := context.Background()
	fake := &fakeSheets{values: [][]interface{}{
		{"date", "gas", "total_mileage", "mileage", "gas_mileage"},
		{"2024/01/05", "30", "9500", "", ""},
		{"2024/02/10", "33.5", "10000", "500", "14.9"},
	}}
	store := newTestSheetsStore(t, fake)

	before, err := store.Read(ctx)
	require.NoError(t, err)

	mileage, gasMileage := int64(300), 15.0
	rec := models.Record{Date: "2024/03/01", Gas: 20, TotalMileage: 10300, Mileage: &mileage, GasMileage: &gasMileage}
	_, err = Append(ctx, store, before, rec)
	require.NoError(t, err)

	after, err := store.Read(ctx)
	require.NoError(t, err)
	require.Equal(t, before.Len()+1, after.Len())
	assert.Equal(t, before.Header, after.Header)
	assert.Equal(t, before.Rows, after.Rows[:before.Len()])
	assert.Equal(t, []string{"2024/03/01", "20", "10300", "300", "15.0"}, after.Rows[after.Len()-1])
	assert.Contains(t, fake.paths, "PUT /v4/spreadsheets/sheet-key/values/gas_data!A1")
}

func TestSheetsStore_AppendToBlankSheetWritesHeader(t *testing.T) {
	ctx := context.Background()
	fake := &fakeSheets{}
	store := newTestSheetsStore(t, fake)

	table, err := store.Read(ctx)
	require.NoError(t, err)
	_, err = Append(ctx, store, table, models.Record{Date: "2024/03/01", Gas: 20, TotalMileage: 10300})
	require.NoError(t, err)

	after, err := store.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultHeader, after.Header)
	assert.Equal(t, [][]string{{"2024/03/01", "20", "10300", "", ""}}, after.Rows)
}

func TestSheetsStore_ReadFailureIsStoreError(t *testing.T) {
	store := newTestSheetsStore(t, &fakeSheets{failGet: true})

	_, err := store.Read(context.Background())
	require.Error(t, err)
	assert.Equal(t, "store", apperr.Kind(err))
}

func TestNewSheetsStore_RequiresKey(t *testing.T) {
	_, err := NewSheetsStore(context.Background(), "service_account.json", "", "gas_data", zap.NewNop())
	assert.Equal(t, "store", apperr.Kind(err))
}
