package timeseries

import (
	"math"
	"strings"
	"testing"
)

func TestLoadCSVFromReader(t *testing.T) {
	csvData := `ds,close
2020-01-01,100
2020-01-02,101
2020-01-03,102
2020-01-04,103
2020-01-05,104`

	reader := strings.NewReader(csvData)
	opts := DefaultCSVOptions()

	series, err := LoadCSVFromReader(reader, opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if series.Len() != 5 {
		t.Errorf("Expected 5 observations, got %d", series.Len())
	}

	expected := []float64{100, 101, 102, 103, 104}
	for i, v := range expected {
		if series.Values[i] != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, series.Values[i])
		}
	}

	if len(series.Timestamps) != series.Len() {
		t.Errorf("Expected %d timestamps, got %d", series.Len(), len(series.Timestamps))
	}
}

func TestLoadCSVWithNAValues(t *testing.T) {
	// NA cells load as NaN; rows are never dropped, so the series stays
	// aligned with its dates.
	csvData := `ds,close
2020-01-01,100
2020-01-02,NA
2020-01-03,102
2020-01-04,NaN
2020-01-05,104`

	reader := strings.NewReader(csvData)
	series, err := LoadCSVFromReader(reader, DefaultCSVOptions())
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if series.Len() != 5 {
		t.Errorf("Expected 5 observations (NA loaded as NaN), got %d", series.Len())
	}

	if !math.IsNaN(series.Values[1]) || !math.IsNaN(series.Values[3]) {
		t.Errorf("Expected NaN at indices 1 and 3, got %v", series.Values)
	}

	if series.Values[0] != 100 || series.Values[2] != 102 || series.Values[4] != 104 {
		t.Errorf("Finite values misaligned: %v", series.Values)
	}
}

func TestLoadCSVSelectedColumn(t *testing.T) {
	csvData := `ds,open,close,volume
2020-01-01,99,100,5000
2020-01-02,101,110,5100
2020-01-03,109,120,5200`

	reader := strings.NewReader(csvData)
	opts := DefaultCSVOptions()
	opts.ValueColumn = "volume"

	series, err := LoadCSVFromReader(reader, opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	expected := []float64{5000, 5100, 5200}
	for i, v := range expected {
		if series.Values[i] != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, series.Values[i])
		}
	}

	if series.Name != "volume" {
		t.Errorf("Expected series name 'volume', got %q", series.Name)
	}
}

func TestLoadCSVMissingColumn(t *testing.T) {
	csvData := `ds,open
2020-01-01,99`

	reader := strings.NewReader(csvData)
	_, err := LoadCSVFromReader(reader, DefaultCSVOptions())
	if err == nil {
		t.Fatal("Expected error for missing value column")
	}
}

func TestLoadCSVColumnsFromReader(t *testing.T) {
	csvData := `ds,close,high,volume
2020-01-01,100,102,5000
2020-01-02,110,111,5100
2020-01-03,120,125,5200`

	reader := strings.NewReader(csvData)
	cols, err := LoadCSVColumnsFromReader(reader, DefaultCSVOptions(), []string{"close", "high", "volume"})
	if err != nil {
		t.Fatalf("Failed to load CSV columns: %v", err)
	}

	if len(cols) != 3 {
		t.Fatalf("Expected 3 columns, got %d", len(cols))
	}

	if cols["close"].Len() != 3 || cols["high"].Len() != 3 || cols["volume"].Len() != 3 {
		t.Error("Columns not aligned to 3 rows")
	}

	if cols["high"].Values[2] != 125 {
		t.Errorf("Expected high[2]=125, got %f", cols["high"].Values[2])
	}

	if cols["volume"].Name != "volume" {
		t.Errorf("Expected column name 'volume', got %q", cols["volume"].Name)
	}
}

func TestLoadCSVQuotedFields(t *testing.T) {
	csvData := `"ds","close"
"2020-01-01","1000000"
"2020-01-02","1000100"
"2020-01-03","1000200"`

	reader := strings.NewReader(csvData)
	series, err := LoadCSVFromReader(reader, DefaultCSVOptions())
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if series.Len() != 3 {
		t.Errorf("Expected 3 observations, got %d", series.Len())
	}
}

func TestDefaultCSVOptions(t *testing.T) {
	opts := DefaultCSVOptions()

	if opts.ValueColumn != "close" {
		t.Errorf("Expected default value column 'close', got '%s'", opts.ValueColumn)
	}

	if opts.DateFormat != "2006-01-02" {
		t.Errorf("Expected default date format '2006-01-02', got '%s'", opts.DateFormat)
	}

	if !opts.HasHeader {
		t.Error("Expected HasHeader to be true by default")
	}

	if opts.Delimiter != ',' {
		t.Errorf("Expected default delimiter ',', got '%c'", opts.Delimiter)
	}
}
