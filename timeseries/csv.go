package timeseries

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	DateColumn  string // Column name for dates (optional)
	ValueColumn string // Column name for values (default: "close")
	DateFormat  string // Date format (default: "2006-01-02")
	HasHeader   bool   // Whether CSV has header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "close",
		DateFormat:  "2006-01-02",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// LoadCSV loads a time series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVColumn loads a specific column from a CSV file as a series.
func LoadCSVColumn(filename string, column string) (*Series, error) {
	opts := DefaultCSVOptions()
	opts.ValueColumn = column
	return LoadCSV(filename, opts)
}

// LoadCSVFromReader loads a time series from an io.Reader.
//
// Cells that are empty or fail to parse load as NaN rather than being
// dropped: downstream windowed statistics treat non-finite entries as
// data-level sentinels, and dropping rows would silently shift every
// series against its timestamps.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	columns, timestamps, err := readColumns(r, opts, []string{opts.ValueColumn})
	if err != nil {
		return nil, err
	}

	values := columns[opts.ValueColumn]
	if len(values) == 0 {
		return nil, errors.New("no data rows found in CSV")
	}

	if len(timestamps) == len(values) {
		return &Series{
			Timestamps: timestamps,
			Values:     values,
			Name:       opts.ValueColumn,
		}, nil
	}

	s := New(values)
	s.Name = opts.ValueColumn
	return s, nil
}

// LoadCSVColumns loads several value columns from one CSV file in a
// single pass, returning one aligned series per requested column. Use it
// to load OHLCV bars, e.g. close/high/volume for factor computation.
func LoadCSVColumns(filename string, columns []string) (map[string]*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVColumnsFromReader(file, DefaultCSVOptions(), columns)
}

// LoadCSVColumnsFromReader loads several aligned value columns from an
// io.Reader.
func LoadCSVColumnsFromReader(r io.Reader, opts *CSVOptions, columns []string) (map[string]*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}
	if len(columns) == 0 {
		return nil, errors.New("no columns requested")
	}

	values, timestamps, err := readColumns(r, opts, columns)
	if err != nil {
		return nil, err
	}

	out := make(map[string]*Series, len(columns))
	for _, col := range columns {
		vals := values[col]
		if len(vals) == 0 {
			return nil, fmt.Errorf("no data rows found for column %q", col)
		}
		var s *Series
		if len(timestamps) == len(vals) {
			s = &Series{Timestamps: timestamps, Values: vals}
		} else {
			s = New(vals)
		}
		s.Name = col
		out[col] = s
	}
	return out, nil
}

// readColumns scans the CSV once and collects the requested value
// columns plus timestamps when a date column can be resolved.
func readColumns(r io.Reader, opts *CSVOptions, columns []string) (map[string][]float64, []time.Time, error) {
	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, nil, err
		}
	}

	colIdx := make(map[string]int, len(columns))
	dateIdx := -1

	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, nil, err
		}
		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			for _, col := range columns {
				if h == col {
					colIdx[col] = i
				}
			}
			switch {
			case opts.DateColumn != "" && h == opts.DateColumn:
				dateIdx = i
			case h == "ds" || h == "date" || h == "Date" || h == "timestamp":
				if dateIdx == -1 {
					dateIdx = i
				}
			}
		}
		for _, col := range columns {
			if _, ok := colIdx[col]; !ok {
				return nil, nil, fmt.Errorf("column %q not found in CSV header", col)
			}
		}
	} else {
		// No header: first column is the date, requested columns follow
		// in the order given.
		dateIdx = 0
		for i, col := range columns {
			colIdx[col] = i + 1
		}
	}

	values := make(map[string][]float64, len(columns))
	var timestamps []time.Time

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}

		for _, col := range columns {
			idx := colIdx[col]
			values[col] = append(values[col], parseCell(record, idx))
		}

		if dateIdx >= 0 && dateIdx < len(record) {
			dateStr := strings.TrimSpace(strings.Trim(record[dateIdx], "\""))
			if ts, ok := parseDate(dateStr, opts.DateFormat); ok {
				timestamps = append(timestamps, ts)
			}
		}
	}

	return values, timestamps, nil
}

func parseCell(record []string, idx int) float64 {
	if idx < 0 || idx >= len(record) {
		return math.NaN()
	}
	valStr := strings.TrimSpace(strings.Trim(record[idx], "\""))
	if valStr == "" || valStr == "NA" || valStr == "NaN" || valStr == "null" {
		return math.NaN()
	}
	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		return math.NaN()
	}
	return val
}

func parseDate(dateStr, preferred string) (time.Time, bool) {
	formats := []string{
		preferred,
		"2006-01-02",
		"2006-01-02T15:04:05",
		"2006/01/02",
		"01/02/2006",
		"2006",
	}
	for _, f := range formats {
		if ts, err := time.Parse(f, dateStr); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// SaveCSV saves a time series to a CSV file with a ds,value header.
func SaveCSV(series *Series, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	name := series.Name
	if name == "" {
		name = "value"
	}

	hasDates := len(series.Timestamps) == len(series.Values)
	if hasDates {
		fmt.Fprintf(writer, "ds,%s\n", name)
	} else {
		fmt.Fprintf(writer, "index,%s\n", name)
	}

	for i, v := range series.Values {
		if hasDates {
			fmt.Fprintf(writer, "%s,%g\n", series.Timestamps[i].Format("2006-01-02"), v)
		} else {
			fmt.Fprintf(writer, "%d,%g\n", i, v)
		}
	}
	return nil
}
