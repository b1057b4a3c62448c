// Package timeseries provides time series data structures and utilities.
//
// This package includes the Series type for representing time series data,
// along with functions for data loading and transformation. A Series may
// carry NaN entries: the rolling package emits NaN in place of undefined
// values, so the summary statistics here skip non-finite entries.
//
// # Creating a Series
//
// Create a time series from a slice:
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.New(values)
//
// # Loading from CSV
//
// Load a single series:
//
//	series, err := timeseries.LoadCSVColumn("bars.csv", "close")
//
// Load aligned OHLCV columns in one pass:
//
//	cols, err := timeseries.LoadCSVColumns("bars.csv", []string{"close", "high", "volume"})
//	closeSeries := cols["close"]
//
// Cells that are empty or unparseable load as NaN; rows are never dropped,
// so every loaded column stays aligned with its timestamps.
//
// # Basic Statistics
//
// Summary statistics over the finite values of a series:
//
//	mean := series.Mean()
//	std := series.Std()
//	min := series.Min()
//	max := series.Max()
//	median := series.Median()
//
// # Transformations
//
// Length-preserving transforms:
//
//	logged := series.Log()           // Natural log, NaN for non-positive
//	normalized := series.Normalize() // Z-score normalization
//
// # Slicing and Manipulation
//
// Work with subsets of the data:
//
//	subset := series.Slice(10, 50)
//	copy := series.Copy()
package timeseries
