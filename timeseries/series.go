// Package timeseries provides core time series data structures and operations.
package timeseries

import (
	"errors"
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Series represents a time series with timestamps and values.
//
// Values may contain NaN sentinels: the rolling layer emits NaN for
// warm-up positions and undefined statistics, so every consumer of a
// Series must tolerate them. Summary statistics on Series skip NaN.
type Series struct {
	Timestamps []time.Time
	Values     []float64
	Name       string
}

// New creates a new time series from values.
func New(values []float64) *Series {
	timestamps := make([]time.Time, len(values))
	base := time.Now()
	for i := range timestamps {
		timestamps[i] = base.Add(time.Duration(i) * time.Hour)
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}
}

// NewWithTimestamps creates a time series with explicit timestamps.
func NewWithTimestamps(timestamps []time.Time, values []float64) (*Series, error) {
	if len(timestamps) != len(values) {
		return nil, errors.New("timestamps and values must have the same length")
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}, nil
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// finite returns the finite values of the series.
func (s *Series) finite() []float64 {
	out := make([]float64, 0, len(s.Values))
	for _, v := range s.Values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}

// Mean calculates the arithmetic mean of the finite values in the series.
func (s *Series) Mean() float64 {
	vals := s.finite()
	if len(vals) == 0 {
		return math.NaN()
	}
	return stat.Mean(vals, nil)
}

// Variance calculates the sample variance of the finite values in the series.
func (s *Series) Variance() float64 {
	vals := s.finite()
	if len(vals) < 2 {
		return math.NaN()
	}
	return stat.Variance(vals, nil)
}

// Std calculates the sample standard deviation of the finite values in the series.
func (s *Series) Std() float64 {
	vals := s.finite()
	if len(vals) < 2 {
		return math.NaN()
	}
	return stat.StdDev(vals, nil)
}

// Min returns the minimum finite value in the series.
func (s *Series) Min() float64 {
	vals := s.finite()
	if len(vals) == 0 {
		return math.NaN()
	}
	min := vals[0]
	for _, v := range vals[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the maximum finite value in the series.
func (s *Series) Max() float64 {
	vals := s.finite()
	if len(vals) == 0 {
		return math.NaN()
	}
	max := vals[0]
	for _, v := range vals[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Median returns the median of the finite values in the series.
func (s *Series) Median() float64 {
	sorted := s.finite()
	if len(sorted) == 0 {
		return math.NaN()
	}
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Slice returns a slice of the series from start to end (exclusive).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{Values: []float64{}}
	}

	values := make([]float64, end-start)
	copy(values, s.Values[start:end])

	timestamps := make([]time.Time, len(values))
	if len(s.Timestamps) >= end {
		copy(timestamps, s.Timestamps[start:end])
	}

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	timestamps := make([]time.Time, len(s.Timestamps))
	copy(timestamps, s.Timestamps)

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}

// Derive creates a same-length series sharing this series' timestamps and
// holding the given values. Windowed statistics use it so their outputs
// stay aligned with their inputs.
func (s *Series) Derive(values []float64, suffix string) *Series {
	timestamps := make([]time.Time, len(s.Timestamps))
	copy(timestamps, s.Timestamps)

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name + suffix,
	}
}

// Log applies natural logarithm transformation. Non-positive and
// non-finite values map to NaN.
func (s *Series) Log() *Series {
	result := make([]float64, len(s.Values))
	for i, v := range s.Values {
		if v > 0 && !math.IsInf(v, 1) {
			result[i] = math.Log(v)
		} else {
			result[i] = math.NaN()
		}
	}
	return s.Derive(result, "_log")
}

// Normalize standardizes the series (z-score normalization) using the
// mean and standard deviation of its finite values.
func (s *Series) Normalize() *Series {
	mean := s.Mean()
	std := s.Std()

	if std == 0 || math.IsNaN(std) {
		return s.Copy()
	}

	result := make([]float64, len(s.Values))
	for i, v := range s.Values {
		result[i] = (v - mean) / std
	}
	return s.Derive(result, "_normalized")
}
