package rolling

import (
	"errors"
	"fmt"
	"math"

	"github.com/sartorproj/gofactor/timeseries"
)

// ErrInvalidWindow reports a window or period parameter below the
// minimum its statistic requires. It is the only parameter-level
// failure in this package; everything else is signaled in-band with
// NaN sentinels.
var ErrInvalidWindow = errors.New("invalid window")

func invalidWindow(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidWindow, fmt.Sprintf(format, args...))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Mean computes the rolling mean over a trailing window of size window.
// The first window-1 positions are NaN.
//
// Mean does not screen non-finite inputs: a NaN or Inf enters the
// running sum and propagates arithmetically. This asymmetry with Std
// and Correlation (which skip non-finite samples) is intentional;
// exclude bad values upstream if propagation is not wanted.
func Mean(s *timeseries.Series, window int) (*timeseries.Series, error) {
	if window < 1 {
		return nil, invalidWindow("mean window must be at least 1, got %d", window)
	}

	result := make([]float64, s.Len())
	win := newSumWindow(window)

	for i, v := range s.Values {
		win.push(v)
		if !win.full() {
			result[i] = math.NaN()
		} else {
			result[i] = win.mean()
		}
	}

	return s.Derive(result, "_mean"), nil
}

// Std computes the rolling population standard deviation over a
// trailing window of window valid samples.
//
// Non-finite inputs never enter the aggregator: such a step emits NaN
// and the window keeps its previous contents, so the statistic resumes
// from valid samples only. Zero-variance windows (and negative variance
// from floating-point cancellation) emit NaN rather than zero.
func Std(s *timeseries.Series, window int) (*timeseries.Series, error) {
	if window < 2 {
		return nil, invalidWindow("std window must be at least 2, got %d", window)
	}

	result := make([]float64, s.Len())
	win := newMomentWindow(window)

	for i, v := range s.Values {
		if !isFinite(v) {
			result[i] = math.NaN()
			continue
		}

		win.push(v)
		if !win.full() {
			result[i] = math.NaN()
			continue
		}

		variance := win.variance()
		if variance <= 0 {
			result[i] = math.NaN()
		} else {
			result[i] = math.Sqrt(variance)
		}
	}

	return s.Derive(result, "_std"), nil
}

// PctChange computes the relative change against the value periods
// steps back: (x[i] - x[i-periods]) / x[i-periods]. Positions without
// enough history, positions whose base value is non-finite or zero, and
// positions whose current value is non-finite are NaN.
func PctChange(s *timeseries.Series, periods int) (*timeseries.Series, error) {
	if periods < 1 {
		return nil, invalidWindow("pct change periods must be at least 1, got %d", periods)
	}

	result := make([]float64, s.Len())

	for i := range s.Values {
		if i < periods {
			result[i] = math.NaN()
			continue
		}
		prev := s.Values[i-periods]
		curr := s.Values[i]
		if !isFinite(prev) || prev == 0 || !isFinite(curr) {
			result[i] = math.NaN()
		} else {
			result[i] = (curr - prev) / prev
		}
	}

	return s.Derive(result, "_pct"), nil
}

// Rank computes the rolling empirical percentile of the current value
// within its trailing window: the fraction of valid window values less
// than or equal to it, in (0, 1]. Ties count inclusively, so a value
// always counts itself. Non-finite window entries are ignored; a
// non-finite current value emits NaN.
//
// The scan is O(window) per step. That is fine for typical factor
// windows; an order-statistics tree would bring it to O(log window) if
// large windows over long series ever dominate.
func Rank(s *timeseries.Series, window int) (*timeseries.Series, error) {
	if window < 2 {
		return nil, invalidWindow("rank window must be at least 2, got %d", window)
	}

	result := make([]float64, s.Len())

	for i := range s.Values {
		if i < window-1 {
			result[i] = math.NaN()
			continue
		}

		curr := s.Values[i]
		if !isFinite(curr) {
			result[i] = math.NaN()
			continue
		}

		start := i - window + 1
		if start < 0 {
			start = 0
		}

		valid := 0
		le := 0
		for _, v := range s.Values[start : i+1] {
			if !isFinite(v) {
				continue
			}
			valid++
			if v <= curr {
				le++
			}
		}

		if valid == 0 {
			result[i] = math.NaN()
		} else {
			result[i] = float64(le) / float64(valid)
		}
	}

	return s.Derive(result, "_rank"), nil
}

// Correlation computes the rolling Pearson correlation between x and y
// over the trailing window of valid paired samples. A step where either
// input is non-finite emits NaN and is skipped by the aggregator; the
// pair never enters the running sums. Windows where either series has
// zero variance emit NaN.
func Correlation(x, y *timeseries.Series, window int) (*timeseries.Series, error) {
	if window < 2 {
		return nil, invalidWindow("correlation window must be at least 2, got %d", window)
	}
	if x.Len() != y.Len() {
		return nil, errors.New("series must have the same length")
	}

	result := make([]float64, x.Len())
	win := newPairWindow(window)

	for i := range x.Values {
		xv, yv := x.Values[i], y.Values[i]
		if !isFinite(xv) || !isFinite(yv) {
			result[i] = math.NaN()
			continue
		}

		win.push(xv, yv)
		if !win.full() {
			result[i] = math.NaN()
			continue
		}

		cov, varX, varY := win.moments()
		if varX <= 0 || varY <= 0 {
			result[i] = math.NaN()
		} else {
			result[i] = cov / (math.Sqrt(varX) * math.Sqrt(varY))
		}
	}

	return x.Derive(result, "_corr"), nil
}
