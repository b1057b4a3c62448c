package rolling

import (
	"math"

	"github.com/sartorproj/gofactor/timeseries"
)

// Sum computes the rolling sum over a trailing window. Unlike Mean, a
// non-finite input does not poison the running sum forever: the window
// reports NaN while the bad sample is in range and recovers once it
// ages out.
func Sum(s *timeseries.Series, window int) (*timeseries.Series, error) {
	if window < 1 {
		return nil, invalidWindow("sum window must be at least 1, got %d", window)
	}

	result := make([]float64, s.Len())
	win := newCountingWindow(window)

	for i, v := range s.Values {
		win.push(v)
		if !win.full() || win.tainted() {
			result[i] = math.NaN()
		} else {
			result[i] = win.sum
		}
	}

	return s.Derive(result, "_sum"), nil
}

// Max computes the rolling maximum over a trailing window. Windows
// containing a non-finite value emit NaN.
func Max(s *timeseries.Series, window int) (*timeseries.Series, error) {
	if window < 1 {
		return nil, invalidWindow("max window must be at least 1, got %d", window)
	}
	result := scanExtrema(s.Values, window, func(max, _ float64) float64 { return max })
	return s.Derive(result, "_max"), nil
}

// Min computes the rolling minimum over a trailing window. Windows
// containing a non-finite value emit NaN.
func Min(s *timeseries.Series, window int) (*timeseries.Series, error) {
	if window < 1 {
		return nil, invalidWindow("min window must be at least 1, got %d", window)
	}
	result := scanExtrema(s.Values, window, func(_, min float64) float64 { return min })
	return s.Derive(result, "_min"), nil
}

// MaxMin computes the normalized position of the current value inside
// its trailing window's range: (x - min) / (max - min), in [0, 1].
// Windows with a non-finite value or zero range emit NaN.
func MaxMin(s *timeseries.Series, window int) (*timeseries.Series, error) {
	if window < 1 {
		return nil, invalidWindow("maxmin window must be at least 1, got %d", window)
	}

	result := make([]float64, len(s.Values))
	for i := range s.Values {
		max, min, ok := windowExtrema(s.Values, i, window)
		if !ok || max == min {
			result[i] = math.NaN()
		} else {
			result[i] = (s.Values[i] - min) / (max - min)
		}
	}

	return s.Derive(result, "_maxmin"), nil
}

// Delay shifts the series forward by periods, padding the head with
// NaN. The output keeps the input's length, unlike a truncating lag.
func Delay(s *timeseries.Series, periods int) (*timeseries.Series, error) {
	if periods < 1 {
		return nil, invalidWindow("delay periods must be at least 1, got %d", periods)
	}

	result := make([]float64, s.Len())
	for i := range result {
		if i < periods {
			result[i] = math.NaN()
		} else {
			result[i] = s.Values[i-periods]
		}
	}

	return s.Derive(result, "_delay"), nil
}

// Delta computes the difference against the value periods steps back:
// x[i] - x[i-periods], with NaN head padding. Non-finite operands
// propagate arithmetically.
func Delta(s *timeseries.Series, periods int) (*timeseries.Series, error) {
	if periods < 1 {
		return nil, invalidWindow("delta periods must be at least 1, got %d", periods)
	}

	result := make([]float64, s.Len())
	for i := range result {
		if i < periods {
			result[i] = math.NaN()
		} else {
			result[i] = s.Values[i] - s.Values[i-periods]
		}
	}

	return s.Derive(result, "_delta"), nil
}

// scanExtrema evaluates pick(max, min) over each full trailing window,
// emitting NaN for warm-up and tainted windows.
func scanExtrema(values []float64, window int, pick func(max, min float64) float64) []float64 {
	result := make([]float64, len(values))
	for i := range values {
		max, min, ok := windowExtrema(values, i, window)
		if !ok {
			result[i] = math.NaN()
		} else {
			result[i] = pick(max, min)
		}
	}
	return result
}

// windowExtrema returns the max and min of the trailing window ending
// at i. ok is false during warm-up and when any window entry is
// non-finite.
func windowExtrema(values []float64, i, window int) (max, min float64, ok bool) {
	if i < window-1 {
		return 0, 0, false
	}

	max = math.Inf(-1)
	min = math.Inf(1)
	for _, v := range values[i-window+1 : i+1] {
		if !isFinite(v) {
			return 0, 0, false
		}
		if v > max {
			max = v
		}
		if v < min {
			min = v
		}
	}
	return max, min, true
}
