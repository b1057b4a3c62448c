// Package rolling provides single-pass, fixed-window statistics over
// time series.
//
// Every function scans its input once, left to right, maintaining the
// running sums it needs over a bounded trailing window, so each step
// costs O(1) amortized (Rank is the exception at O(window) per step).
// Output series always have the same length as their inputs; position i
// depends only on input positions at or before i.
//
// # Warm-up and sentinels
//
// The first positions of a windowed output, where fewer than window
// observations exist, carry NaN. NaN is also emitted where a statistic
// is undefined: zero or negative variance, zero percentage-change base,
// or non-finite input. NaN outputs are expected in normal operation and
// are not errors; the only error these functions return is
// ErrInvalidWindow for a window or period parameter below its minimum.
//
// # Non-finite input policy
//
// The functions intentionally differ in how they treat NaN and Inf
// inputs, matching long-standing behavior:
//
//   - Mean pushes every value: a non-finite input enters the running sum
//     and propagates arithmetically from then on.
//   - Std and Correlation skip the sample entirely: the step emits NaN
//     but the aggregator keeps its previous window, so the statistic is
//     computed over the last window valid samples.
//   - Sum, Max, Min, and MaxMin emit NaN while a non-finite value is
//     inside the window and recover once it ages out.
//   - Rank filters non-finite values out of the window before counting.
//
// Callers who want uniform behavior should clean their inputs first.
//
// # Example
//
// Rolling statistics over a price series:
//
//	prices := timeseries.New(values)
//	ma, err := rolling.Mean(prices, 20)
//	vol, err := rolling.Std(prices, 20)
//	ret, err := rolling.PctChange(prices, 1)
//	pos, err := rolling.Rank(prices, 20)
//	corr, err := rolling.Correlation(prices, volumes, 20)
//
// Invalid parameters surface as ErrInvalidWindow:
//
//	_, err := rolling.Std(prices, 1)
//	errors.Is(err, rolling.ErrInvalidWindow) // true
package rolling
