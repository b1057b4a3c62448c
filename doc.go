// Package gofactor provides single-pass rolling-window statistics and
// quantitative factor construction for financial time series.
//
// GoFactor computes fixed-window statistics (rolling mean, standard
// deviation, rank, correlation, percentage change) in one left-to-right
// scan using incremental aggregators, and composes them into factor
// scores commonly used for signal construction (momentum, mean reversion,
// relative strength, Alpha101 #42).
//
// # Features
//
//   - O(1)-amortized sliding-window aggregation (no per-step recomputation)
//   - Length-preserving outputs with NaN warm-up and undefined-value sentinels
//   - Rolling mean, std, rank, correlation, percentage change, sum, max, min
//   - Factor compositors: momentum, mean reversion, relative strength, Alpha #42
//   - Performance metrics: Sharpe, Sortino, Calmar, max drawdown, annual return
//
// # Quick Start
//
// Compute a rolling statistic:
//
//	prices := timeseries.New(values)
//	ma, _ := rolling.Mean(prices, 20)
//	vol, _ := rolling.Std(prices, 20)
//
// Compute a factor score:
//
//	score, _ := factor.Momentum(prices, 252)
//
// Or dispatch by name over OHLCV inputs:
//
//	eng := factor.NewEngine()
//	score, _ := eng.Compute("mean_reversion", factor.Inputs{Close: close}, 20)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - timeseries: Series data structure and CSV loading
//   - rolling: single-pass windowed statistics
//   - factor: factor compositors and the named-factor engine
//   - metrics: scalar performance metrics over return series
//
// # Sentinel semantics
//
// Windowed functions never shorten a series. Positions without enough
// history, positions fed by non-finite inputs, and positions where a
// statistic is undefined (zero variance, zero divisor) carry NaN. The
// exact non-finite policy intentionally differs between functions; see
// the rolling package documentation.
package gofactor
