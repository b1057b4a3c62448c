// Package factor composes rolling statistics into factor scores for
// quantitative signal construction.
//
// Four factors are provided, each a pure function returning a series of
// the input's length:
//
//   - Momentum: lookback return over the volatility of daily returns
//   - MeanReversion: negated rolling z-score of price
//   - RelativeStrength: weighted blend of ranked momentum across three timeframes
//   - Alpha42: Alpha101 #42, from high prices and volume
//
// Factors introduce no failure kinds of their own: they propagate
// rolling.ErrInvalidWindow from their constituent calls and emit NaN
// sentinels in-band like the rolling layer. RelativeStrength departs
// from that policy in one place: a NaN rank contributes zero to the
// weighted blend rather than propagating.
//
// # Direct use
//
//	score, err := factor.Momentum(prices, 252)
//	zscore, err := factor.MeanReversion(prices, 20)
//
// # Named dispatch
//
// The Engine resolves factors by name with per-factor default
// lookbacks, for callers that select factors from configuration:
//
//	eng := factor.NewEngine()
//	in := factor.Inputs{Close: close, High: high, Volume: volume}
//	score, err := eng.Compute("relative_strength", in, 0) // default lookback 60
package factor
