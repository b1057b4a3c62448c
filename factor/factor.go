// Package factor composes rolling statistics into quantitative factor scores.
package factor

import (
	"math"

	"github.com/sartorproj/gofactor/rolling"
	"github.com/sartorproj/gofactor/timeseries"
)

// Alpha42 components run on a fixed ten-observation window, per the
// Alpha101 #42 definition.
const alpha42Window = 10

// Relative strength blends three timeframes of ranked momentum with
// fixed weights.
var relStrengthWeights = [3]float64{0.5, 0.3, 0.2}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Momentum computes volatility-adjusted momentum: the lookback-period
// return divided by the rolling standard deviation of one-period
// returns over the same lookback. Positions where either operand is
// non-finite, or where volatility is zero, are NaN.
func Momentum(prices *timeseries.Series, lookback int) (*timeseries.Series, error) {
	returns, err := rolling.PctChange(prices, 1)
	if err != nil {
		return nil, err
	}
	momentum, err := rolling.PctChange(prices, lookback)
	if err != nil {
		return nil, err
	}
	vol, err := rolling.Std(returns, lookback)
	if err != nil {
		return nil, err
	}

	result := make([]float64, prices.Len())
	for i := range result {
		m, v := momentum.Values[i], vol.Values[i]
		if !isFinite(m) || !isFinite(v) || v == 0 {
			result[i] = math.NaN()
		} else {
			result[i] = m / v
		}
	}

	return prices.Derive(result, "_momentum"), nil
}

// MeanReversion computes the negated rolling z-score of price:
// -(price - mean) / std over the lookback window. High prices relative
// to their recent mean score negative (expected to revert down).
// Positions with any non-finite operand or zero std are NaN.
func MeanReversion(prices *timeseries.Series, lookback int) (*timeseries.Series, error) {
	ma, err := rolling.Mean(prices, lookback)
	if err != nil {
		return nil, err
	}
	sd, err := rolling.Std(prices, lookback)
	if err != nil {
		return nil, err
	}

	result := make([]float64, prices.Len())
	for i := range result {
		x, m, s := prices.Values[i], ma.Values[i], sd.Values[i]
		if !isFinite(x) || !isFinite(m) || !isFinite(s) || s == 0 {
			result[i] = math.NaN()
		} else {
			result[i] = -(x - m) / s
		}
	}

	return prices.Derive(result, "_mean_reversion"), nil
}

// RelativeStrength blends ranked momentum over three timeframes —
// lookback/3, lookback, and 2*lookback — with weights 0.5, 0.3, 0.2.
// Each timeframe's return series is ranked over the lookback window.
//
// Unlike the other factors, a non-finite rank contributes zero to the
// blend instead of propagating NaN, so warm-up positions score 0 rather
// than NaN. Lookbacks below 3 fail with ErrInvalidWindow because the
// shortest timeframe truncates to zero.
func RelativeStrength(prices *timeseries.Series, lookback int) (*timeseries.Series, error) {
	timeframes := [3]int{lookback / 3, lookback, lookback * 2}

	result := make([]float64, prices.Len())
	for k, tf := range timeframes {
		mom, err := rolling.PctChange(prices, tf)
		if err != nil {
			return nil, err
		}
		rank, err := rolling.Rank(mom, lookback)
		if err != nil {
			return nil, err
		}
		weight := relStrengthWeights[k]
		for i, r := range rank.Values {
			if isFinite(r) {
				result[i] += r * weight
			}
		}
	}

	return prices.Derive(result, "_relative_strength"), nil
}

// Alpha42 computes Alpha101 factor #42 from high prices and volume:
// -rank(std(high, 10), 10) * correlation(high, volume, 10). Negative
// volatility rank scaled by how tightly volume tracks price; NaN where
// either component is undefined.
func Alpha42(high, volume *timeseries.Series) (*timeseries.Series, error) {
	highStd, err := rolling.Std(high, alpha42Window)
	if err != nil {
		return nil, err
	}
	volRank, err := rolling.Rank(highStd, alpha42Window)
	if err != nil {
		return nil, err
	}
	priceVolCorr, err := rolling.Correlation(high, volume, alpha42Window)
	if err != nil {
		return nil, err
	}

	result := make([]float64, high.Len())
	for i := range result {
		r, c := volRank.Values[i], priceVolCorr.Values[i]
		if !isFinite(r) || !isFinite(c) {
			result[i] = math.NaN()
		} else {
			result[i] = -r * c
		}
	}

	return high.Derive(result, "_alpha42"), nil
}
