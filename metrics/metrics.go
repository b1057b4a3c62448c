// Package metrics provides scalar performance metrics over return series.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// TradingDays is the conventional number of trading periods per year
// for daily data.
const TradingDays = 252

// MaxDrawdown returns the largest peak-to-trough decline of the
// cumulative growth curve implied by the returns, as a positive
// fraction. Empty input yields NaN.
func MaxDrawdown(returns []float64) float64 {
	if len(returns) == 0 {
		return math.NaN()
	}

	cumulative := 1.0
	peak := 1.0
	worst := 0.0
	for _, r := range returns {
		cumulative *= 1 + r
		if cumulative > peak {
			peak = cumulative
		}
		if dd := cumulative/peak - 1; dd < worst {
			worst = dd
		}
	}
	return math.Abs(worst)
}

// SharpeRatio returns the annualized Sharpe ratio of the returns
// against a constant per-period risk-free rate. periods is the number
// of periods per year (TradingDays for daily data). Empty input or zero
// sample standard deviation yields NaN.
func SharpeRatio(returns []float64, riskFree float64, periods int) float64 {
	excess := excessReturns(returns, riskFree)
	if len(excess) == 0 {
		return math.NaN()
	}

	mean := stat.Mean(excess, nil)
	std := stat.StdDev(excess, nil)
	if std == 0 || math.IsNaN(std) {
		return math.NaN()
	}
	return math.Sqrt(float64(periods)) * mean / std
}

// AnnualReturn returns the geometric annualized return of the series.
// Empty input yields NaN.
func AnnualReturn(returns []float64, periods int) float64 {
	if len(returns) == 0 {
		return math.NaN()
	}

	growth := make([]float64, len(returns))
	for i, r := range returns {
		growth[i] = 1 + r
	}
	cumulative := floats.Prod(growth)
	years := float64(len(returns)) / float64(periods)
	return math.Pow(cumulative, 1/years) - 1
}

// SortinoRatio returns the annualized Sortino ratio: mean excess return
// over the standard deviation of negative excess returns only. With no
// downside observations the ratio is +Inf for a positive mean and NaN
// otherwise; zero downside deviation yields NaN.
func SortinoRatio(returns []float64, riskFree float64, periods int) float64 {
	excess := excessReturns(returns, riskFree)
	if len(excess) == 0 {
		return math.NaN()
	}

	mean := stat.Mean(excess, nil)

	var downside []float64
	for _, r := range excess {
		if r < 0 {
			downside = append(downside, r)
		}
	}
	if len(downside) == 0 {
		if mean > 0 {
			return math.Inf(1)
		}
		return math.NaN()
	}

	downsideStd := stat.StdDev(downside, nil)
	if downsideStd == 0 || math.IsNaN(downsideStd) {
		return math.NaN()
	}
	return math.Sqrt(float64(periods)) * mean / downsideStd
}

// CalmarRatio returns the annualized return divided by the maximum
// drawdown. Empty input or zero drawdown yields NaN.
func CalmarRatio(returns []float64, periods int) float64 {
	if len(returns) == 0 {
		return math.NaN()
	}

	maxDD := MaxDrawdown(returns)
	if maxDD == 0 {
		return math.NaN()
	}
	return AnnualReturn(returns, periods) / maxDD
}

func excessReturns(returns []float64, riskFree float64) []float64 {
	excess := make([]float64, len(returns))
	copy(excess, returns)
	floats.AddConst(-riskFree, excess)
	return excess
}
