// Package main demonstrates rolling statistics and factor computation
// on a synthetic OHLCV price history.
package main

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/sartorproj/gofactor/factor"
	"github.com/sartorproj/gofactor/metrics"
	"github.com/sartorproj/gofactor/rolling"
	"github.com/sartorproj/gofactor/timeseries"
)

const (
	nBars    = 500
	lookback = 20
)

func main() {
	closeSeries, highSeries, volumeSeries := syntheticBars(nBars)

	section("Rolling statistics")
	ma, err := rolling.Mean(closeSeries, lookback)
	must(err)
	vol, err := rolling.Std(closeSeries, lookback)
	must(err)
	ret, err := rolling.PctChange(closeSeries, 1)
	must(err)
	rank, err := rolling.Rank(closeSeries, lookback)
	must(err)
	corr, err := rolling.Correlation(highSeries, volumeSeries, lookback)
	must(err)

	fmt.Printf("%-22s %12s %12s\n", "statistic", "last value", "defined")
	printStat("mean(close, 20)", ma)
	printStat("std(close, 20)", vol)
	printStat("pct_change(close, 1)", ret)
	printStat("rank(close, 20)", rank)
	printStat("corr(high, volume, 20)", corr)

	section("Factor scores")
	eng := factor.NewEngine()
	inputs := factor.Inputs{Close: closeSeries, High: highSeries, Volume: volumeSeries}

	fmt.Printf("%-22s %12s %12s\n", "factor", "last value", "defined")
	for _, name := range eng.Factors() {
		score, err := eng.Compute(name, inputs, lookback)
		must(err)
		printStat(name, score)
	}

	section("Performance metrics on daily returns")
	returns := finiteValues(ret)
	fmt.Printf("  %-16s %10.4f\n", "annual return", metrics.AnnualReturn(returns, metrics.TradingDays))
	fmt.Printf("  %-16s %10.4f\n", "sharpe", metrics.SharpeRatio(returns, 0, metrics.TradingDays))
	fmt.Printf("  %-16s %10.4f\n", "sortino", metrics.SortinoRatio(returns, 0, metrics.TradingDays))
	fmt.Printf("  %-16s %10.4f\n", "max drawdown", metrics.MaxDrawdown(returns))
	fmt.Printf("  %-16s %10.4f\n", "calmar", metrics.CalmarRatio(returns, metrics.TradingDays))
}

// syntheticBars generates a deterministic random-walk price history
// with a volume stream loosely coupled to price moves.
func syntheticBars(n int) (closeSeries, highSeries, volumeSeries *timeseries.Series) {
	rng := rand.New(rand.NewSource(42))

	closes := make([]float64, n)
	highs := make([]float64, n)
	volumes := make([]float64, n)

	price := 100.0
	for i := 0; i < n; i++ {
		move := rng.NormFloat64() * 0.02
		price *= 1 + move
		closes[i] = price
		highs[i] = price * (1 + math.Abs(rng.NormFloat64())*0.01)
		volumes[i] = 1e6 * (1 + math.Abs(move)*20 + rng.Float64()*0.1)
	}

	closeSeries = timeseries.New(closes)
	closeSeries.Name = "close"
	highSeries = timeseries.New(highs)
	highSeries.Name = "high"
	volumeSeries = timeseries.New(volumes)
	volumeSeries.Name = "volume"
	return closeSeries, highSeries, volumeSeries
}

func printStat(label string, s *timeseries.Series) {
	defined := 0
	for _, v := range s.Values {
		if !math.IsNaN(v) {
			defined++
		}
	}
	fmt.Printf("%-22s %12.6f %9d/%d\n", label, s.Values[s.Len()-1], defined, s.Len())
}

func finiteValues(s *timeseries.Series) []float64 {
	out := make([]float64, 0, s.Len())
	for _, v := range s.Values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}

func section(title string) {
	fmt.Printf("\n%s\n%s\n", title, strings.Repeat("=", len(title)))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
