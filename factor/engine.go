package factor

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sartorproj/gofactor/timeseries"
)

// Default lookbacks per factor, applied when Compute receives a
// non-positive lookback.
const (
	DefaultMomentumLookback         = 252
	DefaultMeanReversionLookback    = 20
	DefaultRelativeStrengthLookback = 60
)

// Inputs carries the aligned input series a factor may need. Price
// factors read Close; Alpha42 reads High and Volume.
type Inputs struct {
	Close  *timeseries.Series
	High   *timeseries.Series
	Volume *timeseries.Series
}

// computeFunc adapts one factor to the engine's uniform signature.
type computeFunc func(in Inputs, lookback int) (*timeseries.Series, error)

// Engine dispatches factor computation by name. The zero set of factors
// is the built-in four; it carries no state beyond the registry and is
// safe for concurrent use.
type Engine struct {
	factors map[string]computeFunc
}

// NewEngine creates an engine with the built-in factors registered:
// "momentum", "mean_reversion", "relative_strength", and "alpha42".
func NewEngine() *Engine {
	return &Engine{
		factors: map[string]computeFunc{
			"momentum": func(in Inputs, lookback int) (*timeseries.Series, error) {
				if in.Close == nil {
					return nil, errors.New("momentum requires Close")
				}
				if lookback <= 0 {
					lookback = DefaultMomentumLookback
				}
				return Momentum(in.Close, lookback)
			},
			"mean_reversion": func(in Inputs, lookback int) (*timeseries.Series, error) {
				if in.Close == nil {
					return nil, errors.New("mean_reversion requires Close")
				}
				if lookback <= 0 {
					lookback = DefaultMeanReversionLookback
				}
				return MeanReversion(in.Close, lookback)
			},
			"relative_strength": func(in Inputs, lookback int) (*timeseries.Series, error) {
				if in.Close == nil {
					return nil, errors.New("relative_strength requires Close")
				}
				if lookback <= 0 {
					lookback = DefaultRelativeStrengthLookback
				}
				return RelativeStrength(in.Close, lookback)
			},
			"alpha42": func(in Inputs, _ int) (*timeseries.Series, error) {
				if in.High == nil || in.Volume == nil {
					return nil, errors.New("alpha42 requires High and Volume")
				}
				return Alpha42(in.High, in.Volume)
			},
		},
	}
}

// Factors returns the registered factor names, sorted.
func (e *Engine) Factors() []string {
	names := make([]string, 0, len(e.factors))
	for name := range e.factors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Compute runs the named factor over the inputs. A non-positive
// lookback selects the factor's default; alpha42 ignores the lookback
// entirely (its windows are fixed at 10).
func (e *Engine) Compute(name string, in Inputs, lookback int) (*timeseries.Series, error) {
	fn, ok := e.factors[name]
	if !ok {
		return nil, fmt.Errorf("unknown factor: %s", name)
	}

	series, err := fn(in, lookback)
	if err != nil {
		return nil, err
	}
	series.Name = name
	return series, nil
}
