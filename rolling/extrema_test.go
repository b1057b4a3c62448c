package rolling

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gofactor/timeseries"
)

func TestSum(t *testing.T) {
	s := timeseries.New([]float64{1, 2, 3, 4, 5})

	out, err := Sum(s, 3)
	require.NoError(t, err)

	assert.True(t, math.IsNaN(out.Values[0]))
	assert.True(t, math.IsNaN(out.Values[1]))
	assert.Equal(t, 6.0, out.Values[2])
	assert.Equal(t, 9.0, out.Values[3])
	assert.Equal(t, 12.0, out.Values[4])
}

func TestSumRecoversFromNaN(t *testing.T) {
	// Unlike Mean, a NaN taints only the windows it sits inside.
	s := timeseries.New([]float64{1, math.NaN(), 3, 4, 5})

	out, err := Sum(s, 2)
	require.NoError(t, err)

	assert.True(t, math.IsNaN(out.Values[1]))
	assert.True(t, math.IsNaN(out.Values[2]))
	assert.Equal(t, 7.0, out.Values[3])
	assert.Equal(t, 9.0, out.Values[4])
}

func TestMaxMin(t *testing.T) {
	s := timeseries.New([]float64{1, 3, 2})

	max, err := Max(s, 2)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(max.Values[0]))
	assert.Equal(t, 3.0, max.Values[1])
	assert.Equal(t, 3.0, max.Values[2])

	min, err := Min(s, 2)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(min.Values[0]))
	assert.Equal(t, 1.0, min.Values[1])
	assert.Equal(t, 2.0, min.Values[2])
}

func TestMaxNaNWindow(t *testing.T) {
	s := timeseries.New([]float64{1, math.NaN(), 3, 4})

	out, err := Max(s, 2)
	require.NoError(t, err)

	assert.True(t, math.IsNaN(out.Values[1]))
	assert.True(t, math.IsNaN(out.Values[2]))
	assert.Equal(t, 4.0, out.Values[3])
}

func TestMaxMinPosition(t *testing.T) {
	s := timeseries.New([]float64{1, 3, 2})

	out, err := MaxMin(s, 2)
	require.NoError(t, err)

	assert.True(t, math.IsNaN(out.Values[0]))
	assert.InDelta(t, 1.0, out.Values[1], 1e-12) // 3 is the window max
	assert.InDelta(t, 0.0, out.Values[2], 1e-12) // 2 is the window min
}

func TestMaxMinZeroRange(t *testing.T) {
	s := timeseries.New([]float64{2, 2, 2})

	out, err := MaxMin(s, 2)
	require.NoError(t, err)

	for i, v := range out.Values {
		assert.True(t, math.IsNaN(v), "index %d", i)
	}
}

func TestDelay(t *testing.T) {
	s := timeseries.New([]float64{1, 2, 3})

	out, err := Delay(s, 1)
	require.NoError(t, err)

	assert.Equal(t, s.Len(), out.Len())
	assert.True(t, math.IsNaN(out.Values[0]))
	assert.Equal(t, 1.0, out.Values[1])
	assert.Equal(t, 2.0, out.Values[2])
}

func TestDelta(t *testing.T) {
	s := timeseries.New([]float64{1, 3, 6, 10})

	out, err := Delta(s, 1)
	require.NoError(t, err)

	assert.True(t, math.IsNaN(out.Values[0]))
	assert.Equal(t, 2.0, out.Values[1])
	assert.Equal(t, 3.0, out.Values[2])
	assert.Equal(t, 4.0, out.Values[3])
}

func TestDeltaMultiPeriod(t *testing.T) {
	s := timeseries.New([]float64{1, 3, 6, 10, 15, 21})

	out, err := Delta(s, 2)
	require.NoError(t, err)

	assert.True(t, math.IsNaN(out.Values[0]))
	assert.True(t, math.IsNaN(out.Values[1]))
	assert.Equal(t, 5.0, out.Values[2])
	assert.Equal(t, 7.0, out.Values[3])
	assert.Equal(t, 9.0, out.Values[4])
	assert.Equal(t, 11.0, out.Values[5])
}

func TestExtremaInvalidWindows(t *testing.T) {
	s := timeseries.New([]float64{1, 2, 3})

	for name, err := range map[string]error{
		"sum":    func() error { _, err := Sum(s, 0); return err }(),
		"max":    func() error { _, err := Max(s, 0); return err }(),
		"min":    func() error { _, err := Min(s, 0); return err }(),
		"maxmin": func() error { _, err := MaxMin(s, 0); return err }(),
		"delay":  func() error { _, err := Delay(s, 0); return err }(),
		"delta":  func() error { _, err := Delta(s, 0); return err }(),
	} {
		assert.ErrorIs(t, err, ErrInvalidWindow, name)
	}
}
