package rolling

import (
	"github.com/gammazero/deque"
)

// sumWindow maintains a running sum over a bounded trailing window of
// raw values. Pushing beyond capacity evicts the oldest value and
// subtracts its contribution, so each step is O(1) amortized.
type sumWindow struct {
	capacity int
	buf      deque.Deque[float64]
	sum      float64
}

func newSumWindow(capacity int) *sumWindow {
	return &sumWindow{capacity: capacity}
}

func (w *sumWindow) push(v float64) {
	w.buf.PushBack(v)
	w.sum += v
	if w.buf.Len() > w.capacity {
		w.sum -= w.buf.PopFront()
	}
}

func (w *sumWindow) full() bool {
	return w.buf.Len() == w.capacity
}

func (w *sumWindow) mean() float64 {
	return w.sum / float64(w.buf.Len())
}

// momentWindow additionally tracks the running sum of squares, enough
// for the biased (population) variance over the window.
type momentWindow struct {
	capacity int
	buf      deque.Deque[float64]
	sum      float64
	sumSq    float64
}

func newMomentWindow(capacity int) *momentWindow {
	return &momentWindow{capacity: capacity}
}

func (w *momentWindow) push(v float64) {
	w.buf.PushBack(v)
	w.sum += v
	w.sumSq += v * v
	if w.buf.Len() > w.capacity {
		old := w.buf.PopFront()
		w.sum -= old
		w.sumSq -= old * old
	}
}

func (w *momentWindow) full() bool {
	return w.buf.Len() == w.capacity
}

// variance returns the biased variance sum_sq/n - mean^2. Floating-point
// cancellation can drive it slightly negative; callers treat <= 0 as
// undefined.
func (w *momentWindow) variance() float64 {
	n := float64(w.buf.Len())
	mean := w.sum / n
	return w.sumSq/n - mean*mean
}

// pairWindow tracks the paired running sums needed for Pearson
// correlation over the trailing window of valid (x, y) samples.
type pairWindow struct {
	capacity int
	bufX     deque.Deque[float64]
	bufY     deque.Deque[float64]
	sumX     float64
	sumY     float64
	sumXY    float64
	sumXX    float64
	sumYY    float64
}

func newPairWindow(capacity int) *pairWindow {
	return &pairWindow{capacity: capacity}
}

func (w *pairWindow) push(x, y float64) {
	w.bufX.PushBack(x)
	w.bufY.PushBack(y)
	w.sumX += x
	w.sumY += y
	w.sumXY += x * y
	w.sumXX += x * x
	w.sumYY += y * y
	if w.bufX.Len() > w.capacity {
		oldX := w.bufX.PopFront()
		oldY := w.bufY.PopFront()
		w.sumX -= oldX
		w.sumY -= oldY
		w.sumXY -= oldX * oldY
		w.sumXX -= oldX * oldX
		w.sumYY -= oldY * oldY
	}
}

func (w *pairWindow) full() bool {
	return w.bufX.Len() == w.capacity
}

// moments returns the covariance and the two biased variances over the
// current window.
func (w *pairWindow) moments() (cov, varX, varY float64) {
	n := float64(w.bufX.Len())
	meanX := w.sumX / n
	meanY := w.sumY / n
	cov = w.sumXY/n - meanX*meanY
	varX = w.sumXX/n - meanX*meanX
	varY = w.sumYY/n - meanY*meanY
	return cov, varX, varY
}

// countingWindow tracks a running sum alongside the number of non-finite
// entries currently inside the window, so windowed sums can report NaN
// while a bad sample is in range and recover once it ages out.
type countingWindow struct {
	capacity int
	buf      deque.Deque[float64]
	sum      float64
	bad      int
}

func newCountingWindow(capacity int) *countingWindow {
	return &countingWindow{capacity: capacity}
}

func (w *countingWindow) push(v float64) {
	w.buf.PushBack(v)
	if isFinite(v) {
		w.sum += v
	} else {
		w.bad++
	}
	if w.buf.Len() > w.capacity {
		old := w.buf.PopFront()
		if isFinite(old) {
			w.sum -= old
		} else {
			w.bad--
		}
	}
}

func (w *countingWindow) full() bool {
	return w.buf.Len() == w.capacity
}

func (w *countingWindow) tainted() bool {
	return w.bad > 0
}
