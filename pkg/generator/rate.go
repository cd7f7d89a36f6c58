package generator

// RateWindowSize is the number of rate samples the rolling average covers.
const RateWindowSize = 5

// RateWindow keeps the most recent rate samples, evicting the oldest first.
// It is not safe for concurrent use; the coordinator owns it.
type RateWindow struct {
	samples []float64
	size    int
}

// NewRateWindow creates a window holding up to size samples.
func NewRateWindow(size int) *RateWindow {
	if size <= 0 {
		size = RateWindowSize
	}
	return &RateWindow{
		samples: make([]float64, 0, size),
		size:    size,
	}
}

// Push adds a sample, dropping the oldest one when the window is full.
func (w *RateWindow) Push(rate float64) {
	if len(w.samples) == w.size {
		copy(w.samples, w.samples[1:])
		w.samples = w.samples[:w.size-1]
	}
	w.samples = append(w.samples, rate)
}

// Average returns the arithmetic mean of the samples, or 0 when empty.
func (w *RateWindow) Average() float64 {
	if len(w.samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range w.samples {
		sum += s
	}
	return sum / float64(len(w.samples))
}

// Samples returns a copy of the samples, oldest first.
func (w *RateWindow) Samples() []float64 {
	out := make([]float64, len(w.samples))
	copy(out, w.samples)
	return out
}

// Len returns the number of samples held.
func (w *RateWindow) Len() int {
	return len(w.samples)
}
