package hardware

import "sort"

// DefaultSamples is the burst size used by NewMedianSampler when n <= 0.
const DefaultSamples = 5

// MedianSampler wraps a single-shot DistanceSensor. Each MeasureDistance
// call takes a burst of samples, drops the invalid ones and returns the
// median of what remains, or NoReading if nothing valid came back.
type MedianSampler struct {
	src     DistanceSensor
	samples int
	buf     []float64
}

// NewMedianSampler returns a sampler taking n samples per measurement.
func NewMedianSampler(src DistanceSensor, n int) *MedianSampler {
	if n <= 0 {
		n = DefaultSamples
	}

	return &MedianSampler{src: src, samples: n, buf: make([]float64, 0, n)}
}

// MeasureDistance implements DistanceSensor.
func (m *MedianSampler) MeasureDistance() float64 {
	m.buf = m.buf[:0]
	for i := 0; i < m.samples; i++ {
		if d := m.src.MeasureDistance(); Valid(d) {
			m.buf = append(m.buf, d)
		}
	}

	return Median(m.buf)
}

// Median returns the median of values, averaging the two middle elements
// for even lengths. It returns NoReading for an empty slice.
// The slice is sorted in place.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return NoReading
	}
	sort.Float64s(values)
	if n%2 == 1 {
		return values[n/2]
	}

	return (values[n/2-1] + values[n/2]) / 2
}

// SampleSensors wraps every sensor of s in a MedianSampler.
func SampleSensors(s Sensors, n int) Sensors {
	return Sensors{
		Left:  NewMedianSampler(s.Left, n),
		Front: NewMedianSampler(s.Front, n),
		Right: NewMedianSampler(s.Right, n),
	}
}
