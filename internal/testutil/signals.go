// Package testutil provides deterministic signal synthesis and comparison
// helpers shared by the analysis tests.
package testutil

import "math"

// SampledSine returns a uniform time axis of n steps of dt and the matching
// samples of amplitude*sin(2*pi*freqHz*t).
func SampledSine(freqHz, dt, amplitude float64, n int) (times, values []float64) {
	times = make([]float64, n)
	values = make([]float64, n)
	for i := range times {
		t := float64(i) * dt
		times[i] = t
		values[i] = amplitude * math.Sin(2*math.Pi*freqHz*t)
	}
	return times, values
}
