package spectral

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/vortexshed/internal/window"
)

// PeriodogramConfig holds windowed-spectrum parameters.
type PeriodogramConfig struct {
	// FFTSize is the zero-padded transform length. It must be a power of
	// two and at least the series length; 0 selects the next power of two.
	FFTSize int
	// WindowType selects the analysis window. The zero value is Hann.
	WindowType window.Type
}

// Periodogram computes a windowed, zero-padded magnitude spectrum of values
// sampled at times t and locates the dominant positive-frequency peak.
//
// The analysis window suppresses the spectral leakage a finite, unwindowed
// history smears across neighbouring bins, at the cost of widening the main
// lobe. Zero padding to a power of two places bins at k/(FFTSize*dt), which
// interpolates the underlying spectrum without adding information; combine
// with [Result.RefinePeak] for sub-bin peak estimates.
func Periodogram(t, values []float64, cfg PeriodogramConfig, opts ...Option) (*Result, error) {
	c := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	if err := validateInput(t, values); err != nil {
		return nil, err
	}
	dt, err := sampleInterval(t, c)
	if err != nil {
		return nil, err
	}

	n := len(values)
	fftSize := cfg.FFTSize
	if fftSize <= 0 {
		fftSize = nextPowerOf2(n)
	}
	if fftSize < n {
		return nil, fmt.Errorf("spectral: periodogram FFT size %d smaller than series length %d", fftSize, n)
	}
	if fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("spectral: periodogram FFT size must be a power of two: %d", fftSize)
	}

	coeffs := window.Generate(cfg.WindowType, n)

	in := make([]complex128, fftSize)
	for i, v := range values {
		in[i] = complex(v*coeffs[i], 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectral: create FFT plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectral: forward FFT: %w", err)
	}

	positive := out[1 : fftSize/2+1]

	return resultFromBins(positive, fftSize, dt), nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
