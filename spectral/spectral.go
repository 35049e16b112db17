package spectral

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/dsp/fourier"
)

// defaultSpacingTolerance is the maximum relative deviation of any time step
// from the first one before the series is rejected as non-uniform.
const defaultSpacingTolerance = 1e-3

// Result holds the positive-frequency spectrum of one time series.
//
// Freqs and Spectrum have equal length, one entry per strictly positive
// frequency bin in ascending order. The Nyquist bin of an even-length
// transform is included.
type Result struct {
	// DominantFreq is the frequency in Hz of the maximum-magnitude bin.
	// Ties resolve to the lowest bin.
	DominantFreq float64
	// Freqs is the positive-frequency axis in Hz, bin k at k/(N*dt).
	Freqs []float64
	// Spectrum is the transform magnitude |X[k]| at the same bins.
	Spectrum []float64
	// PeakIndex is the index of the dominant bin within Freqs.
	PeakIndex int
	// BinWidth is the frequency resolution 1/(N*dt) in Hz.
	BinWidth float64
}

// Option configures spectral analysis.
type Option func(*config)

type config struct {
	spacingTolerance float64
	checkSpacing     bool
}

func defaultConfig() config {
	return config{
		spacingTolerance: defaultSpacingTolerance,
		checkSpacing:     true,
	}
}

// WithSpacingTolerance sets the maximum relative deviation allowed between
// any time step and the first one. Values <= 0 are ignored.
func WithSpacingTolerance(tol float64) Option {
	return func(c *config) {
		if tol > 0 {
			c.spacingTolerance = tol
		}
	}
}

// WithoutSpacingCheck disables uniform-spacing validation. The sample
// interval is still taken from the first two time stamps and applied to the
// whole series, so results for jittery data are the caller's problem.
// Time stamps must still be finite; only the jitter check is skipped.
func WithoutSpacingCheck() Option {
	return func(c *config) {
		c.checkSpacing = false
	}
}

// Analyze computes the magnitude spectrum of values sampled at times t and
// locates the dominant positive-frequency peak.
//
// The transform length equals len(values); no padding or windowing is
// applied, so the spectrum matches a plain DFT of the raw series bin for
// bin. t and values must have equal length >= 2, finite entries, and
// uniform spacing (see [WithoutSpacingCheck]).
func Analyze(t, values []float64, opts ...Option) (*Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := validateInput(t, values); err != nil {
		return nil, err
	}
	dt, err := sampleInterval(t, cfg)
	if err != nil {
		return nil, err
	}

	n := len(values)
	coeff := fourier.NewFFT(n).Coefficients(nil, values)

	// Strictly positive frequencies: bins 1..N/2 of the real-input
	// transform. The Nyquist bin of an even N counts as positive here;
	// a two-sample series has exactly that single usable bin.
	return resultFromBins(coeff[1:], n, dt), nil
}

// resultFromBins builds a Result from the positive-frequency complex bins of
// a length-n transform with sample interval dt.
func resultFromBins(bins []complex128, n int, dt float64) *Result {
	binWidth := 1 / (float64(n) * dt)

	freqs := make([]float64, len(bins))
	for k := range freqs {
		freqs[k] = float64(k+1) * binWidth
	}

	spectrum := magnitude(bins)
	peak := argmax(spectrum)

	return &Result{
		DominantFreq: freqs[peak],
		Freqs:        freqs,
		Spectrum:     spectrum,
		PeakIndex:    peak,
		BinWidth:     binWidth,
	}
}

// validateInput checks the preconditions shared by the analysis entry
// points: at least two samples, matching lengths, and finite entries on
// both axes. Time finiteness is enforced here, not in the spacing check,
// so it holds even with [WithoutSpacingCheck].
func validateInput(t, values []float64) error {
	if len(t) < 2 {
		return fmt.Errorf("spectral: need at least 2 samples to derive a time step: %d", len(t))
	}
	if len(values) != len(t) {
		return fmt.Errorf("spectral: time/value length mismatch: %d != %d", len(t), len(values))
	}
	for i, ts := range t {
		if math.IsNaN(ts) || math.IsInf(ts, 0) {
			return fmt.Errorf("spectral: non-finite time stamp at index %d: %f", i, ts)
		}
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("spectral: non-finite value at index %d: %f", i, v)
		}
	}
	return nil
}

// sampleInterval derives dt from the first two time stamps and optionally
// verifies uniform spacing over the whole series. The input has already
// passed validateInput, so every stamp is finite.
func sampleInterval(t []float64, cfg config) (float64, error) {
	dt := t[1] - t[0]
	if dt <= 0 {
		return 0, fmt.Errorf("spectral: time samples must be strictly increasing: t[0]=%f t[1]=%f", t[0], t[1])
	}

	if cfg.checkSpacing {
		for i := 2; i < len(t); i++ {
			step := t[i] - t[i-1]
			if math.Abs(step-dt) > cfg.spacingTolerance*dt {
				return 0, fmt.Errorf("spectral: non-uniform time step at index %d: %g (expected %g, tolerance %g)",
					i, step, dt, cfg.spacingTolerance)
			}
		}
	}

	return dt, nil
}

// magnitude computes |X[k]| for each complex bin using the vectorized
// magnitude kernel on unpacked real/imaginary parts.
func magnitude(bins []complex128) []float64 {
	if len(bins) == 0 {
		return nil
	}

	re := make([]float64, len(bins))
	im := make([]float64, len(bins))
	for i, c := range bins {
		re[i] = real(c)
		im[i] = imag(c)
	}

	out := make([]float64, len(bins))
	vecmath.Magnitude(out, re, im)
	return out
}

// argmax returns the index of the first maximum in a non-empty slice.
func argmax(v []float64) int {
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[best] {
			best = i
		}
	}
	return best
}

// RefinePeak estimates the peak frequency with sub-bin resolution by fitting
// a parabola through the dominant bin and its neighbours. Peaks at either
// end of the axis, and plateaus where the parabola degenerates, fall back to
// the bin frequency.
func (r *Result) RefinePeak() float64 {
	i := r.PeakIndex
	if i <= 0 || i >= len(r.Spectrum)-1 {
		return r.DominantFreq
	}

	alpha := r.Spectrum[i-1]
	beta := r.Spectrum[i]
	gamma := r.Spectrum[i+1]

	denom := alpha - 2*beta + gamma
	if denom == 0 {
		return r.DominantFreq
	}

	delta := 0.5 * (alpha - gamma) / denom
	return r.DominantFreq + delta*r.BinWidth
}
