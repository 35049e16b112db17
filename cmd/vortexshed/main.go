// Command vortexshed detects the vortex shedding frequency in an OpenFOAM
// force-coefficient history.
//
// Usage:
//
//	vortexshed -input <coefficient.dat> [flags]
//
// The selected coefficient column (lift by default) is transformed with an
// exact-length FFT, the dominant positive-frequency peak is reported on
// stdout, and the spectrum can be written as a plot.
//
// Examples:
//
//	vortexshed -input postProcessing/forceCoeffs/0/coefficient.dat
//	vortexshed -input coefficient.dat -plot spectrum.png
//	vortexshed -input coefficient.dat -column cd -window hann -refine
//	vortexshed -input coefficient.dat -length 0.1 -velocity 15
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/vortexshed/coeffs"
	"github.com/cwbudde/vortexshed/internal/window"
	"github.com/cwbudde/vortexshed/render"
	"github.com/cwbudde/vortexshed/spectral"
)

var columns = map[string]struct {
	col  coeffs.Column
	long string
}{
	"cd": {coeffs.ColumnCd, "Drag Coefficient"},
	"cl": {coeffs.ColumnCl, "Lift Coefficient"},
	"cm": {coeffs.ColumnCm, "Moment Coefficient"},
}

var windows = map[string]window.Type{
	"hann":        window.TypeHann,
	"hamming":     window.TypeHamming,
	"blackman":    window.TypeBlackman,
	"rectangular": window.TypeRectangular,
}

func main() {
	input := flag.String("input", "", "coefficient file to analyze (required)")
	column := flag.String("column", "cl", "coefficient column: cd, cl or cm")
	plotPath := flag.String("plot", "", "write the spectrum plot to this file (.png/.svg/.pdf)")
	windowName := flag.String("window", "", "use a windowed periodogram: hann, hamming, blackman or rectangular")
	fftSize := flag.Int("fftsize", 0, "periodogram FFT size, power of two (0 = next power of two)")
	refine := flag.Bool("refine", false, "also print the parabolically refined peak")
	refLength := flag.Float64("length", 0, "reference length for the Strouhal number")
	velocity := flag.Float64("velocity", 0, "free-stream velocity for the Strouhal number")
	tolerance := flag.Float64("tolerance", 0, "relative time-step tolerance (0 = default, negative disables the check)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: vortexshed -input <coefficient.dat> [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Detects the vortex shedding frequency in an OpenFOAM force-coefficient history.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  vortexshed -input coefficient.dat -plot spectrum.png\n")
		fmt.Fprintf(os.Stderr, "  vortexshed -input coefficient.dat -column cd -window hann -refine\n")
		fmt.Fprintf(os.Stderr, "  vortexshed -input coefficient.dat -length 0.1 -velocity 15\n")
	}
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(1)
	}

	if err := validateFlags(*windowName, *fftSize); err != nil {
		fail("%v", err)
	}

	colEntry, ok := columns[strings.ToLower(*column)]
	if !ok {
		fail("unknown column %q (use cd, cl or cm)", *column)
	}

	series, err := coeffs.ReadFile(*input)
	if err != nil {
		fail("%v", err)
	}
	values, err := series.Values(colEntry.col)
	if err != nil {
		fail("%v", err)
	}

	var opts []spectral.Option
	switch {
	case *tolerance > 0:
		opts = append(opts, spectral.WithSpacingTolerance(*tolerance))
	case *tolerance < 0:
		opts = append(opts, spectral.WithoutSpacingCheck())
	}

	var res *spectral.Result
	if *windowName != "" {
		winType, ok := windows[strings.ToLower(*windowName)]
		if !ok {
			fail("unknown window %q (use hann, hamming, blackman or rectangular)", *windowName)
		}
		res, err = spectral.Periodogram(series.Time, values, spectral.PeriodogramConfig{
			FFTSize:    *fftSize,
			WindowType: winType,
		}, opts...)
	} else {
		res, err = spectral.Analyze(series.Time, values, opts...)
	}
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("Vortex Shedding Frequency: %.3f Hz\n", res.DominantFreq)
	if *refine {
		fmt.Printf("Refined Peak: %.3f Hz\n", res.RefinePeak())
	}
	if *refLength > 0 && *velocity > 0 {
		st, err := spectral.Strouhal(res.DominantFreq, *refLength, *velocity)
		if err != nil {
			fail("%v", err)
		}
		fmt.Printf("Strouhal Number: %.4f\n", st)
	}

	if *plotPath != "" {
		err := render.Spectrum(*plotPath, res.Freqs, res.Spectrum, res.DominantFreq,
			render.WithTitle("Frequency Spectrum of "+colEntry.long),
			render.WithSeriesLabel("FFT of "+colEntry.col.String()),
		)
		if err != nil {
			fail("%v", err)
		}
	}
}

// validateFlags rejects flag combinations that would otherwise be
// silently ignored.
func validateFlags(windowName string, fftSize int) error {
	if fftSize != 0 && windowName == "" {
		return fmt.Errorf("-fftsize only applies to the windowed periodogram; add -window")
	}
	return nil
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
