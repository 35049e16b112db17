// Package render draws magnitude spectra to image files.
//
// Rendering is deliberately decoupled from the analysis: it consumes plain
// frequency/magnitude slices and has no opinion on how they were computed,
// so headless runs can skip it entirely.
package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Option configures spectrum rendering.
type Option func(*config)

type config struct {
	title       string
	seriesLabel string
}

func defaultConfig() config {
	return config{
		title:       "Frequency Spectrum of Lift Coefficient",
		seriesLabel: "FFT of Cl",
	}
}

// WithTitle overrides the plot title.
func WithTitle(title string) Option {
	return func(c *config) {
		c.title = title
	}
}

// WithSeriesLabel overrides the legend label of the spectrum trace.
func WithSeriesLabel(label string) Option {
	return func(c *config) {
		c.seriesLabel = label
	}
}

// Spectrum renders magnitude vs. frequency as a line plot with a dashed
// vertical marker at the dominant frequency and writes it to path. The
// output format follows the file extension (.png, .svg, .pdf, ...).
func Spectrum(path string, freqs, spectrum []float64, dominantFreq float64, opts ...Option) error {
	if len(freqs) == 0 {
		return fmt.Errorf("render: empty spectrum")
	}
	if len(freqs) != len(spectrum) {
		return fmt.Errorf("render: axis/spectrum length mismatch: %d != %d", len(freqs), len(spectrum))
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	p := plot.New()
	p.Title.Text = cfg.title
	p.X.Label.Text = "Frequency (Hz)"
	p.Y.Label.Text = "Amplitude"
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(freqs))
	for i := range freqs {
		xys[i] = plotter.XY{X: freqs[i], Y: spectrum[i]}
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("render: spectrum trace: %w", err)
	}
	p.Add(line)
	p.Legend.Add(cfg.seriesLabel, line)

	peak := spectrum[0]
	for _, v := range spectrum {
		if v > peak {
			peak = v
		}
	}

	marker, err := plotter.NewLine(plotter.XYs{
		{X: dominantFreq, Y: 0},
		{X: dominantFreq, Y: peak},
	})
	if err != nil {
		return fmt.Errorf("render: peak marker: %w", err)
	}
	marker.LineStyle.Color = color.RGBA{R: 0xc0, A: 0xff}
	marker.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(marker)
	p.Legend.Add(fmt.Sprintf("Vortex Shedding: %.3f Hz", dominantFreq), marker)
	p.Legend.Top = true

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("render: save spectrum plot: %w", err)
	}
	return nil
}
