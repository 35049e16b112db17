package render

import (
	"os"
	"path/filepath"
	"testing"
)

func testSpectrum() (freqs, spectrum []float64) {
	freqs = []float64{0.5, 1.0, 1.5, 2.0, 2.5}
	spectrum = []float64{0.1, 0.4, 3.2, 0.6, 0.2}
	return freqs, spectrum
}

func TestSpectrumWritesFile(t *testing.T) {
	freqs, spectrum := testSpectrum()

	for _, name := range []string{"spectrum.png", "spectrum.svg"} {
		path := filepath.Join(t.TempDir(), name)
		if err := Spectrum(path, freqs, spectrum, 1.5); err != nil {
			t.Fatalf("unexpected render error for %s: %v", name, err)
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("expected output file %s: %v", name, err)
		}
		if info.Size() == 0 {
			t.Fatalf("output file %s is empty", name)
		}
	}
}

func TestSpectrumOptions(t *testing.T) {
	freqs, spectrum := testSpectrum()
	path := filepath.Join(t.TempDir(), "cd.png")

	err := Spectrum(path, freqs, spectrum, 1.5,
		WithTitle("Frequency Spectrum of Drag Coefficient"),
		WithSeriesLabel("FFT of Cd"),
	)
	if err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected output file: %v", err)
	}
}

func TestSpectrumInvalidInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")

	if err := Spectrum(path, nil, nil, 1.0); err == nil {
		t.Fatalf("expected error for empty spectrum")
	}
	if err := Spectrum(path, []float64{1, 2}, []float64{1}, 1.0); err == nil {
		t.Fatalf("expected error for mismatched lengths")
	}
}
