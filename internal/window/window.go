// Package window generates window function coefficients for spectral
// analysis. Only the families useful for shedding-peak detection are
// provided.
package window

import "math"

// Type identifies a window function.
type Type int

// TypeHann is the zero value so that zero-initialized configs get the
// sensible default for peak detection.
const (
	TypeHann Type = iota
	TypeHamming
	TypeBlackman
	TypeRectangular
)

// String returns the lowercase window name.
func (t Type) String() string {
	switch t {
	case TypeRectangular:
		return "rectangular"
	case TypeHann:
		return "hann"
	case TypeHamming:
		return "hamming"
	case TypeBlackman:
		return "blackman"
	default:
		return "unknown"
	}
}

// Generate returns symmetric window coefficients of the given length.
// Unknown types fall back to rectangular. A non-positive length yields nil.
func Generate(t Type, length int) []float64 {
	if length <= 0 {
		return nil
	}

	out := make([]float64, length)
	if length == 1 {
		out[0] = 1
		return out
	}

	inv := 1 / float64(length-1)
	for i := range out {
		x := 2 * math.Pi * float64(i) * inv
		switch t {
		case TypeHann:
			out[i] = 0.5 * (1 - math.Cos(x))
		case TypeHamming:
			out[i] = 0.54 - 0.46*math.Cos(x)
		case TypeBlackman:
			out[i] = 0.42 - 0.5*math.Cos(x) + 0.08*math.Cos(2*x)
		default:
			out[i] = 1
		}
	}
	return out
}
