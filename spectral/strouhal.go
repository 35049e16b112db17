package spectral

import "fmt"

// Strouhal returns the Strouhal number St = f*D/U for a shedding frequency
// f in Hz, reference length D, and free-stream velocity U (consistent
// units). Cylinder flows settle near St = 0.2 over a wide Reynolds range,
// which makes the number a quick sanity check on a detected peak.
func Strouhal(freq, refLength, velocity float64) (float64, error) {
	if freq <= 0 {
		return 0, fmt.Errorf("spectral: strouhal frequency must be > 0: %f", freq)
	}
	if refLength <= 0 {
		return 0, fmt.Errorf("spectral: strouhal reference length must be > 0: %f", refLength)
	}
	if velocity <= 0 {
		return 0, fmt.Errorf("spectral: strouhal velocity must be > 0: %f", velocity)
	}

	return freq * refLength / velocity, nil
}
