// Package spectral detects the vortex shedding frequency in a force
// coefficient time series.
//
// The shedding frequency is the dominant peak of the lift coefficient's
// magnitude spectrum. [Analyze] computes the spectrum at the exact input
// length, so bin k sits at k/(N*dt) and the peak is reported with bin
// resolution 1/(N*dt). [Periodogram] trades exact bin placement for a
// windowed, zero-padded transform that keeps spectral leakage from burying
// the peak in noisy histories.
//
// Both entry points derive the sample interval from the first two time
// stamps and, by default, verify that the rest of the series keeps that
// spacing. CFD runs with adaptive time stepping fail loudly instead of
// producing a silently wrong spectrum.
package spectral
