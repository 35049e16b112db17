// Package coeffs reads OpenFOAM force-coefficient history files.
//
// A coefficient file is plain text with one sample per line. Lines starting
// with '#' and blank lines are headers or comments and are skipped. Every
// remaining line carries four whitespace-separated numeric fields:
//
//	time Cd Cl Cm
//
// The parser is strict: a retained line that does not parse as exactly four
// numbers aborts the whole read. Partial results are never returned.
package coeffs
