package coeffs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// fieldCount is the fixed column count of a coefficient row: time Cd Cl Cm.
const fieldCount = 4

// Column identifies one force coefficient column of a coefficient file.
type Column int

const (
	// ColumnCd is the drag coefficient (column 1).
	ColumnCd Column = iota
	// ColumnCl is the lift coefficient (column 2).
	ColumnCl
	// ColumnCm is the moment coefficient (column 3).
	ColumnCm
)

// String returns the conventional short name of the column.
func (c Column) String() string {
	switch c {
	case ColumnCd:
		return "Cd"
	case ColumnCl:
		return "Cl"
	case ColumnCm:
		return "Cm"
	default:
		return fmt.Sprintf("Column(%d)", int(c))
	}
}

// Series holds the samples of one coefficient history. All slices have equal
// length, one entry per data row in file order.
type Series struct {
	Time []float64
	Cd   []float64
	Cl   []float64
	Cm   []float64
}

// Len returns the number of samples.
func (s *Series) Len() int { return len(s.Time) }

// Values returns the samples of the given coefficient column.
func (s *Series) Values(c Column) ([]float64, error) {
	switch c {
	case ColumnCd:
		return s.Cd, nil
	case ColumnCl:
		return s.Cl, nil
	case ColumnCm:
		return s.Cm, nil
	default:
		return nil, fmt.Errorf("coeffs: unknown column: %d", int(c))
	}
}

// ReadFile reads and parses a coefficient file.
func ReadFile(path string) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("coeffs: open coefficient file: %w", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("coeffs: %s: %w", path, err)
	}
	return s, nil
}

// Parse parses coefficient rows from r.
//
// A file containing only comments and blank lines yields an empty Series,
// not an error; downstream analysis decides whether that is usable.
func Parse(r io.Reader) (*Series, error) {
	s := &Series{}
	sc := bufio.NewScanner(r)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != fieldCount {
			return nil, fmt.Errorf("line %d: expected %d fields, got %d", lineNo, fieldCount, len(fields))
		}

		var row [fieldCount]float64
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: field %d: %w", lineNo, i+1, err)
			}
			row[i] = v
		}

		s.Time = append(s.Time, row[0])
		s.Cd = append(s.Cd, row[1])
		s.Cl = append(s.Cl, row[2])
		s.Cm = append(s.Cm, row[3])
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read coefficient data: %w", err)
	}

	return s, nil
}
