package coeffs

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleData = `# Force coefficients
# Time        Cd            Cl            Cm
0.000         1.234567e+00  -2.5e-03      1.0e-04
0.005         1.230000e+00  1.2e-02       -3.0e-04

0.010         1.228e+00     -4.4e-02      5.5e-04
`

func TestParseWellFormed(t *testing.T) {
	s, err := Parse(strings.NewReader(sampleData))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	if s.Len() != 3 {
		t.Fatalf("sample count mismatch: got %d want 3", s.Len())
	}
	for _, cols := range [][]float64{s.Cd, s.Cl, s.Cm} {
		if len(cols) != s.Len() {
			t.Fatalf("column length mismatch: got %d want %d", len(cols), s.Len())
		}
	}

	if math.Abs(s.Time[1]-0.005) > 1e-15 {
		t.Fatalf("time mismatch: got %g want 0.005", s.Time[1])
	}
	if math.Abs(s.Cl[0]-(-2.5e-03)) > 1e-15 {
		t.Fatalf("Cl mismatch: got %g want -2.5e-03", s.Cl[0])
	}
	if math.Abs(s.Cm[2]-5.5e-04) > 1e-15 {
		t.Fatalf("Cm mismatch: got %g want 5.5e-04", s.Cm[2])
	}
}

func TestParseCommentsOnly(t *testing.T) {
	in := "# header\n\n   \n# another comment\n"
	s, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty series, got %d samples", s.Len())
	}
}

func TestParseMalformed(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"too few fields", "0.0 1.0 2.0\n", "line 1"},
		{"too many fields", "0.0 1.0 2.0 3.0 4.0\n", "line 1"},
		{"non-numeric field", "# header\n0.0 1.0 abc 3.0\n", "line 2"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.in))
			if err == nil {
				t.Fatalf("expected parse error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error should name %q: got %v", tc.want, err)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coefficient.dat")
	if err := os.WriteFile(path, []byte(sampleData), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	s, err := ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	if s.Len() != 3 {
		t.Fatalf("sample count mismatch: got %d want 3", s.Len())
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.dat"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestValues(t *testing.T) {
	s, err := Parse(strings.NewReader(sampleData))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	cl, err := s.Values(ColumnCl)
	if err != nil {
		t.Fatalf("unexpected column error: %v", err)
	}
	if len(cl) != 3 || cl[1] != 1.2e-02 {
		t.Fatalf("Cl column mismatch: got %v", cl)
	}

	if _, err := s.Values(Column(99)); err == nil {
		t.Fatalf("expected error for unknown column")
	}
}

func TestColumnString(t *testing.T) {
	if got := ColumnCl.String(); got != "Cl" {
		t.Fatalf("column name mismatch: got %q want %q", got, "Cl")
	}
	if got := ColumnCd.String(); got != "Cd" {
		t.Fatalf("column name mismatch: got %q want %q", got, "Cd")
	}
}
