package coeffs_test

import (
	"fmt"
	"strings"

	"github.com/cwbudde/vortexshed/coeffs"
)

func ExampleParse() {
	data := `# Time  Cd      Cl      Cm
0.00    1.20    0.010   0.000
0.01    1.19    -0.250  0.002
0.02    1.21    0.240   -0.001
`

	s, err := coeffs.Parse(strings.NewReader(data))
	if err != nil {
		fmt.Println(err)
		return
	}

	cl, _ := s.Values(coeffs.ColumnCl)
	fmt.Printf("samples: %d\n", s.Len())
	fmt.Printf("t[1]=%.2f %s[1]=%.3f\n", s.Time[1], coeffs.ColumnCl, cl[1])
	// Output:
	// samples: 3
	// t[1]=0.01 Cl[1]=-0.250
}
