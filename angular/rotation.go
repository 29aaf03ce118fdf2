package angular

import (
	"math"

	"github.com/katalvlaran/photoion/matrix"
)

// SmallD returns the Wigner rotation element d^j_{m'm}(β), twice-valued j, m', m.
// Illegal projections yield 0.
//
// Complexity: O(j) terms.
func SmallD(j, mp, m J, beta float64) float64 {
	if !projectionOK(j, mp) || !projectionOK(j, m) {
		return 0
	}

	c, s := math.Cos(beta/2), math.Sin(beta/2)
	num := math.Sqrt(fact(int(j+mp)/2) * fact(int(j-mp)/2) * fact(int(j+m)/2) * fact(int(j-m)/2))

	jpm := int(j+m) / 2   // j+m
	dm := int(mp-m) / 2   // m'−m
	jmmp := int(j-mp) / 2 // j−m'

	sum := 0.0
	for k := max(0, -dm); k <= min(jpm, jmmp); k++ {
		term := num / (fact(jpm-k) * fact(k) * fact(dm+k) * fact(jmmp-k))
		term *= math.Pow(c, float64(int(j)+int(m-mp)/2-2*k)) * math.Pow(s, float64(dm+2*k))
		if (dm+k)%2 != 0 {
			term = -term
		}
		sum += term
	}

	return sum
}

// RowIndex maps a twice-valued projection m of j onto the 0-based row or
// column of a SmallDMatrix table.
func RowIndex(j, m J) int { return int(j+m) / 2 }

// SmallDMatrix returns the full [j]×[j] table d^j_{m'm}(β); entry
// (RowIndex(j,m'), RowIndex(j,m)) holds d^j_{m'm}.
//
// Errors:
//   - ErrNegativeMomentum when j < 0.
//
// Complexity: O(j³) time, O(j²) space.
func SmallDMatrix(j J, beta float64) (*matrix.Dense, error) {
	if j < 0 {
		return nil, ErrNegativeMomentum
	}

	n := j.Bracket()
	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for mp := -j; mp <= j; mp += 2 {
		for m := -j; m <= j; m += 2 {
			if err = d.Set(RowIndex(j, mp), RowIndex(j, m), SmallD(j, mp, m, beta)); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}
