package radiation

import (
	"math"

	"github.com/cockroachdb/errors"
)

// stokesSlack absorbs rounding when the polarization degree is exactly one.
const stokesSlack = 1e-12

// Stokes holds the three Stokes parameters of the incident light:
// P1, P2 for linear polarization and P3 for circular polarization.
type Stokes struct {
	P1, P2, P3 float64
}

// Unpolarized returns Stokes{0, 0, 0}.
func Unpolarized() Stokes { return Stokes{} }

// Validate reports ErrInvalidStokes when a component is non-finite or
// P1²+P2²+P3² > 1.
func (s Stokes) Validate() error {
	for _, p := range [3]float64{s.P1, s.P2, s.P3} {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return errors.Wrapf(ErrInvalidStokes, "%+v", s)
		}
	}
	if s.P1*s.P1+s.P2*s.P2+s.P3*s.P3 > 1+stokesSlack {
		return errors.Wrapf(ErrInvalidStokes, "%+v: degree of polarization above one", s)
	}

	return nil
}

// Density returns the photon helicity density-matrix element ρ_{λλ'},
// λ, λ' ∈ {−1, +1}:
//
//	ρ_{++} = (1+P3)/2      ρ_{+−} = −(P1 − iP2)/2
//	ρ_{−+} = −(P1 + iP2)/2 ρ_{−−} = (1−P3)/2
//
// Other helicities return 0.
func (s Stokes) Density(lambda, lambdaP int) complex128 {
	switch {
	case lambda == 1 && lambdaP == 1:
		return complex((1+s.P3)/2, 0)
	case lambda == -1 && lambdaP == -1:
		return complex((1-s.P3)/2, 0)
	case lambda == 1 && lambdaP == -1:
		return complex(-s.P1/2, s.P2/2)
	case lambda == -1 && lambdaP == 1:
		return complex(-s.P1/2, -s.P2/2)
	}

	return 0
}

// Helicities are the two photon helicities in summation order.
var Helicities = [2]int{-1, 1}
