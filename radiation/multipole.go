// SPDX-License-Identifier: MIT

package radiation

import (
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/photoion/angular"
)

// Multipole is one component of the photon field: electric or magnetic, rank L ≥ 1.
// The zero value is invalid; build values with E, M or NewMultipole.
type Multipole struct {
	magnetic bool
	rank     int
}

// E returns the electric multipole of rank L. Panics on L < 1.
func E(rank int) Multipole {
	mp, err := NewMultipole(true, rank)
	if err != nil {
		panic(err.Error())
	}

	return mp
}

// M returns the magnetic multipole of rank L. Panics on L < 1.
func M(rank int) Multipole {
	mp, err := NewMultipole(false, rank)
	if err != nil {
		panic(err.Error())
	}

	return mp
}

// NewMultipole validates the rank and returns the multipole.
func NewMultipole(electric bool, rank int) (Multipole, error) {
	if rank < 1 {
		return Multipole{}, errors.Wrapf(ErrInvalidRank, "rank=%d", rank)
	}

	return Multipole{magnetic: !electric, rank: rank}, nil
}

// ParseMultipole parses "E1", "m2", ...
func ParseMultipole(text string) (Multipole, error) {
	text = strings.TrimSpace(text)
	if len(text) < 2 {
		return Multipole{}, errors.Wrapf(ErrParseMultipole, "%q", text)
	}

	var electric bool
	switch text[0] {
	case 'E', 'e':
		electric = true
	case 'M', 'm':
	default:
		return Multipole{}, errors.Wrapf(ErrParseMultipole, "%q", text)
	}
	rank, err := strconv.Atoi(text[1:])
	if err != nil || rank < 1 {
		return Multipole{}, errors.Wrapf(ErrParseMultipole, "%q", text)
	}

	return Multipole{magnetic: !electric, rank: rank}, nil
}

// Electric reports whether m is an electric multipole.
func (m Multipole) Electric() bool { return !m.magnetic }

// Rank returns L.
func (m Multipole) Rank() int { return m.rank }

// J returns L as a twice-valued angular momentum.
func (m Multipole) J() angular.J { return angular.Int(m.rank) }

// Valid reports whether m was built through a constructor.
func (m Multipole) Valid() bool { return m.rank >= 1 }

// Parity returns (−1)^L for electric and (−1)^{L+1} for magnetic multipoles.
func (m Multipole) Parity() angular.Parity {
	if m.magnetic {
		return angular.ParityOf(m.rank + 1)
	}

	return angular.ParityOf(m.rank)
}

// String formats m as "E1" or "M2".
func (m Multipole) String() string {
	if m.magnetic {
		return "M" + strconv.Itoa(m.rank)
	}

	return "E" + strconv.Itoa(m.rank)
}

// PhotonFactor returns the coupling of helicity λ = ±1 to multipole m,
//
//	c(λ) = i^L √[L] (iλ)^p,   p = 1 (electric), 0 (magnetic).
//
// Interference terms between multipoles are built from products c1(λ1)·c2*(λ2).
func PhotonFactor(m Multipole, lambda int) complex128 {
	c := IPow(m.rank) * complex(math.Sqrt(float64(2*m.rank+1)), 0)
	if m.Electric() {
		c *= complex(0, float64(lambda))
	}

	return c
}

// IPow returns i^n exactly for any integer n.
func IPow(n int) complex128 {
	switch ((n % 4) + 4) % 4 {
	case 1:
		return 1i
	case 2:
		return -1
	case 3:
		return -1i
	}

	return 1
}
