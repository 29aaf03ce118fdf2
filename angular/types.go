// SPDX-License-Identifier: MIT

package angular

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// J is an angular momentum stored as twice its physical value.
// J(3) is 3/2, J(4) is 2.
type J int

// Int returns the J value for an integer momentum j.
func Int(j int) J { return J(2 * j) }

// Twice returns the stored integer 2j.
func (j J) Twice() int { return int(j) }

// Float returns the physical value j.
func (j J) Float() float64 { return float64(j) / 2 }

// Bracket returns the degeneracy [j] = 2j+1.
func (j J) Bracket() int { return int(j) + 1 }

// IsHalfInteger reports whether j is half-odd.
func (j J) IsHalfInteger() bool { return int(j)%2 != 0 }

// String formats j as "2" or "5/2".
func (j J) String() string {
	if j.IsHalfInteger() {
		return strconv.Itoa(int(j)) + "/2"
	}

	return strconv.Itoa(int(j) / 2)
}

// Projections returns the twice-valued projections −j, −j+1, …, j.
func (j J) Projections() []J {
	out := make([]J, 0, j.Bracket())
	for m := -j; m <= j; m += 2 {
		out = append(out, m)
	}

	return out
}

// Parity of a state, +1 (even) or −1 (odd).
type Parity int8

const (
	// Plus is even parity.
	Plus Parity = 1
	// Minus is odd parity.
	Minus Parity = -1
)

// ParityOf returns (−1)^l.
func ParityOf(l int) Parity {
	if l%2 == 0 {
		return Plus
	}

	return Minus
}

// Mul returns the product p·q.
func (p Parity) Mul(q Parity) Parity { return p * q }

// Sign returns p as ±1.0.
func (p Parity) Sign() float64 { return float64(p) }

func (p Parity) String() string {
	if p == Minus {
		return "-"
	}

	return "+"
}

// Symmetry is a total angular momentum with parity, e.g. 3/2⁻.
type Symmetry struct {
	J      J
	Parity Parity
}

// NewSymmetry builds a Symmetry from a twice-valued J.
func NewSymmetry(j J, p Parity) Symmetry { return Symmetry{J: j, Parity: p} }

func (s Symmetry) String() string { return s.J.String() + s.Parity.String() }

// ParseSymmetry parses "0+", "1/2-", "5/2+".
func ParseSymmetry(text string) (Symmetry, error) {
	text = strings.TrimSpace(text)
	if len(text) < 2 {
		return Symmetry{}, errors.Wrapf(ErrParseSymmetry, "%q", text)
	}

	var p Parity
	switch text[len(text)-1] {
	case '+':
		p = Plus
	case '-':
		p = Minus
	default:
		return Symmetry{}, errors.Wrapf(ErrParseSymmetry, "%q: missing parity sign", text)
	}

	body := text[:len(text)-1]
	if num, ok := strings.CutSuffix(body, "/2"); ok {
		n, err := strconv.Atoi(num)
		if err != nil || n < 0 || n%2 == 0 {
			return Symmetry{}, errors.Wrapf(ErrParseSymmetry, "%q", text)
		}

		return Symmetry{J: J(n), Parity: p}, nil
	}

	n, err := strconv.Atoi(body)
	if err != nil || n < 0 {
		return Symmetry{}, errors.Wrapf(ErrParseSymmetry, "%q", text)
	}

	return Symmetry{J: Int(n), Parity: p}, nil
}

// Kappa is the relativistic angular quantum number of a one-electron orbital.
//
//	κ < 0: l = −κ−1, j = l+½
//	κ > 0: l = κ,    j = l−½
type Kappa int

// spectroscopic letters for l = 0, 1, 2, ...
const orbitalLetters = "spdfghiklmnoqrtuv"

// NewKappa returns the kappa with orbital momentum l and total momentum j.
func NewKappa(l int, j J) (Kappa, error) {
	if l < 0 || j < 0 {
		return 0, ErrNegativeMomentum
	}
	switch int(j) {
	case 2*l + 1:
		return Kappa(-l - 1), nil
	case 2*l - 1:
		return Kappa(l), nil
	}

	return 0, errors.Wrapf(ErrInvalidKappa, "l=%d j=%s", l, j)
}

// KappasOfJ returns the two kappas with total momentum j, the j−½ partner first.
func KappasOfJ(j J) [2]Kappa {
	n := (int(j) + 1) / 2

	return [2]Kappa{Kappa(-n), Kappa(n)}
}

// Valid reports whether k ≠ 0.
func (k Kappa) Valid() bool { return k != 0 }

// L returns the orbital angular momentum.
func (k Kappa) L() int {
	if k > 0 {
		return int(k)
	}

	return int(-k) - 1
}

// J returns the total angular momentum, twice-valued.
func (k Kappa) J() J {
	if k < 0 {
		return J(-2*int(k) - 1)
	}

	return J(2*int(k) - 1)
}

// Parity returns (−1)^l.
func (k Kappa) Parity() Parity { return ParityOf(k.L()) }

// String formats k as "s1/2", "p3/2", "d5/2".
func (k Kappa) String() string {
	if !k.Valid() {
		return "invalid"
	}
	l := k.L()
	letter := "l" + strconv.Itoa(l)
	if l < len(orbitalLetters) {
		letter = orbitalLetters[l : l+1]
	}

	return letter + k.J().String()
}
