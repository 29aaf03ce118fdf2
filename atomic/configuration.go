// SPDX-License-Identifier: MIT

package atomic

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/photoion/angular"
)

// Subshell is a relativistic subshell nκ. N == 0 marks a continuum subshell.
type Subshell struct {
	N     int
	Kappa angular.Kappa
}

// ContinuumSubshell returns the continuum subshell of partial wave κ.
func ContinuumSubshell(kappa angular.Kappa) Subshell { return Subshell{N: 0, Kappa: kappa} }

// IsContinuum reports whether s is a free-electron subshell.
func (s Subshell) IsContinuum() bool { return s.N == 0 && s.Kappa.Valid() }

// IsZero reports whether s is the zero value, used as "unresolved".
func (s Subshell) IsZero() bool { return s == Subshell{} }

// Capacity returns 2j+1, the maximal occupation.
func (s Subshell) Capacity() int { return s.Kappa.J().Bracket() }

// String formats s as "2p3/2", "εd5/2" for continuum and "-" when zero.
func (s Subshell) String() string {
	switch {
	case s.IsZero():
		return "-"
	case s.IsContinuum():
		return "ε" + s.Kappa.String()
	}

	return strconv.Itoa(s.N) + s.Kappa.String()
}

// Less orders subshells by n, then l, then j.
func (s Subshell) Less(o Subshell) bool {
	if s.N != o.N {
		return s.N < o.N
	}
	if s.Kappa.L() != o.Kappa.L() {
		return s.Kappa.L() < o.Kappa.L()
	}

	return s.Kappa.J() < o.Kappa.J()
}

// ParseSubshell parses labels like "1s1/2", "2p3/2", "4f7/2".
func ParseSubshell(text string) (Subshell, error) {
	text = strings.TrimSpace(text)
	i := 0
	for i < len(text) && text[i] >= '0' && text[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(text) {
		return Subshell{}, errors.Wrapf(ErrParseSubshell, "%q", text)
	}
	n, _ := strconv.Atoi(text[:i])
	l := strings.IndexByte("spdfghiklmnoqrtuv", text[i])
	j, ok := strings.CutSuffix(text[i+1:], "/2")
	if l < 0 || !ok {
		return Subshell{}, errors.Wrapf(ErrParseSubshell, "%q", text)
	}
	twiceJ, err := strconv.Atoi(j)
	if err != nil {
		return Subshell{}, errors.Wrapf(ErrParseSubshell, "%q", text)
	}
	kappa, err := angular.NewKappa(l, angular.J(twiceJ))
	if err != nil || n <= l {
		return Subshell{}, errors.Wrapf(ErrParseSubshell, "%q", text)
	}

	return Subshell{N: n, Kappa: kappa}, nil
}

// Shell is a subshell with its occupation number.
type Shell struct {
	Subshell   Subshell
	Occupation int
}

// Configuration is a set of occupied subshells, kept sorted by Subshell.Less.
type Configuration struct {
	shells []Shell
}

// NewConfiguration validates occupations and returns the sorted configuration.
// Repeated subshells are merged.
func NewConfiguration(shells ...Shell) (Configuration, error) {
	merged := make(map[Subshell]int, len(shells))
	for _, sh := range shells {
		merged[sh.Subshell] += sh.Occupation
	}

	out := make([]Shell, 0, len(merged))
	for sub, occ := range merged {
		if occ < 0 || occ > sub.Capacity() {
			return Configuration{}, errors.Wrapf(ErrBadOccupation, "%s^%d", sub, occ)
		}
		if occ == 0 {
			continue
		}
		out = append(out, Shell{Subshell: sub, Occupation: occ})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Subshell.Less(out[b].Subshell) })

	return Configuration{shells: out}, nil
}

// ParseConfiguration parses "1s1/2^2 2s1/2^2 2p3/2^3".
func ParseConfiguration(text string) (Configuration, error) {
	var shells []Shell
	for _, field := range strings.Fields(text) {
		label, occText, found := strings.Cut(field, "^")
		occ := 1
		if found {
			var err error
			if occ, err = strconv.Atoi(occText); err != nil {
				return Configuration{}, errors.Wrapf(ErrBadOccupation, "%q", field)
			}
		}
		sub, err := ParseSubshell(label)
		if err != nil {
			return Configuration{}, err
		}
		shells = append(shells, Shell{Subshell: sub, Occupation: occ})
	}

	return NewConfiguration(shells...)
}

// Shells returns a copy of the occupied shells in order.
func (c Configuration) Shells() []Shell { return append([]Shell(nil), c.shells...) }

// Occupation returns the occupation of sub (0 if absent).
func (c Configuration) Occupation(sub Subshell) int {
	for _, sh := range c.shells {
		if sh.Subshell == sub {
			return sh.Occupation
		}
	}

	return 0
}

// Electrons returns the total electron count.
func (c Configuration) Electrons() int {
	n := 0
	for _, sh := range c.shells {
		n += sh.Occupation
	}

	return n
}

// With returns a copy with one more electron in sub.
func (c Configuration) With(sub Subshell) Configuration {
	shells := append(c.Shells(), Shell{Subshell: sub, Occupation: 1})
	merged, err := NewConfiguration(shells...)
	if err != nil {
		// over-filled subshells are kept as-is; the occupation is informational
		return c
	}

	return merged
}

// IonizedSubshell returns the single bound subshell that lost exactly one
// electron going from c (neutral) to ion, with every other occupation
// unchanged. ok is false when the difference is not a single removal.
func (c Configuration) IonizedSubshell(ion Configuration) (sub Subshell, ok bool) {
	seen := make(map[Subshell]struct{})
	for _, list := range [2][]Shell{c.shells, ion.shells} {
		for _, sh := range list {
			if sh.Subshell.IsContinuum() {
				continue
			}
			seen[sh.Subshell] = struct{}{}
		}
	}

	found := false
	for s := range seen {
		switch c.Occupation(s) - ion.Occupation(s) {
		case 0:
		case 1:
			if found {
				return Subshell{}, false
			}
			sub, found = s, true
		default:
			return Subshell{}, false
		}
	}

	return sub, found
}

// String formats the configuration as "1s1/2^2 2p3/2^3".
func (c Configuration) String() string {
	parts := make([]string, len(c.shells))
	for i, sh := range c.shells {
		parts[i] = sh.Subshell.String() + "^" + strconv.Itoa(sh.Occupation)
	}

	return strings.Join(parts, " ")
}
