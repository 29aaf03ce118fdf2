package radiation

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Gauge is the electromagnetic-potential convention of a radiative amplitude.
type Gauge int

const (
	// Coulomb gauge (velocity form).
	Coulomb Gauge = iota
	// Babushkin gauge (length form).
	Babushkin
	// Magnetic tags gauge-invariant amplitudes of magnetic multipoles.
	Magnetic
)

// String returns the gauge name.
func (g Gauge) String() string {
	switch g {
	case Coulomb:
		return "Coulomb"
	case Babushkin:
		return "Babushkin"
	case Magnetic:
		return "Magnetic"
	}

	return "Gauge(?)"
}

// ParseGauge accepts "coulomb", "velocity", "babushkin", "length", "magnetic".
func ParseGauge(text string) (Gauge, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "coulomb", "velocity":
		return Coulomb, nil
	case "babushkin", "length":
		return Babushkin, nil
	case "magnetic":
		return Magnetic, nil
	}

	return 0, errors.Wrapf(ErrParseGauge, "%q", text)
}

// ContributesTo reports whether a channel in gauge g enters the accumulation
// for gauge target: its own gauge, or any gauge when g is Magnetic.
func (g Gauge) ContributesTo(target Gauge) bool {
	return g == target || g == Magnetic
}

// EmGauges lists the two accumulation gauges in EmProperty order.
var EmGauges = [2]Gauge{Coulomb, Babushkin}
