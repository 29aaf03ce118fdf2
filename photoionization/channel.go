// SPDX-License-Identifier: MIT

package photoionization

import (
	"fmt"

	"github.com/katalvlaran/photoion/angular"
	"github.com/katalvlaran/photoion/radiation"
)

// Channel is one coherent contribution to a photoionization amplitude:
// photon multipole and gauge, free-electron partial wave κ and the total
// symmetry J_t of the transient (ion + electron) state.
//
// A Channel is created without amplitude; WithAmplitude returns the
// evaluated copy exactly once.
type Channel struct {
	Multipole radiation.Multipole
	Gauge     radiation.Gauge
	Kappa     angular.Kappa
	Symmetry  angular.Symmetry

	phase     float64
	amplitude complex128
	evaluated bool
}

// NewChannel returns an unevaluated channel.
func NewChannel(mp radiation.Multipole, g radiation.Gauge, kappa angular.Kappa, sym angular.Symmetry) Channel {
	return Channel{Multipole: mp, Gauge: g, Kappa: kappa, Symmetry: sym}
}

// WithAmplitude returns the evaluated copy of c. A second assignment fails
// with ErrAmplitudeAssigned.
func (c Channel) WithAmplitude(phase float64, amp complex128) (Channel, error) {
	if c.evaluated {
		return c, ErrAmplitudeAssigned
	}
	c.phase, c.amplitude, c.evaluated = phase, amp, true

	return c, nil
}

// Placeholder returns c with phase and amplitude cleared.
func (c Channel) Placeholder() Channel {
	return NewChannel(c.Multipole, c.Gauge, c.Kappa, c.Symmetry)
}

// Phase is the scattering phase of the partial wave.
func (c Channel) Phase() float64 { return c.phase }

// Amplitude is the channel amplitude (0 until evaluated).
func (c Channel) Amplitude() complex128 { return c.amplitude }

// Evaluated reports whether the amplitude was assigned.
func (c Channel) Evaluated() bool { return c.evaluated }

// sameShape reports whether c and o describe the same channel.
func (c Channel) sameShape(o Channel) bool {
	return c.Multipole == o.Multipole && c.Gauge == o.Gauge && c.Kappa == o.Kappa && c.Symmetry == o.Symmetry
}

func (c Channel) String() string {
	return fmt.Sprintf("%s/%s %s J_t=%s", c.Multipole, c.Gauge, c.Kappa, c.Symmetry)
}

// EnumerateChannels returns the legal channels for the transition
// initial → final under s.
//
// Implementation:
//   - Stage 1: per multipole L, J_t runs over |J_i−L|..J_i+L with
//     parity P_t = P_i·P_L.
//   - Stage 2: per J_t, j runs over |J_t−J_f|..J_t+J_f; of the two partial
//     waves l = j∓½ (κ < 0 first) keep those with P_f·(−1)^l = P_t and l in
//     the allowed list.
//   - Stage 3: electric multipoles yield one channel per requested gauge;
//     magnetic multipoles yield one Magnetic channel.
//
// The order (multipole × J_t × κ × gauge) is deterministic; time delays pair
// channel lists positionally.
//
// Complexity: O(|multipoles| · L · J_f · |gauges|).
func EnumerateChannels(initial, final angular.Symmetry, s Settings) []Channel {
	var out []Channel
	for _, mp := range s.Multipoles {
		pt := initial.Parity.Mul(mp.Parity())
		lj := mp.J()

		lo := initial.J - lj
		if lo < 0 {
			lo = -lo
		}
		for jt := lo; jt <= initial.J+lj; jt += 2 {
			sym := angular.NewSymmetry(jt, pt)
			out = appendPartialWaves(out, mp, sym, final, s)
		}
	}

	return out
}

// appendPartialWaves adds the channels of one transient symmetry.
func appendPartialWaves(out []Channel, mp radiation.Multipole, sym, final angular.Symmetry, s Settings) []Channel {
	lo := sym.J - final.J
	if lo < 0 {
		lo = -lo
	}
	if !lo.IsHalfInteger() {
		// one electron cannot couple J_f to J_t
		return out
	}
	for j := lo; j <= sym.J+final.J; j += 2 {
		if j < 1 {
			continue
		}
		for _, kappa := range angular.KappasOfJ(j) {
			if final.Parity.Mul(kappa.Parity()) != sym.Parity || !s.allows(kappa.L()) {
				continue
			}
			if !mp.Electric() {
				// Magnetic channels feed the requested gauges; none requested, none emitted
				if len(s.Gauges) > 0 {
					out = append(out, NewChannel(mp, radiation.Magnetic, kappa, sym))
				}
				continue
			}
			for _, g := range radiation.EmGauges {
				if s.requests(g) {
					out = append(out, NewChannel(mp, g, kappa, sym))
				}
			}
		}
	}

	return out
}

// Kappas returns the distinct partial waves of line in first-seen order.
func Kappas(line Line) []angular.Kappa {
	var out []angular.Kappa
	seen := make(map[angular.Kappa]bool)
	for _, ch := range line.Channels {
		if !seen[ch.Kappa] {
			seen[ch.Kappa] = true
			out = append(out, ch.Kappa)
		}
	}

	return out
}
