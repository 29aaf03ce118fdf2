package photoionization

import (
	"fmt"

	"github.com/katalvlaran/photoion/atomic"
	"github.com/katalvlaran/photoion/defaults"
	"github.com/katalvlaran/photoion/radiation"
	"go.uber.org/zap"
)

// Line is one photoionization transition initial → final at a fixed photon
// energy, with its channels and computed observables. Energies are in Hartree.
//
// DetermineLines returns Lines with zeroed observables and unevaluated
// channels; the Engine returns evaluated copies.
type Line struct {
	Initial        atomic.Level
	Final          atomic.Level
	ElectronEnergy float64
	PhotonEnergy   float64

	CrossSection    radiation.EmProperty
	Anisotropy      radiation.EmProperty
	CoherentDelay   radiation.EmProperty
	IncoherentDelay radiation.EmProperty

	PartialCrossSections []PartialCrossSection
	Tensors              []StatisticalTensor
	Distribution         []AngularValue
	Parameters           NondipoleParameters

	Channels []Channel
}

func (l Line) String() string {
	return fmt.Sprintf("%s -> %s (ω=%.6g, ε=%.6g)", l.Initial, l.Final, l.PhotonEnergy, l.ElectronEnergy)
}

// DetermineLines builds one Line per accepted level pair and requested energy.
//
// Implementation:
//   - Stage 1: for each (i, f) pair passing s.Selection, in multiplet order.
//   - Stage 2: photon energies ω give ε = ω − (E_f − E_i) + shift; electron
//     energies ε give ω = ε − shift + (E_f − E_i). Settings energies are
//     converted to Hartree first.
//   - Stage 3: ε < 0 is a closed channel and yields no Line; so is ω ≤ 0,
//     which a large shift can produce.
//
// A nil d means defaults.New().
//
// Complexity: O(|I|·|F|·|energies|·C) for C channels per Line.
func DetermineLines(initial, final atomic.Multiplet, s Settings, d *defaults.Defaults) []Line {
	if d == nil {
		d = defaults.New()
	}
	var lines []Line
	shift := d.ToHartree(s.Shift)
	for _, li := range initial.Levels {
		for _, lf := range final.Levels {
			if !s.Selection.Accepts(li.Index, lf.Index) {
				continue
			}
			threshold := lf.Energy - li.Energy

			pairs := make([][2]float64, 0, len(s.PhotonEnergies)+len(s.ElectronEnergies))
			for _, w := range s.PhotonEnergies {
				omega := d.ToHartree(w)
				pairs = append(pairs, [2]float64{omega, omega - threshold + shift})
			}
			for _, e := range s.ElectronEnergies {
				eps := d.ToHartree(e)
				pairs = append(pairs, [2]float64{eps - shift + threshold, eps})
			}

			for _, p := range pairs {
				omega, eps := p[0], p[1]
				if eps < 0 || omega <= 0 {
					d.Logger.Debug("closed channel skipped",
						zap.Int("initial", li.Index), zap.Int("final", lf.Index),
						zap.Float64("omega", omega), zap.Float64("epsilon", eps))
					continue
				}
				lines = append(lines, Line{
					Initial:        li,
					Final:          lf,
					ElectronEnergy: eps,
					PhotonEnergy:   omega,
					Channels:       EnumerateChannels(li.Symmetry, lf.Symmetry, s),
				})
			}
		}
	}
	d.Logger.Info("lines determined", zap.Int("count", len(lines)))

	return lines
}
