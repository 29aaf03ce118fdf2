package photoionization

import (
	"maps"
	"slices"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/photoion/atomic"
	"github.com/katalvlaran/photoion/radiation"
)

// PhotonEnergies returns the distinct photon energies of lines, ascending.
func PhotonEnergies(lines []Line) []float64 {
	out := make([]float64, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.PhotonEnergy)
	}
	slices.Sort(out)

	return slices.Compact(out)
}

// LinesAtPhotonEnergy returns the lines computed at exactly omega, in input order.
func LinesAtPhotonEnergy(lines []Line, omega float64) []Line {
	var out []Line
	for _, l := range lines {
		if l.PhotonEnergy == omega {
			out = append(out, l)
		}
	}

	return out
}

// InterpolateCrossSection returns the cross section out of initial level
// initialIndex, summed over final levels, at photon energy omega. Each
// (initial, final) pair is interpolated on its own energy grid before the
// sum, so finals computed at different photon energies (an electron-energy
// grid) still all contribute. Grid energies are reproduced exactly; between
// grid points the value is linear in ω, outside the grid it is extrapolated
// from the two nearest points. A pair with a single energy contributes only
// at that energy.
//
// Errors:
//   - ErrNoBracketingEnergies when no final level contributes at omega.
func InterpolateCrossSection(lines []Line, initialIndex int, omega float64) (radiation.EmProperty, error) {
	byFinal := make(map[int]map[float64]radiation.EmProperty)
	for _, l := range lines {
		if l.Initial.Index != initialIndex {
			continue
		}
		if byFinal[l.Final.Index] == nil {
			byFinal[l.Final.Index] = make(map[float64]radiation.EmProperty)
		}
		pts := byFinal[l.Final.Index]
		pts[l.PhotonEnergy] = pts[l.PhotonEnergy].Add(l.CrossSection)
	}

	var (
		total radiation.EmProperty
		used  int
	)
	for _, f := range slices.Sorted(maps.Keys(byFinal)) {
		v, ok := interpolatePoints(byFinal[f], omega)
		if ok {
			total = total.Add(v)
			used++
		}
	}
	if used == 0 {
		return radiation.EmProperty{}, errors.Wrapf(ErrNoBracketingEnergies,
			"initial level %d: %d final levels", initialIndex, len(byFinal))
	}

	return total, nil
}

// interpolatePoints evaluates the piecewise-linear curve through pts at omega.
func interpolatePoints(pts map[float64]radiation.EmProperty, omega float64) (radiation.EmProperty, bool) {
	if v, ok := pts[omega]; ok {
		return v, true
	}
	if len(pts) < 2 {
		return radiation.EmProperty{}, false
	}

	grid := make([]float64, 0, len(pts))
	for w := range pts {
		grid = append(grid, w)
	}
	slices.Sort(grid)

	// i is the upper point of the segment used.
	i := sort.SearchFloat64s(grid, omega)
	i = max(1, min(i, len(grid)-1))
	w0, w1 := grid[i-1], grid[i]
	t := (omega - w0) / (w1 - w0)

	return pts[w0].Scale(1 - t).Add(pts[w1].Scale(t)), true
}

// CrossSectionByShell sums the cross sections of lines per ionized subshell,
// resolved from the leading configurations of the initial and final levels.
// Lines whose configurations differ by more than one removed electron are
// collected under the zero Subshell.
func CrossSectionByShell(lines []Line) map[atomic.Subshell]radiation.EmProperty {
	out := make(map[atomic.Subshell]radiation.EmProperty)
	for _, l := range lines {
		sub, ok := l.Initial.Leading.IonizedSubshell(l.Final.Leading)
		if !ok {
			sub = atomic.Subshell{}
		}
		out[sub] = out[sub].Add(l.CrossSection)
	}

	return out
}
