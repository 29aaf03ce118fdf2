// SPDX-License-Identifier: MIT

package photoionization

import (
	"math"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/photoion/angular"
	"github.com/katalvlaran/photoion/radiation"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxRank is the largest rank X kept in the angle-differential sums.
	DefaultMaxRank = 20

	// DefaultDelayReference is the reference partial wave of the coherent time
	// delay (p3/2).
	DefaultDelayReference = angular.Kappa(-2)

	// DefaultWorkers = 0 lets the engine use GOMAXPROCS workers.
	DefaultWorkers = 0

	// DelayStep is the photon-energy increment (Hartree) of the time-delay
	// finite difference.
	DelayStep = 0.01
)

// ---------- Internal panic messages ----------

const (
	panicMaxRank        = "photoionization: WithMaxRank: rank must be >= 0"
	panicWorkers        = "photoionization: WithWorkers: count must be >= 0"
	panicDelayReference = "photoionization: WithDelayReference: kappa must be non-zero"
	panicGauge          = "photoionization: WithGauges: only Coulomb and Babushkin can be requested"
	panicMultipole      = "photoionization: WithMultipoles: zero-value multipole"
	panicAllowedL       = "photoionization: WithAllowedL: l must be >= 0"
)

// LevelSelection restricts the level pairs turned into Lines, by level index.
// An empty list accepts every level on that side.
type LevelSelection struct {
	Initial []int
	Final   []int
}

// Accepts reports whether the pair (initial, final) passes the filter.
func (s LevelSelection) Accepts(initial, final int) bool {
	return (len(s.Initial) == 0 || slices.Contains(s.Initial, initial)) &&
		(len(s.Final) == 0 || slices.Contains(s.Final, final))
}

// AngularPoint is one (θ, φ) direction of the emitted electron, in radians,
// relative to the photon propagation axis.
type AngularPoint struct {
	Theta float64
	Phi   float64
}

// Settings is the immutable run configuration of a photoionization
// computation. Build it with NewSettings; derive variants with With.
//
// Energies (PhotonEnergies, ElectronEnergies, Shift) are expressed in the
// energy unit of the defaults.Defaults context.
type Settings struct {
	Multipoles       []radiation.Multipole
	Gauges           []radiation.Gauge
	PhotonEnergies   []float64
	ElectronEnergies []float64
	Angles           []AngularPoint
	AllowedL         []int // empty: every l
	Selection        LevelSelection
	Stokes           radiation.Stokes
	Shift            float64
	DelayReference   angular.Kappa
	MaxRank          int
	Workers          int

	CalcAnisotropy    bool
	CalcTimeDelay     bool
	CalcPartialCs     bool
	CalcTensors       bool
	CalcNondipole     bool
	PrintIntermediate bool
}

// Option mutates Settings during construction.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Settings)

// DefaultSettings returns the baseline configuration:
//   - Multipoles: E1; Gauges: Coulomb, Babushkin.
//   - No energies, no angular grid, every l allowed, every level pair.
//   - Unpolarized light, zero shift, reference κ0 = −2, X ≤ 20.
//   - All optional observables off.
func DefaultSettings() Settings {
	return Settings{
		Multipoles:     []radiation.Multipole{radiation.E(1)},
		Gauges:         []radiation.Gauge{radiation.Coulomb, radiation.Babushkin},
		Stokes:         radiation.Unpolarized(),
		DelayReference: DefaultDelayReference,
		MaxRank:        DefaultMaxRank,
		Workers:        DefaultWorkers,
	}
}

// NewSettings applies opts over DefaultSettings and validates the result.
//
// Errors:
//   - ErrEmptyMultipoles, ErrEmptyGauges, ErrBadEnergy, radiation.ErrInvalidStokes.
func NewSettings(opts ...Option) (Settings, error) {
	s := DefaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}

// With returns a copy of s in which only the supplied options override
// fields; everything else keeps its current value. The copy shares no slices
// with s.
func (s Settings) With(opts ...Option) (Settings, error) {
	cp := s.clone()
	for _, opt := range opts {
		opt(&cp)
	}
	if err := cp.Validate(); err != nil {
		return Settings{}, err
	}

	return cp, nil
}

func (s Settings) clone() Settings {
	cp := s
	cp.Multipoles = slices.Clone(s.Multipoles)
	cp.Gauges = slices.Clone(s.Gauges)
	cp.PhotonEnergies = slices.Clone(s.PhotonEnergies)
	cp.ElectronEnergies = slices.Clone(s.ElectronEnergies)
	cp.Angles = slices.Clone(s.Angles)
	cp.AllowedL = slices.Clone(s.AllowedL)
	cp.Selection = LevelSelection{Initial: slices.Clone(s.Selection.Initial), Final: slices.Clone(s.Selection.Final)}

	return cp
}

// Validate checks user-supplied values.
func (s Settings) Validate() error {
	if len(s.Multipoles) == 0 {
		return ErrEmptyMultipoles
	}
	if len(s.Gauges) == 0 {
		return ErrEmptyGauges
	}
	for _, w := range s.PhotonEnergies {
		if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
			return errors.Wrapf(ErrBadEnergy, "photon energy %g", w)
		}
	}
	for _, e := range s.ElectronEnergies {
		// negative ε is a closed channel, dropped by DetermineLines
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return errors.Wrapf(ErrBadEnergy, "electron energy %g", e)
		}
	}
	if math.IsNaN(s.Shift) || math.IsInf(s.Shift, 0) {
		return errors.Wrapf(ErrBadEnergy, "shift %g", s.Shift)
	}

	return s.Stokes.Validate()
}

// allows reports whether partial waves of orbital momentum l are requested.
func (s Settings) allows(l int) bool {
	return len(s.AllowedL) == 0 || slices.Contains(s.AllowedL, l)
}

// requests reports whether gauge g was requested.
func (s Settings) requests(g radiation.Gauge) bool { return slices.Contains(s.Gauges, g) }

// ---------- Constructors (WithX) ----------

// WithMultipoles replaces the multipole list. Panics on zero-value multipoles.
func WithMultipoles(mps ...radiation.Multipole) Option {
	for _, mp := range mps {
		if !mp.Valid() {
			panic(panicMultipole)
		}
	}
	mps = slices.Clone(mps)

	return func(s *Settings) { s.Multipoles = mps }
}

// WithGauges replaces the requested gauges. Only Coulomb and Babushkin can be
// requested; magnetic channels follow from the multipoles.
func WithGauges(gs ...radiation.Gauge) Option {
	for _, g := range gs {
		if g != radiation.Coulomb && g != radiation.Babushkin {
			panic(panicGauge)
		}
	}
	gs = slices.Clone(gs)

	return func(s *Settings) { s.Gauges = gs }
}

// WithPhotonEnergies replaces the photon energies.
func WithPhotonEnergies(ws ...float64) Option {
	ws = slices.Clone(ws)

	return func(s *Settings) { s.PhotonEnergies = ws }
}

// WithElectronEnergies replaces the free-electron energies.
func WithElectronEnergies(es ...float64) Option {
	es = slices.Clone(es)

	return func(s *Settings) { s.ElectronEnergies = es }
}

// WithAngles replaces the angular grid of the non-dipole distribution.
func WithAngles(points ...AngularPoint) Option {
	points = slices.Clone(points)

	return func(s *Settings) { s.Angles = points }
}

// WithAllowedL restricts the partial waves to the given orbital momenta.
func WithAllowedL(ls ...int) Option {
	for _, l := range ls {
		if l < 0 {
			panic(panicAllowedL)
		}
	}
	ls = slices.Clone(ls)

	return func(s *Settings) { s.AllowedL = ls }
}

// WithSelection sets the level-pair filter.
func WithSelection(sel LevelSelection) Option {
	sel = LevelSelection{Initial: slices.Clone(sel.Initial), Final: slices.Clone(sel.Final)}

	return func(s *Settings) { s.Selection = sel }
}

// WithStokes sets the polarization of the incident light; validated by NewSettings.
func WithStokes(st radiation.Stokes) Option {
	return func(s *Settings) { s.Stokes = st }
}

// WithEnergyShift sets the shift added to every free-electron energy.
func WithEnergyShift(shift float64) Option {
	return func(s *Settings) { s.Shift = shift }
}

// WithDelayReference sets the reference partial wave κ0 of the coherent time delay.
func WithDelayReference(k angular.Kappa) Option {
	if !k.Valid() {
		panic(panicDelayReference)
	}

	return func(s *Settings) { s.DelayReference = k }
}

// WithMaxRank sets the largest rank X of the angle-differential sums.
func WithMaxRank(x int) Option {
	if x < 0 {
		panic(panicMaxRank)
	}

	return func(s *Settings) { s.MaxRank = x }
}

// WithWorkers bounds the number of Lines evaluated concurrently (0: GOMAXPROCS).
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkers)
	}

	return func(s *Settings) { s.Workers = n }
}

// WithAnisotropy toggles the dipole anisotropy β.
func WithAnisotropy(on bool) Option { return func(s *Settings) { s.CalcAnisotropy = on } }

// WithTimeDelay toggles coherent and incoherent time delays.
func WithTimeDelay(on bool) Option { return func(s *Settings) { s.CalcTimeDelay = on } }

// WithPartialCrossSections toggles the M_f-resolved cross sections.
func WithPartialCrossSections(on bool) Option { return func(s *Settings) { s.CalcPartialCs = on } }

// WithStatisticalTensors toggles ρ_kq of the residual ion.
func WithStatisticalTensors(on bool) Option { return func(s *Settings) { s.CalcTensors = on } }

// WithNondipole toggles the angle-differential cross section and named parameters.
func WithNondipole(on bool) Option { return func(s *Settings) { s.CalcNondipole = on } }

// WithPrintIntermediate logs every channel amplitude at debug level.
func WithPrintIntermediate(on bool) Option { return func(s *Settings) { s.PrintIntermediate = on } }
