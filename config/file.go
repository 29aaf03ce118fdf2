// SPDX-License-Identifier: MIT

package config

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/photoion/angular"
	"github.com/katalvlaran/photoion/atomic"
	"github.com/katalvlaran/photoion/defaults"
	"github.com/katalvlaran/photoion/photoionization"
	"github.com/katalvlaran/photoion/radiation"
	"go.uber.org/zap"
)

// File is the decoded run file.
type File struct {
	Units            string       `mapstructure:"units"`
	Alpha            float64      `mapstructure:"alpha"`
	Multipoles       []string     `mapstructure:"multipoles"`
	Gauges           []string     `mapstructure:"gauges"`
	PhotonEnergies   []float64    `mapstructure:"photon_energies"`
	ElectronEnergies []float64    `mapstructure:"electron_energies"`
	EnergyShift      float64      `mapstructure:"energy_shift"`
	AllowedL         []int        `mapstructure:"allowed_l"`
	Selection        Selection    `mapstructure:"selection"`
	Stokes           Stokes       `mapstructure:"stokes"`
	Angles           []Angle      `mapstructure:"angles"`
	DelayReference   int          `mapstructure:"delay_reference"`
	MaxRank          int          `mapstructure:"max_rank"`
	Workers          int          `mapstructure:"workers"`
	Calc             Calc         `mapstructure:"calc"`
	Levels           Levels       `mapstructure:"levels"`
	Model            ModelSection `mapstructure:"model"`
}

// Selection mirrors photoionization.LevelSelection.
type Selection struct {
	Initial []int `mapstructure:"initial"`
	Final   []int `mapstructure:"final"`
}

// Stokes holds the photon polarization.
type Stokes struct {
	P1 float64 `mapstructure:"p1"`
	P2 float64 `mapstructure:"p2"`
	P3 float64 `mapstructure:"p3"`
}

// Angle is one direction in radians.
type Angle struct {
	Theta float64 `mapstructure:"theta"`
	Phi   float64 `mapstructure:"phi"`
}

// Calc switches the optional observables.
type Calc struct {
	Anisotropy        bool `mapstructure:"anisotropy"`
	TimeDelay         bool `mapstructure:"time_delay"`
	PartialCs         bool `mapstructure:"partial_cs"`
	Tensors           bool `mapstructure:"tensors"`
	Nondipole         bool `mapstructure:"nondipole"`
	PrintIntermediate bool `mapstructure:"print_intermediate"`
}

// Levels points at the initial and final multiplet fixtures. Relative paths
// are resolved against the run file's directory.
type Levels struct {
	Initial string `mapstructure:"initial"`
	Final   string `mapstructure:"final"`
}

// ModelSection configures the hydrogenic demonstration model.
type ModelSection struct {
	Z    float64 `mapstructure:"z"`
	Grid Grid    `mapstructure:"grid"`
}

// Grid mirrors atomic.RadialGrid.
type Grid struct {
	Points int     `mapstructure:"points"`
	RMin   float64 `mapstructure:"rmin"`
	RMax   float64 `mapstructure:"rmax"`
}

// Defaults of a run file; zero values in a decoded File are replaced by these.
const (
	DefaultUnits      = "hartree"
	DefaultGridPoints = 2000
	DefaultGridRMin   = 1e-4
	DefaultGridRMax   = 60.0
)

// ApplyDefaults fills every unset field.
func ApplyDefaults(f *File) {
	if f.Units == "" {
		f.Units = DefaultUnits
	}
	if f.Alpha == 0 {
		f.Alpha = defaults.FineStructure
	}
	if len(f.Multipoles) == 0 {
		f.Multipoles = []string{"E1"}
	}
	if len(f.Gauges) == 0 {
		f.Gauges = []string{"coulomb", "babushkin"}
	}
	if f.DelayReference == 0 {
		f.DelayReference = int(photoionization.DefaultDelayReference)
	}
	if f.MaxRank == 0 {
		f.MaxRank = photoionization.DefaultMaxRank
	}
	if f.Model.Grid.Points == 0 {
		f.Model.Grid = Grid{Points: DefaultGridPoints, RMin: DefaultGridRMin, RMax: DefaultGridRMax}
	}
}

// Validate checks every field that the engine options would otherwise reject
// by panicking, plus the string-typed names.
func (f *File) Validate() error {
	if _, err := defaults.ParseUnit(f.Units); err != nil {
		return errors.Mark(err, ErrInvalidConfig)
	}
	if !(f.Alpha > 0) || math.IsInf(f.Alpha, 0) {
		return errors.Wrapf(ErrInvalidConfig, "alpha=%g", f.Alpha)
	}
	if _, err := f.multipoles(); err != nil {
		return err
	}
	if _, err := f.gauges(); err != nil {
		return err
	}
	for _, l := range f.AllowedL {
		if l < 0 {
			return errors.Wrapf(ErrInvalidConfig, "allowed_l: %d", l)
		}
	}
	switch {
	case f.MaxRank < 0:
		return errors.Wrapf(ErrInvalidConfig, "max_rank=%d", f.MaxRank)
	case f.Workers < 0:
		return errors.Wrapf(ErrInvalidConfig, "workers=%d", f.Workers)
	case f.Model.Z < 0:
		return errors.Wrapf(ErrInvalidConfig, "model.z=%g", f.Model.Z)
	case f.Model.Grid.Points < 2 || !(f.Model.Grid.RMax > f.Model.Grid.RMin):
		return errors.Wrapf(ErrInvalidConfig, "model.grid=%+v", f.Model.Grid)
	}

	return nil
}

func (f *File) multipoles() ([]radiation.Multipole, error) {
	out := make([]radiation.Multipole, 0, len(f.Multipoles))
	for _, text := range f.Multipoles {
		mp, err := radiation.ParseMultipole(text)
		if err != nil {
			return nil, errors.Mark(err, ErrInvalidConfig)
		}
		out = append(out, mp)
	}

	return out, nil
}

func (f *File) gauges() ([]radiation.Gauge, error) {
	out := make([]radiation.Gauge, 0, len(f.Gauges))
	for _, text := range f.Gauges {
		g, err := radiation.ParseGauge(text)
		if err != nil {
			return nil, errors.Mark(err, ErrInvalidConfig)
		}
		if g == radiation.Magnetic {
			return nil, errors.Wrapf(ErrInvalidConfig, "gauge %q cannot be requested", text)
		}
		out = append(out, g)
	}

	return out, nil
}

// Settings converts f into engine settings. f must have passed Validate.
func (f *File) Settings() (photoionization.Settings, error) {
	mps, err := f.multipoles()
	if err != nil {
		return photoionization.Settings{}, err
	}
	gs, err := f.gauges()
	if err != nil {
		return photoionization.Settings{}, err
	}
	angles := make([]photoionization.AngularPoint, len(f.Angles))
	for i, a := range f.Angles {
		angles[i] = photoionization.AngularPoint{Theta: a.Theta, Phi: a.Phi}
	}

	s, err := photoionization.NewSettings(
		photoionization.WithMultipoles(mps...),
		photoionization.WithGauges(gs...),
		photoionization.WithPhotonEnergies(f.PhotonEnergies...),
		photoionization.WithElectronEnergies(f.ElectronEnergies...),
		photoionization.WithEnergyShift(f.EnergyShift),
		photoionization.WithAllowedL(f.AllowedL...),
		photoionization.WithSelection(photoionization.LevelSelection{Initial: f.Selection.Initial, Final: f.Selection.Final}),
		photoionization.WithStokes(radiation.Stokes{P1: f.Stokes.P1, P2: f.Stokes.P2, P3: f.Stokes.P3}),
		photoionization.WithAngles(angles...),
		photoionization.WithDelayReference(angular.Kappa(f.DelayReference)),
		photoionization.WithMaxRank(f.MaxRank),
		photoionization.WithWorkers(f.Workers),
		photoionization.WithAnisotropy(f.Calc.Anisotropy),
		photoionization.WithTimeDelay(f.Calc.TimeDelay),
		photoionization.WithPartialCrossSections(f.Calc.PartialCs),
		photoionization.WithStatisticalTensors(f.Calc.Tensors),
		photoionization.WithNondipole(f.Calc.Nondipole),
		photoionization.WithPrintIntermediate(f.Calc.PrintIntermediate),
	)
	if err != nil {
		return photoionization.Settings{}, errors.Mark(err, ErrInvalidConfig)
	}

	return s, nil
}

// Defaults builds the run context with logger log (nil keeps the no-op logger).
func (f *File) Defaults(log *zap.Logger) (*defaults.Defaults, error) {
	unit, err := defaults.ParseUnit(f.Units)
	if err != nil {
		return nil, errors.Mark(err, ErrInvalidConfig)
	}

	return defaults.New(defaults.WithEnergyUnit(unit), defaults.WithAlpha(f.Alpha), defaults.WithLogger(log)), nil
}

// NuclearModel returns the point nucleus of charge Model.Z.
func (f *File) NuclearModel() atomic.NuclearModel {
	return atomic.NuclearModel{Z: f.Model.Z, Model: "point"}
}

// RadialGrid returns the model grid.
func (f *File) RadialGrid() atomic.RadialGrid {
	return atomic.RadialGrid{Points: f.Model.Grid.Points, RMin: f.Model.Grid.RMin, RMax: f.Model.Grid.RMax}
}
