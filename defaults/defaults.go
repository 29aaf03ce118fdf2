// Package defaults holds the read-only run context shared by every entry
// point of the engine: physical constants, the user-facing energy unit with
// its conversion table, and the structured logger.
//
// A Defaults value is built once (New) and passed explicitly; nothing in the
// module reads process-wide mutable state.
//
// ⚙️ Usage:
//
//	d := defaults.New(
//	    defaults.WithEnergyUnit(defaults.ElectronVolt),
//	    defaults.WithLogger(logger),
//	)
//	eps := d.ToHartree(13.6) // 0.4998 Hartree
package defaults

import (
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Physical constants (CODATA 2018).
const (
	// FineStructure is the fine-structure constant α.
	FineStructure = 1 / 137.035999084

	// HartreeInEV is one Hartree in electron volts.
	HartreeInEV = 27.211386245988

	// HartreeInKayser is one Hartree in cm⁻¹.
	HartreeInKayser = 219474.6313632

	// HartreeInRydberg is one Hartree in Rydberg.
	HartreeInRydberg = 2.0
)

// ErrUnknownUnit indicates an energy unit name that is not in the table.
var ErrUnknownUnit = errors.New("defaults: unknown energy unit")

// Unit is an energy unit.
type Unit int

const (
	// Hartree is the internal atomic unit of energy.
	Hartree Unit = iota
	// ElectronVolt is eV.
	ElectronVolt
	// Rydberg is half a Hartree.
	Rydberg
	// Kayser is cm⁻¹.
	Kayser
)

// unitTable maps each unit to its size in Hartree and its names.
var unitTable = map[Unit]struct {
	perHartree float64
	names      []string
}{
	Hartree:      {1, []string{"hartree", "au", "a.u."}},
	ElectronVolt: {HartreeInEV, []string{"ev"}},
	Rydberg:      {HartreeInRydberg, []string{"rydberg", "ry"}},
	Kayser:       {HartreeInKayser, []string{"kayser", "cm-1"}},
}

// ParseUnit resolves a case-insensitive unit name.
func ParseUnit(name string) (Unit, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for u, row := range unitTable {
		for _, n := range row.names {
			if n == key {
				return u, nil
			}
		}
	}

	return 0, errors.Wrapf(ErrUnknownUnit, "%q", name)
}

func (u Unit) String() string {
	if row, ok := unitTable[u]; ok {
		return row.names[0]
	}

	return "unit(?)"
}

// Defaults is the explicit run context. Treat it as read-only after New.
type Defaults struct {
	Alpha      float64
	EnergyUnit Unit
	Logger     *zap.Logger
}

// Option configures Defaults.
type Option func(*Defaults)

// WithEnergyUnit sets the user-facing energy unit. Panics on unknown units.
func WithEnergyUnit(u Unit) Option {
	if _, ok := unitTable[u]; !ok {
		panic(ErrUnknownUnit.Error())
	}

	return func(d *Defaults) { d.EnergyUnit = u }
}

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(d *Defaults) {
		if l != nil {
			d.Logger = l
		}
	}
}

// WithAlpha overrides the fine-structure constant (e.g. for the
// nonrelativistic limit α → 0 checks). Panics on non-positive values.
func WithAlpha(alpha float64) Option {
	if !(alpha > 0) {
		panic("defaults: WithAlpha: alpha must be positive")
	}

	return func(d *Defaults) { d.Alpha = alpha }
}

// New returns Defaults with α = FineStructure, Hartree units and a no-op logger.
func New(opts ...Option) *Defaults {
	d := &Defaults{Alpha: FineStructure, EnergyUnit: Hartree, Logger: zap.NewNop()}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// ToHartree converts v from the configured unit to Hartree.
func (d *Defaults) ToHartree(v float64) float64 { return Convert(v, d.EnergyUnit, Hartree) }

// FromHartree converts v from Hartree to the configured unit.
func (d *Defaults) FromHartree(v float64) float64 { return Convert(v, Hartree, d.EnergyUnit) }

// Convert converts v between two units.
func Convert(v float64, from, to Unit) float64 {
	return v / unitTable[from].perHartree * unitTable[to].perHartree
}
