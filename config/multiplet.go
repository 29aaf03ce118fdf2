package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/photoion/angular"
	"github.com/katalvlaran/photoion/atomic"
	"github.com/katalvlaran/photoion/defaults"
	"gopkg.in/yaml.v3"
)

// multipletFixture is the on-disk form of an atomic.Multiplet.
//
//	name: Ne
//	unit: ev
//	levels:
//	  - {index: 1, label: ground, symmetry: "0+", energy: -128.9, configuration: "1s1/2^2 2s1/2^2 2p1/2^2 2p3/2^4"}
type multipletFixture struct {
	Name   string         `yaml:"name" toml:"name"`
	Unit   string         `yaml:"unit" toml:"unit"`
	Levels []levelFixture `yaml:"levels" toml:"levels"`
}

type levelFixture struct {
	Index         int     `yaml:"index" toml:"index"`
	Label         string  `yaml:"label" toml:"label"`
	Symmetry      string  `yaml:"symmetry" toml:"symmetry"`
	Energy        float64 `yaml:"energy" toml:"energy"`
	Configuration string  `yaml:"configuration" toml:"configuration"`
}

// LoadMultiplet reads a level fixture: .yaml/.yml through yaml.v3, .toml
// through BurntSushi/toml. Energies are converted from the fixture unit
// (Hartree when omitted) to Hartree. Levels without an index are numbered
// from 1 in file order.
func LoadMultiplet(path string) (atomic.Multiplet, error) {
	var fx multipletFixture
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return atomic.Multiplet{}, errors.Wrapf(err, "config: read %q", path)
		}
		if err := yaml.Unmarshal(data, &fx); err != nil {
			return atomic.Multiplet{}, errors.Mark(errors.Wrapf(err, "config: decode %q", path), ErrInvalidConfig)
		}
	case ".toml":
		if _, err := toml.DecodeFile(path, &fx); err != nil {
			return atomic.Multiplet{}, errors.Mark(errors.Wrapf(err, "config: decode %q", path), ErrInvalidConfig)
		}
	default:
		return atomic.Multiplet{}, errors.Wrapf(ErrInvalidConfig, "%q: unsupported fixture extension %q", path, ext)
	}

	m, err := fx.multiplet()
	if err != nil {
		return atomic.Multiplet{}, errors.Wrapf(err, "config: %q", path)
	}

	return m, nil
}

func (fx multipletFixture) multiplet() (atomic.Multiplet, error) {
	unit := defaults.Hartree
	if fx.Unit != "" {
		var err error
		if unit, err = defaults.ParseUnit(fx.Unit); err != nil {
			return atomic.Multiplet{}, errors.Mark(err, ErrInvalidConfig)
		}
	}

	m := atomic.Multiplet{Name: fx.Name, Levels: make([]atomic.Level, 0, len(fx.Levels))}
	for i, lf := range fx.Levels {
		sym, err := angular.ParseSymmetry(lf.Symmetry)
		if err != nil {
			return atomic.Multiplet{}, errors.Mark(errors.Wrapf(err, "level %d", i+1), ErrInvalidConfig)
		}
		conf, err := atomic.ParseConfiguration(lf.Configuration)
		if err != nil {
			return atomic.Multiplet{}, errors.Mark(errors.Wrapf(err, "level %d", i+1), ErrInvalidConfig)
		}
		index := lf.Index
		if index == 0 {
			index = i + 1
		}
		m.Levels = append(m.Levels, atomic.Level{
			Index:    index,
			Label:    lf.Label,
			Symmetry: sym,
			Energy:   defaults.Convert(lf.Energy, unit, defaults.Hartree),
			Leading:  conf,
		})
	}
	if err := m.Validate(); err != nil {
		return atomic.Multiplet{}, errors.Mark(err, ErrInvalidConfig)
	}

	return m, nil
}
