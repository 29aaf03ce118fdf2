package config

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix of every run-file key.
const envPrefix = "PHOTOION"

// envKeys are the keys that can be set from the environment even when the
// run file omits them.
var envKeys = []string{
	"units", "alpha", "multipoles", "gauges", "photon_energies", "electron_energies",
	"energy_shift", "allowed_l", "delay_reference", "max_rank", "workers",
	"stokes.p1", "stokes.p2", "stokes.p3",
	"calc.anisotropy", "calc.time_delay", "calc.partial_cs", "calc.tensors", "calc.nondipole",
	"calc.print_intermediate",
	"levels.initial", "levels.final",
	"model.z", "model.grid.points", "model.grid.rmin", "model.grid.rmax",
}

// newViper returns a viper instance reading YAML with PHOTOION_ overrides;
// "." maps to "_" so "calc.nondipole" resolves to PHOTOION_CALC_NONDIPOLE.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, k := range envKeys {
		_ = v.BindEnv(k)
	}

	return v
}

// Load reads the run file at path, merges PHOTOION_* overrides, applies
// defaults and validates the result. Fixture paths are made absolute
// relative to the run file.
//
// Errors:
//   - ErrInvalidConfig (marked) for unreadable files and invalid values.
func Load(path string) (*File, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "config: read %q", path), ErrInvalidConfig)
	}

	f, err := unmarshalAndFinalize(v)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	f.Levels.Initial = resolve(dir, f.Levels.Initial)
	f.Levels.Final = resolve(dir, f.Levels.Final)

	return f, nil
}

// LoadFromEnv builds a File from PHOTOION_* variables and defaults only.
func LoadFromEnv() (*File, error) {
	return unmarshalAndFinalize(newViper())
}

func unmarshalAndFinalize(v *viper.Viper) (*File, error) {
	f := &File{}
	if err := v.Unmarshal(f); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "config: unmarshal"), ErrInvalidConfig)
	}
	ApplyDefaults(f)
	if err := f.Validate(); err != nil {
		return nil, errors.Wrap(err, "config: validation failed")
	}

	return f, nil
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(dir, p)
}
