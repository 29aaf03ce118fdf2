package main

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/photoion/atomic"
	"github.com/katalvlaran/photoion/config"
	"github.com/katalvlaran/photoion/defaults"
	"github.com/katalvlaran/photoion/photoionization"
	"go.uber.org/zap"
)

// errNoConfig is returned by commands that need a run file.
var errNoConfig = errors.New("photoion: --config is required")

// run is a loaded run file with its fixtures and the lines they produce.
type run struct {
	file     *config.File
	settings photoionization.Settings
	defaults *defaults.Defaults
	initial  atomic.Multiplet
	final    atomic.Multiplet
	lines    []photoionization.Line
}

func (a *app) loadRun() (*run, error) {
	if a.configPath == "" {
		return nil, errNoConfig
	}
	f, err := config.Load(a.configPath)
	if err != nil {
		return nil, err
	}
	r := &run{file: f}
	if r.settings, err = f.Settings(); err != nil {
		return nil, err
	}
	if r.defaults, err = f.Defaults(a.log); err != nil {
		return nil, err
	}
	if r.initial, err = config.LoadMultiplet(f.Levels.Initial); err != nil {
		return nil, errors.Wrap(err, "initial levels")
	}
	if r.final, err = config.LoadMultiplet(f.Levels.Final); err != nil {
		return nil, errors.Wrap(err, "final levels")
	}
	r.lines = photoionization.DetermineLines(r.initial, r.final, r.settings, r.defaults)
	a.log.Info("run loaded", zap.String("config", a.configPath),
		zap.Int("initial_levels", len(r.initial.Levels)), zap.Int("final_levels", len(r.final.Levels)),
		zap.Int("lines", len(r.lines)), zap.Stringer("unit", r.defaults.EnergyUnit))

	return r, nil
}

// nuclearModel returns the configured nucleus; Z = 0 means the neutral atom
// of the first initial level.
func (r *run) nuclearModel() atomic.NuclearModel {
	n := r.file.NuclearModel()
	if n.Z == 0 && len(r.initial.Levels) > 0 {
		n.Z = float64(r.initial.Levels[0].Leading.Electrons())
	}

	return n
}
