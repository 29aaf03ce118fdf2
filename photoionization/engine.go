// SPDX-License-Identifier: MIT

package photoionization

import (
	"context"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/photoion/atomic"
	"github.com/katalvlaran/photoion/defaults"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Engine evaluates Lines: it drives continuum-orbital generation and
// amplitude evaluation per channel and assembles every requested observable.
// An Engine holds no mutable state and is safe for concurrent use when its
// providers are.
type Engine struct {
	orbitals  atomic.OrbitalProvider
	evaluator atomic.RadiativeEvaluator
	grid      atomic.RadialGrid
	nucleus   atomic.NuclearModel
	continuum atomic.ContinuumSettings
	defaults  *defaults.Defaults
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithRadialGrid sets the grid handed to the providers.
func WithRadialGrid(g atomic.RadialGrid) EngineOption { return func(e *Engine) { e.grid = g } }

// WithNuclearModel sets the nuclear model handed to the orbital provider.
func WithNuclearModel(n atomic.NuclearModel) EngineOption { return func(e *Engine) { e.nucleus = n } }

// WithContinuumSettings sets the continuum-orbital settings.
func WithContinuumSettings(c atomic.ContinuumSettings) EngineOption {
	return func(e *Engine) { e.continuum = c }
}

// NewEngine returns an Engine over the two external collaborators.
// A nil d is replaced by defaults.New().
//
// Errors:
//   - ErrNilProvider when orbitals or evaluator is nil.
func NewEngine(orbitals atomic.OrbitalProvider, evaluator atomic.RadiativeEvaluator, d *defaults.Defaults, opts ...EngineOption) (*Engine, error) {
	if orbitals == nil || evaluator == nil {
		return nil, ErrNilProvider
	}
	if d == nil {
		d = defaults.New()
	}
	e := &Engine{orbitals: orbitals, evaluator: evaluator, defaults: d}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// ComputeLines evaluates every Line concurrently (at most s.Workers at a
// time) and returns the evaluated copies in input order. The first failing
// Line cancels the others and its error is returned.
func (e *Engine) ComputeLines(ctx context.Context, lines []Line, s Settings) ([]Line, error) {
	workers := s.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]Line, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range lines {
		g.Go(func() error {
			line, err := e.ComputeLine(gctx, lines[i], s)
			if err != nil {
				return err
			}
			out[i] = line

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	e.defaults.Logger.Info("lines computed", zap.Int("count", len(out)), zap.Int("workers", workers))

	return out, nil
}

// ComputeLine evaluates one Line and returns the evaluated copy; line itself
// is not modified. Any provider failure aborts the Line, since a coherent sum
// over an incomplete channel set is meaningless.
//
// Implementation:
//   - Stage 1: evaluate every channel at (ω, ε); accumulate Σ|A|² per gauge.
//   - Stage 2: σ = 8π³/(α·ω) · Σ|A|².
//   - Stage 3: optional observables, each from the evaluated channel list.
func (e *Engine) ComputeLine(ctx context.Context, line Line, s Settings) (Line, error) {
	log := e.defaults.Logger.With(zap.Int("initial", line.Initial.Index), zap.Int("final", line.Final.Index),
		zap.Float64("omega", line.PhotonEnergy))

	channels, err := e.evaluateChannels(ctx, line, line.PhotonEnergy, line.ElectronEnergy, s, log)
	if err != nil {
		return Line{}, errors.WithDetailf(errors.Wrapf(err, "line %s", line), "channels=%d", len(line.Channels))
	}

	out := line
	out.Channels = channels
	norms := amplitudeNorms(channels)
	out.CrossSection = crossSection(norms, line.PhotonEnergy, e.defaults.Alpha)

	if s.CalcAnisotropy {
		out.Anisotropy = anisotropy(line.Initial.Symmetry, line.Final.Symmetry, channels, norms)
	}
	if s.CalcTimeDelay {
		shifted, err := e.evaluateChannels(ctx, line, line.PhotonEnergy+DelayStep, line.ElectronEnergy+DelayStep, s, log)
		if err != nil {
			return Line{}, errors.Wrapf(err, "line %s: time delay", line)
		}
		out.CoherentDelay, out.IncoherentDelay, err = timeDelays(channels, shifted, s.DelayReference)
		if err != nil {
			return Line{}, errors.Wrapf(err, "line %s: time delay", line)
		}
	}
	if s.CalcPartialCs {
		out.PartialCrossSections = partialCrossSections(line.Initial.Symmetry, line.Final.Symmetry, channels,
			line.PhotonEnergy, e.defaults.Alpha)
	}
	if s.CalcTensors {
		out.Tensors = statisticalTensors(line.Initial.Symmetry, line.Final.Symmetry, channels, s.Stokes)
	}
	if s.CalcNondipole {
		corr := newCorrelation(line.Initial.Symmetry, line.Final.Symmetry, channels, s.Stokes, s.MaxRank)
		out.Parameters = corr.parameters()
		out.Distribution, err = corr.distribution(s.Angles, line.PhotonEnergy, e.defaults.Alpha)
		if err != nil {
			return Line{}, errors.Wrapf(err, "line %s: angular distribution", line)
		}
	}

	log.Debug("line computed", zap.Int("channels", len(channels)),
		zap.Float64("cs_coulomb", out.CrossSection.Coulomb), zap.Float64("cs_babushkin", out.CrossSection.Babushkin))

	return out, nil
}

// evaluateChannels returns freshly evaluated copies of line's channels at
// photon energy omega and electron energy eps, in the same order.
func (e *Engine) evaluateChannels(ctx context.Context, line Line, omega, eps float64, s Settings, log *zap.Logger) ([]Channel, error) {
	out := make([]Channel, len(line.Channels))
	for i, placeholder := range line.Channels {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ch := placeholder.Placeholder()

		residual := atomic.ResidualLevel(line.Final, ch.Kappa)
		orbital, phase, err := e.orbitals.GenerateOrbitalForLevel(ctx, eps, ch.Kappa, residual, e.nucleus, e.grid, e.continuum)
		if err != nil {
			return nil, errors.Wrapf(err, "continuum orbital %s", ch)
		}
		continuum := atomic.NewContinuumLevel(residual, orbital, ch.Kappa, phase, ch.Symmetry)

		amp, err := Amplitude(ctx, e.evaluator, atomic.Photoionization, ch, omega, continuum, line.Initial, e.grid)
		if err != nil {
			return nil, err
		}
		if out[i], err = ch.WithAmplitude(phase, amp); err != nil {
			return nil, err
		}
		if s.PrintIntermediate {
			log.Debug("channel amplitude", zap.Stringer("channel", ch),
				zap.Float64("re", real(amp)), zap.Float64("im", imag(amp)), zap.Float64("phase", phase))
		}
	}

	return out, nil
}
