package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/photoion/angular"
	"github.com/katalvlaran/photoion/config"
	"github.com/katalvlaran/photoion/defaults"
	"github.com/katalvlaran/photoion/photoionization"
	"github.com/katalvlaran/photoion/radiation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

const runFile = `
units: ev
multipoles: [E1, m1, E2]
gauges: [length]
photon_energies: [30, 40.5]
allowed_l: [0, 2]
selection:
  final: [1, 3]
stokes: {p3: 1}
angles:
  - {theta: 0.5}
  - {theta: 1.5, phi: 0.25}
delay_reference: -1
workers: 2
calc:
  anisotropy: true
  nondipole: true
levels:
  initial: atom.yaml
  final: /abs/ion.toml
model:
  z: 10
`

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	f, err := config.Load(writeFile(t, dir, "run.yaml", runFile))
	require.NoError(t, err)

	assert.Equal(t, "ev", f.Units)
	assert.Equal(t, defaults.FineStructure, f.Alpha)
	assert.Equal(t, filepath.Join(dir, "atom.yaml"), f.Levels.Initial)
	assert.Equal(t, "/abs/ion.toml", f.Levels.Final)
	assert.Equal(t, config.DefaultGridPoints, f.RadialGrid().Points)
	assert.Equal(t, 10.0, f.NuclearModel().Z)

	s, err := f.Settings()
	require.NoError(t, err)
	assert.Equal(t, []radiation.Multipole{radiation.E(1), radiation.M(1), radiation.E(2)}, s.Multipoles)
	assert.Equal(t, []radiation.Gauge{radiation.Babushkin}, s.Gauges)
	assert.Equal(t, []float64{30, 40.5}, s.PhotonEnergies)
	assert.Equal(t, []int{0, 2}, s.AllowedL)
	assert.Equal(t, []int{1, 3}, s.Selection.Final)
	assert.Equal(t, radiation.Stokes{P3: 1}, s.Stokes)
	assert.Equal(t, []photoionization.AngularPoint{{Theta: 0.5}, {Theta: 1.5, Phi: 0.25}}, s.Angles)
	assert.Equal(t, angular.Kappa(-1), s.DelayReference)
	assert.Equal(t, photoionization.DefaultMaxRank, s.MaxRank)
	assert.Equal(t, 2, s.Workers)
	assert.True(t, s.CalcAnisotropy)
	assert.True(t, s.CalcNondipole)
	assert.False(t, s.CalcTimeDelay)

	d, err := f.Defaults(zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, defaults.ElectronVolt, d.EnergyUnit)
	assert.NotNil(t, d.Logger)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PHOTOION_UNITS", "rydberg")
	t.Setenv("PHOTOION_CALC_ANISOTROPY", "false")
	t.Setenv("PHOTOION_CALC_TIME_DELAY", "true")
	t.Setenv("PHOTOION_MODEL_Z", "2")

	f, err := config.Load(writeFile(t, t.TempDir(), "run.yaml", runFile))
	require.NoError(t, err)
	assert.Equal(t, "rydberg", f.Units)
	assert.False(t, f.Calc.Anisotropy)
	assert.True(t, f.Calc.TimeDelay)
	assert.Equal(t, 2.0, f.Model.Z)
}

func TestLoadFromEnvDefaults(t *testing.T) {
	f, err := config.LoadFromEnv()
	require.NoError(t, err)

	s, err := f.Settings()
	require.NoError(t, err)
	want := photoionization.DefaultSettings()
	assert.Equal(t, want.Multipoles, s.Multipoles)
	assert.Equal(t, want.Gauges, s.Gauges)
	assert.Equal(t, want.DelayReference, s.DelayReference)
}

func TestLoadInvalid(t *testing.T) {
	cases := map[string]string{
		"unit":       "units: furlong\n",
		"multipole":  "multipoles: [X1]\n",
		"gauge":      "gauges: [magnetic]\n",
		"allowed l":  "allowed_l: [-1]\n",
		"workers":    "workers: -3\n",
		"grid":       "model: {grid: {points: 10, rmin: 5, rmax: 1}}\n",
		"stokes":     "stokes: {p1: 1, p3: 1}\n",
		"energy":     "photon_energies: [-1]\n",
		"alpha":      "alpha: -0.1\n",
		"not a file": "",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "missing.yaml")
			if body != "" {
				path = writeFile(t, dir, "run.yaml", body)
			}
			f, err := config.Load(path)
			if err == nil {
				_, err = f.Settings()
			}
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}
