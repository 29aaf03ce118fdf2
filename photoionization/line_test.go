package photoionization_test

import (
	"testing"

	"github.com/katalvlaran/photoion/angular"
	"github.com/katalvlaran/photoion/atomic"
	"github.com/katalvlaran/photoion/defaults"
	"github.com/katalvlaran/photoion/photoionization"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func neonLike() (atomic.Multiplet, atomic.Multiplet) {
	initial := atomic.Multiplet{Name: "atom", Levels: []atomic.Level{
		{Index: 1, Label: "ground", Symmetry: sym(0, angular.Plus), Energy: -2.9},
	}}
	final := atomic.Multiplet{Name: "ion", Levels: []atomic.Level{
		{Index: 1, Symmetry: sym(1, angular.Minus), Energy: -2.0},
		{Index: 2, Symmetry: sym(3, angular.Minus), Energy: -1.5},
	}}

	return initial, final
}

func TestDetermineLinesPhotonEnergies(t *testing.T) {
	initial, final := neonLike()
	d := defaults.New(defaults.WithLogger(zaptest.NewLogger(t)))
	s := mustSettings(t, photoionization.WithPhotonEnergies(0.95, 1.2))

	lines := photoionization.DetermineLines(initial, final, s, d)
	require.Len(t, lines, 2, "closed channels of the 3/2 level are dropped")
	for _, l := range lines {
		assert.Equal(t, 1, l.Final.Index)
		assert.NotEmpty(t, l.Channels)
		assert.InDelta(t, l.PhotonEnergy-0.9, l.ElectronEnergy, 1e-12)
		for _, ch := range l.Channels {
			assert.False(t, ch.Evaluated())
		}
	}
	assert.Equal(t, 0.95, lines[0].PhotonEnergy)
	assert.Equal(t, 1.2, lines[1].PhotonEnergy)
}

func TestDetermineLinesElectronEnergiesAndShift(t *testing.T) {
	initial, final := neonLike()
	d := defaults.New()
	s := mustSettings(t, photoionization.WithElectronEnergies(0.1), photoionization.WithEnergyShift(0.05))

	lines := photoionization.DetermineLines(initial, final, s, d)
	require.Len(t, lines, 2)
	assert.InDelta(t, 0.1-0.05+0.9, lines[0].PhotonEnergy, 1e-12)
	assert.InDelta(t, 0.1-0.05+1.4, lines[1].PhotonEnergy, 1e-12)
	assert.Equal(t, 0.1, lines[1].ElectronEnergy)
}

func TestDetermineLinesUnitsAndSelection(t *testing.T) {
	initial, final := neonLike()
	d := defaults.New(defaults.WithEnergyUnit(defaults.ElectronVolt))
	s := mustSettings(t,
		photoionization.WithPhotonEnergies(2*defaults.HartreeInEV),
		photoionization.WithSelection(photoionization.LevelSelection{Final: []int{2}}),
	)

	lines := photoionization.DetermineLines(initial, final, s, d)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Final.Index)
	assert.InDelta(t, 2.0, lines[0].PhotonEnergy, 1e-12)
	assert.InDelta(t, 0.6, lines[0].ElectronEnergy, 1e-12)
}

func TestDetermineLinesEmpty(t *testing.T) {
	initial, final := neonLike()
	s := mustSettings(t, photoionization.WithPhotonEnergies(0.5))
	assert.Empty(t, photoionization.DetermineLines(initial, final, s, defaults.New()))
}

func TestDetermineLinesNegativeElectronEnergyIsClosed(t *testing.T) {
	initial, final := neonLike()
	s := mustSettings(t, photoionization.WithElectronEnergies(-0.2, 0.1))

	lines := photoionization.DetermineLines(initial, final, s, defaults.New())
	require.Len(t, lines, 2)
	for _, l := range lines {
		assert.Equal(t, 0.1, l.ElectronEnergy)
	}
	assert.Equal(t, 1, lines[0].Final.Index)
	assert.Equal(t, 2, lines[1].Final.Index)
}

func TestDetermineLinesNonPositivePhotonEnergy(t *testing.T) {
	initial, final := neonLike()
	// ω = 0.1 − 2 + ΔE is -1.0 and -0.5
	s := mustSettings(t, photoionization.WithElectronEnergies(0.1), photoionization.WithEnergyShift(2))
	assert.Empty(t, photoionization.DetermineLines(initial, final, s, defaults.New()))

	// only the 3/2 level keeps ω = 0.1 − 1.2 + 1.4 > 0
	s = mustSettings(t, photoionization.WithElectronEnergies(0.1), photoionization.WithEnergyShift(1.2))
	lines := photoionization.DetermineLines(initial, final, s, defaults.New())
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Final.Index)
	assert.InDelta(t, 0.3, lines[0].PhotonEnergy, 1e-12)
}

func TestDetermineLinesNilDefaults(t *testing.T) {
	initial, final := neonLike()
	s := mustSettings(t, photoionization.WithPhotonEnergies(1.2))

	want := photoionization.DetermineLines(initial, final, s, defaults.New())
	got := photoionization.DetermineLines(initial, final, s, nil)
	require.Len(t, got, 1)
	assert.Equal(t, want[0].PhotonEnergy, got[0].PhotonEnergy)
	assert.Equal(t, want[0].ElectronEnergy, got[0].ElectronEnergy)
	assert.Equal(t, len(want[0].Channels), len(got[0].Channels))
}
