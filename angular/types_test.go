package angular_test

import (
	"testing"

	"github.com/katalvlaran/photoion/angular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKappaQuantumNumbers(t *testing.T) {
	cases := []struct {
		kappa angular.Kappa
		l     int
		j     angular.J
		name  string
	}{
		{-1, 0, 1, "s1/2"},
		{1, 1, 1, "p1/2"},
		{-2, 1, 3, "p3/2"},
		{2, 2, 3, "d3/2"},
		{-3, 2, 5, "d5/2"},
		{3, 3, 5, "f5/2"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.l, tc.kappa.L(), tc.name)
		assert.Equal(t, tc.j, tc.kappa.J(), tc.name)
		assert.Equal(t, tc.name, tc.kappa.String())
		assert.Equal(t, angular.ParityOf(tc.l), tc.kappa.Parity())

		k, err := angular.NewKappa(tc.l, tc.j)
		require.NoError(t, err)
		assert.Equal(t, tc.kappa, k)
	}
}

func TestNewKappaRejectsBadPairs(t *testing.T) {
	_, err := angular.NewKappa(2, angular.J(1))
	require.ErrorIs(t, err, angular.ErrInvalidKappa)

	_, err = angular.NewKappa(-1, angular.J(1))
	require.ErrorIs(t, err, angular.ErrNegativeMomentum)
}

func TestKappasOfJ(t *testing.T) {
	assert.Equal(t, [2]angular.Kappa{-2, 2}, angular.KappasOfJ(3))
	assert.Equal(t, [2]angular.Kappa{-1, 1}, angular.KappasOfJ(1))
}

func TestJFormatting(t *testing.T) {
	assert.Equal(t, "5/2", angular.J(5).String())
	assert.Equal(t, "2", angular.Int(2).String())
	assert.Equal(t, 6, angular.J(5).Bracket())
	assert.Equal(t, []angular.J{-3, -1, 1, 3}, angular.J(3).Projections())
}

func TestParseSymmetry(t *testing.T) {
	s, err := angular.ParseSymmetry("5/2-")
	require.NoError(t, err)
	assert.Equal(t, angular.NewSymmetry(5, angular.Minus), s)
	assert.Equal(t, "5/2-", s.String())

	s, err = angular.ParseSymmetry(" 0+ ")
	require.NoError(t, err)
	assert.Equal(t, angular.NewSymmetry(0, angular.Plus), s)

	for _, bad := range []string{"", "1", "2/2+", "x-", "-1+"} {
		_, err = angular.ParseSymmetry(bad)
		assert.ErrorIs(t, err, angular.ErrParseSymmetry, bad)
	}
}

func TestParityAlgebra(t *testing.T) {
	assert.Equal(t, angular.Minus, angular.Plus.Mul(angular.Minus))
	assert.Equal(t, angular.Plus, angular.Minus.Mul(angular.Minus))
	assert.Equal(t, -1.0, angular.Minus.Sign())
}
