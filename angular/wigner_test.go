package angular_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/photoion/angular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

func TestTriangle(t *testing.T) {
	assert.True(t, angular.Triangle(2, 2, 0))
	assert.True(t, angular.Triangle(1, 2, 3))
	assert.False(t, angular.Triangle(1, 2, 2)) // half-integer sum
	assert.False(t, angular.Triangle(2, 2, 6))
	assert.False(t, angular.Triangle(-2, 2, 0))
}

func TestPhase(t *testing.T) {
	assert.Equal(t, 1.0, angular.Phase())
	assert.Equal(t, -1.0, angular.Phase(2))
	assert.Equal(t, 1.0, angular.Phase(1, 3))
	assert.Equal(t, -1.0, angular.Phase(-2))
	assert.Panics(t, func() { angular.Phase(1) })
}

func TestBracket(t *testing.T) {
	assert.Equal(t, 12.0, angular.Bracket(angular.J(1), angular.J(4)))
	assert.InDelta(t, math.Sqrt(12), angular.SqrtBracket(angular.J(1), angular.J(4)), tol)
}

func TestW3jKnownValues(t *testing.T) {
	assert.InDelta(t, -1/math.Sqrt(3), angular.W3j(2, 2, 0, 0, 0, 0), tol)
	assert.InDelta(t, -1/math.Sqrt(6), angular.W3j(2, 2, 2, 2, 0, -2), tol)
	assert.InDelta(t, math.Sqrt(2.0/15), angular.W3j(2, 4, 2, 0, 0, 0), tol)

	// selection rules give exact zeros
	assert.Zero(t, angular.W3j(2, 2, 2, 0, 0, 0))
	assert.Zero(t, angular.W3j(2, 2, 2, 2, 2, 0))
	assert.Zero(t, angular.W3j(2, 2, 6, 0, 0, 0))
}

func TestW3jOrthogonality(t *testing.T) {
	j1, j2 := angular.J(3), angular.J(4)
	for j3 := angular.J(1); j3 <= 7; j3 += 2 {
		for m3 := -j3; m3 <= j3; m3 += 2 {
			sum := 0.0
			for _, m1 := range j1.Projections() {
				m2 := -m1 - m3
				w := angular.W3j(j1, j2, j3, m1, m2, m3)
				sum += w * w
			}
			assert.InDelta(t, 1/float64(j3.Bracket()), sum, tol, "j3=%s m3=%d", j3, m3)
		}
	}
}

func TestClebschGordan(t *testing.T) {
	one, half := angular.Int(1), angular.J(1)
	assert.InDelta(t, -1/math.Sqrt(3), angular.ClebschGordan(one, 0, half, 1, half, 1), tol)
	assert.InDelta(t, math.Sqrt(2.0/3), angular.ClebschGordan(one, 2, half, -1, half, 1), tol)
	// stretched state
	assert.InDelta(t, 1.0, angular.ClebschGordan(one, 2, half, 1, angular.J(3), 3), tol)
}

func TestW6jKnownValuesAndSymmetry(t *testing.T) {
	assert.InDelta(t, 1.0/6, angular.W6j(2, 2, 2, 2, 2, 2), tol)
	assert.InDelta(t, 1.0/6, angular.W6j(1, 1, 2, 1, 1, 2), tol)
	assert.InDelta(t, -1.0/3, angular.W6j(2, 1, 1, 1, 2, 2), tol)

	// column permutations and row swaps in two columns leave the symbol invariant
	a, b, c, d, e, f := angular.J(3), angular.J(4), angular.J(5), angular.J(2), angular.J(3), angular.J(2)
	ref := angular.W6j(a, b, c, d, e, f)
	require.NotZero(t, ref)
	assert.InDelta(t, ref, angular.W6j(b, a, c, e, d, f), tol)
	assert.InDelta(t, ref, angular.W6j(c, b, a, f, e, d), tol)
	assert.InDelta(t, ref, angular.W6j(d, e, c, a, b, f), tol)

	assert.Zero(t, angular.W6j(2, 2, 6, 2, 2, 2))
}

func TestW6jOrthogonality(t *testing.T) {
	// Σ_x [x][f] {a b x; c d f}{a b x; c d g} = δ_fg
	a, b, c, d := angular.J(2), angular.J(3), angular.J(2), angular.J(3)
	for f := angular.J(1); f <= 5; f += 2 {
		for g := angular.J(1); g <= 5; g += 2 {
			sum := 0.0
			for x := angular.J(1); x <= 5; x += 2 {
				sum += angular.Bracket(x, f) * angular.W6j(a, b, x, c, d, f) * angular.W6j(a, b, x, c, d, g)
			}
			want := 0.0
			if f == g {
				want = 1
			}
			assert.InDelta(t, want, sum, 1e-10, "f=%d g=%d", f, g)
		}
	}
}

func TestW9jKnownValues(t *testing.T) {
	assert.InDelta(t, 0.0, angular.W9j(2, 2, 2, 2, 2, 2, 2, 2, 2), tol)
	assert.InDelta(t, 1/(3*math.Sqrt(3)), angular.W9j(2, 2, 0, 2, 2, 0, 2, 2, 0), tol)
	assert.InDelta(t, 1.0/12, angular.W9j(2, 1, 1, 2, 1, 3, 2, 2, 2), 1e-12)
}

func TestW9jZeroRankReducesTo6j(t *testing.T) {
	// {a b e; c d e; f f 0} = (−1)^{b+c+e+f} {a b e; d c f} / √([e][f])
	L1, Jt1, Ji, L2, Jt2 := angular.Int(1), angular.J(3), angular.J(5), angular.Int(1), angular.J(7)
	for f := angular.J(0); f <= 4; f += 2 {
		nine := angular.W9j(L1, Jt1, Ji, L2, Jt2, Ji, f, f, 0)
		six := angular.Phase(int(Jt1), int(L2), int(Ji), int(f)) *
			angular.W6j(L1, Jt1, Ji, Jt2, L2, f) / angular.SqrtBracket(Ji, f)
		assert.InDelta(t, six, nine, 1e-12, "f=%s", f)
	}
	assert.InDelta(t, 1.0/30, angular.W9j(L1, Jt1, Ji, L2, Jt2, Ji, 4, 4, 0), 1e-12)
}
