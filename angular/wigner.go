// SPDX-License-Identifier: MIT

package angular

import "math"

// projectionOK reports whether m is a legal projection of j.
func projectionOK(j, m J) bool {
	if m < -j || m > j {
		return false
	}

	return (j+m)%2 == 0
}

// W3j returns the Wigner 3j symbol
//
//	( j1 j2 j3 )
//	( m1 m2 m3 )
//
// for twice-valued arguments, or 0 when a selection rule fails.
//
// Implementation:
//   - Stage 1: projection sum, triangle and range checks.
//   - Stage 2: Racah single sum over k.
//
// Complexity: O(min(j1, j2, j3)) terms.
func W3j(j1, j2, j3, m1, m2, m3 J) float64 {
	if m1+m2+m3 != 0 || !Triangle(j1, j2, j3) {
		return 0
	}
	if !projectionOK(j1, m1) || !projectionOK(j2, m2) || !projectionOK(j3, m3) {
		return 0
	}

	pre := delta(j1, j2, j3) * math.Sqrt(
		fact(int(j1+m1)/2)*fact(int(j1-m1)/2)*
			fact(int(j2+m2)/2)*fact(int(j2-m2)/2)*
			fact(int(j3+m3)/2)*fact(int(j3-m3)/2))

	kmin := max(0, int(j2-j3-m1)/2, int(j1-j3+m2)/2)
	kmax := min(int(j1+j2-j3)/2, int(j1-m1)/2, int(j2+m2)/2)

	sum := 0.0
	for k := kmin; k <= kmax; k++ {
		term := 1 / (fact(k) *
			fact(int(j1+j2-j3)/2-k) *
			fact(int(j1-m1)/2-k) *
			fact(int(j2+m2)/2-k) *
			fact(int(j3-j2+m1)/2+k) *
			fact(int(j3-j1-m2)/2+k))
		if k%2 != 0 {
			term = -term
		}
		sum += term
	}

	return Phase(int(j1-j2-m3)) * pre * sum
}

// ClebschGordan returns ⟨j1 m1, j2 m2 | J M⟩ with the Condon-Shortley phase.
//
//	⟨j1 m1, j2 m2|J M⟩ = (−1)^{j1−j2+M} √[J] (j1 j2 J; m1 m2 −M)
func ClebschGordan(j1, m1, j2, m2, jj, mm J) float64 {
	w := W3j(j1, j2, jj, m1, m2, -mm)
	if w == 0 {
		return 0
	}

	return Phase(int(j1-j2+mm)) * math.Sqrt(float64(jj.Bracket())) * w
}

// W6j returns the Wigner 6j symbol
//
//	{ a b c }
//	{ d e f }
//
// or 0 when any of the triads (abc), (aef), (dbf), (dec) violates the
// triangle rule.
//
// Complexity: O(min range) terms of a Racah sum.
func W6j(a, b, c, d, e, f J) float64 {
	if !Triangle(a, b, c) || !Triangle(a, e, f) || !Triangle(d, b, f) || !Triangle(d, e, c) {
		return 0
	}

	pre := delta(a, b, c) * delta(a, e, f) * delta(d, b, f) * delta(d, e, c)

	t1, t2 := int(a+b+c)/2, int(a+e+f)/2
	t3, t4 := int(d+b+f)/2, int(d+e+c)/2
	p1, p2, p3 := int(a+b+d+e)/2, int(a+c+d+f)/2, int(b+c+e+f)/2

	sum := 0.0
	for k := max(t1, t2, t3, t4); k <= min(p1, p2, p3); k++ {
		term := fact(k+1) / (fact(k-t1) * fact(k-t2) * fact(k-t3) * fact(k-t4) *
			fact(p1-k) * fact(p2-k) * fact(p3-k))
		if k%2 != 0 {
			term = -term
		}
		sum += term
	}

	return pre * sum
}

// W9j returns the Wigner 9j symbol
//
//	{ a b c }
//	{ d e f }
//	{ g h i }
//
// via its expansion in 6j symbols over the intermediate x:
//
//	Σ_x (−1)^{2x} [x] {a b c; f i x}{d e f; b x h}{g h i; x a d}
//
// Complexity: O(j) 6j triples.
func W9j(a, b, c, d, e, f, g, h, i J) float64 {
	if !Triangle(a, b, c) || !Triangle(d, e, f) || !Triangle(g, h, i) ||
		!Triangle(a, d, g) || !Triangle(b, e, h) || !Triangle(c, f, i) {
		return 0
	}

	lo := max(absJ(a-i), absJ(d-h), absJ(b-f))
	hi := min(a+i, d+h, b+f)

	sum := 0.0
	for x := lo; x <= hi; x += 2 {
		w := W6j(a, b, c, f, i, x)
		if w == 0 {
			continue
		}
		w *= W6j(d, e, f, b, x, h)
		if w == 0 {
			continue
		}
		w *= W6j(g, h, i, x, a, d)
		if x%2 != 0 {
			w = -w
		}
		sum += float64(x.Bracket()) * w
	}

	return sum
}

func absJ(j J) J {
	if j < 0 {
		return -j
	}

	return j
}
