// SPDX-License-Identifier: MIT

package radiation

import "fmt"

// EmProperty is a (Coulomb, Babushkin) value pair. All arithmetic is
// pointwise per tag; the two tags never mix.
type EmProperty struct {
	Coulomb   float64
	Babushkin float64
}

// Uniform returns EmProperty{v, v}.
func Uniform(v float64) EmProperty { return EmProperty{Coulomb: v, Babushkin: v} }

// Add returns p + q.
func (p EmProperty) Add(q EmProperty) EmProperty {
	return EmProperty{Coulomb: p.Coulomb + q.Coulomb, Babushkin: p.Babushkin + q.Babushkin}
}

// Sub returns p − q.
func (p EmProperty) Sub(q EmProperty) EmProperty {
	return EmProperty{Coulomb: p.Coulomb - q.Coulomb, Babushkin: p.Babushkin - q.Babushkin}
}

// Mul returns the pointwise product.
func (p EmProperty) Mul(q EmProperty) EmProperty {
	return EmProperty{Coulomb: p.Coulomb * q.Coulomb, Babushkin: p.Babushkin * q.Babushkin}
}

// Div returns the pointwise quotient; division by zero follows IEEE rules.
func (p EmProperty) Div(q EmProperty) EmProperty {
	return EmProperty{Coulomb: p.Coulomb / q.Coulomb, Babushkin: p.Babushkin / q.Babushkin}
}

// Scale returns s·p.
func (p EmProperty) Scale(s float64) EmProperty {
	return EmProperty{Coulomb: s * p.Coulomb, Babushkin: s * p.Babushkin}
}

// Get returns the value for g; Magnetic reads the Coulomb slot.
func (p EmProperty) Get(g Gauge) float64 {
	if g == Babushkin {
		return p.Babushkin
	}

	return p.Coulomb
}

// With returns a copy of p with the slot for g set to v. Magnetic writes both.
func (p EmProperty) With(g Gauge, v float64) EmProperty {
	switch g {
	case Coulomb:
		p.Coulomb = v
	case Babushkin:
		p.Babushkin = v
	case Magnetic:
		p.Coulomb, p.Babushkin = v, v
	}

	return p
}

func (p EmProperty) String() string {
	return fmt.Sprintf("(C: %.6e, B: %.6e)", p.Coulomb, p.Babushkin)
}

// EmComplex is the complex-valued counterpart of EmProperty.
type EmComplex struct {
	Coulomb   complex128
	Babushkin complex128
}

// Add returns p + q.
func (p EmComplex) Add(q EmComplex) EmComplex {
	return EmComplex{Coulomb: p.Coulomb + q.Coulomb, Babushkin: p.Babushkin + q.Babushkin}
}

// Get returns the value for g; Magnetic reads the Coulomb slot.
func (p EmComplex) Get(g Gauge) complex128 {
	if g == Babushkin {
		return p.Babushkin
	}

	return p.Coulomb
}

// Accumulate adds v to the slots g contributes to.
func (p EmComplex) Accumulate(g Gauge, v complex128) EmComplex {
	if g.ContributesTo(Coulomb) {
		p.Coulomb += v
	}
	if g.ContributesTo(Babushkin) {
		p.Babushkin += v
	}

	return p
}

// Real returns the pointwise real parts.
func (p EmComplex) Real() EmProperty {
	return EmProperty{Coulomb: real(p.Coulomb), Babushkin: real(p.Babushkin)}
}
