package photoionization

import (
	"fmt"

	"github.com/katalvlaran/photoion/angular"
	"github.com/katalvlaran/photoion/radiation"
)

// PartialCrossSection is the cross section into one magnetic substate M_f of
// the residual ion.
type PartialCrossSection struct {
	Mf    angular.J // twice-valued projection
	Value radiation.EmProperty
}

// StatisticalTensor is one component ρ_kq of the residual-ion density matrix.
type StatisticalTensor struct {
	K, Q  int
	Value radiation.EmComplex
}

// AngularValue is the angle-differential cross section at one direction.
// Normalized is dσ/dΩ relative to its angular average (NoValue on zero norm).
type AngularValue struct {
	Point        AngularPoint
	Differential radiation.EmProperty
	Normalized   radiation.EmProperty
}

// Parameter names one angular-correlation coefficient of the non-dipole
// distribution.
type Parameter int

const (
	Beta1 Parameter = iota
	Gamma1
	Gamma3
	Pi2
	Pi4
	Delta1
	Lambda2
	Lambda4
	Upsilon2
	numParameters
)

var parameterNames = [numParameters]string{"β1", "γ1", "γ3", "π2", "π4", "δ1", "λ2", "λ4", "υ2"}

// Parameters lists every named parameter in slot order.
func Parameters() []Parameter {
	out := make([]Parameter, numParameters)
	for i := range out {
		out[i] = Parameter(i)
	}

	return out
}

func (p Parameter) String() string {
	if p < 0 || p >= numParameters {
		return "parameter(?)"
	}

	return parameterNames[p]
}

// ParameterKey identifies the (L1, L2, X, electric1, electric2) class of a
// term of the angle-differential sum.
type ParameterKey struct {
	L1, L2    int
	X         int
	Electric1 bool
	Electric2 bool
}

func (k ParameterKey) String() string {
	kind := func(e bool) string {
		if e {
			return "E"
		}
		return "M"
	}

	return fmt.Sprintf("%s%d%s%d/X=%d", kind(k.Electric1), k.L1, kind(k.Electric2), k.L2, k.X)
}

// UnmatchedTerm is a θ=φ=0 term whose key has no named parameter.
type UnmatchedTerm struct {
	Key   ParameterKey
	Value radiation.EmProperty
}

// NondipoleParameters holds the named parameters per gauge plus the
// diagnostic terms that matched no parameter.
type NondipoleParameters struct {
	Values    [numParameters]radiation.EmProperty
	Unmatched []UnmatchedTerm
}

// Get returns parameter p in gauge g.
func (n NondipoleParameters) Get(p Parameter, g radiation.Gauge) float64 {
	return n.Values[p].Get(g)
}
