// Package angular implements the angular-momentum algebra used by the
// photoionization engine: twice-integer angular momenta, parities, relativistic
// kappa quantum numbers, triangle rules, Wigner 3j/6j/9j symbols,
// Clebsch-Gordan coefficients and Wigner small-d rotation matrices.
//
// 🚀 What is it?
//
//	Every recoupling sum in the engine reduces to products of a handful of
//	coefficients. All of them are evaluated here with exact Racah sums over
//	factorials, on arguments stored as twice their physical value so that
//	half-integer momenta stay integers:
//	  • J(1)  == 1/2,  J(2) == 1,  J(5) == 5/2
//	  • Kappa(-1) == s1/2, Kappa(1) == p1/2, Kappa(-2) == p3/2
//
// ✨ Key features:
//   - W3j, W6j, W9j, ClebschGordan: return 0 whenever a selection rule fails,
//     never an error, so callers can sum blindly over candidate ranks.
//   - Triangle, Phase, Bracket: the small helpers every Racah expression needs.
//   - SmallD / SmallDMatrix: Wigner d^j_{m'm}(β) as a scalar or as a full
//     matrix.Dense table indexed by (j+m', j+m).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/photoion/angular"
//
//	half := angular.J(1)
//	one := angular.Int(1)
//	cg := angular.ClebschGordan(one, 0, half, half, half, half) // ⟨1 0, ½ ½|½ ½⟩
//
// Conventions:
//
//	3j symbols follow Edmonds; Clebsch-Gordan coefficients use the Condon-Shortley
//	phase; d^j_{m'm}(β) = ⟨jm'|exp(-iβJ_y)|jm⟩.
//
// Complexity:
//
//	W3j, W6j: O(j) terms per call. W9j: O(j) 6j triples. SmallDMatrix: O(j³).
package angular
