package angular

import "math"

// maxFactorial is the largest n whose n! is finite in float64.
const maxFactorial = 170

// factorials[n] = n!, filled once at init.
var factorials [maxFactorial + 1]float64

func init() {
	factorials[0] = 1
	for n := 1; n <= maxFactorial; n++ {
		factorials[n] = factorials[n-1] * float64(n)
	}
}

// fact returns n! for 0 ≤ n ≤ 170 and +Inf beyond.
// Callers guarantee n ≥ 0.
func fact(n int) float64 {
	if n > maxFactorial {
		return math.Inf(1)
	}

	return factorials[n]
}

// Triangle reports whether a, b, c satisfy the triangle rule
// |a−b| ≤ c ≤ a+b with a+b+c integer.
//
// Complexity: O(1).
func Triangle(a, b, c J) bool {
	if a < 0 || b < 0 || c < 0 {
		return false
	}
	if (a+b+c)%2 != 0 {
		return false
	}
	d := a - b
	if d < 0 {
		d = -d
	}

	return c >= d && c <= a+b
}

// Phase returns (−1)^x for x given as a sum of twice-valued terms.
// The total must be even (an integer exponent); an odd total is a
// programmer error and panics.
func Phase(twice ...int) float64 {
	sum := 0
	for _, t := range twice {
		sum += t
	}
	if sum%2 != 0 {
		panic("angular: Phase: half-integer exponent")
	}
	if (sum/2)%2 == 0 {
		return 1
	}

	return -1
}

// Bracket returns the product of degeneracies [a][b]... = Π (2a+1).
func Bracket(js ...J) float64 {
	p := 1.0
	for _, j := range js {
		p *= float64(j.Bracket())
	}

	return p
}

// SqrtBracket returns √([a][b]...).
func SqrtBracket(js ...J) float64 { return math.Sqrt(Bracket(js...)) }

// delta is the Racah triangle coefficient Δ(abc) for twice-valued arguments.
func delta(a, b, c J) float64 {
	return math.Sqrt(fact(int(a+b-c)/2) * fact(int(a-b+c)/2) * fact(int(-a+b+c)/2) / fact(int(a+b+c)/2+1))
}
