// SPDX-License-Identifier: MIT

// Package matrix provides a small row-major float64 matrix used to hold
// rotation tables (Wigner d^j(β)) and other square recoupling tables.
//
// What & Why:
//
//	Rotation matrices are consumed column by column inside the angular
//	correlation sums and are validated through simple algebra (dᵀd = I,
//	d(β1)·d(β2) = d(β1+β2)). Dense keeps one flat buffer with the explicit
//	index formula i*cols + j, bounds-checked accessors that return errors
//	instead of panicking, and a finite-only numeric policy.
//
// ✨ Key features:
//   - NewDense / Identity constructors with strict shape validation.
//   - At / Set / Clone / String; Col for a copy of one column.
//   - Mul, Transpose, AllClose kernels operating on the flat buffer.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Mul: O(r*n*c); Transpose: O(r*c).
package matrix
