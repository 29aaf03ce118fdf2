// SPDX-License-Identifier: MIT

// Table algebra for checking rotation matrices (d·dᵀ = 1, composition).
// Only tests call these.

package matrix

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Mul returns the product a·b.
//
// Implementation:
//   - Stage 1: validate non-nil operands and a.Cols == b.Rows.
//   - Stage 2: i→k→j loop over the flat buffers, skipping zero a[i,k].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, errors.Wrap(ErrNilMatrix, "Mul")
	}
	if a.c != b.r {
		return nil, errors.Wrapf(ErrDimensionMismatch, "Mul: %dx%d · %dx%d", a.r, a.c, b.r, b.c)
	}

	res := &Dense{r: a.r, c: b.c, data: make([]float64, a.r*b.c)}
	for i := 0; i < a.r; i++ {
		rowA, rowR := i*a.c, i*b.c
		for k := 0; k < a.c; k++ {
			av := a.data[rowA+k]
			if av == 0 {
				continue
			}
			rowB := k * b.c
			for j := 0; j < b.c; j++ {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a new matrix.
// Complexity: O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, errors.Wrap(ErrNilMatrix, "Transpose")
	}

	res := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res, nil
}

// AllClose reports whether |a−b| ≤ atol + rtol·|b| holds elementwise.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if a == nil || b == nil {
		return false, errors.Wrap(ErrNilMatrix, "AllClose")
	}
	if a.r != b.r || a.c != b.c {
		return false, errors.Wrap(ErrDimensionMismatch, "AllClose")
	}
	for i, av := range a.data {
		bv := b.data[i]
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}
