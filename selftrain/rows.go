// SPDX-License-Identifier: MIT

package selftrain

import "gonum.org/v1/gonum/mat"

// selectRows gathers the given rows of X into a new dense matrix, in order.
// rows must be non-empty; when it covers every row in order X is returned as-is.
//
// Complexity: O(len(rows)·d).
func selectRows(X mat.Matrix, rows []int) mat.Matrix {
	n, d := X.Dims()
	if len(rows) == n && isIdentity(rows) {
		return X
	}

	out := mat.NewDense(len(rows), d, nil)
	buf := make([]float64, d)
	for i, r := range rows {
		mat.Row(buf, r, X)
		out.SetRow(i, buf)
	}

	return out
}

func isIdentity(rows []int) bool {
	for i, r := range rows {
		if i != r {
			return false
		}
	}

	return true
}

// gatherCodes returns codes[rows[i]] for every i.
func gatherCodes(codes []int, rows []int) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = codes[r]
	}

	return out
}
