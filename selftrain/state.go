// SPDX-License-Identifier: MIT

package selftrain

import "github.com/plbecker/scikit-learn/labels"

// fitState is the per-Fit bookkeeping. It is owned by one Fit call.
type fitState struct {
	codes     []int // transduction: class code or labels.Unlabeled
	iter      []int // labeled iteration: 0, k ≥ 1, or NeverLabeled
	unlabeled []int // indices with codes[i] == Unlabeled, ascending
	labeled   int   // len(codes) - len(unlabeled)
}

func newFitState(codes []int) *fitState {
	st := &fitState{
		codes: codes,
		iter:  make([]int, len(codes)),
	}
	for i, c := range codes {
		if c == labels.Unlabeled {
			st.iter[i] = NeverLabeled
			st.unlabeled = append(st.unlabeled, i)
		}
	}
	st.labeled = len(codes) - len(st.unlabeled)

	return st
}

// labeledRows lists the currently labeled indices in ascending order.
func (st *fitState) labeledRows() []int {
	rows := make([]int, 0, st.labeled)
	for i, c := range st.codes {
		if c != labels.Unlabeled {
			rows = append(rows, i)
		}
	}

	return rows
}

// promote applies picks made against the current unlabeled list and drops
// the promoted samples from it. Only unlabeled slots are ever written.
func (st *fitState) promote(picks []promotion, iteration int) {
	if len(picks) == 0 {
		return
	}

	taken := make([]bool, len(st.unlabeled))
	for _, p := range picks {
		idx := st.unlabeled[p.pos]
		st.codes[idx] = p.class
		st.iter[idx] = iteration
		taken[p.pos] = true
	}

	remaining := st.unlabeled[:0]
	for pos, idx := range st.unlabeled {
		if !taken[pos] {
			remaining = append(remaining, idx)
		}
	}
	st.unlabeled = remaining
	st.labeled += len(picks)
}
