// SPDX-License-Identifier: MIT

package labels

import (
	"fmt"
	"slices"
)

// Encoder is a bijection between the labels seen at construction and the
// codes 0..K-1, plus the sentinel ↔ Unlabeled pair.
// An Encoder is immutable after NewEncoder and safe for concurrent reads.
type Encoder[L Label] struct {
	sentinel L         // value marking unlabeled samples in caller space
	classes  []L       // sorted ascending; classes[code] == label
	index    map[L]int // label → code
}

// NewEncoder collects the distinct non-sentinel values of y.
// Implementation:
//   - Stage 1: gather unique labels, skipping the sentinel.
//   - Stage 2: sort ascending and assign codes by position.
//
// An all-sentinel y yields an encoder with zero classes; callers decide
// whether that is an error for them.
//
// Complexity: O(N + K log K).
func NewEncoder[L Label](y []L, sentinel L) *Encoder[L] {
	seen := make(map[L]struct{})
	classes := make([]L, 0)
	for _, v := range y {
		if v == sentinel {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		classes = append(classes, v)
	}
	slices.Sort(classes)

	index := make(map[L]int, len(classes))
	for code, v := range classes {
		index[v] = code
	}

	return &Encoder[L]{sentinel: sentinel, classes: classes, index: index}
}

// Len returns the number of classes K.
func (e *Encoder[L]) Len() int { return len(e.classes) }

// Sentinel returns the caller-space value that marks unlabeled samples.
func (e *Encoder[L]) Sentinel() L { return e.sentinel }

// Classes returns a copy of the sorted class list; Classes()[code] is the label of code.
func (e *Encoder[L]) Classes() []L { return slices.Clone(e.classes) }

// Encode maps y to codes. The sentinel maps to Unlabeled.
// Returns ErrUnknownLabel (wrapped with the offending position) for values
// absent at construction.
//
// Complexity: O(N).
func (e *Encoder[L]) Encode(y []L) ([]int, error) {
	out := make([]int, len(y))
	for i, v := range y {
		if v == e.sentinel {
			out[i] = Unlabeled
			continue
		}
		code, ok := e.index[v]
		if !ok {
			return nil, fmt.Errorf("labels: Encode: y[%d]=%v: %w", i, v, ErrUnknownLabel)
		}
		out[i] = code
	}

	return out, nil
}

// Decode maps codes back to labels. Unlabeled maps to the sentinel.
//
// Complexity: O(N).
func (e *Encoder[L]) Decode(codes []int) ([]L, error) {
	out := make([]L, len(codes))
	for i, c := range codes {
		switch {
		case c == Unlabeled:
			out[i] = e.sentinel
		case c >= 0 && c < len(e.classes):
			out[i] = e.classes[c]
		default:
			return nil, fmt.Errorf("labels: Decode: codes[%d]=%d: %w", i, c, ErrUnknownCode)
		}
	}

	return out, nil
}
