// SPDX-License-Identifier: MIT

package labels

import (
	"fmt"
	"reflect"
)

// Unlabeled is the code that stands for "no label" after encoding.
const Unlabeled = -1

// Label is the set of discrete types accepted as class labels.
// Floating-point kinds are excluded: equality on them is not a sound class identity.
type Label interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~string
}

// DefaultUnlabeled returns the conventional sentinel for L.
//
// Behavior highlights:
//   - Signed integer kinds (including named types such as `type Class int8`) yield -1.
//   - Every other kind yields ErrNoSentinel; the caller has to pick a value.
//
// Complexity: O(1).
func DefaultUnlabeled[L Label]() (L, error) {
	var v L
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		rv.SetInt(-1)
		return v, nil
	default:
		return v, fmt.Errorf("%s: %w", rv.Type(), ErrNoSentinel)
	}
}
