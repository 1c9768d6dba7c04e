// SPDX-License-Identifier: MIT

package labels

import "errors"

var (
	// ErrNoSentinel indicates that the label type has no default value to
	// mark unlabeled samples (strings, unsigned integers).
	ErrNoSentinel = errors.New("labels: label type cannot represent the unlabeled sentinel")

	// ErrUnknownLabel indicates that Encode met a value the encoder was not built with.
	ErrUnknownLabel = errors.New("labels: unknown label")

	// ErrUnknownCode indicates that Decode met a code outside [0, K) ∪ {Unlabeled}.
	ErrUnknownCode = errors.New("labels: unknown code")
)
