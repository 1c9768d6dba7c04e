package labels_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plbecker/scikit-learn/labels"
)

type species int8

type colour uint8

// TestDefaultUnlabeled_SignedKinds checks the -1 default, including named types.
func TestDefaultUnlabeled_SignedKinds(t *testing.T) {
	v, err := labels.DefaultUnlabeled[int]()
	require.NoError(t, err)
	assert.Equal(t, -1, v)

	s, err := labels.DefaultUnlabeled[species]()
	require.NoError(t, err)
	assert.Equal(t, species(-1), s)

	w, err := labels.DefaultUnlabeled[int64]()
	require.NoError(t, err)
	assert.Equal(t, int64(-1), w)
}

// TestDefaultUnlabeled_NoSentinel checks that kinds without an out-of-band value are refused.
func TestDefaultUnlabeled_NoSentinel(t *testing.T) {
	_, err := labels.DefaultUnlabeled[string]()
	assert.ErrorIs(t, err, labels.ErrNoSentinel)

	_, err = labels.DefaultUnlabeled[uint]()
	assert.ErrorIs(t, err, labels.ErrNoSentinel)

	_, err = labels.DefaultUnlabeled[colour]()
	assert.ErrorIs(t, err, labels.ErrNoSentinel)
}

// TestEncoder_SortedCodes verifies classes are sorted and the sentinel is skipped.
func TestEncoder_SortedCodes(t *testing.T) {
	y := []string{"pear", "", "apple", "fig", "apple", ""}
	enc := labels.NewEncoder(y, "")

	assert.Equal(t, 3, enc.Len())
	assert.Equal(t, []string{"apple", "fig", "pear"}, enc.Classes())
	assert.Equal(t, "", enc.Sentinel())

	codes, err := enc.Encode(y)
	require.NoError(t, err)
	assert.Equal(t, []int{2, labels.Unlabeled, 0, 1, 0, labels.Unlabeled}, codes)

	back, err := enc.Decode(codes)
	require.NoError(t, err)
	assert.Equal(t, y, back)
}

// TestEncoder_NumericOrder ensures numeric labels sort numerically, not lexically.
func TestEncoder_NumericOrder(t *testing.T) {
	y := []int{10, 2, -1, 33, 2}
	enc := labels.NewEncoder(y, -1)

	assert.Equal(t, []int{2, 10, 33}, enc.Classes())
	codes, err := enc.Encode(y)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, labels.Unlabeled, 2, 0}, codes)
}

// TestEncoder_UnknownLabel rejects values the encoder was not built with.
func TestEncoder_UnknownLabel(t *testing.T) {
	enc := labels.NewEncoder([]int{0, 1}, -1)

	_, err := enc.Encode([]int{0, 7})
	assert.ErrorIs(t, err, labels.ErrUnknownLabel)
}

// TestEncoder_UnknownCode rejects codes outside [0,K) other than Unlabeled.
func TestEncoder_UnknownCode(t *testing.T) {
	enc := labels.NewEncoder([]int{0, 1}, -1)

	_, err := enc.Decode([]int{0, 2})
	assert.ErrorIs(t, err, labels.ErrUnknownCode)

	_, err = enc.Decode([]int{-2})
	assert.ErrorIs(t, err, labels.ErrUnknownCode)
}

// TestEncoder_AllUnlabeled yields an empty alphabet rather than an error.
func TestEncoder_AllUnlabeled(t *testing.T) {
	enc := labels.NewEncoder([]int{-1, -1}, -1)
	assert.Zero(t, enc.Len())

	codes, err := enc.Encode([]int{-1, -1})
	require.NoError(t, err)
	assert.Equal(t, []int{labels.Unlabeled, labels.Unlabeled}, codes)
}

// TestEncoder_ClassesIsCopy guards the encoder against caller mutation.
func TestEncoder_ClassesIsCopy(t *testing.T) {
	enc := labels.NewEncoder([]int{3, 4}, -1)
	c := enc.Classes()
	c[0] = 99
	assert.Equal(t, []int{3, 4}, enc.Classes())
}
