// SPDX-License-Identifier: MIT

package neighbors

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/plbecker/scikit-learn/selftrain"
)

// DefaultK is the neighbour count used by NewKNN when k ≤ 0.
const DefaultK = 5

var (
	// ErrBadK indicates K < 1.
	ErrBadK = errors.New("neighbors: K must be >= 1")

	// ErrTooFewSamples indicates fewer training samples than K.
	ErrTooFewSamples = errors.New("neighbors: fewer training samples than K")

	// ErrDimensionMismatch indicates inconsistent row/label counts or feature counts.
	ErrDimensionMismatch = errors.New("neighbors: dimension mismatch")

	// ErrNegativeLabel indicates a class code below zero.
	ErrNegativeLabel = errors.New("neighbors: class codes must be >= 0")

	// ErrNaNInf indicates a non-finite feature value in a query row.
	ErrNaNInf = errors.New("neighbors: NaN or Inf feature")

	// ErrNotFitted indicates prediction before Fit.
	ErrNotFitted = errors.New("neighbors: estimator is not fitted")
)

// KNN is a uniform-vote k-nearest-neighbours classifier.
type KNN struct {
	K       int // neighbours consulted per query
	Workers int // prediction goroutines; ≤ 0 means GOMAXPROCS

	x        *mat.Dense // training rows (private copy)
	y        []int      // training codes
	nClasses int        // max(y)+1
}

// NewKNN returns an unfitted classifier; k ≤ 0 selects DefaultK.
func NewKNN(k int) *KNN {
	if k <= 0 {
		k = DefaultK
	}

	return &KNN{K: k}
}

// Name implements selftrain.Namer.
func (m *KNN) Name() string { return fmt.Sprintf("KNN(k=%d)", m.K) }

// Clone returns an unfitted KNN with the same hyperparameters.
func (m *KNN) Clone() selftrain.Estimator { return &KNN{K: m.K, Workers: m.Workers} }

// Fit memorises X and y.
// Implementation:
//   - Stage 1: validate K, shapes and codes.
//   - Stage 2: copy X so later caller mutations do not leak in.
//
// Complexity: O(n·d).
func (m *KNN) Fit(X mat.Matrix, y []int) error {
	if m.K < 1 {
		return fmt.Errorf("K=%d: %w", m.K, ErrBadK)
	}
	n, _ := X.Dims()
	if n != len(y) {
		return fmt.Errorf("X has %d rows, y has %d: %w", n, len(y), ErrDimensionMismatch)
	}
	if n < m.K {
		return fmt.Errorf("n=%d < K=%d: %w", n, m.K, ErrTooFewSamples)
	}

	maxCode := 0
	for i, c := range y {
		if c < 0 {
			return fmt.Errorf("y[%d]=%d: %w", i, c, ErrNegativeLabel)
		}
		maxCode = max(maxCode, c)
	}

	m.x = mat.DenseCopyOf(X)
	m.y = append([]int(nil), y...)
	m.nClasses = maxCode + 1

	return nil
}

// PredictProba returns vote fractions, one row per query and one column per class.
func (m *KNN) PredictProba(X mat.Matrix) (mat.Matrix, error) {
	if m.x == nil {
		return nil, ErrNotFitted
	}
	q, d := X.Dims()
	if q == 0 {
		return nil, fmt.Errorf("empty query: %w", ErrDimensionMismatch)
	}
	if _, fd := m.x.Dims(); d != fd {
		return nil, fmt.Errorf("query has %d features, fitted on %d: %w", d, fd, ErrDimensionMismatch)
	}

	out := mat.NewDense(q, m.nClasses, nil)
	if err := m.forEachChunk(q, func(lo, hi int) error {
		buf := make([]float64, d)
		votes := make([]float64, m.nClasses)
		nbrs := make([]neighbour, 0, m.K)
		for i := lo; i < hi; i++ {
			mat.Row(buf, i, X)
			if !allFinite(buf) {
				return fmt.Errorf("query row %d: %w", i, ErrNaNInf)
			}
			nbrs = m.nearest(buf, nbrs[:0])
			clear(votes)
			for _, nb := range nbrs {
				votes[m.y[nb.idx]]++
			}
			for c := range votes {
				votes[c] /= float64(len(nbrs))
			}
			out.SetRow(i, votes)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return out, nil
}

// Predict returns the most voted class per query; ties go to the smaller code.
func (m *KNN) Predict(X mat.Matrix) ([]int, error) {
	proba, err := m.PredictProba(X)
	if err != nil {
		return nil, err
	}

	return argmaxRows(proba), nil
}

// neighbour is a training row index with its squared distance to the query.
type neighbour struct {
	dist float64
	idx  int
}

// nearest fills dst with the K closest training rows, closest first.
// Equal distances keep the lower training index.
func (m *KNN) nearest(query []float64, dst []neighbour) []neighbour {
	n, _ := m.x.Dims()
	for j := 0; j < n; j++ {
		dj := sqDist(query, m.x.RawRowView(j))
		if len(dst) == m.K && dj >= dst[len(dst)-1].dist {
			continue
		}
		if len(dst) < m.K {
			dst = append(dst, neighbour{})
		}
		// insertion step from the back keeps dst sorted
		pos := len(dst) - 1
		for pos > 0 && dst[pos-1].dist > dj {
			dst[pos] = dst[pos-1]
			pos--
		}
		dst[pos] = neighbour{dist: dj, idx: j}
	}

	return dst
}

// forEachChunk splits [0,q) into contiguous chunks processed concurrently.
func (m *KNN) forEachChunk(q int, fn func(lo, hi int) error) error {
	workers := m.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	size := (q + workers - 1) / workers
	if size == 0 {
		return nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < q; lo += size {
		hi := min(lo+size, q)
		g.Go(func() error { return fn(lo, hi) })
	}

	return g.Wait()
}

func sqDist(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}

	return s
}

func allFinite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}

// argmaxRows returns the first maximal column of every row.
func argmaxRows(a mat.Matrix) []int {
	r, c := a.Dims()
	out := make([]int, r)
	for i := 0; i < r; i++ {
		best := math.Inf(-1)
		for j := 0; j < c; j++ {
			if v := a.At(i, j); v > best {
				best, out[i] = v, j
			}
		}
	}

	return out
}
