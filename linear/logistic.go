// SPDX-License-Identifier: MIT

package linear

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/plbecker/scikit-learn/selftrain"
)

// Defaults for NewLogisticRegression.
const (
	DefaultLearningRate = 0.5
	DefaultEpochs       = 300
	DefaultL2           = 1e-3
)

var (
	// ErrBadHyperparameter indicates LearningRate ≤ 0, Epochs < 1 or L2 < 0.
	ErrBadHyperparameter = errors.New("linear: invalid hyperparameter")

	// ErrDimensionMismatch indicates inconsistent shapes.
	ErrDimensionMismatch = errors.New("linear: dimension mismatch")

	// ErrNegativeLabel indicates a class code below zero.
	ErrNegativeLabel = errors.New("linear: class codes must be >= 0")

	// ErrNotFitted indicates prediction before Fit.
	ErrNotFitted = errors.New("linear: estimator is not fitted")
)

// LogisticRegression is a softmax classifier trained by gradient descent.
type LogisticRegression struct {
	LearningRate float64
	Epochs       int
	L2           float64

	scaler standardizer
	w      *mat.Dense // d×K
	b      []float64  // K
}

// NewLogisticRegression returns an unfitted model with the default hyperparameters.
func NewLogisticRegression() *LogisticRegression {
	return &LogisticRegression{
		LearningRate: DefaultLearningRate,
		Epochs:       DefaultEpochs,
		L2:           DefaultL2,
	}
}

// Name implements selftrain.Namer.
func (m *LogisticRegression) Name() string { return "LogisticRegression" }

// Clone returns an unfitted copy with the same hyperparameters.
func (m *LogisticRegression) Clone() selftrain.Estimator {
	return &LogisticRegression{LearningRate: m.LearningRate, Epochs: m.Epochs, L2: m.L2}
}

// Fit learns weights for classes 0..max(y).
// Implementation:
//   - Stage 1: validate hyperparameters, shapes and codes.
//   - Stage 2: standardize X and one-hot encode y.
//   - Stage 3: Epochs steps of  W -= lr·(Zᵀ(P−Y)/n + L2·W),  b -= lr·Σ(P−Y)/n.
//
// Complexity: O(Epochs · n · d · K).
func (m *LogisticRegression) Fit(X mat.Matrix, y []int) error {
	if m.LearningRate <= 0 || m.Epochs < 1 || m.L2 < 0 || math.IsNaN(m.L2) {
		return fmt.Errorf("lr=%v epochs=%d l2=%v: %w", m.LearningRate, m.Epochs, m.L2, ErrBadHyperparameter)
	}
	n, d := X.Dims()
	if n != len(y) || n == 0 {
		return fmt.Errorf("X has %d rows, y has %d: %w", n, len(y), ErrDimensionMismatch)
	}
	k := 0
	for i, c := range y {
		if c < 0 {
			return fmt.Errorf("y[%d]=%d: %w", i, c, ErrNegativeLabel)
		}
		k = max(k, c+1)
	}

	// Stage 2: inputs.
	m.scaler = fitStandardizer(X)
	Z := m.scaler.transform(X)
	Y := mat.NewDense(n, k, nil)
	for i, c := range y {
		Y.Set(i, c, 1)
	}

	// Stage 3: gradient descent.
	m.w = mat.NewDense(d, k, nil)
	m.b = make([]float64, k)
	var (
		P     mat.Dense
		gradW mat.Dense
		invN  = 1.0 / float64(n)
	)
	for epoch := 0; epoch < m.Epochs; epoch++ {
		m.probabilities(&P, Z)
		P.Sub(&P, Y)

		gradW.Mul(Z.T(), &P)
		gradW.Scale(invN, &gradW)
		if m.L2 > 0 {
			gradW.Apply(func(i, j int, v float64) float64 { return v + m.L2*m.w.At(i, j) }, &gradW)
		}
		for j := 0; j < k; j++ {
			m.b[j] -= m.LearningRate * invN * mat.Sum(P.ColView(j))
		}
		gradW.Scale(m.LearningRate, &gradW)
		m.w.Sub(m.w, &gradW)
	}

	return nil
}

// PredictProba returns softmax probabilities, one column per class.
func (m *LogisticRegression) PredictProba(X mat.Matrix) (mat.Matrix, error) {
	if m.w == nil {
		return nil, ErrNotFitted
	}
	q, d := X.Dims()
	if wd, _ := m.w.Dims(); d != wd || q == 0 {
		return nil, fmt.Errorf("query is %dx%d, fitted on %d features: %w", q, d, wd, ErrDimensionMismatch)
	}

	var P mat.Dense
	m.probabilities(&P, m.scaler.transform(X))

	return &P, nil
}

// Predict returns the most probable class per row; ties go to the smaller code.
func (m *LogisticRegression) Predict(X mat.Matrix) ([]int, error) {
	P, err := m.PredictProba(X)
	if err != nil {
		return nil, err
	}
	r, c := P.Dims()
	out := make([]int, r)
	for i := 0; i < r; i++ {
		best := math.Inf(-1)
		for j := 0; j < c; j++ {
			if v := P.At(i, j); v > best {
				best, out[i] = v, j
			}
		}
	}

	return out, nil
}

// probabilities writes softmax(Z·W + b) into dst, row by row, shifting by the
// row maximum for numerical stability.
func (m *LogisticRegression) probabilities(dst *mat.Dense, Z mat.Matrix) {
	dst.Reset()
	dst.Mul(Z, m.w)
	r, c := dst.Dims()
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat.Row(row, i, dst)
		peak := math.Inf(-1)
		for j := range row {
			row[j] += m.b[j]
			peak = max(peak, row[j])
		}
		sum := 0.0
		for j := range row {
			row[j] = math.Exp(row[j] - peak)
			sum += row[j]
		}
		for j := range row {
			row[j] /= sum
		}
		dst.SetRow(i, row)
	}
}
