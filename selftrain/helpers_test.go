package selftrain_test

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/plbecker/scikit-learn/neighbors"
	"github.com/plbecker/scikit-learn/selftrain"
	"github.com/plbecker/scikit-learn/synth"
)

// indexMatrix returns an n×1 matrix whose only feature is the row index.
// scripted estimators use it to look up per-sample probabilities.
func indexMatrix(n int) *mat.Dense {
	X := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		X.Set(i, 0, float64(i))
	}

	return X
}

// scripted returns table[i] as the probabilities of sample i regardless of
// what it was trained on, and records every training call.
type scripted struct {
	table     [][]float64
	fitSizes  []int
	fitLabels [][]int
}

func (s *scripted) Fit(X mat.Matrix, y []int) error {
	r, _ := X.Dims()
	s.fitSizes = append(s.fitSizes, r)
	s.fitLabels = append(s.fitLabels, append([]int(nil), y...))

	return nil
}

func (s *scripted) PredictProba(X mat.Matrix) (mat.Matrix, error) {
	r, _ := X.Dims()
	out := mat.NewDense(r, len(s.table[0]), nil)
	for i := 0; i < r; i++ {
		out.SetRow(i, s.table[int(X.At(i, 0))])
	}

	return out, nil
}

func (s *scripted) Predict(X mat.Matrix) ([]int, error) {
	p, _ := s.PredictProba(X)

	return argmax(p), nil
}

// plain has no PredictProba.
type plain struct{ fits int }

func (p *plain) Fit(mat.Matrix, []int) error { p.fits++; return nil }

func (p *plain) Predict(X mat.Matrix) ([]int, error) {
	r, _ := X.Dims()
	return make([]int, r), nil
}

// damped wraps a KNN and shrinks its probabilities toward uniform, so the
// maximum confidence never exceeds 0.5 + 0.5/K.
type damped struct{ *neighbors.KNN }

func (d damped) PredictProba(X mat.Matrix) (mat.Matrix, error) {
	p, err := d.KNN.PredictProba(X)
	if err != nil {
		return nil, err
	}
	r, c := p.Dims()
	out := mat.NewDense(r, c, nil)
	out.Apply(func(_, _ int, v float64) float64 { return 0.5*v + 0.5/float64(c) }, p)

	return out, nil
}

var errBoom = errors.New("boom")

// failing errors on the n-th Fit call (1-based).
type failing struct {
	scripted
	failAt int
	calls  int
}

func (f *failing) Fit(X mat.Matrix, y []int) error {
	f.calls++
	if f.calls == f.failAt {
		return errBoom
	}

	return f.scripted.Fit(X, y)
}

// wrongShape returns one column too many.
type wrongShape struct{ scripted }

func (w *wrongShape) PredictProba(X mat.Matrix) (mat.Matrix, error) {
	r, _ := X.Dims()
	return mat.NewDense(r, len(w.table[0])+1, nil), nil
}

func argmax(p mat.Matrix) []int {
	r, c := p.Dims()
	out := make([]int, r)
	for i := 0; i < r; i++ {
		best := math.Inf(-1)
		for j := 0; j < c; j++ {
			if v := p.At(i, j); v > best {
				best, out[i] = v, j
			}
		}
	}

	return out
}

// blobs returns a 3-class training set with `keep` labels kept (-1 elsewhere),
// the full truth, and a separate test set drawn from the same centers.
func blobs(t interface{ Fatalf(string, ...any) }, centers, keep int) (Xtr *mat.Dense, ytr, truth []int, Xte *mat.Dense, yte []int) {
	cfg := synth.DefaultBlobsConfig()
	cfg.Samples, cfg.Centers, cfg.ClusterStd, cfg.Seed = 150, centers, 1.5, 11

	X, y, err := synth.Blobs(cfg)
	if err != nil {
		t.Fatalf("Blobs: %v", err)
	}
	Xtr, truth, Xte, yte, err = synth.Split(X, y, 100)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	ytr, err = synth.HideLabels(truth, keep, -1, 3)
	if err != nil {
		t.Fatalf("HideLabels: %v", err)
	}

	return Xtr, ytr, truth, Xte, yte
}

// Clone keeps the damping on fresh copies.
func (d damped) Clone() selftrain.Estimator {
	return damped{d.KNN.Clone().(*neighbors.KNN)}
}
