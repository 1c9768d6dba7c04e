package selftrain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestScoreRows_FirstArgmaxOnTies(t *testing.T) {
	proba := mat.NewDense(3, 3, []float64{
		0.2, 0.5, 0.3,
		0.4, 0.2, 0.4,
		1.0 / 3, 1.0 / 3, 1.0 / 3,
	})
	conf, class := scoreRows(proba)
	assert.Equal(t, []int{1, 0, 0}, class)
	assert.InDeltaSlice(t, []float64{0.5, 0.4, 1.0 / 3}, conf, 1e-12)
}

func TestSelectConfident(t *testing.T) {
	conf := []float64{0.8, 0.75, 0.95, math.NaN(), 0.95, 0.9}
	class := []int{0, 1, 2, 0, 1, 2}

	picks := selectConfident(conf, class, 0.75, 10)
	require.Len(t, picks, 4, "0.75 is not strictly above the threshold and NaN never qualifies")
	pos := make([]int, len(picks))
	for i, p := range picks {
		pos[i] = p.pos
	}
	assert.Equal(t, []int{2, 4, 5, 0}, pos)
	assert.Equal(t, 2, picks[0].class)

	capped := selectConfident(conf, class, 0.75, 2)
	require.Len(t, capped, 2)
	assert.Equal(t, 2, capped[0].pos)
	assert.Equal(t, 4, capped[1].pos)

	assert.Empty(t, selectConfident(conf, class, 0.99, 10))
}

func TestPromotionCap(t *testing.T) {
	o := DefaultOptions()
	assert.Equal(t, 1, o.promotionCap(5))
	assert.Equal(t, 1, o.promotionCap(19))
	assert.Equal(t, 2, o.promotionCap(20))
	assert.Equal(t, 10, o.promotionCap(100))

	o.PromotionFraction, o.MinPromotions = 1, 1
	assert.Equal(t, 7, o.promotionCap(7))

	o.PromotionFraction, o.MinPromotions = 0.1, 4
	assert.Equal(t, 4, o.promotionCap(20))
}

func TestCheckProba(t *testing.T) {
	assert.NoError(t, checkProba(mat.NewDense(2, 3, nil), 2, 3))
	assert.ErrorIs(t, checkProba(mat.NewDense(2, 4, nil), 2, 3), ErrProbaShape)
	assert.ErrorIs(t, checkProba(mat.NewDense(1, 3, nil), 2, 3), ErrProbaShape)
	assert.ErrorIs(t, checkProba(nil, 2, 3), ErrProbaShape)
}

func TestFitState_Promote(t *testing.T) {
	st := newFitState([]int{0, -1, 1, -1, -1})
	require.Equal(t, []int{1, 3, 4}, st.unlabeled)
	require.Equal(t, []int{0, NeverLabeled, 0, NeverLabeled, NeverLabeled}, st.iter)

	st.promote([]promotion{{pos: 2, class: 1}, {pos: 0, class: 0}}, 3)
	assert.Equal(t, []int{0, 0, 1, -1, 1}, st.codes)
	assert.Equal(t, []int{0, 3, 0, NeverLabeled, 3}, st.iter)
	assert.Equal(t, []int{3}, st.unlabeled)
	assert.Equal(t, 4, st.labeled)
	assert.Equal(t, []int{0, 1, 2, 4}, st.labeledRows())

	st.promote(nil, 4)
	assert.Equal(t, 4, st.labeled)
}

func TestSelectRows(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
	assert.Same(t, X, selectRows(X, []int{0, 1, 2}))

	got := selectRows(X, []int{2, 0})
	assert.True(t, mat.Equal(mat.NewDense(2, 2, []float64{5, 6, 1, 2}), got))
	assert.Equal(t, []int{7, 5}, gatherCodes([]int{5, 6, 7}, []int{2, 0}))
}

func TestTerminationAndWarningStrings(t *testing.T) {
	assert.Equal(t, "none", TerminationNone.String())
	assert.Equal(t, "all_labeled", AllLabeled.String())
	assert.Equal(t, "max_iter", MaxIter.String())
	assert.Equal(t, "early_stopping", EarlyStopping.String())
	assert.Equal(t, "max_iter_reached", WarnMaxIterReached.String())
	assert.Equal(t, "no_unlabeled: x", Warning{Kind: WarnNoUnlabeled, Message: "x"}.String())
}
