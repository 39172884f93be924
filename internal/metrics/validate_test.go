package metrics

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shape-perceptron/internal/dataset"
	"shape-perceptron/internal/shape"
)

func TestValidateZeroWeights(t *testing.T) {
	ds := dataset.Build(30, rand.New(rand.NewSource(8)))
	res := Validate(ds, shape.Zeros(), 4)
	assert.Equal(t, Result{Rectangles: 30, Circles: 30, RectanglesCorrect: 30}, res)
}

func TestValidateAsymmetricBoundary(t *testing.T) {
	var s shape.Matrix
	s.Set(0, 0, 1)
	ds := dataset.Dataset{dataset.NewSample(s, false), dataset.NewSample(s, true)}

	// Score exactly at the bias: correct for a rectangle, wrong for a circle.
	res := Validate(ds, shape.Zeros(), 1)
	assert.Equal(t, 1, res.RectanglesCorrect)
	assert.Equal(t, 0, res.CirclesCorrect)

	var w shape.Matrix
	w.Set(0, 0, 0.25)
	res = Validate(ds, w, 1)
	assert.Equal(t, 0, res.RectanglesCorrect)
	assert.Equal(t, 1, res.CirclesCorrect)
}

func TestValidateIdempotentAcrossWorkers(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	ds := dataset.Build(50, rng)
	var w shape.Matrix
	for i := range w {
		w[i] = rng.Float64()*2 - 1
	}

	first := Validate(ds, w, 1)
	require.Equal(t, len(ds), first.Total())
	for _, workers := range []int{1, 2, 8} {
		assert.Equal(t, first, Validate(ds, w, workers))
	}
}

func TestValidateEmpty(t *testing.T) {
	res := Validate(dataset.Dataset{}, shape.Zeros(), 4)
	assert.Equal(t, Result{}, res)
	assert.Zero(t, res.Accuracy())
}

func TestResultAccuracies(t *testing.T) {
	res := Result{Rectangles: 4, Circles: 6, RectanglesCorrect: 3, CirclesCorrect: 3}
	assert.InDelta(t, 0.75, res.RectangleAccuracy(), 1e-12)
	assert.InDelta(t, 0.5, res.CircleAccuracy(), 1e-12)
	assert.InDelta(t, 0.6, res.Accuracy(), 1e-12)
	assert.Equal(t, "rectangles=3/4 circles=3/6", res.String())
}

func TestValidateChunkingMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	var w shape.Matrix
	for i := range w {
		w[i] = float64(rng.Intn(5) - 2)
	}
	for _, n := range []int{1, 3, 7, 50} {
		ds := dataset.Build(n, rng)
		want := score(ds, w)
		require.Equal(t, len(ds), want.Total())
		for _, workers := range []int{-1, 0, 1, 2, 3, 5, 9, 2*n + 1, 1000} {
			assert.Equal(t, want, Validate(ds, w, workers), "n=%d workers=%d", n, workers)
		}
	}
}
