package metrics

import (
	"fmt"

	"shape-perceptron/internal/dataset"
	"shape-perceptron/internal/model"
	"shape-perceptron/internal/parallel"
	"shape-perceptron/internal/shape"
)

// Result counts per-class totals and correct calls over a dataset.
type Result struct {
	Rectangles        int
	Circles           int
	RectanglesCorrect int
	CirclesCorrect    int
}

// Total returns the number of scored samples.
func (r Result) Total() int {
	return r.Rectangles + r.Circles
}

// Accuracy returns the fraction of correct calls, or 0 for an empty result.
func (r Result) Accuracy() float64 {
	return ratio(r.RectanglesCorrect+r.CirclesCorrect, r.Total())
}

// RectangleAccuracy returns the fraction of rectangles classified correctly.
func (r Result) RectangleAccuracy() float64 {
	return ratio(r.RectanglesCorrect, r.Rectangles)
}

// CircleAccuracy returns the fraction of circles classified correctly.
func (r Result) CircleAccuracy() float64 {
	return ratio(r.CirclesCorrect, r.Circles)
}

func (r Result) String() string {
	return fmt.Sprintf("rectangles=%d/%d circles=%d/%d",
		r.RectanglesCorrect, r.Rectangles, r.CirclesCorrect, r.Circles)
}

func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}

// Validate scores every sample of ds against weights. A circle is correct
// when its score is above model.Bias, a rectangle when its score is at or
// below it. The dataset is split into at most workers contiguous chunks
// scored concurrently; per-chunk counts are summed, so the result does not
// depend on scheduling.
func Validate(ds dataset.Dataset, weights shape.Matrix, workers int) Result {
	chunks := min(max(workers, 1), len(ds))
	if chunks == 0 {
		return Result{}
	}
	size := (len(ds) + chunks - 1) / chunks
	partial := make([]Result, chunks)
	parallel.ForEach(chunks, chunks, func(c int) {
		lo := c * size
		if lo >= len(ds) {
			return
		}
		partial[c] = score(ds[lo:min(lo+size, len(ds))], weights)
	})

	var total Result
	for _, r := range partial {
		total.Rectangles += r.Rectangles
		total.Circles += r.Circles
		total.RectanglesCorrect += r.RectanglesCorrect
		total.CirclesCorrect += r.CirclesCorrect
	}
	return total
}

func score(ds dataset.Dataset, weights shape.Matrix) Result {
	var r Result
	for _, s := range ds {
		out := model.Score(s.Shape(), weights)
		if s.Circle() {
			r.Circles++
			if out > model.Bias {
				r.CirclesCorrect++
			}
			continue
		}
		r.Rectangles++
		if out <= model.Bias {
			r.RectanglesCorrect++
		}
	}
	return r
}
