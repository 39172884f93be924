package dataset

import (
	"math/rand"

	"shape-perceptron/internal/shape"
)

// Sample is a shape paired with its class label.
type Sample struct {
	shape  shape.Matrix
	circle bool
}

// NewSample labels m. The label cannot change after construction.
func NewSample(m shape.Matrix, circle bool) Sample {
	return Sample{shape: m, circle: circle}
}

// Shape returns a copy of the sample's grid.
func (s Sample) Shape() shape.Matrix {
	return s.shape
}

// Circle reports whether the sample is labeled as a circle.
func (s Sample) Circle() bool {
	return s.circle
}

// Dataset is an ordered collection of samples.
type Dataset []Sample

// Build returns n random rectangles and n random circles, interleaved as
// (rectangle, circle) pairs in generation order.
func Build(n int, rng *rand.Rand) Dataset {
	if n <= 0 {
		return Dataset{}
	}
	ds := make(Dataset, 0, 2*n)
	for i := 0; i < n; i++ {
		rect := shape.RandomRectangle(rng)
		circle := shape.RandomCircle(rng)
		ds = append(ds, NewSample(rect, false), NewSample(circle, true))
	}
	return ds
}

// Counts returns the number of rectangles and circles in ds.
func (ds Dataset) Counts() (rectangles, circles int) {
	for _, s := range ds {
		if s.circle {
			circles++
		} else {
			rectangles++
		}
	}
	return rectangles, circles
}
