package shape

import (
	"math/rand"

	"github.com/pkg/errors"
)

// ErrInvalidGeometry reports shape parameters that do not describe a shape
// inside the grid.
var ErrInvalidGeometry = errors.New("shape: invalid geometry")

const (
	minRadius = 1
	maxRadius = 10
)

// Rectangle fills rows [xmin, xmax] and columns [ymin, ymax], both ends
// inclusive.
func Rectangle(xmin, xmax, ymin, ymax int) (Matrix, error) {
	if xmin < 0 || xmin > xmax || xmax >= Size {
		return Matrix{}, errors.Wrapf(ErrInvalidGeometry, "rectangle rows [%d, %d]", xmin, xmax)
	}
	if ymin < 0 || ymin > ymax || ymax >= Size {
		return Matrix{}, errors.Wrapf(ErrInvalidGeometry, "rectangle columns [%d, %d]", ymin, ymax)
	}
	return fillRectangle(xmin, xmax, ymin, ymax), nil
}

// RandomRectangle draws a rectangle whose corners are uniform within the grid.
// Single row or column rectangles are valid outcomes.
func RandomRectangle(rng *rand.Rand) Matrix {
	xmin := rng.Intn(Size)
	xmax := xmin + rng.Intn(Size-xmin)
	ymin := rng.Intn(Size)
	ymax := ymin + rng.Intn(Size-ymin)
	return fillRectangle(xmin, xmax, ymin, ymax)
}

func fillRectangle(xmin, xmax, ymin, ymax int) Matrix {
	var m Matrix
	for x := xmin; x <= xmax; x++ {
		for y := ymin; y <= ymax; y++ {
			m.Set(x, y, 1)
		}
	}
	return m
}

// Circle sets every cell whose squared distance from (cx, cy) is at most
// radius². The center may lie outside the grid.
func Circle(cx, cy, radius int) (Matrix, error) {
	if radius < 0 {
		return Matrix{}, errors.Wrapf(ErrInvalidGeometry, "circle radius %d", radius)
	}
	return fillCircle(cx, cy, radius), nil
}

// RandomCircle draws a radius in [1, 10) and a center that keeps the whole
// disk inside the grid.
func RandomCircle(rng *rand.Rand) Matrix {
	radius := minRadius + rng.Intn(maxRadius-minRadius)
	span := Size - 2*radius
	cx := radius + rng.Intn(span)
	cy := radius + rng.Intn(span)
	return fillCircle(cx, cy, radius)
}

func fillCircle(cx, cy, radius int) Matrix {
	var m Matrix
	r2 := radius * radius
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r2 {
				m.Set(x, y, 1)
			}
		}
	}
	return m
}
