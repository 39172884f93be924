package model

import (
	"shape-perceptron/internal/dataset"
	"shape-perceptron/internal/shape"
)

const (
	// Bias is the decision boundary used while training and validating.
	Bias = 0.0
	// ImageThreshold is the default boundary for images loaded from disk.
	ImageThreshold = 0.5
)

// Score returns the sum of the element-wise product of s and weights.
func Score(s, weights shape.Matrix) float64 {
	return s.Dot(&weights)
}

// Classify reports true (circle) iff the score of s exceeds threshold.
func Classify(s, weights shape.Matrix, threshold float64) bool {
	return Score(s, weights) > threshold
}

// Perceptron is a single-layer linear classifier with unit learning rate.
type Perceptron struct {
	weights shape.Matrix
}

// NewPerceptron returns a perceptron with all-zero weights.
func NewPerceptron() *Perceptron {
	return &Perceptron{}
}

// Learn adds a circle scoring below Bias to the weights and subtracts a
// rectangle scoring at or above Bias.
func (p *Perceptron) Learn(sample dataset.Sample) bool {
	s := sample.Shape()
	out := Score(s, p.weights)
	switch {
	case sample.Circle() && out < Bias:
		p.weights = p.weights.Add(s)
	case !sample.Circle() && out >= Bias:
		p.weights = p.weights.Sub(s)
	default:
		return false
	}
	return true
}

// Weights returns a copy of the current weights.
func (p *Perceptron) Weights() shape.Matrix {
	return p.weights
}
