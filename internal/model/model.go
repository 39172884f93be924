package model

import (
	"shape-perceptron/internal/dataset"
	"shape-perceptron/internal/shape"
)

// Learner defines the minimal training functionality required by the trainer.
type Learner interface {
	// Learn applies one update for sample and reports whether the weights changed.
	Learn(sample dataset.Sample) bool
	Weights() shape.Matrix
}
