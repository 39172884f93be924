package trainer

import (
	"context"
	"log/slog"
	"math/rand"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"shape-perceptron/internal/dataset"
	"shape-perceptron/internal/imageio"
	"shape-perceptron/internal/metrics"
	"shape-perceptron/internal/model"
	"shape-perceptron/internal/shape"
)

// RunConfig captures the knobs required by the training loop.
type RunConfig struct {
	Iterations            int
	DatasetSize           int
	ValidationDatasetSize int
	Seed                  int64
	Workers               int
	LogEvery              int
	Output                string
	PlotOutput            string
}

// Outcome is the state left by Train.
type Outcome struct {
	Weights   shape.Matrix
	Passes    int
	Converged bool
	// ConvergedAt is the zero-based index of the pass that made no update.
	ConvergedAt int
}

// Report summarizes a full training run.
type Report struct {
	Outcome
	Seed       int64
	Training   metrics.Result
	Validation metrics.Result
	History    *metrics.History
}

// Run builds the datasets, trains a perceptron, validates it on a fresh
// dataset and persists the requested artifacts.
func Run(ctx context.Context, cfg RunConfig) (*Report, error) {
	if cfg.Iterations < 0 {
		return nil, errors.New("trainer: iterations must be >= 0")
	}
	if cfg.LogEvery <= 0 {
		cfg.LogEvery = 1
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	train := dataset.Build(cfg.DatasetSize, rng)
	slog.Info("training", "seed", cfg.Seed, "samples", len(train), "max_iterations", cfg.Iterations)

	history := &metrics.History{}
	observe := func(p metrics.Pass) {
		history.Record(p)
		if p.Iteration%cfg.LogEvery == 0 || !p.Changed {
			slog.Info("pass",
				"iteration", p.Iteration,
				"rectangles", fraction(p.Result.RectanglesCorrect, p.Result.Rectangles),
				"circles", fraction(p.Result.CirclesCorrect, p.Result.Circles),
				"changed", p.Changed,
				"pass_ms", float64(p.Duration.Microseconds())/1000,
			)
		}
	}

	outcome, err := Train(ctx, train, model.NewPerceptron(), cfg.Iterations, cfg.Workers, observe)
	if err != nil {
		return nil, err
	}
	if outcome.Converged {
		slog.Info("converged", "iteration", outcome.ConvergedAt)
	} else {
		slog.Info("iteration budget exhausted", "passes", outcome.Passes)
	}

	validation := dataset.Build(cfg.ValidationDatasetSize, rng)
	report := &Report{
		Outcome:    outcome,
		Seed:       cfg.Seed,
		Training:   metrics.Validate(train, outcome.Weights, cfg.Workers),
		Validation: metrics.Validate(validation, outcome.Weights, cfg.Workers),
		History:    history,
	}

	if cfg.Output != "" {
		if err := imageio.SaveWeights(outcome.Weights, cfg.Output); err != nil {
			return nil, err
		}
		slog.Info("weights saved", "path", cfg.Output)
	}
	if cfg.PlotOutput != "" && history.Len() > 0 {
		if err := metrics.SavePlot(history, cfg.PlotOutput); err != nil {
			return nil, err
		}
		slog.Info("plot saved", "path", cfg.PlotOutput)
	}

	return report, nil
}

// Train sweeps ds in order up to maxIterations times, letting learner update
// on every sample. After each pass the dataset is validated against the
// current weights and handed to observe. A pass without any update ends
// training. The context is checked between passes.
func Train(ctx context.Context, ds dataset.Dataset, learner model.Learner, maxIterations, workers int, observe func(metrics.Pass)) (Outcome, error) {
	var out Outcome
	for i := 0; i < maxIterations; i++ {
		if err := ctx.Err(); err != nil {
			out.Weights = learner.Weights()
			return out, err
		}

		start := time.Now()
		changed := false
		for _, sample := range ds {
			if learner.Learn(sample) {
				changed = true
			}
		}
		out.Passes++

		if observe != nil {
			observe(metrics.Pass{
				Iteration: i,
				Changed:   changed,
				Duration:  time.Since(start),
				Result:    metrics.Validate(ds, learner.Weights(), workers),
			})
		}

		if !changed {
			out.Converged = true
			out.ConvergedAt = i
			break
		}
	}
	out.Weights = learner.Weights()
	return out, nil
}

// fraction formats n/d for progress logs.
func fraction(n, d int) string {
	return strconv.Itoa(n) + "/" + strconv.Itoa(d)
}
