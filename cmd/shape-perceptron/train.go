package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/klauspost/cpuid/v2"
	"github.com/pkg/errors"

	"shape-perceptron/internal/config"
	"shape-perceptron/internal/parallel"
	"shape-perceptron/internal/trainer"
)

type trainOptions struct {
	configPath            string
	output                string
	plotOutput            string
	iterations            int
	datasetSize           int
	validationDatasetSize int
	seed                  int64
	workers               int
	logEvery              int
}

func trainCmd() *commander.Command {
	opts := &trainOptions{}
	cmd := &commander.Command{
		Run: func(cmd *commander.Command, args []string) error {
			return runTrain(cmd, opts)
		},
		UsageLine: "train [options]",
		Short:     "trains weights on random shapes and validates them",
		Long: `
trains a perceptron on random rectangles and circles, then validates it on a
fresh random dataset

	$ shape-perceptron train --output weights.png [--iterations 100] [--dataset-size 200] [--validation-dataset-size 20]

`,
		Flag: *flag.NewFlagSet("train", flag.ExitOnError),
	}
	def := config.Default()
	cmd.Flag.StringVar(&opts.configPath, "config", "", "Optional - YAML config file")
	cmd.Flag.StringVar(&opts.output, "output", "", "Output filename for weights")
	cmd.Flag.StringVar(&opts.plotOutput, "plot", "", "Optional - output filename for the accuracy plot")
	cmd.Flag.IntVar(&opts.iterations, "iterations", def.Iterations, "Number of iterations to train for")
	cmd.Flag.IntVar(&opts.datasetSize, "dataset-size", def.DatasetSize, "Number of images of each class to use for training")
	cmd.Flag.IntVar(&opts.validationDatasetSize, "validation-dataset-size", def.ValidationDatasetSize, "Number of images of each class to use for validation")
	cmd.Flag.Int64Var(&opts.seed, "seed", 0, "PRNG seed; 0 = time based")
	cmd.Flag.IntVar(&opts.workers, "workers", 0, "Goroutines used for validation; 0 = all logical cores")
	cmd.Flag.IntVar(&opts.logEvery, "log-every", def.LogEvery, "Log every N iterations")
	return cmd
}

// overrides collects the flags that were set explicitly.
func (o *trainOptions) overrides(fs *flag.FlagSet) config.Overrides {
	var ov config.Overrides
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "output":
			ov.Output = &o.output
		case "plot":
			ov.PlotOutput = &o.plotOutput
		case "iterations":
			ov.Iterations = &o.iterations
		case "dataset-size":
			ov.DatasetSize = &o.datasetSize
		case "validation-dataset-size":
			ov.ValidationDatasetSize = &o.validationDatasetSize
		case "seed":
			ov.Seed = &o.seed
		case "workers":
			ov.Workers = &o.workers
		case "log-every":
			ov.LogEvery = &o.logEvery
		}
	})
	return ov
}

func runTrain(cmd *commander.Command, opts *trainOptions) error {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return errors.Wrap(err, "load config")
		}
		cfg = loaded
	}
	cfg.ApplyOverrides(opts.overrides(&cmd.Flag))
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid config")
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = parallel.DefaultWorkers()
	}
	slog.Debug("cpu", "brand", cpuid.CPU.BrandName, "logical_cores", cpuid.CPU.LogicalCores, "workers", workers)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintln(stdout, "--------------- Training -----------------")
	report, err := trainer.Run(ctx, trainer.RunConfig{
		Iterations:            cfg.Iterations,
		DatasetSize:           cfg.DatasetSize,
		ValidationDatasetSize: cfg.ValidationDatasetSize,
		Seed:                  cfg.Seed,
		Workers:               workers,
		LogEvery:              cfg.LogEvery,
		Output:                cfg.Output,
		PlotOutput:            cfg.PlotOutput,
	})
	if err != nil {
		return errors.Wrap(err, "training failed")
	}

	fmt.Fprintf(stdout, "Training set: %s\n", report.Training)
	fmt.Fprintln(stdout, "---------------- Validation ---------------")
	fmt.Fprintf(stdout, "Rectangles correct: %d/%d\n", report.Validation.RectanglesCorrect, report.Validation.Rectangles)
	fmt.Fprintf(stdout, "Circles correct: %d/%d\n", report.Validation.CirclesCorrect, report.Validation.Circles)
	return nil
}
