package main

import (
	"fmt"
	"log/slog"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"shape-perceptron/internal/imageio"
	"shape-perceptron/internal/model"
)

type testImageOptions struct {
	inputImage      string
	inputWeights    string
	outputProcessed string
	threshold       float64
}

func testImageCmd() *commander.Command {
	opts := &testImageOptions{}
	cmd := &commander.Command{
		Run: func(cmd *commander.Command, args []string) error {
			return runTestImage(opts)
		},
		UsageLine: "test_image [options]",
		Short:     "classifies an image with trained weights",
		Long: `
classifies an image file as a rectangle or a circle

	$ shape-perceptron test_image --input-image shape.png --input-weights weights.png [--output-processed processed.png]

`,
		Flag: *flag.NewFlagSet("test_image", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&opts.inputImage, "input-image", "", "Image to test")
	cmd.Flag.StringVar(&opts.inputWeights, "input-weights", "", "Weights to use for testing")
	cmd.Flag.StringVar(&opts.outputProcessed, "output-processed", "", "Optional - output filename for the processed image")
	cmd.Flag.Float64Var(&opts.threshold, "threshold", model.ImageThreshold, "Score above which the image is a circle")
	return cmd
}

func runTestImage(opts *testImageOptions) error {
	// Missing inputs are reported but do not fail the command.
	if opts.inputImage == "" {
		fmt.Fprintln(stdout, "Missing argument: --input-image")
		return nil
	}
	if opts.inputWeights == "" {
		fmt.Fprintln(stdout, "Missing argument: --input-weights")
		return nil
	}

	img, err := imageio.LoadImage(opts.inputImage)
	if err != nil {
		return err
	}
	weights, err := imageio.LoadWeights(opts.inputWeights)
	if err != nil {
		return err
	}

	score := model.Score(img, weights)
	slog.Debug("scored image", "path", opts.inputImage, "score", score, "threshold", opts.threshold)
	if model.Classify(img, weights, opts.threshold) {
		fmt.Fprintln(stdout, "Image is a circle")
	} else {
		fmt.Fprintln(stdout, "Image is a rectangle")
	}

	if opts.outputProcessed != "" {
		if err := imageio.SaveImage(img, opts.outputProcessed); err != nil {
			return err
		}
	}
	return nil
}
