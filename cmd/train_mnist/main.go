package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/neurlang/wisard/datasets/mnist"
	"github.com/neurlang/wisard/parallel"
	"github.com/neurlang/wisard/trainer"
	"github.com/neurlang/wisard/wisard"
)

const (
	flagDir          = "dir"
	flagBits         = "bits"
	flagThreshold    = "threshold"
	flagSmall        = "small"
	flagBleaching    = "bleaching"
	flagConfidence   = "confidence"
	flagSeed         = "seed"
	flagThreads      = "threads"
	flagSignificance = "significance"
	flagPgo          = "pgo"
	flagDebug        = "debug"
)

func main() {
	app := &cli.App{
		Name:  "train_mnist",
		Usage: "train a WiSARD on MNIST and report the test set accuracy",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: flagDir, Usage: "directories searched for the gzip IDX files"},
			&cli.IntFlag{Name: flagBits, Value: 16, Usage: "address bits of every memory"},
			&cli.UintFlag{Name: flagThreshold, Value: 127, Usage: "pixels above it are set bits"},
			&cli.BoolFlag{Name: flagSmall, Usage: "downscale images to 13x13"},
			&cli.BoolFlag{Name: flagBleaching, Value: true, Usage: "refine low confidence predictions"},
			&cli.Float64Flag{Name: flagConfidence, Value: 0.1, Usage: "bleaching confidence threshold"},
			&cli.UintFlag{Name: flagSeed, Value: 1, Usage: "seed of the retina permutation"},
			&cli.IntFlag{Name: flagThreads, Value: parallel.Threads(), Usage: "prediction workers"},
			&cli.UintFlag{Name: flagSignificance, Usage: "evaluate only a sufficient sample at this significance (1-99)"},
			&cli.StringFlag{Name: flagPgo, Usage: "write a cpu profile to this file"},
			&cli.BoolFlag{Name: flagDebug, Usage: "debug logging"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(c *cli.Context) error {
	logger, err := newLogger(c.Bool(flagDebug))
	if err != nil {
		return err
	}
	defer logger.Sync()
	log := logger.Sugar()

	if path := c.String(flagPgo); path != "" {
		stop, err := startProfile(path)
		if err != nil {
			return err
		}
		defer stop()
	}

	var mo = mnist.Options{Threshold: byte(c.Uint(flagThreshold)), Small: c.Bool(flagSmall)}
	train, infer, err := mnist.Load(mo, c.StringSlice(flagDir)...)
	if err != nil {
		return err
	}
	log.Infow("loaded", "train", train.Len(), "infer", infer.Len(), "retina", mo.RetinaLength())
	infer.Shuffle(int64(c.Uint(flagSeed)))

	var seed = uint32(c.Uint(flagSeed))
	var o = wisard.DefaultOptions()
	o.RetinaLength = mo.RetinaLength()
	o.GroupBitWidth = c.Int(flagBits)
	o.UseBleaching = c.Bool(flagBleaching)
	o.ConfidenceThreshold = c.Float64(flagConfidence)
	o.Seed = &seed
	o.Threads = c.Int(flagThreads)
	o.Logger = logger

	w, err := wisard.New(o)
	if err != nil {
		return err
	}
	if err := w.Fit(train.Inputs, train.Labels); err != nil {
		return err
	}
	log.Infow("fitted", "classes", w.Labels())

	result, err := trainer.Evaluate(w, infer, byte(c.Uint(flagSignificance)), o.Threads)
	if err != nil {
		return err
	}
	log.Infow("evaluated",
		"correct", result.Correct,
		"samples", result.Samples,
		"percent", result.Percent,
		"fingerprint", fmt.Sprintf("%x", result.Fingerprint))
	for _, digit := range infer.Classes() {
		log.Debugw("confusion", "digit", digit, "predicted", result.Confusion[digit])
	}
	return nil
}
