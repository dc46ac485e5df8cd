package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/neurlang/wisard/datasets"
	"github.com/neurlang/wisard/datasets/squareroot"
	"github.com/neurlang/wisard/trainer"
	"github.com/neurlang/wisard/wisard"
)

// split puts the even numbers into the train set and the odd ones into the infer set.
func split(d datasets.Dataset) (train, infer datasets.Dataset) {
	for i := range d.Inputs {
		if i%2 == 0 {
			train.Add(d.Inputs[i], d.Labels[i])
		} else {
			infer.Add(d.Inputs[i], d.Labels[i])
		}
	}
	return
}

// experiment trains on the even numbers of the medium dataset and evaluates on the odd ones.
func experiment(o wisard.Options) (trainer.Result, error) {
	train, infer := split(squareroot.Medium())
	o.RetinaLength = squareroot.Levels
	w, err := wisard.New(o)
	if err != nil {
		return trainer.Result{}, err
	}
	if err := w.Fit(train.Inputs, train.Labels); err != nil {
		return trainer.Result{}, err
	}
	return trainer.Evaluate(w, infer, 0, o.Threads)
}

func main() {
	app := &cli.App{
		Name:  "train_squareroot",
		Usage: "learn integer square roots of thermometer encoded numbers",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "bits", Value: 8, Usage: "address bits of every memory"},
			&cli.BoolFlag{Name: "bleaching", Value: true, Usage: "refine low confidence predictions"},
			&cli.UintFlag{Name: "seed", Value: 1, Usage: "seed of the retina permutation"},
		},
		Action: func(c *cli.Context) error {
			logger, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer logger.Sync()

			var seed = uint32(c.Uint("seed"))
			var o = wisard.DefaultOptions()
			o.GroupBitWidth = c.Int("bits")
			o.UseBleaching = c.Bool("bleaching")
			o.Seed = &seed
			o.Logger = logger

			result, err := experiment(o)
			if err != nil {
				return err
			}
			logger.Info("evaluated",
				zap.Int("correct", result.Correct),
				zap.Int("samples", result.Samples),
				zap.Int("percent", result.Percent))
			return nil
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
