package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/neurlang/wisard/datasets"
	"github.com/neurlang/wisard/datasets/isalnum"
	"github.com/neurlang/wisard/parallel"
	"github.com/neurlang/wisard/trainer"
	"github.com/neurlang/wisard/wisard"
)

// printable returns the retinas of the printable ASCII characters, from space to tilde.
func printable(d datasets.Dataset) [][]byte {
	return d.Inputs[' ' : '~'+1]
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	var dataset = isalnum.Dataset()

	var o = wisard.DefaultOptions()
	o.RetinaLength = isalnum.RetinaLength
	// one memory sees the whole byte, so the table is memorized exactly
	o.GroupBitWidth = isalnum.RetinaLength
	o.RandomizePositions = false
	o.Threads = parallel.Threads()
	o.Logger = logger

	w, err := wisard.New(o)
	if err != nil {
		logger.Fatal("new", zap.Error(err))
	}
	if err := w.Fit(dataset.Inputs, dataset.Labels); err != nil {
		logger.Fatal("fit", zap.Error(err))
	}
	result, err := trainer.Evaluate(w, dataset, 0, o.Threads)
	if err != nil {
		logger.Fatal("evaluate", zap.Error(err))
	}
	logger.Info("evaluated",
		zap.Int("correct", result.Correct),
		zap.Int("samples", result.Samples),
		zap.Int("percent", result.Percent),
		zap.String("fingerprint", fmt.Sprintf("%x", result.Fingerprint)))

	predicted, err := w.Predict(printable(dataset))
	if err != nil {
		logger.Fatal("predict", zap.Error(err))
	}
	for i, label := range predicted {
		c := ' ' + i
		fmt.Println(c, string(rune(c)), label)
	}
}
