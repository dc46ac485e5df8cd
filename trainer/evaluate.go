package trainer

import (
	"math"

	"github.com/pkg/errors"

	"github.com/neurlang/wisard/datasets"
	"github.com/neurlang/wisard/parallel"
)

// Model is a fitted classifier.
type Model interface {
	Predict(inputs [][]byte) ([]string, error)
}

// Result summarizes an evaluation.
type Result struct {
	Samples     int                       // number of evaluated samples
	Correct     int                       // number of correctly predicted samples
	Percent     int                       // Correct as a whole percentage
	Fingerprint [32]byte                  // sha256 of the predicted class indices
	Confusion   map[string]map[string]int // expected label -> predicted label -> count
}

// unknownClass is the fingerprint value of labels missing from the dataset.
const unknownClass = 0xFFFF

// sampleSize calculates the statistically sufficient sample size
// for a given dataset size N and significance level (0–100).
func sampleSize(N int, significance byte) int {
	if significance == 0 || significance >= 100 || N < 2 {
		return N
	}

	// Convert significance level to Z-score
	z := zScoreFromAlpha(100 - significance)

	// Assume worst-case proportion p = 0.5 for max variability
	p := 0.5
	e := float64(100-significance) * 0.01

	numerator := math.Pow(z, 2) * p * (1 - p)
	denominator := math.Pow(e, 2)

	// Initial sample size without population correction
	ss := numerator / denominator

	// Apply finite population correction
	correctedSS := ss * float64(N) / (float64(N) - 1 + ss)

	if int(correctedSS) > N {
		return N
	}

	return int(correctedSS)
}

// zScoreFromAlpha returns the Z-score for a given alpha level
// Common: 90% => 1.645, 95% => 1.96, 99% => 2.576
func zScoreFromAlpha(alpha byte) float64 {
	switch {
	case alpha <= 1:
		return 2.576 // 99% confidence
	case alpha <= 5:
		return 1.96 // 95% confidence
	case alpha <= 10:
		return 1.645 // 90% confidence
	default:
		return 1.96 // default fallback
	}
}

// Evaluate predicts the dataset and compares the predictions with its labels.
// A significance between 1 and 99 evaluates only the leading samples of a
// sufficient sample size, so the dataset should be shuffled first. Threads
// bounds the fingerprinting workers.
func Evaluate(m Model, d datasets.Dataset, significance byte, threads int) (r Result, err error) {
	if err = d.Check(); err != nil {
		return
	}
	n := sampleSize(d.Len(), significance)
	predicted, err := m.Predict(d.Inputs[:n])
	if err != nil {
		return r, errors.Wrap(err, "evaluate")
	}

	var index = make(map[string]uint16)
	for i, c := range d.Classes() {
		index[c] = uint16(i)
	}

	h := parallel.NewUint16Hasher(n)
	parallel.ForEach(n, threads, func(i int) {
		c, ok := index[predicted[i]]
		if !ok {
			c = unknownClass
		}
		h.MustPutUint16(i, c)
	})

	r.Samples = n
	r.Confusion = make(map[string]map[string]int)
	for i, p := range predicted {
		want := d.Labels[i]
		if r.Confusion[want] == nil {
			r.Confusion[want] = make(map[string]int)
		}
		r.Confusion[want][p]++
		if p == want {
			r.Correct++
		}
	}
	if n > 0 {
		r.Percent = 100 * r.Correct / n
	}
	r.Fingerprint = h.Sum()
	return
}
