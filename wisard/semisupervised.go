package wisard

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/neurlang/wisard/inference"
)

// FitSemiSupervised fits the labeled inputs, then adopts each unlabeled input
// into the discriminator of its predicted label when the confidence of the
// prediction reaches threshold. Unlabeled inputs are adopted in order, so
// earlier adoptions affect later predictions. It returns the number of adopted inputs.
func (w *WiSARD) FitSemiSupervised(inputs, unlabeled [][]byte, labels []string, threshold float64) (adopted int, err error) {
	if err := w.checkShape(unlabeled); err != nil {
		return 0, errors.Wrap(err, "unlabeled")
	}
	if err := w.Fit(inputs, labels); err != nil {
		return 0, err
	}
	for i, in := range unlabeled {
		r, err := w.respond(in)
		if err != nil {
			return adopted, errors.Wrapf(err, "unlabeled input %d", i)
		}
		if inference.Confidence(r) < threshold {
			continue
		}
		if err := w.discriminators[inference.ArgMax(r)].Train(in); err != nil {
			return adopted, errors.Wrapf(err, "unlabeled input %d", i)
		}
		adopted++
	}
	w.logger.Debug("semi-supervised fit",
		zap.Int("unlabeled", len(unlabeled)),
		zap.Int("adopted", adopted))
	return adopted, nil
}
