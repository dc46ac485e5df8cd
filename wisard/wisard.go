// Package wisard implements the WiSARD weightless classifier with bleaching
package wisard

import (
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/neurlang/wisard/discriminator"
	"github.com/neurlang/wisard/inference"
	"github.com/neurlang/wisard/parallel"
)

// ErrShapeMismatch is returned for inputs of the wrong length and for inputs and labels of different counts.
var ErrShapeMismatch = discriminator.ErrShapeMismatch

// ErrConfiguration is returned for invalid options.
var ErrConfiguration = errors.New("invalid configuration")

// ErrNotFitted is returned when predicting before Fit.
var ErrNotFitted = errors.New("classifier is not fitted")

// ErrAlreadyFitted is returned when Fit is called again.
var ErrAlreadyFitted = errors.New("classifier is already fitted")

// WiSARD owns one discriminator per class label. All discriminators share
// the same read-only address mapping.
type WiSARD struct {
	opts           Options
	logger         *zap.Logger
	mapping        []int
	labels         []string
	discriminators map[string]*discriminator.Discriminator
}

// New creates an unfitted classifier.
func New(o Options) (*WiSARD, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	mapping, err := o.mapping()
	if err != nil {
		return nil, err
	}
	w := &WiSARD{
		opts:    o,
		logger:  o.Logger,
		mapping: mapping,
	}
	if w.logger == nil {
		w.logger = zap.NewNop()
	}
	if o.GroupBitWidth > o.RetinaLength {
		w.logger.Debug("group is wider than the retina",
			zap.Int("groupBitWidth", o.GroupBitWidth), zap.Int("retinaLength", o.RetinaLength))
	}
	return w, nil
}

// MustNew creates an unfitted classifier and panics on error.
func MustNew(o Options) *WiSARD {
	w, err := New(o)
	if err != nil {
		panic(err.Error())
	}
	return w
}

// Options returns the configuration of the classifier.
func (w *WiSARD) Options() Options {
	return w.opts
}

// Mapping returns a copy of the address mapping.
func (w *WiSARD) Mapping() []int {
	return append([]int(nil), w.mapping...)
}

// Labels returns the sorted class labels, or nil before Fit.
func (w *WiSARD) Labels() []string {
	return append([]string(nil), w.labels...)
}

func (w *WiSARD) checkShape(inputs [][]byte) error {
	for i, in := range inputs {
		if len(in) != w.opts.RetinaLength {
			return errors.Wrapf(ErrShapeMismatch, "input %d has length %d, expected %d", i, len(in), w.opts.RetinaLength)
		}
	}
	return nil
}

// Fit creates a discriminator for every distinct label and trains it with the
// inputs of that label. It can be called only once.
func (w *WiSARD) Fit(inputs [][]byte, labels []string) error {
	if w.discriminators != nil {
		return ErrAlreadyFitted
	}
	if len(inputs) != len(labels) {
		return errors.Wrapf(ErrShapeMismatch, "%d inputs, %d labels", len(inputs), len(labels))
	}
	if len(inputs) == 0 {
		return errors.Wrap(ErrShapeMismatch, "no training samples")
	}
	if err := w.checkShape(inputs); err != nil {
		return err
	}

	var discriminators = make(map[string]*discriminator.Discriminator)
	for _, label := range labels {
		if _, ok := discriminators[label]; ok {
			continue
		}
		d, err := discriminator.New(w.opts.RetinaLength, w.opts.GroupBitWidth, w.mapping,
			w.opts.Cumulative, w.opts.SuppressZeroAddress, w.logger)
		if err != nil {
			return errors.Wrapf(err, "discriminator %q", label)
		}
		discriminators[label] = d
	}
	for i, in := range inputs {
		if err := discriminators[labels[i]].Train(in); err != nil {
			return errors.Wrapf(err, "input %d", i)
		}
	}

	w.labels = make([]string, 0, len(discriminators))
	for label := range discriminators {
		w.labels = append(w.labels, label)
	}
	sort.Strings(w.labels)
	w.discriminators = discriminators

	w.logger.Debug("fitted",
		zap.Int("samples", len(inputs)),
		zap.Int("classes", len(w.labels)),
		zap.Int("memories", discriminators[w.labels[0]].Len()))
	return nil
}

// Score returns, for every label, the counters addressed by the retina in the
// memories of its discriminator.
func (w *WiSARD) Score(retina []byte) (map[string][]int, error) {
	if w.discriminators == nil {
		return nil, ErrNotFitted
	}
	var out = make(map[string][]int, len(w.discriminators))
	for label, d := range w.discriminators {
		v, err := d.Predict(retina)
		if err != nil {
			return nil, errors.Wrapf(err, "discriminator %q", label)
		}
		out[label] = v
	}
	return out, nil
}

// respond computes the (bleached, if enabled) response to one retina.
func (w *WiSARD) respond(retina []byte) (inference.Response, error) {
	raw, err := w.Score(retina)
	if err != nil {
		return nil, err
	}
	if !w.opts.UseBleaching {
		return activation(raw, 0), nil
	}
	return bleach(raw, w.opts.InitialBleachStep, w.opts.ConfidenceThreshold), nil
}

// PredictProba returns for every input the fraction of activated memories per label.
func (w *WiSARD) PredictProba(inputs [][]byte) ([]inference.Response, error) {
	if w.discriminators == nil {
		return nil, ErrNotFitted
	}
	if err := w.checkShape(inputs); err != nil {
		return nil, err
	}
	var out = make([]inference.Response, len(inputs))
	var errs = make([]error, len(inputs))
	parallel.ForEach(len(inputs), w.opts.Threads, func(i int) {
		out[i], errs[i] = w.respond(inputs[i])
	})
	for i, err := range errs {
		if err != nil {
			return nil, errors.Wrapf(err, "input %d", i)
		}
	}
	return out, nil
}

// Predict returns for every input the label with the highest response.
// Ties go to the lexicographically smallest label.
func (w *WiSARD) Predict(inputs [][]byte) ([]string, error) {
	responses, err := w.PredictProba(inputs)
	if err != nil {
		return nil, err
	}
	var out = make([]string, len(responses))
	for i, r := range responses {
		out[i] = inference.ArgMax(r)
	}
	return out, nil
}
