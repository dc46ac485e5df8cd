package wisard

import (
	"math"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/neurlang/wisard/memory"
)

// Options configures a classifier. The mapstructure keys are the names
// recognized by NewFromMap.
type Options struct {
	RetinaLength        int     `mapstructure:"retinaLength"`        // number of bits of every input
	GroupBitWidth       int     `mapstructure:"groupBitWidth"`       // number of address bits of every memory
	UseBleaching        bool    `mapstructure:"useBleaching"`        // refine low confidence responses
	ConfidenceThreshold float64 `mapstructure:"confidenceThreshold"` // bleach while confidence is below this
	InitialBleachStep   int     `mapstructure:"initialBleachStep"`   // first activation threshold tried by bleaching
	RandomizePositions  bool    `mapstructure:"randomizePositions"`  // permute retina positions before grouping
	Cumulative          bool    `mapstructure:"cumulative"`          // count patterns instead of recording presence
	SuppressZeroAddress bool    `mapstructure:"suppressZeroAddress"` // address 0 never activates a memory
	Seed                *uint32 `mapstructure:"seed"`                // seed of the hash permuter
	Threads             int     `mapstructure:"threads"`             // rows predicted concurrently, <= 1 is sequential

	// Permuter overrides the seeded permutation when RandomizePositions is set.
	Permuter Permuter `mapstructure:"-"`

	// Logger receives configuration warnings and debug events. Nil discards them.
	Logger *zap.Logger `mapstructure:"-"`
}

// DefaultOptions returns the default configuration. RetinaLength and
// GroupBitWidth have no defaults and must be set.
func DefaultOptions() Options {
	return Options{
		UseBleaching:        true,
		ConfidenceThreshold: 0.1,
		InitialBleachStep:   1,
		RandomizePositions:  true,
		Cumulative:          true,
		Threads:             1,
	}
}

// Validate reports every invalid option at once.
func (o Options) Validate() (err error) {
	if o.RetinaLength < 1 {
		err = multierr.Append(err, errors.Wrapf(ErrConfiguration, "retinaLength must be positive, got %d", o.RetinaLength))
	}
	if o.GroupBitWidth < 1 || o.GroupBitWidth > memory.MaxBits {
		err = multierr.Append(err, errors.Wrapf(ErrConfiguration, "groupBitWidth must be in [1, %d], got %d", memory.MaxBits, o.GroupBitWidth))
	}
	if math.IsNaN(o.ConfidenceThreshold) || math.IsInf(o.ConfidenceThreshold, 0) {
		err = multierr.Append(err, errors.Wrapf(ErrConfiguration, "confidenceThreshold must be finite, got %v", o.ConfidenceThreshold))
	}
	if o.InitialBleachStep < 0 {
		err = multierr.Append(err, errors.Wrapf(ErrConfiguration, "initialBleachStep must not be negative, got %d", o.InitialBleachStep))
	}
	if o.Threads < 0 {
		err = multierr.Append(err, errors.Wrapf(ErrConfiguration, "threads must not be negative, got %d", o.Threads))
	}
	return
}

// DecodeOptions decodes a map of recognized option names over the defaults.
// Unknown names are an error.
func DecodeOptions(m map[string]interface{}) (Options, error) {
	var o = DefaultOptions()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &o,
	})
	if err != nil {
		return o, err
	}
	if err := decoder.Decode(m); err != nil {
		return o, multierr.Append(ErrConfiguration, err)
	}
	return o, nil
}

// NewFromMap creates a classifier from a map of recognized option names.
func NewFromMap(m map[string]interface{}, logger *zap.Logger) (*WiSARD, error) {
	o, err := DecodeOptions(m)
	if err != nil {
		return nil, err
	}
	o.Logger = logger
	return New(o)
}
