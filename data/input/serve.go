package input

import (
	"github.com/taskml/taskdata/core/stage"
	"github.com/taskml/taskdata/pkg/errors"
)

// ServeInput adapts the sample protocol for serving: it is bound to the
// serving stage, holds no data, and applies the serve-time LoadSample hook to
// one sample at a time.
type ServeInput struct {
	loadSample LoadSampleFunc
}

// NewServe constructs a ServeInput from the given hooks. A serve-stage
// LoadData override is a contract violation: serving has no data to load.
func NewServe(hooks Hooks) (*ServeInput, error) {
	if fn, ok := hooks.StageLoadData[stage.Serving]; ok && fn != nil {
		return nil, errors.NewValidationError("hooks",
			"a serve-stage LoadData override must not be provided", nil)
	}
	ls := hooks.StageLoadSample[stage.Serving]
	if ls == nil {
		ls = hooks.LoadSample
	}
	return &ServeInput{loadSample: ls}, nil
}

// Call applies the serve LoadSample hook to a clone of the given sample.
func (s *ServeInput) Call(sample Sample) (out Sample, err error) {
	if s.loadSample == nil {
		return nil, errors.Wrap(errors.ErrNotImplemented, "ServeInput.Call: no LoadSample hook")
	}
	defer errors.Recover(&err, "serve_load_sample")
	return s.loadSample(sample.Clone())
}

// Stage returns the serving stage.
func (s *ServeInput) Stage() stage.RunningStage { return stage.Serving }

// Populated always reports true: a ServeInput never carries data but is
// always ready to process samples.
func (s *ServeInput) Populated() bool { return true }
