// Package stage defines the running stages of a model lifecycle. Every input
// is bound to exactly one stage, and loading hooks may be overridden per
// stage.
package stage

import (
	"github.com/taskml/taskdata/pkg/errors"
)

// RunningStage identifies the part of the model lifecycle an input serves.
type RunningStage string

const (
	Training       RunningStage = "train"
	SanityChecking RunningStage = "sanity_check"
	Validating     RunningStage = "validate"
	Testing        RunningStage = "test"
	Predicting     RunningStage = "predict"
	Serving        RunningStage = "serve"
	Tuning         RunningStage = "tune"
)

// String returns the stage name.
func (s RunningStage) String() string {
	return string(s)
}

// Evaluating reports whether the stage is one of the evaluation stages.
func (s RunningStage) Evaluating() bool {
	return s == Validating || s == Testing
}

// DataloaderPrefix returns the prefix used to name stage-specific dataloaders
// and hooks. Sanity checking and tuning have no dataloaders of their own and
// return the empty string.
func (s RunningStage) DataloaderPrefix() string {
	switch s {
	case SanityChecking, Tuning:
		return ""
	case Validating:
		return "val"
	default:
		return string(s)
	}
}

// canonical maps every stage to the stage whose hooks and state it shares.
// Sanity checking runs the validation path.
var canonical = map[RunningStage]RunningStage{
	Training:       Training,
	SanityChecking: Validating,
	Validating:     Validating,
	Testing:        Testing,
	Predicting:     Predicting,
	Serving:        Serving,
	Tuning:         Tuning,
}

// Canonical returns the stage used for hook resolution and shared state.
func (s RunningStage) Canonical() RunningStage {
	if c, ok := canonical[s]; ok {
		return c
	}
	return s
}

// Valid reports whether s is one of the defined stages.
func (s RunningStage) Valid() bool {
	_, ok := canonical[s]
	return ok
}

// Parse converts a stage name to a RunningStage.
func Parse(name string) (RunningStage, error) {
	s := RunningStage(name)
	if !s.Valid() {
		return "", errors.NewValidationError("stage", "unknown running stage", name)
	}
	return s, nil
}
