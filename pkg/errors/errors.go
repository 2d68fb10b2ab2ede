// Package errors provides error handling and the warning system for the
// taskdata library. All errors are constructed through cockroachdb/errors so
// they carry stack traces, and the typed errors marshal themselves as
// structured zerolog objects.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================

var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		log.Printf("taskdata-warning: %v\n", w)
	}
	// zerolog warn hook, injected lazily to avoid an import cycle with pkg/log.
	zerologWarnFunc func(warning error)
)

// SetWarningHandler sets the warning handler for the whole library. Use it to
// control how non-fatal conditions such as MixedTargetModesWarning are
// reported.
//
// Example:
//
//	errors.SetWarningHandler(func(w error) {
//	    // ignore warnings
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc installs a zerolog-backed warning sink. It exists so
// that pkg/log can route warnings through structured logging without creating
// an import cycle.
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn raises a warning. When a zerolog sink is installed it takes
// precedence; otherwise the registered handler is used.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	Warning types
//
// ===========================================================================

// MixedTargetModesWarning is raised when a target list contains more than one
// target shape and the shapes were successfully merged into a common mode
// (e.g. plain tokens mixed with comma-delimited tokens).
type MixedTargetModesWarning struct {
	Observed []string
	Resolved string
}

func (w *MixedTargetModesWarning) Error() string {
	return fmt.Sprintf("targets mix multiple shapes %v; resolved to %q", w.Observed, w.Resolved)
}

// MarshalZerologObject adds the structured warning fields to a zerolog event.
func (w *MixedTargetModesWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Strs("observed_modes", w.Observed).
		Str("resolved_mode", w.Resolved).
		Str("type", "MixedTargetModesWarning")
}

// NewMixedTargetModesWarning creates a new MixedTargetModesWarning.
func NewMixedTargetModesWarning(observed []string, resolved string) *MixedTargetModesWarning {
	return &MixedTargetModesWarning{Observed: observed, Resolved: resolved}
}

// ===========================================================================
//
//	Structured error types
//
// ===========================================================================

// InputShapeError reports an input constructed around data of the wrong
// shape: a finite Input over a length-less stream, or an IterableInput over a
// sized collection. It is raised synchronously at construction and is fatal.
type InputShapeError struct {
	InputType string // "Input" or "IterableInput"
	Message   string
}

func (e *InputShapeError) Error() string {
	return fmt.Sprintf("taskdata: %s: %s", e.InputType, e.Message)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *InputShapeError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("input_type", e.InputType).
		Str("message", e.Message).
		Str("type", "InputShapeError")
}

// NewInputShapeError creates a new InputShapeError with a stack trace.
func NewInputShapeError(inputType, message string) error {
	err := &InputShapeError{InputType: inputType, Message: message}
	return errors.WithStack(err)
}

// InconsistentTargetsError reports a target list whose elements classify to
// target modes that cannot be merged into a single mode.
type InconsistentTargetsError struct {
	ModeA string
	ModeB string
}

func (e *InconsistentTargetsError) Error() string {
	return fmt.Sprintf(
		"taskdata: found inconsistent target modes (%s and %s). All targets should be either: "+
			"single values, lists of values, or comma-delimited strings", e.ModeA, e.ModeB)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *InconsistentTargetsError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("mode_a", e.ModeA).
		Str("mode_b", e.ModeB).
		Str("type", "InconsistentTargetsError")
}

// NewInconsistentTargetsError creates a new InconsistentTargetsError with a
// stack trace.
func NewInconsistentTargetsError(modeA, modeB string) error {
	err := &InconsistentTargetsError{ModeA: modeA, ModeB: modeB}
	return errors.WithStack(err)
}

// UnknownLabelError reports a label seen at format time that was not part of
// the vocabulary derived from the training targets. The vocabulary is fixed
// once fitted and never extended at inference time, so this is fatal for the
// offending sample.
type UnknownLabelError struct {
	Label      string
	Vocabulary []string
}

func (e *UnknownLabelError) Error() string {
	return fmt.Sprintf("taskdata: unknown label %q: not present in the training-time vocabulary %v",
		e.Label, e.Vocabulary)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *UnknownLabelError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("label", e.Label).
		Strs("vocabulary", e.Vocabulary).
		Str("type", "UnknownLabelError")
}

// NewUnknownLabelError creates a new UnknownLabelError with a stack trace.
func NewUnknownLabelError(label string, vocabulary []string) error {
	err := &UnknownLabelError{Label: label, Vocabulary: vocabulary}
	return errors.WithStack(err)
}

// UnknownClassError reports a numeric class index outside the fixed class
// count of a fitted formatter.
type UnknownClassError struct {
	Index      int
	NumClasses int
}

func (e *UnknownClassError) Error() string {
	return fmt.Sprintf("taskdata: class index %d is out of range for %d classes", e.Index, e.NumClasses)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *UnknownClassError) MarshalZerologObject(event *zerolog.Event) {
	event.Int("index", e.Index).
		Int("num_classes", e.NumClasses).
		Str("type", "UnknownClassError")
}

// NewUnknownClassError creates a new UnknownClassError with a stack trace.
func NewUnknownClassError(index, numClasses int) error {
	err := &UnknownClassError{Index: index, NumClasses: numClasses}
	return errors.WithStack(err)
}

// MissingStateError reports an evaluation, test or predict split constructed
// without access to the parameters derived from the training split.
type MissingStateError struct {
	State string
	Stage string
}

func (e *MissingStateError) Error() string {
	return fmt.Sprintf(
		"taskdata: no %s is available for the %q stage. Either construct the training data alongside "+
			"this split so the state is computed first, or pass the saved parameters through explicitly",
		e.State, e.Stage)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *MissingStateError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("state", e.State).
		Str("stage", e.Stage).
		Str("type", "MissingStateError")
}

// NewMissingStateError creates a new MissingStateError with a stack trace.
func NewMissingStateError(state, stage string) error {
	err := &MissingStateError{State: state, Stage: stage}
	return errors.WithStack(err)
}

// InconsistentWidthError reports binary target vectors whose widths disagree
// across a target list.
type InconsistentWidthError struct {
	Index    int
	Expected int
	Got      int
}

func (e *InconsistentWidthError) Error() string {
	return fmt.Sprintf("taskdata: binary target at index %d has width %d, expected %d",
		e.Index, e.Got, e.Expected)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *InconsistentWidthError) MarshalZerologObject(event *zerolog.Event) {
	event.Int("index", e.Index).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Str("type", "InconsistentWidthError")
}

// NewInconsistentWidthError creates a new InconsistentWidthError with a stack
// trace.
func NewInconsistentWidthError(index, expected, got int) error {
	err := &InconsistentWidthError{Index: index, Expected: expected, Got: got}
	return errors.WithStack(err)
}

// ValidationError reports a parameter that failed validation.
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("taskdata: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError creates a new ValidationError with a stack trace.
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ValueError reports an argument whose value is unsuitable for an operation.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("taskdata: %s: %s", e.Op, e.Message)
}

// NewValueError creates a new ValueError with a stack trace.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates an error with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Common error variables
//
// ===========================================================================

var (
	// ErrEmptyData is returned when an operation receives no data.
	ErrEmptyData = New("empty data")

	// ErrNotImplemented is returned by hooks that a concrete input must
	// override, such as the serve-time load sample hook.
	ErrNotImplemented = New("not implemented")
)
