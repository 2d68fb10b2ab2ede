// Package input provides the uniform contract between raw data sources and
// the consuming training or inference loop: a collection of raw samples plus
// per-sample loading hooks, bound to a single running stage.
//
// Finite sources with random access and a known length are wrapped by Input;
// streaming sources are wrapped by IterableInput. The two shapes are mutually
// exclusive and constructing the wrong one for a given source fails
// immediately.
package input

import (
	"github.com/taskml/taskdata/core/stage"
	"github.com/taskml/taskdata/pkg/errors"
)

// LoadDataFunc materializes the raw sample collection from constructor
// arguments. It runs exactly once, at construction time. To keep the memory
// footprint low the returned samples should typically not be loaded yet: an
// input reading images from disk would return the file names here, not the
// decoded images.
type LoadDataFunc func(args ...any) (any, error)

// LoadSampleFunc is called once per element access with a clone of the
// stored raw sample.
type LoadSampleFunc func(sample Sample) (Sample, error)

// Hooks carries the loading hooks of an input. A stage-specific override
// takes precedence over the generic hook for that stage only; hook
// resolution happens once, at construction time.
type Hooks struct {
	LoadData   LoadDataFunc
	LoadSample LoadSampleFunc

	StageLoadData   map[stage.RunningStage]LoadDataFunc
	StageLoadSample map[stage.RunningStage]LoadSampleFunc
}

// defaultLoadData returns the first argument unchanged. Concrete sources are
// expected to override the hook.
func defaultLoadData(args ...any) (any, error) {
	return args[0], nil
}

// defaultLoadSample is the identity.
func defaultLoadSample(sample Sample) (Sample, error) {
	return sample, nil
}

func (h Hooks) resolveLoadData(rs stage.RunningStage) LoadDataFunc {
	if fn, ok := h.StageLoadData[rs.Canonical()]; ok && fn != nil {
		return fn
	}
	if h.LoadData != nil {
		return h.LoadData
	}
	return defaultLoadData
}

func (h Hooks) resolveLoadSample(rs stage.RunningStage) LoadSampleFunc {
	if fn, ok := h.StageLoadSample[rs.Canonical()]; ok && fn != nil {
		return fn
	}
	if h.LoadSample != nil {
		return h.LoadSample
	}
	return defaultLoadSample
}

// base holds the state shared by Input and IterableInput.
type base struct {
	stage      stage.RunningStage
	loadSample LoadSampleFunc
	data       any
}

// Stage returns the running stage the input is bound to.
func (b *base) Stage() stage.RunningStage { return b.stage }

// Populated reports whether data has been loaded. It distinguishes an empty
// instance from a populated one for conditional branching by calling code.
func (b *base) Populated() bool { return b.data != nil }

// Data returns the loaded collection, or nil when unpopulated.
func (b *base) Data() any { return b.data }

func (b *base) load(rs stage.RunningStage, hooks Hooks, args []any) (err error) {
	b.stage = rs
	b.loadSample = hooks.resolveLoadSample(rs)
	if len(args) == 0 || args[0] == nil {
		return nil
	}
	// Loading hooks run user code; surface panics as errors.
	defer errors.Recover(&err, "load_data")
	b.data, err = hooks.resolveLoadData(rs)(args...)
	return err
}

func (b *base) callLoadSample(raw Sample) (sample Sample, err error) {
	defer errors.Recover(&err, "load_sample")
	return b.loadSample(raw.Clone())
}

// Input wraps a finite, randomly-indexable sample collection.
type Input struct {
	base
}

// New constructs an Input bound to the given stage. When at least one non-nil
// positional argument is supplied, the resolved LoadData hook is invoked
// exactly once to materialize the sample collection. The loaded value must
// implement Collection.
func New(rs stage.RunningStage, hooks Hooks, args ...any) (*Input, error) {
	if !rs.Valid() {
		return nil, errors.NewValidationError("stage", "unknown running stage", rs)
	}
	in := &Input{}
	if err := in.load(rs, hooks, args); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	return in, nil
}

// validateInput enforces the construction-time invariant that an Input wraps
// sized data. It is called by every constructor, so concrete inputs built on
// New never repeat the check.
func validateInput(in *Input) error {
	if in.data == nil {
		return nil
	}
	if _, ok := in.data.(Collection); !ok {
		return errors.NewInputShapeError("Input",
			"data is not a sequence with a defined length. Use IterableInput instead")
	}
	return nil
}

// Len returns the length of the loaded collection, or zero when unpopulated.
func (in *Input) Len() int {
	if in.data == nil {
		return 0
	}
	return in.data.(Collection).Len()
}

// Get loads the sample at the given index. The resolved LoadSample hook is
// invoked on a clone of the stored element on every call; results are never
// cached across accesses.
func (in *Input) Get(i int) (Sample, error) {
	if in.data == nil {
		return nil, errors.Wrap(errors.ErrEmptyData, "Input.Get")
	}
	coll := in.data.(Collection)
	if i < 0 || i >= coll.Len() {
		return nil, errors.NewValueError("Input.Get", "index out of range")
	}
	return in.callLoadSample(coll.At(i))
}

// Copy returns a copy of the input that shares the loaded data. A
// serialization-based copy would drop the data; this preserves it.
func (in *Input) Copy() *Input {
	cp := *in
	return &cp
}

// MarshalBinary serializes the input for transfer across data-loader
// workers. The loaded data and hooks are deliberately dropped: the restored
// instance is unpopulated and must be reloaded by the caller.
func (in *Input) MarshalBinary() ([]byte, error) {
	return []byte(in.stage), nil
}

// UnmarshalBinary restores the stage binding only. See MarshalBinary.
func (in *Input) UnmarshalBinary(b []byte) error {
	rs, err := stage.Parse(string(b))
	if err != nil {
		return err
	}
	in.stage = rs
	in.loadSample = defaultLoadSample
	in.data = nil
	return nil
}

// IterableInput wraps a sample source that is iterated once per pass and has
// no defined length.
type IterableInput struct {
	base
}

// NewIterable constructs an IterableInput bound to the given stage. The
// loaded value must implement Stream and must not implement Collection.
func NewIterable(rs stage.RunningStage, hooks Hooks, args ...any) (*IterableInput, error) {
	if !rs.Valid() {
		return nil, errors.NewValidationError("stage", "unknown running stage", rs)
	}
	in := &IterableInput{}
	if err := in.load(rs, hooks, args); err != nil {
		return nil, err
	}
	if err := validateIterableInput(in); err != nil {
		return nil, err
	}
	return in, nil
}

// validateIterableInput enforces the mirror-image invariant of
// validateInput: streaming data only.
func validateIterableInput(in *IterableInput) error {
	if in.data == nil {
		return nil
	}
	if _, ok := in.data.(Collection); ok {
		return errors.NewInputShapeError("IterableInput",
			"data is a sequence with a defined length. Use Input instead")
	}
	if _, ok := in.data.(Stream); !ok {
		return errors.NewInputShapeError("IterableInput", "data is not a Stream")
	}
	return nil
}

// Iter starts a pass over the source, capturing a fresh iterator. Iterating
// an unpopulated input is an error reported by the first Next call.
func (in *IterableInput) Iter() *SampleIter {
	it := &SampleIter{input: in}
	if in.data != nil {
		it.raw = in.data.(Stream).Samples()
	}
	return it
}

// Copy returns a copy of the input that shares the loaded data.
func (in *IterableInput) Copy() *IterableInput {
	cp := *in
	return &cp
}

// SampleIter is a single pass over an IterableInput.
type SampleIter struct {
	input *IterableInput
	raw   Iterator
}

// Next returns the next loaded sample. Exhaustion of the underlying source
// propagates as io.EOF.
func (it *SampleIter) Next() (Sample, error) {
	if it.raw == nil {
		return nil, errors.Wrap(errors.ErrEmptyData, "IterableInput.Next")
	}
	raw, err := it.raw.Next()
	if err != nil {
		return nil, err
	}
	return it.input.callLoadSample(raw)
}
