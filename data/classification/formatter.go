package classification

import (
	"strings"

	"github.com/taskml/taskdata/pkg/errors"
)

// TargetFormatter converts a raw target into the standard representation
// required by the task. Formatters are stateless after construction: they are
// built once from training-time label statistics and safely shared read-only
// across workers thereafter.
type TargetFormatter interface {
	Format(target any) (any, error)
}

// PassthroughTargetFormatter returns already-numeric multi-hot vectors
// unchanged.
type PassthroughTargetFormatter struct{}

func (PassthroughTargetFormatter) Format(target any) (any, error) {
	return target, nil
}

// SingleNumericTargetFormatter normalizes a numeric target, unwrapping a
// single-element numeric container to its scalar.
type SingleNumericTargetFormatter struct{}

func (SingleNumericTargetFormatter) Format(target any) (any, error) {
	if elems, ok := listElems(target); ok {
		target = elems[0]
	}
	f, ok := toFloat(target)
	if !ok {
		return nil, errors.NewValidationError("target", "numeric target expected", target)
	}
	return int(f), nil
}

// SingleLabelTargetFormatter maps a label string to its index in the fixed
// vocabulary derived from the training targets.
type SingleLabelTargetFormatter struct {
	labels     []string
	labelToIdx map[string]int
}

// NewSingleLabelTargetFormatter creates a formatter over the given
// vocabulary. Label order defines the index mapping.
func NewSingleLabelTargetFormatter(labels []string) *SingleLabelTargetFormatter {
	labelToIdx := make(map[string]int, len(labels))
	for idx, label := range labels {
		labelToIdx[label] = idx
	}
	return &SingleLabelTargetFormatter{labels: labels, labelToIdx: labelToIdx}
}

func (f *SingleLabelTargetFormatter) Format(target any) (any, error) {
	label, err := labelOf(target)
	if err != nil {
		return nil, err
	}
	idx, ok := f.labelToIdx[strip(label)]
	if !ok {
		// The vocabulary is never extended at inference time.
		return nil, errors.NewUnknownLabelError(label, f.labels)
	}
	return idx, nil
}

// labelOf extracts the label string of a target, unwrapping a single-element
// container.
func labelOf(target any) (string, error) {
	if s, ok := target.(string); ok {
		return s, nil
	}
	if elems, ok := listElems(target); ok {
		if s, ok := elems[0].(string); ok {
			return s, nil
		}
	}
	return "", errors.NewValidationError("target", "label string expected", target)
}

// MultiLabelTargetFormatter encodes a list of raw labels as a fixed-width
// multi-hot vector sized to the vocabulary.
type MultiLabelTargetFormatter struct {
	single     *SingleLabelTargetFormatter
	numClasses int
}

// NewMultiLabelTargetFormatter creates a formatter over the given vocabulary.
func NewMultiLabelTargetFormatter(labels []string) *MultiLabelTargetFormatter {
	return &MultiLabelTargetFormatter{
		single:     NewSingleLabelTargetFormatter(labels),
		numClasses: len(labels),
	}
}

func (f *MultiLabelTargetFormatter) Format(target any) (any, error) {
	elems, ok := listElems(target)
	if !ok {
		return nil, errors.NewValidationError("target", "list of labels expected", target)
	}
	result := make([]int, f.numClasses)
	for _, e := range elems {
		idx, err := f.single.Format(e)
		if err != nil {
			return nil, err
		}
		result[idx.(int)] = 1
	}
	return result, nil
}

// CommaDelimitedTargetFormatter splits a comma-delimited label string before
// multi-hot encoding it.
type CommaDelimitedTargetFormatter struct {
	multi *MultiLabelTargetFormatter
}

// NewCommaDelimitedTargetFormatter creates a formatter over the given
// vocabulary.
func NewCommaDelimitedTargetFormatter(labels []string) *CommaDelimitedTargetFormatter {
	return &CommaDelimitedTargetFormatter{multi: NewMultiLabelTargetFormatter(labels)}
}

func (f *CommaDelimitedTargetFormatter) Format(target any) (any, error) {
	s, ok := target.(string)
	if !ok {
		return nil, errors.NewValidationError("target", "comma-delimited string expected", target)
	}
	return f.multi.Format(strings.Split(s, ","))
}

// SpaceDelimitedTargetFormatter splits a space-delimited label string before
// multi-hot encoding it.
type SpaceDelimitedTargetFormatter struct {
	multi *MultiLabelTargetFormatter
}

// NewSpaceDelimitedTargetFormatter creates a formatter over the given
// vocabulary.
func NewSpaceDelimitedTargetFormatter(labels []string) *SpaceDelimitedTargetFormatter {
	return &SpaceDelimitedTargetFormatter{multi: NewMultiLabelTargetFormatter(labels)}
}

func (f *SpaceDelimitedTargetFormatter) Format(target any) (any, error) {
	s, ok := target.(string)
	if !ok {
		return nil, errors.NewValidationError("target", "space-delimited string expected", target)
	}
	return f.multi.Format(strings.Split(s, " "))
}

// MultiNumericTargetFormatter encodes a list of class indices as a
// fixed-width multi-hot vector.
type MultiNumericTargetFormatter struct {
	NumClasses int
}

func (f MultiNumericTargetFormatter) Format(target any) (any, error) {
	elems, ok := listElems(target)
	if !ok {
		return nil, errors.NewValidationError("target", "list of class indices expected", target)
	}
	result := make([]int, f.NumClasses)
	for _, e := range elems {
		v, ok := toFloat(e)
		if !ok {
			return nil, errors.NewValidationError("target", "class index expected", e)
		}
		idx := int(v)
		if idx < 0 || idx >= f.NumClasses {
			return nil, errors.NewUnknownClassError(idx, f.NumClasses)
		}
		result[idx] = 1
	}
	return result, nil
}

// OneHotTargetFormatter decodes a one-hot binary vector to the index of its
// set bit. A vector with no set bit decodes to index 0.
type OneHotTargetFormatter struct{}

func (OneHotTargetFormatter) Format(target any) (any, error) {
	elems, ok := listElems(target)
	if !ok {
		return nil, errors.NewValidationError("target", "binary vector expected", target)
	}
	for idx, e := range elems {
		if v, ok := toFloat(e); ok && v == 1 {
			return idx, nil
		}
	}
	return 0, nil
}

// GetTargetFormatter selects the TargetFormatter for the given TargetMode,
// vocabulary and class count. It must be called once per dataset, at training
// time, and the result persisted in the dataset's shared state so that the
// other splits reuse the exact training-time parameters.
func GetTargetFormatter(mode TargetMode, labels []string, numClasses int) TargetFormatter {
	switch mode {
	case MultiBinary:
		return PassthroughTargetFormatter{}
	case SingleNumeric:
		return SingleNumericTargetFormatter{}
	case SingleBinary:
		return OneHotTargetFormatter{}
	case MultiNumeric:
		return MultiNumericTargetFormatter{NumClasses: numClasses}
	case SingleToken:
		return NewSingleLabelTargetFormatter(labels)
	case MultiCommaDelimited:
		return NewCommaDelimitedTargetFormatter(labels)
	case MultiSpaceDelimited:
		return NewSpaceDelimitedTargetFormatter(labels)
	}
	return NewMultiLabelTargetFormatter(labels)
}
