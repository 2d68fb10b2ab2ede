package classification

import (
	"strings"

	"github.com/taskml/taskdata/pkg/errors"
)

// GetTargetDetails determines the label vocabulary and class count of a
// target list given its resolved TargetMode. Targets can be:
//
//   - token-based: labels is the sorted set of distinct tokens and the class
//     count is its size;
//   - numeric: labels is nil and the class count is the maximum observed
//     value plus one;
//   - binary: labels is nil and the class count is the width of the target
//     vectors. Vectors whose widths disagree are an error.
func GetTargetDetails(targets []any, mode TargetMode) (labels []string, numClasses int, err error) {
	if len(targets) == 0 {
		return nil, 0, errors.NewValueError("GetTargetDetails", "no targets provided")
	}

	switch {
	case mode.Numeric():
		numClasses, err = numericClassCount(targets, mode)
		return nil, numClasses, err
	case mode.Binary():
		numClasses, err = binaryWidth(targets)
		return nil, numClasses, err
	default:
		labels, err = tokenVocabulary(targets, mode)
		return labels, len(labels), err
	}
}

// numericClassCount takes a max over every observed value, flattening the
// per-target lists for MultiNumeric.
func numericClassCount(targets []any, mode TargetMode) (int, error) {
	var max float64
	seen := false
	note := func(v any) error {
		f, ok := scalarValue(v)
		if !ok {
			return errors.NewValidationError("targets", "numeric target expected", v)
		}
		if !seen || f > max {
			max = f
		}
		seen = true
		return nil
	}

	for _, target := range targets {
		if mode == MultiNumeric {
			elems, ok := listElems(target)
			if !ok {
				return 0, errors.NewValidationError("targets", "list of class indices expected", target)
			}
			for _, e := range elems {
				if err := note(e); err != nil {
					return 0, err
				}
			}
			continue
		}
		if err := note(target); err != nil {
			return 0, err
		}
	}
	return int(max) + 1, nil
}

// scalarValue unwraps a numeric scalar, accepting single-element numeric
// containers the way the classifier does.
func scalarValue(v any) (float64, bool) {
	if f, ok := toFloat(v); ok {
		return f, true
	}
	if elems, ok := listElems(v); ok && len(elems) == 1 {
		return toFloat(elems[0])
	}
	return 0, false
}

// binaryWidth returns the width of the binary target vectors, checking that
// every target in the list shares it.
func binaryWidth(targets []any) (int, error) {
	first, ok := listElems(targets[0])
	if !ok {
		return 0, errors.NewValidationError("targets", "binary vector expected", targets[0])
	}
	width := len(first)
	for i, target := range targets[1:] {
		elems, ok := listElems(target)
		if !ok {
			return 0, errors.NewValidationError("targets", "binary vector expected", target)
		}
		if len(elems) != width {
			return 0, errors.NewInconsistentWidthError(i+1, width, len(elems))
		}
	}
	return width, nil
}

// tokenVocabulary tokenizes every target per the mode, trims each token and
// returns the sorted distinct tokens.
func tokenVocabulary(targets []any, mode TargetMode) ([]string, error) {
	var tokens []string
	for _, target := range targets {
		switch mode {
		case MultiCommaDelimited, MultiSpaceDelimited:
			s, ok := target.(string)
			if !ok {
				return nil, errors.NewValidationError("targets", "delimited string expected", target)
			}
			sep := ","
			if mode == MultiSpaceDelimited {
				sep = " "
			}
			tokens = append(tokens, strings.Split(s, sep)...)
		case MultiToken:
			elems, ok := listElems(target)
			if !ok {
				return nil, errors.NewValidationError("targets", "list of tokens expected", target)
			}
			for _, e := range elems {
				s, ok := e.(string)
				if !ok {
					return nil, errors.NewValidationError("targets", "token expected", e)
				}
				tokens = append(tokens, s)
			}
		default:
			s, ok := target.(string)
			if !ok {
				return nil, errors.NewValidationError("targets", "token expected", target)
			}
			tokens = append(tokens, s)
		}
	}

	unique := make(map[string]struct{}, len(tokens))
	distinct := make([]string, 0, len(tokens))
	for _, t := range tokens {
		t = strip(t)
		if _, ok := unique[t]; ok {
			continue
		}
		unique[t] = struct{}{}
		distinct = append(distinct, t)
	}
	return sortedAlphanumeric(distinct), nil
}
