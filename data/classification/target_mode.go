// Package classification implements the target normalization engine: it
// infers the canonical shape of a dataset's raw labels (TargetMode), derives
// the label vocabulary and class count from the training targets, and builds
// the TargetFormatter that maps every later raw label into the numeric
// representation expected by a loss function.
//
// Statistics are inferred once, from training data, and reapplied verbatim on
// the validation, test and predict splits through a shared state store.
package classification

import (
	"sort"
	"strings"

	"github.com/taskml/taskdata/pkg/errors"
)

// TargetMode describes the supported shapes for raw targets.
type TargetMode int

const (
	// MultiToken is a list of label strings, e.g. ["blue", "green"].
	MultiToken TargetMode = iota

	// MultiNumeric is a list of class indices, e.g. [0, 1].
	MultiNumeric

	// MultiCommaDelimited is a comma-delimited label string, e.g. "blue,green".
	MultiCommaDelimited

	// MultiSpaceDelimited is a space-delimited label string, e.g. "blue green".
	MultiSpaceDelimited

	// MultiBinary is a multi-hot binary vector, e.g. [1, 1, 0].
	MultiBinary

	// SingleToken is a single label string, e.g. "blue".
	SingleToken

	// SingleNumeric is a single class index, e.g. 2.
	SingleNumeric

	// SingleBinary is a one-hot binary vector, e.g. [0, 1, 0].
	SingleBinary
)

var targetModeNames = map[TargetMode]string{
	MultiToken:          "multi_token",
	MultiNumeric:        "multi_numeric",
	MultiCommaDelimited: "multi_comma_delimited",
	MultiSpaceDelimited: "multi_space_delimited",
	MultiBinary:         "multi_binary",
	SingleToken:         "single_token",
	SingleNumeric:       "single_numeric",
	SingleBinary:        "single_binary",
}

// String returns the snake_case name of the mode.
func (m TargetMode) String() string {
	if name, ok := targetModeNames[m]; ok {
		return name
	}
	return "unknown"
}

// MultiLabel reports whether the mode describes multi-label targets.
func (m TargetMode) MultiLabel() bool {
	switch m {
	case MultiToken, MultiNumeric, MultiCommaDelimited, MultiSpaceDelimited, MultiBinary:
		return true
	}
	return false
}

// Numeric reports whether the mode describes targets given as class indices.
func (m TargetMode) Numeric() bool {
	return m == MultiNumeric || m == SingleNumeric
}

// Binary reports whether the mode describes targets given as binary vectors.
func (m TargetMode) Binary() bool {
	return m == MultiBinary || m == SingleBinary
}

// strip trims surrounding commas and spaces from a label.
func strip(s string) string {
	return strings.Trim(s, ", ")
}

// TargetModeOf determines the TargetMode of a single raw target. The
// classification is total: anything that matches no other rule is
// SingleNumeric.
//
// Multi-label targets can be:
//   - a comma-delimited string, MultiCommaDelimited (e.g. "blue,green")
//   - a list of strings, MultiToken (e.g. []any{"blue", "green"})
//   - a list of numbers, MultiNumeric (e.g. []int{0, 1})
//   - a binary list, MultiBinary (e.g. []int{1, 1, 0})
//
// Single-label targets can be:
//   - a single string, SingleToken (e.g. "blue")
//   - a single number, SingleNumeric (e.g. 2)
//   - a one-hot binary list, SingleBinary (e.g. []int{0, 1, 0})
//
// Note that a single-element numeric list degrades to SingleNumeric: the
// binary rules only apply to lists longer than one element.
func TargetModeOf(target any) TargetMode {
	if s, ok := target.(string); ok {
		s = strip(s)
		// Splitting on literal commas/spaces is a heuristic: a label that
		// itself contains either character is read as multi-label.
		if strings.Contains(s, ",") {
			return MultiCommaDelimited
		}
		if strings.Contains(s, " ") {
			return MultiSpaceDelimited
		}
		return SingleToken
	}
	if elems, ok := listElems(target); ok {
		if _, isStr := elems[0].(string); isStr {
			return MultiToken
		}
		if len(elems) > 1 {
			if sum, binary := binarySum(elems); binary {
				if sum == 1 {
					return SingleBinary
				}
				return MultiBinary
			}
			return MultiNumeric
		}
	}
	return SingleNumeric
}

// listElems returns the elements of a list-like target. Scalars and empty
// lists are not list-like.
func listElems(target any) ([]any, bool) {
	switch v := target.(type) {
	case []any:
		if len(v) == 0 {
			return nil, false
		}
		return v, true
	case []string:
		if len(v) == 0 {
			return nil, false
		}
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	case []int:
		if len(v) == 0 {
			return nil, false
		}
		out := make([]any, len(v))
		for i, n := range v {
			out[i] = n
		}
		return out, true
	case []float64:
		if len(v) == 0 {
			return nil, false
		}
		out := make([]any, len(v))
		for i, f := range v {
			out[i] = f
		}
		return out, true
	}
	return nil, false
}

// binarySum reports whether every element is exactly 0 or 1 and, if so, the
// element sum.
func binarySum(elems []any) (sum int, binary bool) {
	for _, e := range elems {
		f, ok := toFloat(e)
		if !ok || (f != 0 && f != 1) {
			return 0, false
		}
		sum += int(f)
	}
	return sum, true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// resolutionMapping is the closed set of allowed mode merges: a key mode may
// resolve to any of the listed more general modes.
var resolutionMapping = map[TargetMode][]TargetMode{
	MultiBinary:   {MultiNumeric},
	SingleBinary:  {MultiBinary, MultiNumeric},
	SingleToken:   {MultiCommaDelimited, MultiSpaceDelimited},
	SingleNumeric: {MultiNumeric},
}

// resolveTargetModes merges the modes of two targets observed in one list.
// Identical modes resolve to themselves; otherwise the more general mode wins
// when the pair appears in the resolution mapping.
func resolveTargetModes(a, b TargetMode) (TargetMode, error) {
	if a == b {
		return a, nil
	}
	for _, m := range resolutionMapping[a] {
		if m == b {
			return b, nil
		}
	}
	for _, m := range resolutionMapping[b] {
		if m == a {
			return a, nil
		}
	}
	return 0, errors.NewInconsistentTargetsError(a.String(), b.String())
}

// GetTargetMode classifies every target in the list and reduces the result
// to the single mode of the whole dataset. A dataset that mixes
// irreconcilable shapes (e.g. numeric scalars with token strings) is an
// error. When multiple distinct shapes merge successfully a
// MixedTargetModesWarning is raised once.
func GetTargetMode(targets []any) (TargetMode, error) {
	if len(targets) == 0 {
		return 0, errors.NewValueError("GetTargetMode", "no targets provided")
	}

	mode := TargetModeOf(targets[0])
	observed := map[TargetMode]struct{}{mode: {}}
	for _, target := range targets[1:] {
		next := TargetModeOf(target)
		observed[next] = struct{}{}
		resolved, err := resolveTargetModes(mode, next)
		if err != nil {
			return 0, err
		}
		mode = resolved
	}

	if len(observed) > 1 {
		names := make([]string, 0, len(observed))
		for m := range observed {
			names = append(names, m.String())
		}
		sort.Strings(names)
		errors.Warn(errors.NewMixedTargetModesWarning(names, mode.String()))
	}
	return mode, nil
}
