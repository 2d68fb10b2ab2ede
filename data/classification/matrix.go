package classification

import (
	"gonum.org/v1/gonum/mat"

	"github.com/taskml/taskdata/pkg/errors"
)

// FormatTargets normalizes every target in the list with the given formatter.
func FormatTargets(f TargetFormatter, targets []any) ([]any, error) {
	out := make([]any, len(targets))
	for i, target := range targets {
		v, err := f.Format(target)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// FormatMatrix normalizes every target and assembles the results into a dense
// one-hot/multi-hot matrix with one row per target and numClasses columns,
// the representation gonum-based estimators consume directly. Scalar class
// indices become one-hot rows; vector results are copied as-is and must have
// width numClasses.
func FormatMatrix(f TargetFormatter, targets []any, numClasses int) (*mat.Dense, error) {
	if len(targets) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "FormatMatrix")
	}
	if numClasses <= 0 {
		return nil, errors.NewValidationError("numClasses", "must be positive", numClasses)
	}

	dense := mat.NewDense(len(targets), numClasses, nil)
	for i, target := range targets {
		formatted, err := f.Format(target)
		if err != nil {
			return nil, err
		}
		switch v := formatted.(type) {
		case int:
			if v < 0 || v >= numClasses {
				return nil, errors.NewUnknownClassError(v, numClasses)
			}
			dense.Set(i, v, 1)
		case []int:
			if len(v) != numClasses {
				return nil, errors.NewInconsistentWidthError(i, numClasses, len(v))
			}
			for j, bit := range v {
				dense.Set(i, j, float64(bit))
			}
		case []float64:
			if len(v) != numClasses {
				return nil, errors.NewInconsistentWidthError(i, numClasses, len(v))
			}
			dense.SetRow(i, v)
		default:
			return nil, errors.NewValidationError("target", "formatted target is neither index nor vector", formatted)
		}
	}
	return dense, nil
}
