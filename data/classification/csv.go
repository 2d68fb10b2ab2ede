package classification

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/taskml/taskdata/core/stage"
	"github.com/taskml/taskdata/data/input"
	"github.com/taskml/taskdata/data/state"
	"github.com/taskml/taskdata/pkg/errors"
)

// CSVInput reads one split of a dataset from CSV. The first row is the
// header. A single target column yields raw string targets (tokens,
// comma-delimited strings, ...); multiple target columns yield binary target
// vectors whose labels are the column names, the way data-frame sources
// expose multi-hot targets. No target columns yield unlabeled samples.
type CSVInput struct {
	*input.Input
	resolver *Resolver
}

// NewCSVInput constructs a CSVInput for one split of a dataset.
func NewCSVInput(rs stage.RunningStage, store *state.Store, r io.Reader, inputCol string, targetCols []string) (*CSVInput, error) {
	resolver := NewResolver(rs, store)

	loadData := func(args ...any) (any, error) {
		reader := args[0].(io.Reader)
		inputs, targets, err := readCSV(reader, inputCol, targetCols)
		if err != nil {
			return nil, err
		}
		if targets != nil && rs.Canonical() != stage.Predicting {
			if err := resolver.LoadTargetMetadata(targets); err != nil {
				return nil, err
			}
			// Binary multi-class targets carry their labels in the header.
			if resolver.Metadata().Mode == MultiBinary && len(targetCols) > 1 {
				resolver.SetLabels(targetCols)
			}
			return input.ToSamples(inputs, targets), nil
		}
		return input.ToSamples(inputs, nil), nil
	}

	hooks := input.Hooks{
		LoadData:   loadData,
		LoadSample: formatTargetHook(resolver),
	}

	in, err := input.New(rs, hooks, r)
	if err != nil {
		return nil, err
	}
	return &CSVInput{Input: in, resolver: resolver}, nil
}

// Resolver exposes the split's target metadata resolver.
func (in *CSVInput) Resolver() *Resolver { return in.resolver }

func readCSV(r io.Reader, inputCol string, targetCols []string) (inputs []any, targets []any, err error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read csv")
	}
	if len(records) == 0 {
		return nil, nil, errors.Wrap(errors.ErrEmptyData, "readCSV")
	}

	header := records[0]
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}

	inputIdx, ok := columns[inputCol]
	if !ok {
		return nil, nil, errors.NewValidationError("inputCol", "column not found in header", inputCol)
	}
	targetIdxs := make([]int, len(targetCols))
	for i, name := range targetCols {
		idx, ok := columns[name]
		if !ok {
			return nil, nil, errors.NewValidationError("targetCols", "column not found in header", name)
		}
		targetIdxs[i] = idx
	}

	for _, record := range records[1:] {
		inputs = append(inputs, record[inputIdx])
		switch len(targetIdxs) {
		case 0:
		case 1:
			targets = append(targets, record[targetIdxs[0]])
		default:
			vec := make([]int, len(targetIdxs))
			for i, idx := range targetIdxs {
				bit, err := strconv.Atoi(record[idx])
				if err != nil {
					return nil, nil, errors.NewValidationError("targetCols",
						"binary target column must hold integers", record[idx])
				}
				vec[i] = bit
			}
			targets = append(targets, vec)
		}
	}
	return inputs, targets, nil
}
