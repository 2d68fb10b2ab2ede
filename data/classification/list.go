package classification

import (
	"github.com/taskml/taskdata/core/stage"
	"github.com/taskml/taskdata/data/input"
	"github.com/taskml/taskdata/data/state"
)

// formatTargetHook returns a LoadSample hook that normalizes the sample's
// target with the resolver's formatter. Samples without a target pass
// through unchanged.
func formatTargetHook(r *Resolver) input.LoadSampleFunc {
	return func(sample input.Sample) (input.Sample, error) {
		if target, ok := sample.Target(); ok {
			formatted, err := r.FormatTarget(target)
			if err != nil {
				return nil, err
			}
			sample[input.KeyTarget] = formatted
		}
		return sample, nil
	}
}

// ListInput feeds in-memory inputs and raw targets through the target
// normalization engine. On the training stage the label statistics are
// derived and published to the shared store; validation and test reuse them;
// predict ignores targets entirely.
type ListInput struct {
	*input.Input
	resolver *Resolver
}

// NewListInput constructs a ListInput for one split of a dataset. inputs and
// targets are parallel lists; pass nil targets for unlabeled data.
func NewListInput(rs stage.RunningStage, store *state.Store, inputs []any, targets []any) (*ListInput, error) {
	resolver := NewResolver(rs, store)

	hooks := input.Hooks{
		LoadData: func(args ...any) (any, error) {
			ins := args[0].([]any)
			tgts, _ := args[1].([]any)
			if tgts != nil {
				if err := resolver.LoadTargetMetadata(tgts); err != nil {
					return nil, err
				}
			}
			return input.ToSamples(ins, tgts), nil
		},
		LoadSample: formatTargetHook(resolver),
		StageLoadData: map[stage.RunningStage]input.LoadDataFunc{
			// Predicting never has usable targets, even if some were passed.
			stage.Predicting: func(args ...any) (any, error) {
				return input.ToSamples(args[0].([]any), nil), nil
			},
		},
		StageLoadSample: map[stage.RunningStage]input.LoadSampleFunc{
			stage.Predicting: func(sample input.Sample) (input.Sample, error) {
				return sample, nil
			},
		},
	}

	in, err := input.New(rs, hooks, inputs, targets)
	if err != nil {
		return nil, err
	}
	return &ListInput{Input: in, resolver: resolver}, nil
}

// Resolver exposes the split's target metadata resolver.
func (in *ListInput) Resolver() *Resolver { return in.resolver }
