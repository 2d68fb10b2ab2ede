package classification

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/taskml/taskdata/core/stage"
	"github.com/taskml/taskdata/data/state"
	"github.com/taskml/taskdata/pkg/errors"
	"github.com/taskml/taskdata/pkg/log"
)

// StateKey is the key under which the derived classification parameters are
// published in the shared state store.
const StateKey = "classification"

func init() {
	state.Register(Metadata{})
}

// Metadata holds the parameters derived once from the training targets and
// shared read-only with every other split of the same logical dataset.
type Metadata struct {
	Labels     []string
	NumClasses int
	Mode       TargetMode
}

// Resolver binds the target normalization engine to one split of a dataset.
// On the training split it derives the label statistics and publishes them to
// the shared store; on every other split it reads the published parameters
// and reapplies them verbatim.
type Resolver struct {
	Stage stage.RunningStage
	Store *state.Store

	metadata  Metadata
	formatter TargetFormatter
}

// NewResolver creates a Resolver for the given stage backed by the given
// shared store.
func NewResolver(rs stage.RunningStage, store *state.Store) *Resolver {
	return &Resolver{Stage: rs, Store: store}
}

// LoadTargetMetadata classifies the raw targets of this split and prepares
// the formatter. Call it once, from the LoadData hook, before any sample is
// accessed.
//
// A non-training split whose store holds no classification state is an
// error: either co-construct the training split first or load the saved
// parameters into the store explicitly.
func (r *Resolver) LoadTargetMetadata(targets []any) error {
	started := time.Now()

	mode, err := GetTargetMode(targets)
	if err != nil {
		return err
	}

	if r.Stage.Canonical() == stage.Training {
		labels, numClasses, err := GetTargetDetails(targets, mode)
		if err != nil {
			return err
		}
		r.metadata = Metadata{Labels: labels, NumClasses: numClasses, Mode: mode}
		r.Store.Set(StateKey, r.metadata)
	} else {
		saved, ok := r.Store.Get(StateKey)
		if !ok {
			return errors.NewMissingStateError("classification state", r.Stage.String())
		}
		meta := saved.(Metadata)
		r.metadata = Metadata{Labels: meta.Labels, NumClasses: meta.NumClasses, Mode: mode}
	}

	r.formatter = GetTargetFormatter(mode, r.metadata.Labels, r.metadata.NumClasses)

	slog.Debug("target metadata resolved",
		slog.String(log.StageKey, r.Stage.String()),
		slog.String(log.OperationKey, "fit_target_metadata"),
		slog.Int(log.SamplesKey, len(targets)),
		slog.String(log.TargetModeKey, mode.String()),
		slog.Int(log.NumClassesKey, r.metadata.NumClasses),
		slog.String(log.FormatterKey, fmt.Sprintf("%T", r.formatter)),
		slog.Int64(log.DurationMsKey, time.Since(started).Milliseconds()),
	)
	return nil
}

// SetLabels overrides the vocabulary after metadata resolution. Data-frame
// style sources use it for binary multi-class targets, where the labels are
// known to be the target column names.
func (r *Resolver) SetLabels(labels []string) {
	r.metadata.Labels = labels
	if r.Stage.Canonical() == stage.Training {
		r.Store.Set(StateKey, r.metadata)
	}
}

// Metadata returns the resolved parameters of this split.
func (r *Resolver) Metadata() Metadata {
	return r.metadata
}

// Formatter returns the prepared formatter, or nil before LoadTargetMetadata
// has run.
func (r *Resolver) Formatter() TargetFormatter {
	return r.formatter
}

// FormatTarget normalizes one raw target with the prepared formatter.
func (r *Resolver) FormatTarget(target any) (any, error) {
	if r.formatter == nil {
		return nil, errors.NewMissingStateError("target formatter", r.Stage.String())
	}
	return r.formatter.Format(target)
}
