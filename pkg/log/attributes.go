// Package log defines standard attribute keys for data-loading operations.
//
// Using these keys consistently keeps logs from the input layer and the
// target normalization engine filterable by the same fields. The keys follow
// a hierarchical dotted convention ("data.samples", "target.mode") to enable
// structured log analysis.

package log

// Stage and operation context.
const (
	// StageKey is the running stage an input is bound to.
	// Values: "train", "validate", "test", "predict", "serve".
	StageKey = "stage"

	// OperationKey names the data operation being performed.
	// Standard values: "load_data", "load_sample", "fit_target_metadata",
	// "format_target".
	OperationKey = "data.operation"

	// InputTypeKey identifies the input implementation.
	// Examples: "Input", "IterableInput", "ServeInput", "ListInput".
	InputTypeKey = "input.type"
)

// Data shape and target statistics.
const (
	// SamplesKey is the number of samples in a loaded collection.
	SamplesKey = "data.samples"

	// TargetModeKey is the resolved TargetMode of a target list.
	// Examples: "single_token", "multi_comma_delimited".
	TargetModeKey = "target.mode"

	// NumClassesKey is the class count derived from the training targets.
	NumClassesKey = "target.num_classes"

	// LabelsKey is the label vocabulary derived from the training targets.
	LabelsKey = "target.labels"

	// FormatterKey names the TargetFormatter selected for a dataset.
	// Examples: "SingleLabelTargetFormatter", "OneHotTargetFormatter".
	FormatterKey = "target.formatter"
)

// Performance.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)
