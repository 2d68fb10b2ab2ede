package input

// DataKey is one of the recognized keys of a sample. Components producing or
// consuming samples must use exactly this key set.
type DataKey string

const (
	// KeyInput holds the raw input of a sample (file path, tensor, text, ...).
	KeyInput DataKey = "input"

	// KeyTarget holds the sample's target. Present iff the input was
	// constructed with targets supplied.
	KeyTarget DataKey = "target"

	// KeyPreds holds inference-time predictions.
	KeyPreds DataKey = "preds"

	// KeyMetadata holds any additional per-sample metadata.
	KeyMetadata DataKey = "metadata"
)

// Sample is a single record flowing through an input.
type Sample map[DataKey]any

// Clone returns a shallow copy of the sample. Loading hooks receive clones so
// in-place mutation inside a hook never corrupts the stored source.
func (s Sample) Clone() Sample {
	if s == nil {
		return nil
	}
	out := make(Sample, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Target returns the sample's target and whether one is present.
func (s Sample) Target() (any, bool) {
	t, ok := s[KeyTarget]
	return t, ok
}

// ToSamples packages a list of inputs and, optionally, a list of targets into
// samples. When targets is nil the samples carry no target key.
func ToSamples(inputs []any, targets []any) Samples {
	samples := make(Samples, len(inputs))
	if targets == nil {
		for i, in := range inputs {
			samples[i] = Sample{KeyInput: in}
		}
		return samples
	}
	for i, in := range inputs {
		samples[i] = Sample{KeyInput: in, KeyTarget: targets[i]}
	}
	return samples
}
