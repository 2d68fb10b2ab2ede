package classification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	taskerrors "github.com/taskml/taskdata/pkg/errors"
)

func TestTargetModeOf(t *testing.T) {
	tests := []struct {
		name   string
		target any
		want   TargetMode
	}{
		{name: "Single token", target: "ants", want: SingleToken},
		{name: "Single token with surrounding commas", target: ",ants,", want: SingleToken},
		{name: "Comma delimited", target: "ants,bees", want: MultiCommaDelimited},
		{name: "Space delimited", target: "ants bees", want: MultiSpaceDelimited},
		{name: "Token list", target: []string{"ants", "bees"}, want: MultiToken},
		{name: "Token list single element", target: []string{"ants"}, want: MultiToken},
		{name: "Numeric list", target: []int{0, 3}, want: MultiNumeric},
		{name: "Float numeric list", target: []float64{0.5, 2}, want: MultiNumeric},
		{name: "One-hot vector", target: []int{1, 0}, want: SingleBinary},
		{name: "One-hot vector wide", target: []int{0, 1, 0}, want: SingleBinary},
		{name: "Multi-hot vector", target: []int{1, 1}, want: MultiBinary},
		{name: "Multi-hot float vector", target: []float64{1, 0, 1}, want: MultiBinary},
		{name: "All-zero vector", target: []int{0, 0}, want: MultiBinary},
		{name: "Scalar int", target: 3, want: SingleNumeric},
		{name: "Scalar float", target: 2.0, want: SingleNumeric},
		{name: "Single-element binary list", target: []int{1}, want: SingleNumeric},
		{name: "Single-element numeric list", target: []int{0}, want: SingleNumeric},
		{name: "Empty list", target: []int{}, want: SingleNumeric},
		{name: "Mixed any list of numbers", target: []any{0, 1, 2}, want: MultiNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TargetModeOf(tt.target))
		})
	}
}

func TestTargetModeFacets(t *testing.T) {
	tests := []struct {
		mode       TargetMode
		multiLabel bool
		numeric    bool
		binary     bool
	}{
		{MultiToken, true, false, false},
		{MultiNumeric, true, true, false},
		{MultiCommaDelimited, true, false, false},
		{MultiSpaceDelimited, true, false, false},
		{MultiBinary, true, false, true},
		{SingleToken, false, false, false},
		{SingleNumeric, false, true, false},
		{SingleBinary, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			assert.Equal(t, tt.multiLabel, tt.mode.MultiLabel())
			assert.Equal(t, tt.numeric, tt.mode.Numeric())
			assert.Equal(t, tt.binary, tt.mode.Binary())
		})
	}
}

func TestResolveTargetModes(t *testing.T) {
	tests := []struct {
		name    string
		a, b    TargetMode
		want    TargetMode
		wantErr bool
	}{
		{name: "Identical", a: SingleToken, b: SingleToken, want: SingleToken},
		{name: "Token into comma delimited", a: SingleToken, b: MultiCommaDelimited, want: MultiCommaDelimited},
		{name: "Comma delimited absorbs token", a: MultiCommaDelimited, b: SingleToken, want: MultiCommaDelimited},
		{name: "Token into space delimited", a: SingleToken, b: MultiSpaceDelimited, want: MultiSpaceDelimited},
		{name: "Single binary into multi binary", a: SingleBinary, b: MultiBinary, want: MultiBinary},
		{name: "Single binary into multi numeric", a: SingleBinary, b: MultiNumeric, want: MultiNumeric},
		{name: "Multi binary into multi numeric", a: MultiBinary, b: MultiNumeric, want: MultiNumeric},
		{name: "Single numeric into multi numeric", a: SingleNumeric, b: MultiNumeric, want: MultiNumeric},
		{name: "Token vs numeric conflicts", a: SingleToken, b: SingleNumeric, wantErr: true},
		{name: "Comma vs space conflicts", a: MultiCommaDelimited, b: MultiSpaceDelimited, wantErr: true},
		{name: "Token vs binary conflicts", a: SingleToken, b: MultiBinary, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveTargetModes(tt.a, tt.b)
			if tt.wantErr {
				require.Error(t, err)
				var inconsistent *taskerrors.InconsistentTargetsError
				assert.True(t, taskerrors.As(err, &inconsistent))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetTargetMode(t *testing.T) {
	tests := []struct {
		name    string
		targets []any
		want    TargetMode
		wantErr bool
	}{
		{name: "Uniform tokens", targets: []any{"a", "b", "c"}, want: SingleToken},
		{name: "Tokens merge into comma delimited", targets: []any{"a,b", "c"}, want: MultiCommaDelimited},
		{name: "Tokens merge into space delimited", targets: []any{"a", "b c"}, want: MultiSpaceDelimited},
		{name: "Uniform multi binary", targets: []any{[]int{1, 0}, []int{0, 1}, []int{1, 1}}, want: MultiBinary},
		{name: "One-hot rows stay single binary", targets: []any{[]int{1, 0}, []int{0, 1}}, want: SingleBinary},
		{name: "Numeric scalars", targets: []any{0, 1, 2}, want: SingleNumeric},
		{name: "Scalar merges into index lists", targets: []any{1, []int{0, 2}}, want: MultiNumeric},
		{name: "Binary rows merge into index lists", targets: []any{[]int{1, 1}, []int{0, 2}}, want: MultiNumeric},
		{name: "Tokens and numbers conflict", targets: []any{"a", 1}, wantErr: true},
		{name: "Empty", targets: []any{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetTargetMode(tt.targets)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Reduction over a valid dataset must not depend on target order.
func TestGetTargetModeOrderIndependent(t *testing.T) {
	orders := [][]any{
		{"a,b", "c", "d"},
		{"c", "a,b", "d"},
		{"d", "c", "a,b"},
	}
	for _, targets := range orders {
		got, err := GetTargetMode(targets)
		require.NoError(t, err)
		assert.Equal(t, MultiCommaDelimited, got)
	}
}

func TestGetTargetModeWarnsOnMerge(t *testing.T) {
	var captured []error
	taskerrors.SetWarningHandler(func(w error) { captured = append(captured, w) })
	defer taskerrors.SetWarningHandler(nil)

	_, err := GetTargetMode([]any{"a,b", "c"})
	require.NoError(t, err)
	require.Len(t, captured, 1)

	var warning *taskerrors.MixedTargetModesWarning
	require.True(t, taskerrors.As(captured[0], &warning))
	assert.Equal(t, "multi_comma_delimited", warning.Resolved)
}
