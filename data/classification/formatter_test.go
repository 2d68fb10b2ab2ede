package classification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	taskerrors "github.com/taskml/taskdata/pkg/errors"
)

func TestSingleLabelTargetFormatter(t *testing.T) {
	f := NewSingleLabelTargetFormatter([]string{"ants", "bees"})

	got, err := f.Format("ants")
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = f.Format("bees")
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	// Labels arriving in a single-element container unwrap first.
	got, err = f.Format([]string{"bees"})
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	// Surrounding commas/spaces are trimmed before lookup.
	got, err = f.Format(" bees,")
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestSingleLabelTargetFormatterUnknownLabel(t *testing.T) {
	f := NewSingleLabelTargetFormatter([]string{"ants", "bees"})

	_, err := f.Format("wasps")
	require.Error(t, err)

	var unknown *taskerrors.UnknownLabelError
	require.True(t, taskerrors.As(err, &unknown))
	assert.Equal(t, "wasps", unknown.Label)
	assert.Equal(t, []string{"ants", "bees"}, unknown.Vocabulary)
}

func TestMultiLabelTargetFormatter(t *testing.T) {
	f := NewMultiLabelTargetFormatter([]string{"ants", "bees"})

	got, err := f.Format([]any{"ants"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, got)

	got, err = f.Format([]string{"bees", "ants"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, got)

	_, err = f.Format([]string{"wasps"})
	require.Error(t, err)
}

func TestDelimitedTargetFormatters(t *testing.T) {
	comma := NewCommaDelimitedTargetFormatter([]string{"ants", "bees"})
	got, err := comma.Format("ants,bees")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, got)

	got, err = comma.Format("bees")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, got)

	space := NewSpaceDelimitedTargetFormatter([]string{"ants", "bees"})
	got, err = space.Format("ants bees")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, got)

	_, err = comma.Format(42)
	require.Error(t, err)
}

func TestMultiNumericTargetFormatter(t *testing.T) {
	f := MultiNumericTargetFormatter{NumClasses: 4}

	got, err := f.Format([]int{0, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 1, 0}, got)

	got, err = f.Format([]int{3})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 1}, got)

	_, err = f.Format([]int{4})
	require.Error(t, err)
	var unknown *taskerrors.UnknownClassError
	require.True(t, taskerrors.As(err, &unknown))
}

func TestOneHotTargetFormatter(t *testing.T) {
	f := OneHotTargetFormatter{}

	got, err := f.Format([]int{0, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	// No set bit decodes to index 0.
	got, err = f.Format([]int{0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestSingleNumericTargetFormatter(t *testing.T) {
	f := SingleNumericTargetFormatter{}

	got, err := f.Format(2)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	got, err = f.Format([]int{3})
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	got, err = f.Format(1.0)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestPassthroughTargetFormatter(t *testing.T) {
	f := PassthroughTargetFormatter{}

	got, err := f.Format([]int{1, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 1}, got)
}

// A constructed formatter holds no hidden mutable state: formatting the same
// raw target twice yields the same normalized value.
func TestFormatterIdempotence(t *testing.T) {
	tests := []struct {
		name      string
		formatter TargetFormatter
		target    any
	}{
		{name: "Single label", formatter: NewSingleLabelTargetFormatter([]string{"a", "b"}), target: "b"},
		{name: "Multi label", formatter: NewMultiLabelTargetFormatter([]string{"a", "b"}), target: []string{"a"}},
		{name: "Comma delimited", formatter: NewCommaDelimitedTargetFormatter([]string{"a", "b"}), target: "a,b"},
		{name: "Multi numeric", formatter: MultiNumericTargetFormatter{NumClasses: 3}, target: []int{1}},
		{name: "One hot", formatter: OneHotTargetFormatter{}, target: []int{0, 1}},
		{name: "Single numeric", formatter: SingleNumericTargetFormatter{}, target: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, err := tt.formatter.Format(tt.target)
			require.NoError(t, err)
			second, err := tt.formatter.Format(tt.target)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestGetTargetFormatter(t *testing.T) {
	labels := []string{"ants", "bees"}
	tests := []struct {
		mode TargetMode
		want TargetFormatter
	}{
		{mode: MultiBinary, want: PassthroughTargetFormatter{}},
		{mode: SingleNumeric, want: SingleNumericTargetFormatter{}},
		{mode: SingleBinary, want: OneHotTargetFormatter{}},
		{mode: MultiNumeric, want: MultiNumericTargetFormatter{NumClasses: 2}},
		{mode: SingleToken, want: NewSingleLabelTargetFormatter(labels)},
		{mode: MultiCommaDelimited, want: NewCommaDelimitedTargetFormatter(labels)},
		{mode: MultiSpaceDelimited, want: NewSpaceDelimitedTargetFormatter(labels)},
		{mode: MultiToken, want: NewMultiLabelTargetFormatter(labels)},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			got := GetTargetFormatter(tt.mode, labels, 2)
			assert.IsType(t, tt.want, got)
		})
	}
}
