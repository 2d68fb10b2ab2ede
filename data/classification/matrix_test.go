package classification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestFormatTargets(t *testing.T) {
	f := NewSingleLabelTargetFormatter([]string{"ants", "bees"})

	got, err := FormatTargets(f, []any{"bees", "ants"})
	require.NoError(t, err)
	assert.Equal(t, []any{1, 0}, got)

	_, err = FormatTargets(f, []any{"wasps"})
	require.Error(t, err)
}

func TestFormatMatrixScalarIndices(t *testing.T) {
	f := NewSingleLabelTargetFormatter([]string{"ants", "bees", "wasps"})

	dense, err := FormatMatrix(f, []any{"bees", "ants", "wasps"}, 3)
	require.NoError(t, err)

	want := mat.NewDense(3, 3, []float64{
		0, 1, 0,
		1, 0, 0,
		0, 0, 1,
	})
	assert.True(t, mat.Equal(want, dense))
}

func TestFormatMatrixMultiHotRows(t *testing.T) {
	f := NewCommaDelimitedTargetFormatter([]string{"ants", "bees"})

	dense, err := FormatMatrix(f, []any{"ants,bees", "bees"}, 2)
	require.NoError(t, err)

	want := mat.NewDense(2, 2, []float64{
		1, 1,
		0, 1,
	})
	assert.True(t, mat.Equal(want, dense))
}

func TestFormatMatrixValidation(t *testing.T) {
	f := NewSingleLabelTargetFormatter([]string{"ants"})

	_, err := FormatMatrix(f, nil, 1)
	require.Error(t, err)

	_, err = FormatMatrix(f, []any{"ants"}, 0)
	require.Error(t, err)
}
