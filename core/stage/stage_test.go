package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluating(t *testing.T) {
	assert.True(t, Validating.Evaluating())
	assert.True(t, Testing.Evaluating())
	assert.False(t, Training.Evaluating())
	assert.False(t, Predicting.Evaluating())
	assert.False(t, SanityChecking.Evaluating())
}

func TestDataloaderPrefix(t *testing.T) {
	tests := []struct {
		stage RunningStage
		want  string
	}{
		{Training, "train"},
		{Validating, "val"},
		{Testing, "test"},
		{Predicting, "predict"},
		{Serving, "serve"},
		{SanityChecking, ""},
		{Tuning, ""},
	}
	for _, tt := range tests {
		t.Run(tt.stage.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.stage.DataloaderPrefix())
		})
	}
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, Validating, SanityChecking.Canonical())
	for _, s := range []RunningStage{Training, Validating, Testing, Predicting, Serving, Tuning} {
		assert.Equal(t, s, s.Canonical())
	}
}

func TestParse(t *testing.T) {
	s, err := Parse("train")
	require.NoError(t, err)
	assert.Equal(t, Training, s)

	_, err = Parse("fit")
	assert.Error(t, err)

	assert.False(t, RunningStage("fit").Valid())
}
