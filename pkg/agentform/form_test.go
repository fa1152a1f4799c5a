package agentform

import (
	"errors"
	"testing"

	"github.com/germanamz/agentdesk/pkg/weights"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAgent() Agent {
	return Agent{
		ID:          "resume-screener",
		Name:        "Resume Screener",
		Role:        "Screening",
		Description: "Scores incoming resumes",
		Model:       "gpt-4o",
		Parameters: []weights.Parameter{
			{ID: "A", Name: "Experience", Value: "5+ years", Weight: 40},
			{ID: "B", Name: "Skills", Value: "Go", Weight: 30},
			{ID: "C", Name: "Education", Value: "BSc", Weight: 30},
		},
	}
}

func TestValid(t *testing.T) {
	f := New(sampleAgent())

	assert.Equal(t, 100, f.Weights.Total())
	assert.True(t, f.Valid())
	assert.Empty(t, f.Problems())
}

func TestValid_EmptyRequiredField(t *testing.T) {
	tests := []struct {
		name  string
		clear func(*Form)
		want  string
	}{
		{"name", func(f *Form) { f.Name = "" }, "Name is required"},
		{"role", func(f *Form) { f.Role = "  " }, "Role is required"},
		{"description", func(f *Form) { f.Description = "" }, "Description is required"},
		{"model", func(f *Form) { f.Model = "" }, "Model is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(sampleAgent())
			tt.clear(f)

			assert.Equal(t, 100, f.Weights.Total())
			assert.False(t, f.Valid())
			assert.Contains(t, f.Problems(), tt.want)
		})
	}
}

func TestValid_WeightChangeEndToEnd(t *testing.T) {
	f := New(sampleAgent())
	require.True(t, f.Valid())

	f.Weights.SetWeight("B", 20)

	assert.Equal(t, 90, f.Weights.Total())
	assert.False(t, f.Valid())
	assert.Len(t, f.Problems(), 1)
}

func TestSave_InvalidDoesNotCallback(t *testing.T) {
	f := New(sampleAgent())
	f.Weights.SetWeight("A", 10)

	called := false
	saved, err := f.Save(func(Agent) error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.False(t, saved)
	assert.False(t, called)
}

func TestSave_Valid(t *testing.T) {
	f := New(sampleAgent())
	f.Name = "  Resume Screener v2 "
	p := f.Weights.Add()
	f.Weights.SetName(p.ID, "Location")
	f.Weights.SetWeight("C", 20)
	f.Weights.SetWeight(p.ID, 10)

	var got Agent
	saved, err := f.Save(func(a Agent) error {
		got = a
		return nil
	})

	require.NoError(t, err)
	assert.True(t, saved)
	assert.Equal(t, "Resume Screener v2", got.Name)
	assert.Equal(t, "resume-screener", got.ID)
	require.Len(t, got.Parameters, 4)
	assert.Equal(t, "Location", got.Parameters[3].Name)
}

func TestSave_CallbackError(t *testing.T) {
	f := New(sampleAgent())
	boom := errors.New("boom")

	saved, err := f.Save(func(Agent) error { return boom })

	assert.False(t, saved)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestSnapshot_DoesNotAliasEditor(t *testing.T) {
	f := New(sampleAgent())

	snap := f.Snapshot()
	snap.Parameters[0].Weight = 0

	assert.Equal(t, 100, f.Weights.Total())
}

func TestZeroForm(t *testing.T) {
	var f Form

	require.NotPanics(t, func() { f.Problems() })
	assert.False(t, f.Valid())
	assert.Contains(t, f.Problems(), "Total weight must equal 100% (currently 0%)")
	assert.Empty(t, f.Snapshot().Parameters)
	require.NotNil(t, f.Weights)

	called := false
	saved, err := f.Save(func(Agent) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.False(t, saved)
	assert.False(t, called)
}
