package catalog

import (
	"testing"

	"github.com/germanamz/agentdesk/pkg/agentform"
	"github.com/germanamz/agentdesk/pkg/weights"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Len(t, c.Agents(), 4)
	assert.Len(t, c.Projects(), 3)

	for _, a := range c.Agents() {
		assert.Contains(t, Models(), a.Model, a.ID)
		if a.Status != AgentDraft {
			assert.Equal(t, 100, TotalWeight(a), a.ID)
		}
	}
}

func TestDefaultParametersBalanced(t *testing.T) {
	assert.True(t, weights.NewEditor(DefaultParameters()...).Balanced())
}

func TestAgent(t *testing.T) {
	c := Default()

	a, err := c.Agent("job-matcher")
	require.NoError(t, err)
	assert.Equal(t, "Job Matcher", a.Name)

	_, err = c.Agent("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAgent_ReturnsCopy(t *testing.T) {
	c := Default()

	a, err := c.Agent("resume-screener")
	require.NoError(t, err)
	a.Parameters[0].Weight = 0
	a.Name = "changed"

	again, err := c.Agent("resume-screener")
	require.NoError(t, err)
	assert.Equal(t, 40, again.Parameters[0].Weight)
	assert.Equal(t, "Resume Screener", again.Name)
}

func TestPutAgent_UpdatePreservesStatus(t *testing.T) {
	c := Default()

	a, err := c.Agent("resume-screener")
	require.NoError(t, err)

	edited := a.Agent
	edited.Description = "Updated"

	stored, err := c.PutAgent(edited)
	require.NoError(t, err)

	assert.Equal(t, "Updated", stored.Description)
	assert.Equal(t, AgentActive, stored.Status)
	assert.Equal(t, 1284, stored.TasksCompleted)
	assert.Len(t, c.Agents(), 4)
}

func TestPutAgent_NewGetsSlugAndDraft(t *testing.T) {
	c := Default()

	stored, err := c.PutAgent(agentform.Agent{Name: "Offer Writer!", Role: "Drafting", Description: "d", Model: "gpt-4o"})
	require.NoError(t, err)
	assert.Equal(t, "offer-writer", stored.ID)
	assert.Equal(t, AgentDraft, stored.Status)

	second, err := c.PutAgent(agentform.Agent{Name: "Offer Writer", Role: "r", Description: "d", Model: "gpt-4o"})
	require.NoError(t, err)
	assert.Equal(t, "offer-writer-2", second.ID)

	assert.Len(t, c.Agents(), 6)
}

func TestRecord_DoesNotStore(t *testing.T) {
	c := Default()

	rec, err := c.Record(agentform.Agent{Name: "Offer Writer", Role: "r", Description: "d", Model: "gpt-4o"})
	require.NoError(t, err)
	assert.Equal(t, "offer-writer", rec.ID)
	assert.Equal(t, AgentDraft, rec.Status)

	_, err = c.Agent("offer-writer")
	require.ErrorIs(t, err, ErrNotFound)

	c.Put(rec)
	got, err := c.Agent("offer-writer")
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestRecord_ExistingKeepsStatus(t *testing.T) {
	c := Default()

	a, err := c.Agent("interview-scheduler")
	require.NoError(t, err)
	a.Description = "Changed"

	rec, err := c.Record(a.Agent)
	require.NoError(t, err)
	assert.Equal(t, AgentInactive, rec.Status)
	assert.Equal(t, 215, rec.TasksCompleted)

	stored, err := c.Agent("interview-scheduler")
	require.NoError(t, err)
	assert.NotEqual(t, "Changed", stored.Description)
}

func TestPutAgent_RequiresName(t *testing.T) {
	c := Default()

	_, err := c.PutAgent(agentform.Agent{Name: "  "})
	assert.Error(t, err)
}

func TestPutAgent_FromForm(t *testing.T) {
	c := Default()

	a, err := c.Agent("job-matcher")
	require.NoError(t, err)

	f := agentform.New(a.Agent)
	f.Weights.SetWeight("jm-location", 10)
	f.Weights.SetWeight("jm-salary", 40)

	saved, err := f.Save(func(rec agentform.Agent) error {
		_, err := c.PutAgent(rec)
		return err
	})
	require.NoError(t, err)
	require.True(t, saved)

	got, err := c.Agent("job-matcher")
	require.NoError(t, err)
	assert.Equal(t, 100, TotalWeight(got))
	assert.Equal(t, 10, got.Parameters[1].Weight)
}

func TestProjectAndFiles(t *testing.T) {
	c := Default()

	p, err := c.Project("backend-hiring")
	require.NoError(t, err)
	assert.Len(t, p.Files, 3)

	files, err := c.Files("backend-hiring", FileKindIs("zip"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "resumes-batch-1.zip", files[0].Name)

	_, err = c.Files("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "resume-screener", Slug("Resume Screener"))
	assert.Equal(t, "a-b-c", Slug("  A/B  c!!"))
	assert.Empty(t, Slug("!!!"))
}
