package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/germanamz/agentdesk/pkg/agentform"
	"github.com/germanamz/agentdesk/pkg/catalog"
	"github.com/germanamz/agentdesk/pkg/config"
	"github.com/germanamz/agentdesk/pkg/deskdir"
	"github.com/germanamz/agentdesk/pkg/session"
	"github.com/germanamz/agentdesk/pkg/weights"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command against dir and returns its output.
func runCLI(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--dir", dir, "--env", filepath.Join(dir, "missing.env")}, args...))

	err := root.Execute()

	return out.String(), err
}

func login(t *testing.T, dir string) {
	t.Helper()

	out, err := runCLI(t, dir, "login", "--email", config.DefaultEmail, "--password", config.DefaultPassword)
	require.NoError(t, err)
	require.Contains(t, out, "Signed in.")
}

func TestInitCmd(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".agentdesk")

	out, err := runCLI(t, dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized "+dir)

	cfg, err := config.LoadConfig(deskdir.New(dir).ConfigPath())
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Agents, len(catalog.DefaultAgents()))

	_, err = runCLI(t, dir, "init")
	require.ErrorIs(t, err, deskdir.ErrConfigExists)

	_, err = runCLI(t, dir, "init", "--force")
	assert.NoError(t, err)
}

func TestCommands_RequireLogin(t *testing.T) {
	dir := t.TempDir()

	for _, args := range [][]string{
		{"agents"},
		{"projects"},
		{"files", "backend-hiring"},
		{"agent", "edit", "job-matcher"},
		{"dashboard"},
	} {
		_, err := runCLI(t, dir, args...)
		assert.ErrorIs(t, err, session.ErrNotAuthenticated, "%v", args)
	}
}

func TestLoginCmd_InvalidCredentials(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, dir, "login", "--email", config.DefaultEmail, "--password", "wrong")
	require.ErrorIs(t, err, session.ErrInvalidCredentials)
	assert.Equal(t, 1, strings.Count(out, "Invalid email or password"))

	var stderr bytes.Buffer
	assert.Equal(t, 1, exitCode(err, &stderr))
	assert.Empty(t, stderr.String(), "message is printed once, by the command")

	_, err = runCLI(t, dir, "agents")
	assert.ErrorIs(t, err, session.ErrNotAuthenticated)
}

func TestLoginLogout(t *testing.T) {
	dir := t.TempDir()

	login(t, dir)

	out, err := runCLI(t, dir, "login", "--email", "x", "--password", "y")
	require.NoError(t, err)
	assert.Contains(t, out, "Already signed in.")

	out, err = runCLI(t, dir, "agents")
	require.NoError(t, err)
	assert.Contains(t, out, "Resume Screener")

	out, err = runCLI(t, dir, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed out.")

	_, err = runCLI(t, dir, "agents")
	assert.ErrorIs(t, err, session.ErrNotAuthenticated)
}

func TestAgentsCmd_Filters(t *testing.T) {
	dir := t.TempDir()
	login(t, dir)

	out, err := runCLI(t, dir, "agents", "--status", "active")
	require.NoError(t, err)
	assert.Contains(t, out, "Job Matcher")
	assert.NotContains(t, out, "Candidate Sourcer")

	out, err = runCLI(t, dir, "agents", "--search", "CALENDAR")
	require.NoError(t, err)
	assert.Contains(t, out, "No agents match.")
}

func TestProjectsAndFilesCmd(t *testing.T) {
	dir := t.TempDir()
	login(t, dir)

	out, err := runCLI(t, dir, "projects", "--agent", "job-matcher")
	require.NoError(t, err)
	assert.Contains(t, out, "backend-hiring")
	assert.Contains(t, out, "sales-expansion")
	assert.NotContains(t, out, "design-internships")

	out, err = runCLI(t, dir, "files", "backend-hiring", "--kind", "pdf")
	require.NoError(t, err)
	assert.Contains(t, out, "job-description.pdf")
	assert.NotContains(t, out, "scorecard.xlsx")

	_, err = runCLI(t, dir, "files", "nope")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestPersistAgent(t *testing.T) {
	dir := t.TempDir()

	a, err := newApp(options{dir: dir, envFile: filepath.Join(dir, "missing.env")})
	require.NoError(t, err)
	defer a.close()

	f := agentform.New(agentform.Agent{
		Name:        "Offer Writer",
		Role:        "Offers",
		Description: "Drafts offer letters",
		Model:       "gpt-4o",
		Parameters: []weights.Parameter{
			{Name: "Tone", Value: "Warm", Weight: 60},
			{Name: "Length", Value: "One page", Weight: 40},
		},
	})

	var diff string
	saved, err := f.Save(func(ag agentform.Agent) error {
		d, err := a.persistAgent(ag)
		diff = d
		return err
	})
	require.NoError(t, err)
	require.True(t, saved)

	assert.Contains(t, diff, "id: offer-writer")
	assert.Contains(t, diff, "+++ ")
	assert.Equal(t, deskdir.New(dir).ConfigPath(), a.configPath)

	rec, err := a.catalog.Agent("offer-writer")
	require.NoError(t, err)
	assert.Equal(t, catalog.AgentDraft, rec.Status)

	// A fresh process sees the saved agent.
	b, err := newApp(options{dir: dir, envFile: filepath.Join(dir, "missing.env")})
	require.NoError(t, err)
	defer b.close()

	rec, err = b.catalog.Agent("offer-writer")
	require.NoError(t, err)
	assert.Equal(t, 100, catalog.TotalWeight(rec))
}

func TestPersistAgent_PreservesEnvReferences(t *testing.T) {
	dir := t.TempDir()
	d := deskdir.New(dir)
	require.NoError(t, deskdir.EnsureStructure(d))

	raw := config.Default()
	raw.Auth.Password = "${AGENTDESK_TEST_SECRET}"
	data, err := config.Marshal(raw)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(d.ConfigPath(), data, 0o600))

	t.Setenv("AGENTDESK_TEST_SECRET", "hunter2")

	a, err := newApp(options{dir: dir, envFile: filepath.Join(dir, "missing.env")})
	require.NoError(t, err)
	defer a.close()
	assert.Equal(t, "hunter2", a.cfg.Auth.Password)

	rec, err := a.catalog.Agent("candidate-sourcer")
	require.NoError(t, err)
	rec.Description = "Updated"

	diff, err := a.saveAgent(rec)
	require.NoError(t, err)
	assert.Contains(t, diff, "Updated")

	after, err := config.LoadConfigRaw(d.ConfigPath())
	require.NoError(t, err)
	assert.Equal(t, "${AGENTDESK_TEST_SECRET}", after.Auth.Password)
}

func TestPersistAgent_AuthOnlyConfigKeepsBuiltInTables(t *testing.T) {
	dir := t.TempDir()
	d := deskdir.New(dir)
	require.NoError(t, deskdir.EnsureStructure(d))
	require.NoError(t, os.WriteFile(d.ConfigPath(), []byte("auth:\n  email: ops@example.com\n"), 0o600))

	env := filepath.Join(dir, "missing.env")

	a, err := newApp(options{dir: dir, envFile: env})
	require.NoError(t, err)
	defer a.close()
	require.Len(t, a.catalog.Agents(), len(catalog.DefaultAgents()))

	rec, err := a.catalog.Agent("candidate-sourcer")
	require.NoError(t, err)
	rec.Description = "Updated"

	_, err = a.persistAgent(rec.Agent)
	require.NoError(t, err)

	b, err := newApp(options{dir: dir, envFile: env})
	require.NoError(t, err)
	defer b.close()

	assert.Len(t, b.catalog.Agents(), len(catalog.DefaultAgents()))
	assert.Len(t, b.catalog.Projects(), len(catalog.DefaultProjects()))
	assert.Equal(t, "ops@example.com", b.cfg.Auth.Email)

	got, err := b.catalog.Agent("candidate-sourcer")
	require.NoError(t, err)
	assert.Equal(t, "Updated", got.Description)
	assert.Equal(t, catalog.AgentDraft, got.Status)
}

func TestPersistAgent_WriteFailureLeavesCatalogUntouched(t *testing.T) {
	dir := t.TempDir()

	a, err := newApp(options{dir: dir, envFile: filepath.Join(dir, "missing.env")})
	require.NoError(t, err)
	defer a.close()

	a.configPath = filepath.Join(dir, "no-such-dir", "config.yaml")

	_, err = a.persistAgent(agentform.Agent{
		Name:        "Offer Writer",
		Role:        "Offers",
		Description: "Drafts offer letters",
		Model:       "gpt-4o",
		Parameters:  []weights.Parameter{{Name: "Tone", Weight: 100}},
	})
	require.Error(t, err)

	_, err = a.catalog.Agent("offer-writer")
	require.ErrorIs(t, err, catalog.ErrNotFound)

	existing, err := a.catalog.Agent("job-matcher")
	require.NoError(t, err)
	existing.Description = "Changed"

	_, err = a.persistAgent(existing.Agent)
	require.Error(t, err)

	got, err := a.catalog.Agent("job-matcher")
	require.NoError(t, err)
	assert.NotEqual(t, "Changed", got.Description)
}

func TestNewApp_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: loud\n"), 0o600))

	_, err := newApp(options{dir: dir, configPath: path, envFile: filepath.Join(dir, "missing.env")})
	assert.ErrorContains(t, err, "log level")
}

func TestExitCode(t *testing.T) {
	var stderr bytes.Buffer

	assert.Equal(t, 0, exitCode(nil, &stderr))
	assert.Equal(t, 0, exitCode(errEditorCancelled, &stderr))
	assert.Equal(t, 0, exitCode(fmt.Errorf("wrapped: %w", huh.ErrUserAborted), &stderr))
	assert.Empty(t, stderr.String())

	assert.Equal(t, 1, exitCode(errors.New("boom"), &stderr))
	assert.Contains(t, stderr.String(), "error: boom")

	stderr.Reset()
	assert.Equal(t, 1, exitCode(reportedError{err: errors.New("shown")}, &stderr))
	assert.Empty(t, stderr.String())
}
