// Package config loads and validates the desk configuration: the operator
// account, logging options, and the agent and project tables that replace
// the built-in mock data.
package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/caarlos0/env/v11"
	"github.com/germanamz/agentdesk/pkg/catalog"
	"github.com/germanamz/agentdesk/pkg/weights"
	"gopkg.in/yaml.v3"
)

// Default operator account.
const (
	DefaultEmail    = "admin@example.com"
	DefaultPassword = "admin123" //nolint:gosec // mock account for the demo desk
)

// Config is the top-level desk configuration.
type Config struct {
	Auth     AuthConfig        `yaml:"auth"`
	Log      LogConfig         `yaml:"log"`
	Agents   []catalog.Agent   `yaml:"agents"`
	Projects []catalog.Project `yaml:"projects"`
}

// AuthConfig holds the single operator account.
type AuthConfig struct {
	Email    string `yaml:"email" env:"AGENTDESK_ADMIN_EMAIL"`
	Password string `yaml:"password" env:"AGENTDESK_ADMIN_PASSWORD"` //nolint:gosec // configuration field
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `yaml:"level" env:"AGENTDESK_LOG_LEVEL"` // debug, info, warn, error
}

// Default returns a configuration seeded with the built-in mock data.
func Default() Config {
	return Config{
		Auth:     AuthConfig{Email: DefaultEmail, Password: DefaultPassword},
		Log:      LogConfig{Level: "info"},
		Agents:   catalog.DefaultAgents(),
		Projects: catalog.DefaultProjects(),
	}
}

// LoadConfig reads a YAML file and returns a Config. Environment variables
// referenced as ${VAR} or $VAR are expanded before parsing, then the
// AGENTDESK_* overrides are applied and empty settings get their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Config{}, fmt.Errorf("config: load: %w", err)
	}

	cfg, err := Parse([]byte(os.ExpandEnv(string(data))))
	if err != nil {
		return Config{}, err
	}

	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}

	cfg.fillDefaults()

	return cfg, nil
}

// LoadConfigRaw reads a YAML config without expanding environment variables
// or applying overrides, preserving ${VAR} references for re-serialization.
func LoadConfigRaw(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration
	if err != nil {
		return Config{}, fmt.Errorf("config: load: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML bytes.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overrides settings from AGENTDESK_* environment variables.
// Unset variables leave the current values alone.
func ApplyEnv(cfg *Config) error {
	for _, target := range []any{&cfg.Auth, &cfg.Log} {
		if err := env.Parse(target); err != nil {
			return fmt.Errorf("config: env: %w", err)
		}
	}

	return nil
}

func (c *Config) fillDefaults() {
	if c.Auth.Email == "" {
		c.Auth.Email = DefaultEmail
	}
	if c.Auth.Password == "" {
		c.Auth.Password = DefaultPassword
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Marshal serializes the configuration to YAML.
func Marshal(c Config) ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}

	return data, nil
}

// Catalog builds the catalog described by the config. When the config lists
// no agents and no projects the built-in tables are used.
func (c Config) Catalog() *catalog.Catalog {
	c.SeedCatalog()

	return catalog.New(c.Agents, c.Projects)
}

// SeedCatalog fills a config that lists no agents and no projects with the
// built-in tables, so the file describes the same catalog Catalog serves.
func (c *Config) SeedCatalog() {
	if len(c.Agents) == 0 && len(c.Projects) == 0 {
		c.Agents = catalog.DefaultAgents()
		c.Projects = catalog.DefaultProjects()
	}
}

// PutAgent replaces the agent with the same ID or appends it.
func (c *Config) PutAgent(a catalog.Agent) {
	i := slices.IndexFunc(c.Agents, func(x catalog.Agent) bool { return x.ID == a.ID })
	if i >= 0 {
		c.Agents[i] = a
		return
	}

	c.Agents = append(c.Agents, a)
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate checks that the configuration is internally consistent. Draft
// agents may carry unbalanced weights; every other agent must total 100.
func (c Config) Validate() error {
	if c.Log.Level != "" && !slices.Contains(logLevels, c.Log.Level) {
		return fmt.Errorf("config: log level %q is not one of %v", c.Log.Level, logLevels)
	}

	models := catalog.Models()

	agentIDs := make(map[string]struct{}, len(c.Agents))
	for _, a := range c.Agents {
		if a.ID == "" {
			return fmt.Errorf("config: agent id is required")
		}
		if _, dup := agentIDs[a.ID]; dup {
			return fmt.Errorf("config: duplicate agent id %q", a.ID)
		}
		agentIDs[a.ID] = struct{}{}

		if a.Name == "" {
			return fmt.Errorf("config: agent %q: name is required", a.ID)
		}
		if !slices.Contains(models, a.Model) {
			return fmt.Errorf("config: agent %q: unknown model %q", a.ID, a.Model)
		}

		switch a.Status {
		case catalog.AgentActive, catalog.AgentInactive, catalog.AgentDraft:
		default:
			return fmt.Errorf("config: agent %q: invalid status %q", a.ID, a.Status)
		}

		for _, p := range a.Parameters {
			if p.Weight < weights.MinWeight || p.Weight > weights.MaxWeight {
				return fmt.Errorf("config: agent %q: parameter %q: weight %d out of range", a.ID, p.Name, p.Weight)
			}
		}

		if a.Status != catalog.AgentDraft {
			if total := catalog.TotalWeight(a); total != weights.TargetTotal {
				return fmt.Errorf("config: agent %q: parameter weights total %d, want %d", a.ID, total, weights.TargetTotal)
			}
		}
	}

	projectIDs := make(map[string]struct{}, len(c.Projects))
	for _, p := range c.Projects {
		if p.ID == "" {
			return fmt.Errorf("config: project id is required")
		}
		if _, dup := projectIDs[p.ID]; dup {
			return fmt.Errorf("config: duplicate project id %q", p.ID)
		}
		projectIDs[p.ID] = struct{}{}

		switch p.Status {
		case catalog.ProjectActive, catalog.ProjectCompleted, catalog.ProjectOnHold:
		default:
			return fmt.Errorf("config: project %q: invalid status %q", p.ID, p.Status)
		}

		for _, id := range p.AgentIDs {
			if _, ok := agentIDs[id]; !ok {
				return fmt.Errorf("config: project %q: unknown agent %q", p.ID, id)
			}
		}
	}

	return nil
}
