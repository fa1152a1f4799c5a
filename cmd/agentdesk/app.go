package main

import (
	"fmt"
	"os"

	"github.com/germanamz/agentdesk/pkg/agentform"
	"github.com/germanamz/agentdesk/pkg/catalog"
	"github.com/germanamz/agentdesk/pkg/config"
	"github.com/germanamz/agentdesk/pkg/deskdir"
	"github.com/germanamz/agentdesk/pkg/localstore"
	"github.com/germanamz/agentdesk/pkg/logging"
	"github.com/germanamz/agentdesk/pkg/session"
	"go.uber.org/zap"
)

// options are the global flags shared by every command.
type options struct {
	dir        string
	configPath string
	envFile    string
	verbose    bool
}

// app holds the dependencies a command runs against. It is built once per
// invocation and passed explicitly.
type app struct {
	dir        deskdir.Dir
	cfg        config.Config
	configPath string // "" when running on built-in defaults
	log        *zap.Logger
	session    *session.Session
	catalog    *catalog.Catalog
}

// newApp loads .env, resolves and loads the config, opens the log file and
// local storage, and initialises the session.
func newApp(opts options) (*app, error) {
	if err := loadDotEnv(opts.envFile); err != nil {
		return nil, err
	}

	d := deskdir.New(opts.dir)
	resolved := resolveConfigPath(opts.configPath, d.ConfigPath())

	cfg := config.Default()
	if resolved != "" {
		loaded, err := config.LoadConfig(resolved)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else if err := config.ApplyEnv(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logging.New(d.LogPath(), cfg.Log.Level, opts.verbose)
	if err != nil {
		return nil, err
	}

	store, err := localstore.Open(d.StoragePath())
	if err != nil {
		return nil, err
	}

	sess := session.New(store, session.Credentials{
		Email:    cfg.Auth.Email,
		Password: cfg.Auth.Password,
	}, log)

	if err := sess.Init(); err != nil {
		return nil, err
	}

	log.Debug("app ready",
		zap.String("dir", d.Root()),
		zap.String("config", resolved),
		zap.String("storage", store.Path()),
		zap.Bool("authenticated", sess.Authenticated()),
	)

	return &app{
		dir:        d,
		cfg:        cfg,
		configPath: resolved,
		log:        log,
		session:    sess,
		catalog:    cfg.Catalog(),
	}, nil
}

// close flushes the logger.
func (a *app) close() {
	_ = a.log.Sync()
}

// saveAgent writes rec to the config file, creating .agentdesk/config.yaml
// when the desk was running on built-in defaults. A file that lists no agents
// and no projects is seeded with the built-in tables first. It returns a
// unified diff of the config change.
func (a *app) saveAgent(rec catalog.Agent) (string, error) {
	path := a.configPath
	if path == "" {
		path = a.dir.ConfigPath()
		if err := deskdir.EnsureStructure(a.dir); err != nil {
			return "", err
		}
	}

	var (
		before []byte
		raw    config.Config
	)

	if data, err := os.ReadFile(path); err == nil { //nolint:gosec // path is the desk config
		before = data
		if raw, err = config.Parse(data); err != nil {
			return "", err
		}
	} else if os.IsNotExist(err) {
		raw = config.Default()
	} else {
		return "", fmt.Errorf("read config: %w", err)
	}

	raw.SeedCatalog()
	raw.PutAgent(rec)

	after, err := config.Marshal(raw)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, after, 0o600); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}

	a.configPath = path
	a.cfg.SeedCatalog()
	a.cfg.PutAgent(rec)

	a.log.Info("agent saved",
		zap.String("agent", rec.ID),
		zap.String("config", path),
		zap.Int("parameters", len(rec.Parameters)),
	)

	return unifiedDiff(path, before, after)
}

// persistAgent is the editor's save callback: it writes the agent to the
// config file and records it in the catalog once the write has succeeded.
func (a *app) persistAgent(ag agentform.Agent) (string, error) {
	rec, err := a.catalog.Record(ag)
	if err != nil {
		return "", err
	}

	diff, err := a.saveAgent(rec)
	if err != nil {
		return "", err
	}

	a.catalog.Put(rec)

	return diff, nil
}
