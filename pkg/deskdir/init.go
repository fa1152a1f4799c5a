package deskdir

import (
	"errors"
	"fmt"
	"os"
)

const gitignoreContent = "local/\n"

// ErrConfigExists is returned by Bootstrap when a config file is already
// present and overwriting was not requested.
var ErrConfigExists = errors.New("config already exists")

// EnsureStructure creates the root and local/ directories and the .gitignore
// file if they are missing. It is idempotent.
func EnsureStructure(d Dir) error {
	if err := os.MkdirAll(d.LocalDir(), 0o750); err != nil {
		return fmt.Errorf("deskdir: create local dir: %w", err)
	}

	if err := ensureGitignore(d); err != nil {
		return fmt.Errorf("deskdir: gitignore: %w", err)
	}

	return nil
}

// Bootstrap creates the directory layout and writes configYAML as the config
// file. An existing config is only replaced when force is set.
func Bootstrap(d Dir, configYAML []byte, force bool) error {
	if err := EnsureStructure(d); err != nil {
		return err
	}

	if _, err := os.Stat(d.ConfigPath()); err == nil && !force {
		return fmt.Errorf("deskdir: %s: %w (use --force to overwrite)", d.ConfigPath(), ErrConfigExists)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("deskdir: stat config: %w", err)
	}

	if err := os.WriteFile(d.ConfigPath(), configYAML, 0o600); err != nil {
		return fmt.Errorf("deskdir: write config: %w", err)
	}

	return nil
}

func ensureGitignore(d Dir) error {
	path := d.GitignorePath()

	if _, err := os.Stat(path); err == nil {
		return nil
	}

	return os.WriteFile(path, []byte(gitignoreContent), 0o600)
}
