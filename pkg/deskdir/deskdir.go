// Package deskdir encapsulates all path knowledge for the .agentdesk/
// directory: the config file, and the gitignored local/ directory holding
// the session storage file and the log file.
package deskdir

import "path/filepath"

// Dir is a value object that resolves paths within a .agentdesk/ directory.
type Dir struct {
	root string
}

// New creates a Dir rooted at the given path, made absolute when possible.
// No I/O is performed.
func New(root string) Dir {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}

	return Dir{root: abs}
}

// Root returns the absolute path to the .agentdesk/ directory.
func (d Dir) Root() string { return d.root }

// ConfigPath returns the path to the main config file.
func (d Dir) ConfigPath() string { return filepath.Join(d.root, "config.yaml") }

// LocalDir returns the path to the local (gitignored) runtime state directory.
func (d Dir) LocalDir() string { return filepath.Join(d.root, "local") }

// StoragePath returns the path to the key-value storage file inside local/.
func (d Dir) StoragePath() string { return filepath.Join(d.root, "local", "storage.json") }

// LogPath returns the path to the log file inside local/.
func (d Dir) LogPath() string { return filepath.Join(d.root, "local", "agentdesk.log") }

// GitignorePath returns the path to the .gitignore file inside .agentdesk/.
func (d Dir) GitignorePath() string { return filepath.Join(d.root, ".gitignore") }
