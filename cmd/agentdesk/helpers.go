package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mattn/go-runewidth"
	"github.com/pmezard/go-difflib/difflib"
)

// loadDotEnv loads environment variables from path. Missing files are ignored.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// resolveConfigPath returns the config file to use. Priority:
// 1. Explicit --config flag (non-empty)
// 2. <dir>/config.yaml (if it exists)
// 3. "" meaning the built-in defaults
func resolveConfigPath(explicit, configInDir string) string {
	if explicit != "" {
		return explicit
	}

	if _, err := os.Stat(configInDir); err == nil {
		return configInDir
	}

	return ""
}

// truncate shortens s to at most width terminal cells, appending "…" when
// cut. Newlines become spaces.
func truncate(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// cell truncates s and pads it to exactly width terminal cells.
func cell(s string, width int) string {
	return runewidth.FillRight(truncate(s, width), width)
}

// unifiedDiff renders the changes between two versions of a file.
func unifiedDiff(name string, before, after []byte) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: name + " (before)",
		ToFile:   name + " (after)",
		Context:  2,
	}

	out, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("diff: %w", err)
	}

	return out, nil
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
