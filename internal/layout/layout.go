// Package layout holds the list of files the scaffolder lays down. The list
// is embedded at build time and parsed once; callers get their own copy.
package layout

import (
	_ "embed"
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed layout.yaml
var rawLayout []byte

var (
	ErrEmptyPath     = errors.New("empty path")
	ErrAbsolutePath  = errors.New("path must be relative")
	ErrEscapesRoot   = errors.New("path escapes the target root")
	ErrDuplicatePath = errors.New("duplicate path")
)

type document struct {
	Paths []string `yaml:"paths"`
}

var (
	once     sync.Once
	declared []string
	loadErr  error
)

func load() {
	once.Do(func() {
		declared, loadErr = Parse(rawLayout)
	})
}

// Paths returns the declared paths in output order.
func Paths() ([]string, error) {
	load()
	if loadErr != nil {
		return nil, loadErr
	}
	out := make([]string, len(declared))
	copy(out, declared)
	return out, nil
}

// Parse decodes a layout document and validates its paths.
func Parse(data []byte) ([]string, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}
	if err := Validate(doc.Paths); err != nil {
		return nil, err
	}
	return doc.Paths, nil
}

// Validate checks that every path is a unique, slash-separated relative
// path that stays under the target root.
func Validate(paths []string) error {
	seen := make(map[string]int, len(paths))
	for i, p := range paths {
		if err := validatePath(p); err != nil {
			return fmt.Errorf("layout entry %d %q: %w", i, p, err)
		}
		clean := path.Clean(p)
		if prev, ok := seen[clean]; ok {
			return fmt.Errorf("layout entry %d %q (same as entry %d): %w", i, p, prev, ErrDuplicatePath)
		}
		seen[clean] = i
	}
	return nil
}

func validatePath(p string) error {
	if strings.TrimSpace(p) == "" {
		return ErrEmptyPath
	}
	if path.IsAbs(p) || strings.HasPrefix(p, `\`) || (len(p) > 1 && p[1] == ':') {
		return ErrAbsolutePath
	}
	clean := path.Clean(p)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return ErrEscapesRoot
	}
	return nil
}
