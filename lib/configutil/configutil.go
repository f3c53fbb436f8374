package configutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

// candidates returns the config files for `name` in increasing priority.
//  1. <name>.<ext>
//  2. <name>.local.<ext>
func candidates(name string) []string {
	ext := filepath.Ext(name)
	prefix := strings.TrimSuffix(name, ext)
	return []string{
		name,
		fmt.Sprintf("%s.local%s", prefix, ext),
	}
}

// ReadConfig reads a json5 configuration file, `name` should come with a file
// extension. a sibling `<name>.local.<ext>` overrides any field it sets.
// os.ErrNotExist is returned when neither file exists.
func ReadConfig[T any](name string) (T, error) {
	var out T
	allNotFound := true

	for i, path := range candidates(name) {
		contents, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return out, err
		}
		allNotFound = false
		if len(contents) == 0 {
			continue
		}

		var layer T
		err = json5.Unmarshal(contents, &layer)
		if err != nil {
			return out, fmt.Errorf("parse %s: %w", path, err)
		}
		err = mergo.Merge(&out, layer, mergo.WithOverride)
		if err != nil {
			return out, err
		}
		if i > 0 {
			slog.Info("merging config with local overrides", "local", path)
		}
	}

	if allNotFound {
		return out, os.ErrNotExist
	}
	return out, nil
}

// Overlay reads `name` like ReadConfig and merges every non-zero field it
// finds on top of `base`. a missing file leaves `base` untouched.
func Overlay[T any](base T, name string) (T, error) {
	read, err := ReadConfig[T](name)
	if os.IsNotExist(err) {
		return base, nil
	}
	if err != nil {
		return base, err
	}
	err = mergo.Merge(&base, read, mergo.WithOverride)
	if err != nil {
		return base, err
	}
	return base, nil
}

// ReadRecursively is ReadConfig but it goes up the filesystem from the cwd
// until the root to find a configuration file matching the name.
func ReadRecursively[T any](name string) (T, error) {
	var defaultOut T

	root, err := filepath.Abs("/")
	if err != nil {
		return defaultOut, err
	}
	current, err := os.Getwd()
	if err != nil {
		return defaultOut, err
	}

	for current != root {
		config, err := ReadConfig[T](filepath.Join(current, name))
		if os.IsNotExist(err) {
			current = filepath.Join(current, "..")
			continue
		}
		if err != nil {
			return defaultOut, err
		}
		return config, nil
	}

	return defaultOut, os.ErrNotExist
}
