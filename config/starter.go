// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/starter.go
// Summary: Writes the embedded starter style document to disk.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/framegrace/surfacestyle/defaults"
	"github.com/framegrace/surfacestyle/registry"
)

// ErrExists reports a starter file that would overwrite an existing file.
var ErrExists = errors.New("style file already exists")

// WriteStarterFile writes the embedded style document to path, converting it
// to YAML for .yaml/.yml paths. An existing file is only replaced when force is set.
func WriteStarterFile(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrExists, path)
		}
	}

	data := defaults.StyleFile()
	if format := registry.FormatForPath(path); format != registry.FormatJSON {
		doc, err := registry.ParseDocument(data, registry.FormatJSON)
		if err != nil {
			return err
		}
		if data, err = doc.Marshal(format); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
