// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Path helpers for surfacestyle configuration.

package config

import (
	"os"
	"path/filepath"

	"github.com/framegrace/surfacestyle/defaults"
)

const (
	appDirName   = "surfacestyle"
	snapshotName = "styles.db"
)

func configRoot() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, appDirName), nil
}

// StyleFilePath returns the location of the user style document.
func StyleFilePath() (string, error) {
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, defaults.StyleFileName), nil
}

// SnapshotPath returns the default location of the style snapshot database.
func SnapshotPath() (string, error) {
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, snapshotName), nil
}
