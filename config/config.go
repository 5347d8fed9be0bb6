// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: Resolves which style document and defaults a process starts with.
//
// Resolution order, highest first:
//  1. Command line flags (-styles, -legacy-defaults)
//  2. Environment (SURFACESTYLE_FILE, SURFACESTYLE_LEGACY_DEFAULTS)
//  3. The user style document, if it exists
//  4. Built-in defaults

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/framegrace/surfacestyle/registry"
)

const (
	EnvStyleFile      = "SURFACESTYLE_FILE"
	EnvLegacyDefaults = "SURFACESTYLE_LEGACY_DEFAULTS"
)

// Setting sources reported in Settings.
const (
	SourceFlag    = "flag"
	SourceEnv     = "env"
	SourceUser    = "user"
	SourceDefault = "default"
)

// Flags holds command line values. The *Set fields record whether a flag was
// given explicitly.
type Flags struct {
	StyleFile         string
	LegacyDefaults    bool
	LegacyDefaultsSet bool
}

// Settings is the resolved configuration.
type Settings struct {
	// StyleFile is the document to load over the built-in defaults.
	// Empty means built-in defaults only.
	StyleFile      string
	LegacyDefaults bool

	StyleFileSource string
	LegacySource    string
}

// Resolve applies flags, environment and the user style document in priority order.
func Resolve(flags Flags) (*Settings, error) {
	s := &Settings{
		StyleFileSource: SourceDefault,
		LegacySource:    SourceDefault,
	}

	switch {
	case flags.StyleFile != "":
		s.StyleFile = flags.StyleFile
		s.StyleFileSource = SourceFlag
	case os.Getenv(EnvStyleFile) != "":
		s.StyleFile = os.Getenv(EnvStyleFile)
		s.StyleFileSource = SourceEnv
	default:
		if path, ok := userStyleFile(); ok {
			s.StyleFile = path
			s.StyleFileSource = SourceUser
		}
	}

	if flags.LegacyDefaultsSet {
		s.LegacyDefaults = flags.LegacyDefaults
		s.LegacySource = SourceFlag
	} else if val := os.Getenv(EnvLegacyDefaults); val != "" {
		b, err := strconv.ParseBool(val)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", EnvLegacyDefaults, val, err)
		}
		s.LegacyDefaults = b
		s.LegacySource = SourceEnv
	}

	return s, nil
}

func userStyleFile() (string, bool) {
	path, err := StyleFilePath()
	if err != nil {
		log.Printf("Config: Failed to resolve user style path: %v", err)
		return "", false
	}
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

// RegistryOptions returns the registry options implied by s.
func (s *Settings) RegistryOptions() []registry.Option {
	var opts []registry.Option
	if s.LegacyDefaults {
		opts = append(opts, registry.WithLegacyDefaults())
	}
	return opts
}

// NewRegistry builds a registry from s and loads the style document, if any.
func (s *Settings) NewRegistry() (*registry.Registry, error) {
	r := registry.New(s.RegistryOptions()...)
	if s.StyleFile == "" {
		return r, nil
	}
	if err := r.Reconfigure(s.StyleFile); err != nil {
		return nil, fmt.Errorf("load %s style file: %w", s.StyleFileSource, err)
	}
	return r, nil
}
