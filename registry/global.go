// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: registry/global.go
// Summary: Process-wide registry and package-level convenience functions.
// Usage: Call InitGlobal before first use to install a configured registry.

package registry

import (
	"sync"

	"github.com/framegrace/surfacestyle/style"
)

var (
	globalOnce sync.Once
	global     *Registry
)

// Global returns the process-wide registry, creating one with default
// options on first call. Safe for concurrent use.
//
// The default registry does not read flags or the environment. To honor
// SURFACESTYLE_LEGACY_DEFAULTS and the style file settings, install a
// resolved registry first:
//
//	settings, err := config.Resolve(flags)
//	...
//	r, err := settings.NewRegistry()
//	...
//	registry.InitGlobal(r)
func Global() *Registry {
	globalOnce.Do(func() {
		global = New()
	})
	return global
}

// InitGlobal installs r as the process-wide registry. It only takes effect
// if Global has not been called yet and reports whether r was installed.
func InitGlobal(r *Registry) bool {
	if r == nil {
		return false
	}
	installed := false
	globalOnce.Do(func() {
		global = r
		installed = true
	})
	return installed
}

// SetDefaultStyleFile replaces the process-wide styles with the document at path.
func SetDefaultStyleFile(path string) error {
	return Global().Reconfigure(path)
}

// GetDefaultStyle returns the process-wide style for name, falling back to
// the default style for unknown names.
func GetDefaultStyle(name string) *style.Descriptor {
	return Global().Lookup(name)
}

// UpdateDefaultStyle returns the process-wide style bound to name for editing.
func UpdateDefaultStyle(name string) (*style.Descriptor, error) {
	return Global().Update(name)
}
