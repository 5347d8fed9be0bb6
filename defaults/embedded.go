// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: defaults/embedded.go
// Summary: Embedded starter style document.

package defaults

import (
	_ "embed"
)

// StyleFileName is the file name used for the user style document.
const StyleFileName = "styles.json"

//go:embed styles.json
var styleFile []byte

// StyleFile returns a copy of the embedded starter style document.
// It mirrors the built-in registry defaults.
func StyleFile() []byte {
	out := make([]byte, len(styleFile))
	copy(out, styleFile)
	return out
}
