//go:build mage

// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: magefile.go
// Summary: Build, test and lint targets. Run with `mage <target>`.

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binDir = "bin"

// Default target builds stylectl.
var Default = Build

// Build builds stylectl into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-o", binDir+"/stylectl", "./cmd/stylectl")
}

// Vet runs go vet.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Test runs the test suite with the race detector.
func Test() error {
	mg.Deps(Vet)
	return sh.RunV("go", "test", "-race", "-count=1", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	fmt.Println("Removing", binDir)
	return sh.Rm(binDir)
}
