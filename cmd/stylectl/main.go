// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/stylectl/main.go
// Summary: Inspect, validate and snapshot surface style documents.
// Usage: stylectl [-styles FILE] [-legacy-defaults] [-quiet] <command> [args]

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/framegrace/surfacestyle/config"
	"github.com/framegrace/surfacestyle/registry"
)

const usageText = `Usage: stylectl [flags] <command> [args]

Commands:
  list                         List bound categories (default)
  show NAME                    Show the style a category resolves to
  dump [-format json|yaml]     Print the active styles as a document
  check FILE                   Validate a style document
  init [-force] [PATH]         Write the starter style document
  export [-db FILE]            Save the active styles to a snapshot database
  import [-db FILE] [-o PATH]  Load styles from a snapshot database

Flags:
`

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// cli carries the parsed global flags into subcommands.
type cli struct {
	flags  config.Flags
	stdout io.Writer
	stderr io.Writer
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("stylectl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usageText)
		fs.PrintDefaults()
	}

	styleFile := fs.String("styles", "", "Style document to load (default: $"+config.EnvStyleFile+" or the user style file)")
	legacy := fs.Bool("legacy-defaults", false, "Use the historical built-in table")
	quiet := fs.Bool("quiet", false, "Suppress log output")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if *quiet {
		prev := log.Writer()
		log.SetOutput(io.Discard)
		defer log.SetOutput(prev)
	}

	c := &cli{
		flags:  config.Flags{StyleFile: *styleFile, LegacyDefaults: *legacy},
		stdout: stdout,
		stderr: stderr,
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "legacy-defaults" {
			c.flags.LegacyDefaultsSet = true
		}
	})

	cmd, cmdArgs := "list", fs.Args()
	if len(cmdArgs) > 0 {
		cmd, cmdArgs = cmdArgs[0], cmdArgs[1:]
	}

	switch cmd {
	case "list":
		return c.list(cmdArgs)
	case "show":
		return c.show(cmdArgs)
	case "dump":
		return c.dump(cmdArgs)
	case "check":
		return c.check(cmdArgs)
	case "init":
		return c.init(cmdArgs)
	case "export":
		return c.export(cmdArgs)
	case "import":
		return c.importSnapshot(cmdArgs)
	case "help":
		fs.Usage()
		return nil
	default:
		fs.Usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// registry resolves settings and builds the registry the command works on.
func (c *cli) registry() (*registry.Registry, error) {
	settings, err := config.Resolve(c.flags)
	if err != nil {
		return nil, err
	}
	if settings.StyleFile != "" {
		log.Printf("Config: Using %s style file %s", settings.StyleFileSource, settings.StyleFile)
	}
	return settings.NewRegistry()
}

// subcommand returns a flag set for a subcommand that reports to stderr.
func (c *cli) subcommand(name string) *flag.FlagSet {
	fs := flag.NewFlagSet("stylectl "+name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	return fs
}
