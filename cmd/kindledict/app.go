// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-kindledict/internal/config"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeNotFound is the exit code when a queried word is not found.
	ExitCodeNotFound

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeConfigError is the exit code for an invalid configuration.
	ExitCodeConfigError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrKindledict is a parent error for all command errors.
var ErrKindledict = errors.New("kindledict")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrKindledict)

// ErrNotFound indicates that a queried word is not in the dictionary.
var ErrNotFound = fmt.Errorf("%w: not found", ErrKindledict)

var copyrightNames = []string{
	"2021 Google LLC",
	"2025 Ian Lewis",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// which conflicts with the commands' own arguments.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// exitCode returns the process exit code for an error returned by the app.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitCodeSuccess
	case errors.Is(err, ErrNotFound):
		return ExitCodeNotFound
	case errors.Is(err, ErrFlagParse):
		return ExitCodeFlagParseError
	case errors.Is(err, config.ErrInvalid):
		return ExitCodeConfigError
	default:
		return ExitCodeUnknownError
	}
}

func helpFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:               "help",
		Usage:              "print this help text and exit",
		Aliases:            []string{"h"},
		DisableDefaultText: true,
	}
}

// sourceFlags are the flags shared by commands that build a dictionary.
func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "source-language",
			Usage:   "headword language `CODE`",
			Aliases: []string{"s"},
		},
		&cli.StringFlag{
			Name:    "target-language",
			Usage:   "translation language `CODE`",
			Aliases: []string{"t"},
		},
		&cli.StringFlag{
			Name:  "title",
			Usage: "dictionary `TITLE`",
		},
		&cli.StringFlag{
			Name:  "author",
			Usage: "dictionary `AUTHOR`",
		},
		&cli.StringSliceFlag{
			Name:    "input",
			Usage:   "read a bilingual word list from `FILE`",
			Aliases: []string{"i"},
		},
		&cli.StringSliceFlag{
			Name:    "pronunciation",
			Usage:   "read pronunciations from a `NAME:FILE` list",
			Aliases: []string{"p"},
		},
		&cli.StringFlag{
			Name:    "wiki",
			Usage:   "read a Wiktionary XML dump from `FILE`",
			Aliases: []string{"w"},
		},
		&cli.StringFlag{
			Name:  "wiki-prefix",
			Usage: "target language `NAME` in the dump's translation tables",
		},
		&cli.BoolFlag{
			Name:               "reverse",
			Usage:              "build the dictionary from translations to headwords",
			Aliases:            []string{"r"},
			DisableDefaultText: true,
		},
	}
}

// loadConfig loads the configuration file and applies flags that are set.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"), configLocations()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalid, err)
	}

	for name, dst := range map[string]*string{
		"source-language": &cfg.SourceLanguage,
		"target-language": &cfg.TargetLanguage,
		"title":           &cfg.Title,
		"author":          &cfg.Author,
		"wiki":            &cfg.WikiDump,
		"wiki-prefix":     &cfg.WikiPrefix,
		"output":          &cfg.Output,
		"cover":           &cfg.Cover,
		"log-level":       &cfg.Log.Level,
		"log-format":      &cfg.Log.Format,
	} {
		if c.IsSet(name) {
			*dst = c.String(name)
		}
	}
	if c.IsSet("input") {
		cfg.Inputs = c.StringSlice("input")
	}
	if c.IsSet("pronunciation") {
		cfg.Pronunciations = c.StringSlice("pronunciation")
	}
	if c.IsSet("reverse") {
		cfg.Reverse = c.Bool("reverse")
	}
	if c.IsSet("force") {
		cfg.Force = c.Bool("force")
	}
	if c.IsSet("batch-size") {
		cfg.BatchSize = c.Int("batch-size")
	}

	return cfg, nil
}

func newKindledictApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Compile bilingual dictionaries for Kindle.",
		Description: strings.Join([]string{
			"Kindle dictionary compiler written in Go.",
			"http://github.com/ianlewis/go-kindledict",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read configuration from `FILE`",
				Aliases: []string{"c"},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log `LEVEL` (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log `FORMAT` (text, json)",
			},

			// Special flags are shown at the end.
			helpFlag(),
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			buildCommand,
			queryCommand,
		},
	}
}
