// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"io"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	kindledict "github.com/ianlewis/go-kindledict"
	"github.com/ianlewis/go-kindledict/internal/config"
	"github.com/ianlewis/go-kindledict/kindle"
)

var buildCommand = &cli.Command{
	Name:      "build",
	Usage:     "build a Kindle dictionary package",
	ArgsUsage: " ",
	Flags: append(sourceFlags(),
		&cli.StringFlag{
			Name:    "output",
			Usage:   "write the package to `DIR`",
			Aliases: []string{"o"},
		},
		&cli.BoolFlag{
			Name:               "force",
			Usage:              "write into an existing output directory",
			Aliases:            []string{"f"},
			DisableDefaultText: true,
		},
		&cli.StringFlag{
			Name:  "cover",
			Usage: "copy the cover image from `FILE`",
		},
		&cli.IntFlag{
			Name:  "batch-size",
			Usage: "number of entries per content document",
		},
		helpFlag(),
	),
	HideHelp: true,
	OnUsageError: func(_ *cli.Context, err error, _ bool) error {
		return fmt.Errorf("%w: %w", ErrFlagParse, err)
	},
	Action: func(c *cli.Context) error {
		if c.Bool("help") {
			check(cli.ShowSubcommandHelp(c))
			return nil
		}
		if c.NArg() > 0 {
			return fmt.Errorf("%w: unexpected argument %q", ErrFlagParse, c.Args().First())
		}

		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}
		if cfg.Output == "" {
			return fmt.Errorf("%w: no output specified", config.ErrInvalid)
		}

		logger, err := newLogger(c.App.ErrWriter, &cfg.Log)
		if err != nil {
			return err
		}

		d, stats, err := kindledict.Build(cfg, logger)
		if err != nil {
			return err
		}

		pkg, err := kindle.Write(d, cfg.Output, &kindle.Options{
			Force:     cfg.Force,
			BatchSize: cfg.BatchSize,
			Cover:     cfg.Cover,
		})
		if err != nil {
			return fmt.Errorf("writing package: %w", err)
		}

		printStats(c.App.Writer, stats)
		_, err = fmt.Fprintf(c.App.Writer, "\n%d entries in %d documents written to %s\n",
			pkg.Entries, len(pkg.Content), pkg.Dir)
		return err
	},
}

// printStats prints a table of per-source statistics.
func printStats(w io.Writer, stats []kindledict.SourceStats) {
	tbl := table.New("Source", "Name", "Path", "Read", "Registered", "Skipped").WithWriter(w)
	for _, s := range stats {
		tbl.AddRow(s.Kind, s.Name, s.Path, s.Read, s.Registered, s.Skipped)
	}
	tbl.Print()
}
