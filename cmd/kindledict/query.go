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
	"strings"

	"github.com/k3a/html2text"
	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	kindledict "github.com/ianlewis/go-kindledict"
	"github.com/ianlewis/go-kindledict/kindle"
	"github.com/ianlewis/go-kindledict/lexicon"
)

var queryCommand = &cli.Command{
	Name:      "query",
	Usage:     "build a dictionary and print the entry for a word",
	ArgsUsage: "WORD",
	Flags:     append(sourceFlags(), helpFlag()),
	HideHelp:  true,
	OnUsageError: func(_ *cli.Context, err error, _ bool) error {
		return fmt.Errorf("%w: %w", ErrFlagParse, err)
	},
	Action: func(c *cli.Context) error {
		if c.Bool("help") {
			check(cli.ShowSubcommandHelp(c))
			return nil
		}
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected one WORD argument, got %d", ErrFlagParse, c.NArg())
		}
		word := strings.TrimSpace(c.Args().First())

		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}
		cfg.Query = word

		logger, err := newLogger(c.App.ErrWriter, &cfg.Log)
		if err != nil {
			return err
		}

		d, _, err := kindledict.Build(cfg, logger)
		if err != nil {
			return err
		}

		term, ok := d.Lookup(word)
		if !ok {
			return fmt.Errorf("%w: %q", ErrNotFound, word)
		}
		return printTerm(c.App.Writer, d, term)
	},
}

// printTerm prints the rendered entry for term as plain text followed by a
// table of its pronunciations. Verbs in the irregular verb table of the
// dictionary's source language are marked.
func printTerm(w io.Writer, d *lexicon.Dictionary, term *lexicon.Term) error {
	if _, err := fmt.Fprintln(w, strings.TrimSpace(html2text.HTML2Text(kindle.RenderTerm(term)))); err != nil {
		return fmt.Errorf("%w: %w", ErrKindledict, err)
	}

	if len(term.Meanings(lexicon.Verb)) > 0 && d.Rules().IsIrregular(term.Headword()) {
		if _, err := fmt.Fprintln(w, "\nirregular verb"); err != nil {
			return fmt.Errorf("%w: %w", ErrKindledict, err)
		}
	}

	sources := term.Sources()
	if len(sources) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("%w: %w", ErrKindledict, err)
	}
	tbl := table.New("Source", "Pronunciation").WithWriter(w)
	for _, src := range sources {
		for _, p := range term.Pronunciations(src) {
			tbl.AddRow(src, p)
		}
	}
	tbl.Print()
	return nil
}
