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


package kindledict

import (
	"fmt"
	"log/slog"

	"github.com/ianlewis/go-kindledict/internal/config"
	"github.com/ianlewis/go-kindledict/lexicon"
	"github.com/ianlewis/go-kindledict/reader/bilingual"
	"github.com/ianlewis/go-kindledict/reader/pronunciation"
	"github.com/ianlewis/go-kindledict/reader/wiki"
)

// Source kinds.
const (
	BilingualSource     = "bilingual"
	PronunciationSource = "pronunciation"
	WikiSource          = "wiki"
)

// SourceStats summarizes the ingestion of one source.
type SourceStats struct {
	// Kind is the kind of source.
	Kind string

	// Name is the pronunciation source name, if any.
	Name string

	// Path is the source file path.
	Path string

	// Read is the number of rows, or pages for a wiki dump, read.
	Read int

	// Registered is the number of facts added to the dictionary.
	Registered int

	// Skipped is the number of rows or pages that were not used.
	Skipped int
}

// Build builds a dictionary from the sources in cfg. Bilingual lists are read
// first, then pronunciation lists and finally the wiki dump. The
// configuration is validated before any source is read.
func Build(cfg *config.Config, logger *slog.Logger) (*lexicon.Dictionary, []SourceStats, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	sources, err := cfg.PronunciationSources()
	if err != nil {
		return nil, nil, err
	}

	d := lexicon.New(&lexicon.Options{
		SourceLanguage: cfg.SourceLanguage,
		TargetLanguage: cfg.TargetLanguage,
		Title:          cfg.Title,
		Author:         cfg.Author,
	})

	var all []SourceStats
	for _, path := range cfg.Inputs {
		s, err := bilingual.ReadFile(d, path)
		if err != nil {
			return nil, nil, fmt.Errorf("bilingual source: %w", err)
		}
		all = append(all, logStats(logger, SourceStats{
			Kind:       BilingualSource,
			Path:       path,
			Read:       s.Rows,
			Registered: s.Registered,
			Skipped:    s.Skipped,
		}))
	}

	for _, src := range sources {
		s, err := pronunciation.ReadFile(d, src.Name, src.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("pronunciation source %q: %w", src.Name, err)
		}
		all = append(all, logStats(logger, SourceStats{
			Kind:       PronunciationSource,
			Name:       src.Name,
			Path:       src.Path,
			Read:       s.Rows,
			Registered: s.Registered,
		}))
	}

	if cfg.WikiDump != "" {
		s, err := wiki.Read(d, cfg.WikiDump, cfg.WikiPrefix)
		if err != nil {
			return nil, nil, fmt.Errorf("wiki source: %w", err)
		}
		all = append(all, logStats(logger, SourceStats{
			Kind:       WikiSource,
			Name:       lexicon.WikiSource,
			Path:       cfg.WikiDump,
			Read:       s.Pages,
			Registered: s.Pronunciations + s.Meanings,
			Skipped:    s.Pages - s.Extracted,
		}))
	}

	if cfg.Reverse {
		d = d.Reverse()
		logger.Debug("reversed dictionary",
			slog.String("source_language", d.SourceLanguage()),
			slog.String("target_language", d.TargetLanguage()),
		)
	}

	logger.Info("dictionary built", slog.Int("terms", d.Len()))
	return d, all, nil
}

func logStats(logger *slog.Logger, s SourceStats) SourceStats {
	logger.Info("source read",
		slog.String("kind", s.Kind),
		slog.String("name", s.Name),
		slog.String("path", s.Path),
		slog.Int("read", s.Read),
		slog.Int("registered", s.Registered),
		slog.Int("skipped", s.Skipped),
	)
	return s
}
