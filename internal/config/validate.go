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


package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ianlewis/go-kindledict/reader/bilingual"
)

// ErrInvalid indicates an invalid configuration.
var ErrInvalid = errors.New("invalid configuration")

// Source is a named pronunciation list.
type Source struct {
	Name string
	Path string
}

// PronunciationSources parses the Pronunciations setting.
func (c *Config) PronunciationSources() ([]Source, error) {
	var sources []Source
	for _, p := range c.Pronunciations {
		name, path, ok := strings.Cut(p, ":")
		name = strings.TrimSpace(name)
		path = strings.TrimSpace(path)
		if !ok || name == "" || path == "" {
			return nil, fmt.Errorf("%w: pronunciation %q must have the form <name>:<path>", ErrInvalid, p)
		}
		sources = append(sources, Source{Name: name, Path: path})
	}
	return sources, nil
}

// Validate checks that a dictionary can be built from c. All returned errors
// wrap ErrInvalid.
func (c *Config) Validate() error {
	if c.Output == "" && c.Query == "" {
		return fmt.Errorf("%w: no output or query specified", ErrInvalid)
	}
	if c.SourceLanguage == "" || c.TargetLanguage == "" {
		return fmt.Errorf("%w: source and target language are required", ErrInvalid)
	}

	if len(c.Inputs) > 0 {
		if err := bilingual.Supported(c.SourceLanguage, c.TargetLanguage); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	for _, in := range c.Inputs {
		if err := exists("input", in); err != nil {
			return err
		}
	}

	sources, err := c.PronunciationSources()
	if err != nil {
		return err
	}
	for _, s := range sources {
		if err := exists("pronunciation "+s.Name, s.Path); err != nil {
			return err
		}
	}

	if c.WikiDump != "" {
		if c.WikiPrefix == "" {
			return fmt.Errorf("%w: no wiki prefix specified", ErrInvalid)
		}
		if err := exists("wiki dump", c.WikiDump); err != nil {
			return err
		}
	}

	if c.Cover != "" {
		if err := exists("cover", c.Cover); err != nil {
			return err
		}
	}

	if c.BatchSize <= 0 {
		return fmt.Errorf("%w: batch_size must be > 0 (got %d)", ErrInvalid, c.BatchSize)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("%w: log: %w", ErrInvalid, err)
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown level %q", l.Level)
	}
	switch strings.ToLower(strings.TrimSpace(l.Format)) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown format %q", l.Format)
	}
	return nil
}
