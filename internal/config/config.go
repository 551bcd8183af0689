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


// Package config loads the kindledict configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the configuration of a dictionary build.
type Config struct {
	// SourceLanguage is the headword language code.
	SourceLanguage string `yaml:"source_language" env:"KINDLEDICT_SOURCE_LANGUAGE" env-default:"en"`

	// TargetLanguage is the translation language code.
	TargetLanguage string `yaml:"target_language" env:"KINDLEDICT_TARGET_LANGUAGE" env-default:"cs"`

	Title  string `yaml:"title"  env:"KINDLEDICT_TITLE"`
	Author string `yaml:"author" env:"KINDLEDICT_AUTHOR"`

	// Inputs are bilingual word lists.
	Inputs []string `yaml:"inputs" env:"KINDLEDICT_INPUTS" env-separator:","`

	// Pronunciations are pronunciation lists given as "name:path".
	Pronunciations []string `yaml:"pronunciations" env:"KINDLEDICT_PRONUNCIATIONS" env-separator:","`

	// WikiDump is a Wiktionary XML dump.
	WikiDump string `yaml:"wiki_dump" env:"KINDLEDICT_WIKI_DUMP"`

	// WikiPrefix is the target language name used in the dump's
	// translation tables, e.g. "Czech".
	WikiPrefix string `yaml:"wiki_prefix" env:"KINDLEDICT_WIKI_PREFIX"`

	// Reverse builds the dictionary from translations to headwords.
	Reverse bool `yaml:"reverse" env:"KINDLEDICT_REVERSE"`

	// Output is the package directory.
	Output string `yaml:"output" env:"KINDLEDICT_OUTPUT"`

	// Force allows writing into an existing output directory.
	Force bool `yaml:"force" env:"KINDLEDICT_FORCE"`

	// Cover is an optional cover image.
	Cover string `yaml:"cover" env:"KINDLEDICT_COVER"`

	// BatchSize is the number of entries per content document.
	BatchSize int `yaml:"batch_size" env:"KINDLEDICT_BATCH_SIZE" env-default:"30000"`

	// Query is a headword to look up.
	Query string `yaml:"query" env:"KINDLEDICT_QUERY"`

	Log LogConfig `yaml:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"KINDLEDICT_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"KINDLEDICT_LOG_FORMAT" env-default:"text"`
}

// Load reads the configuration from a YAML file and environment variables.
// Priority: ENV > file > defaults. If path is empty the first existing file
// in locations is read; if there is none only the environment is read.
func Load(path string, locations ...string) (*Config, error) {
	var cfg Config

	if path == "" {
		for _, loc := range locations {
			if _, err := os.Stat(loc); err == nil {
				path = loc
				break
			}
		}
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	}

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return &cfg, nil
}

// exists returns an error if no file exists at path.
func exists(what, path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s %q does not exist", ErrInvalid, what, path)
		}
		return fmt.Errorf("%w: %s %q: %w", ErrInvalid, what, path, err)
	}
	if fi.IsDir() {
		return fmt.Errorf("%w: %s %q is a directory", ErrInvalid, what, path)
	}
	return nil
}
