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


// Package wiki reads Wiktionary XML dumps. Dumps are streamed one page at a
// time so memory use does not depend on the size of the dump.
//
// Only the English section of each article is read. Pronunciations come
// from {{IPA}} templates and meanings from translation tables delimited by
// {{trans-top}} and {{trans-bottom}}, with the word class taken from the
// preceding {{en-*}} headword template.
package wiki

import (
	"errors"
	"fmt"
	"io"

	"github.com/ianlewis/go-kindledict/internal/input"
	"github.com/ianlewis/go-kindledict/lexicon"
)

var (
	// ErrMalformed indicates that the dump could not be decoded.
	ErrMalformed = errors.New("malformed dump")

	// ErrNoPrefix indicates that no translation prefix was given.
	ErrNoPrefix = errors.New("missing translation prefix")
)

// Stats holds reader statistics.
type Stats struct {
	// Pages is the number of pages read.
	Pages int

	// Extracted is the number of article pages facts were extracted from.
	Extracted int

	// Pronunciations is the number of pronunciations registered.
	Pronunciations int

	// Meanings is the number of meanings registered.
	Meanings int
}

// Parse reads the dump from r into d. Errors decoding the dump are fatal
// and wrap ErrMalformed.
func Parse(d *lexicon.Dictionary, r io.Reader, opts Options) (Stats, error) {
	if opts.Prefix == "" {
		return Stats{}, ErrNoPrefix
	}

	var stats Stats
	x := NewExtractor(opts)
	dec := NewDecoder(r)
	var m PageMachine
	for {
		ev, err := dec.Next()
		if errors.Is(err, io.EOF) {
			return stats, nil
		}
		if err != nil {
			return stats, err
		}

		if ev.Kind == EndElement && ev.Name == "page" {
			stats.Pages++
		}

		var page *Page
		m, page = m.Next(ev)
		if page == nil {
			continue
		}

		stats.Extracted++
		for _, f := range x.Extract(page) {
			f.Apply(d)
			switch f.Kind {
			case PronunciationFact:
				stats.Pronunciations++
			case MeaningFact:
				stats.Meanings++
			}
		}
	}
}

// Read reads the dump at path into d. Dumps are usually bzip2 compressed;
// any compression supported by input.Open may be used. Pronunciations are
// only taken for d's source language, and translations from lines starting
// with prefix.
func Read(d *lexicon.Dictionary, path, prefix string) (Stats, error) {
	f, err := input.Open(path)
	if err != nil {
		return Stats{}, err
	}
	defer f.Close()

	stats, err := Parse(d, f, Options{
		SourceLanguage: d.SourceLanguage(),
		Prefix:         prefix,
	})
	if err != nil {
		return stats, fmt.Errorf("reading %q: %w", path, err)
	}
	return stats, nil
}
