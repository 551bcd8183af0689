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


// Package bilingual reads tab-delimited bilingual word lists such as the
// GNU/FDL English-Czech dictionary. Each row has the form:
//
//	headword<TAB>translation<TAB>tag[<TAB>...]
//
// The tag selects the word class of the row's single meaning.
package bilingual

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ianlewis/go-kindledict/internal/folding"
	"github.com/ianlewis/go-kindledict/internal/tsv"
	"github.com/ianlewis/go-kindledict/lexicon"
)

// ErrUnsupportedPair indicates that no bilingual reader exists for a language
// pair.
var ErrUnsupportedPair = errors.New("unsupported language pair")

// pairs lists the supported source-target language pairs.
var pairs = map[string]bool{
	"en-cs": true,
}

// tags maps tag prefixes to word classes.
var tags = []struct {
	prefix string
	class  lexicon.WordClass
}{
	{"n:", lexicon.Noun},
	{"v:", lexicon.Verb},
	{"adv:", lexicon.Adverb},
	{"adj:", lexicon.Adjective},
	{"pron:", lexicon.Pronoun},
	{"prep:", lexicon.Preposition},
}

// Stats holds reader statistics.
type Stats struct {
	// Rows is the number of rows read.
	Rows int

	// Registered is the number of rows added to the dictionary.
	Registered int

	// Skipped is the number of rows with too few fields.
	Skipped int
}

// Supported returns an error wrapping ErrUnsupportedPair if rows in the
// source language with translations into the target language cannot be read.
func Supported(source, target string) error {
	pair := folding.Key(source) + "-" + folding.Key(target)
	if !pairs[pair] {
		return fmt.Errorf("%w: %s", ErrUnsupportedPair, pair)
	}
	return nil
}

// WordClass returns the word class selected by a row tag.
func WordClass(tag string) lexicon.WordClass {
	tag = strings.TrimSpace(tag)
	for _, t := range tags {
		if strings.HasPrefix(tag, t.prefix) {
			return t.class
		}
	}
	return lexicon.Unknown
}

// Parse reads rows from r into d.
func Parse(d *lexicon.Dictionary, r io.Reader) (Stats, error) {
	rows, err := tsv.Read(r)
	if err != nil {
		return Stats{}, err
	}
	return add(d, rows), nil
}

// ReadFile reads rows from the file at path into d.
func ReadFile(d *lexicon.Dictionary, path string) (Stats, error) {
	if err := Supported(d.SourceLanguage(), d.TargetLanguage()); err != nil {
		return Stats{}, err
	}
	rows, err := tsv.ReadFile(path)
	if err != nil {
		return Stats{}, err
	}
	return add(d, rows), nil
}

func add(d *lexicon.Dictionary, rows [][]string) Stats {
	var stats Stats
	for _, row := range rows {
		stats.Rows++
		if len(row) < 3 {
			stats.Skipped++
			continue
		}

		m := lexicon.NewMeaning("", strings.TrimSpace(row[1]))
		d.AddMeaning(strings.TrimSpace(row[0]), WordClass(row[2]), m)
		stats.Registered++
	}
	return stats
}
