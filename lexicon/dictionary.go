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

package lexicon

import (
	"iter"
	"maps"
	"slices"

	"github.com/ianlewis/go-kindledict/inflect"
	"github.com/ianlewis/go-kindledict/internal/folding"
)

// Options are options for a new Dictionary.
type Options struct {
	// SourceLanguage is the two-letter code of the headword language.
	SourceLanguage string

	// TargetLanguage is the two-letter code of the translation language.
	TargetLanguage string

	// Title is the dictionary's display title.
	Title string

	// Author is the dictionary's author.
	Author string
}

// DefaultOptions is the default options for a Dictionary.
var DefaultOptions = &Options{
	SourceLanguage: "en",
	TargetLanguage: "cs",
}

// Dictionary is an in-memory bilingual dictionary keyed by case-folded
// headword.
type Dictionary struct {
	sourceLanguage string
	targetLanguage string
	title          string
	author         string

	terms map[string]*Term
	rules *inflect.Rules
}

// New returns a new empty Dictionary.
func New(options *Options) *Dictionary {
	if options == nil {
		options = DefaultOptions
	}
	return &Dictionary{
		sourceLanguage: options.SourceLanguage,
		targetLanguage: options.TargetLanguage,
		title:          options.Title,
		author:         options.Author,
		terms:          map[string]*Term{},
		rules:          inflect.Lookup(options.SourceLanguage),
	}
}

// SourceLanguage returns the language code of the headwords.
func (d *Dictionary) SourceLanguage() string {
	return d.sourceLanguage
}

// TargetLanguage returns the language code of the translations.
func (d *Dictionary) TargetLanguage() string {
	return d.targetLanguage
}

// Title returns the dictionary title.
func (d *Dictionary) Title() string {
	return d.title
}

// Author returns the dictionary author.
func (d *Dictionary) Author() string {
	return d.author
}

// Rules returns the inflection rules of the source language.
func (d *Dictionary) Rules() *inflect.Rules {
	return d.rules
}

func (d *Dictionary) term(headword string) *Term {
	key := folding.Key(headword)
	t, ok := d.terms[key]
	if !ok {
		t = newTerm(headword)
		d.terms[key] = t
	}
	return t
}

// AddPronunciation appends a pronunciation of headword from the named source.
// Repeated pronunciations are kept. Empty pronunciations are ignored.
func (d *Dictionary) AddPronunciation(headword, source, pronunciation string) {
	if pronunciation == "" {
		return
	}
	d.term(headword).addPronunciation(source, pronunciation)
}

// AddMeaning merges the meaning into the headword's term under the given
// word class. Translations are unioned with any existing meaning with the same
// case-folded description. The inflected forms of the headword for the word
// class are added to the term.
func (d *Dictionary) AddMeaning(headword string, class WordClass, meaning *Meaning) {
	if meaning == nil {
		meaning = NewMeaning("")
	}
	t := d.term(headword)
	t.addInflections(d.Inflect(headword, class))
	t.addMeaning(class, meaning)
}

// Inflect returns the inflected forms of headword for the given word class
// using the rules of the source language. Only nouns and verbs are inflected.
func (d *Dictionary) Inflect(headword string, class WordClass) []string {
	switch class {
	case Noun:
		return d.rules.Nouns(headword)
	case Verb:
		return d.rules.Verbs(headword)
	default:
		return nil
	}
}

// Lookup returns the term for the given word. Lookup is case-insensitive.
func (d *Dictionary) Lookup(word string) (*Term, bool) {
	t, ok := d.terms[folding.Key(word)]
	return t, ok
}

// Len returns the number of terms including empty terms.
func (d *Dictionary) Len() int {
	return len(d.terms)
}

// All returns an iterator over all terms sorted by key.
func (d *Dictionary) All() iter.Seq2[string, *Term] {
	return func(yield func(string, *Term) bool) {
		for _, k := range slices.Sorted(maps.Keys(d.terms)) {
			if !yield(k, d.terms[k]) {
				return
			}
		}
	}
}
