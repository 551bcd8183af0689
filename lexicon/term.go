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
	"cmp"
	"maps"
	"slices"

	"github.com/ianlewis/go-kindledict/internal/folding"
)

// WikiSource is the pronunciation source name used for pronunciations crawled
// from a wiki dump.
const WikiSource = "wiki"

// Term is a single dictionary entry.
type Term struct {
	headword       string
	inflections    map[string]struct{}
	pronunciations map[string][]string
	classes        map[WordClass]map[string]*Meaning
}

func newTerm(headword string) *Term {
	return &Term{
		headword:       headword,
		inflections:    map[string]struct{}{},
		pronunciations: map[string][]string{},
		classes:        map[WordClass]map[string]*Meaning{},
	}
}

// Headword returns the headword as it was first added.
func (t *Term) Headword() string {
	return t.headword
}

// Inflections returns the inflected forms of the headword in sorted order.
func (t *Term) Inflections() []string {
	return slices.Sorted(maps.Keys(t.inflections))
}

// Sources returns the names of the term's pronunciation sources in sorted
// order.
func (t *Term) Sources() []string {
	return slices.Sorted(maps.Keys(t.pronunciations))
}

// Pronunciations returns the pronunciations from the named source in the
// order they were added.
func (t *Term) Pronunciations(source string) []string {
	return slices.Clone(t.pronunciations[source])
}

// Classes returns the word classes with meanings in word class order.
func (t *Term) Classes() []WordClass {
	return slices.Sorted(maps.Keys(t.classes))
}

// Meanings returns the meanings of the given word class sorted by their
// display order.
func (t *Term) Meanings(class WordClass) []*Meaning {
	meanings := slices.Collect(maps.Values(t.classes[class]))
	slices.SortFunc(meanings, func(a, b *Meaning) int {
		if c := cmp.Compare(a.order, b.order); c != 0 {
			return c
		}
		return cmp.Compare(a.description, b.description)
	})
	return meanings
}

// IsEmpty returns true if the term has no headword or has neither
// pronunciations nor meanings. Empty terms are not exported.
func (t *Term) IsEmpty() bool {
	if t.headword == "" {
		return true
	}
	return len(t.pronunciations) == 0 && len(t.classes) == 0
}

func (t *Term) addInflections(forms []string) {
	key := folding.Key(t.headword)
	for _, f := range forms {
		if f == "" || folding.Key(f) == key {
			continue
		}
		t.inflections[f] = struct{}{}
	}
}

func (t *Term) addPronunciation(source, pronunciation string) {
	t.pronunciations[source] = append(t.pronunciations[source], pronunciation)
}

func (t *Term) addMeaning(class WordClass, m *Meaning) {
	meanings, ok := t.classes[class]
	if !ok {
		meanings = map[string]*Meaning{}
		t.classes[class] = meanings
	}

	key := folding.Key(m.description)
	existing, ok := meanings[key]
	if !ok {
		// The order is fixed on first insertion.
		existing = &Meaning{
			order:        len(meanings),
			description:  m.description,
			translations: map[string]struct{}{},
		}
		meanings[key] = existing
	}
	for tr := range m.translations {
		existing.translations[tr] = struct{}{}
	}
}
