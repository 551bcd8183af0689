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
	"maps"
	"slices"
)

// Meaning is a single sense of a term within a word class.
type Meaning struct {
	order        int
	description  string
	translations map[string]struct{}
}

// NewMeaning returns a new Meaning with the given description (gloss) and
// translations. Empty translations are ignored.
func NewMeaning(description string, translations ...string) *Meaning {
	m := &Meaning{
		description:  description,
		translations: map[string]struct{}{},
	}
	for _, t := range translations {
		m.AddTranslation(t)
	}
	return m
}

// AddTranslation adds a translation to the meaning. Empty translations are
// ignored.
func (m *Meaning) AddTranslation(translation string) {
	if translation == "" {
		return
	}
	if m.translations == nil {
		m.translations = map[string]struct{}{}
	}
	m.translations[translation] = struct{}{}
}

// Description returns the meaning's gloss.
func (m *Meaning) Description() string {
	return m.description
}

// Order returns the display order of the meaning within its word class. The
// order is assigned when the meaning is first added to a term.
func (m *Meaning) Order() int {
	return m.order
}

// Translations returns the meaning's translations in sorted order.
func (m *Meaning) Translations() []string {
	return slices.Sorted(maps.Keys(m.translations))
}

// IsEmpty returns true if the meaning has neither a description nor
// translations.
func (m *Meaning) IsEmpty() bool {
	return m.description == "" && len(m.translations) == 0
}

