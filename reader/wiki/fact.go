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


package wiki

import (
	"github.com/ianlewis/go-kindledict/lexicon"
)

// FactKind is the kind of a Fact.
type FactKind int

const (
	// PronunciationFact registers a pronunciation.
	PronunciationFact FactKind = iota

	// MeaningFact registers a meaning.
	MeaningFact
)

// Fact is a single piece of information extracted from a page.
type Fact struct {
	Kind     FactKind
	Headword string

	// Pronunciation is set for PronunciationFact.
	Pronunciation string

	// Class, Description and Translations are set for MeaningFact.
	Class        lexicon.WordClass
	Description  string
	Translations []string
}

// Apply registers the fact in d. Pronunciations are registered under
// lexicon.WikiSource.
func (f Fact) Apply(d *lexicon.Dictionary) {
	switch f.Kind {
	case PronunciationFact:
		d.AddPronunciation(f.Headword, lexicon.WikiSource, f.Pronunciation)
	case MeaningFact:
		d.AddMeaning(f.Headword, f.Class, lexicon.NewMeaning(f.Description, f.Translations...))
	}
}
