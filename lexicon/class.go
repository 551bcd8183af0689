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

// WordClass is a grammatical category. Word classes are ordered by their
// value; rendered sections are sorted in this order.
type WordClass int

const (
	// Verb is a verb.
	Verb WordClass = iota

	// Noun is a noun.
	Noun

	// Adjective is an adjective.
	Adjective

	// Adverb is an adverb.
	Adverb

	// Preposition is a preposition.
	Preposition

	// Determiner is a determiner.
	Determiner

	// Pronoun is a pronoun.
	Pronoun

	// LinkingWord is a conjunction or other linking word.
	LinkingWord

	// Unknown is used when the word class could not be determined.
	Unknown
)

var classLabels = [...]string{
	Verb:        "verb",
	Noun:        "noun",
	Adjective:   "adjective",
	Adverb:      "adverb",
	Preposition: "preposition",
	Determiner:  "determiner",
	Pronoun:     "pronoun",
	LinkingWord: "linking",
	Unknown:     "other",
}

// String returns the display label of the word class.
func (c WordClass) String() string {
	if c < Verb || c > Unknown {
		return classLabels[Unknown]
	}
	return classLabels[c]
}
