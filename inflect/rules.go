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

package inflect

import (
	"github.com/ianlewis/go-kindledict/internal/folding"
)

// Rules is the inflection capability of a single language. A nil RuleList
// derives no form.
type Rules struct {
	// Plural derives the plural of a noun.
	Plural RuleList

	// ThirdPerson derives the third person singular present of a verb.
	ThirdPerson RuleList

	// Participle derives the present participle of a verb.
	Participle RuleList

	// Past derives the past form of a regular verb.
	Past RuleList

	// Irregular maps the folded infinitive of an irregular verb to all of
	// its irregular forms. Irregular forms replace the forms derived by
	// Past.
	Irregular map[string][]string
}

var nop = &Rules{}

var languages = map[string]*Rules{
	"en": english,
}

// Lookup returns the rules for the given two-letter language code. A no-op
// ruleset is returned for unsupported languages.
func Lookup(lang string) *Rules {
	if r, ok := languages[folding.Key(lang)]; ok {
		return r
	}
	return nop
}

// Nouns returns the derived forms of the noun word.
func (r *Rules) Nouns(word string) []string {
	if word == "" {
		return nil
	}
	var forms []string
	if w, ok := r.Plural.Apply(word); ok {
		forms = append(forms, w)
	}
	return forms
}

// Verbs returns the derived forms of the verb word: the third person
// singular, the present participle and the past forms, in that order.
func (r *Rules) Verbs(word string) []string {
	if word == "" {
		return nil
	}
	var forms []string
	if w, ok := r.ThirdPerson.Apply(word); ok {
		forms = append(forms, w)
	}
	if w, ok := r.Participle.Apply(word); ok {
		forms = append(forms, w)
	}
	if irregular, ok := r.Irregular[folding.Key(word)]; ok {
		return append(forms, irregular...)
	}
	if w, ok := r.Past.Apply(word); ok {
		forms = append(forms, w)
	}
	return forms
}

// IsIrregular reports whether word is in the irregular verb table.
func (r *Rules) IsIrregular(word string) bool {
	_, ok := r.Irregular[folding.Key(word)]
	return ok
}
