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

// reverseTitleSuffix is appended to the title of a reversed dictionary.
const reverseTitleSuffix = " (reverse)"

// Reverse returns a new dictionary keyed by the translations of d. Each
// translation becomes a headword whose meanings keep the word class and
// description of the original meaning and list the original headwords as
// translations. Source and target languages are swapped.
//
// Every translation string of d is preserved. Meaning order is not: orders in
// the reversed dictionary are assigned in sorted key order of d.
// Pronunciations are not carried over as they belong to the original
// headwords.
func (d *Dictionary) Reverse() *Dictionary {
	title := d.title
	if title != "" {
		title += reverseTitleSuffix
	}
	r := New(&Options{
		SourceLanguage: d.targetLanguage,
		TargetLanguage: d.sourceLanguage,
		Title:          title,
		Author:         d.author,
	})

	for _, t := range d.All() {
		if t.IsEmpty() {
			continue
		}
		for _, class := range t.Classes() {
			for _, m := range t.Meanings(class) {
				for _, tr := range m.Translations() {
					r.AddMeaning(tr, class, NewMeaning(m.description, t.headword))
				}
			}
		}
	}
	return r
}
