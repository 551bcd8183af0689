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

package lexicon_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-kindledict/lexicon"
)

// meaning is a comparable snapshot of a lexicon.Meaning.
type meaning struct {
	Order        int
	Description  string
	Translations []string
}

func meanings(t *lexicon.Term, class lexicon.WordClass) []meaning {
	var got []meaning
	for _, m := range t.Meanings(class) {
		got = append(got, meaning{
			Order:        m.Order(),
			Description:  m.Description(),
			Translations: m.Translations(),
		})
	}
	return got
}

func mustLookup(t *testing.T, d *lexicon.Dictionary, word string) *lexicon.Term {
	t.Helper()
	term, ok := d.Lookup(word)
	if !ok {
		t.Fatalf("Lookup(%q): not found", word)
	}
	return term
}

// TestDictionary_Lookup tests that facts for case variants of a headword
// resolve to the same term.
func TestDictionary_Lookup(t *testing.T) {
	t.Parallel()

	d := lexicon.New(nil)
	d.AddPronunciation("Apple", "uk", "/ˈæp.əl/")
	d.AddMeaning("apple", lexicon.Noun, lexicon.NewMeaning("", "jablko"))
	d.AddPronunciation("apple", "us", "/ˈæp.əl/")

	if want, got := 1, d.Len(); want != got {
		t.Fatalf("Len; want: %d, got: %d", want, got)
	}

	term := mustLookup(t, d, "aPPle")
	if want, got := "Apple", term.Headword(); want != got {
		t.Errorf("Headword; want: %q, got: %q", want, got)
	}
	if diff := cmp.Diff([]string{"uk", "us"}, term.Sources()); diff != "" {
		t.Errorf("Sources (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"apples"}, term.Inflections()); diff != "" {
		t.Errorf("Inflections (-want, +got):\n%s", diff)
	}

	if _, ok := d.Lookup("pear"); ok {
		t.Errorf("Lookup(%q): found", "pear")
	}
}

// TestDictionary_AddPronunciation tests Dictionary.AddPronunciation.
func TestDictionary_AddPronunciation(t *testing.T) {
	t.Parallel()

	d := lexicon.New(nil)
	d.AddPronunciation("read", "uk", "/riːd/")
	d.AddPronunciation("read", "uk", "/rɛd/")
	d.AddPronunciation("read", "uk", "/riːd/")
	d.AddPronunciation("read", "uk", "")

	term := mustLookup(t, d, "read")
	if diff := cmp.Diff([]string{"/riːd/", "/rɛd/", "/riːd/"}, term.Pronunciations("uk")); diff != "" {
		t.Errorf("Pronunciations (-want, +got):\n%s", diff)
	}
	if got := term.Pronunciations("us"); got != nil {
		t.Errorf("Pronunciations(%q); want: nil, got: %q", "us", got)
	}
}

// TestDictionary_AddMeaning tests Dictionary.AddMeaning.
func TestDictionary_AddMeaning(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		add      func(d *lexicon.Dictionary)
		class    lexicon.WordClass
		expected []meaning
	}{
		{
			name: "single",
			add: func(d *lexicon.Dictionary) {
				d.AddMeaning("dog", lexicon.Noun, lexicon.NewMeaning("animal", "pes"))
			},
			class: lexicon.Noun,
			expected: []meaning{
				{Order: 0, Description: "animal", Translations: []string{"pes"}},
			},
		},
		{
			name: "union translations",
			add: func(d *lexicon.Dictionary) {
				d.AddMeaning("dog", lexicon.Noun, lexicon.NewMeaning("animal", "pes"))
				d.AddMeaning("dog", lexicon.Noun, lexicon.NewMeaning("Animal", "pejsek", "pes"))
			},
			class: lexicon.Noun,
			expected: []meaning{
				{Order: 0, Description: "animal", Translations: []string{"pejsek", "pes"}},
			},
		},
		{
			name: "idempotent",
			add: func(d *lexicon.Dictionary) {
				for range 3 {
					d.AddMeaning("dog", lexicon.Noun, lexicon.NewMeaning("animal", "pes"))
				}
			},
			class: lexicon.Noun,
			expected: []meaning{
				{Order: 0, Description: "animal", Translations: []string{"pes"}},
			},
		},
		{
			name: "first seen order",
			add: func(d *lexicon.Dictionary) {
				d.AddMeaning("dog", lexicon.Noun, lexicon.NewMeaning("person", "chlap"))
				d.AddMeaning("dog", lexicon.Noun, lexicon.NewMeaning("animal", "pes"))
				d.AddMeaning("dog", lexicon.Noun, lexicon.NewMeaning("", "pes"))
				// Re-adding must not change the order.
				d.AddMeaning("dog", lexicon.Noun, lexicon.NewMeaning("PERSON", "padouch"))
			},
			class: lexicon.Noun,
			expected: []meaning{
				{Order: 0, Description: "person", Translations: []string{"chlap", "padouch"}},
				{Order: 1, Description: "animal", Translations: []string{"pes"}},
				{Order: 2, Description: "", Translations: []string{"pes"}},
			},
		},
		{
			name: "order per class",
			add: func(d *lexicon.Dictionary) {
				d.AddMeaning("dog", lexicon.Noun, lexicon.NewMeaning("animal", "pes"))
				d.AddMeaning("dog", lexicon.Verb, lexicon.NewMeaning("follow", "stopovat"))
			},
			class: lexicon.Verb,
			expected: []meaning{
				{Order: 0, Description: "follow", Translations: []string{"stopovat"}},
			},
		},
		{
			name: "empty translation ignored",
			add: func(d *lexicon.Dictionary) {
				d.AddMeaning("dog", lexicon.Noun, lexicon.NewMeaning("animal", ""))
			},
			class: lexicon.Noun,
			expected: []meaning{
				{Order: 0, Description: "animal"},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			d := lexicon.New(nil)
			test.add(d)

			term := mustLookup(t, d, "dog")
			if diff := cmp.Diff(test.expected, meanings(term, test.class)); diff != "" {
				t.Fatalf("Meanings (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestDictionary_AddMeaning_inflections tests that inflections are derived
// when meanings are added.
func TestDictionary_AddMeaning_inflections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		lang     string
		headword string
		classes  []lexicon.WordClass
		expected []string
	}{
		{
			name:     "noun",
			lang:     "en",
			headword: "potato",
			classes:  []lexicon.WordClass{lexicon.Noun},
			expected: []string{"potatoes"},
		},
		{
			name:     "verb",
			lang:     "en",
			headword: "stop",
			classes:  []lexicon.WordClass{lexicon.Verb},
			expected: []string{"stopped", "stopping", "stops"},
		},
		{
			name:     "noun and verb deduplicated",
			lang:     "en",
			headword: "walk",
			classes:  []lexicon.WordClass{lexicon.Noun, lexicon.Verb, lexicon.Noun},
			expected: []string{"walked", "walking", "walks"},
		},
		{
			name:     "adjective",
			lang:     "en",
			headword: "red",
			classes:  []lexicon.WordClass{lexicon.Adjective},
			expected: nil,
		},
		{
			name:     "unsupported language",
			lang:     "cs",
			headword: "pes",
			classes:  []lexicon.WordClass{lexicon.Noun},
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			d := lexicon.New(&lexicon.Options{SourceLanguage: test.lang})
			for _, c := range test.classes {
				d.AddMeaning(test.headword, c, lexicon.NewMeaning("", "x"))
			}

			term := mustLookup(t, d, test.headword)
			if diff := cmp.Diff(test.expected, term.Inflections()); diff != "" {
				t.Fatalf("Inflections (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestTerm_IsEmpty tests Term.IsEmpty.
func TestTerm_IsEmpty(t *testing.T) {
	t.Parallel()

	d := lexicon.New(nil)
	d.AddPronunciation("", "uk", "/x/")
	d.AddPronunciation("word", "uk", "/wɜːd/")
	d.AddMeaning("other", lexicon.Unknown, lexicon.NewMeaning("", "jiný"))

	tests := map[string]bool{
		"":      true,
		"word":  false,
		"other": false,
	}
	for word, want := range tests {
		term := mustLookup(t, d, word)
		if got := term.IsEmpty(); got != want {
			t.Errorf("IsEmpty(%q); want: %v, got: %v", word, want, got)
		}
	}

	// Empty terms still count.
	if want, got := 3, d.Len(); want != got {
		t.Errorf("Len; want: %d, got: %d", want, got)
	}
}

// TestDictionary_All tests Dictionary.All.
func TestDictionary_All(t *testing.T) {
	t.Parallel()

	d := lexicon.New(nil)
	for _, w := range []string{"pear", "Apple", "banana"} {
		d.AddMeaning(w, lexicon.Noun, lexicon.NewMeaning("fruit"))
	}

	var keys []string
	for k := range d.All() {
		keys = append(keys, k)
	}
	if diff := cmp.Diff([]string{"apple", "banana", "pear"}, keys); diff != "" {
		t.Fatalf("All (-want, +got):\n%s", diff)
	}
}

// TestDictionary_Reverse tests Dictionary.Reverse.
func TestDictionary_Reverse(t *testing.T) {
	t.Parallel()

	d := lexicon.New(&lexicon.Options{
		SourceLanguage: "en",
		TargetLanguage: "cs",
		Title:          "English-Czech",
		Author:         "me",
	})
	d.AddMeaning("dog", lexicon.Noun, lexicon.NewMeaning("animal", "pes", "pejsek"))
	d.AddMeaning("hound", lexicon.Noun, lexicon.NewMeaning("animal", "pes"))
	d.AddMeaning("dog", lexicon.Verb, lexicon.NewMeaning("", "sledovat"))
	d.AddPronunciation("cat", "uk", "/kæt/")

	r := d.Reverse()

	if want, got := "cs", r.SourceLanguage(); want != got {
		t.Errorf("SourceLanguage; want: %q, got: %q", want, got)
	}
	if want, got := "en", r.TargetLanguage(); want != got {
		t.Errorf("TargetLanguage; want: %q, got: %q", want, got)
	}
	if want, got := "English-Czech (reverse)", r.Title(); want != got {
		t.Errorf("Title; want: %q, got: %q", want, got)
	}
	if want, got := 3, r.Len(); want != got {
		t.Fatalf("Len; want: %d, got: %d", want, got)
	}

	pes := mustLookup(t, r, "pes")
	if diff := cmp.Diff([]meaning{
		{Order: 0, Description: "animal", Translations: []string{"dog", "hound"}},
	}, meanings(pes, lexicon.Noun)); diff != "" {
		t.Errorf("pes (-want, +got):\n%s", diff)
	}
	if got := pes.Inflections(); len(got) != 0 {
		t.Errorf("pes inflections; want: none, got: %q", got)
	}

	sledovat := mustLookup(t, r, "sledovat")
	if diff := cmp.Diff([]meaning{
		{Order: 0, Description: "", Translations: []string{"dog"}},
	}, meanings(sledovat, lexicon.Verb)); diff != "" {
		t.Errorf("sledovat (-want, +got):\n%s", diff)
	}

	if _, ok := r.Lookup("cat"); ok {
		t.Errorf("Lookup(%q): found", "cat")
	}
}

// TestWordClass_String tests WordClass.String.
func TestWordClass_String(t *testing.T) {
	t.Parallel()

	tests := map[lexicon.WordClass]string{
		lexicon.Verb:          "verb",
		lexicon.Noun:          "noun",
		lexicon.LinkingWord:   "linking",
		lexicon.Unknown:       "other",
		lexicon.WordClass(42): "other",
	}
	for c, want := range tests {
		if got := c.String(); got != want {
			t.Errorf("String(%d); want: %q, got: %q", int(c), want, got)
		}
	}
}
