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

package inflect_test

import (
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-kindledict/inflect"
)

// TestRules_Nouns tests Rules.Nouns.
func TestRules_Nouns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		lang     string
		word     string
		expected []string
	}{
		{name: "s", lang: "en", word: "bus", expected: []string{"buses"}},
		{name: "sh", lang: "en", word: "dish", expected: []string{"dishes"}},
		{name: "ch", lang: "en", word: "church", expected: []string{"churches"}},
		{name: "x", lang: "en", word: "box", expected: []string{"boxes"}},
		{name: "o exception", lang: "en", word: "potato", expected: []string{"potatoes"}},
		{name: "o exception folded", lang: "en", word: "Hero", expected: []string{"Heroes"}},
		{name: "o", lang: "en", word: "piano", expected: []string{"pianos"}},
		{name: "consonant y", lang: "en", word: "fly", expected: []string{"flies"}},
		{name: "vowel y", lang: "en", word: "day", expected: []string{"days"}},
		{name: "default", lang: "en", word: "cat", expected: []string{"cats"}},
		{name: "upper case language", lang: "EN", word: "cat", expected: []string{"cats"}},
		{name: "empty", lang: "en", word: "", expected: nil},
		{name: "unsupported language", lang: "cs", word: "pes", expected: nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := inflect.Lookup(test.lang).Nouns(test.word)
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Nouns (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestRules_Verbs tests Rules.Verbs.
func TestRules_Verbs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		lang     string
		word     string
		expected []string
	}{
		{
			name:     "default",
			lang:     "en",
			word:     "walk",
			expected: []string{"walks", "walking", "walked"},
		},
		{
			name:     "drop e",
			lang:     "en",
			word:     "bake",
			expected: []string{"bakes", "baking", "baked"},
		},
		{
			name:     "double e",
			lang:     "en",
			word:     "agree",
			expected: []string{"agrees", "agreeing", "agreed"},
		},
		{
			name:     "consonant ie",
			lang:     "en",
			word:     "tie",
			expected: []string{"ties", "tying", "tied"},
		},
		{
			name:     "double consonant",
			lang:     "en",
			word:     "stop",
			expected: []string{"stops", "stopping", "stopped"},
		},
		{
			name:     "vowel y",
			lang:     "en",
			word:     "play",
			expected: []string{"plays", "playing", "played"},
		},
		{
			name:     "consonant y",
			lang:     "en",
			word:     "carry",
			expected: []string{"carries", "carrying", "carried"},
		},
		{
			name:     "two vowels",
			lang:     "en",
			word:     "rain",
			expected: []string{"rains", "raining", "rained"},
		},
		{
			name:     "es suffix",
			lang:     "en",
			word:     "watch",
			expected: []string{"watches", "watching", "watched"},
		},
		{
			// Irregular forms replace only the past form.
			name:     "irregular",
			lang:     "en",
			word:     "be",
			expected: []string{"bes", "bing", "was", "were", "been", "am", "are", "is"},
		},
		{
			name:     "irregular o exception",
			lang:     "en",
			word:     "go",
			expected: []string{"goes", "going", "went", "gone"},
		},
		{
			name:     "irregular double consonant",
			lang:     "en",
			word:     "run",
			expected: []string{"runs", "running", "ran"},
		},
		{
			name:     "unsupported language",
			lang:     "de",
			word:     "laufen",
			expected: nil,
		},
		{
			name:     "empty",
			lang:     "en",
			word:     "",
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := inflect.Lookup(test.lang).Verbs(test.word)
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Verbs (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestRules_participle checks the present participle rule precedence.
func TestRules_participle(t *testing.T) {
	t.Parallel()

	rules := inflect.Lookup("en")
	for word, want := range map[string]string{
		"be":   "bing",
		"make": "making",
		"tie":  "tying",
		"run":  "running",
		"walk": "walking",
		"see":  "seeing",
		"eat":  "eating",
		"fix":  "fixing",
	} {
		got, ok := rules.Participle.Apply(word)
		if !ok {
			t.Errorf("Participle.Apply(%q): no rule matched", word)
			continue
		}
		if got != want {
			t.Errorf("Participle.Apply(%q); want: %q, got: %q", word, want, got)
		}
	}
}

// TestRules_IsIrregular tests Rules.IsIrregular.
func TestRules_IsIrregular(t *testing.T) {
	t.Parallel()

	en := inflect.Lookup("en")
	if !en.IsIrregular("Be") {
		t.Errorf("IsIrregular(%q) = false", "Be")
	}
	if en.IsIrregular("walk") {
		t.Errorf("IsIrregular(%q) = true", "walk")
	}
	if inflect.Lookup("xx").IsIrregular("be") {
		t.Errorf("no-op rules: IsIrregular(%q) = true", "be")
	}
}

// TestRuleList_Apply tests RuleList.Apply.
func TestRuleList_Apply(t *testing.T) {
	t.Parallel()

	rules := inflect.RuleList{
		{Pattern: regexp.MustCompile(`^(.*)um$`), Words: map[string]bool{"datum": true}, Replace: "${1}a"},
		{Pattern: regexp.MustCompile(`^(.*)um$`), Replace: "${1}ums"},
	}

	tests := []struct {
		word     string
		expected string
		ok       bool
	}{
		{word: "Datum", expected: "Data", ok: true},
		{word: "album", expected: "albums", ok: true},
		{word: "cat", expected: "", ok: false},
	}

	for _, test := range tests {
		got, ok := rules.Apply(test.word)
		if ok != test.ok {
			t.Errorf("Apply(%q) matched; want: %v, got: %v", test.word, test.ok, ok)
		}
		if got != test.expected {
			t.Errorf("Apply(%q); want: %q, got: %q", test.word, test.expected, got)
		}
	}
}
