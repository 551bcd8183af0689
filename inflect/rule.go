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
	"regexp"

	"github.com/ianlewis/go-kindledict/internal/folding"
)

// Rule is a single text pattern rule. A rule matches a word when Pattern
// matches it and, if Words is non-nil, the word's folded form is in Words.
// A matching word is rewritten by expanding Replace against Pattern.
type Rule struct {
	Pattern *regexp.Regexp
	Words   map[string]bool
	Replace string
}

// Apply rewrites word if the rule matches. The second return value reports
// whether the rule matched.
func (r Rule) Apply(word string) (string, bool) {
	if r.Pattern == nil || !r.Pattern.MatchString(word) {
		return "", false
	}
	if r.Words != nil && !r.Words[folding.Key(word)] {
		return "", false
	}
	return r.Pattern.ReplaceAllString(word, r.Replace), true
}

// RuleList is an ordered list of rules where the first matching rule wins.
type RuleList []Rule

// Apply applies the first matching rule to word. The second return value is
// false if no rule matched.
func (l RuleList) Apply(word string) (string, bool) {
	for _, r := range l {
		if w, ok := r.Apply(word); ok {
			return w, true
		}
	}
	return "", false
}

func words(w ...string) map[string]bool {
	m := make(map[string]bool, len(w))
	for _, s := range w {
		m[s] = true
	}
	return m
}
