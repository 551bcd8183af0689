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
	"regexp"
	"slices"
	"strings"

	"github.com/ianlewis/go-kindledict/internal/folding"
	"github.com/ianlewis/go-kindledict/lexicon"
)

// englishSection is the folded name of the only section facts are taken from.
const englishSection = "english"

var (
	templateRe     = regexp.MustCompile(`\{\{(.*?)}}`)
	translationsRe = regexp.MustCompile(`^([^/]+)/translations$`)
	sectionRe      = regexp.MustCompile(`^==([^=]+)==$`)
)

// classTemplates maps headword templates to word classes.
var classTemplates = map[string]lexicon.WordClass{
	"en-noun": lexicon.Noun,
	"en-verb": lexicon.Verb,
	"en-adj":  lexicon.Adjective,
	"en-adv":  lexicon.Adverb,
	"en-det":  lexicon.Determiner,
	"en-con":  lexicon.LinkingWord,
	"en-pron": lexicon.Pronoun,
	"en-prep": lexicon.Preposition,
}

// Options configures extraction.
type Options struct {
	// SourceLanguage is the language code pronunciations must be tagged with.
	SourceLanguage string

	// Prefix is the name of the target language as it appears at the start
	// of translation lines, e.g. "Czech" for "* Czech: {{t+|cs|pes}}".
	Prefix string
}

// Extractor extracts facts from pages.
type Extractor struct {
	sourceLanguage string
	prefixRe       *regexp.Regexp
}

// NewExtractor returns an Extractor for opts.
func NewExtractor(opts Options) *Extractor {
	return &Extractor{
		sourceLanguage: opts.SourceLanguage,
		prefixRe:       regexp.MustCompile(`^\*.?\s` + regexp.QuoteMeta(opts.Prefix) + `:`),
	}
}

// pending is a meaning being collected from a translation table.
type pending struct {
	description  string
	translations []string
}

func (p pending) isEmpty() bool {
	return p.description == "" && len(p.translations) == 0
}

// LineMachine extracts facts from the lines of a single page.
type LineMachine struct {
	x        *Extractor
	headword string

	section string
	class   lexicon.WordClass
	meaning pending
	done    bool
}

// Start returns a LineMachine for the page with the given title.
func (x *Extractor) Start(title string) LineMachine {
	headword := strings.TrimSpace(title)
	if m := translationsRe.FindStringSubmatch(headword); m != nil {
		headword = m[1]
	}
	return LineMachine{
		x:        x,
		headword: headword,
		class:    lexicon.Unknown,
	}
}

// Done reports whether the rest of the page can be skipped.
func (m LineMachine) Done() bool {
	return m.done
}

// Next returns the machine state after line and the facts it produced.
func (m LineMachine) Next(line string) (LineMachine, []Fact) {
	if m.done {
		return m, nil
	}

	if s := sectionRe.FindStringSubmatch(line); s != nil {
		m.section = folding.Key(s[1])
	}
	// Language sections after English are not read.
	if m.section != "" && m.section != englishSection {
		m.done = true
		return m, nil
	}

	var facts []Fact
	for _, t := range templateRe.FindAllStringSubmatch(line, -1) {
		parts := strings.Split(t[1], "|")
		switch control := strings.TrimSpace(parts[0]); control {
		case "IPA":
			if len(parts) > 1 && strings.TrimSpace(parts[1]) != m.x.sourceLanguage {
				continue
			}
			if m.section != englishSection {
				continue
			}
			for _, p := range parts[min(2, len(parts)):] {
				p = strings.TrimSpace(p)
				if !strings.HasPrefix(p, "/") {
					continue
				}
				facts = append(facts, Fact{
					Kind:          PronunciationFact,
					Headword:      m.headword,
					Pronunciation: p,
				})
			}
		case "trans-top":
			facts = m.flush(facts)
			m.meaning = pending{}
			if len(parts) > 1 && m.section == englishSection {
				m.meaning.description = strings.TrimSpace(parts[1])
			}
		case "trans-bottom":
			facts = m.flush(facts)
			m.meaning = pending{}
		default:
			if c, ok := classTemplates[control]; ok {
				m.class = c
				continue
			}
			if len(parts) > 2 && m.x.prefixRe.MatchString(line) {
				if tr := strings.TrimSpace(parts[2]); tr != "" {
					m.meaning.translations = append(slices.Clip(m.meaning.translations), tr)
				}
			}
		}
	}
	return m, facts
}

// End returns the facts still pending at the end of the page.
func (m LineMachine) End() []Fact {
	return m.flush(nil)
}

// flush appends the pending meaning to facts if it is not empty.
func (m LineMachine) flush(facts []Fact) []Fact {
	if m.meaning.isEmpty() {
		return facts
	}
	return append(facts, Fact{
		Kind:         MeaningFact,
		Headword:     m.headword,
		Class:        m.class,
		Description:  m.meaning.description,
		Translations: m.meaning.translations,
	})
}

// Extract returns all facts found in page.
func (x *Extractor) Extract(page *Page) []Fact {
	m := x.Start(page.Title)
	if m.headword == "" {
		return nil
	}

	var facts []Fact
	for _, line := range strings.Split(page.Text, "\n") {
		var f []Fact
		m, f = m.Next(strings.TrimSuffix(line, "\r"))
		facts = append(facts, f...)
		if m.Done() {
			break
		}
	}
	return append(facts, m.End()...)
}
