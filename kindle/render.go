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


package kindle

import (
	"maps"
	"slices"
	"strings"

	"github.com/ianlewis/go-kindledict/lexicon"
)

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&apos;",
	`"`, "&quot;",
)

// escape escapes the reserved markup characters in s.
func escape(s string) string {
	return escaper.Replace(s)
}

// RenderTerm returns the dictionary entry markup for t.
func RenderTerm(t *lexicon.Term) string {
	var b strings.Builder
	b.WriteString(`<idx:entry name="main" scriptable="yes" spell="yes">` + "\n")
	renderHeadword(&b, t)
	renderPronunciations(&b, t)
	renderClasses(&b, t)
	b.WriteString("</idx:entry>\n")
	return b.String()
}

func renderHeadword(b *strings.Builder, t *lexicon.Term) {
	b.WriteString("<b><idx:orth>")
	b.WriteString(escape(t.Headword()))
	if infl := t.Inflections(); len(infl) > 0 {
		b.WriteString("<idx:infl>")
		for _, f := range infl {
			b.WriteString(`<idx:iform value="`)
			b.WriteString(escape(f))
			b.WriteString(`" />`)
		}
		b.WriteString("</idx:infl>")
	}
	b.WriteString("</idx:orth></b><br />\n")
}

func renderPronunciations(b *strings.Builder, t *lexicon.Term) {
	sources := t.Sources()
	for _, name := range sources {
		// Explicit sources take precedence over the wiki.
		if name == lexicon.WikiSource && len(sources) > 1 {
			continue
		}
		if name != "" && name != lexicon.WikiSource {
			b.WriteString("<i>")
			b.WriteString(escape(name))
			b.WriteString("</i>: ")
		}
		b.WriteString(escape(strings.Join(t.Pronunciations(name), ", ")))
		b.WriteString("<br />\n")
	}
}

func renderClasses(b *strings.Builder, t *lexicon.Term) {
	for _, c := range t.Classes() {
		var glosses []string
		union := map[string]struct{}{}
		for _, m := range t.Meanings(c) {
			if d := m.Description(); d != "" {
				glosses = append(glosses, d)
			}
			for _, tr := range m.Translations() {
				union[tr] = struct{}{}
			}
		}
		translations := slices.Sorted(maps.Keys(union))
		if len(glosses) == 0 && len(translations) == 0 {
			continue
		}

		b.WriteString(escape(c.String()))
		b.WriteString("\n")
		if len(translations) > 0 {
			escaped := make([]string, 0, len(translations))
			for _, tr := range translations {
				escaped = append(escaped, escape(tr))
			}
			b.WriteString("<ul>\n<li>")
			b.WriteString(strings.Join(escaped, " | "))
			b.WriteString("</li>\n</ul>\n")
		}
		if len(glosses) > 0 {
			b.WriteString("<ol>\n")
			for _, g := range glosses {
				b.WriteString("<li>")
				b.WriteString(escape(g))
				b.WriteString("</li>\n")
			}
			b.WriteString("</ol>\n")
		}
	}
}
