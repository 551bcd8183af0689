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


package testutil

import (
	"encoding/xml"
	"strings"
	"testing"
)

// Page is a page of a wiki dump.
type Page struct {
	Title string
	Text  string
}

type xmlPage struct {
	XMLName xml.Name `xml:"page"`
	Title   string   `xml:"title"`
	NS      int      `xml:"ns"`
	Text    string   `xml:"revision>text"`
}

// MakeDump returns a wiki XML export containing pages.
func MakeDump(t *testing.T, pages []Page) []byte {
	t.Helper()

	var b strings.Builder
	b.WriteString(`<mediawiki xmlns="http://www.mediawiki.org/xml/export-0.10/" xml:lang="en">` + "\n")
	b.WriteString("  <siteinfo>\n    <sitename>Wiktionary</sitename>\n  </siteinfo>\n")
	for _, p := range pages {
		out, err := xml.MarshalIndent(xmlPage{Title: p.Title, Text: p.Text}, "  ", "  ")
		if err != nil {
			t.Fatal(err)
		}
		b.Write(out)
		b.WriteByte('\n')
	}
	b.WriteString("</mediawiki>\n")
	return []byte(b.String())
}

// MakeTempDump writes pages to a temporary wiki XML export and returns its
// path.
func MakeTempDump(t *testing.T, pages []Page, c Compression) string {
	t.Helper()
	return WriteFile(t, "pages-articles.xml", MakeDump(t, pages), c)
}
