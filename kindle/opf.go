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
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/ianlewis/go-kindledict/lexicon"
)

// coverName is the base name of the cover image in a package.
const coverName = "cover"

// coverID is the manifest id of the cover image.
const coverID = "cover-image"

// Identifier returns the package identifier for d. Packages built with the
// same title and language pair share an identifier so that readers replace
// the previous version of a dictionary.
func Identifier(d *lexicon.Dictionary) uuid.UUID {
	name := strings.Join([]string{
		"kindledict",
		d.Title(),
		d.SourceLanguage(),
		d.TargetLanguage(),
	}, "/")
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name))
}

func writeManifest(w io.Writer, d *lexicon.Dictionary, pkg *Package) error {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="utf-8"?>` + "\n")
	b.WriteString(`<package version="2.0" xmlns="http://www.idpf.org/2007/opf" unique-identifier="BookId">` + "\n")
	b.WriteString(`<metadata xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:opf="http://www.idpf.org/2007/opf">` + "\n")
	fmt.Fprintf(&b, "<dc:identifier id=\"BookId\" opf:scheme=\"UUID\">urn:uuid:%s</dc:identifier>\n", Identifier(d))
	fmt.Fprintf(&b, "<dc:title>%s</dc:title>\n", escape(d.Title()))
	fmt.Fprintf(&b, "<dc:creator opf:role=\"aut\">%s</dc:creator>\n", escape(d.Author()))
	fmt.Fprintf(&b, "<dc:language>%s</dc:language>\n", escape(d.SourceLanguage()))
	if pkg.Cover != "" {
		fmt.Fprintf(&b, "<meta name=\"cover\" content=\"%s\" />\n", coverID)
	}
	b.WriteString("<x-metadata>\n")
	fmt.Fprintf(&b, "<DictionaryInLanguage>%s</DictionaryInLanguage>\n", escape(d.SourceLanguage()))
	fmt.Fprintf(&b, "<DictionaryOutLanguage>%s</DictionaryOutLanguage>\n", escape(d.TargetLanguage()))
	b.WriteString("</x-metadata>\n")
	b.WriteString("</metadata>\n")

	b.WriteString("<manifest>\n")
	if pkg.Cover != "" {
		fmt.Fprintf(&b, "<item id=\"%s\" href=\"%s\" media-type=\"%s\" />\n",
			coverID, escape(pkg.Cover), escape(mediaType(pkg.Cover)))
	}
	for _, id := range pkg.Content {
		fmt.Fprintf(&b, "<item id=\"%s\" href=\"%s.xhtml\" media-type=\"application/xhtml+xml\" />\n", id, id)
	}
	b.WriteString("</manifest>\n")

	b.WriteString("<spine>\n")
	for _, id := range pkg.Content {
		fmt.Fprintf(&b, "<itemref idref=\"%s\" />\n", id)
	}
	b.WriteString("</spine>\n")
	b.WriteString("</package>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// mediaType returns the media type of an image file name.
func mediaType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if t := mime.TypeByExtension(ext); t != "" {
		// Drop parameters such as charset.
		t, _, _ = strings.Cut(t, ";")
		return t
	}
	return "application/octet-stream"
}
