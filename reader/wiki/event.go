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
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// EventKind is the kind of an XML event.
type EventKind int

const (
	// StartElement is an element start tag.
	StartElement EventKind = iota

	// EndElement is an element end tag.
	EndElement

	// CharData is element text with entities resolved.
	CharData
)

// Event is an XML event relevant to page extraction.
type Event struct {
	Kind EventKind

	// Name is the local element name for StartElement and EndElement.
	Name string

	// Data is the text of CharData.
	Data string
}

// Decoder produces a forward-only stream of events from an XML document.
type Decoder struct {
	d *xml.Decoder
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{d: xml.NewDecoder(r)}
}

// Next returns the next event. Comments, processing instructions and
// directives are skipped. Next returns io.EOF at the end of the document and
// an error wrapping ErrMalformed for any other error.
func (d *Decoder) Next() (Event, error) {
	for {
		tok, err := d.d.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Event{}, io.EOF
			}
			return Event{}, fmt.Errorf("%w: offset %d: %w", ErrMalformed, d.d.InputOffset(), err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			return Event{Kind: StartElement, Name: t.Name.Local}, nil
		case xml.EndElement:
			return Event{Kind: EndElement, Name: t.Name.Local}, nil
		case xml.CharData:
			return Event{Kind: CharData, Data: string(t)}, nil
		}
	}
}
