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
	"strings"
)

// namespaceSeparator separates a namespace from a page name in a title.
const namespaceSeparator = ":"

// Page is an article page of a dump.
type Page struct {
	Title string
	Text  string
}

type pageState int

const (
	stateNone pageState = iota
	stateTitle
	stateContent
)

// PageMachine assembles pages from events. The zero value is ready to use.
type PageMachine struct {
	state pageState
	title string
	text  string
}

// Next returns the machine state after ev and the page completed by ev, if
// any. Pages in a namespace are dropped. Text is only accumulated for the
// page currently being read.
func (m PageMachine) Next(ev Event) (PageMachine, *Page) {
	switch ev.Kind {
	case StartElement:
		switch ev.Name {
		case "page":
			return PageMachine{}, nil
		case "title":
			m.state = stateTitle
			m.title = ""
		case "text":
			m.state = stateContent
			m.text = ""
		}
	case EndElement:
		switch ev.Name {
		case "page":
			if strings.Contains(m.title, namespaceSeparator) {
				return PageMachine{}, nil
			}
			return PageMachine{}, &Page{Title: m.title, Text: m.text}
		case "title", "text":
			m.state = stateNone
		}
	case CharData:
		switch m.state {
		case stateTitle:
			m.title += ev.Data
		case stateContent:
			m.text += ev.Data
		}
	}
	return m, nil
}
