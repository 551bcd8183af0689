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


// Package pronunciation reads tab-delimited pronunciation lists of the form:
//
//	headword<TAB>pronunciation[,pronunciation...]
package pronunciation

import (
	"io"
	"strings"

	"github.com/ianlewis/go-kindledict/internal/tsv"
	"github.com/ianlewis/go-kindledict/lexicon"
)

// Stats holds reader statistics.
type Stats struct {
	// Rows is the number of rows read.
	Rows int

	// Registered is the number of pronunciations added to the dictionary.
	Registered int
}

// Parse reads pronunciations from r into d under the source name.
func Parse(d *lexicon.Dictionary, name string, r io.Reader) (Stats, error) {
	rows, err := tsv.Read(r)
	if err != nil {
		return Stats{}, err
	}
	return add(d, name, rows), nil
}

// ReadFile reads pronunciations from the file at path into d under the source
// name.
func ReadFile(d *lexicon.Dictionary, name, path string) (Stats, error) {
	rows, err := tsv.ReadFile(path)
	if err != nil {
		return Stats{}, err
	}
	return add(d, name, rows), nil
}

func add(d *lexicon.Dictionary, name string, rows [][]string) Stats {
	var stats Stats
	for _, row := range rows {
		stats.Rows++
		headword := strings.TrimSpace(row[0])
		for _, p := range strings.Split(row[1], ",") {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			d.AddPronunciation(headword, name, p)
			stats.Registered++
		}
	}
	return stats
}
