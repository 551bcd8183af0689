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


// Package tsv reads tab-delimited source files.
package tsv

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ianlewis/go-kindledict/internal/input"
)

// maxLineSize is the largest line the scanner accepts.
const maxLineSize = 1024 * 1024

// Comment is the prefix of ignored lines.
const Comment = "#"

// Read reads tab-delimited rows from r. Lines starting with Comment and lines
// with fewer than two fields are dropped. Fields are returned as is.
func Read(r io.Reader) ([][]string, error) {
	var rows [][]string

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for s.Scan() {
		line := s.Text()
		if strings.HasPrefix(line, Comment) {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) <= 1 {
			continue
		}
		rows = append(rows, fields)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scanning: %w", err)
	}
	return rows, nil
}

// ReadFile reads tab-delimited rows from the file at path. Compressed files
// are handled as by input.Open.
func ReadFile(path string) ([][]string, error) {
	f, err := input.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return rows, nil
}
