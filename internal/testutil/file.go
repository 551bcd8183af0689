// Copyright 2021 Google LLC
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


// Package testutil builds source file fixtures for tests.
package testutil

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// Compression is the compression format of a fixture file.
type Compression int

const (
	// None writes the file as is.
	None Compression = iota

	// GZip compresses the file with gzip.
	GZip

	// DictZip compresses the file with dictzip.
	DictZip
)

// Ext returns the file extension for the compression format.
func (c Compression) Ext() string {
	switch c {
	case GZip:
		return ".gz"
	case DictZip:
		return ".dz"
	default:
		return ""
	}
}

// WriteFile writes data to a file named name, plus the extension of c, in a
// temporary directory and returns its path.
func WriteFile(t *testing.T, name string, data []byte, c Compression) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name+c.Ext())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	var w io.WriteCloser
	switch c {
	case GZip:
		w = gzip.NewWriter(f)
	case DictZip:
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		w = z
	}

	if w != nil {
		if _, err := w.Write(data); err != nil {
			t.Fatal(err)
		}
		if err := w.Close(); err != nil {
			t.Fatal(err)
		}
	} else if _, err := f.Write(data); err != nil {
		t.Fatal(err)
	}

	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}
