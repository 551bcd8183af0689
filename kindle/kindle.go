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


// Package kindle writes dictionaries as Kindle dictionary sources. A package
// is a directory holding content XHTML documents and a content.opf manifest
// that can be compiled with kindlegen or Kindle Previewer.
package kindle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ianlewis/go-kindledict/lexicon"
)

// DefaultBatchSize is the number of entries per content document.
const DefaultBatchSize = 30000

// ManifestName is the file name of the package manifest.
const ManifestName = "content.opf"

var (
	// ErrNotDirectory indicates that the output path exists and is not a
	// directory.
	ErrNotDirectory = errors.New("not a directory")

	// ErrExists indicates that the output directory exists.
	ErrExists = errors.New("output directory exists")
)

// Options are options for writing a package.
type Options struct {
	// Force allows writing into an existing directory. Existing files with
	// the same names are overwritten.
	Force bool

	// BatchSize is the number of entries per content document. Defaults to
	// DefaultBatchSize.
	BatchSize int

	// Cover is an optional path to a cover image that is copied into the
	// package.
	Cover string
}

// DefaultOptions are the default options.
var DefaultOptions = &Options{
	BatchSize: DefaultBatchSize,
}

func (o *Options) batchSize() int {
	if o.BatchSize <= 0 {
		return DefaultBatchSize
	}
	return o.BatchSize
}

// Package describes a written package.
type Package struct {
	// Dir is the package directory.
	Dir string

	// Content lists the content document ids in creation order.
	Content []string

	// Cover is the file name of the cover image in Dir, if any.
	Cover string

	// Entries is the number of entries written.
	Entries int
}

// Write writes d as a package in the directory dir. Write fails with
// ErrNotDirectory if dir is an existing file and ErrExists if dir is an
// existing directory and opts.Force is not set. Empty terms are not
// written.
//
// Write does not clean up after a failure. If an error occurs after writing
// has started dir may hold a partial package.
func Write(d *lexicon.Dictionary, dir string, opts *Options) (*Package, error) {
	if opts == nil {
		opts = DefaultOptions
	}

	fi, err := os.Stat(dir)
	switch {
	case err == nil && !fi.IsDir():
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	case err == nil && !opts.Force:
		return nil, fmt.Errorf("%w: %s", ErrExists, dir)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("checking output %q: %w", dir, err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output %q: %w", dir, err)
	}

	pkg := &Package{Dir: dir}
	if opts.Cover != "" {
		pkg.Cover = coverName + filepath.Ext(opts.Cover)
		if err := copyFile(opts.Cover, filepath.Join(dir, pkg.Cover)); err != nil {
			return nil, err
		}
	}

	var terms []*lexicon.Term
	for _, t := range d.All() {
		if !t.IsEmpty() {
			terms = append(terms, t)
		}
	}

	size := opts.batchSize()
	for start := 0; start < len(terms); start += size {
		batch := terms[start:min(start+size, len(terms))]
		id := fmt.Sprintf("content%04d", len(pkg.Content)+1)
		if err := writeFile(filepath.Join(dir, id+".xhtml"), func(w io.Writer) error {
			return writeContent(w, batch)
		}); err != nil {
			return nil, err
		}
		pkg.Content = append(pkg.Content, id)
		pkg.Entries += len(batch)
	}

	if err := writeFile(filepath.Join(dir, ManifestName), func(w io.Writer) error {
		return writeManifest(w, d, pkg)
	}); err != nil {
		return nil, err
	}

	return pkg, nil
}

const contentHeader = `<html xmlns:math="http://exslt.org/math" xmlns:svg="http://www.w3.org/2000/svg"
    xmlns:tl="https://kindlegen.s3.amazonaws.com/AmazonKindlePublishingGuidelines.pdf"
    xmlns:saxon="http://saxon.sf.net/" xmlns:xs="http://www.w3.org/2001/XMLSchema"
    xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
    xmlns:cx="https://kindlegen.s3.amazonaws.com/AmazonKindlePublishingGuidelines.pdf"
    xmlns:dc="http://purl.org/dc/elements/1.1/"
    xmlns:mbp="https://kindlegen.s3.amazonaws.com/AmazonKindlePublishingGuidelines.pdf"
    xmlns:mmc="https://kindlegen.s3.amazonaws.com/AmazonKindlePublishingGuidelines.pdf"
    xmlns:idx="https://kindlegen.s3.amazonaws.com/AmazonKindlePublishingGuidelines.pdf">
<head>
<meta http-equiv="Content-Type" content="text/html; charset=utf-8" />
</head>
<body>
<mbp:frameset>
`

const contentFooter = `</mbp:frameset>
</body>
</html>
`

func writeContent(w io.Writer, terms []*lexicon.Term) error {
	if _, err := io.WriteString(w, contentHeader); err != nil {
		return err
	}
	for _, t := range terms {
		if _, err := io.WriteString(w, RenderTerm(t)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, contentFooter)
	return err
}

// writeFile creates the file at path and writes to it through a buffer.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}
	defer func() {
		if cErr := f.Close(); cErr != nil && err == nil {
			err = fmt.Errorf("closing %q: %w", path, cErr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := write(w); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening cover %q: %w", src, err)
	}
	defer in.Close()

	return writeFile(dst, func(w io.Writer) error {
		_, err := io.Copy(w, in)
		return err
	})
}
