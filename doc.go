// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package kindledict compiles bilingual dictionaries for Kindle e-readers in
// pure Go.
//
// A dictionary is built from several kinds of sources:
//  1. Tab-delimited bilingual word lists, such as the GNU/FDL English-Czech
//     dictionary. Each row has a headword, a translation and a word class tag.
//  2. Tab-delimited pronunciation lists. Each list is registered under a name,
//     e.g. "uk" or "us", that is shown next to its pronunciations.
//  3. A Wiktionary XML dump. Pronunciations and translation tables are read
//     from the English section of each article.
//
// Sources may be compressed with gzip, dictzip or bzip2. The dictionary is
// written as a directory of XHTML content documents and an OPF manifest that
// can be compiled into a Kindle dictionary with kindlegen or Kindle
// Previewer.
package kindledict
