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

// Package lexicon implements an in-memory bilingual dictionary.
//
// A [Dictionary] maps case-folded headwords to a [Term]. Facts from any number
// of sources are merged into terms as they are read:
//
//  1. Pronunciations are appended to a per-source list in insertion order.
//  2. Meanings are grouped by [WordClass] and keyed by their case-folded
//     description. The translations of meanings with the same key are
//     unioned. A meaning's display order is assigned when it is first added
//     and never changes afterwards.
//  3. Adding a noun or verb meaning adds the inflected forms of the headword
//     derived by the source language's [inflect.Rules].
//
// A Dictionary is not safe for concurrent use.
package lexicon
