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

// Package inflect derives inflected surface forms of headwords so that they
// can be added to a dictionary's lookup index.
//
// Each supported language provides its own [Rules]: an ordered list of
// pattern rules for plural nouns, ordered rule lists for verb forms and a
// table of irregular verbs. Rules for a language are found with [Lookup].
// Languages without rules get a no-op ruleset that derives nothing.
package inflect
