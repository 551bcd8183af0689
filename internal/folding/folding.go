// Copyright 2025 Ian Lewis
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

// Package folding implements the text folding used to build merge keys for
// headwords and meaning descriptions.
package folding

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Key returns the merge key for s. Only lower-casing is performed: no
// language specific tailoring, accent stripping or whitespace folding.
func Key(s string) string {
	// NOTE: a cases.Caser is not safe for concurrent use so a new one is
	// created for each call.
	return cases.Lower(language.Und).String(s)
}
