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


package testutil

import (
	"strings"
	"testing"
)

// MakeTSV returns rows as tab-delimited lines.
func MakeTSV(rows [][]string) []byte {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(strings.Join(row, "\t"))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// MakeTempTSV writes rows to a temporary tab-delimited file and returns its
// path.
func MakeTempTSV(t *testing.T, rows [][]string, c Compression) string {
	t.Helper()
	return WriteFile(t, "source.tsv", MakeTSV(rows), c)
}
