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


package kindledict_test

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ianlewis/go-kindledict"
	"github.com/ianlewis/go-kindledict/internal/config"
	"github.com/ianlewis/go-kindledict/internal/testutil"
	"github.com/ianlewis/go-kindledict/lexicon"
	"github.com/ianlewis/go-kindledict/reader/bilingual"
)

func newConfig(t *testing.T) *config.Config {
	t.Helper()

	input := testutil.MakeTempTSV(t, [][]string{
		{"# English-Czech"},
		{"dog", "pes", "n:"},
		{"dog", "sledovat", "v:"},
		{"cat", "kočka", "n:"},
		{"broken", "row"},
	}, testutil.GZip)

	uk := testutil.MakeTempTSV(t, [][]string{
		{"dog", "/dɒɡ/"},
		{"cat", "/kæt/"},
	}, testutil.None)

	dump := testutil.MakeTempDump(t, []testutil.Page{
		{
			Title: "dog",
			Text:  "==English==\n{{IPA|en|/dɔɡ/}}\n{{en-noun}}\n{{trans-top|animal}}\n* Czech: {{t+|cs|pejsek|m}}\n{{trans-bottom}}",
		},
		{
			Title: "bird",
			Text:  "==English==\n{{IPA|en|/bɜːd/}}\n{{en-noun}}\n{{trans-top|animal}}\n* Czech: {{t+|cs|pták|m}}\n{{trans-bottom}}",
		},
		{
			Title: "Category:Animals",
			Text:  "==English==",
		},
	}, testutil.DictZip)

	return &config.Config{
		SourceLanguage: "en",
		TargetLanguage: "cs",
		Title:          "English-Czech",
		Inputs:         []string{input},
		Pronunciations: []string{"uk:" + uk},
		WikiDump:       dump,
		WikiPrefix:     "Czech",
		Output:         filepath.Join(t.TempDir(), "out"),
		BatchSize:      30000,
		Log:            config.LogConfig{Level: "info", Format: "text"},
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	d, stats, err := kindledict.Build(newConfig(t), logger)
	require.NoError(t, err)
	require.Equal(t, 3, d.Len())

	require.Len(t, stats, 3)
	require.Equal(t, kindledict.SourceStats{
		Kind:       kindledict.BilingualSource,
		Path:       stats[0].Path,
		Read:       4,
		Registered: 3,
		Skipped:    1,
	}, stats[0])
	require.Equal(t, "uk", stats[1].Name)
	require.Equal(t, 2, stats[1].Registered)
	require.Equal(t, kindledict.WikiSource, stats[2].Kind)
	require.Equal(t, 3, stats[2].Read)
	require.Equal(t, 1, stats[2].Skipped)
	require.Equal(t, 4, stats[2].Registered)

	dog, ok := d.Lookup("dog")
	require.True(t, ok)
	require.Equal(t, []string{"uk", lexicon.WikiSource}, dog.Sources())
	require.Equal(t, []lexicon.WordClass{lexicon.Verb, lexicon.Noun}, dog.Classes())

	// Bilingual meanings come first.
	nouns := dog.Meanings(lexicon.Noun)
	require.Len(t, nouns, 2)
	require.Equal(t, "", nouns[0].Description())
	require.Equal(t, []string{"pes"}, nouns[0].Translations())
	require.Equal(t, "animal", nouns[1].Description())
	require.Equal(t, []string{"pejsek"}, nouns[1].Translations())

	bird, ok := d.Lookup("bird")
	require.True(t, ok)
	require.Equal(t, []string{lexicon.WikiSource}, bird.Sources())

	require.Contains(t, buf.String(), "dictionary built")
	require.Contains(t, buf.String(), "terms=3")
}

func TestBuild_reverse(t *testing.T) {
	t.Parallel()

	cfg := newConfig(t)
	cfg.Reverse = true

	d, _, err := kindledict.Build(cfg, nil)
	require.NoError(t, err)
	require.Equal(t, "cs", d.SourceLanguage())
	require.Equal(t, "en", d.TargetLanguage())
	require.Equal(t, "English-Czech (reverse)", d.Title())

	pes, ok := d.Lookup("pes")
	require.True(t, ok)
	require.Equal(t, []lexicon.WordClass{lexicon.Noun}, pes.Classes())
	require.Equal(t, []string{"dog"}, pes.Meanings(lexicon.Noun)[0].Translations())

	_, ok = d.Lookup("pták")
	require.True(t, ok)
}

func TestBuild_invalid(t *testing.T) {
	t.Parallel()

	cfg := newConfig(t)
	cfg.TargetLanguage = "de"

	_, _, err := kindledict.Build(cfg, nil)
	require.ErrorIs(t, err, config.ErrInvalid)
	require.ErrorIs(t, err, bilingual.ErrUnsupportedPair)
}
