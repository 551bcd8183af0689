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

package inflect

import (
	"regexp"
)

var (
	// enSuffixS is shared by plurals and the third person singular.
	enSuffixS = RuleList{
		{Pattern: regexp.MustCompile(`^(.*(?:s|sh|ch|x))$`), Replace: "${1}es"},
		{
			Pattern: regexp.MustCompile(`^(.*o)$`),
			Words:   words("hero", "potato", "tomato", "go", "do", "echo", "veto", "torpedo"),
			Replace: "${1}es",
		},
		{Pattern: regexp.MustCompile(`^(.*o)$`), Replace: "${1}s"},
		{Pattern: regexp.MustCompile(`^(.*[bcdfghjklmnpqrstvwxyz])y$`), Replace: "${1}ies"},
		{Pattern: regexp.MustCompile(`^(.+)$`), Replace: "${1}s"},
	}

	// enDouble matches a final consonant-vowel-consonant sequence whose last
	// consonant is doubled before a suffix. w, x and y are never doubled.
	enDouble = regexp.MustCompile(`^(.*[^aeiou][aeiou])([bcdfghjklmnpqrstvz])$`)

	enParticiple = RuleList{
		{Pattern: regexp.MustCompile(`^(.*ee)$`), Replace: "${1}ing"},
		// NOTE: consonant+"ie" must be checked before the plain "e" rule.
		{Pattern: regexp.MustCompile(`^(.*[bcdfghjklmnpqrstvwxyz])ie$`), Replace: "${1}ying"},
		{Pattern: regexp.MustCompile(`^(.+)e$`), Replace: "${1}ing"},
		{Pattern: enDouble, Replace: "${1}${2}${2}ing"},
		{Pattern: regexp.MustCompile(`^(.+)$`), Replace: "${1}ing"},
	}

	enPast = RuleList{
		{Pattern: regexp.MustCompile(`^(.*e)$`), Replace: "${1}d"},
		{Pattern: regexp.MustCompile(`^(.*[bcdfghjklmnpqrstvwxyz])y$`), Replace: "${1}ied"},
		{Pattern: enDouble, Replace: "${1}${2}${2}ed"},
		{Pattern: regexp.MustCompile(`^(.+)$`), Replace: "${1}ed"},
	}
)

var english = &Rules{
	Plural:      enSuffixS,
	ThirdPerson: enSuffixS,
	Participle:  enParticiple,
	Past:        enPast,
	Irregular:   enIrregular,
}

// enIrregular lists the past forms of common irregular English verbs.
var enIrregular = map[string][]string{
	"arise":      {"arose", "arisen"},
	"awake":      {"awoke", "awoken"},
	"be":         {"was", "were", "been", "am", "are", "is"},
	"bear":       {"bore", "borne"},
	"beat":       {"beaten"},
	"become":     {"became"},
	"begin":      {"began", "begun"},
	"bend":       {"bent"},
	"bite":       {"bit", "bitten"},
	"blow":       {"blew", "blown"},
	"break":      {"broke", "broken"},
	"bring":      {"brought"},
	"build":      {"built"},
	"buy":        {"bought"},
	"catch":      {"caught"},
	"choose":     {"chose", "chosen"},
	"come":       {"came"},
	"dig":        {"dug"},
	"do":         {"did", "done"},
	"draw":       {"drew", "drawn"},
	"drink":      {"drank", "drunk"},
	"drive":      {"drove", "driven"},
	"eat":        {"ate", "eaten"},
	"fall":       {"fell", "fallen"},
	"feel":       {"felt"},
	"fight":      {"fought"},
	"find":       {"found"},
	"fly":        {"flew", "flown"},
	"forget":     {"forgot", "forgotten"},
	"freeze":     {"froze", "frozen"},
	"get":        {"got", "gotten"},
	"give":       {"gave", "given"},
	"go":         {"went", "gone"},
	"grow":       {"grew", "grown"},
	"have":       {"had", "has"},
	"hear":       {"heard"},
	"hide":       {"hid", "hidden"},
	"hold":       {"held"},
	"keep":       {"kept"},
	"know":       {"knew", "known"},
	"lead":       {"led"},
	"leave":      {"left"},
	"lend":       {"lent"},
	"lie":        {"lay", "lain"},
	"lose":       {"lost"},
	"make":       {"made"},
	"mean":       {"meant"},
	"meet":       {"met"},
	"pay":        {"paid"},
	"ride":       {"rode", "ridden"},
	"ring":       {"rang", "rung"},
	"rise":       {"rose", "risen"},
	"run":        {"ran"},
	"say":        {"said"},
	"see":        {"saw", "seen"},
	"seek":       {"sought"},
	"sell":       {"sold"},
	"send":       {"sent"},
	"shake":      {"shook", "shaken"},
	"shine":      {"shone"},
	"shoot":      {"shot"},
	"sing":       {"sang", "sung"},
	"sink":       {"sank", "sunk"},
	"sit":        {"sat"},
	"sleep":      {"slept"},
	"speak":      {"spoke", "spoken"},
	"spend":      {"spent"},
	"stand":      {"stood"},
	"steal":      {"stole", "stolen"},
	"swim":       {"swam", "swum"},
	"take":       {"took", "taken"},
	"teach":      {"taught"},
	"tear":       {"tore", "torn"},
	"tell":       {"told"},
	"think":      {"thought"},
	"throw":      {"threw", "thrown"},
	"understand": {"understood"},
	"wake":       {"woke", "woken"},
	"wear":       {"wore", "worn"},
	"win":        {"won"},
	"write":      {"wrote", "written"},
}
