// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package translate maps Indonesian furniture and building vocabulary onto
// the English terms the reference corpus is written in. The tables are
// static; unknown terms pass through unchanged so mixed-language input
// degrades gracefully. See docs/ARCHITECTURE § Term Translator.
package translate

import "strings"

// entry pairs a source phrase with the corpus terms it expands to. Entries
// are scanned in slice order so compound phrases win over their parts.
type entry struct {
	phrase string
	terms  []string
}

// Compound phrases first. A compound match is returned exclusively, the way
// "meja makan" should retrieve dining-table passages and not generic table
// ones.
var compoundEntries = []entry{
	{"kursi makan", []string{"dining chair", "dining side", "dining", "side", "chair"}},
	{"kursi kantor", []string{"office chair", "desk chair", "office", "chair"}},
	{"meja makan", []string{"dining table", "dining", "table"}},
	{"meja kopi", []string{"coffee table", "coffee", "table"}},
	{"meja kerja", []string{"desk", "workstation", "office table"}},
	{"sofa ruang tamu", []string{"sofa", "couch", "living room", "seating"}},
	{"lemari pakaian", []string{"wardrobe", "closet", "clothing"}},
	{"rak buku", []string{"bookcase", "bookshelf", "shelf"}},
	{"tempat tidur", []string{"bed", "mattress", "double"}},
	{"kamar tidur", []string{"bedroom", "sleeping"}},
	{"ruang tamu", []string{"living room", "lounge", "sitting room"}},
	{"ruang makan", []string{"dining room", "dining"}},
}

var singleEntries = []entry{
	{"kursi", []string{"chair", "seat", "sitting", "backrest", "armrest", "legs"}},
	{"meja", []string{"table", "desk", "surface", "top", "dining"}},
	{"sofa", []string{"sofa", "couch", "seating", "cushion", "living"}},
	{"lemari", []string{"cabinet", "wardrobe", "storage", "closet", "chest"}},
	{"rak", []string{"shelf", "rack", "bookcase", "shelving"}},
	{"ruangan", []string{"room", "space", "interior", "floor", "ceiling"}},
	{"rumah", []string{"house", "building", "architecture", "structure"}},
	{"dapur", []string{"kitchen", "cooking"}},
	{"kantor", []string{"office", "workspace"}},
}

// wordMap translates individual vocabulary words for query construction.
var wordMap = map[string]string{
	"kursi":    "chair",
	"meja":     "table",
	"sofa":     "sofa",
	"lemari":   "cabinet",
	"rak":      "shelf",
	"ruangan":  "room",
	"kamar":    "room",
	"rumah":    "house",
	"kaki":     "legs",
	"dudukan":  "seat",
	"sandaran": "backrest",
	"pintu":    "door",
	"jendela":  "window",
	"laci":     "drawer",
	"garasi":   "garage",
	"tinggi":   "height",
	"panjang":  "length",
	"lebar":    "width",
	"diameter": "diameter",
	"bulat":    "round",
	"bundar":   "round",
	"makan":    "dining",
	"kerja":    "work",
	"buku":     "book",
	"tamu":     "living",
	"tidur":    "sleeping",
	"modern":   "modern",
}

// Word translates a single lowercase word, returning it unchanged when it
// has no mapping.
func Word(w string) string {
	if t, ok := wordMap[strings.ToLower(w)]; ok {
		return t
	}
	return w
}

// Expand returns the English corpus terms implied by a description, compound
// phrases first. A compound match is exclusive; otherwise all matching
// single-word expansions are concatenated in table order, so the result is
// deterministic for a given input.
func Expand(description string) []string {
	lower := strings.ToLower(description)

	for _, e := range compoundEntries {
		if strings.Contains(lower, e.phrase) {
			return append([]string(nil), e.terms...)
		}
	}

	var terms []string
	seen := make(map[string]bool)
	for _, e := range singleEntries {
		if !strings.Contains(lower, e.phrase) {
			continue
		}
		for _, t := range e.terms {
			if !seen[t] {
				seen[t] = true
				terms = append(terms, t)
			}
		}
	}
	return terms
}

// Query builds the retrieval query string for a description: the translated
// words of the description followed by its corpus term expansion.
func Query(description string) string {
	var b strings.Builder
	for i, w := range strings.Fields(strings.ToLower(description)) {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(Word(strings.Trim(w, ".,;:!?")))
	}
	for _, t := range Expand(description) {
		b.WriteByte(' ')
		b.WriteString(t)
	}
	return b.String()
}
