package translit

import "strings"

// Expansion is the result of ExpandQuery.
type Expansion struct {
	// Priority holds the original query and its semantic rewrites.
	Priority []string `json:"priority_variants"`
	// Fallback holds keyboard-layout rewrites, to be tried only when the
	// priority tier finds nothing.
	Fallback []string `json:"fallback_variants"`
	// All is Priority followed by Fallback, without duplicates.
	All []string `json:"all_variants"`
}

// ExpandQuery rewrites a search query word by word. Each Cyrillic word
// produces one full-query rewrite with that word transliterated
// semantically (priority tier) and one with the keyboard layout swapped
// (fallback tier). Only the first textual occurrence of the word in the
// query is replaced. Keyboard rewrites are skipped entirely when the whole
// query looks like a part number.
func ExpandQuery(query string) Expansion {
	if query == "" {
		return Expansion{
			Priority: []string{query},
			Fallback: []string{},
			All:      []string{query},
		}
	}

	priority := newVariantSet(4)
	priority.add(query)
	fallback := newVariantSet(4)
	partNumber := LooksLikePartNumber(query)

	for _, word := range strings.Fields(query) {
		if !IsCyrillic(word) {
			continue
		}

		if semantic := TranslateSemantic(word, RUToEN); semantic != word {
			priority.add(strings.Replace(query, word, semantic, 1))
		}

		if keyboard := TranslateKeyboard(word, RUToEN); keyboard != word && !partNumber {
			fallback.add(strings.Replace(query, word, keyboard, 1))
		}
	}

	all := newVariantSet(len(priority.items) + len(fallback.items))
	all.addAll(priority.list())
	all.addAll(fallback.list())

	return Expansion{
		Priority: priority.list(),
		Fallback: fallback.list(),
		All:      all.list(),
	}
}
