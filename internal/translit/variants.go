package translit

import "strings"

// Variants returns text together with its plausible renderings in the other
// script. The result never contains duplicates; the original text comes
// first, the order of the rest is not significant.
//
// With smartFilter set and Cyrillic input (query mode) only the semantic
// rendering and, when it cannot be mistaken for a product code, the keyboard
// rendering are added. Otherwise (indexing mode) all four conversions are
// tried, since extra tokens in an index are cheap.
func Variants(text string, smartFilter bool) []string {
	if text == "" {
		return []string{text}
	}

	variants := newVariantSet(5)
	variants.add(text)

	if smartFilter && IsCyrillic(text) {
		if semantic := TranslateSemantic(text, RUToEN); semantic != text {
			variants.add(semantic)
		}

		keyboard := TranslateKeyboard(text, RUToEN)
		if keyboard != text && (!LooksLikePartNumber(text) || !isCleanLatin(keyboard)) {
			variants.add(keyboard)
		}
		return variants.list()
	}

	for _, v := range [...]string{
		TranslateKeyboard(text, RUToEN),
		TranslateKeyboard(text, ENToRU),
		TranslateSemantic(text, RUToEN),
		TranslateSemantic(text, ENToRU),
	} {
		if v != text {
			variants.add(v)
		}
	}
	return variants.list()
}

// SearchText builds the value of a search-index field: the generous variants
// of every non-empty text, joined with single spaces.
func SearchText(texts ...string) string {
	var parts []string
	for _, text := range texts {
		if text == "" {
			continue
		}
		parts = append(parts, Variants(text, false)...)
	}
	return strings.Join(parts, " ")
}

// variantSet is an insertion-ordered set of strings.
type variantSet struct {
	seen  map[string]struct{}
	items []string
}

func newVariantSet(capacity int) *variantSet {
	return &variantSet{
		seen:  make(map[string]struct{}, capacity),
		items: make([]string, 0, capacity),
	}
}

func (s *variantSet) add(v string) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}

func (s *variantSet) addAll(vs []string) {
	for _, v := range vs {
		s.add(v)
	}
}

func (s *variantSet) list() []string {
	return s.items
}
