// Package translit converts text between Cyrillic and Latin scripts and
// expands search queries with the renderings a user most likely meant.
//
// Two mappings are supported: keyboard-layout (the character on the same
// physical key of a ЙЦУКЕН vs QWERTY keyboard) and semantic (phonetic
// transliteration). All tables are built once at package init and never
// mutated, so every function here is safe for concurrent use.
package translit

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Direction selects the conversion direction.
type Direction int

const (
	// RUToEN converts Cyrillic characters to Latin.
	RUToEN Direction = iota
	// ENToRU converts Latin characters to Cyrillic.
	ENToRU
)

func (d Direction) String() string {
	switch d {
	case RUToEN:
		return "ru-en"
	case ENToRU:
		return "en-ru"
	default:
		return "unknown"
	}
}

type keyPair struct {
	cyr rune
	lat rune
}

type soundPair struct {
	cyr rune
	lat string
}

// keyboardPairs lists every Cyrillic letter with the symbol on the same key
// of a US QWERTY layout. Every Latin side is unique.
var keyboardPairs = [...]keyPair{
	{'а', 'f'}, {'б', ','}, {'в', 'd'}, {'г', 'u'}, {'д', 'l'}, {'е', 't'}, {'ё', '`'},
	{'ж', ';'}, {'з', 'p'}, {'и', 'b'}, {'й', 'q'}, {'к', 'r'}, {'л', 'k'}, {'м', 'v'},
	{'н', 'y'}, {'о', 'j'}, {'п', 'g'}, {'р', 'h'}, {'с', 'c'}, {'т', 'n'}, {'у', 'e'},
	{'ф', 'a'}, {'х', '['}, {'ц', 'w'}, {'ч', 'x'}, {'ш', 'i'}, {'щ', 'o'}, {'ъ', ']'},
	{'ы', 's'}, {'ь', 'm'}, {'э', '\''}, {'ю', '.'}, {'я', 'z'},
	{'А', 'F'}, {'Б', '<'}, {'В', 'D'}, {'Г', 'U'}, {'Д', 'L'}, {'Е', 'T'}, {'Ё', '~'},
	{'Ж', ':'}, {'З', 'P'}, {'И', 'B'}, {'Й', 'Q'}, {'К', 'R'}, {'Л', 'K'}, {'М', 'V'},
	{'Н', 'Y'}, {'О', 'J'}, {'П', 'G'}, {'Р', 'H'}, {'С', 'C'}, {'Т', 'N'}, {'У', 'E'},
	{'Ф', 'A'}, {'Х', '{'}, {'Ц', 'W'}, {'Ч', 'X'}, {'Ш', 'I'}, {'Щ', 'O'}, {'Ъ', '}'},
	{'Ы', 'S'}, {'Ь', 'M'}, {'Э', '"'}, {'Ю', '>'}, {'Я', 'Z'},
}

// semanticPairs is the phonetic rendering users expect to see. Hard and soft
// signs are elided.
var semanticPairs = [...]soundPair{
	{'а', "a"}, {'б', "b"}, {'в', "v"}, {'г', "g"}, {'д', "d"}, {'е', "e"}, {'ё', "yo"},
	{'ж', "zh"}, {'з', "z"}, {'и', "i"}, {'й', "y"}, {'к', "k"}, {'л', "l"}, {'м', "m"},
	{'н', "n"}, {'о', "o"}, {'п', "p"}, {'р', "r"}, {'с', "s"}, {'т', "t"}, {'у', "u"},
	{'ф', "f"}, {'х', "h"}, {'ц', "c"}, {'ч', "ch"}, {'ш', "sh"}, {'щ', "sch"}, {'ъ', ""},
	{'ы', "y"}, {'ь', ""}, {'э', "e"}, {'ю', "yu"}, {'я', "ya"},
	{'А', "A"}, {'Б', "B"}, {'В', "V"}, {'Г', "G"}, {'Д', "D"}, {'Е', "E"}, {'Ё', "YO"},
	{'Ж', "ZH"}, {'З', "Z"}, {'И', "I"}, {'Й', "Y"}, {'К', "K"}, {'Л', "L"}, {'М', "M"},
	{'Н', "N"}, {'О', "O"}, {'П', "P"}, {'Р', "R"}, {'С', "S"}, {'Т', "T"}, {'У', "U"},
	{'Ф', "F"}, {'Х', "H"}, {'Ц', "C"}, {'Ч', "CH"}, {'Ш', "SH"}, {'Щ', "SCH"}, {'Ъ', ""},
	{'Ы', "Y"}, {'Ь', ""}, {'Э', "E"}, {'Ю', "YU"}, {'Я', "YA"},
}

var (
	keyboardFwd = buildKeyboard(false)
	keyboardInv = buildKeyboard(true)
	semanticFwd = buildSemanticFwd()
	semanticInv = buildSemanticInv()
)

func buildKeyboard(inverse bool) map[rune]string {
	m := make(map[rune]string, len(keyboardPairs))
	for _, p := range keyboardPairs {
		if inverse {
			m[p.lat] = string(p.cyr)
		} else {
			m[p.cyr] = string(p.lat)
		}
	}
	return m
}

func buildSemanticFwd() map[rune]string {
	m := make(map[rune]string, len(semanticPairs))
	for _, p := range semanticPairs {
		m[p.cyr] = p.lat
	}
	return m
}

// buildSemanticInv keeps only values a per-character lookup can match: one
// Latin letter. Elided letters and digraphs are dropped. On collisions
// the later letter in table order wins, so e → э and y → ы.
func buildSemanticInv() map[rune]string {
	m := make(map[rune]string)
	for _, p := range semanticPairs {
		if utf8.RuneCountInString(p.lat) != 1 {
			continue
		}
		lat, _ := utf8.DecodeRuneInString(p.lat)
		m[lat] = string(p.cyr)
	}
	return m
}

// TranslateKeyboard rewrites text as if it had been typed on the other
// keyboard layout. Characters without a mapping are kept as is.
func TranslateKeyboard(text string, dir Direction) string {
	if dir == ENToRU {
		return substitute(text, keyboardInv)
	}
	return substitute(text, keyboardFwd)
}

// TranslateSemantic transliterates text phonetically. RUToEN may change the
// length of the text (щ → sch, ь → ""). ENToRU is a best-effort
// per-character substitution and does not recognise digraphs.
func TranslateSemantic(text string, dir Direction) string {
	if dir == ENToRU {
		return substitute(text, semanticInv)
	}
	return substitute(text, semanticFwd)
}

// substitute copies text rune by rune, replacing runes found in table.
// Bytes that are not valid UTF-8 are copied through untouched.
func substitute(text string, table map[rune]string) string {
	if text == "" {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + len(text)/2)
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if repl, ok := table[r]; ok {
			b.WriteString(repl)
		} else {
			b.WriteString(text[i : i+size])
		}
		i += size
	}
	return b.String()
}

// SelfCheck reports an error if the keyboard tables are not exact inverses
// of each other. Used by the health endpoint.
func SelfCheck() error {
	if len(keyboardFwd) != len(keyboardInv) {
		return fmt.Errorf("translit: keyboard tables differ in size: %d vs %d", len(keyboardFwd), len(keyboardInv))
	}
	for cyr, lat := range keyboardFwd {
		r, _ := utf8.DecodeRuneInString(lat)
		if keyboardInv[r] != string(cyr) {
			return fmt.Errorf("translit: keyboard mapping %q -> %q is not reversible", cyr, lat)
		}
	}
	return nil
}
