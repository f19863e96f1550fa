package translit

// IsCyrillic reports whether text contains at least one Russian letter
// (а–я, А–Я, ё, Ё).
func IsCyrillic(text string) bool {
	for _, r := range text {
		if isRussianLetter(r) {
			return true
		}
	}
	return false
}

// IsLatin reports whether text contains at least one ASCII letter.
func IsLatin(text string) bool {
	for i := 0; i < len(text); i++ {
		c := text[i]
		if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') {
			return true
		}
	}
	return false
}

// LooksLikePartNumber reports whether text contains an ASCII digit, a hyphen
// or an underscore. Such strings are treated as product codes rather than
// words.
func LooksLikePartNumber(text string) bool {
	for i := 0; i < len(text); i++ {
		c := text[i]
		if ('0' <= c && c <= '9') || c == '-' || c == '_' {
			return true
		}
	}
	return false
}

func isRussianLetter(r rune) bool {
	return ('а' <= r && r <= 'я') || ('А' <= r && r <= 'Я') || r == 'ё' || r == 'Ё'
}

// isCleanLatin reports whether text reads as a Latin token: it has Latin
// letters and nothing Cyrillic.
func isCleanLatin(text string) bool {
	return IsLatin(text) && !IsCyrillic(text)
}
