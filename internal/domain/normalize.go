package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeText prepares text for comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// minStemLen is the shortest key the inflection reducer may produce.
const minStemLen = 3

// NormalizeForKey canonicalizes a raw term into its duplicate-detection key.
// The key is never shown to users. NormalizeForKey is total and idempotent:
// NormalizeForKey(NormalizeForKey(s)) == NormalizeForKey(s).
//
// Folding and reduction repeat until the key stops changing. Every change
// after the first pass shortens the key, so the loop terminates.
func NormalizeForKey(raw string) string {
	key := raw
	for {
		next := reduceInflection(foldTerm(key))
		if next == key {
			return key
		}
		key = next
	}
}

// foldTerm lowercases, strips diacritics and trims non-alphanumeric edges.
func foldTerm(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}

	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	stripped, _, err := transform.String(t, s)
	if err == nil {
		s = stripped
	}
	// Compatibility decomposition can surface uppercase forms (e.g. ligatures).
	s = strings.ToLower(s)

	return strings.TrimFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// reduceInflection applies the first matching suffix rule. Words shorter
// than minStemLen are returned unchanged and no rule produces a stem below it.
func reduceInflection(s string) string {
	r := []rune(s)
	n := len(r)
	if n < minStemLen {
		return s
	}

	cut := func(k int, add string) string {
		out := string(r[:n-k]) + add
		if len([]rune(out)) < minStemLen {
			return s
		}
		return out
	}

	switch {
	case n > 4 && strings.HasSuffix(s, "ing"):
		base := r[:n-3]
		if len(base) > minStemLen && base[len(base)-1] == base[len(base)-2] && isConsonant(base[len(base)-1]) {
			base = base[:len(base)-1]
		}
		if len(base) < minStemLen {
			return s
		}
		return string(base)
	case n > 4 && strings.HasSuffix(s, "ied"):
		return cut(3, "y")
	case n > 3 && strings.HasSuffix(s, "ed"):
		return cut(2, "")
	case n > 4 && strings.HasSuffix(s, "ies"):
		return cut(3, "y")
	case strings.HasSuffix(s, "ses"), strings.HasSuffix(s, "xes"), strings.HasSuffix(s, "zes"):
		return cut(2, "")
	case n > 3 && strings.HasSuffix(s, "es"):
		return cut(2, "")
	case n > 3 && strings.HasSuffix(s, "s") && !strings.HasSuffix(s, "ss"):
		return cut(1, "")
	}
	return s
}

func isConsonant(r rune) bool {
	if !unicode.IsLetter(r) {
		return false
	}
	return !strings.ContainsRune("aeiouy", r)
}
