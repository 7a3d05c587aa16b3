package humanizer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var theNounRE = regexp.MustCompile(`(?i)^The` + spaceClass + `+([a-z]+)` + spaceClass + `+`)

// varyStarters rewrites the second and later "The <noun> ..." sentences into
// one of the starter templates when the draw beats threshold.
func varyStarters(text string, r Rand, threshold float64) string {
	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return text
	}

	theCount := 0
	var b strings.Builder
	b.Grow(len(text))
	for _, sentence := range sentences {
		trimmed := trimSpace(sentence)
		if !strings.HasPrefix(trimmed, "The ") {
			b.WriteString(sentence)
			continue
		}
		theCount++
		if theCount < 2 || r.Float64() <= threshold {
			b.WriteString(sentence)
			continue
		}
		m := theNounRE.FindStringSubmatch(trimmed)
		if m == nil {
			b.WriteString(sentence)
			continue
		}
		opener := fmt.Sprintf(pick(r, starterTemplates), m[1])
		rest := lowerFirst(trimmed[len(m[0]):])
		b.WriteString(" " + opener + " " + rest)
	}
	return b.String()
}

// addHumanTouch prefixes one interior sentence with a short interjection.
func addHumanTouch(text string, r Rand, threshold float64, minLength int) string {
	if utf8.RuneCountInString(text) < minLength {
		return text
	}
	sentences := SplitSentences(text)
	if len(sentences) <= 3 || r.Float64() <= threshold {
		return text
	}

	idx := r.IntN(len(sentences)-2) + 1
	expression := pick(r, humanExpressions)
	sentences[idx] = " " + expression + " " + lowerFirst(trimSpace(sentences[idx]))
	return strings.Join(sentences, "")
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || (r == utf8.RuneError && size == 1) {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
