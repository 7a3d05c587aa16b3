package humanizer

import (
	"regexp"
	"strings"
	"unicode"
)

// spaceClass is \s widened to \v, NBSP and the other Unicode spaces;
// RE2's \s is ASCII-only.
const spaceClass = `[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]`

var (
	exclamationRunRE = regexp.MustCompile(`!{2,}`)
	youWillLoveRE    = regexp.MustCompile(`(?i)You will (love|adore|enjoy|appreciate)`)
	youWillBeRE      = regexp.MustCompile(`(?i)You('ll| will) be (amazed|impressed|blown away)`)
	isEquippedRE     = regexp.MustCompile(`(?i)It is equipped with`)
	comesEquippedRE  = regexp.MustCompile(`(?i)It comes equipped with`)
	mostAdjNounRE    = regexp.MustCompile(`(?i)the most ([a-z]+) (car|vehicle|model|variant)`)
	oneOfTheBestRE   = regexp.MustCompile(`(?i)one of the (best|finest|greatest)`)

	whitespaceRunRE = regexp.MustCompile(spaceClass + `{2,}`)
)

// BalanceTone applies the fixed, non-random rewrites: exclamation runs,
// set phrases and superlatives.
func BalanceTone(text string) string {
	out := exclamationRunRE.ReplaceAllString(text, "!")
	out = youWillLoveRE.ReplaceAllLiteralString(out, "You might appreciate")
	out = youWillBeRE.ReplaceAllLiteralString(out, "You may notice")
	// "It is equipped with" must go before the casual pass turns it into "It's equipped with".
	out = isEquippedRE.ReplaceAllLiteralString(out, "It comes with")
	out = comesEquippedRE.ReplaceAllLiteralString(out, "It includes")
	out = mostAdjNounRE.ReplaceAllString(out, "a notably ${1} ${2}")
	out = oneOfTheBestRE.ReplaceAllLiteralString(out, "among the better")
	return out
}

// NormalizeWhitespace collapses whitespace runs to one space and trims the ends.
func NormalizeWhitespace(text string) string {
	return trimSpace(whitespaceRunRE.ReplaceAllString(text, " "))
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || unicode.Is(unicode.Zs, r) || r == '\uFEFF'
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}
