package services

import (
	"regexp"
	"strings"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	horizontalSpaceRE = regexp.MustCompile("[\t\f\v\u00A0]+")
	multiSpaceRE      = regexp.MustCompile(` {2,}`)
	multiNewlinesRE   = regexp.MustCompile(`\n{3,}`)
	wordSplitRE       = regexp.MustCompile(`\s+`)
)

// Häufige UTF-8-als-Latin-1 Artefakte aus LLM- und CSV-Importen.
var mojibakeReplacer = strings.NewReplacer(
	"â€”", "—",
	"â€“", "–",
	"â€™", "'",
	"â€˜", "'",
	"â€œ", "\"",
	"â€\u009d", "\"",
	"â€¦", "...",
	"Â\u00a0", " ",
)

var ligatureReplacer = strings.NewReplacer(
	"ﬁ", "fi",
	"ﬂ", "fl",
	"ﬀ", "ff",
	"ﬃ", "ffi",
	"ﬄ", "ffl",
	"ﬆ", "st",
)

// SanitizeStats enthält Kennzahlen zur Bereinigung
type SanitizeStats struct {
	NumWords      int `json:"num_words"`
	NumChars      int `json:"num_chars"`
	MojibakeFixes int `json:"mojibake_fixes"`
}

// TextSanitizer repariert Encoding-Artefakte in gespeichertem Content, bevor der Humanizer läuft.
type TextSanitizer struct {
	logger *zap.Logger
}

func NewTextSanitizer(logger *zap.Logger) *TextSanitizer {
	return &TextSanitizer{logger: logger}
}

// Sanitize repairs mojibake, replaces ligatures, applies NFC and collapses
// horizontal whitespace. Newlines are kept (at most one blank line).
func (ts *TextSanitizer) Sanitize(text string) (string, SanitizeStats) {
	if strings.TrimSpace(text) == "" {
		return text, SanitizeStats{}
	}

	fixes := countMojibake(text)
	out := mojibakeReplacer.Replace(text)
	out = ligatureReplacer.Replace(out)
	normalized, _, err := transform.String(transform.Chain(norm.NFC), out)
	if err != nil {
		ts.logger.Warn("NFC normalization failed, keeping input", zap.Error(err))
	} else {
		out = normalized
	}
	out = collapseWhitespace(out)

	return out, SanitizeStats{
		NumWords:      wordCount(out),
		NumChars:      len([]rune(out)),
		MojibakeFixes: fixes,
	}
}

func countMojibake(s string) int {
	n := 0
	for _, seq := range []string{"â€", "Â\u00a0"} {
		n += strings.Count(s, seq)
	}
	return n
}

func collapseWhitespace(s string) string {
	s = horizontalSpaceRE.ReplaceAllString(s, " ")
	s = multiSpaceRE.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = multiNewlinesRE.ReplaceAllString(s, "\n\n")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRightFunc(lines[i], unicode.IsSpace)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func wordCount(s string) int {
	fields := wordSplitRE.Split(strings.TrimSpace(s), -1)
	if len(fields) == 1 && fields[0] == "" {
		return 0
	}
	return len(fields)
}
