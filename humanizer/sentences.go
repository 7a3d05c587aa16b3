package humanizer

// SplitSentences cuts text after every run of terminal punctuation (. ! ?).
// Concatenating the fragments gives back the input; text without terminal
// punctuation is a single fragment. Abbreviations are not special-cased.
func SplitSentences(text string) []string {
	if text == "" {
		return nil
	}
	var out []string
	start := 0
	for i := 0; i < len(text); {
		if !isTerminal(text[i]) {
			i++
			continue
		}
		for i < len(text) && isTerminal(text[i]) {
			i++
		}
		out = append(out, text[start:i])
		start = i
	}
	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}

func isTerminal(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}
