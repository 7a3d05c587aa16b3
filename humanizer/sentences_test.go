package humanizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"No punctuation here", []string{"No punctuation here"}},
		{"One. Two! Three?", []string{"One.", " Two!", " Three?"}},
		{"Wait... what?! ok", []string{"Wait...", " what?!", " ok"}},
		{"...start", []string{"...", "start"}},
		{"Dr. Rao drove it.", []string{"Dr.", " Rao drove it."}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitSentences(tt.in))
		})
	}
}

func TestSplitSentences_Lossless(t *testing.T) {
	inputs := []string{
		"The car is fast. The cabin is quiet!! Is it worth it?? Maybe",
		"  leading space. trailing space.  ",
		"?!.",
		`.*+?^${}()|[\]\`,
	}
	for _, in := range inputs {
		assert.Equal(t, in, strings.Join(SplitSentences(in), ""))
	}
}

func TestSplitSentences_Restartable(t *testing.T) {
	in := "First. Second! Third?"
	assert.Equal(t, SplitSentences(in), SplitSentences(in))
}
