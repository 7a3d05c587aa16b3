package humanizer

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const fourSentences = "First sentence here is long enough. Second Sentence goes here too. " +
	"Third sentence follows along. Fourth sentence ends it all."

func TestVaryStarters(t *testing.T) {
	in := "The car is fast. The engine is smooth. The cabin is quiet."

	got := varyStarters(in, fixedRand{f: 0.9, n: 1}, 0.6)
	assert.Equal(t, "The car is fast. As for the engine, is smooth. As for the cabin, is quiet.", got)

	assert.Equal(t, in, varyStarters(in, fixedRand{f: 0.6, n: 1}, 0.6), "draw must exceed the threshold")
}

func TestVaryStarters_UnicodeSpaceAfterArticle(t *testing.T) {
	in := "The car is fast. The \u00a0cabin\u2009is quiet."
	got := varyStarters(in, fixedRand{f: 0.9, n: 0}, 0.6)
	assert.Equal(t, "The car is fast. When looking at the cabin, is quiet.", got)
}

func TestVaryStarters_FirstSentenceNeverRewritten(t *testing.T) {
	in := "The car is fast. A second line."
	assert.Equal(t, in, varyStarters(in, fixedRand{f: 1, n: 0}, 0.6))
}

func TestVaryStarters_NonWordToken(t *testing.T) {
	in := "The car is fast. The 2024 model is new."
	assert.Equal(t, in, varyStarters(in, fixedRand{f: 1, n: 0}, 0.6))
}

func TestVaryStarters_KeepsTrailingFragment(t *testing.T) {
	in := "The car is fast. The seats are soft. and then"
	got := varyStarters(in, fixedRand{f: 1, n: 3}, 0.6)
	assert.Equal(t, "The car is fast. In terms of the seats, are soft. and then", got)
}

func TestAddHumanTouch(t *testing.T) {
	got := addHumanTouch(fourSentences, fixedRand{f: 0.9, n: 0}, 0.6, 100)
	want := "First sentence here is long enough. Here's the thing: second Sentence goes here too. " +
		"Third sentence follows along. Fourth sentence ends it all."
	assert.Equal(t, want, got)
}

func TestAddHumanTouch_Skips(t *testing.T) {
	assert.Equal(t, "Short. Text. Here. Now.", addHumanTouch("Short. Text. Here. Now.", fixedRand{f: 1}, 0.6, 100))

	three := "This first sentence is rather long on purpose. So is the second sentence right here. And the third one too."
	assert.Equal(t, three, addHumanTouch(three, fixedRand{f: 1}, 0.6, 100))

	assert.Equal(t, fourSentences, addHumanTouch(fourSentences, fixedRand{f: 0.5}, 0.6, 100))
}

func TestAddHumanTouch_NeverFirstOrLast(t *testing.T) {
	sentences := SplitSentences(fourSentences)
	last := len(sentences) - 1
	for n := 0; n < 10; n++ {
		got := SplitSentences(addHumanTouch(fourSentences, fixedRand{f: 1, n: n}, 0.6, 100))
		assert.Equal(t, sentences[0], got[0])
		assert.Equal(t, sentences[last], got[len(got)-1])
	}
}

func TestAddHumanTouch_Rate(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	inserted := 0
	const trials = 1000
	for i := 0; i < trials; i++ {
		if addHumanTouch(fourSentences, r, 0.6, 100) != fourSentences {
			inserted++
		}
	}
	// roughly 40% of draws exceed 0.6
	assert.InDelta(t, 400, inserted, 100)
}

func TestVaryStarters_Rate(t *testing.T) {
	in := strings.Repeat("The car is fast. ", 2)
	r := rand.New(rand.NewPCG(7, 11))
	changed := 0
	for i := 0; i < 1000; i++ {
		if varyStarters(in, r, 0.6) != in {
			changed++
		}
	}
	assert.InDelta(t, 400, changed, 100)
}

func TestLowerFirst(t *testing.T) {
	assert.Equal(t, "hello", lowerFirst("Hello"))
	assert.Equal(t, "", lowerFirst(""))
	assert.Equal(t, "élan", lowerFirst("Élan"))
	assert.Equal(t, "\xffabc", lowerFirst("\xffabc"))
}
