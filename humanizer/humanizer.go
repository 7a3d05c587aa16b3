// Package humanizer rewrites AI-generated marketing copy into more neutral,
// conversational prose. A call runs a fixed sequence of passes:
//
//	tone balance → lexical neutralization → casual phrasing →
//	sentence-starter variation → human touch → whitespace cleanup
//
// The replacement tables are static literals compiled once per process; the
// only other shared state is the Rand, so a Humanizer is safe for concurrent use
// as long as its Rand is.
package humanizer

import "strings"

const (
	defaultStarterThreshold = 0.6
	defaultTouchThreshold   = 0.6
	defaultMinTouchLength   = 100

	// growthSlack is the constant part of the per-call growth bound.
	growthSlack = 64
)

// Humanizer runs the rewrite pipeline.
type Humanizer struct {
	rand             Rand
	starterThreshold float64
	touchThreshold   float64
	minTouchLength   int
}

// Option configures a Humanizer.
type Option func(*Humanizer)

// WithRand sets the randomness source. A nil Rand keeps the default.
func WithRand(r Rand) Option {
	return func(h *Humanizer) {
		if r != nil {
			h.rand = r
		}
	}
}

// WithStarterThreshold sets the draw a repeated "The ..." sentence must exceed to be rewritten.
func WithStarterThreshold(t float64) Option {
	return func(h *Humanizer) { h.starterThreshold = t }
}

// WithTouchThreshold sets the draw that must be exceeded to insert an interjection.
func WithTouchThreshold(t float64) Option {
	return func(h *Humanizer) { h.touchThreshold = t }
}

// WithMinTouchLength sets the minimum text length (in runes) for interjections.
func WithMinTouchLength(n int) Option {
	return func(h *Humanizer) { h.minTouchLength = n }
}

// New returns a Humanizer with the given options applied.
func New(opts ...Option) *Humanizer {
	h := &Humanizer{
		rand:             globalRand{},
		starterThreshold: defaultStarterThreshold,
		touchThreshold:   defaultTouchThreshold,
		minTouchLength:   defaultMinTouchLength,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Content humanizes text. Empty input yields empty output.
func (h *Humanizer) Content(text string) string {
	if text == "" {
		return ""
	}
	limit := 2*len(text) + growthSlack
	passes := []func(string) string{
		BalanceTone,
		h.neutralize,
		h.casualize,
		func(s string) string { return varyStarters(s, h.rand, h.starterThreshold) },
		func(s string) string { return addHumanTouch(s, h.rand, h.touchThreshold, h.minTouchLength) },
	}

	result := text
	for _, pass := range passes {
		// a pass that would blow past the growth bound is dropped for this call
		if out := pass(result); len(out) <= limit {
			result = out
		}
	}
	return NormalizeWhitespace(result)
}

func (h *Humanizer) neutralize(text string) string {
	return lexicalTable.Matcher().Replace(text, h.rand)
}

func (h *Humanizer) casualize(text string) string {
	return casualTable.Matcher().Replace(text, h.rand)
}

// Value humanizes untyped input such as decoded JSON. Anything that is not a
// string (nil, numbers, objects, nil *string) yields "".
func (h *Humanizer) Value(v any) string {
	switch t := v.(type) {
	case string:
		return h.Content(t)
	case *string:
		if t == nil {
			return ""
		}
		return h.Content(*t)
	default:
		return ""
	}
}

// ContentArray humanizes every element, keeping order and length.
// A nil slice yields an empty, non-nil slice.
func (h *Humanizer) ContentArray(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = h.Content(item)
	}
	return out
}

// ArrayValue is ContentArray for untyped input. Non-array input yields an
// empty slice; non-string elements become "".
func (h *Humanizer) ArrayValue(v any) []string {
	switch t := v.(type) {
	case []string:
		return h.ContentArray(t)
	case []any:
		out := make([]string, len(t))
		for i, item := range t {
			out[i] = h.Value(item)
		}
		return out
	default:
		return []string{}
	}
}

// EngineSummary is one entry of a model's engine summaries. Only Summary is
// humanized.
type EngineSummary struct {
	Title        string `json:"title,omitempty"`
	Summary      string `json:"summary"`
	Transmission string `json:"transmission,omitempty"`
	Power        string `json:"power,omitempty"`
	Torque       string `json:"torque,omitempty"`
	Speed        string `json:"speed,omitempty"`
}

// EngineSummaries maps Summary through Content and leaves the other fields untouched.
func (h *Humanizer) EngineSummaries(engines []EngineSummary) []EngineSummary {
	out := make([]EngineSummary, len(engines))
	for i, e := range engines {
		e.Summary = h.Content(e.Summary)
		out[i] = e
	}
	return out
}

// Result pairs an input with its humanized form.
type Result struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

// Test humanizes text and returns both versions.
func (h *Humanizer) Test(text string) Result {
	return Result{Before: text, After: h.Content(text)}
}

// FieldSetResult reports which fields changed.
type FieldSetResult struct {
	Updated map[string]string `json:"updated"`
	Skipped []string          `json:"skipped"`
}

// FieldSet humanizes the named fields. A field is updated iff its input is
// non-empty and the output differs from it; everything else is skipped.
func (h *Humanizer) FieldSet(fields map[string]string, names []string) FieldSetResult {
	res := FieldSetResult{Updated: map[string]string{}, Skipped: []string{}}
	for _, name := range names {
		original := fields[name]
		if original == "" {
			res.Skipped = append(res.Skipped, name)
			continue
		}
		if out := h.Content(original); out != original {
			res.Updated[name] = out
		} else {
			res.Skipped = append(res.Skipped, name)
		}
	}
	return res
}

// Triggers lists the triggers present in text, lowercased and deduplicated:
// lexical hits first, then casual hits, each in order of appearance.
func (h *Humanizer) Triggers(text string) []string {
	seen := map[string]bool{}
	var out []string
	for _, m := range []*Matcher{lexicalTable.Matcher(), casualTable.Matcher()} {
		for _, hit := range m.Find(text) {
			key := strings.ToLower(hit)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, key)
		}
	}
	return out
}

var defaultHumanizer = New()

// Content humanizes text with the default Humanizer.
func Content(text string) string { return defaultHumanizer.Content(text) }

// Value humanizes untyped input with the default Humanizer.
func Value(v any) string { return defaultHumanizer.Value(v) }

// ContentArray humanizes a slice with the default Humanizer.
func ContentArray(items []string) []string { return defaultHumanizer.ContentArray(items) }

// EngineSummaries humanizes engine summaries with the default Humanizer.
func EngineSummaries(engines []EngineSummary) []EngineSummary {
	return defaultHumanizer.EngineSummaries(engines)
}

// Test runs the default Humanizer and returns before and after.
func Test(text string) Result { return defaultHumanizer.Test(text) }
