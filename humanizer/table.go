package humanizer

import (
	"regexp"
	"sort"
	"strings"
	"sync"
)

// Entry maps a literal trigger to its candidate replacements.
type Entry struct {
	Trigger    string
	Candidates []string
}

// Table is a static, curated replacement table. Triggers are literals and are
// never taken from request data.
type Table struct {
	Name string
	// FoldCase makes the compiled matcher case-insensitive.
	FoldCase bool
	Entries  []Entry

	once    sync.Once
	matcher *Matcher
}

// Matcher is the compiled, read-only form of a Table.
type Matcher struct {
	re     *regexp.Regexp
	exact  map[string][]string
	folded map[string][]string
}

// Matcher returns the compiled matcher, building it on first use.
func (t *Table) Matcher() *Matcher {
	t.once.Do(func() {
		t.matcher = compileTable(t)
	})
	return t.matcher
}

func compileTable(t *Table) *Matcher {
	m := &Matcher{
		exact:  make(map[string][]string, len(t.Entries)),
		folded: make(map[string][]string, len(t.Entries)),
	}
	triggers := make([]string, 0, len(t.Entries))
	for _, e := range t.Entries {
		if e.Trigger == "" || len(e.Candidates) == 0 {
			continue
		}
		if _, dup := m.exact[e.Trigger]; dup {
			continue
		}
		m.exact[e.Trigger] = e.Candidates
		// first declared entry wins the folded slot
		low := strings.ToLower(e.Trigger)
		if _, ok := m.folded[low]; !ok {
			m.folded[low] = e.Candidates
		}
		triggers = append(triggers, e.Trigger)
	}
	m.re = regexp.MustCompile(alternation(triggers, t.FoldCase))
	return m
}

// alternation joins the triggers longest first so a phrase wins over any
// shorter trigger it contains. RE2 alternation is leftmost-first, so order matters.
func alternation(triggers []string, foldCase bool) string {
	sorted := append([]string(nil), triggers...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})

	parts := make([]string, 0, len(sorted))
	for _, tr := range sorted {
		p := regexp.QuoteMeta(tr)
		if isWordByte(tr[0]) {
			p = `\b` + p
		}
		if isWordByte(tr[len(tr)-1]) {
			p += `\b`
		}
		parts = append(parts, p)
	}
	if len(parts) == 0 {
		// matches nothing
		return `[^\x00-\x{10FFFF}]`
	}
	expr := "(?:" + strings.Join(parts, "|") + ")"
	if foldCase {
		expr = "(?i)" + expr
	}
	return expr
}

func isWordByte(b byte) bool {
	return b == '_' || ('0' <= b && b <= '9') || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// Candidates resolves a matched substring: exact key first, then the
// case-insensitive key.
func (m *Matcher) Candidates(matched string) ([]string, bool) {
	if c, ok := m.exact[matched]; ok {
		return c, true
	}
	c, ok := m.folded[strings.ToLower(matched)]
	return c, ok
}

// Replace substitutes every match with a candidate chosen by r.
func (m *Matcher) Replace(text string, r Rand) string {
	return m.re.ReplaceAllStringFunc(text, func(matched string) string {
		candidates, ok := m.Candidates(matched)
		if !ok {
			return matched
		}
		return pick(r, candidates)
	})
}

// Find returns every matched substring in order of appearance.
func (m *Matcher) Find(text string) []string {
	return m.re.FindAllString(text, -1)
}
