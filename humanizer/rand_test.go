package humanizer

// fixedRand always returns the same draw and index (clamped to the range).
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }

func (r fixedRand) IntN(n int) int {
	if r.n >= n {
		return n - 1
	}
	return r.n
}

// never keeps every probabilistic pass from firing and picks the first candidate.
var never = fixedRand{f: 0, n: 0}
