package retrieval

// HistorySize is the bounded window of recent modes kept per card and
// per session. Recency computations are O(HistorySize) regardless of
// session length.
const HistorySize = 8

// History is a fixed-capacity ring buffer of recently used modes. The
// zero value is an empty history. It is a value type: callers own their
// per-card and per-session instances and pass them by value into Select.
type History struct {
	modes [HistorySize]Mode
	start int
	n     int
}

// Push appends a mode, evicting the oldest entry once the window is full.
func (h *History) Push(m Mode) {
	if h.n < HistorySize {
		h.modes[(h.start+h.n)%HistorySize] = m
		h.n++
		return
	}
	h.modes[h.start] = m
	h.start = (h.start + 1) % HistorySize
}

// Len returns the number of recorded entries, at most HistorySize.
func (h History) Len() int {
	return h.n
}

// At returns the i-th entry, oldest first.
func (h History) At(i int) Mode {
	return h.modes[(h.start+i)%HistorySize]
}

// Count returns how many of the recorded entries are m.
func (h History) Count(m Mode) int {
	c := 0
	for i := 0; i < h.n; i++ {
		if h.At(i) == m {
			c++
		}
	}
	return c
}

// LastRepeated reports whether the most recent n entries all equal the
// same mode, and which mode that is. False when fewer than n entries
// have been recorded.
func (h History) LastRepeated(n int) (Mode, bool) {
	if n <= 0 || h.n < n {
		return 0, false
	}
	last := h.At(h.n - 1)
	for i := h.n - n; i < h.n; i++ {
		if h.At(i) != last {
			return 0, false
		}
	}
	return last, true
}

// Slice returns the entries oldest first, for persistence.
func (h History) Slice() []Mode {
	out := make([]Mode, h.n)
	for i := 0; i < h.n; i++ {
		out[i] = h.At(i)
	}
	return out
}

// HistoryFrom rebuilds a History from a persisted slice, keeping only
// the most recent HistorySize entries.
func HistoryFrom(modes []Mode) History {
	var h History
	for _, m := range modes {
		h.Push(m)
	}
	return h
}
