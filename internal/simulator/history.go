package simulator

// DefaultHistoryLimit is the number of messages kept when no limit is set.
const DefaultHistoryLimit = 200

// history is a fixed-capacity ring buffer of messages. When full, appending
// evicts the oldest message. It is not safe for concurrent use; the
// Simulator guards it with its own mutex.
type history struct {
	buf     []Message
	start   int
	size    int
	dropped int
}

func newHistory(limit int) *history {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &history{buf: make([]Message, limit)}
}

func (h *history) add(m Message) {
	if h.size < len(h.buf) {
		h.buf[(h.start+h.size)%len(h.buf)] = m
		h.size++
		return
	}
	h.buf[h.start] = m
	h.start = (h.start + 1) % len(h.buf)
	h.dropped++
}

// snapshot returns the buffered messages oldest first.
func (h *history) snapshot() []Message {
	out := make([]Message, h.size)
	for i := 0; i < h.size; i++ {
		out[i] = h.buf[(h.start+i)%len(h.buf)]
	}
	return out
}

func (h *history) reset() {
	clear(h.buf)
	h.start = 0
	h.size = 0
	h.dropped = 0
}

func (h *history) capacity() int { return len(h.buf) }
