package adversary

import "github.com/vovakirdan/artillery-duel/internal/core"

// HistorySize is the number of shots the policy remembers.
const HistorySize = 3

// ShotRecord is the outcome of one adversary shot.
type ShotRecord struct {
	Angle    float64
	Power    float64
	Impact   core.Vec2
	WasClose bool // Impact landed within the close radius of the opponent
}

// History is a sliding window over the most recent shots.
// Once full, each new record evicts the oldest one.
type History struct {
	records [HistorySize]ShotRecord
	count   int
}

// Add appends a record, evicting the oldest when the window is full.
func (h *History) Add(r ShotRecord) {
	if h.count < HistorySize {
		h.records[h.count] = r
		h.count++
		return
	}
	copy(h.records[:], h.records[1:])
	h.records[HistorySize-1] = r
}

// Len returns the number of stored records.
func (h *History) Len() int {
	return h.count
}

// Last returns the most recent record.
func (h *History) Last() (ShotRecord, bool) {
	if h.count == 0 {
		return ShotRecord{}, false
	}
	return h.records[h.count-1], true
}

// Records returns the stored records, oldest first.
func (h *History) Records() []ShotRecord {
	out := make([]ShotRecord, h.count)
	copy(out, h.records[:h.count])
	return out
}

// Reset forgets every record.
func (h *History) Reset() {
	h.count = 0
	h.records = [HistorySize]ShotRecord{}
}
