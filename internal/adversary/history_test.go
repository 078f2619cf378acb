package adversary

import (
	"testing"

	"github.com/vovakirdan/artillery-duel/internal/core"
)

func TestHistoryWindow(t *testing.T) {
	var h History

	if _, ok := h.Last(); ok {
		t.Fatal("empty history should have no last record")
	}

	for i := 1; i <= 5; i++ {
		h.Add(ShotRecord{Power: float64(i)})
	}

	if h.Len() != HistorySize {
		t.Fatalf("Len() = %d, expected %d", h.Len(), HistorySize)
	}

	records := h.Records()
	for i, want := range []float64{3, 4, 5} {
		if records[i].Power != want {
			t.Errorf("records[%d].Power = %v, expected %v", i, records[i].Power, want)
		}
	}

	last, ok := h.Last()
	if !ok || last.Power != 5 {
		t.Errorf("Last() = %+v, %v; expected power 5", last, ok)
	}
}

func TestHistoryPartialAndReset(t *testing.T) {
	var h History
	h.Add(ShotRecord{Impact: core.Vec2{X: 10}})
	h.Add(ShotRecord{Impact: core.Vec2{X: 20}})

	if h.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", h.Len())
	}
	if last, _ := h.Last(); last.Impact.X != 20 {
		t.Errorf("Last().Impact.X = %v, expected 20", last.Impact.X)
	}

	// Records is a copy
	h.Records()[0].Power = 99
	if h.Records()[0].Power == 99 {
		t.Error("Records() should not expose internal storage")
	}

	h.Reset()
	if h.Len() != 0 {
		t.Errorf("Len() after Reset = %d, expected 0", h.Len())
	}
}
