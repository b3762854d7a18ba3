package service

import (
	"testing"
	"time"

	"oddsdesk/internal/models"
)

func floatPtr(v float64) *float64 { return &v }

func TestConsensusCache_FlashArmsAndClears(t *testing.T) {
	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cache := NewConsensusCache(1500 * time.Millisecond)
	cache.now = func() time.Time { return clock }

	cache.Apply(models.ConsensusTick{SignalID: "s1", Market: "spreads", ConsensusLine: floatPtr(-3.5)})

	snap := cache.Snapshot()
	if len(snap) != 1 || !snap[0].Flash {
		t.Fatalf("fresh tick should flash: %+v", snap)
	}

	clock = clock.Add(1499 * time.Millisecond)
	if snap = cache.Snapshot(); !snap[0].Flash {
		t.Fatalf("flash cleared before deadline")
	}

	clock = clock.Add(2 * time.Millisecond)
	if snap = cache.Snapshot(); snap[0].Flash {
		t.Fatalf("flash should self-clear after deadline")
	}
	if snap[0].ConsensusLine == nil || *snap[0].ConsensusLine != -3.5 {
		t.Fatalf("display values must survive the flash: %+v", snap[0])
	}
}

func TestConsensusCache_NewerTickRearmsFlash(t *testing.T) {
	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cache := NewConsensusCache(time.Second)
	cache.now = func() time.Time { return clock }

	cache.Apply(models.ConsensusTick{SignalID: "s1", Market: "h2h", ConsensusLine: floatPtr(1.0)})
	clock = clock.Add(900 * time.Millisecond)
	cache.Apply(models.ConsensusTick{SignalID: "s1", Market: "h2h", ConsensusLine: floatPtr(2.0)})

	// Past the first deadline but inside the rearmed one.
	clock = clock.Add(200 * time.Millisecond)
	snap := cache.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("expected one entry, got %d", len(snap))
	}
	if !snap[0].Flash {
		t.Fatalf("newer tick must rearm the flash")
	}
	if *snap[0].ConsensusLine != 2.0 {
		t.Fatalf("last update wins, got line %v", *snap[0].ConsensusLine)
	}
}

func TestConsensusCache_SnapshotSortedBySignal(t *testing.T) {
	cache := NewConsensusCache(time.Second)
	cache.Apply(models.ConsensusTick{SignalID: "s2", Market: "h2h"})
	cache.Apply(models.ConsensusTick{SignalID: "s1", Market: "h2h"})
	cache.Apply(models.ConsensusTick{SignalID: "s3", Market: "h2h"})

	snap := cache.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("expected three entries, got %d", len(snap))
	}
	for i, want := range []string{"s1", "s2", "s3"} {
		if snap[i].SignalID != want {
			t.Fatalf("entry %d: got %q want %q", i, snap[i].SignalID, want)
		}
	}
}

func TestConsensusCache_IgnoresEmptySignal(t *testing.T) {
	cache := NewConsensusCache(time.Second)
	cache.Apply(models.ConsensusTick{Market: "h2h"})
	if snap := cache.Snapshot(); len(snap) != 0 {
		t.Fatalf("empty signal id must be dropped: %+v", snap)
	}
}
