package service

import (
	"sort"
	"sync"
	"time"

	"oddsdesk/internal/models"
)

// ConsensusDisplay is what the UI renders for one signal's live consensus:
// the latest display values plus a transient flash marker.
type ConsensusDisplay struct {
	SignalID       string    `json:"signal_id"`
	Market         string    `json:"market"`
	ConsensusLine  *float64  `json:"consensus_line"`
	ConsensusPrice *int      `json:"consensus_price"`
	UpdatedAt      time.Time `json:"updated_at"`
	Flash          bool      `json:"flash"`
}

type consensusEntry struct {
	display    ConsensusDisplay
	flashUntil time.Time
}

// ConsensusCache holds the lightweight consensus values pushed by the
// realtime channel. It is display-only: nothing here feeds ranking or
// classification, which consume the separately fetched richer records.
//
// Each applied tick arms the flash marker for FlashFor; a newer tick rearms
// it (last update wins), and the marker clears on its own once the deadline
// passes regardless of further updates.
type ConsensusCache struct {
	FlashFor time.Duration

	mu      sync.Mutex
	entries map[string]*consensusEntry
	now     func() time.Time
}

func NewConsensusCache(flashFor time.Duration) *ConsensusCache {
	if flashFor <= 0 {
		flashFor = 1500 * time.Millisecond
	}
	return &ConsensusCache{
		FlashFor: flashFor,
		entries:  map[string]*consensusEntry{},
		now:      time.Now,
	}
}

// Apply records a tick, overwriting the display values and rearming the
// flash deadline.
func (c *ConsensusCache) Apply(tick models.ConsensusTick) {
	if c == nil || tick.SignalID == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	c.entries[tick.SignalID] = &consensusEntry{
		display: ConsensusDisplay{
			SignalID:       tick.SignalID,
			Market:         tick.Market,
			ConsensusLine:  tick.ConsensusLine,
			ConsensusPrice: tick.ConsensusPrice,
			UpdatedAt:      now,
		},
		flashUntil: now.Add(c.FlashFor),
	}
}

// Snapshot returns the current display state sorted by signal id, with the
// flash marker computed against the current clock.
func (c *ConsensusCache) Snapshot() []ConsensusDisplay {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	out := make([]ConsensusDisplay, 0, len(c.entries))
	for _, entry := range c.entries {
		display := entry.display
		display.Flash = now.Before(entry.flashUntil)
		out = append(out, display)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SignalID < out[j].SignalID })
	return out
}
