package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"oddsdesk/internal/models"
)

// ScorecardLister is the slice of the upstream client the batch fetcher
// needs.
type ScorecardLister interface {
	ListScorecards(ctx context.Context, signalIDs []string) ([]models.SignalScorecard, error)
}

// DetailBatchFetcher fetches per-signal scorecards for the currently visible
// signal set. Each Refresh supersedes the previous one: the in-flight batch
// is cancelled and, even if it completes, its result is discarded unless it
// is still the newest request. That closes the race where an older, larger
// batch would overwrite a newer, smaller one.
type DetailBatchFetcher struct {
	Client ScorecardLister
	Logger *zap.Logger

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	cards  map[string]models.SignalScorecard
	done   chan struct{}
}

// Refresh starts fetching scorecards for signalIDs, superseding any batch
// still in flight.
func (f *DetailBatchFetcher) Refresh(ctx context.Context, signalIDs []string) {
	if f == nil || f.Client == nil {
		return
	}
	f.mu.Lock()
	if f.cancel != nil {
		f.cancel()
	}
	f.gen++
	gen := f.gen
	batchCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	done := make(chan struct{})
	f.done = done
	f.mu.Unlock()

	go func() {
		defer close(done)
		cards, err := f.Client.ListScorecards(batchCtx, signalIDs)
		if err != nil {
			if f.Logger != nil && batchCtx.Err() == nil {
				f.Logger.Warn("scorecard batch failed", zap.Error(err))
			}
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		if gen != f.gen {
			// A newer visible set superseded this batch while it was in
			// flight; applying it would resurrect stale cards.
			return
		}
		next := make(map[string]models.SignalScorecard, len(cards))
		for _, card := range cards {
			next[card.SignalID] = card
		}
		f.cards = next
	}()
}

// Cards returns the scorecards of the newest applied batch.
func (f *DetailBatchFetcher) Cards() map[string]models.SignalScorecard {
	if f == nil {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]models.SignalScorecard, len(f.cards))
	for id, card := range f.cards {
		out[id] = card
	}
	return out
}

// Wait blocks until the most recently started batch finishes. Test helper;
// production callers poll Cards.
func (f *DetailBatchFetcher) Wait() {
	f.mu.Lock()
	done := f.done
	f.mu.Unlock()
	if done != nil {
		<-done
	}
}
