package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"oddsdesk/internal/client/scoring"
	"oddsdesk/internal/models"
	"oddsdesk/internal/repository"
)

// ScoringClient is the slice of the upstream client the refresh cycle needs.
type ScoringClient interface {
	ListOpportunities(ctx context.Context, q scoring.Query) ([]models.OpportunityRecord, error)
	ListQualityRows(ctx context.Context, q scoring.Query) ([]models.QualityRow, error)
	GetWeeklySummary(ctx context.Context, q scoring.Query) (*models.WeeklyQualitySummary, error)
}

// RefreshService runs one all-or-nothing refresh cycle: the independent
// upstream queries fan out concurrently and must all succeed before anything
// is written. A partial failure keeps the previous generation so readers
// never see a mixed-generation view.
type RefreshService struct {
	Client ScoringClient
	Repo   repository.Repository
	Logger *zap.Logger

	mu      sync.Mutex
	lastErr string
}

// LastError returns the message of the most recent failed refresh, cleared
// by the next success. Surfaced to the UI as the single user-visible error.
func (s *RefreshService) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *RefreshService) setLastErr(msg string) {
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
}

type fetchResult struct {
	opps    []models.OpportunityRecord
	quality []models.QualityRow
	weekly  *models.WeeklyQualitySummary
}

// Refresh fetches a complete snapshot and persists it as a new generation.
func (s *RefreshService) Refresh(ctx context.Context, q scoring.Query) (*models.SnapshotGeneration, error) {
	if s == nil || s.Client == nil || s.Repo == nil {
		return nil, fmt.Errorf("refresh service not wired")
	}

	result, err := s.fetchAll(ctx, q)
	if err != nil {
		s.setLastErr(err.Error())
		if s.Logger != nil {
			s.Logger.Warn("refresh failed, keeping previous generation", zap.Error(err))
		}
		return nil, err
	}

	gen := &models.SnapshotGeneration{
		FetchedAt:     time.Now().UTC(),
		Days:          q.Days,
		SportKey:      q.SportKey,
		Opportunities: len(result.opps),
		QualityRows:   len(result.quality),
		HasWeekly:     result.weekly != nil,
	}
	err = s.Repo.InTx(ctx, func(tx *gorm.DB) error {
		if err := s.Repo.InsertGenerationTx(ctx, tx, gen); err != nil {
			return err
		}
		for i := range result.opps {
			result.opps[i].GenerationID = gen.ID
		}
		for i := range result.quality {
			result.quality[i].GenerationID = gen.ID
		}
		if err := s.Repo.InsertOpportunitiesTx(ctx, tx, result.opps); err != nil {
			return err
		}
		if err := s.Repo.InsertQualityRowsTx(ctx, tx, result.quality); err != nil {
			return err
		}
		if result.weekly != nil {
			result.weekly.GenerationID = gen.ID
			if err := s.Repo.InsertWeeklySummaryTx(ctx, tx, result.weekly); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.setLastErr(err.Error())
		return nil, err
	}

	s.setLastErr("")
	if s.Logger != nil {
		s.Logger.Info("refresh complete",
			zap.Uint64("generation", gen.ID),
			zap.Int("opportunities", gen.Opportunities),
			zap.Int("quality_rows", gen.QualityRows),
			zap.Bool("has_weekly", gen.HasWeekly),
		)
	}
	return gen, nil
}

// fetchAll fans out the independent queries and joins them. The first error
// wins; the remaining fetches are cancelled through the shared context.
func (s *RefreshService) fetchAll(ctx context.Context, q scoring.Query) (fetchResult, error) {
	fetchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var result fetchResult
	errCh := make(chan error, 3)
	var wg sync.WaitGroup

	wg.Add(3)
	go func() {
		defer wg.Done()
		items, err := s.Client.ListOpportunities(fetchCtx, q)
		if err != nil {
			errCh <- fmt.Errorf("opportunities: %w", err)
			cancel()
			return
		}
		result.opps = items
	}()
	go func() {
		defer wg.Done()
		items, err := s.Client.ListQualityRows(fetchCtx, q)
		if err != nil {
			errCh <- fmt.Errorf("quality rows: %w", err)
			cancel()
			return
		}
		result.quality = items
	}()
	go func() {
		defer wg.Done()
		weekly, err := s.Client.GetWeeklySummary(fetchCtx, q)
		if err != nil {
			errCh <- fmt.Errorf("weekly summary: %w", err)
			cancel()
			return
		}
		result.weekly = weekly
	}()
	wg.Wait()

	select {
	case err := <-errCh:
		return fetchResult{}, err
	default:
		return result, nil
	}
}
