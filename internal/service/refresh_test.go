package service

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"oddsdesk/internal/client/scoring"
	"oddsdesk/internal/models"
	"oddsdesk/internal/repository"
)

type fakeClient struct {
	opps       []models.OpportunityRecord
	quality    []models.QualityRow
	weekly     *models.WeeklyQualitySummary
	oppErr     error
	qualityErr error
	weeklyErr  error
}

func (f *fakeClient) ListOpportunities(ctx context.Context, q scoring.Query) ([]models.OpportunityRecord, error) {
	return f.opps, f.oppErr
}

func (f *fakeClient) ListQualityRows(ctx context.Context, q scoring.Query) ([]models.QualityRow, error) {
	return f.quality, f.qualityErr
}

func (f *fakeClient) GetWeeklySummary(ctx context.Context, q scoring.Query) (*models.WeeklyQualitySummary, error) {
	return f.weekly, f.weeklyErr
}

type fakeRepo struct {
	repository.Repository

	generations int
	opps        int
	quality     int
	weekly      int
}

func (f *fakeRepo) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(&gorm.DB{})
}

func (f *fakeRepo) InsertGenerationTx(ctx context.Context, tx *gorm.DB, gen *models.SnapshotGeneration) error {
	f.generations++
	gen.ID = uint64(f.generations)
	return nil
}

func (f *fakeRepo) InsertOpportunitiesTx(ctx context.Context, tx *gorm.DB, items []models.OpportunityRecord) error {
	f.opps += len(items)
	return nil
}

func (f *fakeRepo) InsertQualityRowsTx(ctx context.Context, tx *gorm.DB, items []models.QualityRow) error {
	f.quality += len(items)
	return nil
}

func (f *fakeRepo) InsertWeeklySummaryTx(ctx context.Context, tx *gorm.DB, item *models.WeeklyQualitySummary) error {
	f.weekly++
	return nil
}

func TestRefresh_AllOrNothingOnPartialFailure(t *testing.T) {
	client := &fakeClient{
		opps:      []models.OpportunityRecord{{SignalID: "s1"}},
		quality:   []models.QualityRow{{SignalID: "s1"}},
		weeklyErr: errors.New("upstream 502"),
	}
	repo := &fakeRepo{}
	svc := &RefreshService{Client: client, Repo: repo}

	_, err := svc.Refresh(context.Background(), scoring.Query{Days: 7})
	if err == nil {
		t.Fatalf("expected error from failed weekly fetch")
	}
	if repo.generations != 0 || repo.opps != 0 || repo.quality != 0 {
		t.Fatalf("partial failure must not write: %+v", repo)
	}
	if svc.LastError() == "" {
		t.Fatalf("last error not surfaced")
	}
}

func TestRefresh_SuccessPersistsGeneration(t *testing.T) {
	client := &fakeClient{
		opps:    []models.OpportunityRecord{{SignalID: "s1"}, {SignalID: "s2"}},
		quality: []models.QualityRow{{SignalID: "s1"}},
		weekly:  &models.WeeklyQualitySummary{SentRatePct: 90},
	}
	repo := &fakeRepo{}
	svc := &RefreshService{Client: client, Repo: repo}
	svc.setLastErr("previous failure")

	gen, err := svc.Refresh(context.Background(), scoring.Query{Days: 7, SportKey: "basketball_nba"})
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if gen == nil || gen.ID == 0 {
		t.Fatalf("generation not assigned: %+v", gen)
	}
	if gen.Opportunities != 2 || gen.QualityRows != 1 || !gen.HasWeekly {
		t.Fatalf("generation counts wrong: %+v", gen)
	}
	if repo.opps != 2 || repo.quality != 1 || repo.weekly != 1 {
		t.Fatalf("rows not persisted: %+v", repo)
	}
	if svc.LastError() != "" {
		t.Fatalf("success must clear last error, got %q", svc.LastError())
	}
}

func TestRefresh_MissingWeeklyIsNotAnError(t *testing.T) {
	client := &fakeClient{
		opps:    []models.OpportunityRecord{{SignalID: "s1"}},
		quality: nil,
		weekly:  nil,
	}
	repo := &fakeRepo{}
	svc := &RefreshService{Client: client, Repo: repo}

	gen, err := svc.Refresh(context.Background(), scoring.Query{Days: 7})
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if gen.HasWeekly {
		t.Fatalf("weekly should be absent")
	}
	if repo.weekly != 0 {
		t.Fatalf("no weekly row expected, got %d", repo.weekly)
	}
}
