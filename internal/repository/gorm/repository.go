package gormrepository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"oddsdesk/internal/models"
	"oddsdesk/internal/repository"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(fn)
}

func (s *Store) InsertGenerationTx(ctx context.Context, tx *gorm.DB, gen *models.SnapshotGeneration) error {
	if tx == nil || gen == nil {
		return nil
	}
	return tx.WithContext(ctx).Create(gen).Error
}

func (s *Store) InsertOpportunitiesTx(ctx context.Context, tx *gorm.DB, items []models.OpportunityRecord) error {
	if tx == nil || len(items) == 0 {
		return nil
	}
	return tx.WithContext(ctx).CreateInBatches(items, 200).Error
}

func (s *Store) InsertQualityRowsTx(ctx context.Context, tx *gorm.DB, items []models.QualityRow) error {
	if tx == nil || len(items) == 0 {
		return nil
	}
	return tx.WithContext(ctx).CreateInBatches(items, 200).Error
}

func (s *Store) InsertWeeklySummaryTx(ctx context.Context, tx *gorm.DB, item *models.WeeklyQualitySummary) error {
	if tx == nil || item == nil {
		return nil
	}
	return tx.WithContext(ctx).Create(item).Error
}

func (s *Store) LatestGeneration(ctx context.Context) (*models.SnapshotGeneration, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var gen models.SnapshotGeneration
	err := s.db.WithContext(ctx).
		Order("id DESC").
		First(&gen).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &gen, nil
}

func (s *Store) opportunityQuery(ctx context.Context, params repository.ListOpportunitiesParams) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&models.OpportunityRecord{}).
		Where("generation_id = ?", params.GenerationID)
	if params.SignalType != nil && strings.TrimSpace(*params.SignalType) != "" {
		query = query.Where("signal_type = ?", strings.TrimSpace(*params.SignalType))
	}
	if params.Market != nil && strings.TrimSpace(*params.Market) != "" {
		query = query.Where("market = ?", strings.TrimSpace(*params.Market))
	}
	if params.SportKey != nil && strings.TrimSpace(*params.SportKey) != "" {
		query = query.Where("sport_key = ?", strings.TrimSpace(*params.SportKey))
	}
	if params.MinStrength != nil {
		query = query.Where("strength_score >= ?", *params.MinStrength)
	}
	if params.MinSamples != nil && *params.MinSamples > 0 {
		query = query.Where("clv_prior_samples >= ?", *params.MinSamples)
	}
	if params.MinBooksAffected != nil && *params.MinBooksAffected > 0 {
		query = query.Where("books_considered >= ?", *params.MinBooksAffected)
	}
	if params.WindowMinutesMax != nil {
		query = query.Where("freshness_seconds IS NOT NULL AND freshness_seconds <= ?", *params.WindowMinutesMax*60)
	}
	if params.MinEdge != nil {
		query = query.Where("(best_edge_line >= ? OR best_edge_prob >= ?)", *params.MinEdge, *params.MinEdge)
	}
	if params.MaxWidth != nil {
		query = query.Where("market_width IS NOT NULL AND market_width <= ?", *params.MaxWidth)
	}
	if !params.IncludeStale {
		query = query.Where("freshness_bucket <> ?", "stale").
			Where("opportunity_status <> ?", models.StatusStale)
	}
	return query
}

func (s *Store) ListOpportunities(ctx context.Context, params repository.ListOpportunitiesParams) ([]models.OpportunityRecord, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.opportunityQuery(ctx, params)
	query = applyOrder(query, params.OrderBy, params.Asc, "execution_rank")
	limit := normalizeLimit(params.Limit, 200)
	offset := normalizeOffset(params.Offset)
	var items []models.OpportunityRecord
	if err := query.Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CountOpportunities(ctx context.Context, params repository.ListOpportunitiesParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var total int64
	if err := s.opportunityQuery(ctx, params).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Store) ListQualityRows(ctx context.Context, params repository.ListQualityRowsParams) ([]models.QualityRow, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.db.WithContext(ctx).Model(&models.QualityRow{}).
		Where("generation_id = ?", params.GenerationID)
	if params.SignalType != nil && strings.TrimSpace(*params.SignalType) != "" {
		query = query.Where("signal_type = ?", strings.TrimSpace(*params.SignalType))
	}
	if params.Market != nil && strings.TrimSpace(*params.Market) != "" {
		query = query.Where("market = ?", strings.TrimSpace(*params.Market))
	}
	if params.Decision != nil && strings.TrimSpace(*params.Decision) != "" {
		query = query.Where("alert_decision = ?", strings.TrimSpace(*params.Decision))
	}
	if params.MinStrength != nil {
		query = query.Where("strength_score >= ?", *params.MinStrength)
	}
	if params.MinBooks != nil && *params.MinBooks > 0 {
		query = query.Where("books_affected >= ?", *params.MinBooks)
	}
	if params.MaxDispersion != nil {
		query = query.Where("(dispersion IS NULL OR dispersion <= ?)", *params.MaxDispersion)
	}
	query = query.Order("strength_score DESC")
	limit := normalizeLimit(params.Limit, 200)
	offset := normalizeOffset(params.Offset)
	var items []models.QualityRow
	if err := query.Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) GetWeeklySummary(ctx context.Context, generationID uint64) (*models.WeeklyQualitySummary, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.WeeklyQualitySummary
	err := s.db.WithContext(ctx).
		Where("generation_id = ?", generationID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteGenerationsBefore drops all but the newest keep generations along
// with their child rows.
func (s *Store) DeleteGenerationsBefore(ctx context.Context, keep int) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	if keep < 1 {
		keep = 1
	}
	var ids []uint64
	if err := s.db.WithContext(ctx).
		Model(&models.SnapshotGeneration{}).
		Order("id DESC").
		Limit(keep).
		Pluck("id", &ids).Error; err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}
	cutoff := ids[len(ids)-1]
	var removed int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("generation_id < ?", cutoff).Delete(&models.OpportunityRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("generation_id < ?", cutoff).Delete(&models.QualityRow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("generation_id < ?", cutoff).Delete(&models.WeeklyQualitySummary{}).Error; err != nil {
			return err
		}
		res := tx.Where("id < ?", cutoff).Delete(&models.SnapshotGeneration{})
		removed = res.RowsAffected
		return res.Error
	})
	return removed, err
}

func applyOrder(query *gorm.DB, orderBy string, asc *bool, fallback string) *gorm.DB {
	column := strings.TrimSpace(orderBy)
	if column == "" {
		column = fallback
	}
	dir := "DESC"
	if asc != nil && *asc {
		dir = "ASC"
	}
	return query.Order(column + " " + dir)
}

func normalizeLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > 1000 {
		return 1000
	}
	return limit
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
