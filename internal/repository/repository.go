package repository

import (
	"context"

	"gorm.io/gorm"

	"oddsdesk/internal/models"
)

// ListOpportunitiesParams filters one generation's opportunity rows. Nil
// pointers mean "no constraint". MinEdge matches either edge representation;
// MinSamples applies to the CLV prior sample count.
type ListOpportunitiesParams struct {
	GenerationID     uint64
	SignalType       *string
	Market           *string
	SportKey         *string
	MinStrength      *float64
	MinSamples       *int
	MinBooksAffected *int
	WindowMinutesMax *int
	MinEdge          *float64
	MaxWidth         *float64
	IncludeStale     bool
	OrderBy          string
	Asc              *bool
	Limit            int
	Offset           int
}

type ListQualityRowsParams struct {
	GenerationID  uint64
	SignalType    *string
	Market        *string
	Decision      *string
	MinStrength   *float64
	MinBooks      *int
	MaxDispersion *float64
	Limit         int
	Offset        int
}

// Repository is the snapshot store. A generation and its children are written
// in one transaction so readers only ever observe complete generations.
type Repository interface {
	InTx(ctx context.Context, fn func(tx *gorm.DB) error) error

	InsertGenerationTx(ctx context.Context, tx *gorm.DB, gen *models.SnapshotGeneration) error
	InsertOpportunitiesTx(ctx context.Context, tx *gorm.DB, items []models.OpportunityRecord) error
	InsertQualityRowsTx(ctx context.Context, tx *gorm.DB, items []models.QualityRow) error
	InsertWeeklySummaryTx(ctx context.Context, tx *gorm.DB, item *models.WeeklyQualitySummary) error

	LatestGeneration(ctx context.Context) (*models.SnapshotGeneration, error)
	ListOpportunities(ctx context.Context, params ListOpportunitiesParams) ([]models.OpportunityRecord, error)
	CountOpportunities(ctx context.Context, params ListOpportunitiesParams) (int64, error)
	ListQualityRows(ctx context.Context, params ListQualityRowsParams) ([]models.QualityRow, error)
	GetWeeklySummary(ctx context.Context, generationID uint64) (*models.WeeklyQualitySummary, error)

	DeleteGenerationsBefore(ctx context.Context, keep int) (int64, error)
}
