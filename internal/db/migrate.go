package db

import (
	"oddsdesk/internal/models"
)

func AutoMigrate(db *DB) error {
	if db == nil || db.Gorm == nil || db.SQL == nil {
		return nil
	}

	return db.Gorm.AutoMigrate(
		&models.SnapshotGeneration{},
		&models.OpportunityRecord{},
		&models.QualityRow{},
		&models.WeeklyQualitySummary{},
	)
}
