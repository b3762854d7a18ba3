package models

import "time"

// SnapshotGeneration tracks one successful all-or-nothing refresh cycle.
// Child rows (opportunities, quality rows, weekly summary) reference it, so a
// failed refresh leaves the previous complete generation untouched and the
// view never renders a mixed-generation dataset.
type SnapshotGeneration struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	FetchedAt time.Time `gorm:"type:timestamptz;not null;index" json:"fetched_at"`

	Days     int    `gorm:"not null" json:"days"`
	SportKey string `gorm:"type:varchar(50)" json:"sport_key"`

	Opportunities int  `gorm:"not null" json:"opportunities"`
	QualityRows   int  `gorm:"not null" json:"quality_rows"`
	HasWeekly     bool `gorm:"not null" json:"has_weekly"`
}

func (SnapshotGeneration) TableName() string {
	return "snapshot_generations"
}
