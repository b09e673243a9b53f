// Package renderlog persists one row of metadata per render attempt.
// Image bytes never reach the database; the log exists for usage and
// failure analysis only.
package renderlog

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Render outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeFallback = "fallback"
	OutcomeError    = "error"
)

// Entry is one recorded render attempt.
type Entry struct {
	ID         snowflake.ID      `gorm:"primaryKey"`
	TemplateID string            `gorm:"type:text;not null;index"`
	Preview    bool              `gorm:"not null"`
	TrackCount int               `gorm:"not null"`
	Outcome    string            `gorm:"type:text;not null;index"`
	ErrorCode  string            `gorm:"type:text"`
	DurationMS int64             `gorm:"not null"`
	Metadata   datatypes.JSONMap `gorm:"not null;default:'{}'"`
	CreatedAt  time.Time         `gorm:"not null"`
}

// TableName sets the database table name.
func (Entry) TableName() string { return "render_logs" }

// AutoMigrate creates or updates the render log schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Entry{})
}
