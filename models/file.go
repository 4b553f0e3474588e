package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// File represents an uploaded file persisted on disk.
// IDs are UUIDs stored as text so they survive dialect changes.
type File struct {
	ID          string          `gorm:"primaryKey" json:"id"`
	Filename    string          `gorm:"not null" json:"filename"`
	Path        string          `gorm:"not null" json:"path"`
	ContentType string          `json:"content_type"`
	Size        int64           `json:"size"`
	SizeKB      decimal.Decimal `gorm:"type:decimal(20,8)" json:"size_kb"`
	CreatedAt   time.Time       `json:"created_at"`
}

// BeforeCreate assigns a UUID when no ID was set
func (f *File) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// MigrateFileModels runs database migrations for file-related models
func MigrateFileModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&File{},
	)
}
