package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ImportBatch is the audit record of one bulk issuance run. Failures keeps
// the per-row error details as JSON so a partially failed import can be
// reviewed after the fact.
type ImportBatch struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	TotalRows int            `gorm:"column:total_rows;not null" json:"total_rows"`
	Succeeded int            `gorm:"column:succeeded;not null" json:"succeeded"`
	Failures  datatypes.JSON `gorm:"column:failures" json:"failures,omitempty"`
	CreatedAt time.Time      `gorm:"column:created_at" json:"created_at"`
}

func (ImportBatch) TableName() string {
	return "import_batches"
}

func (b *ImportBatch) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
