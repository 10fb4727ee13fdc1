package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Constancia is the durable record of an issued certificate. JSON field names
// match the public API (snake_case, Spanish) consumed by the verification page.
type Constancia struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Folio         string    `gorm:"column:folio;uniqueIndex;not null" json:"folio"`
	FullName      string    `gorm:"column:nombre_completo;not null" json:"nombre_completo"`
	Course        string    `gorm:"column:curso;not null" json:"curso"`
	DurationHours int       `gorm:"column:duracion_horas;not null" json:"duracion_horas"`
	Date          string    `gorm:"column:fecha;type:date;not null" json:"fecha"`
	Grade         *string   `gorm:"column:calificacion" json:"calificacion,omitempty"`
	Notes         *string   `gorm:"column:observaciones" json:"observaciones,omitempty"`
	PDFURL        string    `gorm:"column:pdf_url" json:"pdf_url,omitempty"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"-"`
}

func (Constancia) TableName() string {
	return "constancias"
}

// BeforeCreate sets UUID if not set (for DBs without gen_random_uuid).
func (c *Constancia) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
