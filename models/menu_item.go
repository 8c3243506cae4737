package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MenuItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	CategoryID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name         string  `gorm:"not null"`
	Description  string
	Price        float64 `gorm:"type:decimal(10,2);not null"`
	ImageURL     string
	IsFeatured   bool    `gorm:"default:false"`
	IsAvailable  bool    `gorm:"default:true"`
	DisplayOrder int     `gorm:"default:0"`

	gorm.Model
}

func (m *MenuItem) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}
