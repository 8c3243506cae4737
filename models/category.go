package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Name         string    `gorm:"uniqueIndex;not null"`
	Description  string
	ImageURL     string    // hosted media service URL, upload happens outside this API
	DisplayOrder int       `gorm:"default:0"`
	IsActive     bool      `gorm:"default:true"`

	MenuItems []MenuItem `gorm:"foreignKey:CategoryID"`

	gorm.Model
}

func (c *Category) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
