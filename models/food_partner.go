package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FoodPartner is a business account that publishes food videos.
// Kept in its own table, so its email only has to be unique among partners.
type FoodPartner struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Contact   string    `gorm:"not null" json:"contact"`
	Address   string    `gorm:"not null" json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *FoodPartner) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
