package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FoodItem is one video post in the catalog.
type FoodItem struct {
	ID          string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"not null" json:"description"`
	Video       string `gorm:"not null" json:"video"` // public URL on the media host
	// owner id only, no association, so no foreign key gets migrated
	FoodPartnerID string    `gorm:"type:varchar(36);index;not null" json:"foodPartner"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (f *FoodItem) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
