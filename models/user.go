package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Principal kinds carried in session tokens.
const (
	KindUser        = "user"
	KindFoodPartner = "foodpartner"
)

// User is an end-user account.
type User struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	FullName  string    `gorm:"not null" json:"fullname"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
