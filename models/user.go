package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username       string   `gorm:"uniqueIndex;not null" json:"username"`
	Email          string   `gorm:"uniqueIndex;not null" json:"email"`
	Password       string   `gorm:"not null" json:"-"`
	WeightGoal     *float64 `json:"weightGoal,omitempty"` // pounds
	ProfilePicture string   `json:"profilePicture,omitempty"`

	ResetToken    string    `json:"-"`
	ResetTokenExp time.Time `json:"-"`
}

// UserSummary is the public shape returned by search and friend listings.
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username, Email: u.Email}
}
