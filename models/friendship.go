package models

import (
	"gorm.io/gorm"
)

// Friendship is one direction of a symmetric relation. Adding a friend
// writes both directions inside a single transaction, so a row (A,B)
// always has a mirror row (B,A).
type Friendship struct {
	gorm.Model
	UserID   uint `gorm:"not null;uniqueIndex:idx_friendship_pair" json:"userId"`
	FriendID uint `gorm:"not null;uniqueIndex:idx_friendship_pair" json:"friendId"`

	Friend User `gorm:"foreignKey:FriendID" json:"-"`
}

func (Friendship) TableName() string {
	return "friendships"
}
