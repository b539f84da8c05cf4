package services

import (
	"errors"
	"strings"

	"github.com/ErjonAhmetaj/FitCoachAI/models"

	"gorm.io/gorm"
)

var (
	ErrSelfFriend     = errors.New("cannot add yourself as a friend")
	ErrAlreadyFriends = errors.New("already friends")
	ErrFriendNotFound = errors.New("user not found")
)

// MinSearchLength keeps single-character queries from dumping the user table.
const MinSearchLength = 2

type FriendService struct{ db *gorm.DB }

func NewFriendService(db *gorm.DB) *FriendService { return &FriendService{db: db} }

// Search matches a case-insensitive substring against username or email.
// The requesting user is excluded from results.
func (s *FriendService) Search(userID uint, query string) ([]models.UserSummary, error) {
	query = strings.TrimSpace(query)
	if len(query) < MinSearchLength {
		return []models.UserSummary{}, nil
	}

	pattern := "%" + strings.ToLower(query) + "%"
	var users []models.User
	err := s.db.
		Where("id <> ? AND (LOWER(username) LIKE ? OR LOWER(email) LIKE ?)", userID, pattern, pattern).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	results := make([]models.UserSummary, 0, len(users))
	for i := range users {
		results = append(results, users[i].Summary())
	}
	return results, nil
}

// AddFriend inserts the relation in both directions inside one transaction,
// so the graph can never end up half-connected.
func (s *FriendService) AddFriend(userID, friendID uint) error {
	if userID == friendID {
		return ErrSelfFriend
	}

	var friend models.User
	if err := s.db.First(&friend, friendID).Error; err != nil {
		return ErrFriendNotFound
	}

	var count int64
	if err := s.db.Model(&models.Friendship{}).
		Where("user_id = ? AND friend_id = ?", userID, friendID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrAlreadyFriends
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.Friendship{UserID: userID, FriendID: friendID}).Error; err != nil {
			return err
		}
		return tx.Create(&models.Friendship{UserID: friendID, FriendID: userID}).Error
	})
}

func (s *FriendService) ListFriends(userID uint) ([]models.UserSummary, error) {
	var users []models.User
	err := s.db.
		Joins("JOIN friendships ON friendships.friend_id = users.id").
		Where("friendships.user_id = ?", userID).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	friends := make([]models.UserSummary, 0, len(users))
	for i := range users {
		friends = append(friends, users[i].Summary())
	}
	return friends, nil
}

// FriendIDs returns just the ids, for the activity feed query.
func (s *FriendService) FriendIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := s.db.Model(&models.Friendship{}).
		Where("user_id = ?", userID).
		Pluck("friend_id", &ids).Error
	return ids, err
}
