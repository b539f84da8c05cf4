package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ErjonAhmetaj/FitCoachAI/models"

	"gorm.io/gorm"
)

var ErrValidation = errors.New("validation failed")

type CheckinService struct{ db *gorm.DB }

func NewCheckinService(db *gorm.DB) *CheckinService { return &CheckinService{db: db} }

// CheckInInput carries the client-supplied fields of a check-in. Owner and
// timestamp are assigned server-side. Optional numerics are pointers so a
// skipped field is distinguishable from a logged zero.
type CheckInInput struct {
	Mood              string   `json:"mood"`
	Energy            int      `json:"energy"`
	Soreness          int      `json:"soreness"`
	SleepHours        *float64 `json:"sleepHours"`
	SleepQuality      string   `json:"sleepQuality"`
	StressLevel       *int     `json:"stressLevel"`
	Recovery          string   `json:"recovery"`
	Hydration         *int     `json:"hydration"`
	NutritionQuality  string   `json:"nutritionQuality"`
	WorkoutMotivation *int     `json:"workoutMotivation"`
	FitnessGoal       string   `json:"fitnessGoal"`
	Notes             string   `json:"notes"`
	Weight            *float64 `json:"weight"`
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

// Validate rejects a check-in at the boundary, before anything reaches
// storage.
func (in *CheckInInput) Validate() error {
	if in.Mood == "" {
		return fmt.Errorf("%w: mood is required", ErrValidation)
	}
	if !oneOf(in.Mood, models.MoodLevels) {
		return fmt.Errorf("%w: invalid mood %q", ErrValidation, in.Mood)
	}
	if in.Energy < 1 || in.Energy > 10 {
		return fmt.Errorf("%w: energy must be between 1 and 10", ErrValidation)
	}
	if in.Soreness < 1 || in.Soreness > 10 {
		return fmt.Errorf("%w: soreness must be between 1 and 10", ErrValidation)
	}
	if in.SleepHours != nil && (*in.SleepHours < 0 || *in.SleepHours > 24) {
		return fmt.Errorf("%w: sleepHours must be between 0 and 24", ErrValidation)
	}
	if in.SleepQuality != "" && !oneOf(in.SleepQuality, models.SleepQualities) {
		return fmt.Errorf("%w: invalid sleepQuality %q", ErrValidation, in.SleepQuality)
	}
	if in.StressLevel != nil && (*in.StressLevel < 1 || *in.StressLevel > 10) {
		return fmt.Errorf("%w: stressLevel must be between 1 and 10", ErrValidation)
	}
	if in.Recovery != "" && !oneOf(in.Recovery, models.RecoveryStates) {
		return fmt.Errorf("%w: invalid recovery %q", ErrValidation, in.Recovery)
	}
	if in.Hydration != nil && (*in.Hydration < 1 || *in.Hydration > 10) {
		return fmt.Errorf("%w: hydration must be between 1 and 10", ErrValidation)
	}
	if in.NutritionQuality != "" && !oneOf(in.NutritionQuality, models.NutritionLevels) {
		return fmt.Errorf("%w: invalid nutritionQuality %q", ErrValidation, in.NutritionQuality)
	}
	if in.WorkoutMotivation != nil && (*in.WorkoutMotivation < 1 || *in.WorkoutMotivation > 10) {
		return fmt.Errorf("%w: workoutMotivation must be between 1 and 10", ErrValidation)
	}
	if in.FitnessGoal != "" && !oneOf(in.FitnessGoal, models.FitnessGoals) {
		return fmt.Errorf("%w: invalid fitnessGoal %q", ErrValidation, in.FitnessGoal)
	}
	if len(in.Notes) > models.MaxCheckInNotes {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrValidation, models.MaxCheckInNotes)
	}
	if in.Weight != nil && *in.Weight <= 0 {
		return fmt.Errorf("%w: weight must be positive", ErrValidation)
	}
	return nil
}

// Snapshot converts the input into an unsaved CheckIn, for prompt rendering
// and as the base record for Create.
func (in *CheckInInput) Snapshot() models.CheckIn {
	return models.CheckIn{
		Mood:              in.Mood,
		Energy:            in.Energy,
		Soreness:          in.Soreness,
		SleepHours:        in.SleepHours,
		SleepQuality:      in.SleepQuality,
		StressLevel:       in.StressLevel,
		Recovery:          in.Recovery,
		Hydration:         in.Hydration,
		NutritionQuality:  in.NutritionQuality,
		WorkoutMotivation: in.WorkoutMotivation,
		FitnessGoal:       in.FitnessGoal,
		Notes:             in.Notes,
		Weight:            in.Weight,
	}
}

// Create validates and stores a check-in. The timestamp is server-assigned;
// records are write-once.
func (s *CheckinService) Create(userID uint, in CheckInInput) (*models.CheckIn, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	checkin := in.Snapshot()
	checkin.UserID = userID
	checkin.Timestamp = time.Now()
	if err := s.db.Create(&checkin).Error; err != nil {
		return nil, err
	}
	return &checkin, nil
}

// ListByUser returns a user's check-ins newest first.
func (s *CheckinService) ListByUser(userID uint) ([]models.CheckIn, error) {
	var checkins []models.CheckIn
	err := s.db.
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&checkins).Error
	return checkins, err
}

// ListByUsers returns the most recent check-ins across a set of users,
// newest first, capped at limit. Used for the friend activity feed.
func (s *CheckinService) ListByUsers(userIDs []uint, limit int) ([]models.CheckIn, error) {
	if len(userIDs) == 0 {
		return []models.CheckIn{}, nil
	}
	var checkins []models.CheckIn
	err := s.db.
		Where("user_id IN ?", userIDs).
		Order("timestamp DESC").
		Limit(limit).
		Find(&checkins).Error
	return checkins, err
}
