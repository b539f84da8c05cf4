package models

import (
	"time"

	"gorm.io/gorm"
)

// CheckIn is one daily wellness record. Records are append-only: there are
// no update or delete paths anywhere in the app.
type CheckIn struct {
	gorm.Model
	UserID uint `gorm:"index;not null" json:"userId"`

	// Core wellness metrics
	Mood     string `gorm:"not null" json:"mood"`
	Energy   int    `gorm:"not null" json:"energy"`
	Soreness int    `gorm:"not null" json:"soreness"`

	// Sleep tracking
	SleepHours   *float64 `json:"sleepHours,omitempty"`
	SleepQuality string   `json:"sleepQuality,omitempty"`

	// Stress and recovery
	StressLevel *int   `json:"stressLevel,omitempty"`
	Recovery    string `json:"recovery,omitempty"`

	// Hydration and nutrition
	Hydration        *int   `json:"hydration,omitempty"`
	NutritionQuality string `json:"nutritionQuality,omitempty"`

	// Fitness and goals
	WorkoutMotivation *int   `json:"workoutMotivation,omitempty"`
	FitnessGoal       string `json:"fitnessGoal,omitempty"`

	Notes  string   `json:"notes,omitempty"`
	Weight *float64 `json:"weight,omitempty"` // pounds

	Timestamp time.Time `gorm:"index;not null" json:"timestamp"`
}

// MaxCheckInNotes caps the free-text notes field.
const MaxCheckInNotes = 500

var (
	MoodLevels      = []string{"Excellent", "Good", "Okay", "Poor", "Terrible"}
	SleepQualities  = []string{"Excellent", "Good", "Fair", "Poor", "Terrible"}
	RecoveryStates  = []string{"Fully Recovered", "Mostly Recovered", "Somewhat Recovered", "Still Sore", "Very Sore"}
	NutritionLevels = []string{"Excellent", "Good", "Fair", "Poor", "Very Poor"}
	FitnessGoals    = []string{"Muscle Gain", "Fat Loss", "Endurance", "Strength", "General Fitness", "Recovery"}
)
