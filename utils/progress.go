package utils

import (
	"math"

	"github.com/ErjonAhmetaj/FitCoachAI/models"
)

// ChartPoint is one chart-ready row derived from a check-in. Optional
// metrics stay nil when the user skipped them so chart scales are not
// dragged down by fake zeros.
type ChartPoint struct {
	Date      string   `json:"date"`
	Mood      *int     `json:"mood"`
	Energy    int      `json:"energy"`
	Sleep     *float64 `json:"sleep"`
	Soreness  int      `json:"soreness"`
	Stress    *int     `json:"stress"`
	Hydration *int     `json:"hydration"`
	Weight    *float64 `json:"weight"`
}

var moodScale = map[string]int{
	"Terrible":  1,
	"Poor":      2,
	"Okay":      3,
	"Good":      4,
	"Excellent": 5,
}

// MoodToNumeric maps the five-point mood scale to 1..5, 0 for anything else.
func MoodToNumeric(mood string) int {
	return moodScale[mood]
}

// NumericToMood is the inverse of MoodToNumeric; out-of-range input yields "N/A".
func NumericToMood(n int) string {
	labels := []string{"Terrible", "Poor", "Okay", "Good", "Excellent"}
	if n < 1 || n > len(labels) {
		return "N/A"
	}
	return labels[n-1]
}

// ProjectCheckins reshapes check-ins into chart rows, preserving input order.
// Callers pass chronological (oldest-first) slices; the repository returns
// newest-first, so reverse before projecting.
func ProjectCheckins(checkins []models.CheckIn) []ChartPoint {
	points := make([]ChartPoint, 0, len(checkins))
	for _, c := range checkins {
		p := ChartPoint{
			Date:      c.Timestamp.Format("1/2/2006"),
			Energy:    c.Energy,
			Sleep:     c.SleepHours,
			Soreness:  c.Soreness,
			Stress:    c.StressLevel,
			Hydration: c.Hydration,
			Weight:    c.Weight,
		}
		if n := MoodToNumeric(c.Mood); n != 0 {
			p.Mood = &n
		}
		points = append(points, p)
	}
	return points
}

// GoalProgress returns round(100 * latestWeight / weightGoal), nil when
// either operand is absent. The percentage is deliberately not clamped:
// progress past the goal reads as >100.
func GoalProgress(latestWeight, weightGoal *float64) *int {
	if latestWeight == nil || weightGoal == nil || *weightGoal <= 0 {
		return nil
	}
	pct := int(math.Round(100 * *latestWeight / *weightGoal))
	return &pct
}

// LatestWeight scans newest-first check-ins for the most recent logged weight.
func LatestWeight(checkins []models.CheckIn) *float64 {
	for _, c := range checkins {
		if c.Weight != nil {
			return c.Weight
		}
	}
	return nil
}
