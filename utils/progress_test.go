package utils_test

import (
	"testing"
	"time"

	"github.com/ErjonAhmetaj/FitCoachAI/models"
	"github.com/ErjonAhmetaj/FitCoachAI/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestMoodNumericRoundTrip(t *testing.T) {
	for n := 1; n <= 5; n++ {
		assert.Equal(t, n, utils.MoodToNumeric(utils.NumericToMood(n)))
	}

	assert.Equal(t, "N/A", utils.NumericToMood(0))
	assert.Equal(t, "N/A", utils.NumericToMood(6))
	assert.Equal(t, "N/A", utils.NumericToMood(-3))
	assert.Equal(t, 0, utils.MoodToNumeric("Meh"))
}

func TestProjectCheckinsPreservesOrderAndGaps(t *testing.T) {
	day1 := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	checkins := []models.CheckIn{
		{
			Mood:       "Good",
			Energy:     7,
			Soreness:   2,
			SleepHours: floatPtr(7.5),
			Hydration:  intPtr(8),
			Weight:     floatPtr(180),
			Timestamp:  day1,
		},
		{
			// sleep, hydration and weight skipped this day
			Mood:      "Terrible",
			Energy:    3,
			Soreness:  9,
			Timestamp: day2,
		},
	}

	points := utils.ProjectCheckins(checkins)
	require.Len(t, points, 2)

	assert.Equal(t, "3/1/2024", points[0].Date)
	require.NotNil(t, points[0].Mood)
	assert.Equal(t, 4, *points[0].Mood)
	assert.Equal(t, 7.5, *points[0].Sleep)
	assert.Equal(t, 8, *points[0].Hydration)
	assert.Equal(t, 180.0, *points[0].Weight)

	// absent fields must stay nil, not collapse to zero
	assert.Equal(t, "3/2/2024", points[1].Date)
	require.NotNil(t, points[1].Mood)
	assert.Equal(t, 1, *points[1].Mood)
	assert.Nil(t, points[1].Sleep)
	assert.Nil(t, points[1].Hydration)
	assert.Nil(t, points[1].Weight)
}

func TestGoalProgress(t *testing.T) {
	p := utils.GoalProgress(floatPtr(150), floatPtr(150))
	require.NotNil(t, p)
	assert.Equal(t, 100, *p)

	// past the goal stays past the goal, no clamping
	p = utils.GoalProgress(floatPtr(165), floatPtr(150))
	require.NotNil(t, p)
	assert.Equal(t, 110, *p)

	p = utils.GoalProgress(floatPtr(100), floatPtr(160))
	require.NotNil(t, p)
	assert.Equal(t, 63, *p)

	assert.Nil(t, utils.GoalProgress(nil, floatPtr(150)))
	assert.Nil(t, utils.GoalProgress(floatPtr(150), nil))
	assert.Nil(t, utils.GoalProgress(floatPtr(150), floatPtr(0)))
}

func TestLatestWeight(t *testing.T) {
	checkins := []models.CheckIn{
		{Mood: "Good", Energy: 5, Soreness: 5},
		{Mood: "Okay", Energy: 5, Soreness: 5, Weight: floatPtr(178)},
		{Mood: "Poor", Energy: 5, Soreness: 5, Weight: floatPtr(182)},
	}

	w := utils.LatestWeight(checkins)
	require.NotNil(t, w)
	assert.Equal(t, 178.0, *w)

	assert.Nil(t, utils.LatestWeight(nil))
	assert.Nil(t, utils.LatestWeight([]models.CheckIn{{Mood: "Good", Energy: 5, Soreness: 5}}))
}
