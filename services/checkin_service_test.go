package services_test

import (
	"testing"
	"time"

	"github.com/ErjonAhmetaj/FitCoachAI/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func validInput() services.CheckInInput {
	return services.CheckInInput{
		Mood:     "Good",
		Energy:   7,
		Soreness: 3,
	}
}

func TestCreateThenListRoundTrip(t *testing.T) {
	svc := services.NewCheckinService(newTestDB(t))

	in := services.CheckInInput{
		Mood:              "Excellent",
		Energy:            8,
		Soreness:          2,
		SleepHours:        floatPtr(7.5),
		SleepQuality:      "Good",
		StressLevel:       intPtr(4),
		Recovery:          "Mostly Recovered",
		Hydration:         intPtr(6),
		NutritionQuality:  "Fair",
		WorkoutMotivation: intPtr(9),
		FitnessGoal:       "Strength",
		Notes:             "felt great after the morning run",
		Weight:            floatPtr(172.4),
	}

	before := time.Now()
	created, err := svc.Create(42, in)
	require.NoError(t, err)
	assert.False(t, created.Timestamp.Before(before), "timestamp must be at or after submission")

	listed, err := svc.ListByUser(42)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	got := listed[0]
	assert.Equal(t, uint(42), got.UserID)
	assert.Equal(t, "Excellent", got.Mood)
	assert.Equal(t, 8, got.Energy)
	assert.Equal(t, 2, got.Soreness)
	require.NotNil(t, got.SleepHours)
	assert.Equal(t, 7.5, *got.SleepHours)
	assert.Equal(t, "Good", got.SleepQuality)
	require.NotNil(t, got.StressLevel)
	assert.Equal(t, 4, *got.StressLevel)
	assert.Equal(t, "Mostly Recovered", got.Recovery)
	require.NotNil(t, got.Hydration)
	assert.Equal(t, 6, *got.Hydration)
	assert.Equal(t, "Fair", got.NutritionQuality)
	require.NotNil(t, got.WorkoutMotivation)
	assert.Equal(t, 9, *got.WorkoutMotivation)
	assert.Equal(t, "Strength", got.FitnessGoal)
	assert.Equal(t, "felt great after the morning run", got.Notes)
	require.NotNil(t, got.Weight)
	assert.Equal(t, 172.4, *got.Weight)
}

func TestCreateValidation(t *testing.T) {
	svc := services.NewCheckinService(newTestDB(t))

	// missing required mood
	in := validInput()
	in.Mood = ""
	_, err := svc.Create(1, in)
	require.ErrorIs(t, err, services.ErrValidation)

	// unknown enum value
	in = validInput()
	in.Mood = "Fantastic"
	_, err = svc.Create(1, in)
	require.ErrorIs(t, err, services.ErrValidation)

	// energy out of range
	in = validInput()
	in.Energy = 11
	_, err = svc.Create(1, in)
	require.ErrorIs(t, err, services.ErrValidation)

	// boundary value is fine
	in = validInput()
	in.Energy = 10
	_, err = svc.Create(1, in)
	require.NoError(t, err)

	in = validInput()
	in.SleepHours = floatPtr(25)
	_, err = svc.Create(1, in)
	require.ErrorIs(t, err, services.ErrValidation)

	in = validInput()
	in.Recovery = "Barely Alive"
	_, err = svc.Create(1, in)
	require.ErrorIs(t, err, services.ErrValidation)

	in = validInput()
	in.Notes = string(make([]byte, 501))
	_, err = svc.Create(1, in)
	require.ErrorIs(t, err, services.ErrValidation)

	// nothing invalid was stored
	listed, err := svc.ListByUser(1)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestListByUserNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewCheckinService(db)

	moods := []string{"Terrible", "Okay", "Excellent"}
	for i, mood := range moods {
		in := validInput()
		in.Mood = mood
		created, err := svc.Create(7, in)
		require.NoError(t, err)

		// space the timestamps out so ordering is deterministic
		ts := time.Now().Add(time.Duration(i) * time.Minute)
		require.NoError(t, db.Model(created).Update("timestamp", ts).Error)
	}

	listed, err := svc.ListByUser(7)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "Excellent", listed[0].Mood)
	assert.Equal(t, "Okay", listed[1].Mood)
	assert.Equal(t, "Terrible", listed[2].Mood)
}

func TestListByUsersLimitAcrossSet(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewCheckinService(db)

	base := time.Now()
	seq := 0
	for _, userID := range []uint{1, 2, 3} {
		for i := 0; i < 3; i++ {
			created, err := svc.Create(userID, validInput())
			require.NoError(t, err)
			require.NoError(t, db.Model(created).
				Update("timestamp", base.Add(time.Duration(seq)*time.Minute)).Error)
			seq++
		}
	}

	feed, err := svc.ListByUsers([]uint{1, 2}, 4)
	require.NoError(t, err)
	require.Len(t, feed, 4)
	for _, c := range feed {
		assert.Contains(t, []uint{1, 2}, c.UserID, "user 3 is not in the set")
	}
	for i := 1; i < len(feed); i++ {
		assert.False(t, feed[i].Timestamp.After(feed[i-1].Timestamp), "feed must be newest first")
	}

	empty, err := svc.ListByUsers(nil, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
