package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ErjonAhmetaj/FitCoachAI/models"
)

// Prompt building is kept separate from the network call so the exact text
// sent to the model can be tested without I/O.

const coachSystemPrompt = "You are FitCoach AI, a supportive and knowledgeable fitness and wellness coach. Provide personalized, actionable advice based on user data. Be encouraging, realistic, and focus on practical steps users can take."

const trainerSystemPrompt = "You are a personal trainer creating customized workout plans. Consider the user's current physical and mental state to provide safe, effective, and motivating workout recommendations."

const questionSystemPrompt = "You are FitCoach AI, a supportive health and fitness coach. Answer questions based on the user's data, provide personalized insights, and offer practical advice."

func naInt(v *int) string {
	if v == nil {
		return "N/A"
	}
	return strconv.Itoa(*v)
}

func naFloat(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func naString(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}

func formatCheckIn(c models.CheckIn) string {
	notes := c.Notes
	if notes == "" {
		notes = "None"
	}
	return fmt.Sprintf(`
Date: %s
Mood: %s
Energy: %d/10
Soreness: %d/10
Sleep: %s hours, Quality: %s
Stress: %s/10
Recovery: %s
Hydration: %s/10
Nutrition: %s
Workout Motivation: %s/10
Fitness Goal: %s
Notes: %s
`,
		c.Timestamp.Format("1/2/2006"),
		c.Mood,
		c.Energy,
		c.Soreness,
		naFloat(c.SleepHours),
		naString(c.SleepQuality),
		naInt(c.StressLevel),
		naString(c.Recovery),
		naInt(c.Hydration),
		naString(c.NutritionQuality),
		naInt(c.WorkoutMotivation),
		naString(c.FitnessGoal),
		notes,
	)
}

func formatCheckIns(checkins []models.CheckIn) string {
	parts := make([]string, 0, len(checkins))
	for _, c := range checkins {
		parts = append(parts, formatCheckIn(c))
	}
	return strings.Join(parts, "\n")
}

// BuildAnalysisPrompt renders recent history into the coaching analysis
// request, one paragraph per check-in.
func BuildAnalysisPrompt(checkins []models.CheckIn) string {
	return fmt.Sprintf(`As a fitness and wellness AI coach, analyze this user's recent health check-ins and provide personalized insights and recommendations.

Recent Check-ins:
%s

Please provide:
1. **Overall Health Assessment** (2-3 sentences)
2. **Key Patterns** you notice (mood, energy, sleep, stress trends)
3. **Workout Recommendations** based on current state
4. **Recovery Advice** if needed
5. **Nutrition Tips** based on goals and current state
6. **Motivation Boost** if energy/motivation is low

Keep each section concise and actionable. Be encouraging but realistic.`, formatCheckIns(checkins))
}

// BuildQuestionPrompt embeds a free-text question alongside recent history.
func BuildQuestionPrompt(question string, checkins []models.CheckIn) string {
	return fmt.Sprintf(`A user is asking about their health data. Here's their question:
"%s"

Recent Check-in Data:
%s

Please provide a helpful, personalized answer based on their data. Be encouraging and actionable.`, question, formatCheckIns(checkins))
}

// BuildWorkoutPrompt uses a single current-state snapshot, not history.
func BuildWorkoutPrompt(c models.CheckIn) string {
	goal := c.FitnessGoal
	if goal == "" {
		goal = "General Fitness"
	}
	return fmt.Sprintf(`Based on this user's current state, suggest a personalized workout:

Current State:
- Mood: %s
- Energy Level: %d/10
- Soreness: %d/10
- Recovery Status: %s
- Stress Level: %s/10
- Workout Motivation: %s/10
- Fitness Goal: %s

Provide:
1. **Workout Type** (strength, cardio, yoga, rest day, etc.)
2. **Intensity Level** (low, moderate, high)
3. **Duration** (15, 30, 45, 60 minutes)
4. **Specific Exercises** (3-5 exercises with sets/reps)
5. **Modifications** if needed for current state
6. **Recovery Tips** if soreness is high

Be specific and consider their current energy, soreness, and motivation levels.`,
		c.Mood,
		c.Energy,
		c.Soreness,
		naString(c.Recovery),
		naInt(c.StressLevel),
		naInt(c.WorkoutMotivation),
		goal,
	)
}
