package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ErjonAhmetaj/FitCoachAI/models"
)

// recentWindow is how many check-ins feed each coaching request.
const recentWindow = 7

// Fallback texts returned when the model call fails. AI errors never surface
// to the client as failures, only as degraded static text.
const (
	OnboardingMessage = "Welcome to FitCoach AI! Log your first daily check-in and I'll start analyzing your trends and coaching you from there."
	AnalysisFallback  = "I'm having trouble analyzing your data right now. Please try again later."
	WorkoutFallback   = "I'm having trouble generating a workout recommendation right now. Consider taking a rest day or doing light stretching."
	QuestionFallback  = "I'm having trouble processing your question right now. Please try again later."
)

type AIService struct {
	client  *http.Client
	apiKey  string
	model   string
	baseURL string
}

func NewAIService() *AIService {
	return &AIService{
		client:  &http.Client{Timeout: 30 * time.Second}, // completions can be slow
		apiKey:  os.Getenv("OPENAI_API_KEY"),
		model:   "gpt-3.5-turbo",
		baseURL: "https://api.openai.com/v1",
	}
}

// Analyze summarizes up to the 7 most recent check-ins into coaching prose.
// With no history there is nothing to analyze, so the model is not called.
func (a *AIService) Analyze(checkins []models.CheckIn) string {
	if len(checkins) == 0 {
		return OnboardingMessage
	}
	recent := checkins
	if len(recent) > recentWindow {
		recent = recent[:recentWindow]
	}

	text, err := a.complete(coachSystemPrompt, BuildAnalysisPrompt(recent), 500)
	if err != nil {
		log.Printf("AI analysis error: %v", err)
		return AnalysisFallback
	}
	return text
}

// AnswerQuestion answers a free-text question against recent history.
func (a *AIService) AnswerQuestion(question string, checkins []models.CheckIn) string {
	recent := checkins
	if len(recent) > recentWindow {
		recent = recent[:recentWindow]
	}

	text, err := a.complete(questionSystemPrompt, BuildQuestionPrompt(question, recent), 300)
	if err != nil {
		log.Printf("AI question error: %v", err)
		return QuestionFallback
	}
	return text
}

// RecommendWorkout suggests a workout from a single current-state snapshot.
func (a *AIService) RecommendWorkout(checkin models.CheckIn) string {
	text, err := a.complete(trainerSystemPrompt, BuildWorkoutPrompt(checkin), 400)
	if err != nil {
		log.Printf("AI workout error: %v", err)
		return WorkoutFallback
	}
	return text
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (a *AIService) complete(system, user string, maxTokens int) (string, error) {
	if a.apiKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY not set")
	}

	body := map[string]any{
		"model": a.model,
		"messages": []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		"max_tokens":  maxTokens,
		"temperature": 0.7,
	}
	b, _ := json.Marshal(body)

	req, err := http.NewRequest("POST", a.baseURL+"/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read openai response error: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(respBytes, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("openai api error (%d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return "", fmt.Errorf("openai api error (%d): %s", resp.StatusCode, string(respBytes))
	}

	var out struct {
		Choices []struct {
			Message chatMessage `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return "", fmt.Errorf("decode openai response error: %w", err)
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("empty completion from openai")
	}
	return out.Choices[0].Message.Content, nil
}
