package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ErjonAhmetaj/FitCoachAI/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubAIService(handler http.Handler) (*AIService, *httptest.Server) {
	server := httptest.NewServer(handler)
	svc := &AIService{
		client:  &http.Client{Timeout: 5 * time.Second},
		apiKey:  "test-key",
		model:   "gpt-3.5-turbo",
		baseURL: server.URL,
	}
	return svc, server
}

func completionResponse(text string) []byte {
	out := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": text}},
		},
	}
	b, _ := json.Marshal(out)
	return b
}

func sampleCheckins(n int) []models.CheckIn {
	stress := 4
	checkins := make([]models.CheckIn, 0, n)
	for i := 0; i < n; i++ {
		checkins = append(checkins, models.CheckIn{
			Mood:        "Good",
			Energy:      6,
			Soreness:    3,
			StressLevel: &stress,
			Timestamp:   time.Date(2024, 3, 1+i, 8, 0, 0, 0, time.UTC),
		})
	}
	return checkins
}

func TestAnalyzeWithNoHistorySkipsTheModel(t *testing.T) {
	var calls int32
	svc, server := stubAIService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write(completionResponse("should never be returned"))
	}))
	defer server.Close()

	got := svc.Analyze(nil)
	assert.Equal(t, OnboardingMessage, got)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls), "external service must not be called")
}

func TestAnalyzeReturnsModelText(t *testing.T) {
	var body struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
		MaxTokens   int     `json:"max_tokens"`
		Temperature float64 `json:"temperature"`
	}
	svc, server := stubAIService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Write(completionResponse("Keep up the good work."))
	}))
	defer server.Close()

	got := svc.Analyze(sampleCheckins(10))
	assert.Equal(t, "Keep up the good work.", got)

	assert.Equal(t, "gpt-3.5-turbo", body.Model)
	assert.Equal(t, 500, body.MaxTokens)
	assert.Equal(t, 0.7, body.Temperature)
	require.Len(t, body.Messages, 2)
	assert.Equal(t, "system", body.Messages[0].Role)

	// only the 7 most recent check-ins are rendered
	assert.Equal(t, 7, strings.Count(body.Messages[1].Content, "Date: "))
}

func TestAnalyzeFallsBackOnServiceError(t *testing.T) {
	svc, server := stubAIService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	assert.Equal(t, AnalysisFallback, svc.Analyze(sampleCheckins(2)))
}

func TestAnswerQuestionFallsBackOnServiceError(t *testing.T) {
	svc, server := stubAIService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	got := svc.AnswerQuestion("how is my sleep?", sampleCheckins(2))
	assert.Equal(t, QuestionFallback, got)
}

func TestRecommendWorkoutFallsBackWithoutKey(t *testing.T) {
	svc := &AIService{
		client:  &http.Client{Timeout: time.Second},
		model:   "gpt-3.5-turbo",
		baseURL: "http://127.0.0.1:0", // must never be reached without a key
	}

	got := svc.RecommendWorkout(sampleCheckins(1)[0])
	assert.Equal(t, WorkoutFallback, got)
}
