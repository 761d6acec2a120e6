package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/genai"

	apperrors "resumatch/resume-analyzer/internal/errors"
)

// AIFeedback is the structured qualitative feedback returned by the model.
type AIFeedback struct {
	OverallImpression      string                  `json:"overall_impression"`
	Strengths              []string                `json:"strengths"`
	Weaknesses             []string                `json:"weaknesses"`
	MissingSkillsAnalysis  string                  `json:"missing_skills_analysis"`
	ExperienceRelevance    string                  `json:"experience_relevance"`
	ImprovementSuggestions []ImprovementSuggestion `json:"improvement_suggestions"`
	RewrittenBullets       []RewrittenBullet       `json:"rewritten_bullets"`
	KeywordsToAdd          []string                `json:"keywords_to_add"`
	ATSScore               int                     `json:"ats_score"`
	InterviewLikelihood    string                  `json:"interview_likelihood"`
	Summary                string                  `json:"summary"`
}

type ImprovementSuggestion struct {
	Area       string `json:"area"`
	Current    string `json:"current"`
	Suggestion string `json:"suggestion"`
}

type RewrittenBullet struct {
	OriginalContext string `json:"original_context"`
	Improved        string `json:"improved"`
}

type GeminiService interface {
	Available() bool
	AnalyzeResume(ctx context.Context, resumeText, jobDescription string, match *MatchResult) (*AIFeedback, error)
}

type geminiService struct {
	client    *genai.Client
	modelName string
	timeout   time.Duration
}

// NewGeminiService creates the AI feedback client. An empty API key is a
// valid configuration: the service reports itself unavailable and every
// analysis falls back to rule-based suggestions.
func NewGeminiService(apiKey string, timeout time.Duration) (GeminiService, error) {
	if apiKey == "" {
		log.Println("⚠️  No Gemini API key configured, AI feedback disabled")
		return &geminiService{timeout: timeout}, nil
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:    client,
		modelName: "gemini-2.5-flash",
		timeout:   timeout,
	}, nil
}

// Available implements GeminiService.
func (g *geminiService) Available() bool {
	return g.client != nil
}

// AnalyzeResume implements GeminiService. The call is bounded by the
// configured timeout; any failure is reported as an AI-unavailable error so
// the caller can fall back to rule-based suggestions.
func (g *geminiService) AnalyzeResume(ctx context.Context, resumeText, jobDescription string, match *MatchResult) (*AIFeedback, error) {
	if !g.Available() {
		return nil, apperrors.NewAIUnavailableError("api key not configured", nil)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	prompt := BuildFeedbackPrompt(resumeText, jobDescription, match)
	temperature := float32(0.3)
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 4096,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return nil, apperrors.NewAIUnavailableError("generate content failed", err)
	}
	if resp == nil {
		return nil, apperrors.NewAIUnavailableError("nil response", nil)
	}

	text := resp.Text()
	if text == "" {
		return nil, apperrors.NewAIUnavailableError("empty response", nil)
	}

	var feedback AIFeedback
	if err := json.Unmarshal([]byte(extractJSON(text)), &feedback); err != nil {
		return nil, apperrors.NewAIUnavailableError("malformed response", err)
	}

	return &feedback, nil
}

// extractJSON pulls the JSON object out of a model response that may wrap it
// in markdown code fences or prose.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end != -1 && end > start {
		return text[start : end+1]
	}

	return text
}
