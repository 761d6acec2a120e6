package models

import (
	"encoding/json"
	"time"

	"resumatch/resume-analyzer/internal/services"
)

// AnalyzeResponse is returned by POST /analyze with the complete result.
type AnalyzeResponse struct {
	ID             string                `json:"id"`
	SessionID      string                `json:"session_id"`
	ResumeFilename string                `json:"resume_filename"`
	MatchScore     float64               `json:"match_score"`
	ScoreCategory  string                `json:"score_category"`
	ScoreClass     string                `json:"score_class"`
	Analysis       *services.MatchResult `json:"analysis"`
	Suggestions    []services.Suggestion `json:"suggestions"`
	AIAnalysis     *services.AIFeedback  `json:"ai_analysis,omitempty"`
	AIAvailable    bool                  `json:"ai_available"`
}

// ResultResponse is returned by GET /results/:id from the stored record.
type ResultResponse struct {
	ID             string           `json:"id"`
	ResumeFilename string           `json:"resume_filename"`
	JobDescription string           `json:"job_description"`
	MatchScore     float64          `json:"match_score"`
	ScoreCategory  string           `json:"score_category"`
	ScoreClass     string           `json:"score_class"`
	Analysis       json.RawMessage  `json:"analysis"`
	Suggestions    json.RawMessage  `json:"suggestions"`
	AIAnalysis     *json.RawMessage `json:"ai_analysis,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

// HistoryItem is one row of GET /history.
type HistoryItem struct {
	ID             string    `json:"id"`
	ResumeFilename string    `json:"resume_filename"`
	MatchScore     float64   `json:"match_score"`
	ScoreCategory  string    `json:"score_category"`
	ScoreClass     string    `json:"score_class"`
	CreatedAt      time.Time `json:"created_at"`
}

type HistoryResponse struct {
	SessionID string        `json:"session_id"`
	Analyses  []HistoryItem `json:"analyses"`
}
