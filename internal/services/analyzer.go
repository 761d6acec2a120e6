package services

import (
	"context"
	"log"
	"strings"

	apperrors "resumatch/resume-analyzer/internal/errors"
)

// AnalysisOutcome bundles everything a single analysis produces.
// AIFeedback is nil whenever the AI collaborator was unavailable; the
// rule-based suggestions are always present.
type AnalysisOutcome struct {
	Match       *MatchResult
	Suggestions []Suggestion
	AIFeedback  *AIFeedback
}

type AnalyzerService interface {
	Analyze(ctx context.Context, resumeText, jobDescription string) (*AnalysisOutcome, error)
	AIAvailable() bool
}

type analyzerService struct {
	matcher   MatcherService
	suggester SuggestionService
	gemini    GeminiService
}

func NewAnalyzerService(
	matcher MatcherService,
	suggester SuggestionService,
	gemini GeminiService,
) AnalyzerService {
	return &analyzerService{
		matcher:   matcher,
		suggester: suggester,
		gemini:    gemini,
	}
}

// Analyze implements AnalyzerService. Empty inputs are rejected before any
// matching runs. The AI call is attempted at most once; on any failure the
// outcome degrades to the rule-based suggestions alone.
func (a *analyzerService) Analyze(ctx context.Context, resumeText, jobDescription string) (*AnalysisOutcome, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, apperrors.NewEmptyInputError("resume text")
	}
	if strings.TrimSpace(jobDescription) == "" {
		return nil, apperrors.NewEmptyInputError("job description")
	}

	match := a.matcher.Match(resumeText, jobDescription)
	suggestions := a.suggester.Generate(resumeText, match)

	var feedback *AIFeedback
	if a.gemini.Available() {
		result, err := a.gemini.AnalyzeResume(ctx, resumeText, jobDescription, match)
		if err != nil {
			log.Printf("⚠️  AI feedback unavailable, falling back to rule-based suggestions: %v\n", err)
		} else {
			feedback = result
		}
	}

	return &AnalysisOutcome{
		Match:       match,
		Suggestions: suggestions,
		AIFeedback:  feedback,
	}, nil
}

// AIAvailable implements AnalyzerService.
func (a *analyzerService) AIAvailable() bool {
	return a.gemini.Available()
}
