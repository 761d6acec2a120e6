package services

import (
	"fmt"
	"strings"
)

const (
	maxResumePromptChars = 4000
	maxJobPromptChars    = 2000
)

// BuildFeedbackPrompt creates the prompt for AI resume feedback. The keyword
// analysis results are included so the model can ground its assessment.
func BuildFeedbackPrompt(resumeText, jobDescription string, match *MatchResult) string {
	return fmt.Sprintf(`You are an expert career coach and resume analyst. Analyze this resume against the job description and provide actionable feedback.

RESUME:
%s

JOB DESCRIPTION:
%s

BASIC ANALYSIS RESULTS:
- Match Score: %.1f%%
- Matched Skills: %s
- Missing Skills: %s

Provide your analysis in the following JSON format (respond ONLY with valid JSON, no markdown):
{
    "overall_impression": "2-3 sentence overall assessment of the resume fit",
    "strengths": ["strength 1", "strength 2", "strength 3"],
    "weaknesses": ["weakness 1", "weakness 2", "weakness 3"],
    "missing_skills_analysis": "Explain which missing skills are critical vs nice-to-have",
    "experience_relevance": "How relevant is the candidate's experience to this role",
    "improvement_suggestions": [
        {
            "area": "specific area to improve",
            "current": "what's wrong or missing",
            "suggestion": "specific actionable advice"
        }
    ],
    "rewritten_bullets": [
        {
            "original_context": "brief description of a weak point in resume",
            "improved": "rewritten version with metrics and action verbs"
        }
    ],
    "keywords_to_add": ["keyword1", "keyword2", "keyword3"],
    "ats_score": 75,
    "interview_likelihood": "low/medium/high",
    "summary": "One paragraph summary of what the candidate should focus on"
}`,
		truncate(resumeText, maxResumePromptChars),
		truncate(jobDescription, maxJobPromptChars),
		match.MatchScore,
		joinLimit(match.MatchedSkills, 10),
		joinLimit(match.MissingSkills, 10),
	)
}

func truncate(text string, max int) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= max {
		return string(runes)
	}
	return string(runes[:max])
}
