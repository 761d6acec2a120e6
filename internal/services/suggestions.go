package services

import (
	"fmt"
	"regexp"
	"strings"
)

// Suggestion is a single human-readable improvement tip.
type Suggestion struct {
	Type     string `json:"type"` // success | info | warning | danger
	Category string `json:"category"`
	Message  string `json:"message"`
}

type SuggestionService interface {
	Generate(resumeText string, match *MatchResult) []Suggestion
}

type suggestionService struct{}

func NewSuggestionService() SuggestionService {
	return &suggestionService{}
}

// Action verbs grouped by what they signal, checked in this order.
var actionVerbs = []struct {
	category string
	verbs    []string
}{
	{"leadership", []string{"led", "managed", "directed", "supervised", "coordinated", "oversaw"}},
	{"achievement", []string{"achieved", "accomplished", "exceeded", "delivered", "completed"}},
	{"creation", []string{"created", "designed", "developed", "built", "implemented", "launched"}},
	{"improvement", []string{"improved", "enhanced", "optimized", "streamlined", "reduced", "increased"}},
	{"technical", []string{"engineered", "architected", "automated", "integrated", "deployed", "configured"}},
	{"analysis", []string{"analyzed", "evaluated", "assessed", "researched", "investigated", "identified"}},
}

var metricPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+%`),
	regexp.MustCompile(`\$[\d,]+`),
	regexp.MustCompile(`\d+\+`),
	regexp.MustCompile(`\d{2,}`),
	regexp.MustCompile(`#\d+`),
}

var (
	emailRegex = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
)

// Generate implements SuggestionService. Rules are evaluated in a fixed order
// and every matching rule fires; the result order is the rule declaration
// order, so identical inputs always produce the identical list.
func (s *suggestionService) Generate(resumeText string, match *MatchResult) []Suggestion {
	suggestions := []Suggestion{}
	add := func(kind, category, message string) {
		suggestions = append(suggestions, Suggestion{Type: kind, Category: category, Message: message})
	}

	score := match.MatchScore

	// 1. Overall match score feedback.
	switch {
	case score >= 80:
		add("success", "Match Score", fmt.Sprintf("Excellent match (%.1f%%)! Your skills align very well with this job. Focus on tailoring your experience descriptions to highlight relevant achievements.", score))
	case score >= 60:
		add("info", "Match Score", fmt.Sprintf("Good match (%.1f%%)! You have a solid foundation. Adding a few more relevant skills could push your application to the top.", score))
	case score >= 40:
		add("warning", "Match Score", fmt.Sprintf("Moderate match (%.1f%%). Consider emphasizing transferable skills and any relevant projects or coursework.", score))
	default:
		add("danger", "Match Score", fmt.Sprintf("Low match (%.1f%%). This role may require skills you haven't highlighted. Consider if you have relevant experience that isn't reflected in your resume.", score))
	}

	// 2. High priority missing skills.
	if len(match.HighPriorityMissing) > 0 {
		add("danger", "Critical Skills Gap", fmt.Sprintf("These skills are mentioned multiple times in the job description and are likely essential: %s", joinLimit(match.HighPriorityMissing, 5)))
	}

	// 3. Category-specific gaps.
	if missing := match.MissingCategories[CategoryProgramming]; len(missing) > 0 {
		add("warning", "Programming Languages", fmt.Sprintf("Missing programming languages: %s. If you have experience with similar languages, highlight your ability to learn quickly.", joinLimit(missing, 4)))
	}
	if missing := match.MissingCategories[CategoryFrameworks]; len(missing) > 0 {
		add("warning", "Frameworks", fmt.Sprintf("Missing frameworks/libraries: %s. Consider adding relevant projects to demonstrate these skills.", joinLimit(missing, 4)))
	}
	if missing := match.MissingCategories[CategoryCloudDevops]; len(missing) > 0 {
		add("info", "Cloud/DevOps", fmt.Sprintf("Missing cloud/DevOps skills: %s. Free tier accounts on AWS/Azure can help you gain hands-on experience.", joinLimit(missing, 4)))
	}

	// 4. Experience level and years required.
	if match.JDExperienceLevel != "not specified" {
		advice := "Your enthusiasm and recent projects can compensate for less experience."
		if match.JDExperienceLevel == "senior" {
			advice = "Highlight your growth and quick learning ability."
		}
		add("info", "Experience Level", fmt.Sprintf("This appears to be a %s-level position. %s", match.JDExperienceLevel, advice))
	}
	if match.JDYearsRequired != nil {
		add("info", "Years Required", fmt.Sprintf("The job requires approximately %d+ years of experience. Include all relevant experience including internships, freelance work, and significant personal projects.", *match.JDYearsRequired))
	}

	// 5. Action verbs.
	verbsByCategory, totalVerbs := checkActionVerbs(resumeText)
	if totalVerbs < 5 {
		add("warning", "Action Verbs", "Your resume lacks strong action verbs. Start bullet points with words like: Led, Developed, Implemented, Achieved, Optimized, Delivered.")
	} else if totalVerbs < 10 {
		var weak []string
		for _, av := range actionVerbs {
			if len(verbsByCategory[av.category]) == 0 {
				weak = append(weak, av.category)
			}
		}
		if len(weak) > 0 {
			add("info", "Action Verbs", fmt.Sprintf("Consider adding more %s action verbs to showcase different aspects of your experience.", joinLimit(weak, 2)))
		}
	}

	// 6. Quantifiable achievements.
	metricCount := countMetrics(resumeText)
	if metricCount == 0 {
		add("warning", "Quantifiable Results", `No metrics found! Add numbers to demonstrate impact: "Increased sales by 25%", "Reduced load time by 40%", "Managed team of 5", "Processed 10K+ records daily".`)
	} else if metricCount < 4 {
		add("info", "Quantifiable Results", fmt.Sprintf("Found %d metrics. Try to add more quantifiable achievements to each role - aim for at least 2-3 per position.", metricCount))
	}

	// 7. Content length.
	wordCount := len(strings.Fields(resumeText))
	if wordCount < 200 {
		add("warning", "Content Length", fmt.Sprintf("Your resume seems too short (%d words). Add more details about your responsibilities, achievements, and projects.", wordCount))
	} else if wordCount > 1200 {
		add("info", "Content Length", fmt.Sprintf("Your resume is quite long (%d words). For most roles, keep it to 1-2 pages. Prioritize the most relevant information.", wordCount))
	}

	// 8. Critical sections.
	if missing := missingCriticalSections(resumeText); len(missing) > 0 {
		add("danger", "Resume Structure", fmt.Sprintf("Missing critical sections: %s. These are essential for most job applications.", strings.Join(titleAll(missing), ", ")))
	}

	// 9. Contact information and online presence.
	lower := strings.ToLower(resumeText)
	if !emailRegex.MatchString(resumeText) {
		add("danger", "Contact Info", "No email address detected! Make sure your contact information is clearly visible at the top of your resume.")
	}
	if !strings.Contains(lower, "linkedin") && !strings.Contains(lower, "github") {
		add("info", "Online Presence", "Consider adding LinkedIn or GitHub profiles to showcase your professional network and code samples.")
	}

	// 10. Skills in context.
	if len(match.MatchedSkills) > 0 {
		contextual, total := countContextualSkills(resumeText, match.MatchedSkills)
		if total > 0 && float64(contextual)/float64(total) < 0.3 {
			add("info", "Skills Integration", "Your skills appear to be listed but not demonstrated in context. Show how you used each skill in your experience descriptions.")
		}
	}

	// 11. ATS tips (always emitted).
	add("info", "ATS Optimization", "For ATS compatibility: Use standard section headings, avoid tables/graphics, save as PDF, and include exact keywords from the job description.")

	// 12. Education match.
	if containsString(match.JDEducation, "masters") &&
		!containsString(match.ResumeEducation, "masters") &&
		!containsString(match.ResumeEducation, "phd") {
		add("info", "Education", "This position may prefer advanced degrees. Emphasize relevant coursework, certifications, and hands-on project experience.")
	}

	return suggestions
}

// ScoreCategory returns a human label and a display class for a match score.
func ScoreCategory(score float64) (string, string) {
	switch {
	case score >= 80:
		return "Excellent", "success"
	case score >= 60:
		return "Good", "info"
	case score >= 40:
		return "Fair", "warning"
	default:
		return "Needs Work", "danger"
	}
}

func checkActionVerbs(resumeText string) (map[string][]string, int) {
	lower := strings.ToLower(resumeText)
	found := make(map[string][]string)
	total := 0

	for _, av := range actionVerbs {
		for _, verb := range av.verbs {
			if strings.Contains(lower, verb) {
				found[av.category] = append(found[av.category], verb)
				total++
			}
		}
	}
	return found, total
}

func countMetrics(resumeText string) int {
	count := 0
	for _, pattern := range metricPatterns {
		count += len(pattern.FindAllString(resumeText, -1))
	}
	return count
}

func missingCriticalSections(resumeText string) []string {
	lower := strings.ToLower(resumeText)
	critical := []string{"experience", "education", "skills"}

	var missing []string
	for _, section := range critical {
		if !strings.Contains(lower, section) {
			missing = append(missing, section)
		}
	}
	return missing
}

// countContextualSkills counts matched skills that appear near an action verb,
// as opposed to skills that are merely listed.
func countContextualSkills(resumeText string, skills []string) (int, int) {
	lower := strings.ToLower(resumeText)

	contextual := 0
	for _, skill := range skills {
		term := regexp.QuoteMeta(strings.ToLower(skill))
		for _, av := range actionVerbs {
			matched := false
			for _, verb := range av.verbs {
				pattern := regexp.MustCompile(verb + `.{0,50}` + term + `|` + term + `.{0,50}` + verb)
				if pattern.MatchString(lower) {
					contextual++
					matched = true
					break
				}
			}
			if matched {
				break
			}
		}
	}
	return contextual, len(skills)
}

func joinLimit(items []string, limit int) string {
	if len(items) > limit {
		items = items[:limit]
	}
	return strings.Join(items, ", ")
}

func titleAll(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		if item == "" {
			continue
		}
		out[i] = strings.ToUpper(item[:1]) + item[1:]
	}
	return out
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
