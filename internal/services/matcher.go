package services

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// MatchResult is the outcome of matching a resume against a job description.
// Computed once per request and immutable afterwards.
type MatchResult struct {
	MatchScore            float64             `json:"match_score"`
	MatchedSkills         []string            `json:"matched_skills"`
	MissingSkills         []string            `json:"missing_skills"`
	ExtraSkills           []string            `json:"extra_skills"`
	HighPriorityMissing   []string            `json:"high_priority_missing"`
	MatchedCategories     map[string][]string `json:"matched_categories"`
	MissingCategories     map[string][]string `json:"missing_categories"`
	ResumeSkillCount      int                 `json:"resume_skill_count"`
	JDSkillCount          int                 `json:"jd_skill_count"`
	JDExperienceLevel     string              `json:"jd_experience_level"`
	JDYearsRequired       *int                `json:"jd_years_required"`
	JDEducation           []string            `json:"jd_education"`
	ResumeExperienceLevel string              `json:"resume_experience_level"`
	ResumeEducation       []string            `json:"resume_education"`
}

type MatcherService interface {
	Match(resumeText, jobText string) *MatchResult
}

type matcherService struct {
	vocabulary []string
}

func NewMatcherService() MatcherService {
	return &matcherService{vocabulary: AllSkills()}
}

var (
	separatorRegex  = regexp.MustCompile(`[/\\|,;:\-()\[\]{}]`)
	nonSkillRegex   = regexp.MustCompile(`[^\w\s.+#]`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// PreprocessText lowercases text and strips punctuation so that vocabulary
// terms can be matched on word boundaries. "Python," and "python" become
// identical after preprocessing.
func PreprocessText(text string) string {
	text = strings.ToLower(text)
	text = separatorRegex.ReplaceAllString(text, " ")
	text = nonSkillRegex.ReplaceAllString(text, " ")
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(text, " "))
}

var (
	skillPatternMu sync.Mutex
	skillPatterns  = make(map[string]*regexp.Regexp)
)

// skillPattern compiles (and caches) the word-boundary pattern for a term.
func skillPattern(term string) *regexp.Regexp {
	skillPatternMu.Lock()
	defer skillPatternMu.Unlock()

	if re, ok := skillPatterns[term]; ok {
		return re
	}
	boundary := `[\s,;:\-()\[\]]`
	re := regexp.MustCompile(`(?:^|` + boundary + `)` + regexp.QuoteMeta(term) + `(?:$|` + boundary + `)`)
	skillPatterns[term] = re
	return re
}

// ExtractSkills returns the vocabulary terms found in text. Matching is
// case-insensitive and punctuation-insensitive, and known aliases in the
// text are expanded to their canonical terms before matching.
func ExtractSkills(text string, vocabulary []string) []string {
	processed := PreprocessText(text)

	// Expand aliases found in the token stream so the canonical term matches.
	var expansions []string
	for _, word := range strings.Fields(processed) {
		if normalized := NormalizeSkill(word); normalized != word {
			expansions = append(expansions, normalized)
		}
	}
	if len(expansions) > 0 {
		processed = processed + " " + strings.Join(expansions, " ")
	}

	haystack := " " + processed + " "
	found := make(map[string]struct{})
	for _, skill := range vocabulary {
		term := strings.ToLower(skill)
		if skillPattern(term).MatchString(haystack) {
			found[term] = struct{}{}
		}
	}

	skills := make([]string, 0, len(found))
	for skill := range found {
		skills = append(skills, skill)
	}
	sort.Strings(skills)
	return skills
}

// SkillFrequency counts occurrences of each skill in the text.
func SkillFrequency(text string, skills []string) map[string]int {
	haystack := " " + PreprocessText(text) + " "
	frequency := make(map[string]int)

	for _, skill := range skills {
		term := strings.ToLower(skill)
		if matches := skillPattern(term).FindAllStringIndex(haystack, -1); len(matches) > 0 {
			frequency[term] = len(matches)
		}
	}
	return frequency
}

// calculateMatch partitions resume and job skills into matched, missing and
// extra sets and computes the percentage of job skills the resume covers.
// The score is 0 when the job description yields no skills.
func calculateMatch(resumeSkills, jobSkills []string) (float64, []string, []string, []string) {
	if len(jobSkills) == 0 {
		return 0, nil, nil, sortedCopy(resumeSkills)
	}

	resumeSet := toSet(resumeSkills)
	jobSet := toSet(jobSkills)

	var matched, missing, extra []string
	for skill := range jobSet {
		if _, ok := resumeSet[skill]; ok {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	for skill := range resumeSet {
		if _, ok := jobSet[skill]; !ok {
			extra = append(extra, skill)
		}
	}

	score := float64(len(matched)) / float64(len(jobSet)) * 100
	score = math.Round(score*10) / 10

	sort.Strings(matched)
	sort.Strings(missing)
	sort.Strings(extra)
	return score, matched, missing, extra
}

// Match implements MatcherService. Pure and deterministic: identical inputs
// always produce identical results.
func (m *matcherService) Match(resumeText, jobText string) *MatchResult {
	resumeSkills := ExtractSkills(resumeText, m.vocabulary)
	jobSkills := ExtractSkills(jobText, m.vocabulary)

	score, matched, missing, extra := calculateMatch(resumeSkills, jobSkills)

	// Skills mentioned repeatedly in the JD are likely essential.
	jdFrequency := SkillFrequency(jobText, jobSkills)
	var highPriority []string
	for _, skill := range missing {
		if jdFrequency[skill] >= 2 {
			highPriority = append(highPriority, skill)
		}
	}
	sort.Strings(highPriority)

	return &MatchResult{
		MatchScore:            score,
		MatchedSkills:         emptyIfNil(matched),
		MissingSkills:         emptyIfNil(missing),
		ExtraSkills:           emptyIfNil(extra),
		HighPriorityMissing:   emptyIfNil(highPriority),
		MatchedCategories:     CategorizeSkills(matched),
		MissingCategories:     CategorizeSkills(missing),
		ResumeSkillCount:      len(resumeSkills),
		JDSkillCount:          len(jobSkills),
		JDExperienceLevel:     DetectExperienceLevel(jobText),
		JDYearsRequired:       ExtractYearsExperience(jobText),
		JDEducation:           emptyIfNil(DetectEducation(jobText)),
		ResumeExperienceLevel: DetectExperienceLevel(resumeText),
		ResumeEducation:       emptyIfNil(DetectEducation(resumeText)),
	}
}

// experienceLevels in priority order: a senior signal wins over mid and entry.
var experienceLevels = []struct {
	level    string
	keywords []string
}{
	{"entry", []string{"entry level", "junior", "associate", "intern", "internship",
		"fresher", "graduate", "0-1 years", "0-2 years", "beginner"}},
	{"mid", []string{"mid level", "mid-level", "intermediate", "2-4 years", "3-5 years",
		"2+ years", "3+ years", "4+ years"}},
	{"senior", []string{"senior", "lead", "principal", "staff", "architect",
		"5+ years", "6+ years", "7+ years", "8+ years", "10+ years",
		"expert", "advanced"}},
}

// DetectExperienceLevel infers the seniority a text targets. Returns
// "not specified" when no level keywords are present.
func DetectExperienceLevel(text string) string {
	lower := strings.ToLower(text)
	detected := make(map[string]bool)

	for _, el := range experienceLevels {
		for _, keyword := range el.keywords {
			if strings.Contains(lower, keyword) {
				detected[el.level] = true
				break
			}
		}
	}

	switch {
	case len(detected) == 0:
		return "not specified"
	case detected["senior"]:
		return "senior"
	case detected["mid"]:
		return "mid"
	default:
		return "entry"
	}
}

var yearsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?)\s*(?:of)?\s*(?:experience|exp)?`),
	regexp.MustCompile(`(?:minimum|at least|min)\s*(\d+)\s*(?:years?|yrs?)`),
	regexp.MustCompile(`(\d+)\s*-\s*\d+\s*(?:years?|yrs?)`),
}

// ExtractYearsExperience pulls the lowest years-of-experience requirement
// mentioned in the text, or nil when none is stated.
func ExtractYearsExperience(text string) *int {
	lower := strings.ToLower(text)

	var years []int
	for _, pattern := range yearsPatterns {
		for _, match := range pattern.FindAllStringSubmatch(lower, -1) {
			if n, err := strconv.Atoi(match[1]); err == nil {
				years = append(years, n)
			}
		}
	}
	if len(years) == 0 {
		return nil
	}

	min := years[0]
	for _, y := range years[1:] {
		if y < min {
			min = y
		}
	}
	return &min
}

var educationKeywords = []struct {
	level    string
	keywords []string
}{
	{"phd", []string{"phd", "ph.d", "doctorate", "doctoral"}},
	{"masters", []string{"master", "ms", "m.s", "msc", "m.sc", "mba", "ma", "m.a"}},
	{"bachelors", []string{"bachelor", "bs", "b.s", "bsc", "b.sc", "ba", "b.a", "btech", "b.tech", "be", "b.e"}},
	{"degree", []string{"degree", "graduate", "graduated", "university", "college"}},
}

// DetectEducation lists the education levels a text mentions.
func DetectEducation(text string) []string {
	lower := strings.ToLower(text)

	var detected []string
	for _, ek := range educationKeywords {
		for _, keyword := range ek.keywords {
			if strings.Contains(lower, keyword) {
				detected = append(detected, ek.level)
				break
			}
		}
	}
	return detected
}

func toSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		set[strings.ToLower(s)] = struct{}{}
	}
	return set
}

func sortedCopy(skills []string) []string {
	out := make([]string, len(skills))
	copy(out, skills)
	sort.Strings(out)
	return out
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
