package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch_ScenarioPythonSQLDocker(t *testing.T) {
	matcher := NewMatcherService()

	result := matcher.Match(
		"Python developer with SQL experience",
		"Python, SQL, Docker",
	)

	assert.Equal(t, []string{"python", "sql"}, result.MatchedSkills)
	assert.Equal(t, []string{"docker"}, result.MissingSkills)
	assert.Equal(t, []string{}, result.ExtraSkills)
	assert.InDelta(t, 66.7, result.MatchScore, 0.01)
	assert.Equal(t, 2, result.ResumeSkillCount)
	assert.Equal(t, 3, result.JDSkillCount)
}

func TestMatch_EmptyJobSkills(t *testing.T) {
	matcher := NewMatcherService()

	result := matcher.Match(
		"Python developer with SQL experience",
		"We want a passionate person for an exciting opportunity",
	)

	assert.Equal(t, float64(0), result.MatchScore)
	assert.Empty(t, result.MissingSkills)
	assert.Empty(t, result.MatchedSkills)
	assert.Equal(t, 0, result.JDSkillCount)
	// Resume skills all land in the extra set.
	assert.ElementsMatch(t, []string{"python", "sql"}, result.ExtraSkills)
}

func TestMatch_SetPartitionInvariants(t *testing.T) {
	matcher := NewMatcherService()

	tests := []struct {
		name       string
		resumeText string
		jobText    string
	}{
		{
			name:       "partial overlap",
			resumeText: "Built services in Go with PostgreSQL and Redis, deployed on Docker.",
			jobText:    "Looking for Go engineer with Kubernetes, Docker and Terraform.",
		},
		{
			name:       "no overlap",
			resumeText: "Photoshop and Illustrator expert",
			jobText:    "Java and Spring developer needed",
		},
		{
			name:       "full overlap",
			resumeText: "Python, SQL, Docker",
			jobText:    "Python, SQL, Docker",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := matcher.Match(tt.resumeText, tt.jobText)

			jobSkills := ExtractSkills(tt.jobText, AllSkills())
			resumeSkills := ExtractSkills(tt.resumeText, AllSkills())

			// matched ∪ missing = jobSkills
			assert.ElementsMatch(t, jobSkills,
				append(append([]string{}, result.MatchedSkills...), result.MissingSkills...))
			// matched ∪ extra = resumeSkills
			assert.ElementsMatch(t, resumeSkills,
				append(append([]string{}, result.MatchedSkills...), result.ExtraSkills...))

			assert.GreaterOrEqual(t, result.MatchScore, float64(0))
			assert.LessOrEqual(t, result.MatchScore, float64(100))
		})
	}
}

func TestMatch_Idempotent(t *testing.T) {
	matcher := NewMatcherService()
	resume := "Senior Python developer, 5+ years of experience with Django, PostgreSQL and AWS"
	job := "Python engineer with Django and Docker, minimum 3 years"

	first := matcher.Match(resume, job)
	second := matcher.Match(resume, job)

	assert.Equal(t, first, second)
}

func TestExtractSkills_CaseAndPunctuationInsensitive(t *testing.T) {
	vocab := []string{"python", "sql", "docker"}

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"plain lowercase", "python and sql", []string{"python", "sql"}},
		{"uppercase with commas", "PYTHON, SQL, DOCKER", []string{"docker", "python", "sql"}},
		{"trailing punctuation", "Python, Sql; (docker)!", []string{"docker", "python", "sql"}},
		{"substring does not match", "pythonic sequel", []string{}},
		{"no skills", "nothing to see here", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSkills(tt.text, vocab)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractSkills_AliasExpansion(t *testing.T) {
	skills := ExtractSkills("Experienced with k8s and golang in production", AllSkills())

	assert.Contains(t, skills, "kubernetes")
	assert.Contains(t, skills, "go")
}

func TestSkillFrequency(t *testing.T) {
	text := "Docker is required. We ship everything with Docker and docker-compose."
	freq := SkillFrequency(text, []string{"docker", "python"})

	assert.GreaterOrEqual(t, freq["docker"], 2)
	assert.Zero(t, freq["python"])
}

func TestMatch_HighPriorityMissing(t *testing.T) {
	matcher := NewMatcherService()

	result := matcher.Match(
		"Python developer",
		"Docker experience required. You will build and ship Docker containers daily.",
	)

	assert.Contains(t, result.MissingSkills, "docker")
	assert.Contains(t, result.HighPriorityMissing, "docker")
}

func TestPreprocessText(t *testing.T) {
	assert.Equal(t, "python sql", PreprocessText("Python, SQL!"))
	assert.Equal(t, "node.js c++ c#", PreprocessText("Node.js / C++ | C#"))
	assert.Equal(t, "", PreprocessText("   "))
}

func TestDetectExperienceLevel(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"senior", "We need a senior backend engineer", "senior"},
		{"senior beats entry", "Senior role, juniors need not apply", "senior"},
		{"mid", "Looking for 3+ years of backend work", "mid"},
		{"entry", "Great internship for recent graduates", "entry"},
		{"unspecified", "Backend engineer wanted", "not specified"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectExperienceLevel(tt.text))
		})
	}
}

func TestExtractYearsExperience(t *testing.T) {
	five := ExtractYearsExperience("5+ years of experience with Go")
	require.NotNil(t, five)
	assert.Equal(t, 5, *five)

	three := ExtractYearsExperience("minimum 3 years in a similar role")
	require.NotNil(t, three)
	assert.Equal(t, 3, *three)

	ranged := ExtractYearsExperience("3-5 years of experience")
	require.NotNil(t, ranged)
	assert.Equal(t, 3, *ranged)

	assert.Nil(t, ExtractYearsExperience("no requirements mentioned"))
}

func TestDetectEducation(t *testing.T) {
	detected := DetectEducation("Bachelor's degree in CS required, PhD preferred")

	assert.Contains(t, detected, "bachelors")
	assert.Contains(t, detected, "phd")
	assert.Contains(t, detected, "degree")
}
