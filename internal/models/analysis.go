package models

import (
	"time"

	"github.com/google/uuid"
)

// Analysis is one stored resume-vs-job analysis. The structured parts
// (keyword analysis, AI feedback, suggestions) are kept as JSON text,
// the record itself only carries what history listings need.
type Analysis struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SessionID      string    `gorm:"type:text;index" json:"session_id"`
	ResumeFilename string    `gorm:"type:text" json:"resume_filename"`
	ResumeText     string    `gorm:"type:text" json:"-"`
	JobDescription string    `gorm:"type:text" json:"job_description"`
	MatchScore     float64   `gorm:"type:decimal(5,1)" json:"match_score"`
	AnalysisData   string    `gorm:"type:text" json:"-"`
	AIAnalysis     *string   `gorm:"type:text" json:"-"`
	Suggestions    string    `gorm:"type:text" json:"-"`
	CreatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Analysis) TableName() string {
	return "analyses"
}
