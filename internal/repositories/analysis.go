package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "resumatch/resume-analyzer/internal/errors"
	"resumatch/resume-analyzer/internal/models"
)

type AnalysisRepository interface {
	Create(analysis *models.Analysis) error
	FindByID(id uuid.UUID) (*models.Analysis, error)
	FindBySession(sessionID string, limit int) ([]models.Analysis, error)
}

type analysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

// Create implements AnalysisRepository.
func (r *analysisRepository) Create(analysis *models.Analysis) error {
	if err := r.db.Create(analysis).Error; err != nil {
		return fmt.Errorf("failed to create analysis: %w", err)
	}

	return nil
}

// FindByID implements AnalysisRepository.
func (r *analysisRepository) FindByID(id uuid.UUID) (*models.Analysis, error) {
	var analysis models.Analysis
	if err := r.db.Where("id = ?", id).First(&analysis).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewAnalysisNotFoundError(id.String())
		}

		return nil, fmt.Errorf("failed to find analysis: %w", err)
	}

	return &analysis, nil
}

// FindBySession implements AnalysisRepository. Results are newest first.
func (r *analysisRepository) FindBySession(sessionID string, limit int) ([]models.Analysis, error) {
	var analyses []models.Analysis
	err := r.db.
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Limit(limit).
		Find(&analyses).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find analyses for session: %w", err)
	}

	return analyses, nil
}
