package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumatch/resume-analyzer/internal/models"
	"resumatch/resume-analyzer/internal/repositories"
	"resumatch/resume-analyzer/internal/services"
)

type ResultHandler struct {
	analysisRepo repositories.AnalysisRepository
}

func NewResultHandler(analysisRepo repositories.AnalysisRepository) *ResultHandler {
	return &ResultHandler{
		analysisRepo: analysisRepo,
	}
}

// HandleGetResult handles GET /results/:id
func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	idParam := c.Params("id")
	analysisID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid analysis ID format",
		})
	}

	analysis, err := h.analysisRepo.FindByID(analysisID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Analysis not found",
		})
	}

	category, class := services.ScoreCategory(analysis.MatchScore)

	response := models.ResultResponse{
		ID:             analysis.ID.String(),
		ResumeFilename: analysis.ResumeFilename,
		JobDescription: analysis.JobDescription,
		MatchScore:     analysis.MatchScore,
		ScoreCategory:  category,
		ScoreClass:     class,
		Analysis:       json.RawMessage(analysis.AnalysisData),
		Suggestions:    json.RawMessage(analysis.Suggestions),
		CreatedAt:      analysis.CreatedAt,
	}

	if analysis.AIAnalysis != nil {
		raw := json.RawMessage(*analysis.AIAnalysis)
		response.AIAnalysis = &raw
	}

	return c.JSON(response)
}
