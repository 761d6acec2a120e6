package handlers

import (
	"github.com/gofiber/fiber/v2"

	"resumatch/resume-analyzer/internal/models"
	"resumatch/resume-analyzer/internal/repositories"
	"resumatch/resume-analyzer/internal/services"
)

// historyLimit caps how many past analyses a session can list.
const historyLimit = 20

type HistoryHandler struct {
	analysisRepo repositories.AnalysisRepository
}

func NewHistoryHandler(analysisRepo repositories.AnalysisRepository) *HistoryHandler {
	return &HistoryHandler{
		analysisRepo: analysisRepo,
	}
}

// HandleGetHistory handles GET /history. A caller without a session header
// simply has no history yet.
func (h *HistoryHandler) HandleGetHistory(c *fiber.Ctx) error {
	sessionID := c.Get(SessionHeader)
	if sessionID == "" {
		return c.JSON(models.HistoryResponse{
			SessionID: "",
			Analyses:  []models.HistoryItem{},
		})
	}

	analyses, err := h.analysisRepo.FindBySession(sessionID, historyLimit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load history",
		})
	}

	items := make([]models.HistoryItem, 0, len(analyses))
	for _, analysis := range analyses {
		category, class := services.ScoreCategory(analysis.MatchScore)
		items = append(items, models.HistoryItem{
			ID:             analysis.ID.String(),
			ResumeFilename: analysis.ResumeFilename,
			MatchScore:     analysis.MatchScore,
			ScoreCategory:  category,
			ScoreClass:     class,
			CreatedAt:      analysis.CreatedAt,
		})
	}

	return c.JSON(models.HistoryResponse{
		SessionID: sessionID,
		Analyses:  items,
	})
}
