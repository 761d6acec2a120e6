package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	apperrors "resumatch/resume-analyzer/internal/errors"
	"resumatch/resume-analyzer/internal/models"
	"resumatch/resume-analyzer/internal/repositories"
	"resumatch/resume-analyzer/internal/services"
)

// SessionHeader carries the caller's session ID. A new one is issued on the
// first analysis and echoed back on every response.
const SessionHeader = "X-Session-ID"

type AnalyzeHandler struct {
	analysisRepo repositories.AnalysisRepository
	storage      services.StorageService
	extractor    services.ExtractorService
	analyzer     services.AnalyzerService
	maxFileSize  int64
}

func NewAnalyzeHandler(
	analysisRepo repositories.AnalysisRepository,
	storage services.StorageService,
	extractor services.ExtractorService,
	analyzer services.AnalyzerService,
	maxFileSize int64,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analysisRepo: analysisRepo,
		storage:      storage,
		extractor:    extractor,
		analyzer:     analyzer,
		maxFileSize:  maxFileSize,
	}
}

// HandleAnalyze handles POST /analyze. The whole pipeline runs synchronously:
// extract, match, suggest, optional AI feedback, persist, respond.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	sessionID := c.Get(SessionHeader)
	if _, err := uuid.Parse(sessionID); err != nil {
		sessionID = uuid.New().String()
	}
	c.Set(SessionHeader, sessionID)

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resume file uploaded. Please upload 'resume' as a PDF or DOCX file.",
		})
	}

	jobDescription := strings.TrimSpace(c.FormValue("job_description"))
	if jobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description is required",
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	format, ok := services.FormatFromFilename(fileHeader.Filename)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid file type. Only PDF and DOCX files are allowed.",
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to read uploaded file",
		})
	}
	data, err := io.ReadAll(src)
	src.Close()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to read uploaded file",
		})
	}

	// Keep the upload around until the cleaner sweeps it.
	storedName, _, err := h.storage.SaveFile(fileHeader)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume file: %v", err),
		})
	}

	resumeText, err := h.extractor.Extract(data, format)
	if err != nil {
		h.storage.DeleteFile(storedName)
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Could not read the resume. Please ensure it is a valid PDF or DOCX file with readable text.",
		})
	}

	outcome, err := h.analyzer.Analyze(c.UserContext(), resumeText, jobDescription)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmptyInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to analyze resume",
		})
	}

	analysisJSON, err := json.Marshal(outcome.Match)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to encode analysis",
		})
	}
	suggestionsJSON, err := json.Marshal(outcome.Suggestions)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to encode suggestions",
		})
	}

	var aiJSON *string
	if outcome.AIFeedback != nil {
		raw, err := json.Marshal(outcome.AIFeedback)
		if err == nil {
			s := string(raw)
			aiJSON = &s
		}
	}

	record := &models.Analysis{
		ID:             uuid.New(),
		SessionID:      sessionID,
		ResumeFilename: fileHeader.Filename,
		ResumeText:     resumeText,
		JobDescription: jobDescription,
		MatchScore:     outcome.Match.MatchScore,
		AnalysisData:   string(analysisJSON),
		AIAnalysis:     aiJSON,
		Suggestions:    string(suggestionsJSON),
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := h.analysisRepo.Create(record); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to save analysis",
		})
	}

	category, class := services.ScoreCategory(outcome.Match.MatchScore)

	return c.Status(fiber.StatusCreated).JSON(models.AnalyzeResponse{
		ID:             record.ID.String(),
		SessionID:      sessionID,
		ResumeFilename: record.ResumeFilename,
		MatchScore:     outcome.Match.MatchScore,
		ScoreCategory:  category,
		ScoreClass:     class,
		Analysis:       outcome.Match,
		Suggestions:    outcome.Suggestions,
		AIAnalysis:     outcome.AIFeedback,
		AIAvailable:    h.analyzer.AIAvailable(),
	})
}
