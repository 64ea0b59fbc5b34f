package handler

import (
	"strconv"

	"studytrack/internal/domain"
	"studytrack/internal/dto"
	"studytrack/internal/middleware"
	"studytrack/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ToolsHandler handles AI study-tool HTTP requests
type ToolsHandler struct {
	service service.GenerationService
}

// NewToolsHandler creates a new ToolsHandler instance
func NewToolsHandler(service service.GenerationService) *ToolsHandler {
	return &ToolsHandler{
		service: service,
	}
}

// GenerateQuiz godoc
// @Summary Generate a quiz
// @Description Generates a multiple-choice quiz for a topic
// @Tags tools
// @Accept json
// @Produce json
// @Param request body dto.QuizRequest true "Quiz parameters"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /tools/quiz [post]
func (h *ToolsHandler) GenerateQuiz(c *fiber.Ctx) error {
	var req dto.QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.service.GenerateQuiz(c.Context(), middleware.UserIDFromContext(c), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SummarizeMaterial godoc
// @Summary Summarize study material
// @Description Produces a summary and key points for pasted material
// @Tags tools
// @Accept json
// @Produce json
// @Param request body dto.SummaryRequest true "Material to summarize"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /tools/summary [post]
func (h *ToolsHandler) SummarizeMaterial(c *fiber.Ctx) error {
	var req dto.SummaryRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.service.SummarizeMaterial(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SuggestTopics godoc
// @Summary Suggest study topics
// @Description Suggests topics for an exam type
// @Tags tools
// @Produce json
// @Param exam_type query string true "Exam type"
// @Success 200 {object} dto.TopicsResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /tools/topics [get]
func (h *ToolsHandler) SuggestTopics(c *fiber.Ctx) error {
	resp, err := h.service.SuggestTopics(c.Context(), c.Query("exam_type"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// AnalyzeProductivity godoc
// @Summary Analyze study productivity
// @Description Produces insights and recommendations from study metrics
// @Tags tools
// @Accept json
// @Produce json
// @Param request body dto.ProductivityRequest true "Study metrics"
// @Success 200 {object} dto.ProductivityResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /tools/productivity [post]
func (h *ToolsHandler) AnalyzeProductivity(c *fiber.Ctx) error {
	var req dto.ProductivityRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.service.AnalyzeProductivity(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ProcessTranscript godoc
// @Summary Process a video transcript
// @Description Turns a lecture transcript into structured notes and questions
// @Tags tools
// @Accept json
// @Produce json
// @Param request body dto.TranscriptRequest true "Transcript"
// @Success 200 {object} dto.TranscriptResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /tools/transcript [post]
func (h *ToolsHandler) ProcessTranscript(c *fiber.Ctx) error {
	var req dto.TranscriptRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.service.ProcessTranscript(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SolveDoubt godoc
// @Summary Solve a student doubt
// @Description Explains a question in exam context
// @Tags tools
// @Accept json
// @Produce json
// @Param request body dto.DoubtRequest true "The doubt"
// @Success 200 {object} dto.DoubtResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /tools/doubt [post]
func (h *ToolsHandler) SolveDoubt(c *fiber.Ctx) error {
	var req dto.DoubtRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.service.SolveDoubt(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GenerateVocabularySession godoc
// @Summary Generate a vocabulary session
// @Description Generates vocabulary challenges for the requested game mode
// @Tags tools
// @Accept json
// @Produce json
// @Param request body dto.VocabRequest true "Session parameters"
// @Success 200 {object} dto.VocabResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /tools/vocab [post]
func (h *ToolsHandler) GenerateVocabularySession(c *fiber.Ctx) error {
	var req dto.VocabRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.service.GenerateVocabularySession(c.Context(), middleware.UserIDFromContext(c), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetHistory godoc
// @Summary List generation history
// @Description Returns the authenticated user's recent generations
// @Tags tools
// @Produce json
// @Param limit query int false "Max records (default 20)"
// @Success 200 {object} dto.HistoryResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /tools/history [get]
func (h *ToolsHandler) GetHistory(c *fiber.Ctx) error {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		return domain.NewUnauthorizedError("Authentication required")
	}

	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	resp, err := h.service.GetHistory(c.Context(), userID, limit)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
