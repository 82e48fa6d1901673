package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/vishalnotfound/AI-Interview-Agent/internal/models"
	"github.com/vishalnotfound/AI-Interview-Agent/internal/services"
)

type AnswerHandler struct {
	interviewService services.InterviewService
}

func NewAnswerHandler(interviewService services.InterviewService) *AnswerHandler {
	return &AnswerHandler{
		interviewService: interviewService,
	}
}

// HandleEvaluateAnswer handles POST /evaluate-answer. Mid-interview it returns
// the evaluation and the next question; on the last round it returns the
// evaluation together with the final report.
func (h *AnswerHandler) HandleEvaluateAnswer(c *fiber.Ctx) error {
	var req models.EvaluateRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.SessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "session_id is required",
		})
	}

	if strings.TrimSpace(req.CurrentAnswer) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "current_answer is required",
		})
	}

	resp, err := h.interviewService.SubmitAnswer(c.Context(), req.SessionID, req.CurrentAnswer)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrSessionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Session not found.",
			})
		case errors.Is(err, models.ErrInterviewComplete):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Interview already complete.",
			})
		default:
			return c.Status(backendStatus(err)).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}

	return c.JSON(resp)
}
