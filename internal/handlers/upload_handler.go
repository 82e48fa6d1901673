package handlers

import (
	"errors"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/vishalnotfound/AI-Interview-Agent/internal/models"
	"github.com/vishalnotfound/AI-Interview-Agent/internal/services"
)

type UploadHandler struct {
	extractor        services.ResumeExtractor
	interviewService services.InterviewService
	maxFileSize      int64
}

func NewUploadHandler(
	extractor services.ResumeExtractor,
	interviewService services.InterviewService,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		extractor:        extractor,
		interviewService: interviewService,
		maxFileSize:      maxFileSize,
	}
}

// HandleUploadResume handles POST /upload-resume. It extracts the resume text,
// generates the opening question, and returns the new session.
func (h *UploadHandler) HandleUploadResume(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file provided.",
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read uploaded file.",
		})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read uploaded file.",
		})
	}

	resumeText, err := h.extractor.ExtractText(data, fileHeader.Filename)
	if err != nil {
		if errors.Is(err, models.ErrUnsupportedFormat) || errors.Is(err, models.ErrEmptyExtraction) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to parse resume file.",
		})
	}

	session, err := h.interviewService.StartInterview(c.Context(), resumeText)
	if err != nil {
		return c.Status(backendStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(models.UploadResponse{
		SessionID:     session.ID,
		FirstQuestion: session.Questions[0],
	})
}

func backendStatus(err error) int {
	if errors.Is(err, models.ErrBackendTimeout) {
		return fiber.StatusGatewayTimeout
	}
	return fiber.StatusInternalServerError
}
