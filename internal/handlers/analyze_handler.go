package handlers

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"career-navigator/internal/models"
	"career-navigator/internal/services"
)

type AnalyzeHandler struct {
	analyzer    services.AnalyzerService
	maxFileSize int64
}

func NewAnalyzeHandler(analyzer services.AnalyzerService, maxFileSize int64) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:    analyzer,
		maxFileSize: maxFileSize,
	}
}

// HandleAnalyze accepts a multipart 'resume' upload and returns the full
// analysis bundle. Pipeline failure is data, not transport: a result with
// success=false still returns 200.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing 'resume' file in multipart form",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	mediaType, err := models.MediaTypeFromFilename(file.Filename)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to open uploaded file: %v", err),
		})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to read uploaded file: %v", err),
		})
	}

	result := h.analyzer.Analyze(c.UserContext(), models.ResumeDocument{
		Data:      data,
		MediaType: mediaType,
	})

	return c.JSON(result)
}
