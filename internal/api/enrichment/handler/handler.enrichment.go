// Package enrichhdl - HTTP handlers for website traffic analysis.
package enrichhdl

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/Mbenve9198/bdr-tool-backend/internal/api/base/handler"
	enrichsvc "github.com/Mbenve9198/bdr-tool-backend/internal/api/enrichment/service"
	"github.com/Mbenve9198/bdr-tool-backend/internal/common"
)

// EnrichmentHandler serves the analyze routes.
type EnrichmentHandler struct {
	AnalyzeService *enrichsvc.AnalyzeService
}

// NewEnrichmentHandler creates an EnrichmentHandler.
func NewEnrichmentHandler() (*EnrichmentHandler, error) {
	svc, err := enrichsvc.NewAnalyzeService()
	if err != nil {
		return nil, fmt.Errorf("create AnalyzeService: %w", err)
	}
	return &EnrichmentHandler{AnalyzeService: svc}, nil
}

type analyzeInput struct {
	WebsiteURL string `json:"websiteUrl"`
}

// HandleAnalyze handles POST /similarweb/analyze.
//
// Response: { success, data, prospectId, prospectData }. The analysis
// succeeds even when the prospect could not be persisted; prospectId is then
// omitted.
func (h *EnrichmentHandler) HandleAnalyze(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input analyzeInput
		if err := c.Bind().Body(&input); err != nil || input.WebsiteURL == "" {
			return c.Status(common.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Field websiteUrl is required",
			})
		}

		result, err := h.AnalyzeService.Analyze(c.Context(), input.WebsiteURL)
		if err != nil {
			status := common.StatusInternalServerError
			var customErr *common.Error
			if errors.As(err, &customErr) {
				status = customErr.StatusCode
			}
			return c.Status(status).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		}

		response := fiber.Map{
			"success":      true,
			"data":         result.Analysis,
			"prospectData": result.Prospect,
		}
		if result.Persisted {
			response["prospectId"] = result.Prospect.ID
		}
		return c.JSON(response)
	})
}
