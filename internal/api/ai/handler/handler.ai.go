// Package aihdl - HTTP handlers for the AI outreach helpers.
package aihdl

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	aisvc "github.com/Mbenve9198/bdr-tool-backend/internal/api/ai/service"
	basehdl "github.com/Mbenve9198/bdr-tool-backend/internal/api/base/handler"
	"github.com/Mbenve9198/bdr-tool-backend/internal/common"
)

// AIHandler serves the AI outreach routes.
type AIHandler struct {
	AIService *aisvc.AIService
}

// NewAIHandler creates an AIHandler.
func NewAIHandler() (*AIHandler, error) {
	svc, err := aisvc.NewAIService()
	if err != nil {
		return nil, fmt.Errorf("create AIService: %w", err)
	}
	return &AIHandler{AIService: svc}, nil
}

func writeError(c fiber.Ctx, err error) error {
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

func writeData(c fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

type generateInput struct {
	ProspectID   string `json:"prospectId"`
	IncludeRates bool   `json:"includeRates"`
}

// bindProspectID reads the prospect id from the body and validates it.
func bindProspectID(c fiber.Ctx) (primitive.ObjectID, *generateInput, error) {
	var input generateInput
	if err := c.Bind().Body(&input); err != nil || input.ProspectID == "" {
		return primitive.NilObjectID, nil, common.NewError(common.ErrCodeValidationInput,
			"Field prospectId is required", common.StatusBadRequest, nil)
	}
	id, err := primitive.ObjectIDFromHex(input.ProspectID)
	if err != nil {
		return primitive.NilObjectID, nil, common.NewError(common.ErrCodeValidationFormat,
			"Field prospectId is not a valid id", common.StatusBadRequest, nil)
	}
	return id, &input, nil
}

// HandleGenerateCallScript handles POST /ai/generate-call-script.
func (h *AIHandler) HandleGenerateCallScript(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, _, err := bindProspectID(c)
		if err != nil {
			return writeError(c, err)
		}
		result, err := h.AIService.GenerateCallScript(c.Context(), id)
		if err != nil {
			return writeError(c, err)
		}
		return writeData(c, result)
	})
}

// HandleGenerateEmailTemplate handles POST /ai/generate-email-template.
func (h *AIHandler) HandleGenerateEmailTemplate(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, input, err := bindProspectID(c)
		if err != nil {
			return writeError(c, err)
		}
		result, err := h.AIService.GenerateEmailTemplate(c.Context(), id, input.IncludeRates)
		if err != nil {
			return writeError(c, err)
		}
		return writeData(c, result)
	})
}

// HandleMarketResearch handles POST /ai/market-research.
func (h *AIHandler) HandleMarketResearch(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, _, err := bindProspectID(c)
		if err != nil {
			return writeError(c, err)
		}
		result, err := h.AIService.MarketResearch(c.Context(), id)
		if err != nil {
			return writeError(c, err)
		}
		return writeData(c, result)
	})
}

// HandleSuggestFollowUp handles GET /ai/suggest-follow-up/:prospectId.
func (h *AIHandler) HandleSuggestFollowUp(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := primitive.ObjectIDFromHex(c.Params("prospectId"))
		if err != nil {
			return writeError(c, common.NewError(common.ErrCodeValidationFormat,
				"Param prospectId is not a valid id", common.StatusBadRequest, nil))
		}
		suggestions, err := h.AIService.SuggestFollowUp(c.Context(), id)
		if err != nil {
			return writeError(c, err)
		}
		return writeData(c, suggestions)
	})
}
