// Package knowledgehdl - HTTP handlers for the knowledge base.
package knowledgehdl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/Mbenve9198/bdr-tool-backend/internal/api/base/handler"
	knowledgedto "github.com/Mbenve9198/bdr-tool-backend/internal/api/knowledge/dto"
	knowledgesvc "github.com/Mbenve9198/bdr-tool-backend/internal/api/knowledge/service"
	"github.com/Mbenve9198/bdr-tool-backend/internal/common"
	"github.com/Mbenve9198/bdr-tool-backend/internal/global"
)

// KnowledgeHandler serves the knowledge base routes.
type KnowledgeHandler struct {
	KnowledgeService *knowledgesvc.KnowledgeService
}

// NewKnowledgeHandler creates a KnowledgeHandler.
func NewKnowledgeHandler() (*KnowledgeHandler, error) {
	svc, err := knowledgesvc.NewKnowledgeService()
	if err != nil {
		return nil, fmt.Errorf("create KnowledgeService: %w", err)
	}
	return &KnowledgeHandler{KnowledgeService: svc}, nil
}

func badRequest(c fiber.Ctx, message string) error {
	return c.Status(common.StatusBadRequest).JSON(fiber.Map{
		"code": common.ErrCodeValidationInput.Code, "message": message, "status": "error",
	})
}

func handleServiceError(c fiber.Ctx, err error) error {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		return c.Status(customErr.StatusCode).JSON(fiber.Map{
			"code": customErr.Code.Code, "message": customErr.Message, "status": "error",
		})
	}
	return c.Status(common.StatusInternalServerError).JSON(fiber.Map{
		"code": common.ErrCodeDatabase.Code, "message": err.Error(), "status": "error",
	})
}

func ok(c fiber.Ctx, data interface{}) error {
	return c.Status(common.StatusOK).JSON(fiber.Map{
		"code": common.StatusOK, "message": common.MsgSuccess, "data": data, "status": "success",
	})
}

// splitCSV splits a comma separated query value, dropping empties.
func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := []string{}
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// HandleList handles GET /knowledge.
// Query: category, tags (CSV), search, limit.
func (h *KnowledgeHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var limit int64
		if s := c.Query("limit"); s != "" {
			if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
				limit = n
			}
		}

		items, err := h.KnowledgeService.ListItems(c.Context(),
			c.Query("category"), splitCSV(c.Query("tags")), c.Query("search"), limit)
		if err != nil {
			return handleServiceError(c, err)
		}
		return ok(c, items)
	})
}

// HandleGet handles GET /knowledge/:id. Reading an item counts as a view.
func (h *KnowledgeHandler) HandleGet(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return badRequest(c, "Invalid knowledge item id")
		}
		item, err := h.KnowledgeService.GetItem(c.Context(), id)
		if err != nil {
			return handleServiceError(c, err)
		}
		return ok(c, item)
	})
}

// HandleCreate handles POST /knowledge.
func (h *KnowledgeHandler) HandleCreate(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input knowledgedto.KnowledgeCreateInput
		if err := c.Bind().Body(&input); err != nil {
			return badRequest(c, "Request body is not valid JSON")
		}
		if err := global.Validate.Struct(&input); err != nil {
			return badRequest(c, err.Error())
		}

		item, err := h.KnowledgeService.CreateItem(c.Context(), &input)
		if err != nil {
			return handleServiceError(c, err)
		}
		return c.Status(common.StatusCreated).JSON(fiber.Map{
			"code": common.StatusCreated, "message": common.MsgCreated, "data": item, "status": "success",
		})
	})
}

// HandleUpdate handles PUT /knowledge/:id.
func (h *KnowledgeHandler) HandleUpdate(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return badRequest(c, "Invalid knowledge item id")
		}
		var input knowledgedto.KnowledgeUpdateInput
		if err := c.Bind().Body(&input); err != nil {
			return badRequest(c, "Request body is not valid JSON")
		}
		if err := global.Validate.Struct(&input); err != nil {
			return badRequest(c, err.Error())
		}

		item, err := h.KnowledgeService.UpdateItem(c.Context(), id, &input)
		if err != nil {
			return handleServiceError(c, err)
		}
		return ok(c, item)
	})
}

// HandleDelete handles DELETE /knowledge/:id (soft delete).
func (h *KnowledgeHandler) HandleDelete(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return badRequest(c, "Invalid knowledge item id")
		}
		item, err := h.KnowledgeService.DeactivateItem(c.Context(), id)
		if err != nil {
			return handleServiceError(c, err)
		}
		return ok(c, item)
	})
}

// HandleStatsOverview handles GET /knowledge/stats/overview.
func (h *KnowledgeHandler) HandleStatsOverview(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		stats, err := h.KnowledgeService.GetStatsOverview(c.Context())
		if err != nil {
			return handleServiceError(c, err)
		}
		return ok(c, stats)
	})
}

// HandleAISearch handles GET /knowledge/search/ai.
// Query: q (required), categories (CSV).
func (h *KnowledgeHandler) HandleAISearch(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		query := c.Query("q")
		if query == "" {
			return badRequest(c, "Query parameter q is required")
		}
		items, err := h.KnowledgeService.SearchForAI(c.Context(), query, splitCSV(c.Query("categories")))
		if err != nil {
			return handleServiceError(c, err)
		}
		return ok(c, items)
	})
}
