// Package prospecthdl - HTTP handlers for the prospect pipeline.
package prospecthdl

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/Mbenve9198/bdr-tool-backend/internal/api/base/handler"
	prospectdto "github.com/Mbenve9198/bdr-tool-backend/internal/api/prospect/dto"
	prospectsvc "github.com/Mbenve9198/bdr-tool-backend/internal/api/prospect/service"
	"github.com/Mbenve9198/bdr-tool-backend/internal/common"
	"github.com/Mbenve9198/bdr-tool-backend/internal/global"
)

// ProspectHandler serves the prospect pipeline routes.
type ProspectHandler struct {
	ProspectService *prospectsvc.ProspectService
}

// NewProspectHandler creates a ProspectHandler.
func NewProspectHandler() (*ProspectHandler, error) {
	svc, err := prospectsvc.NewProspectService()
	if err != nil {
		return nil, fmt.Errorf("create ProspectService: %w", err)
	}
	return &ProspectHandler{ProspectService: svc}, nil
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

func parseID(c fiber.Ctx) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(c.Params("id"))
}

// HandleList handles GET /prospects.
// Query: status, assignedTo, industry, size, minScore, maxScore, sortBy,
// sortOrder, page, limit.
func (h *ProspectHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		filter := prospectdto.ListFilter{
			Status:     c.Query("status"),
			AssignedTo: c.Query("assignedTo"),
			Industry:   c.Query("industry"),
			Size:       c.Query("size"),
			SortBy:     c.Query("sortBy"),
			SortOrder:  c.Query("sortOrder"),
			Page:       1,
			Limit:      20,
		}
		if s := c.Query("minScore"); s != "" {
			if n, err := strconv.Atoi(s); err == nil {
				filter.MinScore = &n
			}
		}
		if s := c.Query("maxScore"); s != "" {
			if n, err := strconv.Atoi(s); err == nil {
				filter.MaxScore = &n
			}
		}
		if s := c.Query("page"); s != "" {
			if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
				filter.Page = n
			}
		}
		if s := c.Query("limit"); s != "" {
			if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
				filter.Limit = n
			}
		}

		result, err := h.ProspectService.ListProspects(c.Context(), &filter)
		if err != nil {
			return handleServiceError(c, err)
		}
		return ok(c, result)
	})
}

// HandleGet handles GET /prospects/:id.
func (h *ProspectHandler) HandleGet(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "Invalid prospect id")
		}
		prospect, err := h.ProspectService.FindOneById(c.Context(), id)
		if err != nil {
			return handleServiceError(c, err)
		}
		return ok(c, prospect)
	})
}

// HandleCreate handles POST /prospects.
func (h *ProspectHandler) HandleCreate(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input prospectdto.ProspectCreateInput
		if err := c.Bind().Body(&input); err != nil {
			return badRequest(c, "Request body is not valid JSON")
		}
		if err := global.Validate.Struct(&input); err != nil {
			return badRequest(c, err.Error())
		}

		prospect, err := h.ProspectService.CreateProspect(c.Context(), &input)
		if err != nil {
			return handleServiceError(c, err)
		}
		return c.Status(common.StatusCreated).JSON(fiber.Map{
			"code": common.StatusCreated, "message": common.MsgCreated, "data": prospect, "status": "success",
		})
	})
}

// HandleUpdate handles PUT /prospects/:id.
func (h *ProspectHandler) HandleUpdate(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "Invalid prospect id")
		}
		var input prospectdto.ProspectUpdateInput
		if err := c.Bind().Body(&input); err != nil {
			return badRequest(c, "Request body is not valid JSON")
		}
		if err := global.Validate.Struct(&input); err != nil {
			return badRequest(c, err.Error())
		}

		prospect, err := h.ProspectService.UpdateProspect(c.Context(), id, &input)
		if err != nil {
			return handleServiceError(c, err)
		}
		return ok(c, prospect)
	})
}

// HandleAddInteraction handles POST /prospects/:id/interactions.
func (h *ProspectHandler) HandleAddInteraction(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "Invalid prospect id")
		}
		var input prospectdto.InteractionInput
		if err := c.Bind().Body(&input); err != nil {
			return badRequest(c, "Request body is not valid JSON")
		}
		if err := global.Validate.Struct(&input); err != nil {
			return badRequest(c, err.Error())
		}

		prospect, err := h.ProspectService.AddInteraction(c.Context(), id, &input)
		if err != nil {
			return handleServiceError(c, err)
		}
		return ok(c, prospect)
	})
}

// HandleSetStatus handles PUT /prospects/:id/status.
func (h *ProspectHandler) HandleSetStatus(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "Invalid prospect id")
		}
		var input prospectdto.StatusInput
		if err := c.Bind().Body(&input); err != nil {
			return badRequest(c, "Request body is not valid JSON")
		}
		if err := global.Validate.Struct(&input); err != nil {
			return badRequest(c, err.Error())
		}

		prospect, err := h.ProspectService.SetStatus(c.Context(), id, input.Status)
		if err != nil {
			return handleServiceError(c, err)
		}
		return ok(c, prospect)
	})
}

// HandleDashboardStats handles GET /prospects/stats/dashboard.
func (h *ProspectHandler) HandleDashboardStats(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		stats, err := h.ProspectService.GetDashboardStats(c.Context())
		if err != nil {
			return handleServiceError(c, err)
		}
		return ok(c, stats)
	})
}
