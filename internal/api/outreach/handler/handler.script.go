// Package outreachhdl - HTTP handlers for call scripts and email templates.
package outreachhdl

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/Mbenve9198/bdr-tool-backend/internal/api/base/handler"
	outreachdto "github.com/Mbenve9198/bdr-tool-backend/internal/api/outreach/dto"
	outreachsvc "github.com/Mbenve9198/bdr-tool-backend/internal/api/outreach/service"
	prospectmodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/prospect/models"
	prospectsvc "github.com/Mbenve9198/bdr-tool-backend/internal/api/prospect/service"
	"github.com/Mbenve9198/bdr-tool-backend/internal/common"
	"github.com/Mbenve9198/bdr-tool-backend/internal/global"
)

// ScriptHandler serves the call script routes.
type ScriptHandler struct {
	ScriptService   *outreachsvc.ScriptService
	ProspectService *prospectsvc.ProspectService
}

// NewScriptHandler creates a ScriptHandler.
func NewScriptHandler() (*ScriptHandler, error) {
	scriptSvc, err := outreachsvc.NewScriptService()
	if err != nil {
		return nil, fmt.Errorf("create ScriptService: %w", err)
	}
	prospectSvc, err := prospectsvc.NewProspectService()
	if err != nil {
		return nil, fmt.Errorf("create ProspectService: %w", err)
	}
	return &ScriptHandler{ScriptService: scriptSvc, ProspectService: prospectSvc}, nil
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

func created(c fiber.Ctx, data interface{}) error {
	return c.Status(common.StatusCreated).JSON(fiber.Map{
		"code": common.StatusCreated, "message": common.MsgCreated, "data": data, "status": "success",
	})
}

// loadProspect resolves an optional prospectId from a render input.
func loadProspect(c fiber.Ctx, prospectSvc *prospectsvc.ProspectService, prospectID string) (*prospectmodels.Prospect, error) {
	if prospectID == "" {
		return nil, nil
	}
	id, err := primitive.ObjectIDFromHex(prospectID)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationInput,
			"Invalid prospect id", common.StatusBadRequest, nil)
	}
	prospect, err := prospectSvc.FindOneById(c.Context(), id)
	if err != nil {
		return nil, err
	}
	return &prospect, nil
}

// HandleList handles GET /scripts.
// Query: type, industry.
func (h *ScriptHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		scripts, err := h.ScriptService.ListScripts(c.Context(), c.Query("type"), c.Query("industry"))
		if err != nil {
			return handleServiceError(c, err)
		}
		return ok(c, scripts)
	})
}

// HandleGet handles GET /scripts/:id.
func (h *ScriptHandler) HandleGet(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return badRequest(c, "Invalid script id")
		}
		script, err := h.ScriptService.FindOneById(c.Context(), id)
		if err != nil {
			return handleServiceError(c, err)
		}
		return ok(c, script)
	})
}

// HandleCreate handles POST /scripts.
func (h *ScriptHandler) HandleCreate(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input outreachdto.ScriptCreateInput
		if err := c.Bind().Body(&input); err != nil {
			return badRequest(c, "Request body is not valid JSON")
		}
		if err := global.Validate.Struct(&input); err != nil {
			return badRequest(c, err.Error())
		}
		script, err := h.ScriptService.CreateScript(c.Context(), &input)
		if err != nil {
			return handleServiceError(c, err)
		}
		return created(c, script)
	})
}

// HandleUpdate handles PUT /scripts/:id.
func (h *ScriptHandler) HandleUpdate(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return badRequest(c, "Invalid script id")
		}
		var input outreachdto.ScriptUpdateInput
		if err := c.Bind().Body(&input); err != nil {
			return badRequest(c, "Request body is not valid JSON")
		}
		if err := global.Validate.Struct(&input); err != nil {
			return badRequest(c, err.Error())
		}
		script, err := h.ScriptService.UpdateScript(c.Context(), id, &input)
		if err != nil {
			return handleServiceError(c, err)
		}
		return ok(c, script)
	})
}

// HandleRecordUsage handles POST /scripts/:id/usage.
func (h *ScriptHandler) HandleRecordUsage(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return badRequest(c, "Invalid script id")
		}
		var input outreachdto.ScriptUsageInput
		if err := c.Bind().Body(&input); err != nil {
			return badRequest(c, "Request body is not valid JSON")
		}
		if err := global.Validate.Struct(&input); err != nil {
			return badRequest(c, err.Error())
		}
		script, err := h.ScriptService.RecordUsage(c.Context(), id, input.Outcome)
		if err != nil {
			return handleServiceError(c, err)
		}
		return ok(c, script)
	})
}

// HandleRender handles POST /scripts/:id/render.
func (h *ScriptHandler) HandleRender(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return badRequest(c, "Invalid script id")
		}
		var input outreachdto.RenderInput
		if err := c.Bind().Body(&input); err != nil {
			return badRequest(c, "Request body is not valid JSON")
		}

		script, err := h.ScriptService.FindOneById(c.Context(), id)
		if err != nil {
			return handleServiceError(c, err)
		}
		prospect, err := loadProspect(c, h.ProspectService, input.ProspectID)
		if err != nil {
			return handleServiceError(c, err)
		}

		structure, err := outreachsvc.RenderScriptStructure(&script, input.Variables, prospect)
		if err != nil {
			return handleServiceError(c, err)
		}
		return ok(c, structure)
	})
}
