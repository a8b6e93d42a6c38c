package outreachhdl

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/Mbenve9198/bdr-tool-backend/internal/api/base/handler"
	outreachdto "github.com/Mbenve9198/bdr-tool-backend/internal/api/outreach/dto"
	outreachsvc "github.com/Mbenve9198/bdr-tool-backend/internal/api/outreach/service"
	prospectsvc "github.com/Mbenve9198/bdr-tool-backend/internal/api/prospect/service"
	"github.com/Mbenve9198/bdr-tool-backend/internal/global"
)

// TemplateHandler serves the email template routes.
type TemplateHandler struct {
	TemplateService *outreachsvc.TemplateService
	ProspectService *prospectsvc.ProspectService
}

// NewTemplateHandler creates a TemplateHandler.
func NewTemplateHandler() (*TemplateHandler, error) {
	templateSvc, err := outreachsvc.NewTemplateService()
	if err != nil {
		return nil, fmt.Errorf("create TemplateService: %w", err)
	}
	prospectSvc, err := prospectsvc.NewProspectService()
	if err != nil {
		return nil, fmt.Errorf("create ProspectService: %w", err)
	}
	return &TemplateHandler{TemplateService: templateSvc, ProspectService: prospectSvc}, nil
}

// HandleList handles GET /templates.
// Query: type, isApproved.
func (h *TemplateHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var isApproved *bool
		if s := c.Query("isApproved"); s != "" {
			if b, err := strconv.ParseBool(s); err == nil {
				isApproved = &b
			}
		}
		templates, err := h.TemplateService.ListTemplates(c.Context(), c.Query("type"), isApproved)
		if err != nil {
			return handleServiceError(c, err)
		}
		return ok(c, templates)
	})
}

// HandleGet handles GET /templates/:id. The response carries the derived
// funnel metrics next to the template.
func (h *TemplateHandler) HandleGet(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return badRequest(c, "Invalid template id")
		}
		template, err := h.TemplateService.FindOneById(c.Context(), id)
		if err != nil {
			return handleServiceError(c, err)
		}
		return ok(c, fiber.Map{
			"template": template,
			"metrics":  template.Metrics(),
		})
	})
}

// HandleCreate handles POST /templates.
func (h *TemplateHandler) HandleCreate(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input outreachdto.TemplateCreateInput
		if err := c.Bind().Body(&input); err != nil {
			return badRequest(c, "Request body is not valid JSON")
		}
		if err := global.Validate.Struct(&input); err != nil {
			return badRequest(c, err.Error())
		}
		template, err := h.TemplateService.CreateTemplate(c.Context(), &input)
		if err != nil {
			return handleServiceError(c, err)
		}
		return created(c, template)
	})
}

// HandleUpdate handles PUT /templates/:id.
func (h *TemplateHandler) HandleUpdate(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return badRequest(c, "Invalid template id")
		}
		var input outreachdto.TemplateUpdateInput
		if err := c.Bind().Body(&input); err != nil {
			return badRequest(c, "Request body is not valid JSON")
		}
		if err := global.Validate.Struct(&input); err != nil {
			return badRequest(c, err.Error())
		}
		template, err := h.TemplateService.UpdateTemplate(c.Context(), id, &input)
		if err != nil {
			return handleServiceError(c, err)
		}
		return ok(c, template)
	})
}

// HandleTrackEvent handles POST /templates/:id/track/:event.
func (h *TemplateHandler) HandleTrackEvent(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return badRequest(c, "Invalid template id")
		}
		template, err := h.TemplateService.TrackEvent(c.Context(), id, c.Params("event"))
		if err != nil {
			return handleServiceError(c, err)
		}
		return ok(c, fiber.Map{
			"template": template,
			"metrics":  template.Metrics(),
		})
	})
}

// HandleRender handles POST /templates/:id/render.
func (h *TemplateHandler) HandleRender(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return badRequest(c, "Invalid template id")
		}
		var input outreachdto.RenderInput
		if err := c.Bind().Body(&input); err != nil {
			return badRequest(c, "Request body is not valid JSON")
		}

		template, err := h.TemplateService.FindOneById(c.Context(), id)
		if err != nil {
			return handleServiceError(c, err)
		}
		prospect, err := loadProspect(c, h.ProspectService, input.ProspectID)
		if err != nil {
			return handleServiceError(c, err)
		}

		rendered, err := h.TemplateService.Render(c.Context(), &template, input.Variables, prospect)
		if err != nil {
			return handleServiceError(c, err)
		}
		return ok(c, rendered)
	})
}
