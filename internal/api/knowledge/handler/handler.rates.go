package knowledgehdl

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/Mbenve9198/bdr-tool-backend/internal/api/base/handler"
	knowledgedto "github.com/Mbenve9198/bdr-tool-backend/internal/api/knowledge/dto"
	knowledgemodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/knowledge/models"
	"github.com/Mbenve9198/bdr-tool-backend/internal/global"
)

// Comparison defaults when the query omits them.
const (
	defaultCompareDestination = knowledgemodels.ZoneItaly
	defaultCompareWeight      = 2.0
)

// HandleListRates handles GET /rates.
// Query: carrier, zone, service.
func (h *KnowledgeHandler) HandleListRates(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		rates, err := h.KnowledgeService.ListRates(c.Context(),
			c.Query("carrier"), c.Query("zone"), c.Query("service"))
		if err != nil {
			return handleServiceError(c, err)
		}
		return ok(c, rates)
	})
}

// HandleCalculateRates handles POST /rates/calculate.
func (h *KnowledgeHandler) HandleCalculateRates(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input knowledgedto.RateCalculationInput
		if err := c.Bind().Body(&input); err != nil {
			return badRequest(c, "Request body is not valid JSON")
		}
		if err := global.Validate.Struct(&input); err != nil {
			return badRequest(c, err.Error())
		}

		calculation, err := h.KnowledgeService.CalculateRates(c.Context(),
			input.Destination, input.Weight, input.Service)
		if err != nil {
			return handleServiceError(c, err)
		}
		return ok(c, calculation)
	})
}

// HandleCompareCarriers handles GET /rates/compare.
// Query: carriers (CSV, required), destination, weight.
func (h *KnowledgeHandler) HandleCompareCarriers(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		carriers := splitCSV(c.Query("carriers"))
		if len(carriers) == 0 {
			return badRequest(c, "Query parameter carriers is required")
		}

		destination := c.Query("destination")
		if destination == "" {
			destination = defaultCompareDestination
		}
		weight := defaultCompareWeight
		if s := c.Query("weight"); s != "" {
			if w, err := strconv.ParseFloat(s, 64); err == nil && w > 0 {
				weight = w
			}
		}

		comparison, err := h.KnowledgeService.CompareCarriers(c.Context(), carriers, destination, weight)
		if err != nil {
			return handleServiceError(c, err)
		}
		return ok(c, comparison)
	})
}
