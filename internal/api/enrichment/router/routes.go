// Package router registers the website analysis routes.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	enrichhdl "github.com/Mbenve9198/bdr-tool-backend/internal/api/enrichment/handler"
	apirouter "github.com/Mbenve9198/bdr-tool-backend/internal/api/router"
)

// Register registers the analysis routes on v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := enrichhdl.NewEnrichmentHandler()
	if err != nil {
		return fmt.Errorf("create EnrichmentHandler: %w", err)
	}

	// POST /similarweb/analyze — analyze a website and upsert the prospect
	apirouter.RegisterRouteWithMiddleware(v1, "/similarweb", "POST", "/analyze", nil, handler.HandleAnalyze)

	return nil
}
