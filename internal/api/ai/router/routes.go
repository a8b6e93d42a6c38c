// Package router registers the AI outreach routes.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	aihdl "github.com/Mbenve9198/bdr-tool-backend/internal/api/ai/handler"
	apirouter "github.com/Mbenve9198/bdr-tool-backend/internal/api/router"
)

// Register registers the AI routes on v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := aihdl.NewAIHandler()
	if err != nil {
		return fmt.Errorf("create AIHandler: %w", err)
	}

	apirouter.RegisterRouteWithMiddleware(v1, "/ai", "POST", "/generate-call-script", nil, handler.HandleGenerateCallScript)
	apirouter.RegisterRouteWithMiddleware(v1, "/ai", "POST", "/generate-email-template", nil, handler.HandleGenerateEmailTemplate)
	apirouter.RegisterRouteWithMiddleware(v1, "/ai", "POST", "/market-research", nil, handler.HandleMarketResearch)
	apirouter.RegisterRouteWithMiddleware(v1, "/ai", "GET", "/suggest-follow-up/:prospectId", nil, handler.HandleSuggestFollowUp)

	return nil
}
