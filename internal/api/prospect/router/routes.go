// Package router registers the prospect pipeline routes.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	prospecthdl "github.com/Mbenve9198/bdr-tool-backend/internal/api/prospect/handler"
	apirouter "github.com/Mbenve9198/bdr-tool-backend/internal/api/router"
)

// Register registers the prospect routes on v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := prospecthdl.NewProspectHandler()
	if err != nil {
		return fmt.Errorf("create ProspectHandler: %w", err)
	}

	// GET /prospects/stats/dashboard — before /:id so "stats" is not matched as an id
	apirouter.RegisterRouteWithMiddleware(v1, "/prospects", "GET", "/stats/dashboard", nil, handler.HandleDashboardStats)

	// GET /prospects — filtered, sorted, paginated list
	apirouter.RegisterRouteWithMiddleware(v1, "/prospects", "GET", "/", nil, handler.HandleList)
	// POST /prospects — create with computed score
	apirouter.RegisterRouteWithMiddleware(v1, "/prospects", "POST", "/", nil, handler.HandleCreate)
	// GET /prospects/:id
	apirouter.RegisterRouteWithMiddleware(v1, "/prospects", "GET", "/:id", nil, handler.HandleGet)
	// PUT /prospects/:id — merge update with rescore
	apirouter.RegisterRouteWithMiddleware(v1, "/prospects", "PUT", "/:id", nil, handler.HandleUpdate)
	// POST /prospects/:id/interactions — log a touch
	apirouter.RegisterRouteWithMiddleware(v1, "/prospects", "POST", "/:id/interactions", nil, handler.HandleAddInteraction)
	// PUT /prospects/:id/status — pipeline move
	apirouter.RegisterRouteWithMiddleware(v1, "/prospects", "PUT", "/:id/status", nil, handler.HandleSetStatus)

	return nil
}
