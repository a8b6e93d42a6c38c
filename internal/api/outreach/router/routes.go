// Package router registers the outreach routes: call scripts and email
// templates.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	outreachhdl "github.com/Mbenve9198/bdr-tool-backend/internal/api/outreach/handler"
	apirouter "github.com/Mbenve9198/bdr-tool-backend/internal/api/router"
)

// Register registers the script and template routes on v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	scriptHandler, err := outreachhdl.NewScriptHandler()
	if err != nil {
		return fmt.Errorf("create ScriptHandler: %w", err)
	}
	templateHandler, err := outreachhdl.NewTemplateHandler()
	if err != nil {
		return fmt.Errorf("create TemplateHandler: %w", err)
	}

	// Call scripts
	apirouter.RegisterRouteWithMiddleware(v1, "/scripts", "GET", "/", nil, scriptHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(v1, "/scripts", "POST", "/", nil, scriptHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/scripts", "GET", "/:id", nil, scriptHandler.HandleGet)
	apirouter.RegisterRouteWithMiddleware(v1, "/scripts", "PUT", "/:id", nil, scriptHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(v1, "/scripts", "POST", "/:id/usage", nil, scriptHandler.HandleRecordUsage)
	apirouter.RegisterRouteWithMiddleware(v1, "/scripts", "POST", "/:id/render", nil, scriptHandler.HandleRender)

	// Email templates
	apirouter.RegisterRouteWithMiddleware(v1, "/templates", "GET", "/", nil, templateHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(v1, "/templates", "POST", "/", nil, templateHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/templates", "GET", "/:id", nil, templateHandler.HandleGet)
	apirouter.RegisterRouteWithMiddleware(v1, "/templates", "PUT", "/:id", nil, templateHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(v1, "/templates", "POST", "/:id/track/:event", nil, templateHandler.HandleTrackEvent)
	apirouter.RegisterRouteWithMiddleware(v1, "/templates", "POST", "/:id/render", nil, templateHandler.HandleRender)

	return nil
}
