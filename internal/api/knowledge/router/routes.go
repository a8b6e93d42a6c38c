// Package router registers the knowledge base and carrier rates routes.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	knowledgehdl "github.com/Mbenve9198/bdr-tool-backend/internal/api/knowledge/handler"
	apirouter "github.com/Mbenve9198/bdr-tool-backend/internal/api/router"
)

// Register registers the knowledge and rates routes on v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := knowledgehdl.NewKnowledgeHandler()
	if err != nil {
		return fmt.Errorf("create KnowledgeHandler: %w", err)
	}

	// Static paths before /:id
	apirouter.RegisterRouteWithMiddleware(v1, "/knowledge", "GET", "/stats/overview", nil, handler.HandleStatsOverview)
	apirouter.RegisterRouteWithMiddleware(v1, "/knowledge", "GET", "/search/ai", nil, handler.HandleAISearch)

	apirouter.RegisterRouteWithMiddleware(v1, "/knowledge", "GET", "/", nil, handler.HandleList)
	apirouter.RegisterRouteWithMiddleware(v1, "/knowledge", "POST", "/", nil, handler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/knowledge", "GET", "/:id", nil, handler.HandleGet)
	apirouter.RegisterRouteWithMiddleware(v1, "/knowledge", "PUT", "/:id", nil, handler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(v1, "/knowledge", "DELETE", "/:id", nil, handler.HandleDelete)

	// Carrier rates live on the knowledge base (category carrier-rates)
	apirouter.RegisterRouteWithMiddleware(v1, "/rates", "GET", "/", nil, handler.HandleListRates)
	apirouter.RegisterRouteWithMiddleware(v1, "/rates", "POST", "/calculate", nil, handler.HandleCalculateRates)
	apirouter.RegisterRouteWithMiddleware(v1, "/rates", "GET", "/compare", nil, handler.HandleCompareCarriers)

	return nil
}
