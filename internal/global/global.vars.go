package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Mbenve9198/bdr-tool-backend/config"
	"github.com/Mbenve9198/bdr-tool-backend/internal/registry"
)

// MongoDB_CollectionName holds the MongoDB collection names.
type MongoDB_CollectionName struct {
	Prospects      string // prospect CRM records
	KnowledgeItems string // knowledge base items (incl. carrier rates)
	CallScripts    string // call scripts
	EmailTemplates string // email templates
}

// Global variables
var Validate *validator.Validate                         // input validation
var MongoDB_Session *mongo.Client                        // MongoDB client session
var MongoDB_ServerConfig *config.Configuration           // server configuration
var MongoDB_ColNames = MongoDB_CollectionName{
	Prospects:      "prospects",
	KnowledgeItems: "knowledge_items",
	CallScripts:    "call_scripts",
	EmailTemplates: "email_templates",
}

// Registries
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // registered collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // registered databases
