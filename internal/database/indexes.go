// Package database - additional indexes (unique, text, compound) that cannot
// be expressed through model tags.
package database

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Mbenve9198/bdr-tool-backend/internal/global"
)

// CreateAdditionalIndexes creates the indexes the services rely on.
// Called once during startup after the collections are registered.
func CreateAdditionalIndexes(ctx context.Context, db *mongo.Database) error {
	// prospects: unique sparse website — upsert-by-website identity key.
	// Sparse so prospects created manually without a website do not collide.
	prospects := db.Collection(global.MongoDB_ColNames.Prospects)
	if _, err := prospects.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "website", Value: 1},
		},
		Options: options.Index().SetName("prospect_website_unique").SetUnique(true).SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// prospects: (status, score) — list filters and dashboard breakdown
	if _, err := prospects.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "score", Value: -1},
		},
		Options: options.Index().SetName("prospect_status_score"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// knowledge_items: text index on title/content — AI search
	knowledge := db.Collection(global.MongoDB_ColNames.KnowledgeItems)
	if _, err := knowledge.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "title", Value: "text"},
			{Key: "content", Value: "text"},
		},
		Options: options.Index().SetName("knowledge_text_search"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// knowledge_items: (category, priority) — category listing sorted by priority
	if _, err := knowledge.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "category", Value: 1},
			{Key: "priority", Value: -1},
		},
		Options: options.Index().SetName("knowledge_category_priority"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// knowledge_items: tags multikey — tag filters
	if _, err := knowledge.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "tags", Value: 1},
		},
		Options: options.Index().SetName("knowledge_tags"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// call_scripts: (type, performance.successRate) — best-script selection
	scripts := db.Collection(global.MongoDB_ColNames.CallScripts)
	if _, err := scripts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "type", Value: 1},
			{Key: "performance.successRate", Value: -1},
		},
		Options: options.Index().SetName("script_type_success"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// email_templates: (type, performance.replied) — best-template selection
	templates := db.Collection(global.MongoDB_ColNames.EmailTemplates)
	if _, err := templates.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "type", Value: 1},
			{Key: "performance.replied", Value: -1},
		},
		Options: options.Index().SetName("template_type_replied"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
