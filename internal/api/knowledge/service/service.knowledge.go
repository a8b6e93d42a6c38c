// Package knowledgesvc - knowledge base service (knowledge_items).
package knowledgesvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/Mbenve9198/bdr-tool-backend/internal/api/base/service"
	knowledgedto "github.com/Mbenve9198/bdr-tool-backend/internal/api/knowledge/dto"
	knowledgemodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/knowledge/models"
	"github.com/Mbenve9198/bdr-tool-backend/internal/common"
	"github.com/Mbenve9198/bdr-tool-backend/internal/global"
)

// defaultListLimit caps knowledge listings.
const defaultListLimit = 50

// aiSearchLimit caps AI search results.
const aiSearchLimit = 10

// KnowledgeService handles knowledge base CRUD, search and usage tracking.
type KnowledgeService struct {
	*basesvc.BaseServiceMongoImpl[knowledgemodels.KnowledgeItem]
}

// NewKnowledgeService creates a KnowledgeService.
func NewKnowledgeService() (*KnowledgeService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.KnowledgeItems)
	if !exist {
		return nil, fmt.Errorf("collection %s not registered: %w", global.MongoDB_ColNames.KnowledgeItems, common.ErrNotFound)
	}
	return &KnowledgeService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[knowledgemodels.KnowledgeItem](coll),
	}, nil
}

// ListItems returns active items filtered by category, tags and full text
// search, highest priority and most recently updated first.
func (s *KnowledgeService) ListItems(ctx context.Context, category string, tags []string, search string, limit int64) ([]knowledgemodels.KnowledgeItem, error) {
	filter := bson.M{"isActive": true}
	if category != "" {
		filter["category"] = category
	}
	if len(tags) > 0 {
		filter["tags"] = bson.M{"$in": tags}
	}
	if search != "" {
		filter["$text"] = bson.M{"$search": search}
	}

	if limit < 1 {
		limit = defaultListLimit
	}
	opts := mongoopts.Find().
		SetSort(bson.D{{Key: "priority", Value: -1}, {Key: "lastUpdated", Value: -1}}).
		SetLimit(limit)

	return s.Find(ctx, filter, opts)
}

// GetItem returns one item and counts the view.
func (s *KnowledgeService) GetItem(ctx context.Context, id primitive.ObjectID) (knowledgemodels.KnowledgeItem, error) {
	item, err := s.FindOneById(ctx, id)
	if err != nil {
		return item, err
	}

	// View tracking failures do not fail the read
	_, _ = s.Collection().UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$inc": bson.M{"usage.views": 1},
		"$set": bson.M{"usage.lastUsed": time.Now().UnixMilli()},
	})
	item.Usage.Views++
	return item, nil
}

// CreateItem builds an item from the input and inserts it.
func (s *KnowledgeService) CreateItem(ctx context.Context, input *knowledgedto.KnowledgeCreateInput) (knowledgemodels.KnowledgeItem, error) {
	now := time.Now().UnixMilli()
	item := knowledgemodels.KnowledgeItem{
		Title:       input.Title,
		Category:    input.Category,
		Content:     input.Content,
		Tags:        input.Tags,
		CarrierInfo: input.CarrierInfo,
		Priority:    input.Priority,
		Author:      input.Author,
		IsActive:    true,
		LastUpdated: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return s.InsertOne(ctx, item)
}

// UpdateItem writes the provided fields and refreshes lastUpdated.
func (s *KnowledgeService) UpdateItem(ctx context.Context, id primitive.ObjectID, input *knowledgedto.KnowledgeUpdateInput) (knowledgemodels.KnowledgeItem, error) {
	set := map[string]interface{}{
		"lastUpdated": time.Now().UnixMilli(),
	}
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Category != nil {
		set["category"] = *input.Category
	}
	if input.Content != nil {
		set["content"] = *input.Content
	}
	if input.Tags != nil {
		set["tags"] = input.Tags
	}
	if input.CarrierInfo != nil {
		set["carrierInfo"] = input.CarrierInfo
	}
	if input.Priority != nil {
		set["priority"] = *input.Priority
	}
	if input.Author != nil {
		set["author"] = *input.Author
	}
	return s.UpdateById(ctx, id, basesvc.UpdateData{Set: set})
}

// DeactivateItem soft deletes an item; history and usage stay queryable.
func (s *KnowledgeService) DeactivateItem(ctx context.Context, id primitive.ObjectID) (knowledgemodels.KnowledgeItem, error) {
	return s.UpdateById(ctx, id, basesvc.UpdateData{Set: map[string]interface{}{
		"isActive": false,
	}})
}

// CategoryStats is one row of the stats overview.
type CategoryStats struct {
	Category   string `json:"category" bson:"_id"`
	Count      int64  `json:"count" bson:"count"`
	TotalViews int64  `json:"totalViews" bson:"totalViews"`
	TotalUsage int64  `json:"totalUsage" bson:"totalUsage"`
}

// StatsOverview holds the aggregate numbers of the knowledge base.
type StatsOverview struct {
	TotalItems    int64                          `json:"totalItems"`
	ByCategory    []CategoryStats                `json:"byCategory"`
	RecentUpdates []knowledgemodels.KnowledgeItem `json:"recentUpdates"`
}

// GetStatsOverview aggregates item counts and usage per category plus the
// five most recently updated items.
func (s *KnowledgeService) GetStatsOverview(ctx context.Context) (*StatsOverview, error) {
	active := bson.M{"isActive": true}

	pipeline := []bson.M{
		{"$match": active},
		{"$group": bson.M{
			"_id":        "$category",
			"count":      bson.M{"$sum": 1},
			"totalViews": bson.M{"$sum": "$usage.views"},
			"totalUsage": bson.M{"$sum": "$usage.timesUsed"},
		}},
	}
	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	byCategory := []CategoryStats{}
	if err := cursor.All(ctx, &byCategory); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	total, err := s.CountDocuments(ctx, active)
	if err != nil {
		return nil, err
	}

	recentOpts := mongoopts.Find().
		SetSort(bson.D{{Key: "lastUpdated", Value: -1}}).
		SetLimit(5).
		SetProjection(bson.M{"title": 1, "category": 1, "lastUpdated": 1})
	recent, err := s.Find(ctx, active, recentOpts)
	if err != nil {
		return nil, err
	}

	return &StatsOverview{
		TotalItems:    total,
		ByCategory:    byCategory,
		RecentUpdates: recent,
	}, nil
}

// SearchForAI runs a text search scoped to the given categories and marks the
// returned items as used. Built for the outreach generators, also exposed on
// the API.
func (s *KnowledgeService) SearchForAI(ctx context.Context, query string, categories []string) ([]knowledgemodels.KnowledgeItem, error) {
	filter := bson.M{
		"isActive": true,
		"$text":    bson.M{"$search": query},
	}
	if len(categories) > 0 {
		filter["category"] = bson.M{"$in": categories}
	}

	opts := mongoopts.Find().
		SetSort(bson.D{{Key: "priority", Value: -1}}).
		SetLimit(aiSearchLimit)
	items, err := s.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	if len(items) > 0 {
		ids := make([]primitive.ObjectID, 0, len(items))
		for _, item := range items {
			ids = append(ids, item.ID)
		}
		_, _ = s.Collection().UpdateMany(ctx, bson.M{"_id": bson.M{"$in": ids}}, bson.M{
			"$inc": bson.M{"usage.timesUsed": 1},
			"$set": bson.M{"usage.lastUsed": time.Now().UnixMilli()},
		})
	}

	return items, nil
}
