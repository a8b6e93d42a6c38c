// Package prospectsvc - prospect pipeline service (prospects).
package prospectsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basemodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/base/models"
	basesvc "github.com/Mbenve9198/bdr-tool-backend/internal/api/base/service"
	prospectdto "github.com/Mbenve9198/bdr-tool-backend/internal/api/prospect/dto"
	prospectmodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/prospect/models"
	"github.com/Mbenve9198/bdr-tool-backend/internal/common"
	"github.com/Mbenve9198/bdr-tool-backend/internal/global"
)

// ProspectService handles prospect CRUD, scoring and pipeline moves.
type ProspectService struct {
	*basesvc.BaseServiceMongoImpl[prospectmodels.Prospect]
}

// NewProspectService creates a ProspectService.
func NewProspectService() (*ProspectService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Prospects)
	if !exist {
		return nil, fmt.Errorf("collection %s not registered: %w", global.MongoDB_ColNames.Prospects, common.ErrNotFound)
	}
	return &ProspectService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[prospectmodels.Prospect](coll),
	}, nil
}

// CreateProspect builds a prospect from the input, computes its score and
// inserts it.
func (s *ProspectService) CreateProspect(ctx context.Context, input *prospectdto.ProspectCreateInput) (prospectmodels.Prospect, error) {
	now := time.Now().UnixMilli()

	prospect := prospectmodels.Prospect{
		Company:      input.Company,
		Contact:      input.Contact,
		BusinessInfo: input.BusinessInfo,
		Website:      input.Website,
		Status:       input.Status,
		AssignedTo:   input.AssignedTo,
		Notes:        input.Notes,
		Tags:         input.Tags,
		Source:       input.Source,
		NextFollowUp: input.NextFollowUp,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if prospect.Status == "" {
		prospect.Status = prospectmodels.StatusNew
	}
	if prospect.Website == "" {
		prospect.Website = input.Company.Website
	}
	if prospect.Source == "" {
		prospect.Source = "manual"
	}
	prospect.Score = prospect.ComputeScore()

	return s.InsertOne(ctx, prospect)
}

// ListProspects returns active prospects matching the filters, paginated.
func (s *ProspectService) ListProspects(ctx context.Context, f *prospectdto.ListFilter) (*basemodels.PaginateResult[prospectmodels.Prospect], error) {
	filter := bson.M{"isActive": true}

	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.AssignedTo != "" {
		filter["assignedTo"] = f.AssignedTo
	}
	if f.Industry != "" {
		filter["company.industry"] = bson.M{"$regex": f.Industry, "$options": "i"}
	}
	if f.Size != "" {
		filter["company.size"] = f.Size
	}
	if f.MinScore != nil || f.MaxScore != nil {
		scoreRange := bson.M{}
		if f.MinScore != nil {
			scoreRange["$gte"] = *f.MinScore
		}
		if f.MaxScore != nil {
			scoreRange["$lte"] = *f.MaxScore
		}
		filter["score"] = scoreRange
	}

	sortBy := f.SortBy
	if sortBy == "" {
		sortBy = "score"
	}
	order := -1
	if f.SortOrder == "asc" {
		order = 1
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit < 1 {
		limit = 20
	}

	opts := mongoopts.Find().SetSort(bson.D{{Key: sortBy, Value: order}})
	return s.FindWithPagination(ctx, filter, page, limit, opts)
}

// UpdateProspect merges the provided sections onto the stored prospect,
// recomputes the score and persists the result.
func (s *ProspectService) UpdateProspect(ctx context.Context, id primitive.ObjectID, input *prospectdto.ProspectUpdateInput) (prospectmodels.Prospect, error) {
	prospect, err := s.FindOneById(ctx, id)
	if err != nil {
		return prospect, err
	}

	if input.Company != nil {
		prospect.Company = *input.Company
	}
	if input.Contact != nil {
		prospect.Contact = *input.Contact
	}
	if input.BusinessInfo != nil {
		prospect.BusinessInfo = *input.BusinessInfo
	}
	if input.Website != nil {
		prospect.Website = *input.Website
	}
	if input.Status != nil {
		prospect.Status = *input.Status
	}
	if input.AssignedTo != nil {
		prospect.AssignedTo = *input.AssignedTo
	}
	if input.Notes != nil {
		prospect.Notes = *input.Notes
	}
	if input.Tags != nil {
		prospect.Tags = input.Tags
	}
	if input.NextFollowUp != nil {
		prospect.NextFollowUp = *input.NextFollowUp
	}
	prospect.Score = prospect.ComputeScore()

	update := basesvc.UpdateData{Set: map[string]interface{}{
		"company":      prospect.Company,
		"contact":      prospect.Contact,
		"businessInfo": prospect.BusinessInfo,
		"status":       prospect.Status,
		"assignedTo":   prospect.AssignedTo,
		"notes":        prospect.Notes,
		"tags":         prospect.Tags,
		"nextFollowUp": prospect.NextFollowUp,
		"score":        prospect.Score,
	}}
	if prospect.Website != "" {
		update.Set["website"] = prospect.Website
	}

	return s.UpdateById(ctx, id, update)
}

// AddInteraction appends an interaction, updates the last contact date and
// recomputes the score.
func (s *ProspectService) AddInteraction(ctx context.Context, id primitive.ObjectID, input *prospectdto.InteractionInput) (prospectmodels.Prospect, error) {
	prospect, err := s.FindOneById(ctx, id)
	if err != nil {
		return prospect, err
	}

	now := time.Now().UnixMilli()
	interaction := prospectmodels.ProspectInteraction{
		Type:       input.Type,
		Date:       now,
		Notes:      input.Notes,
		Outcome:    input.Outcome,
		NextAction: input.NextAction,
		Author:     input.Author,
	}
	prospect.Interactions = append(prospect.Interactions, interaction)
	prospect.Score = prospect.ComputeScore()

	return s.UpdateById(ctx, id, basesvc.UpdateData{
		Set: map[string]interface{}{
			"score":           prospect.Score,
			"lastContactDate": now,
		},
		Push: map[string]interface{}{
			"interactions": interaction,
		},
	})
}

// SetStatus moves a prospect through the pipeline and marks the contact date.
func (s *ProspectService) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (prospectmodels.Prospect, error) {
	return s.UpdateById(ctx, id, basesvc.UpdateData{Set: map[string]interface{}{
		"status":          status,
		"lastContactDate": time.Now().UnixMilli(),
	}})
}

// StatusCount is one row of the dashboard status breakdown.
type StatusCount struct {
	Status   string  `json:"status" bson:"_id"`
	Count    int64   `json:"count" bson:"count"`
	AvgScore float64 `json:"avgScore" bson:"avgScore"`
}

// DashboardStats holds the aggregate numbers for the BDR dashboard.
type DashboardStats struct {
	TotalProspects     int64                     `json:"totalProspects"`
	HighScoreProspects int64                     `json:"highScoreProspects"`
	ByStatus           []StatusCount             `json:"byStatus"`
	RecentActivity     []prospectmodels.Prospect `json:"recentActivity"`
}

// GetDashboardStats aggregates the pipeline for the dashboard: counts and
// average score per status, totals, and the five most recently contacted
// prospects.
func (s *ProspectService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	active := bson.M{"isActive": true}

	pipeline := []bson.M{
		{"$match": active},
		{"$group": bson.M{
			"_id":      "$status",
			"count":    bson.M{"$sum": 1},
			"avgScore": bson.M{"$avg": "$score"},
		}},
	}
	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	byStatus := []StatusCount{}
	if err := cursor.All(ctx, &byStatus); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	total, err := s.CountDocuments(ctx, active)
	if err != nil {
		return nil, err
	}
	highScore, err := s.CountDocuments(ctx, bson.M{"isActive": true, "score": bson.M{"$gte": 80}})
	if err != nil {
		return nil, err
	}

	recentOpts := mongoopts.Find().
		SetSort(bson.D{{Key: "lastContactDate", Value: -1}}).
		SetLimit(5).
		SetProjection(bson.M{"company.name": 1, "status": 1, "score": 1, "lastContactDate": 1})
	recent, err := s.Find(ctx, active, recentOpts)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalProspects:     total,
		HighScoreProspects: highScore,
		ByStatus:           byStatus,
		RecentActivity:     recent,
	}, nil
}
