package outreachsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/Mbenve9198/bdr-tool-backend/internal/api/base/service"
	outreachdto "github.com/Mbenve9198/bdr-tool-backend/internal/api/outreach/dto"
	outreachmodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/outreach/models"
	"github.com/Mbenve9198/bdr-tool-backend/internal/common"
	"github.com/Mbenve9198/bdr-tool-backend/internal/global"
)

// ScriptService handles call script CRUD and usage tracking (call_scripts).
type ScriptService struct {
	*basesvc.BaseServiceMongoImpl[outreachmodels.CallScript]
}

// NewScriptService creates a ScriptService.
func NewScriptService() (*ScriptService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CallScripts)
	if !exist {
		return nil, fmt.Errorf("collection %s not registered: %w", global.MongoDB_ColNames.CallScripts, common.ErrNotFound)
	}
	return &ScriptService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[outreachmodels.CallScript](coll),
	}, nil
}

// ListScripts returns active scripts filtered by type and industry, best
// performing first.
func (s *ScriptService) ListScripts(ctx context.Context, scriptType, industry string) ([]outreachmodels.CallScript, error) {
	filter := bson.M{"isActive": true}
	if scriptType != "" {
		filter["type"] = scriptType
	}
	if industry != "" {
		// Generic scripts (no industry) apply everywhere
		filter["industry"] = bson.M{"$in": []string{industry, ""}}
	}

	opts := mongoopts.Find().SetSort(bson.D{{Key: "performance.successRate", Value: -1}})
	return s.Find(ctx, filter, opts)
}

// BestScript returns the highest performing active script for a type and
// industry, or ErrNotFound.
func (s *ScriptService) BestScript(ctx context.Context, scriptType, industry string) (outreachmodels.CallScript, error) {
	filter := bson.M{"isActive": true, "type": scriptType}
	if industry != "" {
		filter["industry"] = bson.M{"$in": []string{industry, ""}}
	}
	opts := mongoopts.FindOne().SetSort(bson.D{{Key: "performance.successRate", Value: -1}})
	return s.FindOne(ctx, filter, opts)
}

// CreateScript builds a script from the input and inserts it.
func (s *ScriptService) CreateScript(ctx context.Context, input *outreachdto.ScriptCreateInput) (outreachmodels.CallScript, error) {
	now := time.Now().UnixMilli()
	script := outreachmodels.CallScript{
		Title:     input.Title,
		Type:      input.Type,
		Industry:  input.Industry,
		Structure: input.Structure,
		Variables: input.Variables,
		CreatedBy: input.CreatedBy,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.InsertOne(ctx, script)
}

// UpdateScript writes the provided fields.
func (s *ScriptService) UpdateScript(ctx context.Context, id primitive.ObjectID, input *outreachdto.ScriptUpdateInput) (outreachmodels.CallScript, error) {
	set := map[string]interface{}{}
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Type != nil {
		set["type"] = *input.Type
	}
	if input.Industry != nil {
		set["industry"] = *input.Industry
	}
	if input.Structure != nil {
		set["structure"] = input.Structure
	}
	if input.Variables != nil {
		set["variables"] = input.Variables
	}
	if len(set) == 0 {
		return s.FindOneById(ctx, id)
	}
	return s.UpdateById(ctx, id, basesvc.UpdateData{Set: set})
}

// RecordUsage counts one use of the script and recomputes its success rate.
func (s *ScriptService) RecordUsage(ctx context.Context, id primitive.ObjectID, outcome string) (outreachmodels.CallScript, error) {
	script, err := s.FindOneById(ctx, id)
	if err != nil {
		return script, err
	}

	script.RecordUsage(outcome, time.Now().UnixMilli())

	return s.UpdateById(ctx, id, basesvc.UpdateData{Set: map[string]interface{}{
		"performance": script.Performance,
	}})
}

