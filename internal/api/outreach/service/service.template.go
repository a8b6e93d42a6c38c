package outreachsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/Mbenve9198/bdr-tool-backend/internal/api/base/service"
	knowledgemodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/knowledge/models"
	knowledgesvc "github.com/Mbenve9198/bdr-tool-backend/internal/api/knowledge/service"
	outreachdto "github.com/Mbenve9198/bdr-tool-backend/internal/api/outreach/dto"
	outreachmodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/outreach/models"
	prospectmodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/prospect/models"
	"github.com/Mbenve9198/bdr-tool-backend/internal/common"
	"github.com/Mbenve9198/bdr-tool-backend/internal/global"
)

// shippingRatesPlaceholder is filled with a live rates table when present.
const shippingRatesPlaceholder = "shippingRates"

// ratesTableWeight is the reference parcel weight for injected rate tables.
const ratesTableWeight = 2.0

// TemplateService handles email template CRUD, event tracking and rendering
// (email_templates).
type TemplateService struct {
	*basesvc.BaseServiceMongoImpl[outreachmodels.EmailTemplate]
	knowledgeSvc *knowledgesvc.KnowledgeService
}

// NewTemplateService creates a TemplateService.
func NewTemplateService() (*TemplateService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.EmailTemplates)
	if !exist {
		return nil, fmt.Errorf("collection %s not registered: %w", global.MongoDB_ColNames.EmailTemplates, common.ErrNotFound)
	}
	knowledgeSvc, err := knowledgesvc.NewKnowledgeService()
	if err != nil {
		return nil, fmt.Errorf("create KnowledgeService: %w", err)
	}
	return &TemplateService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[outreachmodels.EmailTemplate](coll),
		knowledgeSvc:         knowledgeSvc,
	}, nil
}

// ListTemplates returns active templates filtered by type and approval, best
// performing (most replied) first.
func (s *TemplateService) ListTemplates(ctx context.Context, templateType string, isApproved *bool) ([]outreachmodels.EmailTemplate, error) {
	filter := bson.M{"isActive": true}
	if templateType != "" {
		filter["type"] = templateType
	}
	if isApproved != nil {
		filter["isApproved"] = *isApproved
	}

	opts := mongoopts.Find().SetSort(bson.D{{Key: "performance.replied", Value: -1}})
	return s.Find(ctx, filter, opts)
}

// BestTemplate returns the approved template of the given type with the most
// replies, preferring industry matches, or ErrNotFound.
func (s *TemplateService) BestTemplate(ctx context.Context, templateType, industry string) (outreachmodels.EmailTemplate, error) {
	opts := mongoopts.FindOne().SetSort(bson.D{{Key: "performance.replied", Value: -1}})

	if industry != "" {
		template, err := s.FindOne(ctx, bson.M{
			"isActive":                true,
			"isApproved":              true,
			"type":                    templateType,
			"targetAudience.industry": industry,
		}, opts)
		if err == nil {
			return template, nil
		}
		if !errors.Is(err, common.ErrNotFound) {
			return template, err
		}
	}

	return s.FindOne(ctx, bson.M{
		"isActive":   true,
		"isApproved": true,
		"type":       templateType,
	}, opts)
}

// CreateTemplate builds a template from the input and inserts it.
func (s *TemplateService) CreateTemplate(ctx context.Context, input *outreachdto.TemplateCreateInput) (outreachmodels.EmailTemplate, error) {
	now := time.Now().UnixMilli()
	template := outreachmodels.EmailTemplate{
		Name:           input.Name,
		Type:           input.Type,
		Subject:        input.Subject,
		Content:        input.Content,
		TargetAudience: input.TargetAudience,
		Variables:      input.Variables,
		Attachments:    input.Attachments,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return s.InsertOne(ctx, template)
}

// UpdateTemplate writes the provided fields.
func (s *TemplateService) UpdateTemplate(ctx context.Context, id primitive.ObjectID, input *outreachdto.TemplateUpdateInput) (outreachmodels.EmailTemplate, error) {
	set := map[string]interface{}{}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Type != nil {
		set["type"] = *input.Type
	}
	if input.Subject != nil {
		set["subject"] = *input.Subject
	}
	if input.Content != nil {
		set["content"] = input.Content
	}
	if input.TargetAudience != nil {
		set["targetAudience"] = input.TargetAudience
	}
	if input.Variables != nil {
		set["variables"] = input.Variables
	}
	if input.Attachments != nil {
		set["attachments"] = input.Attachments
	}
	if input.IsApproved != nil {
		set["isApproved"] = *input.IsApproved
	}
	if input.ApprovedBy != nil {
		set["approvedBy"] = *input.ApprovedBy
	}
	if len(set) == 0 {
		return s.FindOneById(ctx, id)
	}
	return s.UpdateById(ctx, id, basesvc.UpdateData{Set: set})
}

// TrackEvent increments one funnel counter. Unknown events are rejected.
func (s *TemplateService) TrackEvent(ctx context.Context, id primitive.ObjectID, event string) (outreachmodels.EmailTemplate, error) {
	switch event {
	case outreachmodels.EventSent, outreachmodels.EventOpened, outreachmodels.EventClicked,
		outreachmodels.EventReplied, outreachmodels.EventMeetings:
	default:
		var zero outreachmodels.EmailTemplate
		return zero, common.NewError(common.ErrCodeValidationInput,
			fmt.Sprintf("Unknown event %q", event), common.StatusBadRequest, nil)
	}

	_, err := s.Collection().UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$inc": bson.M{"performance." + event: 1},
		"$set": bson.M{"performance.lastUsed": time.Now().UnixMilli()},
	})
	if err != nil {
		var zero outreachmodels.EmailTemplate
		return zero, common.ConvertMongoError(err)
	}
	return s.FindOneById(ctx, id)
}

// Render renders a template against a prospect. When the template uses the
// shippingRates placeholder and the caller did not provide it, a live rate
// table for the Italy zone is injected.
func (s *TemplateService) Render(ctx context.Context, template *outreachmodels.EmailTemplate, values map[string]string, prospect *prospectmodels.Prospect) (*RenderedEmail, error) {
	if values == nil {
		values = map[string]string{}
	}

	needle := "{{" + shippingRatesPlaceholder + "}}"
	usesRates := strings.Contains(template.Subject, needle) ||
		strings.Contains(template.Content.Text, needle) ||
		strings.Contains(template.Content.HTML, needle)
	if usesRates && values[shippingRatesPlaceholder] == "" {
		cards, err := s.knowledgeSvc.ListRates(ctx, "", knowledgemodels.ZoneItaly, knowledgemodels.ServiceStandard)
		if err == nil {
			values[shippingRatesPlaceholder] = knowledgesvc.FormatRatesTable(cards, ratesTableWeight)
		}
	}

	return RenderEmailTemplate(template, values, prospect)
}
