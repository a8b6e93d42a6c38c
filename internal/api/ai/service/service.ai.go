package aisvc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/Mbenve9198/bdr-tool-backend/internal/api/base/service"
	knowledgemodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/knowledge/models"
	knowledgesvc "github.com/Mbenve9198/bdr-tool-backend/internal/api/knowledge/service"
	outreachmodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/outreach/models"
	outreachsvc "github.com/Mbenve9198/bdr-tool-backend/internal/api/outreach/service"
	prospectmodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/prospect/models"
	prospectsvc "github.com/Mbenve9198/bdr-tool-backend/internal/api/prospect/service"
	"github.com/Mbenve9198/bdr-tool-backend/internal/common"
	"github.com/Mbenve9198/bdr-tool-backend/internal/global"
)

// relevantKnowledgeLimit caps the knowledge pulled into a generated script.
const relevantKnowledgeLimit = 10

// ratesTableWeight is the reference parcel weight for appended rate tables.
const ratesTableWeight = 2.0

// AIService assembles outreach material from the prospect record, the
// knowledge base and the stored scripts/templates, with optional AI research
// on top.
type AIService struct {
	prospectSvc  *prospectsvc.ProspectService
	knowledgeSvc *knowledgesvc.KnowledgeService
	scriptSvc    *outreachsvc.ScriptService
	templateSvc  *outreachsvc.TemplateService
	perplexity   *PerplexityClient
}

// NewAIService creates an AIService.
func NewAIService() (*AIService, error) {
	prospectSvc, err := prospectsvc.NewProspectService()
	if err != nil {
		return nil, fmt.Errorf("create ProspectService: %w", err)
	}
	knowledgeSvc, err := knowledgesvc.NewKnowledgeService()
	if err != nil {
		return nil, fmt.Errorf("create KnowledgeService: %w", err)
	}
	scriptSvc, err := outreachsvc.NewScriptService()
	if err != nil {
		return nil, fmt.Errorf("create ScriptService: %w", err)
	}
	templateSvc, err := outreachsvc.NewTemplateService()
	if err != nil {
		return nil, fmt.Errorf("create TemplateService: %w", err)
	}

	apiKey := ""
	if global.MongoDB_ServerConfig != nil {
		apiKey = global.MongoDB_ServerConfig.PerplexityApiKey
	}

	return &AIService{
		prospectSvc:  prospectSvc,
		knowledgeSvc: knowledgeSvc,
		scriptSvc:    scriptSvc,
		templateSvc:  templateSvc,
		perplexity:   NewPerplexityClient(apiKey),
	}, nil
}

// relevantKnowledge pulls the knowledge items most useful on a call with
// this prospect: industry-tagged material plus the argumentation categories.
func (s *AIService) relevantKnowledge(ctx context.Context, prospect *prospectmodels.Prospect) ([]knowledgemodels.KnowledgeItem, error) {
	tags := []string{"benefits", "objections"}
	if prospect.Company.Industry != "" {
		tags = append(tags, strings.ToLower(prospect.Company.Industry))
	}

	filter := bson.M{
		"isActive": true,
		"$or": []bson.M{
			{"tags": bson.M{"$in": tags}},
			{"category": bson.M{"$in": []string{
				knowledgemodels.CategoryPlatformFeatures,
				knowledgemodels.CategoryObjectionHandling,
				knowledgemodels.CategoryPricing,
			}}},
		},
	}
	opts := mongoopts.Find().
		SetSort(bson.D{{Key: "priority", Value: -1}}).
		SetLimit(relevantKnowledgeLimit)
	return s.knowledgeSvc.Find(ctx, filter, opts)
}

// GeneratedScript is the outcome of a call script generation.
type GeneratedScript struct {
	ScriptID      *primitive.ObjectID             `json:"scriptId,omitempty"`
	Source        string                          `json:"source"` // library | generated
	Structure     *outreachmodels.ScriptStructure `json:"structure"`
	KnowledgeUsed []string                        `json:"knowledgeUsed"`
}

// GenerateCallScript builds a personalized cold call script for a prospect.
// The best performing stored script for the prospect's industry is rendered
// when one exists; otherwise a script is assembled from the knowledge base.
func (s *AIService) GenerateCallScript(ctx context.Context, prospectID primitive.ObjectID) (*GeneratedScript, error) {
	prospect, err := s.prospectSvc.FindOneById(ctx, prospectID)
	if err != nil {
		return nil, err
	}

	knowledge, err := s.relevantKnowledge(ctx, &prospect)
	if err != nil {
		return nil, err
	}
	knowledgeUsed := make([]string, 0, len(knowledge))
	for _, item := range knowledge {
		knowledgeUsed = append(knowledgeUsed, item.Title)
	}

	best, err := s.scriptSvc.BestScript(ctx, outreachmodels.ScriptColdCall, prospect.Company.Industry)
	if err == nil {
		structure, renderErr := outreachsvc.RenderScriptStructure(&best, nil, &prospect)
		if renderErr != nil {
			// Scripts with unresolved required variables still have value raw
			structure = &best.Structure
		}
		return &GeneratedScript{
			ScriptID:      &best.ID,
			Source:        "library",
			Structure:     structure,
			KnowledgeUsed: knowledgeUsed,
		}, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	return &GeneratedScript{
		Source:        "generated",
		Structure:     buildScriptStructure(&prospect, knowledge),
		KnowledgeUsed: knowledgeUsed,
	}, nil
}

// buildScriptStructure assembles a cold call script from the prospect record
// and the knowledge base when no stored script fits.
func buildScriptStructure(prospect *prospectmodels.Prospect, knowledge []knowledgemodels.KnowledgeItem) *outreachmodels.ScriptStructure {
	contactName := prospect.Contact.Name
	if contactName == "" {
		contactName = "buongiorno"
	}
	companyName := prospect.Company.Name

	hook := fmt.Sprintf("Ho dato un'occhiata a %s e ho visto che spedite online.", companyName)
	if prospect.BusinessInfo.MonthlyShipments > 0 {
		hook = fmt.Sprintf("Stimiamo che %s gestisca circa %d spedizioni al mese: a quei volumi ogni euro risparmiato per pacco conta.",
			companyName, prospect.BusinessInfo.MonthlyShipments)
	}

	structure := &outreachmodels.ScriptStructure{
		Opener: fmt.Sprintf("Ciao %s, sono un BDR di Sendcloud. La chiamo perche' aiutiamo e-commerce come %s a semplificare le spedizioni.",
			contactName, companyName),
		Hook:             hook,
		ValueProposition: "Con un'unica integrazione avete accesso a piu' corrieri, tariffe negoziate e tracking automatico per i vostri clienti.",
		Questions: []outreachmodels.ScriptQuestion{
			{Question: "Quanti ordini spedite in un mese tipico?", Purpose: "qualify volume"},
			{Question: "Con quali corrieri lavorate oggi?", Purpose: "map current setup"},
			{Question: "Qual e' la parte delle spedizioni che vi fa perdere piu' tempo?", Purpose: "surface pain"},
		},
		Closing:   "Le andrebbe una demo di 20 minuti questa settimana per vedere le tariffe sui vostri volumi reali?",
		NextSteps: "Fissare la demo e inviare un recap via email con le tariffe indicative.",
	}

	for _, point := range prospect.BusinessInfo.PainPoints {
		structure.Questions = append(structure.Questions, outreachmodels.ScriptQuestion{
			Question: fmt.Sprintf("Ho letto che %s: quanto vi pesa oggi?", point),
			Purpose:  "validate known pain point",
		})
	}

	for _, item := range knowledge {
		if item.Category == knowledgemodels.CategoryObjectionHandling {
			structure.ObjectionHandling = append(structure.ObjectionHandling, outreachmodels.ObjectionResponse{
				Objection: item.Title,
				Response:  item.Content,
			})
		}
	}

	return structure
}

// GeneratedEmail is the outcome of an email generation.
type GeneratedEmail struct {
	TemplateID        primitive.ObjectID             `json:"templateId"`
	TemplateName      string                         `json:"templateName"`
	Rendered          *outreachsvc.RenderedEmail     `json:"rendered"`
	Metrics           outreachmodels.TemplateMetrics `json:"metrics"`
	RatesIncluded     bool                           `json:"ratesIncluded"`
	PersonalizedIntro string                         `json:"personalizedIntro,omitempty"`
}

// GenerateEmailTemplate renders the best approved cold outreach template for
// a prospect. When the AI research provider is configured, a personalized
// opening line is added; provider failures degrade to the plain rendering.
func (s *AIService) GenerateEmailTemplate(ctx context.Context, prospectID primitive.ObjectID, includeRates bool) (*GeneratedEmail, error) {
	prospect, err := s.prospectSvc.FindOneById(ctx, prospectID)
	if err != nil {
		return nil, err
	}

	template, err := s.templateSvc.BestTemplate(ctx, outreachmodels.TemplateColdOutreach, prospect.Company.Industry)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrCodeBusinessState,
				"No approved cold outreach template available", common.StatusNotFound, nil)
		}
		return nil, err
	}

	// Render injects the rates table when the template uses the
	// shippingRates placeholder; values carries the injection back
	values := map[string]string{}
	rendered, err := s.templateSvc.Render(ctx, &template, values, &prospect)
	if err != nil {
		return nil, err
	}

	ratesIncluded := values["shippingRates"] != ""
	if includeRates && !ratesIncluded {
		cards, ratesErr := s.knowledgeSvc.ListRates(ctx, "", knowledgemodels.ZoneItaly, knowledgemodels.ServiceStandard)
		if ratesErr == nil && len(cards) > 0 {
			rendered.Text += "\n\nLe nostre tariffe indicative (pacco da 2 kg):\n" +
				knowledgesvc.FormatRatesTable(cards, ratesTableWeight)
			ratesIncluded = true
		}
	}

	result := &GeneratedEmail{
		TemplateID:    template.ID,
		TemplateName:  template.Name,
		Rendered:      rendered,
		Metrics:       template.Metrics(),
		RatesIncluded: ratesIncluded,
	}

	if s.perplexity.Configured() {
		intro, askErr := s.perplexity.Ask(ctx,
			"Sei un BDR di Sendcloud. Scrivi una sola frase di apertura personalizzata per una email commerciale, in italiano.",
			fmt.Sprintf("Azienda: %s, settore: %s, sito: %s",
				prospect.Company.Name, prospect.Company.Industry, prospect.Website),
			300)
		if askErr != nil {
			logrus.WithField("error", askErr.Error()).Warn("Email personalization failed, sending plain rendering")
		} else {
			result.PersonalizedIntro = strings.TrimSpace(intro)
		}
	}

	return result, nil
}

// ResearchResult is the outcome of a market research run.
type ResearchResult struct {
	Research   string                  `json:"research"`
	PainPoints []string                `json:"painPoints"`
	Prospect   prospectmodels.Prospect `json:"prospect"`
}

// MarketResearch researches a prospect's company and merges the discovered
// pain points into the prospect record.
func (s *AIService) MarketResearch(ctx context.Context, prospectID primitive.ObjectID) (*ResearchResult, error) {
	prospect, err := s.prospectSvc.FindOneById(ctx, prospectID)
	if err != nil {
		return nil, err
	}

	research, err := s.perplexity.Ask(ctx,
		"Sei un analista di mercato per una piattaforma di spedizioni e-commerce. Rispondi in italiano con un elenco puntato.",
		fmt.Sprintf("Quali sono i principali problemi di spedizione e logistica per %s (%s, settore %s)? Elenca al massimo 5 punti, uno per riga, preceduti da '-'.",
			prospect.Company.Name, prospect.Website, prospect.Company.Industry),
		300)
	if err != nil {
		return nil, err
	}

	painPoints := ExtractBulletPoints(research)
	if len(painPoints) > 0 {
		updated, updateErr := s.prospectSvc.UpdateById(ctx, prospect.ID, basesvc.UpdateData{
			AddToSet: map[string]interface{}{
				"businessInfo.painPoints": bson.M{"$each": painPoints},
			},
		})
		if updateErr != nil {
			logrus.WithField("error", updateErr.Error()).Warn("Could not store researched pain points")
		} else {
			prospect = updated
		}
	}

	return &ResearchResult{
		Research:   research,
		PainPoints: painPoints,
		Prospect:   prospect,
	}, nil
}

// ExtractBulletPoints pulls "- item" lines out of a research answer.
func ExtractBulletPoints(text string) []string {
	points := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		for _, prefix := range []string{"- ", "* ", "• "} {
			if strings.HasPrefix(line, prefix) {
				if point := strings.TrimSpace(strings.TrimPrefix(line, prefix)); point != "" {
					points = append(points, point)
				}
				break
			}
		}
	}
	return points
}

// FollowUpSuggestion is one recommended next touch.
type FollowUpSuggestion struct {
	Action   string `json:"action"`
	Timing   string `json:"timing"`
	Priority string `json:"priority"`
	Reason   string `json:"reason"`
}

// SuggestFollowUp recommends the next touches for a prospect based on its
// pipeline status and interaction history.
func (s *AIService) SuggestFollowUp(ctx context.Context, prospectID primitive.ObjectID) ([]FollowUpSuggestion, error) {
	prospect, err := s.prospectSvc.FindOneById(ctx, prospectID)
	if err != nil {
		return nil, err
	}

	days := 0
	if prospect.LastContactDate > 0 {
		days = int(time.Since(time.UnixMilli(prospect.LastContactDate)).Hours() / 24)
	}

	lastOutcome := ""
	if n := len(prospect.Interactions); n > 0 {
		lastOutcome = prospect.Interactions[n-1].Outcome
	}

	return FollowUpRules(prospect.Status, days, lastOutcome), nil
}

// FollowUpRules applies the follow-up rule table.
func FollowUpRules(status string, daysSinceContact int, lastOutcome string) []FollowUpSuggestion {
	suggestions := []FollowUpSuggestion{}

	if status == prospectmodels.StatusContacted && daysSinceContact > 7 {
		suggestions = append(suggestions, FollowUpSuggestion{
			Action:   "email",
			Timing:   "immediately",
			Priority: "high",
			Reason:   fmt.Sprintf("No touch in %d days after first contact", daysSinceContact),
		})
	}
	if status == prospectmodels.StatusInterested && daysSinceContact > 3 {
		suggestions = append(suggestions, FollowUpSuggestion{
			Action:   "call",
			Timing:   "within 24 hours",
			Priority: "high",
			Reason:   "Interested prospects cool down fast",
		})
	}
	if lastOutcome == prospectmodels.OutcomePositive {
		suggestions = append(suggestions, FollowUpSuggestion{
			Action:   "proposal",
			Timing:   "within 48 hours",
			Priority: "medium",
			Reason:   "Last interaction was positive, keep the momentum",
		})
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, FollowUpSuggestion{
			Action:   "email",
			Timing:   "this week",
			Priority: "low",
			Reason:   "Keep the relationship warm",
		})
	}
	return suggestions
}
