package prospectsvc

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "github.com/Mbenve9198/bdr-tool-backend/internal/api/base/service"
	enrichmodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/enrichment/models"
	prospectmodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/prospect/models"
	"github.com/Mbenve9198/bdr-tool-backend/internal/common"
)

// interactionAuthorSystem marks interactions logged by the analyzer, not a BDR.
const interactionAuthorSystem = "automated system"

// UpsertFromAnalysis stores a completed website analysis on the prospect for
// the given domain, creating the prospect when none exists.
//
// On update the websiteAnalysis block is replaced wholesale, estimate-derived
// business fields are overwritten while BDR-entered ones (carriers, pain
// points, priorities) are kept, and a synthetic interaction is appended.
// A duplicate key on insert means a concurrent analyze created the prospect
// first; the update path is retried once.
func (s *ProspectService) UpsertFromAnalysis(ctx context.Context, domain string, analysis *enrichmodels.TrafficAnalysis, estimates *enrichmodels.BusinessEstimates, raw *enrichmodels.ProviderPayload) (prospectmodels.Prospect, error) {
	prospect, err := s.FindOne(ctx, bson.M{"website": domain}, nil)
	if err == nil {
		return s.applyAnalysis(ctx, prospect, domain, analysis, estimates, raw)
	}
	if !errors.Is(err, common.ErrNotFound) {
		return prospect, err
	}

	created, err := s.createFromAnalysis(ctx, domain, analysis, estimates, raw)
	if err == nil {
		return created, nil
	}
	if errors.Is(err, common.ErrMongoDuplicate) {
		// Lost the race with another analyze of the same domain
		prospect, err = s.FindOne(ctx, bson.M{"website": domain}, nil)
		if err != nil {
			return prospect, err
		}
		return s.applyAnalysis(ctx, prospect, domain, analysis, estimates, raw)
	}
	return created, err
}

func (s *ProspectService) applyAnalysis(ctx context.Context, prospect prospectmodels.Prospect, domain string, analysis *enrichmodels.TrafficAnalysis, estimates *enrichmodels.BusinessEstimates, raw *enrichmodels.ProviderPayload) (prospectmodels.Prospect, error) {
	now := time.Now().UnixMilli()

	prospect.WebsiteAnalysis = newWebsiteAnalysis(analysis, raw, now)
	mergeEstimates(&prospect.BusinessInfo, estimates)
	if estimates != nil {
		prospect.Company.Size = estimates.CompanySize
	}
	if prospect.Company.Website == "" {
		prospect.Company.Website = domain
	}

	interaction := analysisInteraction(now)
	prospect.Interactions = append(prospect.Interactions, interaction)
	prospect.LastContactDate = now
	prospect.Score = prospect.ComputeScore()

	return s.UpdateById(ctx, prospect.ID, analysisUpdateData(&prospect, interaction, now))
}

// analysisUpdateData builds the update for an analyzed prospect. The appended
// interaction counts as a contact, so lastContactDate moves with it.
func analysisUpdateData(prospect *prospectmodels.Prospect, interaction prospectmodels.ProspectInteraction, now int64) basesvc.UpdateData {
	return basesvc.UpdateData{
		Set: map[string]interface{}{
			"websiteAnalysis": prospect.WebsiteAnalysis,
			"businessInfo":    prospect.BusinessInfo,
			"company":         prospect.Company,
			"score":           prospect.Score,
			"lastContactDate": now,
		},
		Push: map[string]interface{}{
			"interactions": interaction,
		},
	}
}

func (s *ProspectService) createFromAnalysis(ctx context.Context, domain string, analysis *enrichmodels.TrafficAnalysis, estimates *enrichmodels.BusinessEstimates, raw *enrichmodels.ProviderPayload) (prospectmodels.Prospect, error) {
	prospect := newAnalysisProspect(domain, analysis, estimates, raw, time.Now().UnixMilli())
	return s.InsertOne(ctx, prospect)
}

// newAnalysisProspect builds a fresh prospect from an analysis result.
func newAnalysisProspect(domain string, analysis *enrichmodels.TrafficAnalysis, estimates *enrichmodels.BusinessEstimates, raw *enrichmodels.ProviderPayload, now int64) prospectmodels.Prospect {
	companyName := domain
	if analysis != nil && analysis.Basic.SiteName != "" {
		companyName = analysis.Basic.SiteName
	}
	size := ""
	if estimates != nil {
		size = estimates.CompanySize
	}

	prospect := prospectmodels.Prospect{
		Company: prospectmodels.ProspectCompany{
			Name:     companyName,
			Website:  domain,
			Industry: "E-commerce",
			Size:     size,
		},
		Website:         domain,
		WebsiteAnalysis: newWebsiteAnalysis(analysis, raw, now),
		Status:          prospectmodels.StatusNew,
		Source:          "website-analysis",
		IsActive:        true,
		Interactions:    []prospectmodels.ProspectInteraction{analysisInteraction(now)},
		LastContactDate: now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	mergeEstimates(&prospect.BusinessInfo, estimates)
	prospect.Score = prospect.ComputeScore()
	return prospect
}

func newWebsiteAnalysis(analysis *enrichmodels.TrafficAnalysis, raw *enrichmodels.ProviderPayload, now int64) *prospectmodels.ProspectWebsiteAnalysis {
	return &prospectmodels.ProspectWebsiteAnalysis{
		IsEcommerce:  true,
		Platform:     "unknown",
		AnalysisDate: now,
		AnalysisData: &prospectmodels.ProspectAnalysisData{
			Normalized: analysis,
			Raw:        raw,
			AnalyzedAt: now,
		},
	}
}

// mergeEstimates overwrites the estimate-derived fields and keeps the
// BDR-entered ones.
func mergeEstimates(info *prospectmodels.ProspectBusinessInfo, estimates *enrichmodels.BusinessEstimates) {
	if estimates == nil {
		return
	}
	info.EstimatedMonthlyVisits = estimates.EstimatedMonthlyVisits
	info.ConversionRate = estimates.ConversionRate
	info.MonthlyOrders = estimates.MonthlyOrders
	info.MonthlyShipments = estimates.MonthlyShipments
	info.AverageOrderValue = estimates.AverageOrderValue
	info.EstimatedMonthlyRevenue = estimates.EstimatedMonthlyRevenue
	info.CurrentShippingCosts = estimates.CurrentShippingCosts
	info.MainDestinations = estimates.MainDestinations
}

func analysisInteraction(now int64) prospectmodels.ProspectInteraction {
	return prospectmodels.ProspectInteraction{
		Type:    prospectmodels.InteractionFollowUp,
		Date:    now,
		Notes:   "Website traffic analysis completed automatically",
		Outcome: prospectmodels.OutcomePositive,
		Author:  interactionAuthorSystem,
	}
}
