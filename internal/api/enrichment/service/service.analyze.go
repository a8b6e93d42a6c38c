package enrichsvc

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	enrichmodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/enrichment/models"
	prospectmodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/prospect/models"
	prospectsvc "github.com/Mbenve9198/bdr-tool-backend/internal/api/prospect/service"
	"github.com/Mbenve9198/bdr-tool-backend/internal/global"
)

// AnalyzeService orchestrates a website analysis: provider call,
// normalization, business estimates and prospect upsert.
type AnalyzeService struct {
	client      *ApifyClient
	prospectSvc *prospectsvc.ProspectService
}

// NewAnalyzeService creates an AnalyzeService wired to the configured
// provider token and the prospect service.
func NewAnalyzeService() (*AnalyzeService, error) {
	token := ""
	if global.MongoDB_ServerConfig != nil {
		token = global.MongoDB_ServerConfig.ApifyToken
	}
	prospectSvc, err := prospectsvc.NewProspectService()
	if err != nil {
		return nil, fmt.Errorf("create ProspectService: %w", err)
	}
	return &AnalyzeService{
		client:      NewApifyClient(token),
		prospectSvc: prospectSvc,
	}, nil
}

// AnalyzeResult is the outcome of one website analysis.
type AnalyzeResult struct {
	Domain    string
	Analysis  *enrichmodels.TrafficAnalysis
	Estimates *enrichmodels.BusinessEstimates
	Prospect  prospectmodels.Prospect
	Persisted bool // false when the prospect upsert failed and Prospect is a stub
}

// Analyze runs the full enrichment flow for a user-entered URL.
//
// A failed prospect upsert does not fail the analysis: the BDR still gets the
// traffic data, with a non-persisted stub in place of the prospect.
func (s *AnalyzeService) Analyze(ctx context.Context, rawURL string) (*AnalyzeResult, error) {
	domain := ExtractDomain(rawURL)
	if err := ValidateDomain(domain); err != nil {
		return nil, err
	}

	payload, err := s.client.FetchSiteData(ctx, domain)
	if err != nil {
		return nil, err
	}

	analysis := NormalizeSiteData(payload)
	estimates := EstimateBusiness(analysis)

	result := &AnalyzeResult{
		Domain:    domain,
		Analysis:  analysis,
		Estimates: estimates,
	}

	prospect, err := s.prospectSvc.UpsertFromAnalysis(ctx, domain, analysis, estimates, payload)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"domain": domain,
			"error":  err.Error(),
		}).Warn("Prospect upsert failed after analysis, returning stub")

		companyName := domain
		if analysis.Basic.SiteName != "" {
			companyName = analysis.Basic.SiteName
		}
		result.Prospect = prospectmodels.Prospect{
			Company: prospectmodels.ProspectCompany{Name: companyName, Website: domain},
			Website: domain,
		}
		return result, nil
	}

	result.Prospect = prospect
	result.Persisted = true
	return result, nil
}
