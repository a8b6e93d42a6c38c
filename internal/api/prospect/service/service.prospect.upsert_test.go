// Package prospectsvc - tests for the analysis merge helpers.
package prospectsvc

import (
	"testing"
	"time"

	enrichmodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/enrichment/models"
	prospectmodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/prospect/models"
)

func TestMergeEstimates_OverwritesDerivedKeepsManual(t *testing.T) {
	info := prospectmodels.ProspectBusinessInfo{
		MonthlyShipments: 100,
		CurrentCarriers:  []string{"BRT"},
		PainPoints:       []string{"slow deliveries"},
		Priorities:       []string{"cost"},
	}
	estimates := &enrichmodels.BusinessEstimates{
		EstimatedMonthlyVisits:  20000,
		ConversionRate:          2.0,
		MonthlyOrders:           400,
		MonthlyShipments:        420,
		AverageOrderValue:       75,
		EstimatedMonthlyRevenue: 30000,
		CurrentShippingCosts:    1470,
		MainDestinations:        []string{"IT", "DE", "FR"},
		CompanySize:             enrichmodels.SizeMedium,
	}

	mergeEstimates(&info, estimates)

	if info.MonthlyShipments != 420 {
		t.Errorf("monthlyShipments = %d, want 420 (estimate wins)", info.MonthlyShipments)
	}
	if info.MonthlyOrders != 400 || info.EstimatedMonthlyRevenue != 30000 || info.CurrentShippingCosts != 1470 {
		t.Errorf("estimate fields not merged: %+v", info)
	}
	if len(info.CurrentCarriers) != 1 || info.CurrentCarriers[0] != "BRT" {
		t.Errorf("currentCarriers = %v, want kept", info.CurrentCarriers)
	}
	if len(info.PainPoints) != 1 || len(info.Priorities) != 1 {
		t.Errorf("BDR-entered fields must survive the merge: %+v", info)
	}
}

func TestMergeEstimates_NilEstimatesIsNoop(t *testing.T) {
	info := prospectmodels.ProspectBusinessInfo{MonthlyShipments: 100}
	mergeEstimates(&info, nil)
	if info.MonthlyShipments != 100 {
		t.Errorf("monthlyShipments = %d, want 100", info.MonthlyShipments)
	}
}

func TestAnalysisInteraction_SystemAuthored(t *testing.T) {
	now := time.Now().UnixMilli()
	it := analysisInteraction(now)
	if it.Type != prospectmodels.InteractionFollowUp {
		t.Errorf("type = %q, want follow-up", it.Type)
	}
	if it.Outcome != prospectmodels.OutcomePositive {
		t.Errorf("outcome = %q, want positive", it.Outcome)
	}
	if it.Author != interactionAuthorSystem {
		t.Errorf("author = %q, want %q", it.Author, interactionAuthorSystem)
	}
	if it.Date != now {
		t.Errorf("date = %d, want %d", it.Date, now)
	}
}

func TestAnalysisUpdateData_MovesLastContactDate(t *testing.T) {
	now := time.Now().UnixMilli()
	prospect := prospectmodels.Prospect{Score: 45}
	interaction := analysisInteraction(now)

	update := analysisUpdateData(&prospect, interaction, now)

	if got, ok := update.Set["lastContactDate"]; !ok || got != now {
		t.Errorf("set.lastContactDate = %v, want %d", got, now)
	}
	if got, ok := update.Push["interactions"]; !ok || got != interaction {
		t.Errorf("push.interactions = %v, want the analysis interaction", got)
	}
	if update.Set["score"] != 45 {
		t.Errorf("set.score = %v, want 45", update.Set["score"])
	}
}

func TestNewAnalysisProspect_LastContactDate(t *testing.T) {
	now := time.Now().UnixMilli()

	prospect := newAnalysisProspect("example.com", nil, nil, nil, now)

	if prospect.LastContactDate != now {
		t.Errorf("lastContactDate = %d, want %d", prospect.LastContactDate, now)
	}
	if len(prospect.Interactions) != 1 || prospect.Interactions[0].Date != now {
		t.Errorf("interactions = %+v, want one dated %d", prospect.Interactions, now)
	}
	if prospect.Website != "example.com" || prospect.Status != prospectmodels.StatusNew {
		t.Errorf("prospect basics wrong: %+v", prospect)
	}
}

func TestNewWebsiteAnalysis_ReplacesWholesale(t *testing.T) {
	now := time.Now().UnixMilli()
	analysis := &enrichmodels.TrafficAnalysis{}
	raw := &enrichmodels.ProviderPayload{URL: "example.com"}

	wa := newWebsiteAnalysis(analysis, raw, now)

	if !wa.IsEcommerce {
		t.Error("isEcommerce must be true after analysis")
	}
	if wa.Platform != "unknown" {
		t.Errorf("platform = %q, want unknown", wa.Platform)
	}
	if wa.AnalysisDate != now || wa.AnalysisData == nil || wa.AnalysisData.AnalyzedAt != now {
		t.Errorf("analysis timestamps not set: %+v", wa)
	}
	if wa.AnalysisData.Normalized != analysis || wa.AnalysisData.Raw != raw {
		t.Error("analysisData must embed the normalized and raw payloads")
	}
}
