// Package enrichsvc - tests for normalization and insight derivation.
package enrichsvc

import (
	"testing"

	enrichmodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/enrichment/models"
)

func fullPayload(visits float64) *enrichmodels.ProviderPayload {
	return &enrichmodels.ProviderPayload{
		URL:         "example.com",
		Name:        "Example Shop",
		Title:       "Example Shop - Online Store",
		Description: "An example store",
		Category:    "E-commerce/Fashion and Apparel",
		ScrapedAt:   "2026-08-01T00:00:00Z",
		GlobalRank:  &enrichmodels.ProviderRank{Rank: 123456},
		Engagements: &enrichmodels.ProviderEngagements{
			Visits:       visits,
			TimeOnSite:   185, // seconds
			PagePerVisit: 4.26,
			BounceRate:   0.347,
		},
		TrafficSources: &enrichmodels.ProviderTrafficSources{
			Direct:    0.35,
			Search:    0.42,
			Social:    0.08,
			Referrals: 0.1,
			Mail:      0.05,
		},
		TopCountries: []enrichmodels.ProviderCountry{
			{CountryCode: "IT", CountryName: "Italy", VisitsShare: 0.6},
			{CountryCode: "DE", CountryName: "Germany", VisitsShare: 0.15},
			{CountryCode: "FR", CountryName: "France", VisitsShare: 0.12},
		},
		TopKeywords: []enrichmodels.ProviderKeyword{
			{Name: "example shop", EstimatedValue: 1.2, Volume: 9000},
			{Name: "example", EstimatedValue: 0.8, Volume: 50000},
			{Name: "shop online", EstimatedValue: 0.5, Volume: 2000},
			{Name: "example store", EstimatedValue: 0.4, Volume: 1500},
			{Name: "example sale", EstimatedValue: 0.3, Volume: 800},
			{Name: "dropped keyword", EstimatedValue: 0.1, Volume: 100},
		},
	}
}

func TestNormalizeSiteData_UnitConversions(t *testing.T) {
	a := NormalizeSiteData(fullPayload(20000))

	if a.Traffic.TotalVisits != 20000 {
		t.Errorf("totalVisits = %d, want 20000", a.Traffic.TotalVisits)
	}
	// 185 seconds -> 3 minutes
	if a.Traffic.TimeOnSite != 3 {
		t.Errorf("timeOnSite = %d, want 3 minutes", a.Traffic.TimeOnSite)
	}
	// 4.26 -> 4.3, one decimal
	if a.Traffic.PagePerVisit != 4.3 {
		t.Errorf("pagePerVisit = %v, want 4.3", a.Traffic.PagePerVisit)
	}
	// 0.347 -> 35%
	if a.Traffic.BounceRate != 35 {
		t.Errorf("bounceRate = %d, want 35", a.Traffic.BounceRate)
	}
	if a.Sources.Search != 42 || a.Sources.Direct != 35 || a.Sources.Mail != 5 {
		t.Errorf("sources not converted to percentages: %+v", a.Sources)
	}
}

func TestNormalizeSiteData_CountriesAndKeywords(t *testing.T) {
	a := NormalizeSiteData(fullPayload(20000))

	if len(a.Geography.TopCountries) != 3 {
		t.Fatalf("topCountries = %d entries, want 3", len(a.Geography.TopCountries))
	}
	it := a.Geography.TopCountries[0]
	if it.VisitsShare != 60 {
		t.Errorf("IT visitsShare = %d, want 60", it.VisitsShare)
	}
	if it.EstimatedVisits != 12000 {
		t.Errorf("IT estimatedVisits = %d, want 12000", it.EstimatedVisits)
	}

	if len(a.Keywords.TopKeywords) != 5 {
		t.Errorf("topKeywords = %d entries, want 5 (capped)", len(a.Keywords.TopKeywords))
	}
}

func TestNormalizeSiteData_ToleratesEmptyPayload(t *testing.T) {
	a := NormalizeSiteData(&enrichmodels.ProviderPayload{URL: "tiny.example"})

	if a.Basic.URL != "tiny.example" {
		t.Errorf("url = %q, want tiny.example", a.Basic.URL)
	}
	if a.Traffic.TotalVisits != 0 || a.Ranking.GlobalRank != 0 {
		t.Errorf("missing blocks must normalize to zero values: %+v", a)
	}
	if a.Geography.TopCountries == nil || a.Keywords.TopKeywords == nil {
		t.Error("lists must be empty, not nil")
	}
	if len(a.BdrInsights) != 0 {
		t.Errorf("insights = %d, want none for an empty payload", len(a.BdrInsights))
	}
}

func TestDeriveInsights_HighTrafficInternationalEngagedEcommerce(t *testing.T) {
	p := fullPayload(150000)
	p.Engagements.BounceRate = 0.3
	p.Engagements.PagePerVisit = 4.2
	p.Category = "Ecommerce"
	p.TopCountries = []enrichmodels.ProviderCountry{
		{CountryCode: "IT", VisitsShare: 0.4},
		{CountryCode: "DE", VisitsShare: 0.15},
		{CountryCode: "FR", VisitsShare: 0.12},
		{CountryCode: "ES", VisitsShare: 0.1},
		{CountryCode: "US", VisitsShare: 0.08},
	}

	a := NormalizeSiteData(p)

	if len(a.BdrInsights) != 4 {
		t.Fatalf("insights = %d, want 4: %+v", len(a.BdrInsights), a.BdrInsights)
	}

	byType := map[string]enrichmodels.Insight{}
	for _, in := range a.BdrInsights {
		byType[in.Type] = in
	}
	if byType[enrichmodels.InsightTrafficVolume].Priority != enrichmodels.PriorityHigh {
		t.Errorf("volume insight priority = %q, want high", byType[enrichmodels.InsightTrafficVolume].Priority)
	}
	if byType[enrichmodels.InsightInternationalTraffic].Priority != enrichmodels.PriorityHigh {
		t.Errorf("international insight priority = %q, want high (4 foreign countries)", byType[enrichmodels.InsightInternationalTraffic].Priority)
	}
	if byType[enrichmodels.InsightEngagement].Priority != enrichmodels.PriorityMedium {
		t.Errorf("engagement insight priority = %q, want medium", byType[enrichmodels.InsightEngagement].Priority)
	}
	if byType[enrichmodels.InsightBusinessType].Priority != enrichmodels.PriorityHigh {
		t.Errorf("business type insight priority = %q, want high", byType[enrichmodels.InsightBusinessType].Priority)
	}
}

func TestDeriveInsights_VolumeTiersAreExclusive(t *testing.T) {
	cases := []struct {
		visits       float64
		wantPriority string // "" = no volume insight
	}{
		{150000, enrichmodels.PriorityHigh},
		{20000, enrichmodels.PriorityMedium},
		{5000, enrichmodels.PriorityLow},
		{500, ""},
	}
	for _, tc := range cases {
		p := &enrichmodels.ProviderPayload{
			Engagements: &enrichmodels.ProviderEngagements{Visits: tc.visits},
		}
		a := NormalizeSiteData(p)

		var volume []enrichmodels.Insight
		for _, in := range a.BdrInsights {
			if in.Type == enrichmodels.InsightTrafficVolume {
				volume = append(volume, in)
			}
		}
		if tc.wantPriority == "" {
			if len(volume) != 0 {
				t.Errorf("visits %v: got volume insight %+v, want none", tc.visits, volume)
			}
			continue
		}
		if len(volume) != 1 {
			t.Errorf("visits %v: got %d volume insights, want exactly 1", tc.visits, len(volume))
			continue
		}
		if volume[0].Priority != tc.wantPriority {
			t.Errorf("visits %v: priority = %q, want %q", tc.visits, volume[0].Priority, tc.wantPriority)
		}
	}
}

func TestDeriveInsights_ItalyDoesNotCountAsInternational(t *testing.T) {
	p := &enrichmodels.ProviderPayload{
		Engagements: &enrichmodels.ProviderEngagements{Visits: 50000},
		TopCountries: []enrichmodels.ProviderCountry{
			{CountryCode: "IT", VisitsShare: 0.9},
			{CountryCode: "DE", VisitsShare: 0.04}, // below the 5% floor
		},
	}
	a := NormalizeSiteData(p)
	for _, in := range a.BdrInsights {
		if in.Type == enrichmodels.InsightInternationalTraffic {
			t.Errorf("unexpected international insight: %+v", in)
		}
	}
}
