// Package enrichsvc - tests for the business estimator.
package enrichsvc

import (
	"testing"

	enrichmodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/enrichment/models"
)

func analysisWithVisits(visits int64) *enrichmodels.TrafficAnalysis {
	return &enrichmodels.TrafficAnalysis{
		Traffic: enrichmodels.TrafficInfo{TotalVisits: visits},
		Geography: enrichmodels.GeographyInfo{TopCountries: []enrichmodels.CountryShare{
			{CountryCode: "IT", VisitsShare: 60},
			{CountryCode: "DE", VisitsShare: 15},
			{CountryCode: "FR", VisitsShare: 12},
			{CountryCode: "ES", VisitsShare: 8},
		}},
	}
}

func TestEstimateBusiness_ReferenceShop(t *testing.T) {
	e := EstimateBusiness(analysisWithVisits(20000))

	if e.MonthlyOrders != 400 {
		t.Errorf("monthlyOrders = %d, want 400", e.MonthlyOrders)
	}
	if e.MonthlyShipments != 420 {
		t.Errorf("monthlyShipments = %d, want 420", e.MonthlyShipments)
	}
	if e.CurrentShippingCosts != 1470 {
		t.Errorf("currentShippingCosts = %v, want 1470", e.CurrentShippingCosts)
	}
	if e.EstimatedMonthlyRevenue != 30000 {
		t.Errorf("estimatedMonthlyRevenue = %v, want 30000", e.EstimatedMonthlyRevenue)
	}
	if e.ConversionRate != 2.0 {
		t.Errorf("conversionRate = %v, want 2.0", e.ConversionRate)
	}
	if e.AverageOrderValue != 75 {
		t.Errorf("averageOrderValue = %v, want 75", e.AverageOrderValue)
	}
}

func TestEstimateBusiness_TopThreeDestinations(t *testing.T) {
	e := EstimateBusiness(analysisWithVisits(20000))
	want := []string{"IT", "DE", "FR"}
	if len(e.MainDestinations) != len(want) {
		t.Fatalf("mainDestinations = %v, want %v", e.MainDestinations, want)
	}
	for i, code := range want {
		if e.MainDestinations[i] != code {
			t.Errorf("mainDestinations[%d] = %q, want %q", i, e.MainDestinations[i], code)
		}
	}
}

func TestCompanySizeForVisits_Tiers(t *testing.T) {
	cases := []struct {
		visits int64
		want   string
	}{
		{500, enrichmodels.SizeStartup},
		{1000, enrichmodels.SizeStartup},
		{1001, enrichmodels.SizeSmall},
		{10000, enrichmodels.SizeSmall},
		{10001, enrichmodels.SizeMedium},
		{100000, enrichmodels.SizeMedium},
		{100001, enrichmodels.SizeLarge},
		{500000, enrichmodels.SizeLarge},
		{500001, enrichmodels.SizeEnterprise},
	}
	for _, tc := range cases {
		if got := companySizeForVisits(tc.visits); got != tc.want {
			t.Errorf("visits %d: size = %q, want %q", tc.visits, got, tc.want)
		}
	}
}

func TestEstimateBusiness_SmallShopIsStartup(t *testing.T) {
	e := EstimateBusiness(analysisWithVisits(500))
	if e.CompanySize != enrichmodels.SizeStartup {
		t.Errorf("companySize = %q, want startup", e.CompanySize)
	}
	if e.MonthlyOrders != 10 {
		t.Errorf("monthlyOrders = %d, want 10", e.MonthlyOrders)
	}
}
