// Package models - tests for the prospect priority score.
package models

import (
	"testing"

	enrichmodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/enrichment/models"
)

func TestComputeScore_BaseOnly(t *testing.T) {
	p := &Prospect{}
	if got := p.ComputeScore(); got != 50 {
		t.Errorf("empty prospect score = %d, want 50", got)
	}
}

func TestComputeScore_ContactAndBusinessBonuses(t *testing.T) {
	p := &Prospect{
		Contact: ProspectContact{Email: "a@b.com", Phone: "+39 055 123456"},
		Company: ProspectCompany{Website: "example.com"},
		BusinessInfo: ProspectBusinessInfo{
			MonthlyShipments: 420,
		},
	}
	// 50 + 10 email + 10 phone + 15 shipments + 5 website
	if got := p.ComputeScore(); got != 90 {
		t.Errorf("score = %d, want 90", got)
	}
}

func TestComputeScore_SizeBonus(t *testing.T) {
	cases := []struct {
		size string
		want int
	}{
		{enrichmodels.SizeStartup, 55},
		{enrichmodels.SizeSmall, 60},
		{enrichmodels.SizeMedium, 65},
		{enrichmodels.SizeLarge, 70},
		{enrichmodels.SizeEnterprise, 75},
		{"unknown", 50},
		{"", 50},
	}
	for _, tc := range cases {
		p := &Prospect{Company: ProspectCompany{Size: tc.size}}
		if got := p.ComputeScore(); got != tc.want {
			t.Errorf("size %q score = %d, want %d", tc.size, got, tc.want)
		}
	}
}

func TestComputeScore_InteractionsMoveScore(t *testing.T) {
	p := &Prospect{
		Interactions: []ProspectInteraction{
			{Outcome: OutcomePositive},
			{Outcome: OutcomePositive},
			{Outcome: OutcomeNegative},
			{Outcome: OutcomeNeutral},
			{Outcome: OutcomeNoResponse},
		},
	}
	// 50 + 5 + 5 - 10, neutral and no-response do not move the score
	if got := p.ComputeScore(); got != 50 {
		t.Errorf("score = %d, want 50", got)
	}
}

func TestComputeScore_ClampedToRange(t *testing.T) {
	low := &Prospect{}
	for i := 0; i < 10; i++ {
		low.Interactions = append(low.Interactions, ProspectInteraction{Outcome: OutcomeNegative})
	}
	if got := low.ComputeScore(); got != 0 {
		t.Errorf("heavily negative score = %d, want 0 (clamped)", got)
	}

	high := &Prospect{
		Contact:      ProspectContact{Email: "a@b.com", Phone: "123"},
		Company:      ProspectCompany{Website: "example.com", Size: enrichmodels.SizeEnterprise},
		BusinessInfo: ProspectBusinessInfo{MonthlyShipments: 10000},
	}
	for i := 0; i < 10; i++ {
		high.Interactions = append(high.Interactions, ProspectInteraction{Outcome: OutcomePositive})
	}
	if got := high.ComputeScore(); got != 100 {
		t.Errorf("heavily positive score = %d, want 100 (clamped)", got)
	}
}

func TestComputeScore_WebsiteOnEitherField(t *testing.T) {
	viaTop := &Prospect{Website: "example.com"}
	if got := viaTop.ComputeScore(); got != 55 {
		t.Errorf("top-level website score = %d, want 55", got)
	}
	viaCompany := &Prospect{Company: ProspectCompany{Website: "example.com"}}
	if got := viaCompany.ComputeScore(); got != 55 {
		t.Errorf("company website score = %d, want 55", got)
	}
}
