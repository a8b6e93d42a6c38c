// Package knowledgesvc - tests for zone resolution and rate card pricing.
package knowledgesvc

import (
	"strings"
	"testing"

	knowledgemodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/knowledge/models"
)

func TestDetermineZone(t *testing.T) {
	cases := []struct {
		destination string
		want        string
	}{
		{"Italia", knowledgemodels.ZoneItaly},
		{"italy", knowledgemodels.ZoneItaly},
		{"IT", knowledgemodels.ZoneItaly},
		{"  Italia  ", knowledgemodels.ZoneItaly},
		{"Francia", knowledgemodels.ZoneEU},
		{"france", knowledgemodels.ZoneEU},
		{"Germania", knowledgemodels.ZoneEU},
		{"germany", knowledgemodels.ZoneEU},
		{"Spagna", knowledgemodels.ZoneEU},
		{"spain", knowledgemodels.ZoneEU},
		{"USA", knowledgemodels.ZoneInternational},
		{"Giappone", knowledgemodels.ZoneInternational},
		{"", knowledgemodels.ZoneInternational},
		// city + country resolves by substring
		{"Milano, Italia", knowledgemodels.ZoneItaly},
		{"Lyon, France", knowledgemodels.ZoneEU},
		{"Berlino, Germania", knowledgemodels.ZoneEU},
		{"New York, USA", knowledgemodels.ZoneInternational},
	}
	for _, tc := range cases {
		if got := DetermineZone(tc.destination); got != tc.want {
			t.Errorf("DetermineZone(%q) = %q, want %q", tc.destination, got, tc.want)
		}
	}
}

func TestRateCardPrice(t *testing.T) {
	info := &knowledgemodels.CarrierInfo{BasePrice: 5.50, WeightMultiplier: 1.20}

	if got := RateCardPrice(info, 2); got != 7.90 {
		t.Errorf("price for 2kg = %v, want 7.90", got)
	}
	if got := RateCardPrice(info, 0.5); got != 6.10 {
		t.Errorf("price for 0.5kg = %v, want 6.10", got)
	}
	// rounded to cents
	info2 := &knowledgemodels.CarrierInfo{BasePrice: 4.99, WeightMultiplier: 0.333}
	if got := RateCardPrice(info2, 1); got != 5.32 {
		t.Errorf("price = %v, want 5.32", got)
	}
}

func TestDeliveryTimeFor_MatrixAndFallback(t *testing.T) {
	if got := DeliveryTimeFor("DHL", knowledgemodels.ZoneItaly, knowledgemodels.ServiceExpress); got != "1 giorno lavorativo" {
		t.Errorf("DHL Italia express = %q", got)
	}
	if got := DeliveryTimeFor("UPS", knowledgemodels.ZoneInternational, knowledgemodels.ServiceStandard); got != "4-6 giorni lavorativi" {
		t.Errorf("UPS International standard = %q", got)
	}
	// unknown carrier falls back
	if got := DeliveryTimeFor("BRT", knowledgemodels.ZoneItaly, knowledgemodels.ServiceStandard); got != fallbackDeliveryTime {
		t.Errorf("unknown carrier = %q, want fallback %q", got, fallbackDeliveryTime)
	}
	// unknown service falls back
	if got := DeliveryTimeFor("DHL", knowledgemodels.ZoneItaly, "economy"); got != fallbackDeliveryTime {
		t.Errorf("unknown service = %q, want fallback", got)
	}
}

func TestSelectCarrierOptions(t *testing.T) {
	// cheapest first, as CalculateRates produces them
	all := []RateOption{
		{Carrier: "DHL", Price: 7.90},
		{Carrier: "UPS", Price: 8.20},
		{Carrier: "GLS", Price: 9.10},
	}

	options, best, savings := SelectCarrierOptions(all, []string{"ups", " DHL "})
	if len(options) != 2 {
		t.Fatalf("kept %d options, want 2", len(options))
	}
	if options[0].Carrier != "DHL" || options[1].Carrier != "UPS" {
		t.Errorf("ordering not preserved: %v", options)
	}
	if best == nil || best.Carrier != "DHL" {
		t.Errorf("best = %+v, want DHL", best)
	}
	if savings != 0.30 {
		t.Errorf("savings = %v, want 0.30", savings)
	}
}

func TestSelectCarrierOptions_NoMatch(t *testing.T) {
	all := []RateOption{{Carrier: "DHL", Price: 7.90}}

	options, best, savings := SelectCarrierOptions(all, []string{"BRT"})
	if len(options) != 0 || best != nil || savings != 0 {
		t.Errorf("no requested carrier matched, got options=%v best=%+v savings=%v", options, best, savings)
	}
}

func TestFormatRatesTable(t *testing.T) {
	cards := []knowledgemodels.KnowledgeItem{
		{
			Title: "DHL Italia standard",
			CarrierInfo: &knowledgemodels.CarrierInfo{
				Carrier: "DHL", Zone: knowledgemodels.ZoneItaly,
				Service: knowledgemodels.ServiceStandard,
				BasePrice: 5.50, WeightMultiplier: 1.20,
			},
		},
		{Title: "no card"},
	}

	table := FormatRatesTable(cards, 2)
	if !strings.Contains(table, "DHL") {
		t.Errorf("table missing carrier: %q", table)
	}
	if !strings.Contains(table, "7.90 EUR") {
		t.Errorf("table missing computed price: %q", table)
	}
	if strings.Contains(table, "no card") {
		t.Error("items without a rate card must be skipped")
	}

	if got := FormatRatesTable(nil, 2); got != "" {
		t.Errorf("empty cards must render empty, got %q", got)
	}
}
