// Package aisvc - tests for the follow-up rules and research parsing.
package aisvc

import (
	"strings"
	"testing"

	knowledgemodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/knowledge/models"
	prospectmodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/prospect/models"
)

func TestFollowUpRules(t *testing.T) {
	cases := []struct {
		name        string
		status      string
		days        int
		lastOutcome string
		wantActions []string
	}{
		{
			name:        "contacted and stale",
			status:      prospectmodels.StatusContacted,
			days:        10,
			wantActions: []string{"email"},
		},
		{
			name:        "contacted but fresh",
			status:      prospectmodels.StatusContacted,
			days:        2,
			wantActions: []string{"email"}, // default suggestion only
		},
		{
			name:        "interested cooling down",
			status:      prospectmodels.StatusInterested,
			days:        5,
			wantActions: []string{"call"},
		},
		{
			name:        "positive last interaction",
			status:      prospectmodels.StatusNew,
			days:        1,
			lastOutcome: prospectmodels.OutcomePositive,
			wantActions: []string{"proposal"},
		},
		{
			name:        "stale and positive stack up",
			status:      prospectmodels.StatusContacted,
			days:        12,
			lastOutcome: prospectmodels.OutcomePositive,
			wantActions: []string{"email", "proposal"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			suggestions := FollowUpRules(tc.status, tc.days, tc.lastOutcome)
			if len(suggestions) != len(tc.wantActions) {
				t.Fatalf("got %d suggestions, want %d: %+v", len(suggestions), len(tc.wantActions), suggestions)
			}
			for i, want := range tc.wantActions {
				if suggestions[i].Action != want {
					t.Errorf("suggestion %d action = %q, want %q", i, suggestions[i].Action, want)
				}
			}
		})
	}
}

func TestFollowUpRules_StaleContactedIsHighPriority(t *testing.T) {
	suggestions := FollowUpRules(prospectmodels.StatusContacted, 8, "")
	if len(suggestions) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(suggestions))
	}
	s := suggestions[0]
	if s.Priority != "high" || s.Timing != "immediately" {
		t.Errorf("suggestion = %+v, want high/immediately", s)
	}
}

func TestFollowUpRules_DefaultSuggestion(t *testing.T) {
	suggestions := FollowUpRules(prospectmodels.StatusQualified, 1, "")
	if len(suggestions) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(suggestions))
	}
	if suggestions[0].Priority != "low" {
		t.Errorf("default suggestion priority = %q, want low", suggestions[0].Priority)
	}
}

func TestExtractBulletPoints(t *testing.T) {
	text := "Ecco i problemi principali:\n" +
		"- Costi di spedizione elevati\n" +
		"* Resi complicati\n" +
		"  - Tracking assente  \n" +
		"Conclusione senza punto elenco\n" +
		"-\n"
	points := ExtractBulletPoints(text)
	want := []string{"Costi di spedizione elevati", "Resi complicati", "Tracking assente"}
	if len(points) != len(want) {
		t.Fatalf("got %d points, want %d: %v", len(points), len(want), points)
	}
	for i := range want {
		if points[i] != want[i] {
			t.Errorf("point %d = %q, want %q", i, points[i], want[i])
		}
	}
}

func TestExtractBulletPoints_NoBullets(t *testing.T) {
	if points := ExtractBulletPoints("nessun elenco qui"); len(points) != 0 {
		t.Errorf("got %v, want empty", points)
	}
}

func TestBuildScriptStructure(t *testing.T) {
	prospect := &prospectmodels.Prospect{
		Company: prospectmodels.ProspectCompany{Name: "Example Shop", Industry: "Fashion"},
		Contact: prospectmodels.ProspectContact{Name: "Marco"},
		BusinessInfo: prospectmodels.ProspectBusinessInfo{
			MonthlyShipments: 1470,
			PainPoints:       []string{"i resi sono lenti"},
		},
	}
	knowledge := []knowledgemodels.KnowledgeItem{
		{Title: "Costa troppo", Category: knowledgemodels.CategoryObjectionHandling, Content: "Risparmio medio del 20%."},
		{Title: "Integrazioni", Category: knowledgemodels.CategoryPlatformFeatures, Content: "Shopify, WooCommerce."},
	}

	structure := buildScriptStructure(prospect, knowledge)

	if !strings.Contains(structure.Opener, "Marco") {
		t.Errorf("opener = %q, want contact name", structure.Opener)
	}
	if !strings.Contains(structure.Hook, "1470") {
		t.Errorf("hook = %q, want shipment estimate", structure.Hook)
	}
	if len(structure.ObjectionHandling) != 1 || structure.ObjectionHandling[0].Objection != "Costa troppo" {
		t.Errorf("objectionHandling = %+v, want only the objection-handling item", structure.ObjectionHandling)
	}

	// known pain points become discovery questions
	found := false
	for _, q := range structure.Questions {
		if strings.Contains(q.Question, "i resi sono lenti") {
			found = true
		}
	}
	if !found {
		t.Errorf("questions = %+v, want pain point question", structure.Questions)
	}
}

func TestBuildScriptStructure_NoShipmentEstimate(t *testing.T) {
	prospect := &prospectmodels.Prospect{
		Company: prospectmodels.ProspectCompany{Name: "Example Shop"},
	}
	structure := buildScriptStructure(prospect, nil)
	if !strings.Contains(structure.Hook, "Example Shop") {
		t.Errorf("hook = %q, want generic hook naming the company", structure.Hook)
	}
	if strings.Contains(structure.Opener, "buongiorno") == false && structure.Opener == "" {
		t.Errorf("opener = %q", structure.Opener)
	}
}
