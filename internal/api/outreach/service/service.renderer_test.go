// Package outreachsvc - tests for the typed placeholder renderer.
package outreachsvc

import (
	"strings"
	"testing"

	outreachmodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/outreach/models"
	prospectmodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/prospect/models"
)

func TestRenderText_SubstitutesDeclaredVariables(t *testing.T) {
	decls := []Placeholder{
		{Name: "offer", Type: outreachmodels.VarText, Required: true},
	}
	out, err := RenderText("Ciao, ecco {{offer}}.", decls, map[string]string{"offer": "la nostra proposta"}, nil)
	if err != nil {
		t.Fatalf("RenderText: %v", err)
	}
	if out != "Ciao, ecco la nostra proposta." {
		t.Errorf("out = %q", out)
	}
}

func TestRenderText_MissingRequiredFails(t *testing.T) {
	decls := []Placeholder{
		{Name: "offer", Required: true},
	}
	_, err := RenderText("{{offer}}", decls, nil, nil)
	if err == nil {
		t.Fatal("missing required variable must fail")
	}
	if !strings.Contains(err.Error(), "offer") {
		t.Errorf("error should name the variable: %v", err)
	}
}

func TestRenderText_OptionalUsesDefault(t *testing.T) {
	decls := []Placeholder{
		{Name: "discount", Required: false, DefaultValue: "10%"},
	}
	out, err := RenderText("Sconto: {{discount}}", decls, nil, nil)
	if err != nil {
		t.Fatalf("RenderText: %v", err)
	}
	if out != "Sconto: 10%" {
		t.Errorf("out = %q, want default applied", out)
	}
}

func TestRenderText_RequiredWithDefaultDoesNotFail(t *testing.T) {
	decls := []Placeholder{
		{Name: "plan", Required: true, DefaultValue: "Base"},
	}
	out, err := RenderText("Piano {{plan}}", decls, nil, nil)
	if err != nil {
		t.Fatalf("RenderText: %v", err)
	}
	if out != "Piano Base" {
		t.Errorf("out = %q", out)
	}
}

func TestRenderText_TypeValidation(t *testing.T) {
	cases := []struct {
		varType string
		value   string
		valid   bool
	}{
		{outreachmodels.VarNumber, "420", true},
		{outreachmodels.VarNumber, "4.2", true},
		{outreachmodels.VarNumber, "many", false},
		{outreachmodels.VarCurrency, "75.50", true},
		{outreachmodels.VarCurrency, "EUR 75", false},
		{outreachmodels.VarDate, "2026-08-29", true},
		{outreachmodels.VarDate, "29/08/2026", true},
		{outreachmodels.VarDate, "tomorrow", false},
		{outreachmodels.VarURL, "https://example.com/demo", true},
		{outreachmodels.VarURL, "ftp://example.com", false},
		{outreachmodels.VarURL, "not a url", false},
		{outreachmodels.VarText, "anything goes", true},
	}
	for _, tc := range cases {
		decls := []Placeholder{{Name: "v", Type: tc.varType, Required: true}}
		_, err := RenderText("{{v}}", decls, map[string]string{"v": tc.value}, nil)
		if tc.valid && err != nil {
			t.Errorf("type %s value %q: unexpected error %v", tc.varType, tc.value, err)
		}
		if !tc.valid && err == nil {
			t.Errorf("type %s value %q: expected validation error", tc.varType, tc.value)
		}
	}
}

func TestRenderText_BaseReplacementsFromProspect(t *testing.T) {
	prospect := &prospectmodels.Prospect{
		Company: prospectmodels.ProspectCompany{
			Name:     "Example Shop",
			Industry: "Fashion",
		},
		Contact: prospectmodels.ProspectContact{Name: "Marco", Role: "CEO"},
		Website: "example.com",
	}
	out, err := RenderText("Ciao {{contactName}} ({{contactRole}}) di {{companyName}}, settore {{industry}}, sito {{website}}.", nil, nil, prospect)
	if err != nil {
		t.Fatalf("RenderText: %v", err)
	}
	want := "Ciao Marco (CEO) di Example Shop, settore Fashion, sito example.com."
	if out != want {
		t.Errorf("out = %q, want %q", out, want)
	}
}

func TestRenderText_UnresolvedPlaceholderLeftVisible(t *testing.T) {
	out, err := RenderText("Hello {{unknown}}", nil, nil, nil)
	if err != nil {
		t.Fatalf("RenderText: %v", err)
	}
	if out != "Hello {{unknown}}" {
		t.Errorf("out = %q, undeclared placeholders must stay visible", out)
	}
}

func TestRenderScriptStructure(t *testing.T) {
	script := &outreachmodels.CallScript{
		Variables: []outreachmodels.ScriptVariable{
			{Name: "painPoint", Required: true},
		},
		Structure: outreachmodels.ScriptStructure{
			Opener: "Ciao {{contactName}}, chiamo da Sendcloud.",
			Hook:   "Ho visto che {{companyName}} ha il problema: {{painPoint}}.",
			Questions: []outreachmodels.ScriptQuestion{
				{Question: "Come gestite {{painPoint}} oggi?", Purpose: "discovery"},
			},
			ObjectionHandling: []outreachmodels.ObjectionResponse{
				{Objection: "Non ho tempo", Response: "Capisco, {{contactName}}."},
			},
			Closing: "Fissiamo una demo?",
		},
	}
	prospect := &prospectmodels.Prospect{
		Company: prospectmodels.ProspectCompany{Name: "Example Shop"},
		Contact: prospectmodels.ProspectContact{Name: "Marco"},
	}

	structure, err := RenderScriptStructure(script, map[string]string{"painPoint": "spedizioni lente"}, prospect)
	if err != nil {
		t.Fatalf("RenderScriptStructure: %v", err)
	}
	if structure.Opener != "Ciao Marco, chiamo da Sendcloud." {
		t.Errorf("opener = %q", structure.Opener)
	}
	if !strings.Contains(structure.Hook, "Example Shop") || !strings.Contains(structure.Hook, "spedizioni lente") {
		t.Errorf("hook = %q", structure.Hook)
	}
	if !strings.Contains(structure.Questions[0].Question, "spedizioni lente") {
		t.Errorf("question = %q", structure.Questions[0].Question)
	}
	if !strings.Contains(structure.ObjectionHandling[0].Response, "Marco") {
		t.Errorf("objection response = %q", structure.ObjectionHandling[0].Response)
	}

	// the stored script must not be mutated
	if !strings.Contains(script.Structure.Opener, "{{contactName}}") {
		t.Error("rendering must not mutate the stored script")
	}
}

func TestRenderEmailTemplate(t *testing.T) {
	template := &outreachmodels.EmailTemplate{
		Subject: "Proposta per {{companyName}}",
		Content: outreachmodels.EmailContent{
			Text: "Ciao {{contactName}}, risparmio stimato: {{savings}} EUR.",
			HTML: "<p>Ciao {{contactName}}</p>",
		},
		Variables: []outreachmodels.TemplateVariable{
			{Name: "savings", Type: outreachmodels.VarCurrency, Required: true},
		},
	}
	prospect := &prospectmodels.Prospect{
		Company: prospectmodels.ProspectCompany{Name: "Example Shop"},
		Contact: prospectmodels.ProspectContact{Name: "Marco"},
	}

	rendered, err := RenderEmailTemplate(template, map[string]string{"savings": "350.00"}, prospect)
	if err != nil {
		t.Fatalf("RenderEmailTemplate: %v", err)
	}
	if rendered.Subject != "Proposta per Example Shop" {
		t.Errorf("subject = %q", rendered.Subject)
	}
	if !strings.Contains(rendered.Text, "350.00") {
		t.Errorf("text = %q", rendered.Text)
	}
	if rendered.HTML != "<p>Ciao Marco</p>" {
		t.Errorf("html = %q", rendered.HTML)
	}

	// invalid currency must fail
	_, err = RenderEmailTemplate(template, map[string]string{"savings": "molto"}, prospect)
	if err == nil {
		t.Fatal("invalid currency value must fail validation")
	}
}
