// Package outreachsvc - call script and email template services, plus the
// typed placeholder renderer shared by both.
package outreachsvc

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	outreachmodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/outreach/models"
	prospectmodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/prospect/models"
	"github.com/Mbenve9198/bdr-tool-backend/internal/common"
)

// Placeholder is a declared template variable in renderer form.
type Placeholder struct {
	Name         string
	Type         string // empty = text
	Required     bool
	DefaultValue string
}

// Date formats accepted for date placeholders.
var dateLayouts = []string{"2006-01-02", "02/01/2006"}

// baseReplacements builds the placeholder values every rendering knows about,
// taken from the prospect. Nil prospect yields only currentDate.
func baseReplacements(p *prospectmodels.Prospect) map[string]string {
	values := map[string]string{
		"currentDate": time.Now().Format("02/01/2006"),
	}
	if p == nil {
		return values
	}
	values["companyName"] = p.Company.Name
	values["contactName"] = p.Contact.Name
	values["contactRole"] = p.Contact.Role
	values["industry"] = p.Company.Industry
	values["website"] = p.Company.Website
	if values["website"] == "" {
		values["website"] = p.Website
	}
	return values
}

// validatePlaceholderValue checks a value against the declared type.
func validatePlaceholderValue(decl Placeholder, value string) error {
	switch decl.Type {
	case "", outreachmodels.VarText:
		return nil
	case outreachmodels.VarNumber, outreachmodels.VarCurrency:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return common.NewError(common.ErrCodeValidationFormat,
				fmt.Sprintf("Variable %s must be a number, got %q", decl.Name, value),
				common.StatusBadRequest, nil)
		}
		return nil
	case outreachmodels.VarDate:
		for _, layout := range dateLayouts {
			if _, err := time.Parse(layout, value); err == nil {
				return nil
			}
		}
		return common.NewError(common.ErrCodeValidationFormat,
			fmt.Sprintf("Variable %s must be a date (YYYY-MM-DD or DD/MM/YYYY), got %q", decl.Name, value),
			common.StatusBadRequest, nil)
	case outreachmodels.VarURL:
		u, err := url.Parse(value)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return common.NewError(common.ErrCodeValidationFormat,
				fmt.Sprintf("Variable %s must be an http(s) URL, got %q", decl.Name, value),
				common.StatusBadRequest, nil)
		}
		return nil
	default:
		return common.NewError(common.ErrCodeValidationFormat,
			fmt.Sprintf("Variable %s has unknown type %q", decl.Name, decl.Type),
			common.StatusBadRequest, nil)
	}
}

// resolvePlaceholders validates the provided values against the declared
// placeholders and returns the complete replacement map.
//
// Required placeholders without a value fail; optional ones fall back to
// their default. Base replacements fill any declared placeholder the caller
// did not provide, and are available to the text even when undeclared.
func resolvePlaceholders(decls []Placeholder, values map[string]string, base map[string]string) (map[string]string, error) {
	resolved := map[string]string{}
	for name, value := range base {
		resolved[name] = value
	}

	for _, decl := range decls {
		value, provided := values[decl.Name]
		if !provided || value == "" {
			if fromBase, ok := base[decl.Name]; ok && fromBase != "" {
				resolved[decl.Name] = fromBase
				continue
			}
			if decl.DefaultValue != "" {
				resolved[decl.Name] = decl.DefaultValue
				continue
			}
			if decl.Required {
				return nil, common.NewError(common.ErrCodeValidationInput,
					fmt.Sprintf("Required variable %s is missing", decl.Name),
					common.StatusBadRequest, nil)
			}
			resolved[decl.Name] = ""
			continue
		}
		if err := validatePlaceholderValue(decl, value); err != nil {
			return nil, err
		}
		resolved[decl.Name] = value
	}

	return resolved, nil
}

// substitute replaces every {{name}} occurrence with its resolved value.
// Unresolved placeholders are left in place so they are visible in previews.
func substitute(text string, resolved map[string]string) string {
	for name, value := range resolved {
		text = strings.ReplaceAll(text, "{{"+name+"}}", value)
	}
	return text
}

// RenderText validates the values against the declared placeholders and
// renders the text.
func RenderText(text string, decls []Placeholder, values map[string]string, prospect *prospectmodels.Prospect) (string, error) {
	resolved, err := resolvePlaceholders(decls, values, baseReplacements(prospect))
	if err != nil {
		return "", err
	}
	return substitute(text, resolved), nil
}

// RenderScriptStructure renders every text block of a script, validating the
// provided values against the declared variables.
func RenderScriptStructure(script *outreachmodels.CallScript, values map[string]string, prospect *prospectmodels.Prospect) (*outreachmodels.ScriptStructure, error) {
	resolved, err := resolvePlaceholders(scriptPlaceholders(script.Variables), values, baseReplacements(prospect))
	if err != nil {
		return nil, err
	}

	structure := script.Structure
	structure.Opener = substitute(structure.Opener, resolved)
	structure.Hook = substitute(structure.Hook, resolved)
	structure.ValueProposition = substitute(structure.ValueProposition, resolved)
	structure.Closing = substitute(structure.Closing, resolved)
	structure.NextSteps = substitute(structure.NextSteps, resolved)

	questions := make([]outreachmodels.ScriptQuestion, len(script.Structure.Questions))
	for i, q := range script.Structure.Questions {
		q.Question = substitute(q.Question, resolved)
		q.FollowUp = substitute(q.FollowUp, resolved)
		questions[i] = q
	}
	structure.Questions = questions

	objections := make([]outreachmodels.ObjectionResponse, len(script.Structure.ObjectionHandling))
	for i, o := range script.Structure.ObjectionHandling {
		o.Response = substitute(o.Response, resolved)
		o.Rebuttal = substitute(o.Rebuttal, resolved)
		objections[i] = o
	}
	structure.ObjectionHandling = objections

	return &structure, nil
}

// RenderedEmail is the outcome of rendering an email template.
type RenderedEmail struct {
	Subject string `json:"subject"`
	Text    string `json:"text"`
	HTML    string `json:"html"`
}

// RenderEmailTemplate renders subject and both bodies of a template,
// validating the provided values against the declared typed variables.
func RenderEmailTemplate(template *outreachmodels.EmailTemplate, values map[string]string, prospect *prospectmodels.Prospect) (*RenderedEmail, error) {
	resolved, err := resolvePlaceholders(templatePlaceholders(template.Variables), values, baseReplacements(prospect))
	if err != nil {
		return nil, err
	}
	return &RenderedEmail{
		Subject: substitute(template.Subject, resolved),
		Text:    substitute(template.Content.Text, resolved),
		HTML:    substitute(template.Content.HTML, resolved),
	}, nil
}

// scriptPlaceholders converts script variable declarations (untyped, always
// text) to renderer form.
func scriptPlaceholders(vars []outreachmodels.ScriptVariable) []Placeholder {
	decls := make([]Placeholder, 0, len(vars))
	for _, v := range vars {
		decls = append(decls, Placeholder{
			Name:         v.Name,
			Type:         outreachmodels.VarText,
			Required:     v.Required,
			DefaultValue: v.DefaultValue,
		})
	}
	return decls
}

// templatePlaceholders converts typed template variable declarations to
// renderer form.
func templatePlaceholders(vars []outreachmodels.TemplateVariable) []Placeholder {
	decls := make([]Placeholder, 0, len(vars))
	for _, v := range vars {
		decls = append(decls, Placeholder{
			Name:         v.Name,
			Type:         v.Type,
			Required:     v.Required,
			DefaultValue: v.DefaultValue,
		})
	}
	return decls
}
