// Package dto - inputs for the outreach domain (scripts and templates).
package dto

import (
	outreachmodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/outreach/models"
)

// ScriptCreateInput is the payload to create a call script.
type ScriptCreateInput struct {
	Title     string                          `json:"title" validate:"required,no_xss"`
	Type      string                          `json:"type" validate:"required,oneof=cold-call follow-up demo objection-handling closing"`
	Industry  string                          `json:"industry,omitempty"`
	Structure outreachmodels.ScriptStructure  `json:"structure"`
	Variables []outreachmodels.ScriptVariable `json:"variables,omitempty"`
	CreatedBy string                          `json:"createdBy,omitempty"`
}

// ScriptUpdateInput is the payload to update a call script. Only the fields
// present in the request are written.
type ScriptUpdateInput struct {
	Title     *string                         `json:"title,omitempty" validate:"omitempty,no_xss"`
	Type      *string                         `json:"type,omitempty" validate:"omitempty,oneof=cold-call follow-up demo objection-handling closing"`
	Industry  *string                         `json:"industry,omitempty"`
	Structure *outreachmodels.ScriptStructure `json:"structure,omitempty"`
	Variables []outreachmodels.ScriptVariable `json:"variables,omitempty"`
}

// ScriptUsageInput is the payload to record one use of a script.
type ScriptUsageInput struct {
	Outcome string `json:"outcome" validate:"required"`
}

// TemplateCreateInput is the payload to create an email template.
type TemplateCreateInput struct {
	Name           string                            `json:"name" validate:"required,no_xss"`
	Type           string                            `json:"type" validate:"required,oneof=cold-outreach follow-up offer proposal demo-invitation thank-you"`
	Subject        string                            `json:"subject" validate:"required"`
	Content        outreachmodels.EmailContent       `json:"content"`
	TargetAudience outreachmodels.TargetAudience     `json:"targetAudience,omitempty"`
	Variables      []outreachmodels.TemplateVariable `json:"variables,omitempty"`
	Attachments    []outreachmodels.Attachment       `json:"attachments,omitempty"`
}

// TemplateUpdateInput is the payload to update an email template.
type TemplateUpdateInput struct {
	Name           *string                           `json:"name,omitempty" validate:"omitempty,no_xss"`
	Type           *string                           `json:"type,omitempty" validate:"omitempty,oneof=cold-outreach follow-up offer proposal demo-invitation thank-you"`
	Subject        *string                           `json:"subject,omitempty"`
	Content        *outreachmodels.EmailContent      `json:"content,omitempty"`
	TargetAudience *outreachmodels.TargetAudience    `json:"targetAudience,omitempty"`
	Variables      []outreachmodels.TemplateVariable `json:"variables,omitempty"`
	Attachments    []outreachmodels.Attachment       `json:"attachments,omitempty"`
	IsApproved     *bool                             `json:"isApproved,omitempty"`
	ApprovedBy     *string                           `json:"approvedBy,omitempty"`
}

// RenderInput is the payload to render a template or script against a
// prospect.
type RenderInput struct {
	Variables  map[string]string `json:"variables,omitempty"`
	ProspectID string            `json:"prospectId,omitempty"`
}
