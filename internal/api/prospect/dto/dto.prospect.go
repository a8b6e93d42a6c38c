// Package dto - inputs for the prospect domain.
package dto

import (
	prospectmodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/prospect/models"
)

// ProspectCreateInput is the payload to create a prospect.
type ProspectCreateInput struct {
	Company      prospectmodels.ProspectCompany      `json:"company" validate:"required"`
	Contact      prospectmodels.ProspectContact      `json:"contact,omitempty"`
	BusinessInfo prospectmodels.ProspectBusinessInfo `json:"businessInfo,omitempty"`
	Website      string                              `json:"website,omitempty" validate:"omitempty,domain_like"`
	Status       string                              `json:"status,omitempty" validate:"omitempty,oneof=new contacted interested qualified proposal closed-won closed-lost"`
	AssignedTo   string                              `json:"assignedTo,omitempty" validate:"omitempty,no_xss"`
	Notes        string                              `json:"notes,omitempty"`
	Tags         []string                            `json:"tags,omitempty"`
	Source       string                              `json:"source,omitempty"`
	NextFollowUp int64                               `json:"nextFollowUp,omitempty"`
}

// ProspectUpdateInput is the payload to update a prospect. Only the sections
// present in the request are merged onto the stored record.
type ProspectUpdateInput struct {
	Company      *prospectmodels.ProspectCompany      `json:"company,omitempty"`
	Contact      *prospectmodels.ProspectContact      `json:"contact,omitempty"`
	BusinessInfo *prospectmodels.ProspectBusinessInfo `json:"businessInfo,omitempty"`
	Website      *string                              `json:"website,omitempty"`
	Status       *string                              `json:"status,omitempty" validate:"omitempty,oneof=new contacted interested qualified proposal closed-won closed-lost"`
	AssignedTo   *string                              `json:"assignedTo,omitempty"`
	Notes        *string                              `json:"notes,omitempty"`
	Tags         []string                             `json:"tags,omitempty"`
	NextFollowUp *int64                               `json:"nextFollowUp,omitempty"`
}

// InteractionInput is the payload to log an interaction.
type InteractionInput struct {
	Type       string `json:"type" validate:"required,oneof=call email linkedin meeting demo proposal follow-up"`
	Notes      string `json:"notes,omitempty"`
	Outcome    string `json:"outcome,omitempty" validate:"omitempty,oneof=positive neutral negative no-response"`
	NextAction string `json:"nextAction,omitempty"`
	Author     string `json:"author,omitempty"`
}

// StatusInput is the payload to move a prospect through the pipeline.
type StatusInput struct {
	Status string `json:"status" validate:"required,oneof=new contacted interested qualified proposal closed-won closed-lost"`
}

// ListFilter collects the query string filters of the prospect list.
type ListFilter struct {
	Status     string
	AssignedTo string
	Industry   string
	Size       string
	MinScore   *int
	MaxScore   *int
	SortBy     string
	SortOrder  string
	Page       int64
	Limit      int64
}
