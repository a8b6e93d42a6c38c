// Package dto - inputs for the knowledge base domain.
package dto

import (
	knowledgemodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/knowledge/models"
)

// KnowledgeCreateInput is the payload to create a knowledge item.
type KnowledgeCreateInput struct {
	Title       string                        `json:"title" validate:"required,no_xss"`
	Category    string                        `json:"category" validate:"required,oneof=carrier-rates carrier-info platform-features pricing competitors objection-handling case-studies integrations faq"`
	Content     string                        `json:"content" validate:"required"`
	Tags        []string                      `json:"tags,omitempty"`
	CarrierInfo *knowledgemodels.CarrierInfo  `json:"carrierInfo,omitempty"`
	Priority    int                           `json:"priority,omitempty"`
	Author      string                        `json:"author,omitempty"`
}

// KnowledgeUpdateInput is the payload to update a knowledge item. Only the
// fields present in the request are written.
type KnowledgeUpdateInput struct {
	Title       *string                      `json:"title,omitempty" validate:"omitempty,no_xss"`
	Category    *string                      `json:"category,omitempty" validate:"omitempty,oneof=carrier-rates carrier-info platform-features pricing competitors objection-handling case-studies integrations faq"`
	Content     *string                      `json:"content,omitempty"`
	Tags        []string                     `json:"tags,omitempty"`
	CarrierInfo *knowledgemodels.CarrierInfo `json:"carrierInfo,omitempty"`
	Priority    *int                         `json:"priority,omitempty"`
	Author      *string                      `json:"author,omitempty"`
}

// RateCalculationInput is the payload of a shipping rate calculation.
type RateCalculationInput struct {
	Destination string  `json:"destination" validate:"required"`
	Weight      float64 `json:"weight" validate:"required,gt=0"`
	Service     string  `json:"service,omitempty" validate:"omitempty,oneof=standard express"`
}
