// Package models - knowledge base items (knowledge_items): platform facts,
// objection handling material and carrier rate cards used by BDRs during
// calls.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Knowledge categories.
const (
	CategoryCarrierRates      = "carrier-rates"
	CategoryCarrierInfo       = "carrier-info"
	CategoryPlatformFeatures  = "platform-features"
	CategoryPricing           = "pricing"
	CategoryCompetitors       = "competitors"
	CategoryObjectionHandling = "objection-handling"
	CategoryCaseStudies       = "case-studies"
	CategoryIntegrations      = "integrations"
	CategoryFAQ               = "faq"
)

// Shipping zones used on carrier rate cards.
const (
	ZoneItaly         = "Italia"
	ZoneEU            = "EU"
	ZoneInternational = "International"
)

// Carrier service levels.
const (
	ServiceStandard = "standard"
	ServiceExpress  = "express"
)

// CarrierInfo is the rate card attached to carrier-rates items.
// Price formula: basePrice + weight * weightMultiplier.
type CarrierInfo struct {
	Carrier          string  `json:"carrier" bson:"carrier"`
	Service          string  `json:"service" bson:"service"` // standard | express
	Zone             string  `json:"zone" bson:"zone"`       // Italia | EU | International
	BasePrice        float64 `json:"basePrice" bson:"basePrice"`
	WeightMultiplier float64 `json:"weightMultiplier" bson:"weightMultiplier"`
	MaxWeight        float64 `json:"maxWeight,omitempty" bson:"maxWeight,omitempty"` // kg, 0 = no limit
	DeliveryTime     string  `json:"deliveryTime,omitempty" bson:"deliveryTime,omitempty"`
}

// KnowledgeUsage tracks how often an item is consulted.
type KnowledgeUsage struct {
	Views     int64 `json:"views" bson:"views"`
	TimesUsed int64 `json:"timesUsed" bson:"timesUsed"`
	LastUsed  int64 `json:"lastUsed,omitempty" bson:"lastUsed,omitempty"`
}

// KnowledgeItem is one entry of the knowledge base (knowledge_items).
type KnowledgeItem struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Title       string         `json:"title" bson:"title" validate:"required,no_xss"`
	Category    string         `json:"category" bson:"category"`
	Content     string         `json:"content" bson:"content"`
	Tags        []string       `json:"tags,omitempty" bson:"tags,omitempty"`
	CarrierInfo *CarrierInfo   `json:"carrierInfo,omitempty" bson:"carrierInfo,omitempty"`
	Priority    int            `json:"priority" bson:"priority"` // higher surfaces first
	Usage       KnowledgeUsage `json:"usage" bson:"usage"`
	IsActive    bool           `json:"isActive" bson:"isActive"`
	Author      string         `json:"author,omitempty" bson:"author,omitempty"`
	LastUpdated int64          `json:"lastUpdated" bson:"lastUpdated"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
