// Package models - Prospect records for the BDR pipeline (prospects).
// A prospect is an e-commerce company being worked by a BDR, enriched with
// website traffic analysis and scored for prioritization.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	enrichmodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/enrichment/models"
)

// Prospect statuses, ordered roughly by pipeline stage.
const (
	StatusNew        = "new"
	StatusContacted  = "contacted"
	StatusInterested = "interested"
	StatusQualified  = "qualified"
	StatusProposal   = "proposal"
	StatusClosedWon  = "closed-won"
	StatusClosedLost = "closed-lost"
)

// Interaction types.
const (
	InteractionCall     = "call"
	InteractionEmail    = "email"
	InteractionLinkedIn = "linkedin"
	InteractionMeeting  = "meeting"
	InteractionDemo     = "demo"
	InteractionProposal = "proposal"
	InteractionFollowUp = "follow-up"
)

// Interaction outcomes.
const (
	OutcomePositive   = "positive"
	OutcomeNeutral    = "neutral"
	OutcomeNegative   = "negative"
	OutcomeNoResponse = "no-response"
)

// ProspectCompany identifies the company.
type ProspectCompany struct {
	Name     string `json:"name" bson:"name" validate:"required,no_xss"`
	Website  string `json:"website,omitempty" bson:"website,omitempty" validate:"omitempty,domain_like"`
	Industry string `json:"industry,omitempty" bson:"industry,omitempty"`
	Size     string `json:"size,omitempty" bson:"size,omitempty"` // startup | small | medium | large | enterprise
}

// ProspectContact holds the reference person at the company.
type ProspectContact struct {
	Name     string `json:"name,omitempty" bson:"name,omitempty"`
	Role     string `json:"role,omitempty" bson:"role,omitempty"`
	Email    string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
}

// ProspectBusinessInfo holds shipping-relevant business figures, partly
// entered by the BDR and partly estimated from traffic analysis.
type ProspectBusinessInfo struct {
	EstimatedMonthlyVisits  int64    `json:"estimatedMonthlyVisits,omitempty" bson:"estimatedMonthlyVisits,omitempty"`
	ConversionRate          float64  `json:"conversionRate,omitempty" bson:"conversionRate,omitempty"`
	MonthlyOrders           int64    `json:"monthlyOrders,omitempty" bson:"monthlyOrders,omitempty"`
	MonthlyShipments        int64    `json:"monthlyShipments,omitempty" bson:"monthlyShipments,omitempty"`
	AverageOrderValue       float64  `json:"averageOrderValue,omitempty" bson:"averageOrderValue,omitempty"`
	EstimatedMonthlyRevenue float64  `json:"estimatedMonthlyRevenue,omitempty" bson:"estimatedMonthlyRevenue,omitempty"`
	CurrentShippingCosts    float64  `json:"currentShippingCosts,omitempty" bson:"currentShippingCosts,omitempty"`
	MainDestinations        []string `json:"mainDestinations,omitempty" bson:"mainDestinations,omitempty"`
	CurrentCarriers         []string `json:"currentCarriers,omitempty" bson:"currentCarriers,omitempty"`
	PainPoints              []string `json:"painPoints,omitempty" bson:"painPoints,omitempty"`
	Priorities              []string `json:"priorities,omitempty" bson:"priorities,omitempty"`
}

// ProspectAnalysisData embeds the full enrichment result on the prospect.
type ProspectAnalysisData struct {
	Normalized *enrichmodels.TrafficAnalysis `json:"normalized,omitempty" bson:"normalized,omitempty"`
	Raw        *enrichmodels.ProviderPayload `json:"raw,omitempty" bson:"raw,omitempty"`
	AnalyzedAt int64                         `json:"analyzedAt,omitempty" bson:"analyzedAt,omitempty"`
}

// ProspectWebsiteAnalysis summarizes the last website analysis.
type ProspectWebsiteAnalysis struct {
	IsEcommerce  bool                  `json:"isEcommerce" bson:"isEcommerce"`
	Platform     string                `json:"platform,omitempty" bson:"platform,omitempty"`
	AnalysisDate int64                 `json:"analysisDate,omitempty" bson:"analysisDate,omitempty"`
	AnalysisData *ProspectAnalysisData `json:"analysisData,omitempty" bson:"analysisData,omitempty"`
}

// ProspectInteraction is one logged touch with the prospect.
type ProspectInteraction struct {
	Type       string `json:"type" bson:"type"`
	Date       int64  `json:"date" bson:"date"`
	Notes      string `json:"notes,omitempty" bson:"notes,omitempty"`
	Outcome    string `json:"outcome,omitempty" bson:"outcome,omitempty"`
	NextAction string `json:"nextAction,omitempty" bson:"nextAction,omitempty"`
	Author     string `json:"author,omitempty" bson:"author,omitempty"`
}

// Prospect is one company in the BDR pipeline (prospects).
type Prospect struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Company         ProspectCompany          `json:"company" bson:"company"`
	Contact         ProspectContact          `json:"contact,omitempty" bson:"contact,omitempty"`
	BusinessInfo    ProspectBusinessInfo     `json:"businessInfo,omitempty" bson:"businessInfo,omitempty"`
	Website         string                   `json:"website,omitempty" bson:"website,omitempty"` // bare domain, unique when present
	WebsiteAnalysis *ProspectWebsiteAnalysis `json:"websiteAnalysis,omitempty" bson:"websiteAnalysis,omitempty"`
	Interactions    []ProspectInteraction    `json:"interactions,omitempty" bson:"interactions,omitempty"`

	Status          string   `json:"status" bson:"status"`
	Score           int      `json:"score" bson:"score"`
	AssignedTo      string   `json:"assignedTo,omitempty" bson:"assignedTo,omitempty"`
	Notes           string   `json:"notes,omitempty" bson:"notes,omitempty"`
	Tags            []string `json:"tags,omitempty" bson:"tags,omitempty"`
	Source          string   `json:"source,omitempty" bson:"source,omitempty"` // manual | website-analysis | import
	IsActive        bool     `json:"isActive" bson:"isActive"`
	LastContactDate int64    `json:"lastContactDate,omitempty" bson:"lastContactDate,omitempty"`
	NextFollowUp    int64    `json:"nextFollowUp,omitempty" bson:"nextFollowUp,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
