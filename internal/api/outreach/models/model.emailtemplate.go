package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Email template types.
const (
	TemplateColdOutreach   = "cold-outreach"
	TemplateFollowUp       = "follow-up"
	TemplateOffer          = "offer"
	TemplateProposal       = "proposal"
	TemplateDemoInvitation = "demo-invitation"
	TemplateThankYou       = "thank-you"
)

// Template variable types.
const (
	VarText     = "text"
	VarNumber   = "number"
	VarDate     = "date"
	VarURL      = "url"
	VarCurrency = "currency"
)

// Trackable template events, matching the TemplatePerformance counters.
const (
	EventSent     = "sent"
	EventOpened   = "opened"
	EventClicked  = "clicked"
	EventReplied  = "replied"
	EventMeetings = "meetings"
)

// EmailContent carries both renderings of the body.
type EmailContent struct {
	HTML string `json:"html,omitempty" bson:"html,omitempty"`
	Text string `json:"text,omitempty" bson:"text,omitempty"`
}

// TargetAudience narrows who a template is written for.
type TargetAudience struct {
	Industry    []string `json:"industry,omitempty" bson:"industry,omitempty"`
	CompanySize []string `json:"companySize,omitempty" bson:"companySize,omitempty"`
	Role        []string `json:"role,omitempty" bson:"role,omitempty"`
}

// TemplateVariable declares a typed placeholder the template text expects.
type TemplateVariable struct {
	Name         string `json:"name" bson:"name"`
	Description  string `json:"description,omitempty" bson:"description,omitempty"`
	Type         string `json:"type" bson:"type"` // text | number | date | url | currency
	Required     bool   `json:"required" bson:"required"`
	DefaultValue string `json:"defaultValue,omitempty" bson:"defaultValue,omitempty"`
}

// Attachment is a file reference shipped with the email.
type Attachment struct {
	Name string `json:"name" bson:"name"`
	URL  string `json:"url" bson:"url"`
	Type string `json:"type,omitempty" bson:"type,omitempty"`
}

// TemplatePerformance tracks funnel counters per template.
type TemplatePerformance struct {
	Sent     int64 `json:"sent" bson:"sent"`
	Opened   int64 `json:"opened" bson:"opened"`
	Clicked  int64 `json:"clicked" bson:"clicked"`
	Replied  int64 `json:"replied" bson:"replied"`
	Meetings int64 `json:"meetings" bson:"meetings"`
	LastUsed int64 `json:"lastUsed,omitempty" bson:"lastUsed,omitempty"`
}

// TemplateMetrics are the rates derived from the counters, percentages over
// sent.
type TemplateMetrics struct {
	OpenRate    float64 `json:"openRate"`
	ClickRate   float64 `json:"clickRate"`
	ReplyRate   float64 `json:"replyRate"`
	MeetingRate float64 `json:"meetingRate"`
}

// EmailTemplate is one reusable outreach email (email_templates).
type EmailTemplate struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name           string              `json:"name" bson:"name" validate:"required,no_xss"`
	Type           string              `json:"type" bson:"type"`
	Subject        string              `json:"subject" bson:"subject"`
	Content        EmailContent        `json:"content" bson:"content"`
	TargetAudience TargetAudience      `json:"targetAudience,omitempty" bson:"targetAudience,omitempty"`
	Variables      []TemplateVariable  `json:"variables,omitempty" bson:"variables,omitempty"`
	Attachments    []Attachment        `json:"attachments,omitempty" bson:"attachments,omitempty"`
	Performance    TemplatePerformance `json:"performance" bson:"performance"`
	IsApproved     bool                `json:"isApproved" bson:"isApproved"`
	ApprovedBy     string              `json:"approvedBy,omitempty" bson:"approvedBy,omitempty"`
	IsActive       bool                `json:"isActive" bson:"isActive"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// Metrics derives the funnel rates. Zero sent means all rates are zero.
func (t *EmailTemplate) Metrics() TemplateMetrics {
	if t.Performance.Sent == 0 {
		return TemplateMetrics{}
	}
	sent := float64(t.Performance.Sent)
	return TemplateMetrics{
		OpenRate:    float64(t.Performance.Opened) / sent * 100,
		ClickRate:   float64(t.Performance.Clicked) / sent * 100,
		ReplyRate:   float64(t.Performance.Replied) / sent * 100,
		MeetingRate: float64(t.Performance.Meetings) / sent * 100,
	}
}
