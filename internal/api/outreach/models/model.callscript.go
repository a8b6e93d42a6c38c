// Package models - outreach material: call scripts and email templates used
// by BDRs, with per-item performance tracking.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Call script types.
const (
	ScriptColdCall          = "cold-call"
	ScriptFollowUp          = "follow-up"
	ScriptDemo              = "demo"
	ScriptObjectionHandling = "objection-handling"
	ScriptClosing           = "closing"
)

// Usage outcome that counts as a conversion.
const OutcomeMeetingScheduled = "meeting-scheduled"

// ScriptQuestion is one discovery question with its intent.
type ScriptQuestion struct {
	Question string `json:"question" bson:"question"`
	Purpose  string `json:"purpose,omitempty" bson:"purpose,omitempty"`
	FollowUp string `json:"followUp,omitempty" bson:"followUp,omitempty"`
}

// ObjectionResponse is one rehearsed answer to a common objection.
type ObjectionResponse struct {
	Objection string `json:"objection" bson:"objection"`
	Response  string `json:"response" bson:"response"`
	Rebuttal  string `json:"rebuttal,omitempty" bson:"rebuttal,omitempty"`
}

// ScriptStructure is the full flow of a call.
type ScriptStructure struct {
	Opener            string              `json:"opener,omitempty" bson:"opener,omitempty"`
	Hook              string              `json:"hook,omitempty" bson:"hook,omitempty"`
	ValueProposition  string              `json:"valueProposition,omitempty" bson:"valueProposition,omitempty"`
	Questions         []ScriptQuestion    `json:"questions,omitempty" bson:"questions,omitempty"`
	ObjectionHandling []ObjectionResponse `json:"objectionHandling,omitempty" bson:"objectionHandling,omitempty"`
	Closing           string              `json:"closing,omitempty" bson:"closing,omitempty"`
	NextSteps         string              `json:"nextSteps,omitempty" bson:"nextSteps,omitempty"`
}

// ScriptVariable declares a placeholder the script text expects.
type ScriptVariable struct {
	Name         string `json:"name" bson:"name"`
	Description  string `json:"description,omitempty" bson:"description,omitempty"`
	Required     bool   `json:"required" bson:"required"`
	DefaultValue string `json:"defaultValue,omitempty" bson:"defaultValue,omitempty"`
}

// ScriptPerformance tracks how a script performs on real calls.
// SuccessRate is conversions/timesUsed as a percentage.
type ScriptPerformance struct {
	TimesUsed            int64   `json:"timesUsed" bson:"timesUsed"`
	SuccessRate          float64 `json:"successRate" bson:"successRate"`
	AverageCallDuration  float64 `json:"averageCallDuration,omitempty" bson:"averageCallDuration,omitempty"` // minutes
	ConversionsToMeeting int64   `json:"conversionsToMeeting" bson:"conversionsToMeeting"`
	LastUsed             int64   `json:"lastUsed,omitempty" bson:"lastUsed,omitempty"`
}

// CallScript is one call script (call_scripts).
type CallScript struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Title       string            `json:"title" bson:"title" validate:"required,no_xss"`
	Type        string            `json:"type" bson:"type"`
	Industry    string            `json:"industry,omitempty" bson:"industry,omitempty"` // empty = generic
	Structure   ScriptStructure   `json:"structure" bson:"structure"`
	Variables   []ScriptVariable  `json:"variables,omitempty" bson:"variables,omitempty"`
	Performance ScriptPerformance `json:"performance" bson:"performance"`
	IsActive    bool              `json:"isActive" bson:"isActive"`
	CreatedBy   string            `json:"createdBy,omitempty" bson:"createdBy,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// RecordUsage counts one use of the script and recomputes the success rate.
func (s *CallScript) RecordUsage(outcome string, now int64) {
	s.Performance.TimesUsed++
	if outcome == OutcomeMeetingScheduled {
		s.Performance.ConversionsToMeeting++
	}
	s.Performance.SuccessRate = float64(s.Performance.ConversionsToMeeting) / float64(s.Performance.TimesUsed) * 100
	s.Performance.LastUsed = now
}
