// Package models - tests for usage and performance tracking.
package models

import (
	"testing"
)

func TestRecordUsage_SuccessRate(t *testing.T) {
	s := &CallScript{}

	s.RecordUsage(OutcomeMeetingScheduled, 1000)
	if s.Performance.TimesUsed != 1 || s.Performance.ConversionsToMeeting != 1 {
		t.Fatalf("after first use: %+v", s.Performance)
	}
	if s.Performance.SuccessRate != 100 {
		t.Errorf("successRate = %v, want 100", s.Performance.SuccessRate)
	}

	s.RecordUsage("no-interest", 2000)
	if s.Performance.TimesUsed != 2 || s.Performance.ConversionsToMeeting != 1 {
		t.Fatalf("after second use: %+v", s.Performance)
	}
	if s.Performance.SuccessRate != 50 {
		t.Errorf("successRate = %v, want 50", s.Performance.SuccessRate)
	}
	if s.Performance.LastUsed != 2000 {
		t.Errorf("lastUsed = %d, want 2000", s.Performance.LastUsed)
	}

	s.RecordUsage("callback-later", 3000)
	s.RecordUsage(OutcomeMeetingScheduled, 4000)
	if s.Performance.SuccessRate != 50 {
		t.Errorf("successRate = %v, want 50 (2 of 4)", s.Performance.SuccessRate)
	}
}

func TestTemplateMetrics(t *testing.T) {
	tpl := &EmailTemplate{Performance: TemplatePerformance{
		Sent: 200, Opened: 80, Clicked: 30, Replied: 10, Meetings: 4,
	}}
	m := tpl.Metrics()
	if m.OpenRate != 40 {
		t.Errorf("openRate = %v, want 40", m.OpenRate)
	}
	if m.ClickRate != 15 {
		t.Errorf("clickRate = %v, want 15", m.ClickRate)
	}
	if m.ReplyRate != 5 {
		t.Errorf("replyRate = %v, want 5", m.ReplyRate)
	}
	if m.MeetingRate != 2 {
		t.Errorf("meetingRate = %v, want 2", m.MeetingRate)
	}
}

func TestTemplateMetrics_ZeroSent(t *testing.T) {
	tpl := &EmailTemplate{}
	m := tpl.Metrics()
	if m.OpenRate != 0 || m.ClickRate != 0 || m.ReplyRate != 0 || m.MeetingRate != 0 {
		t.Errorf("metrics with zero sent must be zero: %+v", m)
	}
}
