package create_appointment

import (
	"testing"
	"time"

	"github.com/cortafila/CF-BookingService/internal/domain"
	"github.com/cortafila/CF-BookingService/pkg/types"
)

func TestValidateDate(t *testing.T) {
	now := time.Date(2025, 10, 14, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    time.Time
		months  int
		wantErr bool
	}{
		{name: "today", date: time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC), months: 1},
		{name: "inside window", date: time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC), months: 1},
		{name: "last day of window", date: time.Date(2025, 11, 13, 0, 0, 0, 0, time.UTC), months: 1},
		{name: "window end is exclusive", date: time.Date(2025, 11, 14, 0, 0, 0, 0, time.UTC), months: 1, wantErr: true},
		{name: "past date", date: time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC), months: 1, wantErr: true},
		{name: "wider window", date: time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC), months: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDate(tt.date, now, tt.months)
			if tt.wantErr && err == nil {
				t.Fatalf("expected error for %s", tt.date.Format(domain.DateFormat))
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error for %s: %v", tt.date.Format(domain.DateFormat), err)
			}
		})
	}
}

func TestValidateSlot(t *testing.T) {
	prof := &domain.Professional{WorkStart: "09:00", WorkEnd: "18:00"}

	tests := []struct {
		name     string
		slot     types.TimeString
		interval int
		wantErr  bool
	}{
		{name: "aligned half hour", slot: "10:30", interval: 30},
		{name: "aligned whole hour", slot: "10:00", interval: 30},
		{name: "off grid", slot: "10:15", interval: 30, wantErr: true},
		{name: "half hour rejected on hourly grid", slot: "10:30", interval: 60, wantErr: true},
		{name: "before opening", slot: "08:30", interval: 30, wantErr: true},
		{name: "closing time rejected", slot: "18:00", interval: 30, wantErr: true},
		{name: "last slot before closing", slot: "17:30", interval: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSlot(tt.slot, prof, tt.interval)
			if tt.wantErr && err == nil {
				t.Fatalf("expected error for slot %s", tt.slot)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error for slot %s: %v", tt.slot, err)
			}
		})
	}
}

func TestValidateNotPastSlot(t *testing.T) {
	now := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	today := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	if err := validateNotPastSlot("09:30", today, now); err == nil {
		t.Error("expected error for a slot earlier today")
	}
	if err := validateNotPastSlot("10:00", today, now); err == nil {
		t.Error("expected error for a slot exactly at the current time")
	}
	if err := validateNotPastSlot("10:30", today, now); err != nil {
		t.Errorf("unexpected error for a future slot today: %v", err)
	}
	if err := validateNotPastSlot("09:30", today.AddDate(0, 0, 1), now); err != nil {
		t.Errorf("unexpected error for a morning slot tomorrow: %v", err)
	}
}

func TestHasOverlap(t *testing.T) {
	appointments := []*domain.Appointment{
		{StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusScheduled},
		{StartTime: "14:00", DurationMinutes: 30, Status: domain.StatusCancelled},
	}

	if !hasOverlap("10:30", 30, appointments) {
		t.Error("10:30 must conflict with the 10:00-11:00 appointment")
	}
	if hasOverlap("11:00", 30, appointments) {
		t.Error("bordering slot 11:00 must not conflict")
	}
	if hasOverlap("14:00", 30, appointments) {
		t.Error("cancelled appointment must not occupy the slot")
	}
	if !hasOverlap("09:30", 45, appointments) {
		t.Error("45-minute service starting 09:30 must reach into the 10:00 appointment")
	}
}

func TestValidateRequest(t *testing.T) {
	valid := func() *Request {
		return &Request{
			ServiceID:      10,
			ProfessionalID: 1,
			Date:           time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
			StartTime:      "10:00",
			ClientName:     "João Silva",
			ClientPhone:    "(11) 98765-4321",
		}
	}

	if err := validateRequest(valid()); err != nil {
		t.Fatalf("unexpected error for valid request: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "missing service", mutate: func(r *Request) { r.ServiceID = 0 }},
		{name: "missing professional", mutate: func(r *Request) { r.ProfessionalID = 0 }},
		{name: "missing date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "malformed time", mutate: func(r *Request) { r.StartTime = "10h30" }},
		{name: "blank name", mutate: func(r *Request) { r.ClientName = "   " }},
		{name: "blank phone", mutate: func(r *Request) { r.ClientPhone = "" }},
		{name: "zero product quantity", mutate: func(r *Request) {
			r.Products = []domain.ProductLine{{ProductID: 3, Quantity: 0}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)
			if err := validateRequest(req); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
