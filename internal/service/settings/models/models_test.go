package models

import (
	"testing"

	"github.com/cortafila/CF-BookingService/internal/domain"
)

func validUpdateRequest() *UpdateSettingsRequest {
	return &UpdateSettingsRequest{
		ScheduleMonthsAhead: 1,
		TimeSlotInterval:    30,
		InactiveDays:        []int{0},
		BusinessName:        "Barbearia Central",
		BusinessPhone:       "(11) 3333-4444",
	}
}

func TestUpdateSettingsRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *UpdateSettingsRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *UpdateSettingsRequest) {}},
		{name: "window upper bound", mutate: func(r *UpdateSettingsRequest) { r.ScheduleMonthsAhead = 3 }},
		{name: "window too small", mutate: func(r *UpdateSettingsRequest) { r.ScheduleMonthsAhead = 0 }, wantErr: true},
		{name: "window too large", mutate: func(r *UpdateSettingsRequest) { r.ScheduleMonthsAhead = 4 }, wantErr: true},
		{name: "hourly interval", mutate: func(r *UpdateSettingsRequest) { r.TimeSlotInterval = 60 }},
		{name: "unsupported interval", mutate: func(r *UpdateSettingsRequest) { r.TimeSlotInterval = 15 }, wantErr: true},
		{name: "no inactive days", mutate: func(r *UpdateSettingsRequest) { r.InactiveDays = nil }},
		{name: "inactive day out of range", mutate: func(r *UpdateSettingsRequest) { r.InactiveDays = []int{7} }, wantErr: true},
		{name: "duplicate inactive days", mutate: func(r *UpdateSettingsRequest) { r.InactiveDays = []int{0, 0} }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validUpdateRequest()
			tt.mutate(req)

			err := req.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestUpdateSettingsRequestToDomain_EmptyMessageFallsBackToDefault(t *testing.T) {
	req := validUpdateRequest()

	settings := req.ToDomain()
	if settings.WhatsAppMessage != domain.DefaultWhatsAppMessage {
		t.Fatalf("expected default template, got %q", settings.WhatsAppMessage)
	}

	req.WhatsAppMessage = "Oi {nome}!"
	if got := req.ToDomain().WhatsAppMessage; got != "Oi {nome}!" {
		t.Fatalf("custom template overwritten: %q", got)
	}
}
