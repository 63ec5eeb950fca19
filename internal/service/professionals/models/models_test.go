package models

import (
	"strings"
	"testing"
)

func validRequest() *ProfessionalRequest {
	return &ProfessionalRequest{
		Name:       "Carlos Mendes",
		Avatar:     "CM",
		Role:       "Barbeiro",
		Phone:      "(11) 98765-4321",
		ServiceIDs: []int64{10, 11},
		WorkDays:   []int{1, 2, 3, 4, 5},
		WorkStart:  "09:00",
		WorkEnd:    "18:00",
	}
}

func TestProfessionalRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *ProfessionalRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *ProfessionalRequest) {}},
		{name: "empty name", mutate: func(r *ProfessionalRequest) { r.Name = "  " }, wantErr: true},
		{name: "name too long", mutate: func(r *ProfessionalRequest) { r.Name = strings.Repeat("a", 201) }, wantErr: true},
		{name: "no work days", mutate: func(r *ProfessionalRequest) { r.WorkDays = nil }, wantErr: true},
		{name: "work day out of range", mutate: func(r *ProfessionalRequest) { r.WorkDays = []int{1, 7} }, wantErr: true},
		{name: "negative work day", mutate: func(r *ProfessionalRequest) { r.WorkDays = []int{-1} }, wantErr: true},
		{name: "duplicate work days", mutate: func(r *ProfessionalRequest) { r.WorkDays = []int{1, 1} }, wantErr: true},
		{name: "malformed work start", mutate: func(r *ProfessionalRequest) { r.WorkStart = "9am" }, wantErr: true},
		{name: "malformed work end", mutate: func(r *ProfessionalRequest) { r.WorkEnd = "25:00" }, wantErr: true},
		{name: "start equals end", mutate: func(r *ProfessionalRequest) { r.WorkStart = "18:00" }, wantErr: true},
		{name: "start after end", mutate: func(r *ProfessionalRequest) { r.WorkStart = "19:00" }, wantErr: true},
		{name: "no services", mutate: func(r *ProfessionalRequest) { r.ServiceIDs = nil }, wantErr: true},
		{name: "non-positive service id", mutate: func(r *ProfessionalRequest) { r.ServiceIDs = []int64{0} }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
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

func TestProfessionalRequestToDomain(t *testing.T) {
	req := validRequest()
	req.Name = "  Carlos Mendes  "
	req.WorkStart = "9:00"

	p := req.ToDomain()
	if p.Name != "Carlos Mendes" {
		t.Fatalf("name not trimmed: %q", p.Name)
	}
	if p.WorkStart.String() != "09:00" {
		t.Fatalf("workStart not normalized: %q", p.WorkStart)
	}
}
