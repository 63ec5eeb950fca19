package types

import (
	"testing"
	"time"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid", input: "10:30", want: "10:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "normalizes padding", input: "9:30", want: "09:30"},
		{name: "invalid hour", input: "25:00", wantErr: true},
		{name: "invalid minute", input: "10:75", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	tests := []struct {
		input TimeString
		want  int
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"18:00", 1080},
		{"23:59", 1439},
	}

	for _, tt := range tests {
		if got := tt.input.Minutes(); got != tt.want {
			t.Errorf("%s: expected %d minutes, got %d", tt.input, tt.want, got)
		}
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("10:00").AddMinutes(45)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "10:45" {
		t.Fatalf("expected 10:45, got %s", got)
	}

	if _, err := TimeString("23:30").AddMinutes(60); err == nil {
		t.Fatal("expected error when crossing midnight")
	}
}

func TestTimeString_Ordering(t *testing.T) {
	if !TimeString("09:00").IsBefore("10:30") {
		t.Error("09:00 should be before 10:30")
	}
	if !TimeString("18:00").IsAfter("17:30") {
		t.Error("18:00 should be after 17:30")
	}
	if TimeString("10:00").IsBefore("10:00") || TimeString("10:00").IsAfter("10:00") {
		t.Error("equal values must not compare as before or after")
	}
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString
	if err := ts.Scan("10:00:00"); err != nil {
		t.Fatalf("unexpected error scanning TIME with seconds: %v", err)
	}
	if ts != "10:00" {
		t.Fatalf("expected 10:00, got %s", ts)
	}

	if err := ts.Scan(time.Date(2025, 10, 15, 14, 30, 0, 0, time.UTC)); err != nil {
		t.Fatalf("unexpected error scanning time.Time: %v", err)
	}
	if ts != "14:30" {
		t.Fatalf("expected 14:30, got %s", ts)
	}

	if err := ts.Scan(nil); err != nil {
		t.Fatalf("unexpected error scanning nil: %v", err)
	}
	if !ts.IsZero() {
		t.Fatalf("expected zero value after scanning nil, got %s", ts)
	}
}
