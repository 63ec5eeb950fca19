package whatsapp

import (
	"strings"
	"testing"
	"time"
)

func TestFillTemplate(t *testing.T) {
	template := "Olá {nome}! {servico} com {profissional} em {data} às {horario}."

	got := FillTemplate(template, MessageData{
		ClientName:       "João Silva",
		ServiceName:      "Corte Masculino",
		ProfessionalName: "Carlos",
		Date:             time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:        "10:00",
	})

	want := "Olá João Silva! Corte Masculino com Carlos em 15/10/2025 às 10:00."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFillTemplate_UnknownPlaceholderPassesThrough(t *testing.T) {
	got := FillTemplate("Oi {nome}, código {codigo}", MessageData{ClientName: "Ana"})
	if got != "Oi Ana, código {codigo}" {
		t.Fatalf("unexpected result: %q", got)
	}
}

func TestLink(t *testing.T) {
	tests := []struct {
		name       string
		phone      string
		wantPrefix string
	}{
		{name: "formatted mobile gets country code", phone: "(11) 98765-4321", wantPrefix: "https://wa.me/5511987654321?text="},
		{name: "landline gets country code", phone: "(11) 3333-4444", wantPrefix: "https://wa.me/551133334444?text="},
		{name: "already international", phone: "+55 11 98765-4321", wantPrefix: "https://wa.me/5511987654321?text="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Link(tt.phone, "Olá! Confirmação")
			if !strings.HasPrefix(got, tt.wantPrefix) {
				t.Fatalf("expected prefix %q, got %q", tt.wantPrefix, got)
			}
			if strings.ContainsAny(got, " !") {
				t.Fatalf("message must be URL-escaped: %q", got)
			}
		})
	}
}
