// Package whatsapp fills the booking confirmation template and builds a
// wa.me deep link. Delivery is on the client: the app opens the link, no
// WhatsApp API integration is involved.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/cortafila/CF-BookingService/pkg/types"
)

// MessageData holds the values substituted into the template placeholders
type MessageData struct {
	ClientName       string
	ServiceName      string
	ProfessionalName string
	Date             time.Time
	StartTime        types.TimeString
}

// FillTemplate replaces the {nome}, {servico}, {profissional}, {data} and
// {horario} placeholders. Unknown placeholders pass through untouched.
func FillTemplate(template string, data MessageData) string {
	replacer := strings.NewReplacer(
		"{nome}", data.ClientName,
		"{servico}", data.ServiceName,
		"{profissional}", data.ProfessionalName,
		"{data}", data.Date.Format("02/01/2006"),
		"{horario}", data.StartTime.String(),
	)
	return replacer.Replace(template)
}

// Link builds a wa.me URL that opens a chat with the business phone and the
// prefilled message. Brazilian numbers without a country code get 55 prepended.
func Link(businessPhone, message string) string {
	digits := onlyDigits(businessPhone)
	if len(digits) == 10 || len(digits) == 11 {
		digits = "55" + digits
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits, url.QueryEscape(message))
}

// onlyDigits убирает из номера все, кроме цифр
func onlyDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
