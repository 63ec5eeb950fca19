package domain

// Default configuration values
const (
	DefaultScheduleMonthsAhead = 1
	DefaultTimeSlotInterval    = 30
)

// Business validation constants
const (
	MinScheduleMonthsAhead = 1
	MaxScheduleMonthsAhead = 3

	MinServiceDurationMinutes = 1
	MaxServiceDurationMinutes = 480 // 8 hours

	MaxReasonLength = 500
	MaxNameLength   = 200
)

// Valid slot granularities, minutes
var AllowedTimeSlotIntervals = []int{30, 60}

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultWhatsAppMessage шаблон подтверждения, плейсхолдеры заполняются
// при создании записи
const DefaultWhatsAppMessage = `✅ Olá {nome}! Seu agendamento foi confirmado!

📋 *Serviço:* {servico}
👤 *Profissional:* {profissional}
📅 *Data:* {data}
🕐 *Horário:* {horario}

Aguardamos você! 🙏`
