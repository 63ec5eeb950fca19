package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/cortafila/CF-BookingService/internal/domain"
	"github.com/cortafila/CF-BookingService/pkg/dbmetrics"
	"github.com/cortafila/CF-BookingService/pkg/psqlbuilder"
)

var settingsColumns = []string{
	"id",
	"schedule_months_ahead",
	"time_slot_interval",
	"inactive_days",
	"whatsapp_message",
	"show_products_in_booking",
	"business_name",
	"business_phone",
	"business_cnpj",
	"business_address",
	"company_logo",
	"updated_at",
}

// Repository репозиторий настроек бизнеса
// Таблица хранит не более одной строки, отсутствие строки означает дефолты
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает текущие настройки либо дефолтные, если строка еще не создана
func (r *Repository) Get(ctx context.Context) (*domain.BusinessSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(settingsColumns...).
		From("business_settings").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.BusinessSettings
	var inactiveDays pq.Int64Array
	var companyLogo sql.NullString
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.ScheduleMonthsAhead,
		&s.TimeSlotInterval,
		&inactiveDays,
		&s.WhatsAppMessage,
		&s.ShowProductsInBooking,
		&s.BusinessName,
		&s.BusinessPhone,
		&s.BusinessCnpj,
		&s.BusinessAddress,
		&companyLogo,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return domain.DefaultSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - execute query: %w", ErrExecQuery, err)
	}

	s.InactiveDays = make([]int, len(inactiveDays))
	for i, d := range inactiveDays {
		s.InactiveDays[i] = int(d)
	}
	if companyLogo.Valid {
		s.CompanyLogo = &companyLogo.String
	}
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// Upsert сохраняет настройки, создавая строку при первом сохранении
func (r *Repository) Upsert(ctx context.Context, s *domain.BusinessSettings) (*domain.BusinessSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	inactiveDays := make([]int64, len(s.InactiveDays))
	for i, d := range s.InactiveDays {
		inactiveDays[i] = int64(d)
	}

	// id фиксирован в 1, единственная строка настроек
	query, args, err := psqlbuilder.Insert("business_settings").
		Columns(
			"id",
			"schedule_months_ahead",
			"time_slot_interval",
			"inactive_days",
			"whatsapp_message",
			"show_products_in_booking",
			"business_name",
			"business_phone",
			"business_cnpj",
			"business_address",
			"company_logo",
		).
		Values(
			1,
			s.ScheduleMonthsAhead,
			s.TimeSlotInterval,
			pq.Array(inactiveDays),
			s.WhatsAppMessage,
			s.ShowProductsInBooking,
			s.BusinessName,
			s.BusinessPhone,
			s.BusinessCnpj,
			s.BusinessAddress,
			s.CompanyLogo,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			schedule_months_ahead = EXCLUDED.schedule_months_ahead,
			time_slot_interval = EXCLUDED.time_slot_interval,
			inactive_days = EXCLUDED.inactive_days,
			whatsapp_message = EXCLUDED.whatsapp_message,
			show_products_in_booking = EXCLUDED.show_products_in_booking,
			business_name = EXCLUDED.business_name,
			business_phone = EXCLUDED.business_phone,
			business_cnpj = EXCLUDED.business_cnpj,
			business_address = EXCLUDED.business_address,
			company_logo = EXCLUDED.company_logo,
			updated_at = NOW()
			RETURNING id, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &updatedAt)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %w", ErrExecQuery, err)
	}

	s.UpdatedAt = updatedAt.Time

	return s, nil
}
