package appointment

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/cortafila/CF-BookingService/internal/domain"
	"github.com/cortafila/CF-BookingService/pkg/dbmetrics"
	"github.com/cortafila/CF-BookingService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки Postgres при нарушении уникального ограничения
const uniqueViolation = "23505"

var appointmentColumns = []string{
	"id",
	"client_id",
	"client_name",
	"client_phone",
	"professional_id",
	"professional_name",
	"service_id",
	"service_name",
	"service_type",
	"duration_minutes",
	"price",
	"date",
	"start_time",
	"status",
	"payment_status",
	"products",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями (appointments)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись
// Частичный уникальный индекс (professional_id, date, start_time) для
// status='scheduled' закрывает гонку на уровне БД: проигравший коммит
// получает ErrSlotTaken
func (r *Repository) Create(ctx context.Context, apt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	products, err := json.Marshal(apt.Products)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal products: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"client_id",
			"client_name",
			"client_phone",
			"professional_id",
			"professional_name",
			"service_id",
			"service_name",
			"service_type",
			"duration_minutes",
			"price",
			"date",
			"start_time",
			"status",
			"payment_status",
			"products",
		).
		Values(
			apt.ClientID,
			apt.ClientName,
			apt.ClientPhone,
			apt.ProfessionalID,
			apt.ProfessionalName,
			apt.ServiceID,
			apt.ServiceName,
			apt.ServiceType,
			apt.DurationMinutes,
			apt.Price,
			apt.Date,
			apt.StartTime,
			apt.Status,
			apt.PaymentStatus,
			products,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&apt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	apt.CreatedAt = createdAt.Time
	apt.UpdatedAt = updatedAt.Time

	return apt, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments, err := r.scanAppointments(rows)
	if err != nil {
		return nil, err
	}
	if len(appointments) == 0 {
		return nil, ErrAppointmentNotFound
	}

	return appointments[0], nil
}

// GetWithFilter получает записи по фильтру агенды
//
// Внутри транзакции при фильтре на конкретную дату и профессионала добавляет
// FOR UPDATE: эту выборку делает usecase создания записи перед проверкой
// пересечений, и блокировка строк не даёт двум коммитам пройти проверку
// одновременно
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.AgendaFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments")

	if filter.ProfessionalID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"professional_id": *filter.ProfessionalID})
	}

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"date": *filter.Date})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		// Если не указан конкретный статус и неактивные не нужны - исключаем их
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	if filter.Date != nil {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("date DESC, start_time DESC")
	}

	if dbmetrics.IsInTransaction(ctx) && filter.Date != nil && filter.ProfessionalID != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// GetByClientPhone получает записи клиента по телефону
// Телефон сравнивается по нормализованной форме (только цифры)
func (r *Repository) GetByClientPhone(ctx context.Context, phone string, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Expr("regexp_replace(client_phone, '\\D', '', 'g') = regexp_replace(?, '\\D', '', 'g')", phone)).
		OrderBy("date ASC, start_time ASC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClientPhone - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClientPhone - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// UpdateStatus обновляет статус записи и, опционально, статус оплаты
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus, paymentStatus *domain.PaymentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if paymentStatus != nil {
		updateBuilder = updateBuilder.Set("payment_status", *paymentStatus)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// Cancel отменяет запись с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// Delete физически удаляет запись
// Аварийный инструмент администратора, в обычном потоке записи не удаляются
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var apt domain.Appointment
		var products []byte
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&apt.ID,
			&apt.ClientID,
			&apt.ClientName,
			&apt.ClientPhone,
			&apt.ProfessionalID,
			&apt.ProfessionalName,
			&apt.ServiceID,
			&apt.ServiceName,
			&apt.ServiceType,
			&apt.DurationMinutes,
			&apt.Price,
			&apt.Date,
			&apt.StartTime,
			&apt.Status,
			&apt.PaymentStatus,
			&products,
			&apt.CancellationReason,
			&apt.CancelledAt,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %w", ErrScanRow, err)
		}

		if len(products) > 0 {
			if err := json.Unmarshal(products, &apt.Products); err != nil {
				return nil, fmt.Errorf("%w: scanAppointments - unmarshal products: %w", ErrScanRow, err)
			}
		}

		apt.CreatedAt = createdAt.Time
		apt.UpdatedAt = updatedAt.Time

		appointments = append(appointments, &apt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %w", ErrScanRow, err)
	}

	return appointments, nil
}
