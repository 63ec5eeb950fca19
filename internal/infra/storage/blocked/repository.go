package blocked

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/cortafila/CF-BookingService/internal/domain"
	"github.com/cortafila/CF-BookingService/pkg/dbmetrics"
	"github.com/cortafila/CF-BookingService/pkg/psqlbuilder"
)

const uniqueViolationCode = "23505"

var blockedDayColumns = []string{
	"id",
	"professional_id",
	"date",
	"reason",
	"created_at",
}

var blockedTimeColumns = []string{
	"id",
	"professional_id",
	"date",
	"time",
	"reason",
	"created_at",
}

// Repository репозиторий для блокировок дней и отдельных слотов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateDay блокирует день целиком для профессионала
func (r *Repository) CreateDay(ctx context.Context, day *domain.BlockedDay) (*domain.BlockedDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_days").
		Columns("professional_id", "date", "reason").
		Values(day.ProfessionalID, day.Date, day.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateDay - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&day.ID, &createdAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolationCode {
			return nil, ErrDayAlreadyBlocked
		}
		return nil, fmt.Errorf("%w: CreateDay - execute insert: %w", ErrExecQuery, err)
	}

	day.CreatedAt = createdAt.Time

	return day, nil
}

// GetDayByID получает блокировку дня по ID
func (r *Repository) GetDayByID(ctx context.Context, id int64) (*domain.BlockedDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockedDayColumns...).
		From("blocked_days").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDayByID - build select query: %v", ErrBuildQuery, err)
	}

	var day domain.BlockedDay
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&day.ID,
		&day.ProfessionalID,
		&day.Date,
		&day.Reason,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBlockedDayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDayByID - execute query: %w", ErrExecQuery, err)
	}

	day.CreatedAt = createdAt.Time

	return &day, nil
}

// GetDayForProfessional проверяет блокировку конкретного дня профессионала
func (r *Repository) GetDayForProfessional(ctx context.Context, professionalID int64, date time.Time) (*domain.BlockedDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockedDayColumns...).
		From("blocked_days").
		Where(squirrel.Eq{
			"professional_id": professionalID,
			"date":            date,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDayForProfessional - build select query: %v", ErrBuildQuery, err)
	}

	var day domain.BlockedDay
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&day.ID,
		&day.ProfessionalID,
		&day.Date,
		&day.Reason,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBlockedDayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDayForProfessional - execute query: %w", ErrExecQuery, err)
	}

	day.CreatedAt = createdAt.Time

	return &day, nil
}

// ListDaysByProfessional получает блокировки дней профессионала
func (r *Repository) ListDaysByProfessional(ctx context.Context, professionalID int64) ([]*domain.BlockedDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockedDayColumns...).
		From("blocked_days").
		Where(squirrel.Eq{"professional_id": professionalID}).
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListDaysByProfessional - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDaysByProfessional - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanDays(rows)
}

// GetDaysInRange получает все блокировки дней в интервале дат включительно
// Используется движком доступности, поэтому выбирает по всем профессионалам сразу
func (r *Repository) GetDaysInRange(ctx context.Context, from, to time.Time) ([]*domain.BlockedDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockedDayColumns...).
		From("blocked_days").
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDaysInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDaysInRange - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanDays(rows)
}

// DeleteDay снимает блокировку дня
func (r *Repository) DeleteDay(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_days").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteDay - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteDay - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteDay - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockedDayNotFound
	}

	return nil
}

// CreateTime блокирует один слот для профессионала
func (r *Repository) CreateTime(ctx context.Context, bt *domain.BlockedTime) (*domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_times").
		Columns("professional_id", "date", "time", "reason").
		Values(bt.ProfessionalID, bt.Date, bt.Time, bt.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateTime - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&bt.ID, &createdAt)

	if err != nil {
		return nil, fmt.Errorf("%w: CreateTime - execute insert: %w", ErrExecQuery, err)
	}

	bt.CreatedAt = createdAt.Time

	return bt, nil
}

// GetTimeByID получает блокировку слота по ID
func (r *Repository) GetTimeByID(ctx context.Context, id int64) (*domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockedTimeColumns...).
		From("blocked_times").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetTimeByID - build select query: %v", ErrBuildQuery, err)
	}

	var bt domain.BlockedTime
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&bt.ID,
		&bt.ProfessionalID,
		&bt.Date,
		&bt.Time,
		&bt.Reason,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBlockedTimeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetTimeByID - execute query: %w", ErrExecQuery, err)
	}

	bt.CreatedAt = createdAt.Time

	return &bt, nil
}

// GetTimesForDate получает блокировки слотов профессионала на дату
func (r *Repository) GetTimesForDate(ctx context.Context, professionalID int64, date time.Time) ([]*domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockedTimeColumns...).
		From("blocked_times").
		Where(squirrel.Eq{
			"professional_id": professionalID,
			"date":            date,
		}).
		OrderBy("time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetTimesForDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetTimesForDate - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	blockedTimes := make([]*domain.BlockedTime, 0)

	for rows.Next() {
		var bt domain.BlockedTime
		var createdAt sql.NullTime

		err := rows.Scan(
			&bt.ID,
			&bt.ProfessionalID,
			&bt.Date,
			&bt.Time,
			&bt.Reason,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: GetTimesForDate - scan row: %w", ErrScanRow, err)
		}

		bt.CreatedAt = createdAt.Time

		blockedTimes = append(blockedTimes, &bt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetTimesForDate - rows error: %w", ErrScanRow, err)
	}

	return blockedTimes, nil
}

// DeleteTime снимает блокировку слота
func (r *Repository) DeleteTime(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_times").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteTime - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteTime - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteTime - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockedTimeNotFound
	}

	return nil
}

// scanDays сканирует результаты запроса в слайс блокировок дней
func (r *Repository) scanDays(rows *sql.Rows) ([]*domain.BlockedDay, error) {
	days := make([]*domain.BlockedDay, 0)

	for rows.Next() {
		var day domain.BlockedDay
		var createdAt sql.NullTime

		err := rows.Scan(
			&day.ID,
			&day.ProfessionalID,
			&day.Date,
			&day.Reason,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanDays - scan row: %w", ErrScanRow, err)
		}

		day.CreatedAt = createdAt.Time

		days = append(days, &day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanDays - rows error: %w", ErrScanRow, err)
	}

	return days, nil
}
