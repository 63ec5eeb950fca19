package client

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/cortafila/CF-BookingService/internal/domain"
	"github.com/cortafila/CF-BookingService/pkg/dbmetrics"
	"github.com/cortafila/CF-BookingService/pkg/psqlbuilder"
)

var clientColumns = []string{
	"id",
	"name",
	"phone",
	"email",
	"total_visits",
	"last_visit",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с клиентами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового клиента
func (r *Repository) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("clients").
		Columns("name", "phone", "email").
		Values(client.Name, client.Phone, client.Email).
		Suffix("RETURNING id, total_visits, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&client.ID,
		&client.TotalVisits,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	client.CreatedAt = createdAt.Time
	client.UpdatedAt = updatedAt.Time

	return client, nil
}

// GetByPhone ищет клиента по телефону
// Сравнение по цифрам, форматирование номера игнорируется
func (r *Repository) GetByPhone(ctx context.Context, phone string) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(clientColumns...).
		From("clients").
		Where(squirrel.Expr(
			"regexp_replace(phone, '[^0-9]', '', 'g') = regexp_replace(?, '[^0-9]', '', 'g')",
			phone,
		)).
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - build select query: %v", ErrBuildQuery, err)
	}

	var client domain.Client
	var lastVisit sql.NullTime
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&client.ID,
		&client.Name,
		&client.Phone,
		&client.Email,
		&client.TotalVisits,
		&lastVisit,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - execute query: %w", ErrExecQuery, err)
	}

	if lastVisit.Valid {
		client.LastVisit = &lastVisit.Time
	}
	client.CreatedAt = createdAt.Time
	client.UpdatedAt = updatedAt.Time

	return &client, nil
}

// RegisterVisit увеличивает счетчик визитов и фиксирует дату последнего визита
func (r *Repository) RegisterVisit(ctx context.Context, id int64, visitDate time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("clients").
		Set("total_visits", squirrel.Expr("total_visits + 1")).
		Set("last_visit", visitDate).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: RegisterVisit - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: RegisterVisit - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: RegisterVisit - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrClientNotFound
	}

	return nil
}
