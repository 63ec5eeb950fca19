package professional

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/cortafila/CF-BookingService/internal/domain"
	"github.com/cortafila/CF-BookingService/pkg/dbmetrics"
	"github.com/cortafila/CF-BookingService/pkg/psqlbuilder"
)

var professionalColumns = []string{
	"id",
	"name",
	"avatar",
	"photo",
	"role",
	"phone",
	"email",
	"service_ids",
	"work_days",
	"work_start",
	"work_end",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с профессионалами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория профессионалов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового профессионала
func (r *Repository) Create(ctx context.Context, prof *domain.Professional) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("professionals").
		Columns(
			"name",
			"avatar",
			"photo",
			"role",
			"phone",
			"email",
			"service_ids",
			"work_days",
			"work_start",
			"work_end",
		).
		Values(
			prof.Name,
			prof.Avatar,
			prof.Photo,
			prof.Role,
			prof.Phone,
			prof.Email,
			pq.Array(prof.ServiceIDs),
			pq.Array(workDaysToInt64(prof.WorkDays)),
			prof.WorkStart,
			prof.WorkEnd,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&prof.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	prof.CreatedAt = createdAt.Time
	prof.UpdatedAt = updatedAt.Time

	return prof, nil
}

// Update обновляет данные профессионала
func (r *Repository) Update(ctx context.Context, id int64, prof *domain.Professional) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("professionals").
		Set("name", prof.Name).
		Set("avatar", prof.Avatar).
		Set("photo", prof.Photo).
		Set("role", prof.Role).
		Set("phone", prof.Phone).
		Set("email", prof.Email).
		Set("service_ids", pq.Array(prof.ServiceIDs)).
		Set("work_days", pq.Array(workDaysToInt64(prof.WorkDays))).
		Set("work_start", prof.WorkStart).
		Set("work_end", prof.WorkEnd).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrProfessionalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	prof.ID = id
	prof.CreatedAt = createdAt.Time
	prof.UpdatedAt = updatedAt.Time

	return prof, nil
}

// GetByID получает профессионала по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(professionalColumns...).
		From("professionals").
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

	professionals, err := r.scanProfessionals(rows)
	if err != nil {
		return nil, err
	}
	if len(professionals) == 0 {
		return nil, ErrProfessionalNotFound
	}

	return professionals[0], nil
}

// List получает всех профессионалов в порядке создания
// Порядок выдачи и есть порядок отображения, ранжирования нет
func (r *Repository) List(ctx context.Context) ([]*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(professionalColumns...).
		From("professionals").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanProfessionals(rows)
}

// scanProfessionals сканирует результаты запроса в слайс профессионалов
func (r *Repository) scanProfessionals(rows *sql.Rows) ([]*domain.Professional, error) {
	professionals := make([]*domain.Professional, 0)

	for rows.Next() {
		var prof domain.Professional
		var serviceIDs pq.Int64Array
		var workDays pq.Int64Array
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&prof.ID,
			&prof.Name,
			&prof.Avatar,
			&prof.Photo,
			&prof.Role,
			&prof.Phone,
			&prof.Email,
			&serviceIDs,
			&workDays,
			&prof.WorkStart,
			&prof.WorkEnd,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanProfessionals - scan row: %w", ErrScanRow, err)
		}

		prof.ServiceIDs = serviceIDs
		prof.WorkDays = int64ToWorkDays(workDays)
		prof.CreatedAt = createdAt.Time
		prof.UpdatedAt = updatedAt.Time

		professionals = append(professionals, &prof)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanProfessionals - rows error: %w", ErrScanRow, err)
	}

	return professionals, nil
}

func workDaysToInt64(days []int) []int64 {
	result := make([]int64, len(days))
	for i, d := range days {
		result[i] = int64(d)
	}
	return result
}

func int64ToWorkDays(days []int64) []int {
	result := make([]int, len(days))
	for i, d := range days {
		result[i] = int(d)
	}
	return result
}
