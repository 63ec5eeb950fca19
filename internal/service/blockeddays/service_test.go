package blockeddays

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortafila/CF-BookingService/internal/domain"
	blockedRepo "github.com/cortafila/CF-BookingService/internal/infra/storage/blocked"
	"github.com/cortafila/CF-BookingService/internal/integrations/authservice"
	"github.com/cortafila/CF-BookingService/internal/service/blockeddays/models"
	"github.com/cortafila/CF-BookingService/pkg/ptr"
)

type fakeBlockedRepo struct {
	days         map[int64]*domain.BlockedDay
	times        map[int64]*domain.BlockedTime
	createDayErr error
	nextID       int64
}

func newFakeBlockedRepo() *fakeBlockedRepo {
	return &fakeBlockedRepo{
		days:   make(map[int64]*domain.BlockedDay),
		times:  make(map[int64]*domain.BlockedTime),
		nextID: 1,
	}
}

func (f *fakeBlockedRepo) CreateDay(_ context.Context, day *domain.BlockedDay) (*domain.BlockedDay, error) {
	if f.createDayErr != nil {
		return nil, f.createDayErr
	}
	created := *day
	created.ID = f.nextID
	f.nextID++
	f.days[created.ID] = &created
	return &created, nil
}

func (f *fakeBlockedRepo) GetDayByID(_ context.Context, id int64) (*domain.BlockedDay, error) {
	day, ok := f.days[id]
	if !ok {
		return nil, blockedRepo.ErrBlockedDayNotFound
	}
	return day, nil
}

func (f *fakeBlockedRepo) ListDaysByProfessional(_ context.Context, professionalID int64) ([]*domain.BlockedDay, error) {
	result := make([]*domain.BlockedDay, 0)
	for _, day := range f.days {
		if day.ProfessionalID == professionalID {
			result = append(result, day)
		}
	}
	return result, nil
}

func (f *fakeBlockedRepo) DeleteDay(_ context.Context, id int64) error {
	if _, ok := f.days[id]; !ok {
		return blockedRepo.ErrBlockedDayNotFound
	}
	delete(f.days, id)
	return nil
}

func (f *fakeBlockedRepo) CreateTime(_ context.Context, bt *domain.BlockedTime) (*domain.BlockedTime, error) {
	created := *bt
	created.ID = f.nextID
	f.nextID++
	f.times[created.ID] = &created
	return &created, nil
}

func (f *fakeBlockedRepo) GetTimeByID(_ context.Context, id int64) (*domain.BlockedTime, error) {
	bt, ok := f.times[id]
	if !ok {
		return nil, blockedRepo.ErrBlockedTimeNotFound
	}
	return bt, nil
}

func (f *fakeBlockedRepo) DeleteTime(_ context.Context, id int64) error {
	if _, ok := f.times[id]; !ok {
		return blockedRepo.ErrBlockedTimeNotFound
	}
	delete(f.times, id)
	return nil
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (f *fakeAppointmentRepo) GetWithFilter(_ context.Context, _ domain.AgendaFilter) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

type fakeProfessionalRepo struct {
	professional *domain.Professional
	err          error
}

func (f *fakeProfessionalRepo) GetByID(_ context.Context, _ int64) (*domain.Professional, error) {
	return f.professional, f.err
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func admin() *authservice.User {
	return &authservice.User{ID: 1, Name: "Admin", Role: authservice.RoleAdmin}
}

func employee(professionalID int64) *authservice.User {
	return &authservice.User{
		ID:             2,
		Name:           "Employee",
		Role:           authservice.RoleEmployee,
		ProfessionalID: ptr.Ptr(professionalID),
	}
}

func newTestService(blocked *fakeBlockedRepo, appointments *fakeAppointmentRepo) *Service {
	return NewService(
		blocked,
		appointments,
		&fakeProfessionalRepo{professional: &domain.Professional{ID: 1, Name: "Carlos"}},
		fakeTxManager{},
		noopLogger{},
	)
}

func TestBlockDay_Success(t *testing.T) {
	blocked := newFakeBlockedRepo()
	svc := newTestService(blocked, &fakeAppointmentRepo{})

	resp, err := svc.BlockDay(context.Background(), admin(), &models.BlockDayRequest{
		ProfessionalID: 1,
		Date:           "2025-10-15",
		Reason:         ptr.Ptr("folga"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-10-15", resp.Date)
	assert.Len(t, blocked.days, 1)
}

func TestBlockDay_RejectedWhenDayHasAppointments(t *testing.T) {
	blocked := newFakeBlockedRepo()
	svc := newTestService(blocked, &fakeAppointmentRepo{appointments: []*domain.Appointment{
		{ID: 5, Status: domain.StatusScheduled, StartTime: "10:00"},
	}})

	_, err := svc.BlockDay(context.Background(), admin(), &models.BlockDayRequest{
		ProfessionalID: 1,
		Date:           "2025-10-15",
	})
	assert.ErrorIs(t, err, ErrDayHasAppointments)
	assert.Empty(t, blocked.days)
}

func TestBlockDay_AlreadyBlocked(t *testing.T) {
	blocked := newFakeBlockedRepo()
	blocked.createDayErr = blockedRepo.ErrDayAlreadyBlocked
	svc := newTestService(blocked, &fakeAppointmentRepo{})

	_, err := svc.BlockDay(context.Background(), admin(), &models.BlockDayRequest{
		ProfessionalID: 1,
		Date:           "2025-10-15",
	})
	assert.ErrorIs(t, err, ErrDayAlreadyBlocked)
}

func TestBlockDay_EmployeeCannotManageOthers(t *testing.T) {
	svc := newTestService(newFakeBlockedRepo(), &fakeAppointmentRepo{})

	_, err := svc.BlockDay(context.Background(), employee(2), &models.BlockDayRequest{
		ProfessionalID: 1,
		Date:           "2025-10-15",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestBlockDay_EmployeeManagesOwnSchedule(t *testing.T) {
	svc := newTestService(newFakeBlockedRepo(), &fakeAppointmentRepo{})

	_, err := svc.BlockDay(context.Background(), employee(1), &models.BlockDayRequest{
		ProfessionalID: 1,
		Date:           "2025-10-15",
	})
	require.NoError(t, err)
}

func TestBlockDay_InvalidDate(t *testing.T) {
	svc := newTestService(newFakeBlockedRepo(), &fakeAppointmentRepo{})

	_, err := svc.BlockDay(context.Background(), admin(), &models.BlockDayRequest{
		ProfessionalID: 1,
		Date:           "15/10/2025",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUnblockDay(t *testing.T) {
	blocked := newFakeBlockedRepo()
	svc := newTestService(blocked, &fakeAppointmentRepo{})

	created, err := svc.BlockDay(context.Background(), admin(), &models.BlockDayRequest{
		ProfessionalID: 1,
		Date:           "2025-10-15",
	})
	require.NoError(t, err)

	require.NoError(t, svc.UnblockDay(context.Background(), admin(), created.ID))
	assert.Empty(t, blocked.days)

	err = svc.UnblockDay(context.Background(), admin(), created.ID)
	assert.ErrorIs(t, err, ErrBlockedDayNotFound)
}

func TestUnblockDay_EmployeeCannotUnblockOthers(t *testing.T) {
	blocked := newFakeBlockedRepo()
	svc := newTestService(blocked, &fakeAppointmentRepo{})

	created, err := svc.BlockDay(context.Background(), admin(), &models.BlockDayRequest{
		ProfessionalID: 1,
		Date:           "2025-10-15",
	})
	require.NoError(t, err)

	err = svc.UnblockDay(context.Background(), employee(2), created.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestBlockTime_Success(t *testing.T) {
	blocked := newFakeBlockedRepo()
	svc := newTestService(blocked, &fakeAppointmentRepo{})

	resp, err := svc.BlockTime(context.Background(), admin(), &models.BlockTimeRequest{
		ProfessionalID: 1,
		Date:           "2025-10-15",
		Time:           "14:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "14:00", resp.Time)
	assert.Len(t, blocked.times, 1)
}

func TestBlockTime_InvalidTime(t *testing.T) {
	svc := newTestService(newFakeBlockedRepo(), &fakeAppointmentRepo{})

	_, err := svc.BlockTime(context.Background(), admin(), &models.BlockTimeRequest{
		ProfessionalID: 1,
		Date:           "2025-10-15",
		Time:           "2pm",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUnblockTime(t *testing.T) {
	blocked := newFakeBlockedRepo()
	svc := newTestService(blocked, &fakeAppointmentRepo{})

	created, err := svc.BlockTime(context.Background(), admin(), &models.BlockTimeRequest{
		ProfessionalID: 1,
		Date:           "2025-10-15",
		Time:           "14:00",
	})
	require.NoError(t, err)

	require.NoError(t, svc.UnblockTime(context.Background(), admin(), created.ID))
	assert.Empty(t, blocked.times)
}

func TestListDays_EmployeeSeesOwnOnly(t *testing.T) {
	blocked := newFakeBlockedRepo()
	svc := newTestService(blocked, &fakeAppointmentRepo{})

	_, err := svc.ListDays(context.Background(), employee(2), 1)
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := svc.ListDays(context.Background(), employee(1), 1)
	require.NoError(t, err)
	assert.Empty(t, resp.BlockedDays)
}
