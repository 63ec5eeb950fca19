package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortafila/CF-BookingService/internal/domain"
	blockedRepo "github.com/cortafila/CF-BookingService/internal/infra/storage/blocked"
	serviceRepo "github.com/cortafila/CF-BookingService/internal/infra/storage/service"
	"github.com/cortafila/CF-BookingService/pkg/types"
)

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

type fakeServiceRepo struct {
	service *domain.Service
	err     error
}

func (f *fakeServiceRepo) GetByID(_ context.Context, _ int64) (*domain.Service, error) {
	return f.service, f.err
}

type fakeBlockedRepo struct {
	blockedDay   *domain.BlockedDay
	blockedTimes []*domain.BlockedTime
}

func (f *fakeBlockedRepo) GetDayForProfessional(_ context.Context, _ int64, _ time.Time) (*domain.BlockedDay, error) {
	if f.blockedDay == nil {
		return nil, blockedRepo.ErrBlockedDayNotFound
	}
	return f.blockedDay, nil
}

func (f *fakeBlockedRepo) GetTimesForDate(_ context.Context, _ int64, _ time.Time) ([]*domain.BlockedTime, error) {
	return f.blockedTimes, nil
}

type fakeSettingsRepo struct {
	settings *domain.BusinessSettings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.BusinessSettings, error) {
	return f.settings, nil
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testProfessional() *domain.Professional {
	return &domain.Professional{
		ID:         1,
		Name:       "Carlos",
		ServiceIDs: []int64{10},
		WorkDays:   []int{1, 2, 3, 4, 5}, // Monday to Friday
		WorkStart:  "09:00",
		WorkEnd:    "12:00",
	}
}

func testService() *domain.Service {
	return &domain.Service{
		ID:              10,
		Name:            "Corte Masculino",
		Type:            domain.ServiceCorte,
		DurationMinutes: 30,
	}
}

func newTestUseCase(
	appointments *fakeAppointmentRepo,
	professionals *fakeProfessionalRepo,
	services *fakeServiceRepo,
	blocked *fakeBlockedRepo,
	settings *fakeSettingsRepo,
	now time.Time,
) *UseCase {
	uc := NewUseCase(appointments, professionals, services, blocked, settings, noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func TestExecute_FullGrid(t *testing.T) {
	// Среда 2025-10-15, запрос на будущий день
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 14, 8, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeProfessionalRepo{professional: testProfessional()},
		&fakeServiceRepo{service: testService()},
		&fakeBlockedRepo{},
		&fakeSettingsRepo{settings: domain.DefaultSettings()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: 1, ServiceID: 10, Date: date})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 6)

	for _, slot := range resp.Slots {
		assert.True(t, slot.Available, "slot %s should be available", slot.StartTime)
	}
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("11:30"), resp.Slots[5].StartTime)
}

func TestExecute_AppointmentOccupiesSlots(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 14, 8, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeAppointmentRepo{appointments: []*domain.Appointment{
			{StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusScheduled},
		}},
		&fakeProfessionalRepo{professional: testProfessional()},
		&fakeServiceRepo{service: testService()},
		&fakeBlockedRepo{},
		&fakeSettingsRepo{settings: domain.DefaultSettings()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: 1, ServiceID: 10, Date: date})
	require.NoError(t, err)

	availability := make(map[types.TimeString]bool, len(resp.Slots))
	for _, slot := range resp.Slots {
		availability[slot.StartTime] = slot.Available
	}

	assert.True(t, availability["09:00"])
	assert.True(t, availability["09:30"])
	assert.False(t, availability["10:00"])
	assert.False(t, availability["10:30"])
	assert.True(t, availability["11:00"])
	assert.True(t, availability["11:30"])
}

func TestExecute_PastSlotsToday(t *testing.T) {
	// Запрос на сегодня в середине рабочего дня
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeProfessionalRepo{professional: testProfessional()},
		&fakeServiceRepo{service: testService()},
		&fakeBlockedRepo{},
		&fakeSettingsRepo{settings: domain.DefaultSettings()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: 1, ServiceID: 10, Date: date})
	require.NoError(t, err)

	availability := make(map[types.TimeString]bool, len(resp.Slots))
	for _, slot := range resp.Slots {
		availability[slot.StartTime] = slot.Available
	}

	// Текущий час и все более раннее недоступно, будущее доступно
	assert.False(t, availability["09:00"])
	assert.False(t, availability["09:30"])
	assert.False(t, availability["10:00"])
	assert.True(t, availability["10:30"])
	assert.True(t, availability["11:00"])
}

func TestExecute_BlockedTime(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 14, 8, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeProfessionalRepo{professional: testProfessional()},
		&fakeServiceRepo{service: testService()},
		&fakeBlockedRepo{blockedTimes: []*domain.BlockedTime{{Time: "11:00"}}},
		&fakeSettingsRepo{settings: domain.DefaultSettings()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: 1, ServiceID: 10, Date: date})
	require.NoError(t, err)

	availability := make(map[types.TimeString]bool, len(resp.Slots))
	for _, slot := range resp.Slots {
		availability[slot.StartTime] = slot.Available
	}

	assert.False(t, availability["11:00"])
	assert.True(t, availability["11:30"])
}

func TestExecute_NonWorkDayReturnsEmpty(t *testing.T) {
	// Воскресенье не входит в график профессионала
	date := time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 14, 8, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeProfessionalRepo{professional: testProfessional()},
		&fakeServiceRepo{service: testService()},
		&fakeBlockedRepo{},
		&fakeSettingsRepo{settings: domain.DefaultSettings()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: 1, ServiceID: 10, Date: date})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_BlockedDayReturnsEmpty(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 14, 8, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeProfessionalRepo{professional: testProfessional()},
		&fakeServiceRepo{service: testService()},
		&fakeBlockedRepo{blockedDay: &domain.BlockedDay{ID: 5, ProfessionalID: 1, Date: date}},
		&fakeSettingsRepo{settings: domain.DefaultSettings()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: 1, ServiceID: 10, Date: date})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	now := time.Date(2025, 10, 14, 8, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeProfessionalRepo{professional: testProfessional()},
		&fakeServiceRepo{err: serviceRepo.ErrServiceNotFound},
		&fakeBlockedRepo{},
		&fakeSettingsRepo{settings: domain.DefaultSettings()},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{
		ProfessionalID: 1,
		ServiceID:      99,
		Date:           time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_ServiceNotOffered(t *testing.T) {
	now := time.Date(2025, 10, 14, 8, 0, 0, 0, time.UTC)
	otherService := &domain.Service{ID: 20, Name: "Barba", Type: domain.ServiceBarba, DurationMinutes: 30}

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeProfessionalRepo{professional: testProfessional()},
		&fakeServiceRepo{service: otherService},
		&fakeBlockedRepo{},
		&fakeSettingsRepo{settings: domain.DefaultSettings()},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{
		ProfessionalID: 1,
		ServiceID:      20,
		Date:           time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrServiceNotOffered)
}

func TestExecute_InvalidRequest(t *testing.T) {
	now := time.Date(2025, 10, 14, 8, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeProfessionalRepo{professional: testProfessional()},
		&fakeServiceRepo{service: testService()},
		&fakeBlockedRepo{},
		&fakeSettingsRepo{settings: domain.DefaultSettings()},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{ProfessionalID: 0, ServiceID: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
