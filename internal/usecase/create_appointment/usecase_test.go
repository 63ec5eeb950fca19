package create_appointment

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortafila/CF-BookingService/internal/domain"
	appointmentRepo "github.com/cortafila/CF-BookingService/internal/infra/storage/appointment"
	blockedRepo "github.com/cortafila/CF-BookingService/internal/infra/storage/blocked"
	clientRepo "github.com/cortafila/CF-BookingService/internal/infra/storage/client"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	createErr    error
	created      *domain.Appointment
}

func (f *fakeAppointmentRepo) GetWithFilter(_ context.Context, _ domain.AgendaFilter) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

func (f *fakeAppointmentRepo) Create(_ context.Context, apt *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *apt
	created.ID = 100
	f.created = &created
	return &created, nil
}

type fakeClientRepo struct {
	client *domain.Client
}

func (f *fakeClientRepo) GetByPhone(_ context.Context, _ string) (*domain.Client, error) {
	if f.client == nil {
		return nil, clientRepo.ErrClientNotFound
	}
	return f.client, nil
}

func (f *fakeClientRepo) Create(_ context.Context, client *domain.Client) (*domain.Client, error) {
	created := *client
	created.ID = 7
	f.client = &created
	return &created, nil
}

type fakeProfessionalRepo struct {
	professional *domain.Professional
}

func (f *fakeProfessionalRepo) GetByID(_ context.Context, _ int64) (*domain.Professional, error) {
	return f.professional, nil
}

type fakeServiceRepo struct {
	service *domain.Service
}

func (f *fakeServiceRepo) GetByID(_ context.Context, _ int64) (*domain.Service, error) {
	return f.service, nil
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

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

type useCaseFixture struct {
	appointments *fakeAppointmentRepo
	clients      *fakeClientRepo
	blocked      *fakeBlockedRepo
	settings     *domain.BusinessSettings
	uc           *UseCase
}

func newFixture(now time.Time) *useCaseFixture {
	f := &useCaseFixture{
		appointments: &fakeAppointmentRepo{},
		clients:      &fakeClientRepo{},
		blocked:      &fakeBlockedRepo{},
		settings:     domain.DefaultSettings(),
	}

	f.settings.BusinessPhone = "(11) 3333-4444"

	f.uc = NewUseCase(
		f.appointments,
		f.clients,
		&fakeProfessionalRepo{professional: &domain.Professional{
			ID:         1,
			Name:       "Carlos",
			ServiceIDs: []int64{10},
			WorkDays:   []int{1, 2, 3, 4, 5},
			WorkStart:  "09:00",
			WorkEnd:    "18:00",
		}},
		&fakeServiceRepo{service: &domain.Service{
			ID:              10,
			Name:            "Corte Masculino",
			Type:            domain.ServiceCorte,
			Price:           50,
			DurationMinutes: 30,
		}},
		f.blocked,
		&fakeSettingsRepo{settings: f.settings},
		fakeTxManager{},
		noopLogger{},
	)
	f.uc.timeProvider = &fakeTimeProvider{now: now}
	return f
}

func validRequest() *Request {
	return &Request{
		ServiceID:      10,
		ProfessionalID: 1,
		Date:           time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), // Wednesday
		StartTime:      "10:00",
		ClientName:     "João Silva",
		ClientPhone:    "(11) 98765-4321",
	}
}

func TestExecute_CreatesAppointmentAndClient(t *testing.T) {
	now := time.Date(2025, 10, 14, 8, 0, 0, 0, time.UTC)
	f := newFixture(now)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.NotNil(t, resp.Appointment)
	assert.Equal(t, int64(100), resp.Appointment.ID)
	assert.Equal(t, domain.StatusScheduled, resp.Appointment.Status)
	assert.Equal(t, domain.PaymentPending, resp.Appointment.PaymentStatus)

	// Клиент создан неявно по первому визиту
	require.NotNil(t, f.clients.client)
	assert.Equal(t, "João Silva", f.clients.client.Name)
	assert.Equal(t, f.clients.client.ID, resp.Appointment.ClientID)

	// Денормализация данных услуги и профессионала
	assert.Equal(t, "Corte Masculino", resp.Appointment.ServiceName)
	assert.Equal(t, "Carlos", resp.Appointment.ProfessionalName)
	assert.Equal(t, 30, resp.Appointment.DurationMinutes)

	// Подтверждение для WhatsApp
	assert.Contains(t, resp.WhatsAppMessage, "João Silva")
	assert.Contains(t, resp.WhatsAppMessage, "15/10/2025")
	assert.Contains(t, resp.WhatsAppLink, "https://wa.me/551133334444?text=")
}

func TestExecute_ReusesExistingClient(t *testing.T) {
	now := time.Date(2025, 10, 14, 8, 0, 0, 0, time.UTC)
	f := newFixture(now)
	f.clients.client = &domain.Client{ID: 42, Name: "João Silva", Phone: "(11) 98765-4321"}

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.Appointment.ClientID)
}

func TestExecute_SlotConflictOnOverlap(t *testing.T) {
	now := time.Date(2025, 10, 14, 8, 0, 0, 0, time.UTC)
	f := newFixture(now)
	f.appointments.appointments = []*domain.Appointment{
		{StartTime: "10:00", DurationMinutes: 30, Status: domain.StatusScheduled},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_SlotConflictOnUniqueIndex(t *testing.T) {
	// Гонка, которую не увидел повторный SELECT: уникальный индекс БД
	// отклоняет вставку, ошибка транслируется в конфликт слота
	now := time.Date(2025, 10, 14, 8, 0, 0, 0, time.UTC)
	f := newFixture(now)
	f.appointments.createErr = appointmentRepo.ErrSlotTaken

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_SerializationFailureMapsToSlotConflict(t *testing.T) {
	// 40001 пережил все повторы сериализуемой транзакции: клиент проиграл
	// гонку за слот и получает конфликт, а не внутреннюю ошибку
	now := time.Date(2025, 10, 14, 8, 0, 0, 0, time.UTC)
	f := newFixture(now)
	f.appointments.createErr = fmt.Errorf("execute insert: %w", &pq.Error{Code: "40001"})

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_BorderingAppointmentDoesNotConflict(t *testing.T) {
	now := time.Date(2025, 10, 14, 8, 0, 0, 0, time.UTC)
	f := newFixture(now)
	f.appointments.appointments = []*domain.Appointment{
		{StartTime: "09:30", DurationMinutes: 30, Status: domain.StatusScheduled},
		{StartTime: "10:30", DurationMinutes: 30, Status: domain.StatusScheduled},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
}

func TestExecute_BlockedDay(t *testing.T) {
	now := time.Date(2025, 10, 14, 8, 0, 0, 0, time.UTC)
	f := newFixture(now)
	f.blocked.blockedDay = &domain.BlockedDay{ID: 1, ProfessionalID: 1}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_BlockedTime(t *testing.T) {
	now := time.Date(2025, 10, 14, 8, 0, 0, 0, time.UTC)
	f := newFixture(now)
	f.blocked.blockedTimes = []*domain.BlockedTime{{Time: "10:00"}}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_DateOutsideWindow(t *testing.T) {
	now := time.Date(2025, 10, 14, 8, 0, 0, 0, time.UTC)
	f := newFixture(now)

	req := validRequest()
	req.Date = time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_InactiveBusinessDay(t *testing.T) {
	now := time.Date(2025, 10, 14, 8, 0, 0, 0, time.UTC)
	f := newFixture(now)
	f.settings.InactiveDays = []int{3} // Wednesday

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_OffGridTime(t *testing.T) {
	now := time.Date(2025, 10, 14, 8, 0, 0, 0, time.UTC)
	f := newFixture(now)

	req := validRequest()
	req.StartTime = "10:15"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}
