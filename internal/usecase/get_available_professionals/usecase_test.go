package get_available_professionals

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortafila/CF-BookingService/internal/domain"
	serviceRepo "github.com/cortafila/CF-BookingService/internal/infra/storage/service"
)

type fakeServiceRepo struct {
	service *domain.Service
}

func (f *fakeServiceRepo) GetByID(_ context.Context, _ int64) (*domain.Service, error) {
	if f.service == nil {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return f.service, nil
}

type fakeProfessionalRepo struct {
	professionals []*domain.Professional
}

func (f *fakeProfessionalRepo) List(_ context.Context) ([]*domain.Professional, error) {
	return f.professionals, nil
}

type fakeBlockedRepo struct {
	blockedDays []*domain.BlockedDay
}

func (f *fakeBlockedRepo) GetDaysInRange(_ context.Context, _, _ time.Time) ([]*domain.BlockedDay, error) {
	return f.blockedDays, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func weekdayProfessional(id int64, name string, serviceIDs ...int64) *domain.Professional {
	return &domain.Professional{
		ID:         id,
		Name:       name,
		Avatar:     name[:1],
		Role:       "Barbeiro",
		ServiceIDs: serviceIDs,
		WorkDays:   []int{1, 2, 3, 4, 5},
		WorkStart:  "09:00",
		WorkEnd:    "18:00",
	}
}

func newTestUseCase(professionals *fakeProfessionalRepo, blocked *fakeBlockedRepo) *UseCase {
	return NewUseCase(
		&fakeServiceRepo{service: &domain.Service{ID: 10, Name: "Corte Masculino"}},
		professionals,
		blocked,
		noopLogger{},
	)
}

// Wednesday
var testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

func TestExecute_FiltersByServiceAndWorkDay(t *testing.T) {
	professionals := &fakeProfessionalRepo{professionals: []*domain.Professional{
		weekdayProfessional(1, "Carlos", 10),
		weekdayProfessional(2, "Rafael", 11), // другая услуга
		{
			ID:         3,
			Name:       "Marina",
			Avatar:     "M",
			ServiceIDs: []int64{10},
			WorkDays:   []int{6}, // только суббота
		},
	}}
	uc := newTestUseCase(professionals, &fakeBlockedRepo{})

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 10, Date: testDate})
	require.NoError(t, err)

	require.Len(t, resp.Professionals, 1)
	assert.Equal(t, int64(1), resp.Professionals[0].ID)
	assert.Equal(t, "Carlos", resp.Professionals[0].Name)
}

func TestExecute_BlockedDayHidesProfessional(t *testing.T) {
	professionals := &fakeProfessionalRepo{professionals: []*domain.Professional{
		weekdayProfessional(1, "Carlos", 10),
		weekdayProfessional(2, "Rafael", 10),
	}}
	blocked := &fakeBlockedRepo{blockedDays: []*domain.BlockedDay{
		{ID: 1, ProfessionalID: 1, Date: testDate},
	}}
	uc := newTestUseCase(professionals, blocked)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 10, Date: testDate})
	require.NoError(t, err)

	require.Len(t, resp.Professionals, 1)
	assert.Equal(t, int64(2), resp.Professionals[0].ID)
}

func TestExecute_PreservesListOrder(t *testing.T) {
	professionals := &fakeProfessionalRepo{professionals: []*domain.Professional{
		weekdayProfessional(3, "Rafael", 10),
		weekdayProfessional(1, "Carlos", 10),
		weekdayProfessional(2, "Marina", 10),
	}}
	uc := newTestUseCase(professionals, &fakeBlockedRepo{})

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 10, Date: testDate})
	require.NoError(t, err)

	ids := []int64{resp.Professionals[0].ID, resp.Professionals[1].ID, resp.Professionals[2].ID}
	assert.Equal(t, []int64{3, 1, 2}, ids)
}

func TestExecute_EmptyListIsValid(t *testing.T) {
	uc := newTestUseCase(&fakeProfessionalRepo{}, &fakeBlockedRepo{})

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 10, Date: testDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Professionals)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := NewUseCase(&fakeServiceRepo{}, &fakeProfessionalRepo{}, &fakeBlockedRepo{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 99, Date: testDate})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidRequest(t *testing.T) {
	uc := newTestUseCase(&fakeProfessionalRepo{}, &fakeBlockedRepo{})

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 0, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ServiceID: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
