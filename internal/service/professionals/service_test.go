package professionals

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortafila/CF-BookingService/internal/domain"
	professionalRepo "github.com/cortafila/CF-BookingService/internal/infra/storage/professional"
	"github.com/cortafila/CF-BookingService/internal/service/professionals/models"
)

type fakeProfessionalRepo struct {
	updateErr error
	saved     *domain.Professional
}

func (f *fakeProfessionalRepo) Create(_ context.Context, prof *domain.Professional) (*domain.Professional, error) {
	created := *prof
	created.ID = 1
	f.saved = &created
	return &created, nil
}

func (f *fakeProfessionalRepo) Update(_ context.Context, id int64, prof *domain.Professional) (*domain.Professional, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	updated := *prof
	updated.ID = id
	f.saved = &updated
	return &updated, nil
}

func (f *fakeProfessionalRepo) GetByID(_ context.Context, _ int64) (*domain.Professional, error) {
	return f.saved, nil
}

type fakeServiceRepo struct {
	services []*domain.Service
}

func (f *fakeServiceRepo) GetByIDs(_ context.Context, _ []int64) ([]*domain.Service, error) {
	return f.services, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func validRequest() *models.ProfessionalRequest {
	return &models.ProfessionalRequest{
		Name:       "Carlos Mendes",
		Avatar:     "CM",
		Role:       "Barbeiro",
		Phone:      "(11) 98765-4321",
		ServiceIDs: []int64{10},
		WorkDays:   []int{1, 2, 3, 4, 5},
		WorkStart:  "09:00",
		WorkEnd:    "18:00",
	}
}

func knownServices() *fakeServiceRepo {
	return &fakeServiceRepo{services: []*domain.Service{{ID: 10, Name: "Corte Masculino"}}}
}

func TestCreate(t *testing.T) {
	repo := &fakeProfessionalRepo{}
	svc := NewService(repo, knownServices(), noopLogger{})

	resp, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Carlos Mendes", resp.Name)
	assert.Equal(t, "09:00", resp.WorkStart)
}

func TestCreate_UnknownService(t *testing.T) {
	svc := NewService(&fakeProfessionalRepo{}, &fakeServiceRepo{}, noopLogger{})

	req := validRequest()
	req.ServiceIDs = []int64{10, 99}

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrUnknownService)
}

func TestCreate_InvalidPayload(t *testing.T) {
	svc := NewService(&fakeProfessionalRepo{}, knownServices(), noopLogger{})

	req := validRequest()
	req.WorkStart = "19:00"

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate(t *testing.T) {
	repo := &fakeProfessionalRepo{}
	svc := NewService(repo, knownServices(), noopLogger{})

	req := validRequest()
	req.WorkEnd = "17:00"

	resp, err := svc.Update(context.Background(), 5, req)
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, "17:00", resp.WorkEnd)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := &fakeProfessionalRepo{updateErr: professionalRepo.ErrProfessionalNotFound}
	svc := NewService(repo, knownServices(), noopLogger{})

	_, err := svc.Update(context.Background(), 99, validRequest())
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestUpdate_InvalidID(t *testing.T) {
	svc := NewService(&fakeProfessionalRepo{}, knownServices(), noopLogger{})

	_, err := svc.Update(context.Background(), 0, validRequest())
	assert.ErrorIs(t, err, ErrInvalidInput)
}
