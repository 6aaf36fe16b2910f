package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
	appointmentRepo "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/infra/storage/appointment"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/appointments/models"
)

type fakeAppointmentRepo struct {
	appointment *domain.Appointment
	getErr      error
	deletedID   int64
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, _ int64) (*domain.Appointment, error) {
	return f.appointment, f.getErr
}

func (f *fakeAppointmentRepo) GetByDoctorID(_ context.Context, _ int64) ([]*domain.AppointmentWithPatient, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) GetByPatientID(_ context.Context, _ int64) ([]*domain.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) Delete(_ context.Context, id int64) error {
	f.deletedID = id
	return nil
}

type fakeTreatmentRepo struct {
	created *domain.Treatment
}

func (f *fakeTreatmentRepo) Create(_ context.Context, treatment *domain.Treatment) (*domain.Treatment, error) {
	created := *treatment
	created.ID = 33
	f.created = &created
	return &created, nil
}

func (f *fakeTreatmentRepo) GetByPatientID(_ context.Context, _ int64) ([]*domain.Treatment, error) {
	return nil, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func bookedAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:        42,
		PatientID: 5,
		DoctorID:  1,
		Date:      time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		Purpose:   "Chest pain",
	}
}

func TestStartTreatment_ConsumesAppointment(t *testing.T) {
	appointments := &fakeAppointmentRepo{appointment: bookedAppointment()}
	treatments := &fakeTreatmentRepo{}
	s := NewService(appointments, treatments, fakeTxManager{}, nopLogger{})

	resp, err := s.StartTreatment(context.Background(), &models.StartTreatmentRequest{
		DoctorID:      1,
		AppointmentID: 42,
		Diagnosis:     "Angina",
		TreatmentPlan: "Rest and medication",
		Medicines:     "Nitroglycerin",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(33), resp.ID)
	assert.Equal(t, "Angina", resp.Diagnosis)

	// Курс лечения наследует пациента и врача из записи
	require.NotNil(t, treatments.created)
	assert.Equal(t, int64(5), treatments.created.PatientID)
	assert.Equal(t, int64(1), treatments.created.DoctorID)

	// Запись удалена той же транзакцией - слот снова свободен
	assert.Equal(t, int64(42), appointments.deletedID)
}

func TestStartTreatment_ForeignAppointment(t *testing.T) {
	appointments := &fakeAppointmentRepo{appointment: bookedAppointment()}
	s := NewService(appointments, &fakeTreatmentRepo{}, fakeTxManager{}, nopLogger{})

	_, err := s.StartTreatment(context.Background(), &models.StartTreatmentRequest{
		DoctorID:      2,
		AppointmentID: 42,
		Diagnosis:     "Angina",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, appointments.deletedID, "foreign appointment must stay booked")
}

func TestStartTreatment_AppointmentNotFound(t *testing.T) {
	appointments := &fakeAppointmentRepo{getErr: appointmentRepo.ErrAppointmentNotFound}
	s := NewService(appointments, &fakeTreatmentRepo{}, fakeTxManager{}, nopLogger{})

	_, err := s.StartTreatment(context.Background(), &models.StartTreatmentRequest{
		DoctorID:      1,
		AppointmentID: 404,
		Diagnosis:     "Angina",
	})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestStartTreatment_Validation(t *testing.T) {
	s := NewService(&fakeAppointmentRepo{}, &fakeTreatmentRepo{}, fakeTxManager{}, nopLogger{})

	_, err := s.StartTreatment(context.Background(), &models.StartTreatmentRequest{
		DoctorID:      1,
		AppointmentID: 42,
	})
	assert.ErrorIs(t, err, ErrInvalidInput, "diagnosis is required")

	badDate := "20.11.2025"
	_, err = s.StartTreatment(context.Background(), &models.StartTreatmentRequest{
		DoctorID:      1,
		AppointmentID: 42,
		Diagnosis:     "Angina",
		EndDate:       &badDate,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
