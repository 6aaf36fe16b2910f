package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
	doctorRepo "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/infra/storage/doctor"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/pkg/types"
)

type fakeAppointmentRepo struct {
	occupied []types.TimeString
	err      error
}

func (f *fakeAppointmentRepo) GetOccupiedSlots(_ context.Context, _ int64, _ time.Time) ([]types.TimeString, error) {
	return f.occupied, f.err
}

type fakeDoctorRepo struct {
	doctor *domain.Doctor
	err    error
}

func (f *fakeDoctorRepo) GetByID(_ context.Context, _ int64) (*domain.Doctor, error) {
	return f.doctor, f.err
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testSchedule() domain.Schedule {
	return domain.Schedule{
		DayStart:            "09:00",
		DayEnd:              "17:00",
		SlotDurationMinutes: 60,
		BookingWindowDays:   21,
	}
}

func activeDoctor() *domain.Doctor {
	return &domain.Doctor{
		ID:              1,
		Name:            "Dr. Ivanova",
		Specialization:  "Cardiology",
		AppointmentCost: 800,
		WorkStatus:      domain.DoctorStatusActive,
	}
}

var testNow = time.Date(2025, 10, 15, 11, 0, 0, 0, time.UTC)

func newTestUseCase(appointments *fakeAppointmentRepo, doctors *fakeDoctorRepo) *UseCase {
	uc := NewUseCase(appointments, doctors, testSchedule(), nopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func TestExecute_OpenSlotsExcludeOccupied(t *testing.T) {
	appointments := &fakeAppointmentRepo{occupied: []types.TimeString{"10:00", "14:00"}}
	uc := newTestUseCase(appointments, &fakeDoctorRepo{doctor: activeDoctor()})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:   7,
		DoctorID: 1,
		Date:     testNow.AddDate(0, 0, 1),
	})
	require.NoError(t, err)

	// Сетка из 8 слотов минус 2 занятых
	require.Len(t, resp.Slots, 6)
	for _, slot := range resp.Slots {
		assert.NotEqual(t, types.TimeString("10:00"), slot.StartTime)
		assert.NotEqual(t, types.TimeString("14:00"), slot.StartTime)
		assert.Equal(t, 60, slot.DurationMinutes)
	}
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("16:00"), resp.Slots[len(resp.Slots)-1].StartTime)
}

func TestExecute_FullyBookedDay(t *testing.T) {
	appointments := &fakeAppointmentRepo{
		occupied: testSchedule().Grid(),
	}
	uc := newTestUseCase(appointments, &fakeDoctorRepo{doctor: activeDoctor()})

	resp, err := uc.Execute(context.Background(), &Request{DoctorID: 1, Date: testNow})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_DoctorNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeDoctorRepo{err: doctorRepo.ErrDoctorNotFound})

	_, err := uc.Execute(context.Background(), &Request{DoctorID: 99, Date: testNow})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestExecute_DoctorNotBookable(t *testing.T) {
	doctor := activeDoctor()
	doctor.WorkStatus = domain.DoctorStatusOnLeave
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeDoctorRepo{doctor: doctor})

	_, err := uc.Execute(context.Background(), &Request{DoctorID: 1, Date: testNow})
	assert.ErrorIs(t, err, ErrDoctorNotBookable)
}

func TestExecute_DateValidation(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeDoctorRepo{doctor: activeDoctor()})

	_, err := uc.Execute(context.Background(), &Request{DoctorID: 1, Date: testNow.AddDate(0, 0, -1)})
	assert.ErrorIs(t, err, ErrInvalidDate)

	// Последний день окна: сегодня + 20
	_, err = uc.Execute(context.Background(), &Request{DoctorID: 1, Date: testNow.AddDate(0, 0, 20)})
	assert.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{DoctorID: 1, Date: testNow.AddDate(0, 0, 21)})
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeDoctorRepo{doctor: activeDoctor()})

	_, err := uc.Execute(context.Background(), &Request{DoctorID: 0, Date: testNow})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{DoctorID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
