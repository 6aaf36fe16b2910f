package scan_availability

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

// occupiedByDate раздаёт занятые слоты по ключу YYYY-MM-DD
type fakeAppointmentRepo struct {
	occupiedByDate map[string][]types.TimeString
}

func (f *fakeAppointmentRepo) GetOccupiedSlots(_ context.Context, _ int64, date time.Time) ([]types.TimeString, error) {
	return f.occupiedByDate[date.Format(domain.DateFormat)], nil
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

var testNow = time.Date(2025, 10, 15, 11, 0, 0, 0, time.UTC)

func newTestUseCase(appointments *fakeAppointmentRepo, doctors *fakeDoctorRepo) *UseCase {
	uc := NewUseCase(appointments, doctors, testSchedule(), nopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func TestExecute_WholeWindowReturned(t *testing.T) {
	fullDay := testSchedule().Grid()
	appointments := &fakeAppointmentRepo{
		occupiedByDate: map[string][]types.TimeString{
			"2025-10-16": {"09:00", "10:00"},
			"2025-10-20": fullDay,
		},
	}
	doctor := &domain.Doctor{ID: 1, WorkStatus: domain.DoctorStatusActive}
	uc := newTestUseCase(appointments, &fakeDoctorRepo{doctor: doctor})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 7, DoctorID: 1})
	require.NoError(t, err)

	// Ровно по одной записи на каждый день окна, в хронологическом порядке
	require.Len(t, resp.Days, 21)
	assert.Equal(t, domain.DateOnly(testNow), resp.WindowStart)
	assert.Equal(t, domain.DateOnly(testNow).AddDate(0, 0, 20), resp.WindowEnd)
	assert.Equal(t, resp.WindowStart, resp.Days[0].Date)
	assert.Equal(t, resp.WindowEnd, resp.Days[20].Date)
	for i := 1; i < len(resp.Days); i++ {
		assert.True(t, resp.Days[i-1].Date.Before(resp.Days[i].Date))
	}

	// Свободный день
	assert.Equal(t, 8, resp.Days[0].OpenSlots)
	assert.True(t, resp.Days[0].HasOpening)

	// Частично занятый день
	assert.Equal(t, 6, resp.Days[1].OpenSlots)
	assert.True(t, resp.Days[1].HasOpening)

	// Полностью занятый день остаётся в ответе, но без свободных слотов
	assert.Equal(t, 0, resp.Days[5].OpenSlots)
	assert.False(t, resp.Days[5].HasOpening)
}

func TestExecute_OffGridOccupiedRowsIgnored(t *testing.T) {
	// Запись вне сетки (прямая вставка, слот из старой конфигурации) не
	// уменьшает число свободных слотов: счет ведется вычитанием из сетки,
	// как в календаре слотов
	appointments := &fakeAppointmentRepo{
		occupiedByDate: map[string][]types.TimeString{
			"2025-10-15": {"09:30", "18:00"},
			"2025-10-16": {"10:00", "09:30"},
		},
	}
	doctor := &domain.Doctor{ID: 1, WorkStatus: domain.DoctorStatusActive}
	uc := newTestUseCase(appointments, &fakeDoctorRepo{doctor: doctor})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 7, DoctorID: 1})
	require.NoError(t, err)

	assert.Equal(t, 8, resp.Days[0].OpenSlots)
	assert.True(t, resp.Days[0].HasOpening)
	assert.Equal(t, 7, resp.Days[1].OpenSlots)
}

func TestExecute_DoctorNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeDoctorRepo{err: doctorRepo.ErrDoctorNotFound},
	)

	_, err := uc.Execute(context.Background(), &Request{DoctorID: 99})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestExecute_DoctorNotBookable(t *testing.T) {
	doctor := &domain.Doctor{ID: 1, WorkStatus: domain.DoctorStatusRetired}
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeDoctorRepo{doctor: doctor})

	_, err := uc.Execute(context.Background(), &Request{DoctorID: 1})
	assert.ErrorIs(t, err, ErrDoctorNotBookable)
}

func TestExecute_InvalidDoctorID(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeDoctorRepo{})

	_, err := uc.Execute(context.Background(), &Request{DoctorID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
