package book_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
	appointmentRepo "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/infra/storage/appointment"
	doctorRepo "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/infra/storage/doctor"
	patientRepo "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/infra/storage/patient"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/pkg/types"
)

type fakeAppointmentRepo struct {
	occupied  []types.TimeString
	createErr error
	created   *domain.Appointment
}

func (f *fakeAppointmentRepo) GetOccupiedSlots(_ context.Context, _ int64, _ time.Time) ([]types.TimeString, error) {
	return f.occupied, nil
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *appointment
	created.ID = 42
	created.CreatedAt = testNow
	f.created = &created
	return &created, nil
}

type fakeDoctorRepo struct {
	doctor *domain.Doctor
	err    error
}

func (f *fakeDoctorRepo) GetByID(_ context.Context, _ int64) (*domain.Doctor, error) {
	return f.doctor, f.err
}

type fakePatientRepo struct {
	patient *domain.Patient
	err     error
}

func (f *fakePatientRepo) GetByID(_ context.Context, _ int64) (*domain.Patient, error) {
	return f.patient, f.err
}

type fakeBillRepo struct {
	created *domain.Bill
}

func (f *fakeBillRepo) Create(_ context.Context, bill *domain.Bill) (*domain.Bill, error) {
	created := *bill
	created.ID = 77
	created.PaymentStatus = domain.PaymentStatusPending
	f.created = &created
	return &created, nil
}

// fakeTxManager просто выполняет функцию без реальной транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
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

var testNow = time.Date(2025, 10, 15, 11, 0, 0, 0, time.UTC)

func testSchedule() domain.Schedule {
	return domain.Schedule{
		DayStart:            "09:00",
		DayEnd:              "17:00",
		SlotDurationMinutes: 60,
		BookingWindowDays:   21,
	}
}

type fixture struct {
	appointments *fakeAppointmentRepo
	doctors      *fakeDoctorRepo
	patients     *fakePatientRepo
	bills        *fakeBillRepo
	txManager    *fakeTxManager
	uc           *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		appointments: &fakeAppointmentRepo{},
		doctors: &fakeDoctorRepo{doctor: &domain.Doctor{
			ID:              1,
			Name:            "Dr. Ivanova",
			AppointmentCost: 800,
			WorkStatus:      domain.DoctorStatusActive,
		}},
		patients:  &fakePatientRepo{patient: &domain.Patient{ID: 5, Name: "Petrov"}},
		bills:     &fakeBillRepo{},
		txManager: &fakeTxManager{},
	}
	f.uc = NewUseCase(f.appointments, f.doctors, f.patients, f.bills, f.txManager, testSchedule(), nopLogger{})
	f.uc.timeProvider = fixedTime{now: testNow}
	return f
}

func validRequest() *Request {
	return &Request{
		PatientID: 5,
		DoctorID:  1,
		Date:      testNow.AddDate(0, 0, 2),
		StartTime: "10:00",
		Purpose:   "Chest pain",
	}
}

func TestExecute_BooksSlotAndIssuesBill(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.AppointmentID)
	assert.Equal(t, int64(5), resp.PatientID)
	assert.Equal(t, int64(1), resp.DoctorID)
	assert.Equal(t, "Dr. Ivanova", resp.DoctorName)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, "Chest pain", resp.Purpose)
	assert.Equal(t, 1, f.txManager.calls, "booking must run in a transaction")

	// Счет выставлен на стоимость приема врача, той же транзакцией
	require.NotNil(t, f.bills.created)
	assert.Equal(t, int64(77), resp.BillID)
	assert.Equal(t, 800.0, resp.BillAmount)
	assert.Equal(t, domain.BillTypeAppointment, f.bills.created.Type)
	assert.Equal(t, domain.DateOnly(testNow.AddDate(0, 0, 2)), f.bills.created.Date)
}

func TestExecute_BillDatedByAppointmentDate(t *testing.T) {
	// Счет и запись связаны парой (пациент, дата): счет датируется днем
	// приема, а не днем, когда пациент нажал "записаться"
	f := newFixture()
	req := validRequest()
	req.Date = testNow.AddDate(0, 0, 9)

	_, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, f.bills.created)
	assert.Equal(t, domain.DateOnly(req.Date), f.bills.created.Date)
	assert.NotEqual(t, domain.DateOnly(testNow), f.bills.created.Date)
	assert.Equal(t, f.appointments.created.Date, f.bills.created.Date)
}

func TestExecute_DefaultPurpose(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.Purpose = ""

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppointmentPurpose, resp.Purpose)
}

func TestExecute_SlotTakenOnReRead(t *testing.T) {
	f := newFixture()
	f.appointments.occupied = []types.TimeString{"10:00"}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, f.appointments.created, "no insert after losing the slot")
	assert.Nil(t, f.bills.created, "no bill without an appointment")
}

func TestExecute_SlotTakenOnUniqueConstraint(t *testing.T) {
	// Гонка, которую пропустила перечитка: уникальный индекс отклоняет вставку
	f := newFixture()
	f.appointments.createErr = appointmentRepo.ErrSlotTaken

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, f.bills.created)
}

func TestExecute_OffGridSlot(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.StartTime = "09:30"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSlot)
	assert.Equal(t, 0, f.txManager.calls, "off-grid slot is rejected before the transaction")
}

func TestExecute_DateOutsideWindow(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.Date = testNow.AddDate(0, 0, -1)
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)

	req = validRequest()
	req.Date = testNow.AddDate(0, 0, 21)
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_PatientNotFound(t *testing.T) {
	f := newFixture()
	f.patients.patient = nil
	f.patients.err = patientRepo.ErrPatientNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestExecute_DoctorChecks(t *testing.T) {
	f := newFixture()
	f.doctors.doctor = nil
	f.doctors.err = doctorRepo.ErrDoctorNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDoctorNotFound)

	f = newFixture()
	f.doctors.doctor.WorkStatus = domain.DoctorStatusOnLeave

	_, err = f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDoctorNotBookable)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "zero patient", mutate: func(r *Request) { r.PatientID = 0 }},
		{name: "zero doctor", mutate: func(r *Request) { r.DoctorID = 0 }},
		{name: "zero date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "bad time format", mutate: func(r *Request) { r.StartTime = "10am" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
