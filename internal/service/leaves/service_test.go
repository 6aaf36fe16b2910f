package leaves

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
	doctorRepo "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/infra/storage/doctor"
	leaveRepo "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/infra/storage/leave"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/leaves/models"
)

type fakeLeaveRepo struct {
	leave     *domain.Leave
	getErr    error
	created   *domain.Leave
	updatedTo *domain.LeaveStatus
}

func (f *fakeLeaveRepo) Create(_ context.Context, leave *domain.Leave) (*domain.Leave, error) {
	created := *leave
	created.ID = 11
	created.Status = domain.LeaveStatusPending
	f.created = &created
	return &created, nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, _ int64) (*domain.Leave, error) {
	return f.leave, f.getErr
}

func (f *fakeLeaveRepo) ListByStatus(_ context.Context, _ domain.LeaveStatus) ([]*domain.Leave, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) ListByDoctorID(_ context.Context, _ int64) ([]*domain.Leave, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) UpdateStatus(_ context.Context, _ int64, status domain.LeaveStatus) error {
	f.updatedTo = &status
	return nil
}

type fakeDoctorRepo struct {
	getErr        error
	statusUpdated *domain.DoctorStatus
}

func (f *fakeDoctorRepo) GetByID(_ context.Context, id int64) (*domain.Doctor, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &domain.Doctor{ID: id, WorkStatus: domain.DoctorStatusActive}, nil
}

func (f *fakeDoctorRepo) UpdateWorkStatus(_ context.Context, _ int64, status domain.DoctorStatus) error {
	f.statusUpdated = &status
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
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

func newTestService(leaves *fakeLeaveRepo, doctors *fakeDoctorRepo) *Service {
	s := NewService(leaves, doctors, fakeTxManager{}, nopLogger{})
	s.timeProvider = fixedTime{now: testNow}
	return s
}

func TestApply_CreatesPendingRequest(t *testing.T) {
	leaves := &fakeLeaveRepo{}
	s := newTestService(leaves, &fakeDoctorRepo{})

	// Ровно на границе: отпуск через MinLeaveNoticeDays дней
	resp, err := s.Apply(context.Background(), &models.ApplyLeaveRequest{
		DoctorID:   3,
		LeaveDate:  "2025-11-05",
		ReturnDate: "2025-11-12",
		Reason:     "Vacation",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, 7, resp.DaysCount)
	assert.Equal(t, string(domain.LeaveStatusPending), resp.Status)
	require.NotNil(t, leaves.created)
	assert.Equal(t, int64(3), leaves.created.DoctorID)
}

func TestApply_InsufficientNotice(t *testing.T) {
	s := newTestService(&fakeLeaveRepo{}, &fakeDoctorRepo{})

	// Через 20 дней - внутри текущего окна бронирования
	_, err := s.Apply(context.Background(), &models.ApplyLeaveRequest{
		DoctorID:   3,
		LeaveDate:  "2025-11-04",
		ReturnDate: "2025-11-10",
	})
	assert.ErrorIs(t, err, ErrInsufficientNotice)
}

func TestApply_InvalidDateRange(t *testing.T) {
	s := newTestService(&fakeLeaveRepo{}, &fakeDoctorRepo{})

	_, err := s.Apply(context.Background(), &models.ApplyLeaveRequest{
		DoctorID:   3,
		LeaveDate:  "2025-11-12",
		ReturnDate: "2025-11-05",
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = s.Apply(context.Background(), &models.ApplyLeaveRequest{
		DoctorID:   3,
		LeaveDate:  "2025-11-12",
		ReturnDate: "2025-11-12",
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestApply_BadDates(t *testing.T) {
	s := newTestService(&fakeLeaveRepo{}, &fakeDoctorRepo{})

	_, err := s.Apply(context.Background(), &models.ApplyLeaveRequest{
		DoctorID:   3,
		LeaveDate:  "05.11.2025",
		ReturnDate: "2025-11-12",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestApply_DoctorNotFound(t *testing.T) {
	s := newTestService(&fakeLeaveRepo{}, &fakeDoctorRepo{getErr: doctorRepo.ErrDoctorNotFound})

	_, err := s.Apply(context.Background(), &models.ApplyLeaveRequest{
		DoctorID:   99,
		LeaveDate:  "2025-11-05",
		ReturnDate: "2025-11-12",
	})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func pendingLeave() *domain.Leave {
	return &domain.Leave{
		ID:         11,
		DoctorID:   3,
		LeaveDate:  time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC),
		ReturnDate: time.Date(2025, 11, 12, 0, 0, 0, 0, time.UTC),
		DaysCount:  7,
		Status:     domain.LeaveStatusPending,
	}
}

func TestResolve_ApproveFlipsDoctorStatus(t *testing.T) {
	leaves := &fakeLeaveRepo{leave: pendingLeave()}
	doctors := &fakeDoctorRepo{}
	s := newTestService(leaves, doctors)

	resp, err := s.Resolve(context.Background(), &models.ResolveLeaveRequest{LeaveID: 11, Approve: true})
	require.NoError(t, err)

	assert.Equal(t, string(domain.LeaveStatusApproved), resp.Status)
	require.NotNil(t, leaves.updatedTo)
	assert.Equal(t, domain.LeaveStatusApproved, *leaves.updatedTo)
	require.NotNil(t, doctors.statusUpdated)
	assert.Equal(t, domain.DoctorStatusOnLeave, *doctors.statusUpdated)
}

func TestResolve_RejectLeavesDoctorActive(t *testing.T) {
	leaves := &fakeLeaveRepo{leave: pendingLeave()}
	doctors := &fakeDoctorRepo{}
	s := newTestService(leaves, doctors)

	resp, err := s.Resolve(context.Background(), &models.ResolveLeaveRequest{LeaveID: 11, Approve: false})
	require.NoError(t, err)

	assert.Equal(t, string(domain.LeaveStatusRejected), resp.Status)
	assert.Nil(t, doctors.statusUpdated, "rejecting must not touch the doctor")
}

func TestResolve_AlreadyResolved(t *testing.T) {
	resolved := pendingLeave()
	resolved.Status = domain.LeaveStatusApproved
	s := newTestService(&fakeLeaveRepo{leave: resolved}, &fakeDoctorRepo{})

	_, err := s.Resolve(context.Background(), &models.ResolveLeaveRequest{LeaveID: 11, Approve: true})
	assert.ErrorIs(t, err, ErrLeaveAlreadyResolved)
}

func TestResolve_NotFound(t *testing.T) {
	s := newTestService(&fakeLeaveRepo{getErr: leaveRepo.ErrLeaveNotFound}, &fakeDoctorRepo{})

	_, err := s.Resolve(context.Background(), &models.ResolveLeaveRequest{LeaveID: 404, Approve: true})
	assert.ErrorIs(t, err, ErrLeaveNotFound)
}
