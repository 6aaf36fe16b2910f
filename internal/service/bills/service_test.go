package bills

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
	billRepo "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/infra/storage/bill"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/bills/models"
)

type fakeBillRepo struct {
	bill       *domain.Bill
	bills      []*domain.Bill
	getErr     error
	markErr    error
	markCalled bool
}

func (f *fakeBillRepo) GetByID(_ context.Context, _ int64) (*domain.Bill, error) {
	return f.bill, f.getErr
}

func (f *fakeBillRepo) GetByPatientID(_ context.Context, _ int64, _ *domain.PaymentStatus) ([]*domain.Bill, error) {
	return f.bills, nil
}

func (f *fakeBillRepo) MarkPaid(_ context.Context, _ int64) error {
	f.markCalled = true
	return f.markErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func pendingBill() *domain.Bill {
	return &domain.Bill{
		ID:            7,
		PatientID:     5,
		Type:          domain.BillTypeAppointment,
		Amount:        800,
		Date:          time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		PaymentStatus: domain.PaymentStatusPending,
	}
}

func TestPay_MarksPending(t *testing.T) {
	repo := &fakeBillRepo{bill: pendingBill()}
	s := NewService(repo, nopLogger{})

	resp, err := s.Pay(context.Background(), 7, 5)
	require.NoError(t, err)

	assert.True(t, repo.markCalled)
	assert.Equal(t, string(domain.PaymentStatusPaid), resp.PaymentStatus)
	assert.Equal(t, 800.0, resp.Amount)
}

func TestPay_ForeignBill(t *testing.T) {
	repo := &fakeBillRepo{bill: pendingBill()}
	s := NewService(repo, nopLogger{})

	_, err := s.Pay(context.Background(), 7, 6)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, repo.markCalled)
}

func TestPay_AlreadyPaid(t *testing.T) {
	paid := pendingBill()
	paid.PaymentStatus = domain.PaymentStatusPaid
	s := NewService(&fakeBillRepo{bill: paid}, nopLogger{})

	_, err := s.Pay(context.Background(), 7, 5)
	assert.ErrorIs(t, err, ErrBillAlreadyPaid)
}

func TestPay_ConcurrentPayment(t *testing.T) {
	// Счет был pending при чтении, но MarkPaid проиграл гонку:
	// условное обновление не нашло pending строку
	repo := &fakeBillRepo{bill: pendingBill(), markErr: billRepo.ErrBillNotFound}
	s := NewService(repo, nopLogger{})

	_, err := s.Pay(context.Background(), 7, 5)
	assert.ErrorIs(t, err, ErrBillAlreadyPaid)
}

func TestPay_NotFound(t *testing.T) {
	s := NewService(&fakeBillRepo{getErr: billRepo.ErrBillNotFound}, nopLogger{})

	_, err := s.Pay(context.Background(), 404, 5)
	assert.ErrorIs(t, err, ErrBillNotFound)
}

func TestGetPatientBills_PendingDue(t *testing.T) {
	paid := pendingBill()
	paid.ID = 8
	paid.Amount = 200
	paid.PaymentStatus = domain.PaymentStatusPaid

	repo := &fakeBillRepo{bills: []*domain.Bill{pendingBill(), paid}}
	s := NewService(repo, nopLogger{})

	resp, err := s.GetPatientBills(context.Background(), &models.GetPatientBillsRequest{PatientID: 5})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 800.0, resp.PendingDue, "only pending bills count toward the due sum")
}

func TestGetPatientBills_InvalidStatus(t *testing.T) {
	s := NewService(&fakeBillRepo{}, nopLogger{})

	status := "overdue"
	_, err := s.GetPatientBills(context.Background(), &models.GetPatientBillsRequest{PatientID: 5, Status: &status})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
