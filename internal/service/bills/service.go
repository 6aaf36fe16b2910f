package bills

import (
	"context"
	"errors"
	"fmt"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
	billRepo "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/infra/storage/bill"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/bills/models"
)

// Service сервис для работы со счетами пациентов
type Service struct {
	billRepo BillRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса счетов
func NewService(billRepo BillRepository, logger Logger) *Service {
	return &Service{
		billRepo: billRepo,
		logger:   logger,
	}
}

// GetPatientBills получает счета пациента с опциональным фильтром по статусу
func (s *Service) GetPatientBills(ctx context.Context, req *models.GetPatientBillsRequest) (*models.BillListResponse, error) {
	s.logger.Info("GetPatientBills: fetching bills for patient=%d, status=%v", req.PatientID, req.Status)

	if req.PatientID <= 0 {
		return nil, fmt.Errorf("%w: patientID must be positive", ErrInvalidInput)
	}

	var domainStatus *domain.PaymentStatus
	if req.Status != nil {
		status := domain.PaymentStatus(*req.Status)
		switch status {
		case domain.PaymentStatusPending, domain.PaymentStatusPaid:
			domainStatus = &status
		default:
			s.logger.Warn("GetPatientBills: invalid status=%s for patient=%d", *req.Status, req.PatientID)
			return nil, fmt.Errorf("%w: invalid payment status", ErrInvalidInput)
		}
	}

	bills, err := s.billRepo.GetByPatientID(ctx, req.PatientID, domainStatus)
	if err != nil {
		s.logger.Error("GetPatientBills: repository error for patient=%d: %v", req.PatientID, err)
		return nil, fmt.Errorf("%w: GetPatientBills - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetPatientBills: fetched %d bills for patient=%d", len(bills), req.PatientID)
	return models.FromDomainBillList(bills), nil
}

// Pay оплачивает счет пациента.
// Пациент может оплатить только собственный счет, и только один раз -
// повторная оплата отклоняется по статусу.
func (s *Service) Pay(ctx context.Context, billID, patientID int64) (*models.BillResponse, error) {
	s.logger.Info("Pay: paying bill id=%d for patient=%d", billID, patientID)

	if billID <= 0 || patientID <= 0 {
		return nil, fmt.Errorf("%w: billID and patientID must be positive", ErrInvalidInput)
	}

	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		if errors.Is(err, billRepo.ErrBillNotFound) {
			s.logger.Warn("Pay: bill id=%d not found", billID)
			return nil, ErrBillNotFound
		}
		s.logger.Error("Pay: repository error for bill id=%d: %v", billID, err)
		return nil, fmt.Errorf("%w: Pay - repository error: %v", ErrInternal, err)
	}

	if bill.PatientID != patientID {
		s.logger.Warn("Pay: bill id=%d belongs to patient=%d, not patient=%d", billID, bill.PatientID, patientID)
		return nil, ErrAccessDenied
	}

	if bill.IsPaid() {
		s.logger.Warn("Pay: bill id=%d is already paid", billID)
		return nil, ErrBillAlreadyPaid
	}

	if err := s.billRepo.MarkPaid(ctx, billID); err != nil {
		// MarkPaid обновляет только pending счета: проигравший гонки
		// повторной оплаты получает ErrBillNotFound от репозитория
		if errors.Is(err, billRepo.ErrBillNotFound) {
			s.logger.Warn("Pay: bill id=%d was paid concurrently", billID)
			return nil, ErrBillAlreadyPaid
		}
		s.logger.Error("Pay: failed to mark bill id=%d paid: %v", billID, err)
		return nil, fmt.Errorf("%w: Pay - failed to mark bill paid: %v", ErrInternal, err)
	}

	bill.PaymentStatus = domain.PaymentStatusPaid

	s.logger.Info("Pay: successfully paid bill id=%d, amount=%.2f", billID, bill.Amount)
	return models.FromDomainBill(bill), nil
}
