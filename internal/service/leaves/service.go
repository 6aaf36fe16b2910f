package leaves

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
	doctorRepo "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/infra/storage/doctor"
	leaveRepo "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/infra/storage/leave"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/leaves/models"
)

// Service сервис заявок на отпуск
type Service struct {
	leaveRepo    LeaveRepository
	doctorRepo   DoctorRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса отпусков
func NewService(
	leaveRepo LeaveRepository,
	doctorRepo DoctorRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		leaveRepo:    leaveRepo,
		doctorRepo:   doctorRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Apply подает заявку врача на отпуск.
// Отпуск должен начинаться не раньше, чем через MinLeaveNoticeDays дней:
// даты, которые пациенты уже видят в окне бронирования, не отзываются.
func (s *Service) Apply(ctx context.Context, req *models.ApplyLeaveRequest) (*models.LeaveResponse, error) {
	s.logger.Info("Apply: doctor=%d, leave=%s..%s", req.DoctorID, req.LeaveDate, req.ReturnDate)

	if req.DoctorID <= 0 {
		return nil, fmt.Errorf("%w: doctorID must be positive", ErrInvalidInput)
	}

	leaveDate, err := time.Parse(domain.DateFormat, req.LeaveDate)
	if err != nil {
		return nil, fmt.Errorf("%w: leaveDate must be in YYYY-MM-DD format", ErrInvalidInput)
	}
	returnDate, err := time.Parse(domain.DateFormat, req.ReturnDate)
	if err != nil {
		return nil, fmt.Errorf("%w: returnDate must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	if !returnDate.After(leaveDate) {
		return nil, fmt.Errorf("%w: returnDate must be after leaveDate", ErrInvalidDateRange)
	}

	now := s.timeProvider.Now()
	minLeaveDate := domain.DateOnly(now).AddDate(0, 0, domain.MinLeaveNoticeDays)
	if leaveDate.Before(minLeaveDate) {
		s.logger.Warn("Apply: doctor=%d requested leave on %s, earliest allowed is %s",
			req.DoctorID, req.LeaveDate, minLeaveDate.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: leave must start at least %d days from now",
			ErrInsufficientNotice, domain.MinLeaveNoticeDays)
	}

	if _, err := s.doctorRepo.GetByID(ctx, req.DoctorID); err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			s.logger.Warn("Apply: doctor id=%d not found", req.DoctorID)
			return nil, ErrDoctorNotFound
		}
		s.logger.Error("Apply: failed to get doctor id=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get doctor: %v", ErrInternal, err)
	}

	leave := &domain.Leave{
		DoctorID:   req.DoctorID,
		LeaveDate:  leaveDate,
		ReturnDate: returnDate,
		DaysCount:  int(returnDate.Sub(leaveDate).Hours() / 24),
		Reason:     req.Reason,
	}

	created, err := s.leaveRepo.Create(ctx, leave)
	if err != nil {
		s.logger.Error("Apply: failed to create leave request: %v", err)
		return nil, fmt.Errorf("%w: Apply - failed to create leave request: %v", ErrInternal, err)
	}

	s.logger.Info("Apply: created leave request id=%d for doctor=%d", created.ID, req.DoctorID)
	return models.FromDomainLeave(created), nil
}

// ListPending получает нерассмотренные заявки для администратора
func (s *Service) ListPending(ctx context.Context) (*models.LeaveListResponse, error) {
	s.logger.Info("ListPending: fetching pending leave requests")

	leaves, err := s.leaveRepo.ListByStatus(ctx, domain.LeaveStatusPending)
	if err != nil {
		s.logger.Error("ListPending: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPending - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListPending: fetched %d pending requests", len(leaves))
	return models.FromDomainLeaveList(leaves), nil
}

// ListByDoctor получает заявки врача
func (s *Service) ListByDoctor(ctx context.Context, doctorID int64) (*models.LeaveListResponse, error) {
	s.logger.Info("ListByDoctor: fetching leave requests for doctor=%d", doctorID)

	if doctorID <= 0 {
		return nil, fmt.Errorf("%w: doctorID must be positive", ErrInvalidInput)
	}

	leaves, err := s.leaveRepo.ListByDoctorID(ctx, doctorID)
	if err != nil {
		s.logger.Error("ListByDoctor: repository error for doctor=%d: %v", doctorID, err)
		return nil, fmt.Errorf("%w: ListByDoctor - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainLeaveList(leaves), nil
}

// Resolve рассматривает заявку: одобряет или отклоняет.
// Одобрение переводит врача в статус on_leave той же транзакцией, что и
// смена статуса заявки - заявка не может оказаться одобренной при
// по-прежнему принимающем враче.
func (s *Service) Resolve(ctx context.Context, req *models.ResolveLeaveRequest) (*models.LeaveResponse, error) {
	s.logger.Info("Resolve: leave id=%d, approve=%v", req.LeaveID, req.Approve)

	if req.LeaveID <= 0 {
		return nil, fmt.Errorf("%w: leaveID must be positive", ErrInvalidInput)
	}

	var resolved *domain.Leave

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		leave, err := s.leaveRepo.GetByID(txCtx, req.LeaveID)
		if err != nil {
			if errors.Is(err, leaveRepo.ErrLeaveNotFound) {
				s.logger.Warn("Resolve: leave id=%d not found", req.LeaveID)
				return ErrLeaveNotFound
			}
			s.logger.Error("Resolve: failed to get leave id=%d: %v", req.LeaveID, err)
			return fmt.Errorf("%w: failed to get leave request: %v", ErrInternal, err)
		}

		if !leave.CanBeResolved() {
			s.logger.Warn("Resolve: leave id=%d already resolved, status=%s", req.LeaveID, leave.Status)
			return ErrLeaveAlreadyResolved
		}

		status := domain.LeaveStatusRejected
		if req.Approve {
			status = domain.LeaveStatusApproved
		}

		if err := s.leaveRepo.UpdateStatus(txCtx, leave.ID, status); err != nil {
			if errors.Is(err, leaveRepo.ErrLeaveAlreadyResolved) {
				return ErrLeaveAlreadyResolved
			}
			s.logger.Error("Resolve: failed to update leave id=%d: %v", leave.ID, err)
			return fmt.Errorf("%w: failed to update leave request: %v", ErrInternal, err)
		}

		if req.Approve {
			if err := s.doctorRepo.UpdateWorkStatus(txCtx, leave.DoctorID, domain.DoctorStatusOnLeave); err != nil {
				s.logger.Error("Resolve: failed to update doctor id=%d status: %v", leave.DoctorID, err)
				return fmt.Errorf("%w: failed to update doctor status: %v", ErrInternal, err)
			}
		}

		leave.Status = status
		resolved = leave
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("Resolve: leave id=%d resolved to %s", resolved.ID, resolved.Status)
	return models.FromDomainLeave(resolved), nil
}
