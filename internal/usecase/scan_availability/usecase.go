package scan_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
	doctorRepo "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/infra/storage/doctor"
)

// UseCase use case для обзора доступности врача по всему окну бронирования
type UseCase struct {
	appointmentRepo AppointmentRepository
	doctorRepo      DoctorRepository
	schedule        domain.Schedule
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	doctorRepo DoctorRepository,
	schedule domain.Schedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		schedule:        schedule,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case обзора доступности.
// Полностью занятый день не ошибка - он попадает в ответ с HasOpening=false,
// чтобы пациент видел всё окно целиком.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ScanAvailability: user=%d, doctor=%d", req.UserID, req.DoctorID)

	// 1. Валидация входных данных
	if req.DoctorID <= 0 {
		uc.logger.Warn("ScanAvailability: validation failed: doctorID must be positive")
		return nil, fmt.Errorf("%w: doctorID must be positive", ErrInvalidInput)
	}

	// 2. Получаем врача
	doctor, err := uc.doctorRepo.GetByID(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			uc.logger.Warn("ScanAvailability: doctor id=%d not found", req.DoctorID)
			return nil, ErrDoctorNotFound
		}
		uc.logger.Error("ScanAvailability: failed to get doctor id=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get doctor: %v", ErrInternal, err)
	}

	// 3. Проверяем, что врач принимает пациентов
	if !doctor.IsBookable() {
		uc.logger.Warn("ScanAvailability: doctor id=%d is not bookable, status=%s",
			req.DoctorID, doctor.WorkStatus)
		return nil, ErrDoctorNotBookable
	}

	// 4. Обходим окно день за днем, начиная с сегодняшнего
	windowStart := domain.DateOnly(uc.timeProvider.Now())
	windowEnd := uc.schedule.WindowEnd(windowStart)
	grid := uc.schedule.Grid()

	days := make([]DayEntry, 0, uc.schedule.BookingWindowDays)
	for offset := 0; offset < uc.schedule.BookingWindowDays; offset++ {
		date := windowStart.AddDate(0, 0, offset)

		occupied, err := uc.appointmentRepo.GetOccupiedSlots(ctx, req.DoctorID, date)
		if err != nil {
			uc.logger.Error("ScanAvailability: failed to get occupied slots for %s: %v",
				date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to get occupied slots: %v", ErrInternal, err)
		}

		openCount := openSlotCount(grid, occupied)

		days = append(days, DayEntry{
			Date:       date,
			OpenSlots:  openCount,
			HasOpening: openCount > 0,
		})
	}

	uc.logger.Info("ScanAvailability: doctor=%d, window=%s..%s, %d days scanned",
		req.DoctorID, windowStart.Format(domain.DateFormat), windowEnd.Format(domain.DateFormat), len(days))

	return &Response{
		DoctorID:    req.DoctorID,
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
		Days:        days,
	}, nil
}
