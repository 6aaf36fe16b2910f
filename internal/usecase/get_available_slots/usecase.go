package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
	doctorRepo "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/infra/storage/doctor"
)

// UseCase use case для получения свободных слотов врача на дату
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

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, doctor=%d, date=%s",
		req.UserID, req.DoctorID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты с учетом окна бронирования
	if err := validateDate(req.Date, now, uc.schedule); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем врача
	doctor, err := uc.doctorRepo.GetByID(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			uc.logger.Warn("GetAvailableSlots: doctor id=%d not found", req.DoctorID)
			return nil, ErrDoctorNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get doctor id=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get doctor: %v", ErrInternal, err)
	}

	// 5. Проверяем, что врач принимает пациентов
	if !doctor.IsBookable() {
		uc.logger.Warn("GetAvailableSlots: doctor id=%d is not bookable, status=%s",
			req.DoctorID, doctor.WorkStatus)
		return nil, ErrDoctorNotBookable
	}

	// 6. Получаем занятые слоты врача на эту дату
	occupied, err := uc.appointmentRepo.GetOccupiedSlots(ctx, req.DoctorID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get occupied slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get occupied slots: %v", ErrInternal, err)
	}

	// 7. Вычитаем занятые слоты из дневной сетки
	open := openSlots(uc.schedule, occupied)

	slots := make([]Slot, len(open))
	for i, slot := range open {
		slots[i] = Slot{
			StartTime:       slot,
			DurationMinutes: uc.schedule.SlotDurationMinutes,
		}
	}

	uc.logger.Info("GetAvailableSlots: %d of %d slots open for doctor=%d, date=%s",
		len(slots), len(uc.schedule.Grid()), req.DoctorID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:     req.Date,
		DoctorID: req.DoctorID,
		Slots:    slots,
	}, nil
}
