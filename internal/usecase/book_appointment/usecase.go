package book_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
	appointmentRepo "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/infra/storage/appointment"
	doctorRepo "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/infra/storage/doctor"
	patientRepo "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/infra/storage/patient"
)

// UseCase use case для записи пациента к врачу
type UseCase struct {
	appointmentRepo AppointmentRepository
	doctorRepo      DoctorRepository
	patientRepo     PatientRepository
	billRepo        BillRepository
	txManager       TransactionManager
	schedule        domain.Schedule
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	doctorRepo DoctorRepository,
	patientRepo PatientRepository,
	billRepo BillRepository,
	txManager TransactionManager,
	schedule domain.Schedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		billRepo:        billRepo,
		txManager:       txManager,
		schedule:        schedule,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case записи к врачу
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// два одновременных запроса на один слот не могут оба пройти проверку
// занятости и оба вставить запись
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: patient=%d, doctor=%d, date=%s, time=%s",
		req.PatientID, req.DoctorID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты с учетом окна бронирования
	if err := validateDate(req.Date, now, uc.schedule); err != nil {
		uc.logger.Warn("BookAppointment: date validation failed: %v", err)
		return nil, err
	}

	// 4. Валидация слота по дневной сетке
	if err := validateSlot(uc.schedule, req); err != nil {
		uc.logger.Warn("BookAppointment: slot validation failed: %v", err)
		return nil, err
	}

	// 5. Проверяем существование пациента
	if _, err := uc.patientRepo.GetByID(ctx, req.PatientID); err != nil {
		if errors.Is(err, patientRepo.ErrPatientNotFound) {
			uc.logger.Warn("BookAppointment: patient id=%d not found", req.PatientID)
			return nil, ErrPatientNotFound
		}
		uc.logger.Error("BookAppointment: failed to get patient id=%d: %v", req.PatientID, err)
		return nil, fmt.Errorf("%w: failed to get patient: %v", ErrInternal, err)
	}

	// 6. Получаем врача
	doctor, err := uc.doctorRepo.GetByID(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			uc.logger.Warn("BookAppointment: doctor id=%d not found", req.DoctorID)
			return nil, ErrDoctorNotFound
		}
		uc.logger.Error("BookAppointment: failed to get doctor id=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get doctor: %v", ErrInternal, err)
	}

	// 7. Проверяем, что врач принимает пациентов
	if !doctor.IsBookable() {
		uc.logger.Warn("BookAppointment: doctor id=%d is not bookable, status=%s",
			req.DoctorID, doctor.WorkStatus)
		return nil, ErrDoctorNotBookable
	}

	purpose := req.Purpose
	if purpose == "" {
		purpose = domain.DefaultAppointmentPurpose
	}

	// Переменные для хранения результата
	var createdAppointment *domain.Appointment
	var createdBill *domain.Bill

	// 8. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Перечитываем занятые слоты с блокировкой (FOR UPDATE)
		occupied, err := uc.appointmentRepo.GetOccupiedSlots(txCtx, req.DoctorID, req.Date)
		if err != nil {
			uc.logger.Error("BookAppointment: failed to get occupied slots: %v", err)
			return fmt.Errorf("%w: failed to get occupied slots: %v", ErrInternal, err)
		}

		// 8.2. Проверяем, что слот все еще свободен
		for _, slot := range occupied {
			if slot == req.StartTime {
				uc.logger.Warn("BookAppointment: slot %s already taken, doctor=%d, date=%s",
					req.StartTime, req.DoctorID, req.Date.Format(domain.DateFormat))
				return ErrSlotTaken
			}
		}

		// 8.3. Создаем запись на прием
		appointment := &domain.Appointment{
			PatientID: req.PatientID,
			DoctorID:  req.DoctorID,
			Date:      domain.DateOnly(req.Date),
			StartTime: req.StartTime,
			Purpose:   purpose,
		}

		createdAppointment, err = uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			// Уникальный индекс - последняя линия обороны: даже если проверка
			// выше прошла, конкурирующая вставка на ту же тройку упадет здесь
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("BookAppointment: unique constraint rejected slot %s, doctor=%d, date=%s",
					req.StartTime, req.DoctorID, req.Date.Format(domain.DateFormat))
				return ErrSlotTaken
			}
			uc.logger.Error("BookAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		// 8.4. Выставляем счет за прием той же транзакцией.
		// Счет датируется днем приема, а не днем бронирования: счет и запись
		// связаны парой (пациент, дата)
		bill := &domain.Bill{
			PatientID: req.PatientID,
			Type:      domain.BillTypeAppointment,
			Amount:    doctor.AppointmentCost,
			Date:      domain.DateOnly(req.Date),
		}

		createdBill, err = uc.billRepo.Create(txCtx, bill)
		if err != nil {
			uc.logger.Error("BookAppointment: failed to create bill: %v", err)
			return fmt.Errorf("%w: failed to create bill: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookAppointment: created appointment id=%d, bill id=%d, amount=%.2f",
		createdAppointment.ID, createdBill.ID, createdBill.Amount)

	return &Response{
		AppointmentID: createdAppointment.ID,
		PatientID:     createdAppointment.PatientID,
		DoctorID:      createdAppointment.DoctorID,
		DoctorName:    doctor.Name,
		Date:          createdAppointment.Date,
		StartTime:     createdAppointment.StartTime,
		Purpose:       createdAppointment.Purpose,
		BillID:        createdBill.ID,
		BillAmount:    createdBill.Amount,
		CreatedAt:     createdAppointment.CreatedAt,
	}, nil
}
