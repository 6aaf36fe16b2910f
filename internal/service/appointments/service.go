package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
	appointmentRepo "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/infra/storage/appointment"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/appointments/models"
)

// Service сервис для работы с записями на прием и курсами лечения
type Service struct {
	appointmentRepo AppointmentRepository
	treatmentRepo   TreatmentRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	treatmentRepo TreatmentRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		treatmentRepo:   treatmentRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetDoctorAppointments получает расписание врача с данными пациентов
func (s *Service) GetDoctorAppointments(ctx context.Context, doctorID int64) (*models.DoctorScheduleResponse, error) {
	s.logger.Info("GetDoctorAppointments: fetching appointments for doctor=%d", doctorID)

	if doctorID <= 0 {
		return nil, fmt.Errorf("%w: doctorID must be positive", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetByDoctorID(ctx, doctorID)
	if err != nil {
		s.logger.Error("GetDoctorAppointments: repository error for doctor=%d: %v", doctorID, err)
		return nil, fmt.Errorf("%w: GetDoctorAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetDoctorAppointments: fetched %d appointments for doctor=%d", len(appointments), doctorID)
	return models.FromDomainDoctorAppointments(appointments, time.Now()), nil
}

// GetPatientAppointments получает записи пациента
func (s *Service) GetPatientAppointments(ctx context.Context, patientID int64) (*models.PatientAppointmentListResponse, error) {
	s.logger.Info("GetPatientAppointments: fetching appointments for patient=%d", patientID)

	if patientID <= 0 {
		return nil, fmt.Errorf("%w: patientID must be positive", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetByPatientID(ctx, patientID)
	if err != nil {
		s.logger.Error("GetPatientAppointments: repository error for patient=%d: %v", patientID, err)
		return nil, fmt.Errorf("%w: GetPatientAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetPatientAppointments: fetched %d appointments for patient=%d", len(appointments), patientID)
	return models.FromDomainPatientAppointments(appointments), nil
}

// GetPatientTreatments получает курсы лечения пациента
func (s *Service) GetPatientTreatments(ctx context.Context, patientID int64) (*models.TreatmentListResponse, error) {
	s.logger.Info("GetPatientTreatments: fetching treatments for patient=%d", patientID)

	if patientID <= 0 {
		return nil, fmt.Errorf("%w: patientID must be positive", ErrInvalidInput)
	}

	treatments, err := s.treatmentRepo.GetByPatientID(ctx, patientID)
	if err != nil {
		s.logger.Error("GetPatientTreatments: repository error for patient=%d: %v", patientID, err)
		return nil, fmt.Errorf("%w: GetPatientTreatments - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTreatmentList(treatments), nil
}

// StartTreatment начинает лечение по записи на прием.
// Создание курса лечения и удаление записи выполняются одной транзакцией:
// слот (врач, дата, время) возвращается в свободное состояние ровно в тот
// момент, когда лечение начато.
func (s *Service) StartTreatment(ctx context.Context, req *models.StartTreatmentRequest) (*models.TreatmentResponse, error) {
	s.logger.Info("StartTreatment: doctor=%d, appointment=%d", req.DoctorID, req.AppointmentID)

	if req.DoctorID <= 0 || req.AppointmentID <= 0 {
		return nil, fmt.Errorf("%w: doctorID and appointmentID must be positive", ErrInvalidInput)
	}
	if req.Diagnosis == "" {
		return nil, fmt.Errorf("%w: diagnosis is required", ErrInvalidInput)
	}

	var endDate *time.Time
	if req.EndDate != nil {
		parsed, err := time.Parse(domain.DateFormat, *req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: endDate must be in YYYY-MM-DD format", ErrInvalidInput)
		}
		endDate = &parsed
	}

	var result *domain.Treatment

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		appointment, err := s.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				s.logger.Warn("StartTreatment: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			s.logger.Error("StartTreatment: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// Лечение начинает только врач, к которому сделана запись
		if appointment.DoctorID != req.DoctorID {
			s.logger.Warn("StartTreatment: appointment id=%d belongs to doctor=%d, not doctor=%d",
				req.AppointmentID, appointment.DoctorID, req.DoctorID)
			return ErrAccessDenied
		}

		treatment := &domain.Treatment{
			PatientID:     appointment.PatientID,
			DoctorID:      appointment.DoctorID,
			Diagnosis:     req.Diagnosis,
			TreatmentPlan: req.TreatmentPlan,
			Medicines:     req.Medicines,
			StartDate:     domain.DateOnly(time.Now()),
			EndDate:       endDate,
		}

		result, err = s.treatmentRepo.Create(txCtx, treatment)
		if err != nil {
			s.logger.Error("StartTreatment: failed to create treatment: %v", err)
			return fmt.Errorf("%w: failed to create treatment: %v", ErrInternal, err)
		}

		if err := s.appointmentRepo.Delete(txCtx, appointment.ID); err != nil {
			s.logger.Error("StartTreatment: failed to delete appointment id=%d: %v", appointment.ID, err)
			return fmt.Errorf("%w: failed to delete appointment: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("StartTreatment: created treatment id=%d, appointment id=%d consumed",
		result.ID, req.AppointmentID)
	return models.FromDomainTreatment(result), nil
}
