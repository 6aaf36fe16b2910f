package patients

import (
	"context"
	"errors"
	"fmt"

	patientRepo "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/infra/storage/patient"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/patients/models"
)

// Service сервис профилей пациентов
type Service struct {
	patientRepo PatientRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса пациентов
func NewService(patientRepo PatientRepository, logger Logger) *Service {
	return &Service{
		patientRepo: patientRepo,
		logger:      logger,
	}
}

// GetByID получает пациента по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.PatientResponse, error) {
	s.logger.Info("GetByID: fetching patient id=%d", id)

	patient, err := s.patientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, patientRepo.ErrPatientNotFound) {
			s.logger.Warn("GetByID: patient id=%d not found", id)
			return nil, ErrPatientNotFound
		}
		s.logger.Error("GetByID: repository error for patient id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPatient(patient), nil
}

// UpdateProfile обновляет профиль пациента и возвращает свежие данные
func (s *Service) UpdateProfile(ctx context.Context, id int64, req *models.UpdatePatientRequest) (*models.PatientResponse, error) {
	s.logger.Info("UpdateProfile: updating patient id=%d", id)

	err := s.patientRepo.UpdateProfile(ctx, id, req.ToRepoUpdate())
	if err != nil {
		if errors.Is(err, patientRepo.ErrPatientNotFound) {
			s.logger.Warn("UpdateProfile: patient id=%d not found", id)
			return nil, ErrPatientNotFound
		}
		if errors.Is(err, patientRepo.ErrNoFieldsToUpdate) {
			s.logger.Warn("UpdateProfile: no fields to update for patient id=%d", id)
			return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
		}
		s.logger.Error("UpdateProfile: repository error for patient id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateProfile - repository error: %v", ErrInternal, err)
	}

	patient, err := s.patientRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateProfile: failed to reload patient id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateProfile - failed to reload patient: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateProfile: successfully updated patient id=%d", id)
	return models.FromDomainPatient(patient), nil
}
