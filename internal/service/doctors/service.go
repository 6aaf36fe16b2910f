package doctors

import (
	"context"
	"errors"
	"fmt"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
	doctorRepo "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/infra/storage/doctor"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/doctors/models"
)

// Service сервис справочника врачей
type Service struct {
	doctorRepo DoctorRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса врачей
func NewService(doctorRepo DoctorRepository, logger Logger) *Service {
	return &Service{
		doctorRepo: doctorRepo,
		logger:     logger,
	}
}

// List получает список врачей с фильтрацией по специализации и статусу
func (s *Service) List(ctx context.Context, req *models.ListDoctorsRequest) (*models.DoctorListResponse, error) {
	s.logger.Info("List: fetching doctors, specialization=%v, workStatus=%v", req.Specialization, req.WorkStatus)

	filter := domain.DoctorsFilter{
		Specialization: req.Specialization,
	}

	if req.WorkStatus != nil {
		status := domain.DoctorStatus(*req.WorkStatus)
		switch status {
		case domain.DoctorStatusActive, domain.DoctorStatusOnLeave, domain.DoctorStatusRetired:
			filter.WorkStatus = &status
		default:
			s.logger.Warn("List: invalid workStatus=%s", *req.WorkStatus)
			return nil, fmt.Errorf("%w: invalid work status", ErrInvalidInput)
		}
	}

	doctors, err := s.doctorRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d doctors", len(doctors))
	return models.FromDomainDoctorList(doctors), nil
}

// GetByID получает врача по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.DoctorResponse, error) {
	s.logger.Info("GetByID: fetching doctor id=%d", id)

	doctor, err := s.doctorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			s.logger.Warn("GetByID: doctor id=%d not found", id)
			return nil, ErrDoctorNotFound
		}
		s.logger.Error("GetByID: repository error for doctor id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDoctor(doctor), nil
}

// UpdateProfile обновляет профиль врача и возвращает свежие данные
func (s *Service) UpdateProfile(ctx context.Context, id int64, req *models.UpdateDoctorRequest) (*models.DoctorResponse, error) {
	s.logger.Info("UpdateProfile: updating doctor id=%d", id)

	err := s.doctorRepo.UpdateProfile(ctx, id, req.ToRepoUpdate())
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			s.logger.Warn("UpdateProfile: doctor id=%d not found", id)
			return nil, ErrDoctorNotFound
		}
		if errors.Is(err, doctorRepo.ErrNoFieldsToUpdate) {
			s.logger.Warn("UpdateProfile: no fields to update for doctor id=%d", id)
			return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
		}
		s.logger.Error("UpdateProfile: repository error for doctor id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateProfile - repository error: %v", ErrInternal, err)
	}

	doctor, err := s.doctorRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateProfile: failed to reload doctor id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateProfile - failed to reload doctor: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateProfile: successfully updated doctor id=%d", id)
	return models.FromDomainDoctor(doctor), nil
}
