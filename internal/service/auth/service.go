package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
	credentialRepo "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/infra/storage/credential"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/auth/models"
)

// Service сервис учетных записей
type Service struct {
	credentialRepo CredentialRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса учетных записей
func NewService(credentialRepo CredentialRepository, logger Logger) *Service {
	return &Service{
		credentialRepo: credentialRepo,
		logger:         logger,
	}
}

// Login проверяет пару userID/пароль и тип учетной записи.
// Несуществующая учетная запись и неверный пароль дают один и тот же
// ответ - наружу не утекает, какие ID существуют.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	s.logger.Info("Login: attempt for user=%d, type=%s", req.UserID, req.UserType)

	if req.UserID <= 0 || req.Password == "" {
		return nil, fmt.Errorf("%w: userID and password are required", ErrInvalidInput)
	}

	userType, err := parseUserType(req.UserType)
	if err != nil {
		return nil, err
	}

	credential, err := s.credentialRepo.GetByUserID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, credentialRepo.ErrCredentialNotFound) {
			s.logger.Warn("Login: user=%d not found", req.UserID)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if credential.Password != req.Password {
		s.logger.Warn("Login: wrong password for user=%d", req.UserID)
		return nil, ErrInvalidCredentials
	}

	if credential.UserType != userType {
		s.logger.Warn("Login: user=%d is %s, not %s", req.UserID, credential.UserType, userType)
		return nil, ErrWrongUserType
	}

	s.logger.Info("Login: user=%d logged in as %s", req.UserID, userType)
	return &models.LoginResponse{
		UserID:   credential.UserID,
		UserType: string(credential.UserType),
	}, nil
}

// SignUp создает учетную запись и возвращает выданный ID
func (s *Service) SignUp(ctx context.Context, req *models.SignUpRequest) (*models.SignUpResponse, error) {
	s.logger.Info("SignUp: creating %s account", req.UserType)

	if req.Password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}

	userType, err := parseUserType(req.UserType)
	if err != nil {
		return nil, err
	}

	created, err := s.credentialRepo.Create(ctx, &domain.Credential{
		Password: req.Password,
		UserType: userType,
	})
	if err != nil {
		s.logger.Error("SignUp: repository error: %v", err)
		return nil, fmt.Errorf("%w: SignUp - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SignUp: created %s account id=%d", userType, created.UserID)
	return &models.SignUpResponse{
		UserID:   created.UserID,
		UserType: string(created.UserType),
	}, nil
}

// ChangePassword меняет пароль после проверки старого
func (s *Service) ChangePassword(ctx context.Context, req *models.ChangePasswordRequest) error {
	s.logger.Info("ChangePassword: user=%d", req.UserID)

	if req.UserID <= 0 || req.OldPassword == "" || req.NewPassword == "" {
		return fmt.Errorf("%w: userID, oldPassword and newPassword are required", ErrInvalidInput)
	}

	credential, err := s.credentialRepo.GetByUserID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, credentialRepo.ErrCredentialNotFound) {
			s.logger.Warn("ChangePassword: user=%d not found", req.UserID)
			return ErrInvalidCredentials
		}
		s.logger.Error("ChangePassword: repository error for user=%d: %v", req.UserID, err)
		return fmt.Errorf("%w: ChangePassword - repository error: %v", ErrInternal, err)
	}

	if credential.Password != req.OldPassword {
		s.logger.Warn("ChangePassword: wrong old password for user=%d", req.UserID)
		return ErrInvalidCredentials
	}

	if err := s.credentialRepo.UpdatePassword(ctx, req.UserID, req.NewPassword); err != nil {
		s.logger.Error("ChangePassword: failed to update password for user=%d: %v", req.UserID, err)
		return fmt.Errorf("%w: ChangePassword - failed to update password: %v", ErrInternal, err)
	}

	s.logger.Info("ChangePassword: password updated for user=%d", req.UserID)
	return nil
}

func parseUserType(raw string) (domain.UserType, error) {
	userType := domain.UserType(raw)
	switch userType {
	case domain.UserTypeDoctor, domain.UserTypePatient, domain.UserTypeAdmin:
		return userType, nil
	default:
		return "", fmt.Errorf("%w: unknown user type %q", ErrInvalidInput, raw)
	}
}
