package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
	credentialRepo "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/infra/storage/credential"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/auth/models"
)

type fakeCredentialRepo struct {
	credential  *domain.Credential
	getErr      error
	newPassword string
}

func (f *fakeCredentialRepo) GetByUserID(_ context.Context, _ int64) (*domain.Credential, error) {
	return f.credential, f.getErr
}

func (f *fakeCredentialRepo) Create(_ context.Context, credential *domain.Credential) (*domain.Credential, error) {
	created := *credential
	created.UserID = 101
	return &created, nil
}

func (f *fakeCredentialRepo) UpdatePassword(_ context.Context, _ int64, password string) error {
	f.newPassword = password
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func patientCredential() *domain.Credential {
	return &domain.Credential{UserID: 5, Password: "secret", UserType: domain.UserTypePatient}
}

func TestLogin(t *testing.T) {
	s := NewService(&fakeCredentialRepo{credential: patientCredential()}, nopLogger{})

	resp, err := s.Login(context.Background(), &models.LoginRequest{
		UserID:   5,
		Password: "secret",
		UserType: "patient",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.UserID)
	assert.Equal(t, "patient", resp.UserType)
}

func TestLogin_WrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	// Наружу не утекает, существует ли учетная запись
	s := NewService(&fakeCredentialRepo{credential: patientCredential()}, nopLogger{})
	_, wrongPassErr := s.Login(context.Background(), &models.LoginRequest{
		UserID:   5,
		Password: "wrong",
		UserType: "patient",
	})

	s = NewService(&fakeCredentialRepo{getErr: credentialRepo.ErrCredentialNotFound}, nopLogger{})
	_, unknownUserErr := s.Login(context.Background(), &models.LoginRequest{
		UserID:   404,
		Password: "secret",
		UserType: "patient",
	})

	assert.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUserErr, ErrInvalidCredentials)
	assert.Equal(t, wrongPassErr, unknownUserErr)
}

func TestLogin_WrongUserType(t *testing.T) {
	s := NewService(&fakeCredentialRepo{credential: patientCredential()}, nopLogger{})

	_, err := s.Login(context.Background(), &models.LoginRequest{
		UserID:   5,
		Password: "secret",
		UserType: "doctor",
	})
	assert.ErrorIs(t, err, ErrWrongUserType)
}

func TestLogin_UnknownUserTypeValue(t *testing.T) {
	s := NewService(&fakeCredentialRepo{credential: patientCredential()}, nopLogger{})

	_, err := s.Login(context.Background(), &models.LoginRequest{
		UserID:   5,
		Password: "secret",
		UserType: "nurse",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSignUp_IssuesUserID(t *testing.T) {
	s := NewService(&fakeCredentialRepo{}, nopLogger{})

	resp, err := s.SignUp(context.Background(), &models.SignUpRequest{
		Password: "secret",
		UserType: "doctor",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.UserID)
	assert.Equal(t, "doctor", resp.UserType)
}

func TestChangePassword(t *testing.T) {
	repo := &fakeCredentialRepo{credential: patientCredential()}
	s := NewService(repo, nopLogger{})

	err := s.ChangePassword(context.Background(), &models.ChangePasswordRequest{
		UserID:      5,
		OldPassword: "secret",
		NewPassword: "stronger",
	})
	require.NoError(t, err)
	assert.Equal(t, "stronger", repo.newPassword)
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	repo := &fakeCredentialRepo{credential: patientCredential()}
	s := NewService(repo, nopLogger{})

	err := s.ChangePassword(context.Background(), &models.ChangePasswordRequest{
		UserID:      5,
		OldPassword: "wrong",
		NewPassword: "stronger",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, repo.newPassword)
}
