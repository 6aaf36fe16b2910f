package auth

import (
	"context"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
)

// CredentialRepository интерфейс репозитория учетных записей
type CredentialRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Credential, error)
	Create(ctx context.Context, credential *domain.Credential) (*domain.Credential, error)
	UpdatePassword(ctx context.Context, userID int64, password string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
