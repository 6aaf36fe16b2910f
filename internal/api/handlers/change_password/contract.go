package change_password

import (
	"context"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/auth/models"
)

type AuthService interface {
	ChangePassword(ctx context.Context, req *models.ChangePasswordRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
