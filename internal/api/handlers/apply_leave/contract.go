package apply_leave

import (
	"context"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/leaves/models"
)

type LeavesService interface {
	Apply(ctx context.Context, req *models.ApplyLeaveRequest) (*models.LeaveResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
