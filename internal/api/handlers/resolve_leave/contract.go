package resolve_leave

import (
	"context"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/leaves/models"
)

type LeavesService interface {
	Resolve(ctx context.Context, req *models.ResolveLeaveRequest) (*models.LeaveResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
