package list_leaves

import (
	"context"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/leaves/models"
)

type LeavesService interface {
	ListPending(ctx context.Context) (*models.LeaveListResponse, error)
	ListByDoctor(ctx context.Context, doctorID int64) (*models.LeaveListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
