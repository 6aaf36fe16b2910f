package get_availability

import (
	"context"

	scanAvailability "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/usecase/scan_availability"
)

type ScanAvailabilityUseCase interface {
	Execute(ctx context.Context, req *scanAvailability.Request) (*scanAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
