package pay_bill

import (
	"context"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/bills/models"
)

type BillsService interface {
	Pay(ctx context.Context, billID, patientID int64) (*models.BillResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
