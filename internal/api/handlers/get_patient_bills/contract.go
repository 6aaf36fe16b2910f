package get_patient_bills

import (
	"context"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/bills/models"
)

type BillsService interface {
	GetPatientBills(ctx context.Context, req *models.GetPatientBillsRequest) (*models.BillListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
