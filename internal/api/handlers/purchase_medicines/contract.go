package purchase_medicines

import (
	"context"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/medicines/models"
)

type MedicinesService interface {
	Purchase(ctx context.Context, req *models.PurchaseRequest) (*models.PurchaseResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
