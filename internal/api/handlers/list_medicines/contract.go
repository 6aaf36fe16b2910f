package list_medicines

import (
	"context"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/medicines/models"
)

type MedicinesService interface {
	List(ctx context.Context) (*models.MedicineListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
