package models

import (
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
)

// Request модели

// GetPatientBillsRequest запрос на получение счетов пациента
type GetPatientBillsRequest struct {
	PatientID int64   `json:"patientId"`
	Status    *string `json:"status,omitempty"` // Фильтр по статусу оплаты (опционально)
}

// Response модели

// BillResponse ответ с данными счета
type BillResponse struct {
	ID            int64   `json:"id"`
	PatientID     int64   `json:"patientId"`
	BillType      string  `json:"billType"`
	Amount        float64 `json:"amount"`
	BillDate      string  `json:"billDate"` // "2025-10-15"
	PaymentStatus string  `json:"paymentStatus"`
}

// BillListResponse ответ со списком счетов и суммой задолженности
type BillListResponse struct {
	Bills      []BillResponse `json:"bills"`
	Total      int            `json:"total"`
	PendingDue float64        `json:"pendingDue"` // Сумма неоплаченных счетов
}

// FromDomainBill конвертирует domain модель в response
func FromDomainBill(bill *domain.Bill) *BillResponse {
	return &BillResponse{
		ID:            bill.ID,
		PatientID:     bill.PatientID,
		BillType:      string(bill.Type),
		Amount:        bill.Amount,
		BillDate:      bill.Date.Format(domain.DateFormat),
		PaymentStatus: string(bill.PaymentStatus),
	}
}

// FromDomainBillList конвертирует список domain моделей в response
func FromDomainBillList(bills []*domain.Bill) *BillListResponse {
	result := make([]BillResponse, len(bills))
	var pendingDue float64
	for i, bill := range bills {
		result[i] = *FromDomainBill(bill)
		if !bill.IsPaid() {
			pendingDue += bill.Amount
		}
	}
	return &BillListResponse{Bills: result, Total: len(result), PendingDue: pendingDue}
}
