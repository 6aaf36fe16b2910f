package models

import (
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
)

// Request модели

// ApplyLeaveRequest заявка врача на отпуск
type ApplyLeaveRequest struct {
	DoctorID   int64  `json:"doctorId"`
	LeaveDate  string `json:"leaveDate"`  // "2025-11-10"
	ReturnDate string `json:"returnDate"` // "2025-11-17"
	Reason     string `json:"reason,omitempty"`
}

// ResolveLeaveRequest решение администратора по заявке
type ResolveLeaveRequest struct {
	LeaveID int64 `json:"leaveId"`
	Approve bool  `json:"approve"`
}

// Response модели

// LeaveResponse ответ с данными заявки
type LeaveResponse struct {
	ID         int64  `json:"id"`
	DoctorID   int64  `json:"doctorId"`
	LeaveDate  string `json:"leaveDate"`
	ReturnDate string `json:"returnDate"`
	DaysCount  int    `json:"daysCount"`
	Reason     string `json:"reason,omitempty"`
	Status     string `json:"status"`
}

// LeaveListResponse ответ со списком заявок
type LeaveListResponse struct {
	Leaves []LeaveResponse `json:"leaves"`
	Total  int             `json:"total"`
}

// FromDomainLeave конвертирует domain модель в response
func FromDomainLeave(leave *domain.Leave) *LeaveResponse {
	return &LeaveResponse{
		ID:         leave.ID,
		DoctorID:   leave.DoctorID,
		LeaveDate:  leave.LeaveDate.Format(domain.DateFormat),
		ReturnDate: leave.ReturnDate.Format(domain.DateFormat),
		DaysCount:  leave.DaysCount,
		Reason:     leave.Reason,
		Status:     string(leave.Status),
	}
}

// FromDomainLeaveList конвертирует список domain моделей в response
func FromDomainLeaveList(leaves []*domain.Leave) *LeaveListResponse {
	result := make([]LeaveResponse, len(leaves))
	for i, leave := range leaves {
		result[i] = *FromDomainLeave(leave)
	}
	return &LeaveListResponse{Leaves: result, Total: len(result)}
}
