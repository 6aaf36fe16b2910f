package models

import (
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
)

// Request модели

// CartItem одна позиция корзины
type CartItem struct {
	MedicineID int64 `json:"medicineId"`
	Quantity   int   `json:"quantity"`
}

// PurchaseRequest запрос на покупку лекарств
type PurchaseRequest struct {
	PatientID int64      `json:"patientId"`
	Items     []CartItem `json:"items"`
}

// Response модели

// MedicineResponse ответ с данными лекарства
type MedicineResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Cost       float64 `json:"cost"`
	MedicalUse string  `json:"medicalUse,omitempty"`
}

// MedicineListResponse ответ с каталогом лекарств
type MedicineListResponse struct {
	Medicines []MedicineResponse `json:"medicines"`
	Total     int                `json:"total"`
}

// PurchaseLine одна строка чека
type PurchaseLine struct {
	MedicineID int64   `json:"medicineId"`
	Name       string  `json:"name"`
	UnitCost   float64 `json:"unitCost"`
	Quantity   int     `json:"quantity"`
	LineTotal  float64 `json:"lineTotal"`
}

// PurchaseResponse ответ на покупку: чек и один общий счет
type PurchaseResponse struct {
	Lines      []PurchaseLine `json:"lines"`
	BillID     int64          `json:"billId"`
	BillAmount float64        `json:"billAmount"`
}

// FromDomainMedicine конвертирует domain модель в response
func FromDomainMedicine(medicine *domain.Medicine) *MedicineResponse {
	return &MedicineResponse{
		ID:         medicine.ID,
		Name:       medicine.Name,
		Cost:       medicine.Cost,
		MedicalUse: medicine.MedicalUse,
	}
}

// FromDomainMedicineList конвертирует список domain моделей в response
func FromDomainMedicineList(medicines []*domain.Medicine) *MedicineListResponse {
	result := make([]MedicineResponse, len(medicines))
	for i, medicine := range medicines {
		result[i] = *FromDomainMedicine(medicine)
	}
	return &MedicineListResponse{Medicines: result, Total: len(result)}
}
