package pay_bill

// PayBillRequest запрос на оплату счета
type PayBillRequest struct {
	PatientID int64 `json:"patientId"`
}
