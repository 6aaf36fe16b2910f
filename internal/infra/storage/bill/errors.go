package bill

import "errors"

var (
	// ErrBillNotFound возвращается, когда счёт не найден
	ErrBillNotFound = errors.New("bill.repository: bill not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("bill.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("bill.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("bill.repository: failed to scan row")
)
