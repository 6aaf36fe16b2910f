package medicine

import "errors"

var (
	// ErrMedicineNotFound возвращается, когда лекарство не найдено
	ErrMedicineNotFound = errors.New("medicine.repository: medicine not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("medicine.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("medicine.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("medicine.repository: failed to scan row")
)
