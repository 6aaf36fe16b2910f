package credential

import "errors"

var (
	// ErrCredentialNotFound возвращается, когда учетная запись не найдена
	ErrCredentialNotFound = errors.New("credential.repository: credential not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("credential.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("credential.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("credential.repository: failed to scan row")
)
