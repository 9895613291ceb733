package cleaning

import "errors"

var (
	// ErrRoomNotFound возвращается, когда для комнаты нет записи статуса уборки
	ErrRoomNotFound = errors.New("cleaning.repository: room not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("cleaning.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("cleaning.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("cleaning.repository: failed to scan row")
)
