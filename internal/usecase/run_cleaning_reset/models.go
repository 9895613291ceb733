package run_cleaning_reset

import "time"

// Response модель ответа ежедневного сброса статусов уборки
type Response struct {
	Date time.Time // день, для которого выполнен сброс
	// OccupiedRooms комнаты, занятые гостями в этот день
	OccupiedRooms []string
	// MarkedCount сколько комнат реально переведено в "Needs Cleaning".
	// Повторный запуск за тот же день дает ноль
	MarkedCount int64
}
