package get_available_slots

import (
	"time"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/pkg/types"
)

// openSlots вычитает занятые слоты из дневной сетки.
// Сетка и результат отсортированы по возрастанию: каждый слот дня либо
// свободен, либо занят ровно одной записью.
func openSlots(schedule domain.Schedule, occupied []types.TimeString) []types.TimeString {
	occupiedSet := make(map[types.TimeString]struct{}, len(occupied))
	for _, slot := range occupied {
		occupiedSet[slot] = struct{}{}
	}

	grid := schedule.Grid()
	open := make([]types.TimeString, 0, len(grid))
	for _, slot := range grid {
		if _, taken := occupiedSet[slot]; !taken {
			open = append(open, slot)
		}
	}

	return open
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	return domain.DateOnly(date).Before(domain.DateOnly(now))
}
