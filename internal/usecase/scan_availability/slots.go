package scan_availability

import (
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/pkg/types"
)

// openSlotCount считает свободные слоты как разность множеств: сетка минус
// занятые. Занятая запись вне сетки (прямая вставка в БД, слот из старой
// конфигурации сетки) не уменьшает число свободных слотов.
func openSlotCount(grid, occupied []types.TimeString) int {
	occupiedSet := make(map[types.TimeString]struct{}, len(occupied))
	for _, slot := range occupied {
		occupiedSet[slot] = struct{}{}
	}

	open := 0
	for _, slot := range grid {
		if _, taken := occupiedSet[slot]; !taken {
			open++
		}
	}

	return open
}
