package geo

import (
	"fmt"
	"math"

	"github.com/shenikar/disaster_response_system/internal/models"
)

// DefaultCellSizeDeg - размер ячейки сетки по умолчанию (~11 км по широте)
const DefaultCellSizeDeg = 0.1

// CellKey - целочисленный ключ ячейки сетки широта/долгота. Не хранимая
// сущность: вычисляется заново при каждой группировке.
type CellKey struct {
	Lat int
	Lon int
}

// String возвращает ключ в виде "lat,lon" для внешних идентификаторов.
func (k CellKey) String() string {
	return fmt.Sprintf("%d,%d", k.Lat, k.Lon)
}

// Cell возвращает ключ ячейки для координаты: floor(lat/size), floor(lon/size).
// Округление вниз (а не усечение к нулю) сохраняет равномерность ячеек при
// отрицательных координатах.
func Cell(lat, lon, cellSizeDeg float64) CellKey {
	if cellSizeDeg <= 0 {
		cellSizeDeg = DefaultCellSizeDeg
	}
	return CellKey{
		Lat: int(math.Floor(lat / cellSizeDeg)),
		Lon: int(math.Floor(lon / cellSizeDeg)),
	}
}

// GroupReports раскладывает сообщения по ячейкам сетки за O(n), без попарных
// сравнений расстояний. Два сообщения по разные стороны границы ячейки могут
// попасть в разные группы - это принятое приближение, а не ошибка.
func GroupReports(reports []*models.CitizenReport, cellSizeDeg float64) map[CellKey][]*models.CitizenReport {
	groups := make(map[CellKey][]*models.CitizenReport)
	for _, r := range reports {
		key := Cell(r.Latitude, r.Longitude, cellSizeDeg)
		groups[key] = append(groups[key], r)
	}
	return groups
}
