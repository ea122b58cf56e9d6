package geo

import (
	"testing"

	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCell_PositiveCoordinates(t *testing.T) {
	key := Cell(1.25, 2.35, 0.5)

	assert.Equal(t, CellKey{Lat: 2, Lon: 4}, key)
}

func TestCell_NegativeCoordinates_FloorNotTruncate(t *testing.T) {
	// Округление вниз: -0.25/0.5 = -0.5 -> ячейка -1, а не 0
	key := Cell(-0.25, -0.25, 0.5)

	assert.Equal(t, CellKey{Lat: -1, Lon: -1}, key)
}

func TestCell_ExactBoundary(t *testing.T) {
	key := Cell(1.0, -1.0, 0.5)

	assert.Equal(t, CellKey{Lat: 2, Lon: -2}, key)
}

func TestCell_ZeroSizeFallsBackToDefault(t *testing.T) {
	withZero := Cell(12.34, 56.78, 0)
	withDefault := Cell(12.34, 56.78, DefaultCellSizeDeg)

	assert.Equal(t, withDefault, withZero)
}

func TestCellKey_String(t *testing.T) {
	key := CellKey{Lat: -3, Lon: 17}

	assert.Equal(t, "-3,17", key.String())
}

func TestGroupReports(t *testing.T) {
	// Подготовка: два сообщения в одной ячейке, одно в соседней
	reports := []*models.CitizenReport{
		{ID: "r1", Latitude: 10.01, Longitude: 20.01},
		{ID: "r2", Latitude: 10.09, Longitude: 20.09},
		{ID: "r3", Latitude: 10.11, Longitude: 20.01},
	}

	groups := GroupReports(reports, 0.1)

	require.Len(t, groups, 2)
	sameCell := groups[Cell(10.01, 20.01, 0.1)]
	require.Len(t, sameCell, 2)
	assert.Equal(t, "r1", sameCell[0].ID)
	assert.Equal(t, "r2", sameCell[1].ID)
	assert.Len(t, groups[Cell(10.11, 20.01, 0.1)], 1)
}

func TestGroupReports_Empty(t *testing.T) {
	groups := GroupReports(nil, 0.1)

	assert.Empty(t, groups)
}
