package engine

import (
	"testing"

	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriority_MaximumZone(t *testing.T) {
	// Максимальная серьезность и насыщенная оценка пострадавших дают приоритет 1.0
	zone := &models.DisasterZone{
		Severity:         10,
		AffectedRadiusKm: 10,
		Population:       50000,
	}

	assert.Equal(t, 1.0, Priority(zone))
}

func TestPriority_ZeroZone(t *testing.T) {
	zone := &models.DisasterZone{
		Severity:         0,
		AffectedRadiusKm: 0,
		Population:       0,
	}

	assert.Equal(t, 0.0, Priority(zone))
}

func TestPriority_SeverityClamped(t *testing.T) {
	// Серьезность вне [0,10] приводится к границе, а не отклоняется
	over := Priority(&models.DisasterZone{Severity: 15})
	max := Priority(&models.DisasterZone{Severity: 10})

	assert.Equal(t, max, over)
}

func TestPriority_AlwaysInUnitRange(t *testing.T) {
	zones := []*models.DisasterZone{
		{Severity: -5, AffectedRadiusKm: -1, Population: -100},
		{Severity: 100, AffectedRadiusKm: 1000, Population: 10000000},
		{Severity: 5, AffectedRadiusKm: 3, Population: 20000},
	}

	for _, zone := range zones {
		priority := Priority(zone)
		assert.GreaterOrEqual(t, priority, 0.0)
		assert.LessOrEqual(t, priority, 1.0)
	}
}

func TestAllocate_QuotasScaleWithSeverity(t *testing.T) {
	zones := []*models.DisasterZone{
		{ID: "z1", Latitude: 28.61, Longitude: 77.21, Severity: 8},
	}

	allocations := Allocate(zones)

	require.Len(t, allocations, 1)
	alloc := allocations[0]
	assert.Equal(t, "z1", alloc.ZoneID)
	assert.Equal(t, "28.61,77.21", alloc.Location)
	assert.Equal(t, 16, alloc.Needs.MedicalTeams)
	assert.Equal(t, 800, alloc.Needs.WaterSupplies)
	assert.Equal(t, 1200, alloc.Needs.FoodSupplies)
	assert.Equal(t, 12, alloc.Needs.RescueVehicles)
}

func TestAllocate_UrgencyBands(t *testing.T) {
	immediate := Allocate([]*models.DisasterZone{
		{ID: "imm", Severity: 10, AffectedRadiusKm: 10, Population: 50000},
	})
	high := Allocate([]*models.DisasterZone{
		{ID: "high", Severity: 10, AffectedRadiusKm: 2, Population: 1000},
	})
	normal := Allocate([]*models.DisasterZone{
		{ID: "norm", Severity: 4},
	})

	assert.Equal(t, models.UrgencyImmediate, immediate[0].Urgency)
	assert.Equal(t, models.UrgencyHigh, high[0].Urgency)
	assert.Equal(t, models.UrgencyNormal, normal[0].Urgency)
}

func TestAllocate_SortedByPriorityDesc(t *testing.T) {
	zones := []*models.DisasterZone{
		{ID: "low", Severity: 2},
		{ID: "top", Severity: 10, AffectedRadiusKm: 10, Population: 50000},
		{ID: "mid", Severity: 6},
	}

	allocations := Allocate(zones)

	require.Len(t, allocations, 3)
	assert.Equal(t, "top", allocations[0].ZoneID)
	assert.Equal(t, "mid", allocations[1].ZoneID)
	assert.Equal(t, "low", allocations[2].ZoneID)
}

func TestAllocate_Empty(t *testing.T) {
	allocations := Allocate(nil)

	assert.NotNil(t, allocations)
	assert.Empty(t, allocations)
}
