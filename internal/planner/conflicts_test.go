package planner

import (
	"testing"
	"time"

	"github.com/escuderos-dev/duty-planner/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// El 5 de octubre de 2025 es domingo y el 1 de octubre es miércoles.
func octoberSlots(t *testing.T) []domain.DutySlot {
	t.Helper()
	slots := GenerateSlots(2025, time.October)
	require.NotEmpty(t, slots)
	return slots
}

func slotByID(t *testing.T, slots []domain.DutySlot, id string) domain.DutySlot {
	t.Helper()
	for _, slot := range slots {
		if slot.ID == id {
			return slot
		}
	}
	t.Fatalf("no existe el turno %s", id)
	return domain.DutySlot{}
}

func TestFindConflicts(t *testing.T) {
	t.Run("sin otros turnos ese día no hay conflicto", func(t *testing.T) {
		slots := octoberSlots(t)
		target := slotByID(t, slots, "2025-10-05-07:00")

		assert.Empty(t, FindConflicts(slots, target, "s1"))
	})

	t.Run("un segundo turno de mañana el mismo día es válido", func(t *testing.T) {
		slots := Assign(octoberSlots(t), "2025-10-05-07:00", "s1")
		target := slotByID(t, slots, "2025-10-05-09:30")

		assert.Empty(t, FindConflicts(slots, target, "s1"))
	})

	t.Run("el tercer turno del día dispara MAX_TWO_PER_DAY", func(t *testing.T) {
		slots := Assign(octoberSlots(t), "2025-10-05-07:00", "s1")
		slots = Assign(slots, "2025-10-05-09:30", "s1")
		target := slotByID(t, slots, "2025-10-05-11:00")

		conflicts := FindConflicts(slots, target, "s1")
		assert.Equal(t, []domain.ConflictReason{domain.ConflictMaxTwoPerDay}, conflicts)
	})

	t.Run("mañana y noche el mismo día dispara NO_CROSS_PERIOD", func(t *testing.T) {
		slots := Assign(octoberSlots(t), "2025-10-05-07:00", "s1")
		target := slotByID(t, slots, "2025-10-05-18:00")

		conflicts := FindConflicts(slots, target, "s1")
		assert.Equal(t, []domain.ConflictReason{domain.ConflictNoCrossPeriod}, conflicts)
	})

	t.Run("la regla de períodos no depende del orden de asignación", func(t *testing.T) {
		slots := Assign(octoberSlots(t), "2025-10-05-18:00", "s1")
		target := slotByID(t, slots, "2025-10-05-07:00")

		conflicts := FindConflicts(slots, target, "s1")
		assert.Equal(t, []domain.ConflictReason{domain.ConflictNoCrossPeriod}, conflicts)
	})

	t.Run("pueden dispararse las dos reglas a la vez", func(t *testing.T) {
		slots := Assign(octoberSlots(t), "2025-10-05-07:00", "s1")
		slots = Assign(slots, "2025-10-05-09:30", "s1")
		target := slotByID(t, slots, "2025-10-05-18:00")

		conflicts := FindConflicts(slots, target, "s1")
		assert.ElementsMatch(t, []domain.ConflictReason{domain.ConflictMaxTwoPerDay, domain.ConflictNoCrossPeriod}, conflicts)
	})

	t.Run("los turnos de otros días no cuentan", func(t *testing.T) {
		slots := Assign(octoberSlots(t), "2025-10-05-07:00", "s1")
		slots = Assign(slots, "2025-10-05-09:30", "s1")
		target := slotByID(t, slots, "2025-10-12-11:00")

		assert.Empty(t, FindConflicts(slots, target, "s1"))
	})

	t.Run("los turnos de otros escuderos no cuentan", func(t *testing.T) {
		slots := Assign(octoberSlots(t), "2025-10-05-07:00", "s1")
		slots = Assign(slots, "2025-10-05-09:30", "s2")
		target := slotByID(t, slots, "2025-10-05-18:00")

		assert.Empty(t, FindConflicts(slots, target, "s2"))
	})

	t.Run("en modo lectura detecta la edición manual mañana más noche", func(t *testing.T) {
		// Asignación manual que se salta el reparto automático: el mismo
		// escudero a las 07:00 y a las 18:00 del mismo domingo
		slots := Assign(octoberSlots(t), "2025-10-05-07:00", "s1")
		slots = Assign(slots, "2025-10-05-18:00", "s1")

		morning := slotByID(t, slots, "2025-10-05-07:00")
		night := slotByID(t, slots, "2025-10-05-18:00")

		assert.Contains(t, FindConflicts(slots, morning, morning.SquireID), domain.ConflictNoCrossPeriod)
		assert.Contains(t, FindConflicts(slots, night, night.SquireID), domain.ConflictNoCrossPeriod)
	})
}
