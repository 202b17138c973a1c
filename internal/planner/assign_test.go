package planner

import (
	"fmt"
	"testing"

	"github.com/escuderos-dev/duty-planner/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoster(n int) []domain.Squire {
	roster := make([]domain.Squire, 0, n)
	for i := 1; i <= n; i++ {
		roster = append(roster, domain.Squire{
			ID:   fmt.Sprintf("s%d", i),
			Name: fmt.Sprintf("Escudero %d", i),
		})
	}
	return roster
}

func TestAutoAssign(t *testing.T) {
	t.Run("con plantilla vacía devuelve la entrada tal cual", func(t *testing.T) {
		slots := octoberSlots(t)
		result := AutoAssign(slots, nil)

		assert.Equal(t, slots, result)
		for _, slot := range result {
			assert.False(t, slot.Assigned())
		}
	})

	t.Run("nunca produce asignaciones con conflictos", func(t *testing.T) {
		for _, n := range []int{1, 2, 3, 5, 13} {
			roster := testRoster(n)
			result := AutoAssign(octoberSlots(t), roster)

			for _, slot := range result {
				if !slot.Assigned() {
					continue
				}
				assert.Empty(t, FindConflicts(result, slot, slot.SquireID),
					"plantilla de %d: el turno %s tiene conflictos", n, slot.ID)
			}
		}
	})

	t.Run("es determinista", func(t *testing.T) {
		roster := testRoster(13)
		first := AutoAssign(octoberSlots(t), roster)
		second := AutoAssign(octoberSlots(t), roster)

		assert.Equal(t, first, second)
	})

	t.Run("no modifica sus entradas y recalcula desde cero", func(t *testing.T) {
		slots := Assign(octoberSlots(t), "2025-10-05-07:00", "s13")
		snapshot := make([]domain.DutySlot, len(slots))
		copy(snapshot, slots)

		result := AutoAssign(slots, testRoster(13))

		assert.Equal(t, snapshot, slots, "la colección de entrada no debe cambiar")
		assert.Equal(t, AutoAssign(octoberSlots(t), testRoster(13)), result,
			"las asignaciones previas se descartan antes de repartir")
	})

	t.Run("con plantilla suficiente cubre todos los turnos", func(t *testing.T) {
		result := AutoAssign(octoberSlots(t), testRoster(13))
		for _, slot := range result {
			assert.True(t, slot.Assigned(), "el turno %s quedó sin cubrir", slot.ID)
		}
	})

	t.Run("el cursor rota entre días en lugar de reiniciarse", func(t *testing.T) {
		result := AutoAssign(octoberSlots(t), testRoster(13))
		byID := make(map[string]domain.DutySlot)
		for _, slot := range result {
			byID[slot.ID] = slot
		}

		// El 1 de octubre (miércoles) consume al primer escudero; el domingo
		// siguiente arranca en el segundo
		assert.Equal(t, "s1", byID["2025-10-01-18:30"].SquireID)
		assert.Equal(t, "s2", byID["2025-10-05-07:00"].SquireID)
		assert.Equal(t, "s3", byID["2025-10-05-09:30"].SquireID)
		assert.Equal(t, "s4", byID["2025-10-05-11:00"].SquireID)
		assert.Equal(t, "s5", byID["2025-10-05-18:00"].SquireID)
		assert.Equal(t, "s6", byID["2025-10-08-18:30"].SquireID)
	})

	t.Run("un único escudero solo cubre los turnos de mañana de un domingo", func(t *testing.T) {
		sunday := GroupByDate(octoberSlots(t))["2025-10-05"]
		require.Len(t, sunday, 4)

		result := AutoAssign(sunday, testRoster(1))

		assigned := 0
		for _, slot := range result {
			if !slot.Assigned() {
				continue
			}
			assigned++
			assert.Equal(t, domain.PeriodMorning, periodOf(slot.TimeID),
				"con el tope de dos y la exclusión mañana/noche solo caben turnos de mañana")
		}

		assert.Equal(t, 2, assigned)
		assert.False(t, slotByID(t, result, "2025-10-05-11:00").Assigned())
		assert.False(t, slotByID(t, result, "2025-10-05-18:00").Assigned())
	})

	t.Run("reparte la carga a lo largo del mes", func(t *testing.T) {
		roster := testRoster(13)
		result := AutoAssign(octoberSlots(t), roster)
		summary := Summarize(result, roster)

		// 21 turnos entre 13 escuderos: nadie debería acumular más de dos
		for _, load := range summary.Loads {
			assert.LessOrEqual(t, load.Count, 2, "el escudero %s está sobrecargado", load.SquireID)
			assert.GreaterOrEqual(t, load.Count, 1, "el escudero %s quedó sin turnos", load.SquireID)
		}
	})
}
