package planner

import (
	"testing"
	"time"

	"github.com/escuderos-dev/duty-planner/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreTransitions(t *testing.T) {
	t.Run("Assign reemplaza exactamente un turno", func(t *testing.T) {
		slots := octoberSlots(t)
		snapshot := make([]domain.DutySlot, len(slots))
		copy(snapshot, slots)

		result := Assign(slots, "2025-10-05-07:00", "s1")

		assert.Equal(t, snapshot, slots, "la colección de entrada no debe cambiar")
		require.Len(t, result, len(slots))
		for i, slot := range result {
			if slot.ID == "2025-10-05-07:00" {
				assert.Equal(t, "s1", slot.SquireID)
				continue
			}
			assert.Equal(t, slots[i], slot, "el resto de turnos debe conservarse igual")
		}
	})

	t.Run("ClearAssignment libera el turno", func(t *testing.T) {
		slots := Assign(octoberSlots(t), "2025-10-05-07:00", "s1")
		result := ClearAssignment(slots, "2025-10-05-07:00")

		assert.False(t, slotByID(t, result, "2025-10-05-07:00").Assigned())
	})

	t.Run("SetAttire solo cambia la vestimenta", func(t *testing.T) {
		slots := Assign(octoberSlots(t), "2025-10-05-07:00", "s1")
		result := SetAttire(slots, "2025-10-05-07:00", domain.UniformOptions[4])

		slot := slotByID(t, result, "2025-10-05-07:00")
		assert.Equal(t, domain.UniformOptions[4], slot.Attire)
		assert.Equal(t, "s1", slot.SquireID)
	})

	t.Run("un identificador desconocido deja la colección igual", func(t *testing.T) {
		slots := octoberSlots(t)
		assert.Equal(t, slots, Assign(slots, "2025-10-06-07:00", "s1"))
	})

	t.Run("ClearSquire limpia todos los turnos de un escudero y solo los suyos", func(t *testing.T) {
		slots := Assign(octoberSlots(t), "2025-10-05-07:00", "s1")
		slots = Assign(slots, "2025-10-12-09:30", "s1")
		slots = Assign(slots, "2025-10-05-09:30", "s2")

		result := ClearSquire(slots, "s1")

		assert.False(t, slotByID(t, result, "2025-10-05-07:00").Assigned())
		assert.False(t, slotByID(t, result, "2025-10-12-09:30").Assigned())
		assert.Equal(t, "s2", slotByID(t, result, "2025-10-05-09:30").SquireID)
	})
}

func TestSortSlots(t *testing.T) {
	t.Run("ordena por fecha y luego por el orden del catálogo", func(t *testing.T) {
		// Colección desordenada a propósito
		slots := []domain.DutySlot{
			{ID: "2025-10-05-18:00", Date: "2025-10-05", TimeID: "18:00"},
			{ID: "2025-10-01-18:30", Date: "2025-10-01", TimeID: "18:30"},
			{ID: "2025-10-05-07:00", Date: "2025-10-05", TimeID: "07:00"},
			{ID: "2025-10-05-11:00", Date: "2025-10-05", TimeID: "11:00"},
			{ID: "2025-10-05-09:30", Date: "2025-10-05", TimeID: "09:30"},
		}

		result := SortSlots(slots)

		ids := make([]string, 0, len(result))
		for _, slot := range result {
			ids = append(ids, slot.ID)
		}
		assert.Equal(t, []string{
			"2025-10-01-18:30",
			"2025-10-05-07:00",
			"2025-10-05-09:30",
			"2025-10-05-11:00",
			"2025-10-05-18:00",
		}, ids)
	})
}

func TestSummarize(t *testing.T) {
	t.Run("calcula cobertura y cargas en el orden de la plantilla", func(t *testing.T) {
		roster := testRoster(3)
		sunday := GroupByDate(GenerateSlots(2025, time.October))["2025-10-05"]
		require.Len(t, sunday, 4)

		slots := Assign(sunday, "2025-10-05-07:00", "s2")
		slots = Assign(slots, "2025-10-05-09:30", "s2")
		slots = Assign(slots, "2025-10-05-11:00", "s1")

		summary := Summarize(slots, roster)

		assert.Equal(t, 4, summary.Total)
		assert.Equal(t, 3, summary.Assigned)
		assert.Equal(t, 1, summary.Pending)
		assert.InDelta(t, 75.0, summary.Coverage, 0.001)

		require.Len(t, summary.Loads, 3)
		assert.Equal(t, []SquireLoad{
			{SquireID: "s1", Name: "Escudero 1", Count: 1},
			{SquireID: "s2", Name: "Escudero 2", Count: 2},
			{SquireID: "s3", Name: "Escudero 3", Count: 0},
		}, summary.Loads)

		require.NotNil(t, summary.Busiest)
		assert.Equal(t, "s2", summary.Busiest.SquireID)
	})

	t.Run("con plantilla vacía no hay escudero más cargado", func(t *testing.T) {
		summary := Summarize(GenerateSlots(2025, time.October), nil)

		assert.Equal(t, 21, summary.Total)
		assert.Equal(t, 0, summary.Assigned)
		assert.Nil(t, summary.Busiest)
	})

	t.Run("sin turnos la cobertura es cero", func(t *testing.T) {
		summary := Summarize(nil, testRoster(2))

		assert.Zero(t, summary.Total)
		assert.Zero(t, summary.Coverage)
	})
}
