package planner

import (
	"testing"
	"time"

	"github.com/escuderos-dev/duty-planner/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlots(t *testing.T) {
	t.Run("solo emite turnos los domingos y los miércoles", func(t *testing.T) {
		for year := 2024; year <= 2026; year++ {
			for month := time.January; month <= time.December; month++ {
				slots := GenerateSlots(year, month)

				seen := make(map[string]bool)
				for _, slot := range slots {
					require.False(t, seen[slot.ID], "identificador duplicado: %s", slot.ID)
					seen[slot.ID] = true
				}

				for date, group := range GroupByDate(slots) {
					parsed, err := time.Parse("2006-01-02", date)
					require.NoError(t, err)

					switch parsed.Weekday() {
					case time.Sunday:
						require.Len(t, group, 4, "un domingo debe tener cuatro servicios")
						periods := make([]domain.Period, 0, 4)
						for _, slot := range group {
							dt, ok := domain.GetDutyTime(slot.TimeID)
							require.True(t, ok)
							periods = append(periods, dt.Period)
						}
						assert.Equal(t, []domain.Period{
							domain.PeriodMorning,
							domain.PeriodMorning,
							domain.PeriodMorning,
							domain.PeriodNight,
						}, periods)
					case time.Wednesday:
						require.Len(t, group, 1, "un miércoles debe tener un único servicio")
						assert.Equal(t, "18:30", group[0].TimeID)
					default:
						t.Fatalf("hay turnos un %s (%s)", parsed.Weekday(), date)
					}
				}
			}
		}
	})

	t.Run("octubre de 2025 tiene el número exacto de turnos", func(t *testing.T) {
		sundays, wednesdays := 0, 0
		for d := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC); d.Month() == time.October; d = d.AddDate(0, 0, 1) {
			switch d.Weekday() {
			case time.Sunday:
				sundays++
			case time.Wednesday:
				wednesdays++
			}
		}

		slots := GenerateSlots(2025, time.October)
		assert.Len(t, slots, sundays*4+wednesdays)

		for _, slot := range slots {
			assert.Equal(t, slot.Date+"-"+slot.TimeID, slot.ID)
		}
	})

	t.Run("es idempotente y determinista", func(t *testing.T) {
		first := GenerateSlots(2025, time.October)
		second := GenerateSlots(2025, time.October)
		assert.Equal(t, first, second)
	})

	t.Run("los turnos salen sin asignar y con la vestimenta del catálogo", func(t *testing.T) {
		for _, slot := range GenerateSlots(2025, time.February) {
			dt, ok := domain.GetDutyTime(slot.TimeID)
			require.True(t, ok)
			assert.False(t, slot.Assigned())
			assert.Equal(t, dt.DefaultAttire, slot.Attire)
		}
	})

	t.Run("cubre el mes entero", func(t *testing.T) {
		// Febrero de 2026 empieza en domingo y tiene 28 días: 4 domingos y 4 miércoles
		slots := GenerateSlots(2026, time.February)
		assert.Len(t, slots, 4*4+4)
		assert.Equal(t, "2026-02-01", slots[0].Date)
		assert.Equal(t, "2026-02-25", slots[len(slots)-1].Date)
	})
}
