package planner

import (
	"sort"

	"github.com/escuderos-dev/duty-planner/backend/internal/domain"
)

// Límite de turnos por día para un mismo escudero.
const maxPerDay = 2

// Registro acumulado de un escudero durante un día de la asignación automática.
type dayTally struct {
	count      int
	hasMorning bool
	hasNight   bool
}

// AutoAssign reparte todos los turnos del mes entre la plantilla recibida y
// devuelve una colección nueva; las asignaciones previas se descartan y se
// recalculan desde cero. Nunca modifica sus entradas. Con una plantilla vacía
// devuelve una copia de la entrada tal cual.
//
// El reparto es una rotación equitativa con rechazo: se recorren las fechas en
// orden ascendente y, dentro de cada fecha, los turnos en el orden del
// catálogo. Un único cursor rotatorio sobre la plantilla se comparte durante
// todo el mes (no se reinicia por día) para repartir la carga entre todos los
// escuderos en lugar de favorecer siempre a los primeros. Para cada turno se
// prueban candidatos desde el cursor dando como mucho una vuelta completa; se
// acepta al primero que no supere los 2 turnos del día ni combine mañana y
// noche. Al aceptar, el cursor avanza hasta después del aceptado; si nadie
// cumple en una vuelta completa, el turno queda sin asignar y el cursor no se
// mueve. Es un reparto voraz de mejor esfuerzo, no un solucionador óptimo:
// el orden exacto de exploración se conserva para que el resultado sea
// reproducible y auditable.
func AutoAssign(slots []domain.DutySlot, roster []domain.Squire) []domain.DutySlot {
	if len(roster) == 0 {
		result := make([]domain.DutySlot, len(slots))
		copy(result, slots)
		return result
	}

	// Copia fresca con todas las asignaciones descartadas
	result := make([]domain.DutySlot, len(slots))
	for i, s := range slots {
		s.SquireID = ""
		result[i] = s
	}

	// Agrupar por fecha; dentro de cada fecha, el orden es el del catálogo
	byDate := make(map[string][]int)
	for i, s := range result {
		byDate[s.Date] = append(byDate[s.Date], i)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	// Las fechas ISO ordenadas como texto quedan en orden cronológico
	sort.Strings(dates)

	for _, date := range dates {
		idxs := byDate[date]
		sort.Slice(idxs, func(i, j int) bool {
			return domain.DutyTimeIndex(result[idxs[i]].TimeID) < domain.DutyTimeIndex(result[idxs[j]].TimeID)
		})
	}

	cursor := 0

	for _, date := range dates {
		// El registro por escudero se reinicia al empezar cada día
		tally := make(map[string]dayTally)

		for _, idx := range byDate[date] {
			period := periodOf(result[idx].TimeID)

			for i := 0; i < len(roster); i++ {
				candidate := roster[(cursor+i)%len(roster)]
				current := tally[candidate.ID]

				nextCount := current.count + 1
				nextHasMorning := current.hasMorning || period == domain.PeriodMorning
				nextHasNight := current.hasNight || period == domain.PeriodNight

				if nextCount > maxPerDay {
					continue
				}
				if nextHasMorning && nextHasNight {
					continue
				}

				tally[candidate.ID] = dayTally{
					count:      nextCount,
					hasMorning: nextHasMorning,
					hasNight:   nextHasNight,
				}
				result[idx].SquireID = candidate.ID
				cursor = (cursor + i + 1) % len(roster)
				break
			}
		}
	}

	return result
}
