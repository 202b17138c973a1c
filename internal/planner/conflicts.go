package planner

import (
	"github.com/escuderos-dev/duty-planner/backend/internal/domain"
)

// FindConflicts evalúa qué reglas violaría asignar squireID al turno target,
// considerando los demás turnos del mismo día que ya tiene ese escudero en la
// colección recibida. Devuelve la lista de violaciones (posiblemente vacía).
//
// La función depende únicamente de la colección que se le pasa, por lo que el
// llamador debe pasar el estado de asignación vigente, no una copia antigua.
// También se usa en modo lectura, con el escudero ya asignado al propio turno,
// para calcular la insignia de conflicto de cada turno ocupado.
func FindConflicts(slots []domain.DutySlot, target domain.DutySlot, squireID string) []domain.ConflictReason {
	// Turnos del mismo día ya asignados al mismo escudero, excluyendo el turno objetivo
	sameDay := make([]domain.DutySlot, 0)
	for _, s := range slots {
		if s.Date == target.Date && s.SquireID == squireID && s.ID != target.ID {
			sameDay = append(sameDay, s)
		}
	}

	var conflicts []domain.ConflictReason

	if len(sameDay) >= 2 {
		conflicts = append(conflicts, domain.ConflictMaxTwoPerDay)
	}

	hasMorning := periodOf(target.TimeID) == domain.PeriodMorning
	hasNight := periodOf(target.TimeID) == domain.PeriodNight
	for _, s := range sameDay {
		switch periodOf(s.TimeID) {
		case domain.PeriodMorning:
			hasMorning = true
		case domain.PeriodNight:
			hasNight = true
		}
	}

	if hasMorning && hasNight {
		conflicts = append(conflicts, domain.ConflictNoCrossPeriod)
	}

	return conflicts
}
