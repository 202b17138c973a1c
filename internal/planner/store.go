package planner

import (
	"sort"

	"github.com/escuderos-dev/duty-planner/backend/internal/domain"
)

// Transiciones estado-viejo-entra / estado-nuevo-sale sobre la colección de
// turnos del mes activo. Cada una devuelve una colección nueva en la que
// exactamente un turno cambia un campo y el resto se conserva igual, lo que
// permite a la capa de presentación detectar cambios por simple igualdad.
// Ninguna valida nada: la validación es siempre una llamada aparte a
// FindConflicts, porque los estados inválidos se permiten y se señalan.

// Assign asigna un escudero al turno indicado.
func Assign(slots []domain.DutySlot, slotID string, squireID string) []domain.DutySlot {
	return replaceSlot(slots, slotID, func(s domain.DutySlot) domain.DutySlot {
		s.SquireID = squireID
		return s
	})
}

// ClearAssignment deja el turno indicado sin escudero.
func ClearAssignment(slots []domain.DutySlot, slotID string) []domain.DutySlot {
	return replaceSlot(slots, slotID, func(s domain.DutySlot) domain.DutySlot {
		s.SquireID = ""
		return s
	})
}

// SetAttire cambia la vestimenta del turno indicado.
func SetAttire(slots []domain.DutySlot, slotID string, attire string) []domain.DutySlot {
	return replaceSlot(slots, slotID, func(s domain.DutySlot) domain.DutySlot {
		s.Attire = attire
		return s
	})
}

func replaceSlot(slots []domain.DutySlot, slotID string, apply func(domain.DutySlot) domain.DutySlot) []domain.DutySlot {
	result := make([]domain.DutySlot, len(slots))
	for i, s := range slots {
		if s.ID == slotID {
			s = apply(s)
		}
		result[i] = s
	}
	return result
}

// ClearSquire quita a un escudero de todos los turnos que tenga asignados.
// Debe ejecutarse en la misma transacción en la que el escudero sale de la
// plantilla, para que en la colección nunca queden referencias colgantes.
func ClearSquire(slots []domain.DutySlot, squireID string) []domain.DutySlot {
	result := make([]domain.DutySlot, len(slots))
	for i, s := range slots {
		if s.SquireID == squireID {
			s.SquireID = ""
		}
		result[i] = s
	}
	return result
}

// SortSlots devuelve la colección ordenada por fecha y, dentro de cada fecha,
// por el orden del catálogo de horarios. Es el orden estable de presentación.
func SortSlots(slots []domain.DutySlot) []domain.DutySlot {
	result := make([]domain.DutySlot, len(slots))
	copy(result, slots)

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		return domain.DutyTimeIndex(result[i].TimeID) < domain.DutyTimeIndex(result[j].TimeID)
	})

	return result
}

// GroupByDate agrupa los turnos por fecha; cada grupo queda en el orden del
// catálogo. Es una vista derivada para evaluación y presentación, no se
// persiste por separado.
func GroupByDate(slots []domain.DutySlot) map[string][]domain.DutySlot {
	groups := make(map[string][]domain.DutySlot)
	for _, s := range slots {
		groups[s.Date] = append(groups[s.Date], s)
	}

	for date, group := range groups {
		sort.SliceStable(group, func(i, j int) bool {
			return domain.DutyTimeIndex(group[i].TimeID) < domain.DutyTimeIndex(group[j].TimeID)
		})
		groups[date] = group
	}

	return groups
}
