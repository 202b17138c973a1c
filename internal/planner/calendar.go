package planner

import (
	"time"

	"github.com/escuderos-dev/duty-planner/backend/internal/domain"
)

// Horarios que se emiten según el día de la semana. Esta es la cadencia
// semanal fija de la congregación: cuatro servicios los domingos (tres de
// mañana y uno de noche) y un servicio de noche los miércoles.
var (
	sundayTimeIDs    = []string{"07:00", "09:30", "11:00", "18:00"}
	wednesdayTimeIDs = []string{"18:30"}
)

// GenerateSlots expande un (año, mes) en todos los turnos de ese mes, sin
// asignar y con la vestimenta por defecto de cada horario. Es una función pura
// y determinista de sus dos entradas; el identificador de cada turno es
// fecha ISO + "-" + id del horario, único dentro del mes.
//
// Se asume un (año, mes) válido del calendario civil. El comportamiento con
// valores fuera de rango no está especificado.
func GenerateSlots(year int, month time.Month) []domain.DutySlot {
	slots := make([]domain.DutySlot, 0)

	for date := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC); date.Month() == month; date = date.AddDate(0, 0, 1) {
		var timeIDs []string

		switch date.Weekday() {
		case time.Sunday:
			// Domingos: cuatro servicios
			timeIDs = sundayTimeIDs
		case time.Wednesday:
			// Miércoles: servicio de la noche
			timeIDs = wednesdayTimeIDs
		}

		iso := date.Format("2006-01-02")
		for _, id := range timeIDs {
			dt, _ := domain.GetDutyTime(id)
			slots = append(slots, domain.DutySlot{
				ID:     iso + "-" + dt.ID,
				Date:   iso,
				TimeID: dt.ID,
				Attire: dt.DefaultAttire,
			})
		}
	}

	return slots
}

func periodOf(timeID string) domain.Period {
	dt, _ := domain.GetDutyTime(timeID)
	return dt.Period
}
