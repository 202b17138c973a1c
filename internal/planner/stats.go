package planner

import (
	"github.com/escuderos-dev/duty-planner/backend/internal/domain"
)

type SquireLoad struct {
	SquireID string `json:"squireID"`
	Name     string `json:"name"`
	Count    int    `json:"count"`
}

type Summary struct {
	Total    int          `json:"total"`
	Assigned int          `json:"assigned"`
	Pending  int          `json:"pending"`
	Coverage float64      `json:"coverage"` // porcentaje entre 0 y 100
	Loads    []SquireLoad `json:"loads"`
	Busiest  *SquireLoad  `json:"busiest"` // nil cuando la plantilla está vacía
}

// Summarize calcula las estadísticas de cobertura del mes: totales, porcentaje
// cubierto y carga por escudero en el orden de la plantilla.
func Summarize(slots []domain.DutySlot, roster []domain.Squire) Summary {
	summary := Summary{
		Total: len(slots),
		Loads: make([]SquireLoad, 0, len(roster)),
	}

	counts := make(map[string]int)
	for _, s := range slots {
		if s.Assigned() {
			summary.Assigned++
			counts[s.SquireID]++
		}
	}
	summary.Pending = summary.Total - summary.Assigned

	if summary.Total > 0 {
		summary.Coverage = float64(summary.Assigned) / float64(summary.Total) * 100
	}

	for _, squire := range roster {
		summary.Loads = append(summary.Loads, SquireLoad{
			SquireID: squire.ID,
			Name:     squire.Name,
			Count:    counts[squire.ID],
		})
	}

	// Con empate gana el primero en el orden de la plantilla
	for i := range summary.Loads {
		if summary.Busiest == nil || summary.Loads[i].Count > summary.Busiest.Count {
			summary.Busiest = &summary.Loads[i]
		}
	}

	return summary
}
