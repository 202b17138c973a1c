package handler

import (
	"sync"
	"time"

	"github.com/escuderos-dev/duty-planner/backend/internal/domain"
)

// workingSchedule es la sesión de planificación en memoria del proceso: el mes
// activo, la foto de la plantilla tomada al generarlo y la colección de turnos
// vigente. No se persiste; al generar otro mes se descarta entera.
//
// El núcleo de planificación es puro y no sincroniza nada, así que todos los
// accesos a esta estructura deben hacerse con el mutex tomado. La foto de la
// plantilla queda fija durante la sesión, con una única excepción: al dar de
// baja a un escudero se le retira de la foto y de todos sus turnos dentro de
// la misma sección crítica, de modo que nunca haya referencias colgantes.
type workingSchedule struct {
	mu     sync.Mutex
	year   int // 0 mientras no se haya generado ningún mes
	month  time.Month
	roster []domain.Squire
	slots  []domain.DutySlot
}

// rosterContains indica si el escudero pertenece a la foto de plantilla del
// mes activo. Debe llamarse con el mutex tomado.
func (ws *workingSchedule) rosterContains(squireID string) bool {
	for _, squire := range ws.roster {
		if squire.ID == squireID {
			return true
		}
	}
	return false
}

// squireByID busca un escudero en la foto de plantilla. Debe llamarse con el
// mutex tomado.
func (ws *workingSchedule) squireByID(squireID string) *domain.Squire {
	for i := range ws.roster {
		if ws.roster[i].ID == squireID {
			return &ws.roster[i]
		}
	}
	return nil
}
