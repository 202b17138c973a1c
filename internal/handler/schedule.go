package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/escuderos-dev/duty-planner/backend/internal/domain"
	"github.com/escuderos-dev/duty-planner/backend/internal/planner"
	"github.com/go-chi/chi/v5"
	amqp "github.com/rabbitmq/amqp091-go"
)

type conflictView struct {
	Reason  domain.ConflictReason `json:"reason"`
	Message string                `json:"message"`
}

type slotView struct {
	domain.DutySlot
	Squire    *domain.Squire `json:"squire,omitempty"`
	Conflicts []conflictView `json:"conflicts"`
}

type scheduleView struct {
	Year       int             `json:"year"`
	Month      int             `json:"month"`
	MonthLabel string          `json:"monthLabel"`
	Roster     []domain.Squire `json:"roster"`
	Slots      []slotView      `json:"slots"`
}

func monthLabel(year int, month time.Month) string {
	return domain.MonthNames[int(month)-1] + " " + strconv.Itoa(year)
}

// buildScheduleView monta la vista del mes activo: turnos en el orden estable
// de presentación y, para cada turno ocupado, su lista de conflictos calculada
// en modo lectura contra su propio escudero. Debe llamarse con el mutex tomado.
func (h *Handler) buildScheduleView() scheduleView {
	view := scheduleView{
		Year:       h.schedule.year,
		Month:      int(h.schedule.month),
		MonthLabel: monthLabel(h.schedule.year, h.schedule.month),
		// La vista se serializa fuera de la sección crítica, así que no debe
		// compartir memoria con la sesión
		Roster: append([]domain.Squire{}, h.schedule.roster...),
		Slots:  make([]slotView, 0, len(h.schedule.slots)),
	}

	sorted := planner.SortSlots(h.schedule.slots)
	for _, slot := range sorted {
		sv := slotView{
			DutySlot:  slot,
			Conflicts: make([]conflictView, 0),
		}

		if slot.Assigned() {
			if s := h.schedule.squireByID(slot.SquireID); s != nil {
				squire := *s
				sv.Squire = &squire
			}
			for _, reason := range planner.FindConflicts(h.schedule.slots, slot, slot.SquireID) {
				sv.Conflicts = append(sv.Conflicts, conflictView{
					Reason:  reason,
					Message: reason.Message(),
				})
			}
		}

		view.Slots = append(view.Slots, sv)
	}

	return view
}

func (h *Handler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Year  int `json:"year" validate:"required,min=1"`
		Month int `json:"month" validate:"required,min=1,max=12"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// La foto de la plantilla se toma en este momento y queda fija para toda
	// la sesión de planificación
	squires, err := h.repository.GetAllSquires()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	roster := make([]domain.Squire, 0, len(squires))
	for _, squire := range squires {
		roster = append(roster, *squire)
	}

	h.schedule.mu.Lock()
	h.schedule.year = req.Year
	h.schedule.month = time.Month(req.Month)
	h.schedule.roster = roster
	// La colección anterior se descarta entera: no hay identidad de turnos
	// entre meses
	h.schedule.slots = planner.GenerateSlots(req.Year, time.Month(req.Month))
	view := h.buildScheduleView()
	h.schedule.mu.Unlock()

	h.successResponse(w, r, "Horario del mes generado con éxito", view)
}

func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	h.schedule.mu.Lock()
	view := h.buildScheduleView()
	h.schedule.mu.Unlock()

	h.successResponse(w, r, "Horario obtenido con éxito", view)
}

func (h *Handler) GetScheduleStats(w http.ResponseWriter, r *http.Request) {
	h.schedule.mu.Lock()
	summary := planner.Summarize(h.schedule.slots, h.schedule.roster)
	h.schedule.mu.Unlock()

	h.successResponse(w, r, "Estadísticas obtenidas con éxito", summary)
}

func (h *Handler) AutoAssignSchedule(w http.ResponseWriter, r *http.Request) {
	h.schedule.mu.Lock()
	h.schedule.slots = planner.AutoAssign(h.schedule.slots, h.schedule.roster)
	view := h.buildScheduleView()
	h.schedule.mu.Unlock()

	h.successResponse(w, r, "Reparto automático completado", view)
}

func (h *Handler) AssignSlot(w http.ResponseWriter, r *http.Request) {
	slotID := chi.URLParam(r, "slotID")

	var req struct {
		SquireID string `json:"squireID" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	h.schedule.mu.Lock()
	defer h.schedule.mu.Unlock()

	target, ok := h.findSlot(slotID)
	if !ok {
		h.errorResponse(w, r, "El turno no existe en el mes activo")
		return
	}

	// Solo se aceptan escuderos de la foto de la plantilla: así la colección
	// nunca contiene referencias que no resuelvan
	if !h.schedule.rosterContains(req.SquireID) {
		h.errorResponse(w, r, "El escudero no pertenece a la plantilla de este mes")
		return
	}

	// Los conflictos se calculan y se devuelven, pero la asignación se aplica
	// igualmente: el estado inválido se señala, no se bloquea
	conflicts := make([]conflictView, 0)
	for _, reason := range planner.FindConflicts(h.schedule.slots, target, req.SquireID) {
		conflicts = append(conflicts, conflictView{
			Reason:  reason,
			Message: reason.Message(),
		})
	}

	h.schedule.slots = planner.Assign(h.schedule.slots, slotID, req.SquireID)

	h.successResponse(w, r, "Turno asignado", struct {
		SlotID    string         `json:"slotID"`
		SquireID  string         `json:"squireID"`
		Conflicts []conflictView `json:"conflicts"`
	}{
		SlotID:    slotID,
		SquireID:  req.SquireID,
		Conflicts: conflicts,
	})
}

func (h *Handler) ClearSlotAssignment(w http.ResponseWriter, r *http.Request) {
	slotID := chi.URLParam(r, "slotID")

	h.schedule.mu.Lock()
	defer h.schedule.mu.Unlock()

	if _, ok := h.findSlot(slotID); !ok {
		h.errorResponse(w, r, "El turno no existe en el mes activo")
		return
	}

	h.schedule.slots = planner.ClearAssignment(h.schedule.slots, slotID)

	h.successResponse(w, r, "Turno liberado", nil)
}

func (h *Handler) SetSlotAttire(w http.ResponseWriter, r *http.Request) {
	slotID := chi.URLParam(r, "slotID")

	var req struct {
		Attire string `json:"attire" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	h.schedule.mu.Lock()
	defer h.schedule.mu.Unlock()

	if _, ok := h.findSlot(slotID); !ok {
		h.errorResponse(w, r, "El turno no existe en el mes activo")
		return
	}

	h.schedule.slots = planner.SetAttire(h.schedule.slots, slotID, req.Attire)

	h.successResponse(w, r, "Vestimenta actualizada", nil)
}

// findSlot busca un turno del mes activo por identificador. Debe llamarse con
// el mutex tomado.
func (h *Handler) findSlot(slotID string) (domain.DutySlot, bool) {
	for _, slot := range h.schedule.slots {
		if slot.ID == slotID {
			return slot, true
		}
	}
	return domain.DutySlot{}, false
}

func (h *Handler) PublishSchedule(w http.ResponseWriter, r *http.Request) {
	// Tomar una foto del estado bajo el mutex y publicar los correos fuera de
	// la sección crítica
	h.schedule.mu.Lock()
	label := monthLabel(h.schedule.year, h.schedule.month)
	roster := append([]domain.Squire{}, h.schedule.roster...)
	sorted := planner.SortSlots(h.schedule.slots)
	h.schedule.mu.Unlock()

	published := 0
	for _, squire := range roster {
		assignments := make([]domain.MonthlyRosterAssignment, 0)
		for _, slot := range sorted {
			if slot.SquireID != squire.ID {
				continue
			}

			dt, _ := domain.GetDutyTime(slot.TimeID)
			date, err := time.Parse("2006-01-02", slot.Date)
			if err != nil {
				h.internalServerError(w, r, err)
				return
			}

			assignments = append(assignments, domain.MonthlyRosterAssignment{
				Date:      slot.Date,
				Weekday:   domain.WeekdayNames[int(date.Weekday())],
				TimeLabel: dt.Label,
				Attire:    slot.Attire,
			})
		}

		// Los escuderos sin turnos este mes no reciben correo
		if len(assignments) == 0 {
			continue
		}

		mailMessage := domain.MailMessage{
			Type: "monthly_roster",
			To:   squire.Email,
			Data: domain.MonthlyRosterMailData{
				SquireName:  squire.Name,
				MonthLabel:  label,
				Assignments: assignments,
			},
		}

		mailData, err := json.Marshal(mailMessage)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)

		if err := h.mailChannel.PublishWithContext(
			ctx,
			"",
			"email_queue",
			true,
			false,
			amqp.Publishing{
				ContentType: "application/json",
				Body:        mailData,
			},
		); err != nil {
			cancel()
			h.internalServerError(w, r, err)
			return
		}
		cancel()

		published++
	}

	h.successResponse(w, r, "Horario publicado con éxito", struct {
		Published int `json:"published"`
	}{
		Published: published,
	})
}
