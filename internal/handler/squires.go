package handler

import (
	"errors"
	"net/http"

	"github.com/escuderos-dev/duty-planner/backend/internal/domain"
	"github.com/escuderos-dev/duty-planner/backend/internal/planner"
	"github.com/escuderos-dev/duty-planner/backend/internal/utils"
	"github.com/jackc/pgx/v5/pgconn"
)

func (h *Handler) CreateSquire(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name" validate:"required"`
		Email string `json:"email" validate:"required,email"`
		Color string `json:"color"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	color := req.Color
	if color == "" {
		color = utils.RandomSquireColor()
	}

	squire := &domain.Squire{
		ID:    utils.GenerateRandomID(4, 4),
		Name:  req.Name,
		Email: req.Email,
		Color: color,
	}

	if err := h.repository.CreateSquire(squire); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "squires_email_key":
				h.errorResponse(w, r, "Ya existe un escudero con ese correo")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// El alta no toca la sesión activa: la foto de la plantilla del mes ya
	// generado se mantiene fija hasta que se genere otro mes.
	h.successResponse(w, r, "Escudero creado con éxito", squire)
}

func (h *Handler) GetAllSquires(w http.ResponseWriter, r *http.Request) {
	squires, err := h.repository.GetAllSquires()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Plantilla obtenida con éxito", squires)
}

func (h *Handler) GetSquire(w http.ResponseWriter, r *http.Request) {
	squire := r.Context().Value(SquireInfoCtx).(*domain.Squire)

	h.successResponse(w, r, "Escudero obtenido con éxito", squire)
}

func (h *Handler) UpdateSquire(w http.ResponseWriter, r *http.Request) {
	squire := r.Context().Value(SquireInfoCtx).(*domain.Squire)

	var req struct {
		Name  *string `json:"name"`
		Email *string `json:"email" validate:"omitempty,email"`
		Color *string `json:"color"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Name != nil {
		squire.Name = *req.Name
	}
	if req.Email != nil {
		squire.Email = *req.Email
	}
	if req.Color != nil {
		squire.Color = *req.Color
	}

	if err := h.repository.UpdateSquire(squire); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "squires_email_key":
				h.errorResponse(w, r, "Ya existe un escudero con ese correo")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// Si el escudero está en la foto del mes activo, reflejar los datos nuevos
	h.schedule.mu.Lock()
	if s := h.schedule.squireByID(squire.ID); s != nil {
		s.Name = squire.Name
		s.Email = squire.Email
		s.Color = squire.Color
	}
	h.schedule.mu.Unlock()

	h.successResponse(w, r, "Escudero actualizado con éxito", squire)
}

func (h *Handler) DeleteSquire(w http.ResponseWriter, r *http.Request) {
	squire := r.Context().Value(SquireInfoCtx).(*domain.Squire)

	if err := h.repository.DeleteSquire(squire.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// La baja y la limpieza de sus turnos van en la misma sección crítica:
	// la colección no debe quedar nunca con referencias a escuderos que ya no
	// están en la plantilla.
	h.schedule.mu.Lock()
	for i := range h.schedule.roster {
		if h.schedule.roster[i].ID == squire.ID {
			h.schedule.roster = append(h.schedule.roster[:i], h.schedule.roster[i+1:]...)
			break
		}
	}
	h.schedule.slots = planner.ClearSquire(h.schedule.slots, squire.ID)
	h.schedule.mu.Unlock()

	h.successResponse(w, r, "Escudero eliminado con éxito", nil)
}
