package handler

import (
	"net/http"

	"github.com/escuderos-dev/duty-planner/backend/internal/domain"
)

func (h *Handler) GetDutyTimes(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "Catálogo de horarios obtenido con éxito", domain.DutyTimes)
}

func (h *Handler) GetUniformOptions(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "Opciones de vestimenta obtenidas con éxito", domain.UniformOptions)
}
