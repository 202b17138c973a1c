package handler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
)

type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (h *Handler) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &ResponseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)
		slog.Info("petición atendida", "status", rw.StatusCode, "ip", r.RemoteAddr, "method", r.Method, "path", r.URL.Path, "duration", duration)
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				h.internalServerError(w, r, fmt.Errorf("panic: %v", err))
				stackTrace := string(debug.Stack())
				fmt.Print(stackTrace) // con slog la traza queda ilegible
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// squireInfo carga el escudero de la URL y lo deja en el contexto.
func (h *Handler) squireInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		squireID := chi.URLParam(r, "id")

		squire, err := h.repository.GetSquireByID(squireID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "El escudero no existe")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), SquireInfoCtx, squire)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireSchedule rechaza las operaciones sobre el horario mientras no se haya
// generado ningún mes.
func (h *Handler) requireSchedule(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.schedule.mu.Lock()
		generated := h.schedule.year != 0
		h.schedule.mu.Unlock()

		if !generated {
			h.errorResponse(w, r, "Todavía no se ha generado el horario de ningún mes")
			return
		}
		next.ServeHTTP(w, r)
	})
}
