package handler

import (
	"github.com/escuderos-dev/duty-planner/backend/internal/config"
	"github.com/escuderos-dev/duty-planner/backend/internal/repository"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	es_translations "github.com/go-playground/validator/v10/translations/es"
	amqp "github.com/rabbitmq/amqp091-go"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel

	schedule *workingSchedule

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	es := es.New()
	uni := ut.New(es, es)
	trans, _ := uni.GetTranslator("es")
	if err := es_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,

		schedule: &workingSchedule{},

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// Catálogos fijos
	h.Mux.Get("/duty-times", h.GetDutyTimes)
	h.Mux.Get("/uniforms", h.GetUniformOptions)

	// Plantilla de escuderos
	h.Mux.Route("/squires", func(r chi.Router) {
		r.Post("/", h.CreateSquire)
		r.Get("/", h.GetAllSquires)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.squireInfo)
			r.Get("/", h.GetSquire)
			r.Patch("/", h.UpdateSquire)
			r.Delete("/", h.DeleteSquire)
		})
	})

	// Horario del mes activo
	h.Mux.Route("/schedule", func(r chi.Router) {
		r.Post("/generate", h.GenerateSchedule)

		// El resto de operaciones necesita un mes ya generado
		r.Group(func(r chi.Router) {
			r.Use(h.requireSchedule)
			r.Get("/", h.GetSchedule)
			r.Get("/stats", h.GetScheduleStats)
			r.Post("/auto-assign", h.AutoAssignSchedule)
			r.Post("/publish", h.PublishSchedule)
			r.Route("/slots/{slotID}", func(r chi.Router) {
				r.Patch("/assignment", h.AssignSlot)
				r.Delete("/assignment", h.ClearSlotAssignment)
				r.Patch("/attire", h.SetSlotAttire)
			})
		})
	})
}
