package updateEvent

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"eventgroups/internal/lib/api/response"
	"eventgroups/internal/lib/logger/sl"
	"eventgroups/internal/models"
	"eventgroups/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// Same body shape as create; every field is replaced.
type EventRequest struct {
	Name           string    `json:"name" validate:"required"`
	DateTime       time.Time `json:"date_time" validate:"required"`
	GroupSizeLimit *int64    `json:"group_size_limit" validate:"required,min=0"`
	Location       string    `json:"location" validate:"required"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventUpdater
type EventUpdater interface {
	UpdateEvent(id, name string, dateTime time.Time, groupSizeLimit int64, location string) (*models.Event, error)
}

func New(log *slog.Logger, store EventUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.updateEvent.New"

		log = log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(http.StatusBadRequest, "event id is required"))

			return
		}

		log = log.With(slog.String("event_id", id))

		var req EventRequest

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(http.StatusBadRequest, "failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		event, err := store.UpdateEvent(id, req.Name, req.DateTime, *req.GroupSizeLimit, req.Location)
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				log.Info("event not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(http.StatusNotFound, fmt.Sprintf("event with id %s not found", id)))

				return
			}

			log.Error("failed to update event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(http.StatusInternalServerError, "failed to update event"))

			return
		}

		log.Info("event updated")

		render.JSON(w, r, event)
	}
}
