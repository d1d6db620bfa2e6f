package createEvent

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"eventgroups/internal/lib/api/response"
	"eventgroups/internal/lib/logger/sl"
	"eventgroups/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type EventRequest struct {
	Name           string    `json:"name" validate:"required"`
	DateTime       time.Time `json:"date_time" validate:"required"`
	GroupSizeLimit *int64    `json:"group_size_limit" validate:"required,min=0"`
	Location       string    `json:"location" validate:"required"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(name string, dateTime time.Time, groupSizeLimit int64, location string) (*models.Event, error)
}

func New(log *slog.Logger, store EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log = log.With(slog.String("op", op))

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

		event, err := store.CreateEvent(req.Name, req.DateTime, *req.GroupSizeLimit, req.Location)
		if err != nil {
			log.Error("failed to create event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(http.StatusInternalServerError, "failed to create event"))

			return
		}

		log.Info("event created", slog.String("id", event.ID))

		render.JSON(w, r, event)
	}
}
