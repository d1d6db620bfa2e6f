package getEvent

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"eventgroups/internal/lib/api/response"
	"eventgroups/internal/lib/logger/sl"
	"eventgroups/internal/models"
	"eventgroups/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	GetEventWithGroups(id string) (*models.Event, []models.Group, error)
}

func New(log *slog.Logger, store EventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEvent.New"

		log = log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(http.StatusBadRequest, "event id is required"))

			return
		}

		log = log.With(slog.String("event_id", id))

		event, groups, err := store.GetEventWithGroups(id)
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				log.Info("event not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(http.StatusNotFound, fmt.Sprintf("event with id %s not found", id)))

				return
			}

			log.Error("failed to get event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(http.StatusInternalServerError, "failed to get event"))

			return
		}

		log.Info("event received", slog.Int("groups", len(groups)))

		render.JSON(w, r, models.EventWithGroups{
			Event:  *event,
			Groups: groups,
		})
	}
}
