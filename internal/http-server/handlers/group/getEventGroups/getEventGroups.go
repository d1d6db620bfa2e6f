package getEventGroups

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGroupsLister
type EventGroupsLister interface {
	ListEventGroups(eventID string) ([]models.GroupWithMembers, error)
}

func New(log *slog.Logger, store EventGroupsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.group.getEventGroups.New"

		log = log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(http.StatusBadRequest, "event id is required"))

			return
		}

		log = log.With(slog.String("event_id", eventID))

		groups, err := store.ListEventGroups(eventID)
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				log.Info("event not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(http.StatusNotFound, fmt.Sprintf("event with id %s not found", eventID)))

				return
			}

			log.Error("failed to get event groups", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(http.StatusInternalServerError, "failed to get event groups"))

			return
		}

		log.Info("event groups listed", slog.Int("count", len(groups)))

		render.JSON(w, r, groups)
	}
}
