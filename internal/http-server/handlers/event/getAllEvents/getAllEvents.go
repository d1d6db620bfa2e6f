package getAllEvents

import (
	"log/slog"
	"net/http"
	"strconv"

	"eventgroups/internal/lib/api/response"
	"eventgroups/internal/lib/logger/sl"
	"eventgroups/internal/models"

	"github.com/go-chi/render"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventLister
type EventLister interface {
	ListEvents(limit, offset int) ([]models.Event, error)
}

func New(log *slog.Logger, store EventLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getAllEvents.New"

		log = log.With(slog.String("op", op))

		page := defaultPage
		limit := defaultLimit

		if v := r.URL.Query().Get("page"); v != "" {
			p, err := strconv.Atoi(v)
			if err != nil {
				log.Error("invalid page parameter", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(http.StatusBadRequest, "invalid page parameter"))

				return
			}
			if p >= 1 {
				page = p
			}
		}

		if v := r.URL.Query().Get("limit"); v != "" {
			l, err := strconv.Atoi(v)
			if err != nil {
				log.Error("invalid limit parameter", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(http.StatusBadRequest, "invalid limit parameter"))

				return
			}
			if l >= 1 {
				limit = l
			}
		}

		events, err := store.ListEvents(limit, (page-1)*limit)
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(http.StatusInternalServerError, "failed to get events"))

			return
		}

		log.Info("events listed", slog.Int("count", len(events)))

		render.JSON(w, r, events)
	}
}
