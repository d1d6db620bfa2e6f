package getAllGroups

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=GroupLister
type GroupLister interface {
	ListGroups(limit, offset int) ([]models.Group, error)
}

func New(log *slog.Logger, store GroupLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.group.getAllGroups.New"

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

		groups, err := store.ListGroups(limit, (page-1)*limit)
		if err != nil {
			log.Error("failed to get groups", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(http.StatusInternalServerError, "failed to get groups"))

			return
		}

		log.Info("groups listed", slog.Int("count", len(groups)))

		render.JSON(w, r, groups)
	}
}
