package deleteGroup

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"eventgroups/internal/lib/api/response"
	"eventgroups/internal/lib/logger/sl"
	"eventgroups/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=GroupDeleter
type GroupDeleter interface {
	DeleteGroup(id int64) error
}

func New(log *slog.Logger, store GroupDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.group.deleteGroup.New"

		log = log.With(slog.String("op", op))

		idStr := chi.URLParam(r, "id")
		if idStr == "" {
			log.Error("group id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(http.StatusBadRequest, "group id is required"))

			return
		}

		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			log.Error("invalid group id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(http.StatusBadRequest, "invalid group id format"))

			return
		}

		log = log.With(slog.Int64("group_id", id))

		if err = store.DeleteGroup(id); err != nil {
			if errors.Is(err, storage.ErrGroupNotFound) {
				log.Info("group not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(http.StatusNotFound, fmt.Sprintf("group with id %d not found", id)))

				return
			}

			log.Error("failed to delete group", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(http.StatusInternalServerError, "failed to delete group"))

			return
		}

		log.Info("group deleted with its members")

		render.NoContent(w, r)
	}
}
