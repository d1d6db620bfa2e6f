package deleteMember

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MemberDeleter
type MemberDeleter interface {
	DeleteMember(id int64) error
}

func New(log *slog.Logger, store MemberDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.member.deleteMember.New"

		log = log.With(slog.String("op", op))

		idStr := chi.URLParam(r, "id")
		if idStr == "" {
			log.Error("member id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(http.StatusBadRequest, "member id is required"))

			return
		}

		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			log.Error("invalid member id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(http.StatusBadRequest, "invalid member id format"))

			return
		}

		log = log.With(slog.Int64("member_id", id))

		if err = store.DeleteMember(id); err != nil {
			if errors.Is(err, storage.ErrMemberNotFound) {
				log.Info("member not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(http.StatusNotFound, fmt.Sprintf("member with id %d not found", id)))

				return
			}

			log.Error("failed to delete member", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(http.StatusInternalServerError, "failed to delete member"))

			return
		}

		log.Info("member deleted")

		render.NoContent(w, r)
	}
}
