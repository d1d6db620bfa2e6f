package getGroupMembers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"eventgroups/internal/lib/api/response"
	"eventgroups/internal/lib/logger/sl"
	"eventgroups/internal/models"
	"eventgroups/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MemberLister
type MemberLister interface {
	ListGroupMembers(groupID int64) ([]models.GroupMember, error)
}

func New(log *slog.Logger, store MemberLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.member.getGroupMembers.New"

		log = log.With(slog.String("op", op))

		groupIDStr := chi.URLParam(r, "id")
		if groupIDStr == "" {
			log.Error("group id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(http.StatusBadRequest, "group id is required"))

			return
		}

		groupID, err := strconv.ParseInt(groupIDStr, 10, 64)
		if err != nil {
			log.Error("invalid group id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(http.StatusBadRequest, "invalid group id format"))

			return
		}

		log = log.With(slog.Int64("group_id", groupID))

		members, err := store.ListGroupMembers(groupID)
		if err != nil {
			if errors.Is(err, storage.ErrGroupNotFound) {
				log.Info("group not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(http.StatusNotFound, fmt.Sprintf("group with id %d not found", groupID)))

				return
			}

			log.Error("failed to get group members", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(http.StatusInternalServerError, "failed to get group members"))

			return
		}

		log.Info("group members listed", slog.Int("count", len(members)))

		render.JSON(w, r, members)
	}
}
