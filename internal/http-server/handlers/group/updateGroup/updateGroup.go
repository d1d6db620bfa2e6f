package updateGroup

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
	"github.com/go-playground/validator/v10"
)

// Like the create body but without event_id (immutable) and with the
// replacement member list. The supplied members become the group's
// entire member set.
type GroupRequest struct {
	CreatorName        string             `json:"creator_name" validate:"required"`
	CreatorEmail       string             `json:"creator_email" validate:"required,email"`
	GroupName          string             `json:"group_name" validate:"required"`
	AcceptsOthers      *bool              `json:"accepts_others" validate:"required"`
	ProjectDescription *string            `json:"project_description"`
	Members            []models.NewMember `json:"members" validate:"dive"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=GroupUpdater
type GroupUpdater interface {
	UpdateGroup(id int64, group models.Group, members []models.NewMember) (*models.Group, []models.GroupMember, error)
}

func New(log *slog.Logger, store GroupUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.group.updateGroup.New"

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

		var req GroupRequest

		if err = render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(http.StatusBadRequest, "failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		group, members, err := store.UpdateGroup(id, models.Group{
			CreatorName:        req.CreatorName,
			CreatorEmail:       req.CreatorEmail,
			GroupName:          req.GroupName,
			AcceptsOthers:      *req.AcceptsOthers,
			ProjectDescription: req.ProjectDescription,
		}, req.Members)
		if err != nil {
			if errors.Is(err, storage.ErrGroupNotFound) {
				log.Info("group not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(http.StatusNotFound, fmt.Sprintf("group with id %d not found", id)))

				return
			}

			log.Error("failed to update group", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(http.StatusInternalServerError, "failed to update group"))

			return
		}

		log.Info("group updated", slog.Int("members", len(members)))

		render.JSON(w, r, models.GroupWithMembers{
			Group:   *group,
			Members: members,
		})
	}
}
