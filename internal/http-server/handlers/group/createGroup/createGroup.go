package createGroup

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"eventgroups/internal/lib/api/response"
	"eventgroups/internal/lib/logger/sl"
	"eventgroups/internal/models"
	"eventgroups/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type GroupRequest struct {
	EventID            string             `json:"event_id" validate:"required"`
	CreatorName        string             `json:"creator_name" validate:"required"`
	CreatorEmail       string             `json:"creator_email" validate:"required,email"`
	GroupName          string             `json:"group_name" validate:"required"`
	AcceptsOthers      *bool              `json:"accepts_others" validate:"required"`
	ProjectDescription *string            `json:"project_description"`
	Members            []models.NewMember `json:"members" validate:"dive"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=GroupCreator
type GroupCreator interface {
	CreateGroup(group models.Group, members []models.NewMember) (*models.Group, error)
}

func New(log *slog.Logger, store GroupCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.group.createGroup.New"

		log = log.With(slog.String("op", op))

		var req GroupRequest

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

		group, err := store.CreateGroup(models.Group{
			EventID:            req.EventID,
			CreatorName:        req.CreatorName,
			CreatorEmail:       req.CreatorEmail,
			GroupName:          req.GroupName,
			AcceptsOthers:      *req.AcceptsOthers,
			ProjectDescription: req.ProjectDescription,
		}, req.Members)
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				log.Info("event not found", slog.String("event_id", req.EventID))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(http.StatusNotFound, fmt.Sprintf("event with id %s not found", req.EventID)))

				return
			}

			log.Error("failed to create group", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(http.StatusInternalServerError, "failed to create group"))

			return
		}

		log.Info("group created", slog.Int64("id", group.ID), slog.Int("members", len(req.Members)))

		render.JSON(w, r, group)
	}
}
