package createMember

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

type MemberRequest struct {
	GroupID *int64  `json:"group_id" validate:"required"`
	Name    string  `json:"name" validate:"required"`
	Email   *string `json:"email,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MemberCreator
type MemberCreator interface {
	CreateMember(groupID int64, name string, email *string) (*models.GroupMember, error)
}

func New(log *slog.Logger, store MemberCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.member.createMember.New"

		log = log.With(slog.String("op", op))

		var req MemberRequest

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

		groupID := *req.GroupID
		log = log.With(slog.Int64("group_id", groupID))

		member, err := store.CreateMember(groupID, req.Name, req.Email)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrGroupNotFound):
				log.Info("group not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(http.StatusNotFound, fmt.Sprintf("group with id %d not found", groupID)))
			case errors.Is(err, storage.ErrGroupClosed):
				log.Info("group does not accept new members")
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(http.StatusBadRequest, fmt.Sprintf("group with id %d does not accept new members", groupID)))
			case errors.Is(err, storage.ErrGroupFull):
				log.Info("group size limit reached")
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(http.StatusBadRequest, "group size limit has been reached"))
			default:
				log.Error("failed to create member", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error(http.StatusInternalServerError, "failed to create member"))
			}

			return
		}

		log.Info("member created", slog.Int64("id", member.ID))

		render.JSON(w, r, member)
	}
}
