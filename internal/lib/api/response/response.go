package response

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Response is the error envelope every failed request renders:
// {"error":{"status":404,"message":"..."}}. Successful requests render
// the entity itself, so there is no OK variant.
type Response struct {
	Error Detail `json:"error"`
}

type Detail struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func Error(status int, msg string) Response {
	return Response{
		Error: Detail{
			Status:  status,
			Message: msg,
		},
	}
}

func ValidationError(errs validator.ValidationErrors) Response {
	var errMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "min":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s must be at least %s", err.Field(), err.Param()))
		case "email":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not a valid email", err.Field()))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}

	return Error(http.StatusUnprocessableEntity, strings.Join(errMsgs, ", "))
}
