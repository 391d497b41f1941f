package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"hotel/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "name is required",
	}

	assert.Equal(t, "name is required", f.Error())
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "bad request", err: failure.BadRequest(errors.New("bad body")), code: http.StatusBadRequest, message: "bad body"},
		{name: "bad request from string", err: failure.BadRequestFromString("login name already exists"), code: http.StatusBadRequest, message: "login name already exists"},
		{name: "unauthorized", err: failure.Unauthorized("invalid credentials"), code: http.StatusUnauthorized, message: "invalid credentials"},
		{name: "not found", err: failure.NotFound("room not found"), code: http.StatusNotFound, message: "room not found"},
		{name: "forbidden", err: failure.ForbiddenError, code: http.StatusForbidden, message: "You don't have the required permissions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *failure.Failure

			assert.ErrorAs(t, tt.err, &f)
			assert.Equal(t, tt.code, f.Code)
			assert.Equal(t, tt.message, f.Message)
		})
	}
}

func TestNilErrorsStayNil(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
}

func TestGetCode(t *testing.T) {
	wrapped := fmt.Errorf("loading bill: %w", failure.NotFound("bill not found"))

	assert.Equal(t, http.StatusNotFound, failure.GetCode(wrapped))
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(failure.InvalidCredentials))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("plain")))
}
