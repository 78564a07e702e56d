package httperr

import (
	"errors"
	"net/http"

	"ranch-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

var statusByKind = []struct {
	kind   error
	status int
	msg    string
}{
	{errs.ErrNotFound, http.StatusNotFound, "Not found"},
	{errs.ErrCapacityExceeded, http.StatusConflict, "Not enough availability for this request"},
	{errs.ErrInvalidTransition, http.StatusConflict, "Status transition not allowed"},
	{errs.ErrConflict, http.StatusConflict, "Conflict"},
	{errs.ErrMalformedInput, http.StatusBadRequest, "Invalid request"},
	{errs.ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},
}

// Classify returns the status and public message for a usecase error.
// Unmarked errors are internal.
func Classify(err error) (int, string) {
	for _, s := range statusByKind {
		if errs.Is(err, s.kind) {
			return s.status, s.msg
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

// AbortWithUsecaseError maps err through Classify. Client errors carry the
// underlying message as detail; internal errors do not leak it.
func AbortWithUsecaseError(c *gin.Context, err error) {
	status, msg := Classify(err)
	var detail any
	if status < http.StatusInternalServerError {
		detail = rootMessage(err)
	}
	AbortWithError(c, status, err, msg, detail)
}

func rootMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
