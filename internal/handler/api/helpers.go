package api

import (
	"net/http"
	"strconv"

	"ranch-booking/internal/handler/httperr"
	"ranch-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var ErrInvalidID = errs.New("invalid id")

// badRequest reports a transport-level decoding failure.
func badRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrMalformedInput), msg, err.Error())
}

func int64Param(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, ErrInvalidID, "Invalid id")
		return 0, false
	}
	return id, true
}

func optionalBool(s string) *bool {
	if s == "" {
		return nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil
	}
	return &b
}
