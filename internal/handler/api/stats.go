package api

import (
	"net/http"

	resdto "ranch-booking/internal/handler/dto/response"
	"ranch-booking/internal/handler/httperr"
	"ranch-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	q queries.StatsQueries
}

func NewStatsHandler(q queries.StatsQueries) *StatsHandler {
	return &StatsHandler{q: q}
}

// @Summary Dashboard statistics
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardResponse
// @Failure 401 {object} httperr.Response
// @Router /stats [get]
func (h *StatsHandler) Dashboard(c *gin.Context) {
	view, err := h.q.Dashboard(c.Request.Context())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDashboardView(view))
}
