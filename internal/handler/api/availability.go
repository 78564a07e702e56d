package api

import (
	"net/http"

	reqdto "ranch-booking/internal/handler/dto/request"
	resdto "ranch-booking/internal/handler/dto/response"
	"ranch-booking/internal/handler/httperr"
	"ranch-booking/internal/pkg/dates"
	"ranch-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Availability for a date
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param serviceId query int true "Service ID"
// @Param slotId query int false "Narrow to one riding slot"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /availability [get]
func (h *AvailabilityHandler) Get(c *gin.Context) {
	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err, "Invalid query")
		return
	}
	date, err := dates.Parse(query.Date)
	if err != nil {
		badRequest(c, err, "Invalid date")
		return
	}

	view, err := h.q.ForDate(c.Request.Context(), query.ServiceID, date, query.SlotID)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Remaining places per riding slot
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.SlotAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /availability/slots [get]
func (h *AvailabilityHandler) Slots(c *gin.Context) {
	date, err := dates.Parse(c.Query("date"))
	if err != nil {
		badRequest(c, err, "Invalid date")
		return
	}
	views, err := h.q.SlotsForDate(c.Request.Context(), date)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotAvailabilityViews(views))
}

// @Summary Availability calendar
// @Description Per-date availability over an inclusive range
// @Tags availability
// @Produce json
// @Param serviceId query int true "Service ID"
// @Param from query string true "First date (YYYY-MM-DD)"
// @Param to query string true "Last date (YYYY-MM-DD)"
// @Success 200 {array} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /availability/calendar [get]
func (h *AvailabilityHandler) Calendar(c *gin.Context) {
	var query reqdto.CalendarQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err, "Invalid query")
		return
	}
	from, err := dates.Parse(query.From)
	if err != nil {
		badRequest(c, err, "Invalid date")
		return
	}
	to, err := dates.Parse(query.To)
	if err != nil {
		badRequest(c, err, "Invalid date")
		return
	}

	views, err := h.q.Calendar(c.Request.Context(), query.ServiceID, from, to)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityViews(views))
}
