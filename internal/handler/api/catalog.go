package api

import (
	"net/http"

	reqdto "ranch-booking/internal/handler/dto/request"
	resdto "ranch-booking/internal/handler/dto/response"
	"ranch-booking/internal/handler/httperr"
	"ranch-booking/internal/usecase/commands"
	"ranch-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	cmds commands.ServiceCommands
	q    queries.ServiceQueries
}

func NewServiceHandler(cmds commands.ServiceCommands, q queries.ServiceQueries) *ServiceHandler {
	return &ServiceHandler{cmds: cmds, q: q}
}

// @Summary List services
// @Tags services
// @Produce json
// @Param active query bool false "Filter by active flag"
// @Success 200 {array} resdto.ServiceResponse
// @Router /services [get]
func (h *ServiceHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context(), optionalBool(c.Query("active")))
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceViews(views))
}

// @Summary Get service
// @Tags services
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 404 {object} httperr.Response
// @Router /services/{id} [get]
func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceView(view))
}

// @Summary Create service
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateServiceRequest true "Service"
// @Success 201 {object} resdto.ServiceResponse
// @Failure 400 {object} httperr.Response
// @Router /services [post]
func (h *ServiceHandler) Create(c *gin.Context) {
	var req reqdto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}
	svc, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromService(svc))
}

// @Summary Update service
// @Description Partial update; omitted fields keep their value
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Param request body reqdto.UpdateServiceRequest true "Changes"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /services/{id} [put]
func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}
	svc, err := h.cmds.Update(c.Request.Context(), id, req.ToChanges())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromService(svc))
}

// @Summary Delete service
// @Tags services
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /services/{id} [delete]
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type SlotHandler struct {
	cmds commands.SlotCommands
	q    queries.SlotQueries
}

func NewSlotHandler(cmds commands.SlotCommands, q queries.SlotQueries) *SlotHandler {
	return &SlotHandler{cmds: cmds, q: q}
}

// @Summary List riding slots
// @Tags riding-slots
// @Produce json
// @Param date query string false "Single date (YYYY-MM-DD)"
// @Param from query string false "First date"
// @Param to query string false "Last date"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Router /riding-slots [get]
func (h *SlotHandler) List(c *gin.Context) {
	var query reqdto.ListSlotsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err, "Invalid query")
		return
	}
	from, to, err := query.Range()
	if err != nil {
		badRequest(c, err, "Invalid date")
		return
	}
	views, err := h.q.List(c.Request.Context(), from, to)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotViews(views))
}

// @Summary Create riding slot
// @Tags riding-slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSlotRequest true "Slot"
// @Success 201 {object} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /riding-slots [post]
func (h *SlotHandler) Create(c *gin.Context) {
	var req reqdto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}
	date, tod, capacity, err := req.Parse()
	if err != nil {
		badRequest(c, err, "Invalid date")
		return
	}
	slot, err := h.cmds.Create(c.Request.Context(), date, tod, capacity)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSlot(slot))
}

// @Summary Generate riding slots
// @Description Creates every (date, time) pair in the range; existing pairs are skipped
// @Tags riding-slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.GenerateSlotsRequest true "Range and times"
// @Success 201 {object} resdto.GenerateSlotsResponse
// @Failure 400 {object} httperr.Response
// @Router /riding-slots/generate [post]
func (h *SlotHandler) Generate(c *gin.Context) {
	var req reqdto.GenerateSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}
	in, err := req.ToInput()
	if err != nil {
		badRequest(c, err, "Invalid date")
		return
	}
	result, err := h.cmds.Generate(c.Request.Context(), in)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromGenerateResult(result))
}

// @Summary Delete riding slot
// @Description Reservations on the slot are kept
// @Tags riding-slots
// @Security BearerAuth
// @Param id path int true "Slot ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /riding-slots/{id} [delete]
func (h *SlotHandler) Delete(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
