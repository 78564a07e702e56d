//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"ranch-booking/internal/handler/api"
	resdto "ranch-booking/internal/handler/dto/response"
	"ranch-booking/internal/pkg/errs"
	"ranch-booking/internal/pkg/ptr"
	"ranch-booking/internal/usecase/queries"
	"ranch-booking/tests/common/httptest"
	queriesmock "ranch-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	mockStats   *queriesmock.MockStatsQueries
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.mockStats = queriesmock.NewMockStatsQueries(s.mockCtrl)

	h := api.NewAvailabilityHandler(s.mockQueries)
	s.router.GET("/availability", h.Get)
	s.router.GET("/availability/slots", h.Slots)
	s.router.GET("/availability/calendar", h.Calendar)

	stats := api.NewStatsHandler(s.mockStats)
	s.router.GET("/stats", fakeAdmin, stats.Dashboard)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

var availDay = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

func (s *AvailabilityHandlerTestSuite) TestGet() {
	s.Run("success: with a chosen slot", func() {
		view := &queries.AvailabilityView{
			Date: availDay, ServiceID: 1, SlotID: ptr.Of(int64(7)), Mode: "slot",
			Capacity: 3, Consumed: 2, Available: 1, HasSlots: true,
		}
		s.mockQueries.EXPECT().ForDate(gomock.Any(), int64(1), availDay, ptr.Of(int64(7))).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?date=2026-03-14&serviceId=1&slotId=7", nil, "")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("2026-03-14", body.Date)
		s.Equal(1, body.Available)
		s.Equal(int64(7), ptr.Deref(body.SlotID))
		s.False(body.FullyBooked)
	})

	s.Run("success: without a slot", func() {
		view := &queries.AvailabilityView{Date: availDay, ServiceID: 2, Mode: "pool", Capacity: 2, Consumed: 2, FullyBooked: true}
		s.mockQueries.EXPECT().ForDate(gomock.Any(), int64(2), availDay, (*int64)(nil)).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?date=2026-03-14&serviceId=2", nil, "")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.FullyBooked)
		s.Nil(body.SlotID)
	})

	s.Run("error: service id is required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?date=2026-03-14", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("error: invalid date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?date=2026-02-30&serviceId=1", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
	})

	s.Run("error: unknown service", func() {
		s.mockQueries.EXPECT().ForDate(gomock.Any(), int64(99), availDay, (*int64)(nil)).
			Return(nil, errs.Mark(errors.New("service"), errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?date=2026-03-14&serviceId=99", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

func (s *AvailabilityHandlerTestSuite) TestSlots() {
	s.Run("success", func() {
		views := []*queries.SlotAvailabilityView{
			{SlotID: 1, Date: availDay, Time: "09:00", Capacity: 3, Booked: 3, Available: 0, FullyBooked: true},
			{SlotID: 2, Date: availDay, Time: "14:00", Capacity: 3, Booked: 1, Available: 2},
		}
		s.mockQueries.EXPECT().SlotsForDate(gomock.Any(), availDay).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability/slots?date=2026-03-14", nil, "")

		var body []resdto.SlotAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.True(body[0].FullyBooked)
		s.Equal(2, body[1].Available)
	})

	s.Run("error: date is required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability/slots", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
	})
}

func (s *AvailabilityHandlerTestSuite) TestCalendar() {
	from := availDay
	to := availDay.AddDate(0, 0, 1)

	s.Run("success", func() {
		views := []*queries.AvailabilityView{
			{Date: from, ServiceID: 1, Mode: "slot", Capacity: 6, Consumed: 6, HasSlots: true, FullyBooked: true},
			{Date: to, ServiceID: 1, Mode: "slot"},
		}
		s.mockQueries.EXPECT().Calendar(gomock.Any(), int64(1), from, to).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability/calendar?serviceId=1&from=2026-03-14&to=2026-03-15", nil, "")

		var body []resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.True(body[0].FullyBooked)
		s.False(body[1].HasSlots)
	})

	s.Run("error: range rejected", func() {
		s.mockQueries.EXPECT().Calendar(gomock.Any(), int64(1), to, from).
			Return(nil, errs.Mark(errors.New("inverted"), errs.ErrMalformedInput)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability/calendar?serviceId=1&from=2026-03-15&to=2026-03-14", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: missing bounds", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability/calendar?serviceId=1", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})
}

func (s *AvailabilityHandlerTestSuite) TestDashboard() {
	s.Run("success", func() {
		view := &queries.DashboardView{TotalReservations: 40, PendingReservations: 5, ActiveServices: 4, MonthlyRevenue: 120000}
		s.mockStats.EXPECT().Dashboard(gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stats", nil, "admin-token")

		var body resdto.DashboardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(40), body.TotalReservations)
		s.Equal(int64(120000), body.MonthlyRevenue)
	})

	s.Run("error: repository failure", func() {
		s.mockStats.EXPECT().Dashboard(gomock.Any()).Return(nil, errors.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stats", nil, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})

	s.Run("error: unauthorized", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stats", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
