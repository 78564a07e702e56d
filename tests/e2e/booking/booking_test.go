//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	resdto "ranch-booking/internal/handler/dto/response"
	"ranch-booking/internal/pkg/ptr"
	"ranch-booking/tests/common/authtest"
	"ranch-booking/tests/common/dbtest"
	"ranch-booking/tests/common/httptest"
	"ranch-booking/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/reservations"
	availabilityURL = "/api/availability"
)

type bookingSuite struct {
	e2e.SharedSuite
	adminToken string
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.adminToken = authtest.NewJWTHelper(s.Config.JWT).AdminToken(s.T())
}

func booking(serviceID int64, date string, guests int) map[string]any {
	return map[string]any{
		"name":      "Ana Petrović",
		"email":     "ana@example.com",
		"phone":     "+381 64 123 4567",
		"guests":    guests,
		"serviceId": serviceID,
		"date":      date,
	}
}

func (s *bookingSuite) availability(serviceID int64, date string, slotID *int64) resdto.AvailabilityResponse {
	url := fmt.Sprintf("%s?serviceId=%d&date=%s", availabilityURL, serviceID, date)
	if slotID != nil {
		url += fmt.Sprintf("&slotId=%d", *slotID)
	}
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, "")

	var body resdto.AvailabilityResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	return body
}

func (s *bookingSuite) TestSlotCapacity() {
	day := time.Date(2027, 2, 15, 0, 0, 0, 0, time.UTC)

	s.Run("request larger than the remaining seats is rejected", func() {
		slotID := dbtest.CreateSlot(s.T(), s.DB, day, "10:00", 4)

		first := booking(dbtest.TrailRideServiceID, "2027-02-15", 3)
		first["timeSlotId"] = slotID
		first["status"] = "confirmed"
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/reservations", first, s.adminToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

		s.Equal(1, s.availability(dbtest.TrailRideServiceID, "2027-02-15", &slotID).Available)

		second := booking(dbtest.TrailRideServiceID, "2027-02-15", 2)
		second["timeSlotId"] = slotID
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, second, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Not enough availability")

		s.Equal(1, dbtest.CountReservations(s.T(), s.DB, day))
	})

	s.Run("cancelling frees the seats", func() {
		slotID := dbtest.CreateSlot(s.T(), s.DB, day, "10:00", 4)

		req := booking(dbtest.TrailRideServiceID, "2027-02-15", 3)
		req["timeSlotId"] = slotID
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, req, "")
		var created resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)
		s.Equal("pending", created.Status)

		s.Equal(1, s.availability(dbtest.TrailRideServiceID, "2027-02-15", &slotID).Available)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPut, reservationsURL+"/"+created.ID.String(),
			map[string]any{"status": "confirmed"}, s.adminToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Equal(1, s.availability(dbtest.TrailRideServiceID, "2027-02-15", &slotID).Available)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPut, reservationsURL+"/"+created.ID.String(),
			map[string]any{"status": "cancelled"}, s.adminToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Equal(4, s.availability(dbtest.TrailRideServiceID, "2027-02-15", &slotID).Available)
	})

	s.Run("only one slot on the day is picked automatically", func() {
		dbtest.CreateSlot(s.T(), s.DB, day, "10:00", 4)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL,
			booking(dbtest.TrailRideServiceID, "2027-02-15", 2), "")

		var created resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)
		s.Equal("10:00", ptr.Deref(created.TimeSlotTime))
	})

	s.Run("concurrent requests never overbook a slot", func() {
		slotID := dbtest.CreateSlot(s.T(), s.DB, day, "10:00", 4)

		const attempts = 8
		codes := make([]int, attempts)
		var wg sync.WaitGroup
		for i := range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				req := booking(dbtest.TrailRideServiceID, "2027-02-15", 1)
				req["timeSlotId"] = slotID
				codes[i] = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, req, "").Code
			}()
		}
		wg.Wait()

		created, rejected := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				rejected++
			}
		}
		s.Equal(4, created)
		s.Equal(attempts-4, rejected)
		s.Equal(4, dbtest.CountReservations(s.T(), s.DB, day))
	})
}

func (s *bookingSuite) TestSharedPool() {
	day := time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC)

	s.Run("bungalow night is shared across services", func() {
		s.Equal(1, s.availability(dbtest.BungalowServiceID, "2027-03-01", nil).Available)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL,
			booking(dbtest.BungalowServiceID, "2027-03-01", 2), "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

		got := s.availability(dbtest.RideAndStayServiceID, "2027-03-01", nil)
		s.Equal(0, got.Available)
		s.True(got.FullyBooked)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL,
			booking(dbtest.RideAndStayServiceID, "2027-03-01", 1), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Not enough availability")

		s.Equal(1, dbtest.CountReservations(s.T(), s.DB, day))
	})

	s.Run("multi-night stay blocks every night it covers", func() {
		req := booking(dbtest.BungalowServiceID, "2027-03-01", 2)
		req["endDate"] = "2027-03-04"
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, req, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

		s.Equal(0, s.availability(dbtest.BungalowServiceID, "2027-03-03", nil).Available)
		s.Equal(1, s.availability(dbtest.BungalowServiceID, "2027-03-04", nil).Available)

		overlap := booking(dbtest.RideAndStayServiceID, "2027-03-03", 1)
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, overlap, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Not enough availability")
	})

	s.Run("queued notification is written with the reservation", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL,
			booking(dbtest.BungalowServiceID, "2027-03-01", 1), "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

		s.Equal(1, dbtest.CountQueuedNotifications(s.T(), s.DB))
	})
}

func (s *bookingSuite) TestCatalogValidation() {
	s.Run("inactive service does not take bookings", func() {
		dbtest.SetServiceActive(s.T(), s.DB, dbtest.BungalowServiceID, false)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL,
			booking(dbtest.BungalowServiceID, "2027-03-01", 1), "")
		s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
	})

	s.Run("unknown service is not found", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL,
			booking(999, "2027-03-01", 1), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("listing requires the admin", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, reservationsURL, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
