package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"salonkit/database"
	bookingRepoPkg "salonkit/database/repository/booking"
	bookingServiceRepoPkg "salonkit/database/repository/bookingservice"
	catalogRepoPkg "salonkit/database/repository/catalog"
	customerRepoPkg "salonkit/database/repository/customer"
	"salonkit/models"
	"salonkit/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookingTestRouter() (*gin.Engine, *booking.DefaultBookingService) {
	gin.SetMode(gin.TestMode)
	store := database.NewMemoryStore()
	svc := &booking.DefaultBookingService{
		Repo:      bookingRepoPkg.NewKVBookingRepo(store),
		Lines:     bookingServiceRepoPkg.NewKVBookingServiceRepo(store),
		Customers: customerRepoPkg.NewKVCustomerRepo(store),
		Catalog:   catalogRepoPkg.NewKVServiceRepo(store),
	}
	h := NewBookingHandler(svc)

	r := gin.New()
	r.POST("/api/bookings", h.CreateBookingHandler)
	r.GET("/api/bookings", h.GetAllBookingsHandler)
	r.GET("/api/bookings/:id", h.GetBookingByIDHandler)
	r.PUT("/api/bookings/:id/status", h.UpdateBookingStatusHandler)
	r.DELETE("/api/bookings/:id", h.DeleteBookingHandler)
	return r, svc
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBookingEndpoint(t *testing.T) {
	r, svc := newBookingTestRouter()

	tanaka, err := svc.Customers.Create(models.Customer{Name: "Tanaka"})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", models.BookingInput{
		CustomerID: tanaka.ID,
		Date:       "2025-07-01",
		Time:       "10:00",
		Services: []models.BookingLineInput{
			{ServiceID: "s1", Price: 3000, Duration: 30},
			{ServiceID: "s2", Price: 2000, Duration: 20},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var view models.BookingView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, 5000, view.TotalPrice)
	assert.Equal(t, 50, view.TotalDuration)
	assert.Equal(t, "Tanaka", view.CustomerName)

	t.Run("malformed payload", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString("{not json"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetBookingEndpointNotFound(t *testing.T) {
	r, _ := newBookingTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/bookings/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateBookingStatusEndpoint(t *testing.T) {
	r, svc := newBookingTestRouter()

	view, err := svc.CreateBooking(models.BookingInput{CustomerName: "Sato", Date: "2025-07-01", Time: "10:00"})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPut, "/api/bookings/"+view.ID+"/status", gin.H{"status": models.StatusCompleted})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, models.StatusCompleted, updated.Status)

	t.Run("missing status field", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/api/bookings/"+view.ID+"/status", gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteBookingEndpoint(t *testing.T) {
	r, svc := newBookingTestRouter()

	view, err := svc.CreateBooking(models.BookingInput{CustomerName: "Sato", Date: "2025-07-01", Time: "10:00"})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodDelete, "/api/bookings/"+view.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/bookings/"+view.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
