package booking_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"aparthotel/internal/booking"
	bookingerrors "aparthotel/internal/booking/errors"
	bookingMock "aparthotel/internal/booking/mock"
	"aparthotel/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type principal struct {
	userID, role, companyID, propertyGroupID string
}

func setupHandler(t *testing.T, p principal) (*bookingMock.MockService, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	ctrl := gomock.NewController(t)
	svc := bookingMock.NewMockService(ctrl)
	h := booking.NewHandler(svc, zap.NewNop())

	r := gin.New()
	booking.RegisterPublicRoutes(r.Group(""), h)

	auth := r.Group("")
	auth.Use(func(c *gin.Context) {
		c.Set("user_id", p.userID)
		c.Set("role", p.role)
		c.Set("company_id", p.companyID)
		c.Set("property_group_id", p.propertyGroupID)
		c.Next()
	})
	auth.POST("/bookings/create", h.Create)
	auth.GET("/bookings/property/:propertyGroupId", h.GetByPropertyGroup)
	auth.PUT("/bookings/update/:id", h.Update)
	return svc, r
}

const validBody = `{"guestName":"Ana","guestEmail":"ana@mail.com","numGuests":2,
	"unitId":"2b1c8c7e-8f4e-4c1e-9a51-1d2f7a8b9c0d","checkIn":"2025-06-01","checkOut":"2025-06-05"}`

func TestBookingHandler_Create(t *testing.T) {
	p := principal{userID: uuid.NewString(), role: "frontoffice", companyID: uuid.NewString(), propertyGroupID: uuid.NewString()}

	t.Run("created with scoped actor", func(t *testing.T) {
		svc, r := setupHandler(t, p)
		svc.EXPECT().Create(gomock.Any(), booking.Actor{UserID: p.userID, CompanyID: p.companyID, PropertyGroupID: p.propertyGroupID}, gomock.Any()).
			Return(booking.BookingResponse{ID: "b-1", FullPrice: 400}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/bookings/create", strings.NewReader(validBody)))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"fullPrice":400`)
	})

	t.Run("conflict maps to 409", func(t *testing.T) {
		svc, r := setupHandler(t, p)
		svc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking.BookingResponse{}, bookingerrors.ErrUnitAlreadyBooked)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/bookings/create", strings.NewReader(validBody)))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "Unit is already booked for these dates")
	})

	t.Run("invalid email", func(t *testing.T) {
		_, r := setupHandler(t, p)
		body := strings.Replace(validBody, "ana@mail.com", "not-an-email", 1)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/bookings/create", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBookingHandler_ManagerIsNotScoped(t *testing.T) {
	p := principal{userID: uuid.NewString(), role: "manager", companyID: uuid.NewString(), propertyGroupID: uuid.NewString()}
	svc, r := setupHandler(t, p)
	groupID := uuid.NewString()

	svc.EXPECT().ListByPropertyGroup(gomock.Any(), booking.Actor{UserID: p.userID, CompanyID: p.companyID}, groupID).
		Return([]booking.BookingResponse{}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings/property/"+groupID, nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBookingHandler_GetByPropertyGroup_MalformedID(t *testing.T) {
	p := principal{userID: uuid.NewString(), role: "manager", companyID: uuid.NewString()}
	svc, r := setupHandler(t, p)
	svc.EXPECT().ListByPropertyGroup(gomock.Any(), gomock.Any(), "pg-1").
		Return(nil, bookingerrors.ErrInvalidPropertyGroupID)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings/property/pg-1", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid property group id")
}

func TestBookingHandler_Update_PastCheckIn(t *testing.T) {
	p := principal{userID: uuid.NewString(), role: "manager", companyID: uuid.NewString()}
	svc, r := setupHandler(t, p)
	svc.EXPECT().Update(gomock.Any(), gomock.Any(), "b-1", gomock.Any()).Return(booking.BookingResponse{}, bookingerrors.ErrCheckInInPast)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/bookings/update/b-1", strings.NewReader(validBody)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingHandler_General_NoAuth(t *testing.T) {
	svc, r := setupHandler(t, principal{})
	companyID := uuid.NewString()
	svc.EXPECT().General(gomock.Any(), booking.GeneralBookingsQuery{CompanyID: companyID, Month: 6, Year: 2025}).
		Return([]booking.GeneralBookingResponse{{ID: "b-1"}}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings/general?companyId="+companyID+"&month=6&year=2025", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "guestName")
}
