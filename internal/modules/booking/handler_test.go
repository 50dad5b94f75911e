package booking

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"quwastudio/internal/domain"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func setupRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(svc, 5*time.Second)
	h.RegisterRoutes(r.Group("/api/v1"))
	h.RegisterAdminRoutes(r.Group("/api/v1/admin"))
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if s, ok := body.(string); ok {
		buf.WriteString(s)
	} else if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestCreateBooking_Created(t *testing.T) {
	repo := new(MockBookingRepository)
	notifier := new(MockNotifier)
	r := setupRouter(newTestService(repo, notifier))

	repo.On("GetBySubmissionKey", mock.Anything, "key-1").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	notifier.On("NotifyBookingCreated", mock.Anything, mock.Anything).Return(nil)
	repo.On("MarkNotified", mock.Anything, int64(999), mock.Anything).Return(nil)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/bookings", validRequest())

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, MsgSubmitted, env.Message)

	var data BookingResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, int64(999), data.ID)
	assert.True(t, data.Notified)
	assert.False(t, data.Duplicate)
}

func TestCreateBooking_InvalidJSON(t *testing.T) {
	r := setupRouter(newTestService(new(MockBookingRepository), new(MockNotifier)))

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/bookings", "{not json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_JSON", env.Error.Code)
}

func TestCreateBooking_BodyTooLarge(t *testing.T) {
	repo := new(MockBookingRepository)
	r := setupRouter(newTestService(repo, new(MockNotifier)))

	req := validRequest()
	req.Message = strings.Repeat("a", MaxBodyBytes+1)
	w, env := doJSON(t, r, http.MethodPost, "/api/v1/bookings", req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, "PAYLOAD_TOO_LARGE", env.Error.Code)
	repo.AssertNotCalled(t, "GetBySubmissionKey", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBooking_ValidationError(t *testing.T) {
	repo := new(MockBookingRepository)
	r := setupRouter(newTestService(repo, new(MockNotifier)))

	req := validRequest()
	req.Email = "nope"
	req.Industry = "other"

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/bookings", req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Equal(t, "email", env.Error.Details["email"])
	assert.Equal(t, "required_if", env.Error.Details["other_industry"])
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBooking_StoreFailure(t *testing.T) {
	repo := new(MockBookingRepository)
	r := setupRouter(newTestService(repo, new(MockNotifier)))

	repo.On("GetBySubmissionKey", mock.Anything, "key-1").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/bookings", validRequest())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "BOOKING_FAILED", env.Error.Code)
	assert.Equal(t, MsgFailed, env.Error.Message)
}

func TestCreateBooking_NotificationFailure(t *testing.T) {
	repo := new(MockBookingRepository)
	notifier := new(MockNotifier)
	r := setupRouter(newTestService(repo, notifier))

	repo.On("GetBySubmissionKey", mock.Anything, "key-1").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	notifier.On("NotifyBookingCreated", mock.Anything, mock.Anything).Return(errors.New("timeout"))
	repo.On("RecordNotifyFailure", mock.Anything, int64(999), "timeout").Return(nil)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/bookings", validRequest())

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)
	var data BookingResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.False(t, data.Notified)
}

func TestCreateBooking_Duplicate(t *testing.T) {
	repo := new(MockBookingRepository)
	r := setupRouter(newTestService(repo, new(MockNotifier)))

	repo.On("GetBySubmissionKey", mock.Anything, "key-1").Return(&domain.Booking{ID: 3, SubmissionKey: "key-1"}, nil)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/bookings", validRequest())

	assert.Equal(t, http.StatusOK, w.Code)
	var data BookingResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.True(t, data.Duplicate)
	assert.Equal(t, int64(3), data.ID)
}

func TestGetBooking(t *testing.T) {
	repo := new(MockBookingRepository)
	r := setupRouter(newTestService(repo, nil))

	repo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Booking{ID: 3, FullName: "Ana"}, nil)
	repo.On("GetByID", mock.Anything, int64(4)).Return(nil, nil)

	w, _ := doJSON(t, r, http.MethodGet, "/api/v1/admin/bookings/3", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/admin/bookings/4", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "BOOKING_NOT_FOUND", env.Error.Code)

	w, env = doJSON(t, r, http.MethodGet, "/api/v1/admin/bookings/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ID", env.Error.Code)
}

func TestListBookings(t *testing.T) {
	repo := new(MockBookingRepository)
	r := setupRouter(newTestService(repo, nil))

	repo.On("List", mock.Anything, true, 10, 20).Return([]domain.Booking{{ID: 1}, {ID: 2}}, int64(22), nil)

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/admin/bookings?limit=10&offset=20&pending=true", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var data struct {
		Bookings []domain.Booking `json:"bookings"`
		Total    int64            `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data.Bookings, 2)
	assert.Equal(t, int64(22), data.Total)
}

func TestResendNotification(t *testing.T) {
	repo := new(MockBookingRepository)
	notifier := new(MockNotifier)
	r := setupRouter(newTestService(repo, notifier))

	repo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Booking{ID: 3, NotifyAttempts: 1}, nil)
	notifier.On("NotifyBookingCreated", mock.Anything, mock.Anything).Return(errors.New("still down"))
	repo.On("RecordNotifyFailure", mock.Anything, int64(3), "still down").Return(nil)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/admin/bookings/3/notify", nil)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "NOTIFY_FAILED", env.Error.Code)
}
