package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"quwastudio/internal/database"
	"quwastudio/internal/modules/booking"
	"quwastudio/internal/notification"
	"quwastudio/internal/repository"
	"quwastudio/internal/server"
)

const adminToken = "test-admin-token"

type recordingNotifier struct {
	mu   sync.Mutex
	sent []notification.BookingCreated
	fail bool
}

func (r *recordingNotifier) NotifyBookingCreated(_ context.Context, n notification.BookingCreated) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errors.New("notification endpoint unavailable")
	}
	r.sent = append(r.sent, n)
	return nil
}

func (r *recordingNotifier) setFail(v bool) {
	r.mu.Lock()
	r.fail = v
	r.mu.Unlock()
}

func (r *recordingNotifier) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sent)
}

type E2ETestSuite struct {
	handler  http.Handler
	db       *gorm.DB
	notifier *recordingNotifier
}

type TestResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorDetail    `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

type createdBooking struct {
	ID        int64  `json:"id"`
	Industry  string `json:"industry"`
	Notified  bool   `json:"notified"`
	Duplicate bool   `json:"duplicate"`
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	gin.SetMode(gin.TestMode)

	db, err := database.Open(":memory:", logger.Silent)
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, repository.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })

	notifier := &recordingNotifier{}
	svc := booking.NewService(repository.NewBookingRepository(db), notifier)

	h, err := server.NewHandler(svc, server.Options{
		SubmitTimeout: 5 * time.Second,
		AdminToken:    adminToken,
		CSRFAuthKey:   []byte("0123456789abcdef0123456789abcdef"),
	})
	require.NoError(t, err)

	return &E2ETestSuite{handler: h, db: db, notifier: notifier}
}

func (s *E2ETestSuite) makeRequest(t *testing.T, method, path string, body any, token string) (*httptest.ResponseRecorder, TestResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)

	var resp TestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w, resp
}

func (s *E2ETestSuite) bookingCount(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, s.db.Table("bookings").Count(&n).Error)
	return n
}

func bookingBody(key string) map[string]string {
	return map[string]string{
		"full_name":      "Ana Lopez",
		"company_name":   "Lopez Bakes",
		"industry":       "other",
		"other_industry": "Bakery",
		"whatsapp":       "+52 55 1234 5678",
		"email":          "ana@example.com",
		"message":        "New site please",
		"submission_key": key,
	}
}

func TestBookingFlow_CreateAndNotify(t *testing.T) {
	s := setupTestSuite(t)

	w, resp := s.makeRequest(t, http.MethodPost, "/api/v1/bookings", bookingBody("e2e-1"), "")

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.True(t, resp.Success)
	assert.Equal(t, booking.MsgSubmitted, resp.Message)

	var created createdBooking
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	assert.Equal(t, "Bakery", created.Industry)
	assert.True(t, created.Notified)
	assert.Equal(t, int64(1), s.bookingCount(t))
	assert.Equal(t, 1, s.notifier.count())

	w, resp = s.makeRequest(t, http.MethodGet, "/api/v1/admin/bookings/1", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	var stored map[string]any
	require.NoError(t, json.Unmarshal(resp.Data, &stored))
	assert.Equal(t, "Bakery", stored["industry"])
	assert.Equal(t, float64(1), stored["notify_attempts"])
	assert.NotNil(t, stored["notified_at"])
}

func TestBookingFlow_ResubmitSameKey(t *testing.T) {
	s := setupTestSuite(t)

	w, _ := s.makeRequest(t, http.MethodPost, "/api/v1/bookings", bookingBody("e2e-dup"), "")
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp := s.makeRequest(t, http.MethodPost, "/api/v1/bookings", bookingBody("e2e-dup"), "")
	require.Equal(t, http.StatusOK, w.Code)

	var again createdBooking
	require.NoError(t, json.Unmarshal(resp.Data, &again))
	assert.True(t, again.Duplicate)
	assert.Equal(t, int64(1), s.bookingCount(t))
	assert.Equal(t, 1, s.notifier.count())
}

func TestBookingFlow_ConcurrentSameKey(t *testing.T) {
	s := setupTestSuite(t)

	var wg sync.WaitGroup
	codes := make([]int, 8)
	for i := range codes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var buf bytes.Buffer
			_ = json.NewEncoder(&buf).Encode(bookingBody("e2e-race"))
			req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", &buf)
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			s.handler.ServeHTTP(w, req)
			codes[i] = w.Code
		}(i)
	}
	wg.Wait()

	for _, code := range codes {
		assert.Contains(t, []int{http.StatusCreated, http.StatusOK, http.StatusConflict}, code)
	}
	assert.Equal(t, int64(1), s.bookingCount(t))
	assert.Equal(t, 1, s.notifier.count())
}

func TestBookingFlow_ValidationCreatesNothing(t *testing.T) {
	s := setupTestSuite(t)

	body := bookingBody("e2e-invalid")
	body["email"] = "not-an-email"
	body["other_industry"] = "  "

	w, resp := s.makeRequest(t, http.MethodPost, "/api/v1/bookings", body, "")

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "email")
	assert.Contains(t, resp.Error.Details, "other_industry")
	assert.Equal(t, int64(0), s.bookingCount(t))
	assert.Equal(t, 0, s.notifier.count())
}

func TestBookingFlow_NotificationFailureAndRetry(t *testing.T) {
	s := setupTestSuite(t)
	s.notifier.setFail(true)

	w, resp := s.makeRequest(t, http.MethodPost, "/api/v1/bookings", bookingBody("e2e-notify"), "")
	require.Equal(t, http.StatusCreated, w.Code)

	var created createdBooking
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	assert.False(t, created.Notified)
	assert.Equal(t, int64(1), s.bookingCount(t))

	w, resp = s.makeRequest(t, http.MethodGet, "/api/v1/admin/bookings?pending=true", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	var page struct {
		Bookings []map[string]any `json:"bookings"`
		Total    int64            `json:"total"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &page))
	require.Equal(t, int64(1), page.Total)
	assert.Equal(t, float64(1), page.Bookings[0]["notify_attempts"])
	assert.Equal(t, "notification endpoint unavailable", page.Bookings[0]["last_notify_error"])

	s.notifier.setFail(false)
	w, _ = s.makeRequest(t, http.MethodPost, "/api/v1/admin/bookings/1/notify", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = s.makeRequest(t, http.MethodGet, "/api/v1/admin/bookings?pending=true", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(resp.Data, &page))
	assert.Equal(t, int64(0), page.Total)
}

func TestAdmin_RequiresToken(t *testing.T) {
	s := setupTestSuite(t)

	w, resp := s.makeRequest(t, http.MethodGet, "/api/v1/admin/bookings", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_MISSING", resp.Error.Code)

	w, _ = s.makeRequest(t, http.MethodGet, "/api/v1/admin/bookings", nil, "wrong")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

var csrfField = regexp.MustCompile(`name="gorilla\.csrf\.Token" value="([^"]+)"`)

func TestHTMLForm_CSRFProtectedSubmission(t *testing.T) {
	s := setupTestSuite(t)

	form := url.Values{
		"full_name": {"Kenji Sato"},
		"industry":  {"technology"},
		"whatsapp":  {"+81 90 0000"},
		"email":     {"kenji@example.com"},
	}

	post := func(token string, cookies []*http.Cookie) *httptest.ResponseRecorder {
		f := url.Values{}
		for k, v := range form {
			f[k] = v
		}
		if token != "" {
			f.Set("gorilla.csrf.Token", token)
		}
		req := httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader(f.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		for _, c := range cookies {
			req.AddCookie(c)
		}
		w := httptest.NewRecorder()
		s.handler.ServeHTTP(w, req)
		return w
	}

	w := post("", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, int64(0), s.bookingCount(t))

	page := httptest.NewRecorder()
	s.handler.ServeHTTP(page, httptest.NewRequest(http.MethodGet, "/?book=1", nil))
	require.Equal(t, http.StatusOK, page.Code)
	m := csrfField.FindStringSubmatch(page.Body.String())
	require.Len(t, m, 2)

	w = post(m[1], page.Result().Cookies())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Thank You!")
	assert.Equal(t, int64(1), s.bookingCount(t))

	var industry string
	require.NoError(t, s.db.Table("bookings").Select("industry").Row().Scan(&industry))
	assert.Equal(t, "tech", industry)
}

func TestStaticAndHealth(t *testing.T) {
	s := setupTestSuite(t)

	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/js/site.js", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "RESET_DELAY_MS = 300")

	w = httptest.NewRecorder()
	s.handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
