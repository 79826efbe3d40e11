package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ritikkamerkar15/residential-security-system/internal/infrastructure/config"
)

// envelope mirrors the response wrapper every endpoint uses
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWTSecretKey: "test-secret",
		ServerPort:   "0",
	}
	r, _ := SetupRouter(nil, cfg, nil)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

func login(t *testing.T, r *gin.Engine, identifier, password string) string {
	t.Helper()

	w, env := doJSON(t, r, http.MethodPost, "/api/auth/login", "",
		`{"identifier":"`+identifier+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func TestPingIsPublic(t *testing.T) {
	r := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodGet, "/api/ping", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", env.Message)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodGet, "/api/visitors", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/api/statistics", "garbage-token", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/login", "",
		`{"identifier":"A-101","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVisitorLifecycleOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	guardToken := login(t, r, "SEC001", "guard123")

	// Guard checks the flat before registering the visitor
	w, _ := doJSON(t, r, http.MethodGet, "/api/residents/A-101", guardToken, "")
	require.Equal(t, http.StatusOK, w.Code)

	w, env := doJSON(t, r, http.MethodPost, "/api/visitors", guardToken,
		`{"visitor_name":"David Wilson","phone_number":"+1-555-0199","purpose_of_visit":"Package Delivery","flat_number":"A-101","checked_by":"Ramesh Kumar (SEC001)"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var created struct {
		ID           string `json:"id"`
		Status       string `json:"status"`
		ResidentName string `json:"resident_name"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "pending", created.Status)
	assert.Equal(t, "John Smith", created.ResidentName)

	// The resident sees the request at the top of the flat's list
	residentToken := login(t, r, "A-101", "resident123")
	w, env = doJSON(t, r, http.MethodGet, "/api/flats/A-101/visitors", residentToken, "")
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Requests []struct {
			ID string `json:"id"`
		} `json:"requests"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.NotEmpty(t, list.Requests)
	assert.Equal(t, created.ID, list.Requests[0].ID)

	// Approve once, then the request is final
	w, _ = doJSON(t, r, http.MethodPut, "/api/visitors/"+created.ID+"/status", residentToken,
		`{"status":"approved"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodPut, "/api/visitors/"+created.ID+"/status", residentToken,
		`{"status":"rejected"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResidentCannotReadAnotherFlat(t *testing.T) {
	r := newTestRouter(t)

	residentToken := login(t, r, "B-203", "resident123")
	w, _ := doJSON(t, r, http.MethodGet, "/api/flats/A-101/visitors", residentToken, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminConsoleAuthorization(t *testing.T) {
	r := newTestRouter(t)

	adminToken := login(t, r, "admin001", "admin123")
	guardToken := login(t, r, "SEC002", "guard123")

	w, env := doJSON(t, r, http.MethodGet, "/api/statistics", adminToken, "")
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		TotalRequests int    `json:"totalRequests"`
		Uptime        string `json:"uptime"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 4, stats.TotalRequests)
	assert.Equal(t, "99.8%", stats.Uptime)

	// Guards are not admins
	w, _ = doJSON(t, r, http.MethodGet, "/api/statistics", guardToken, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCSVExportOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	adminToken := login(t, r, "admin001", "admin123")

	req := httptest.NewRequest(http.MethodGet, "/api/export?type=guards", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.True(t, strings.HasPrefix(w.Body.String(), "SECURITY GUARDS\n"))

	w2, _ := doJSON(t, r, http.MethodGet, "/api/export?type=bogus", adminToken, "")
	assert.Equal(t, http.StatusBadRequest, w2.Code)
}

func TestAdminUpdatesResidentOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	adminToken := login(t, r, "admin001", "admin123")

	w, env := doJSON(t, r, http.MethodPut, "/api/residents/A-101", adminToken,
		`{"phone_number":"+91 9999900000"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resident struct {
		Name        string `json:"name"`
		PhoneNumber string `json:"phone_number"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &resident))
	assert.Equal(t, "+91 9999900000", resident.PhoneNumber)
	assert.Equal(t, "John Smith", resident.Name)

	w, _ = doJSON(t, r, http.MethodPut, "/api/residents/Z-999", adminToken,
		`{"phone_number":"+91 9999900001"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(t, r, http.MethodPut, "/api/residents/A-101", adminToken, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAlertFeedOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	adminToken := login(t, r, "admin001", "admin123")

	w, env := doJSON(t, r, http.MethodGet, "/api/alerts", adminToken, "")
	require.Equal(t, http.StatusOK, w.Code)

	var feed struct {
		Total  int `json:"total"`
		Alerts []struct {
			Type string `json:"type"`
		} `json:"alerts"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &feed))
	assert.Equal(t, 3, feed.Total)
	require.NotEmpty(t, feed.Alerts)
	assert.Equal(t, "intrusion", feed.Alerts[0].Type)

	w, _ = doJSON(t, r, http.MethodPost, "/api/alerts", adminToken,
		`{"type":"sos","message":"Panic button pressed at gate 2","source":"Gate Panel 02","priority":"high"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w, env = doJSON(t, r, http.MethodGet, "/api/alerts", adminToken, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &feed))
	assert.Equal(t, 4, feed.Total)
	assert.Equal(t, "sos", feed.Alerts[0].Type)

	w, _ = doJSON(t, r, http.MethodPost, "/api/alerts", adminToken,
		`{"type":"meteor","message":"x","source":"y","priority":"high"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFlatWithoutRequestsSerializesEmptyList(t *testing.T) {
	r := newTestRouter(t)

	adminToken := login(t, r, "admin001", "admin123")
	w, _ := doJSON(t, r, http.MethodPost, "/api/residents", adminToken,
		`{"flat_number":"D-402","name":"Priya Sharma","phone_number":"+91 9876543240","password":"resident123"}`)
	require.Equal(t, http.StatusOK, w.Code)

	residentToken := login(t, r, "D-402", "resident123")
	w, _ = doJSON(t, r, http.MethodGet, "/api/flats/D-402/visitors", residentToken, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"requests":[]`)
	assert.NotContains(t, w.Body.String(), `"requests":null`)
}
