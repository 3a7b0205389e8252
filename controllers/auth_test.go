package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clinicflash-backend/data"
	"clinicflash-backend/storage"
	"clinicflash-backend/utils"

	"github.com/gin-gonic/gin"
)

func newAuthTestRouter(t *testing.T) (*gin.Engine, *storage.SessionStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	sessions := storage.NewSessionStore(storage.NewMemoryKV())
	ctl := &AuthController{Store: data.NewStore(), Sessions: sessions}

	r := gin.New()
	r.POST("/auth/patient", ctl.PatientLogin)
	r.POST("/auth/admin/login", ctl.AdminLogin)
	r.GET("/auth/me", ctl.Me)
	r.POST("/auth/logout", ctl.Logout)
	r.GET("/auth/remembered", ctl.GetRememberedPatientNumber)
	return r, sessions
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPatientLoginSuccess(t *testing.T) {
	r, sessions := newAuthTestRouter(t)

	w := postJSON(t, r, "/auth/patient", gin.H{"patientNumber": "sbc-123456", "rememberMe": true})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token    string `json:"token"`
		Customer struct {
			ID string `json:"id"`
		} `json:"customer"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Token == "" {
		t.Error("response missing token")
	}
	if resp.Customer.ID != "cust-001" {
		t.Errorf("customer id = %q", resp.Customer.ID)
	}

	if !sessions.IsAuthenticated() {
		t.Error("login did not create a session")
	}
	number, ok, _ := sessions.LoadRememberedPatientNumber()
	if !ok || number != "SBC-123456" {
		t.Errorf("remembered number = %q ok=%v", number, ok)
	}
}

func TestPatientLoginRejectsBadFormat(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	w := postJSON(t, r, "/auth/patient", gin.H{"patientNumber": "12345"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error != utils.PatientNumberFormatError {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestPatientLoginUnknownNumber(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	w := postJSON(t, r, "/auth/patient", gin.H{"patientNumber": "SBC-000000"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestAdminLoginWithoutDatabase(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	// config.DB stays nil without DB_URL; the login must answer instead
	// of panicking on the handle.
	w := postJSON(t, r, "/auth/admin/login", gin.H{"email": "owner@example.com", "password": "secret"})
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resp.Error, "database") {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestMeAndLogout(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("me without session = %d", w.Code)
	}

	postJSON(t, r, "/auth/patient", gin.H{"patientNumber": "SBC-123456"})

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/me", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("me after login = %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("logout = %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/me", nil))
	if w.Code != http.StatusUnauthorized {
		t.Error("session survived logout")
	}
}
