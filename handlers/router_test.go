package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/toursproject/booking-backend/internal/accounts"
	"github.com/toursproject/booking-backend/internal/config"
	"github.com/toursproject/booking-backend/internal/records"
	"github.com/toursproject/booking-backend/internal/sessions"
	"github.com/toursproject/booking-backend/pkg/middleware"
)

// testApp wires the full route surface against in-memory stores, the same
// shape main() builds against Mongo and Redis.
type testApp struct {
	router      *gin.Engine
	cfg         *config.Config
	accounts    *accounts.MemoryRepository
	records     *records.MemoryRepository
	sessionsSvc *sessions.Service
}

var testPages = []string{"login.html", "signup.html", "index.html", "booking.html", "payment.html"}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	for _, name := range testPages {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("<html>"+name+"</html>"), 0o644); err != nil {
			t.Fatalf("write page fixture: %v", err)
		}
	}

	cfg := &config.Config{}
	cfg.Session.CookieName = "tours_session"
	cfg.Session.TTL = 30 * time.Second
	cfg.Pages.Dir = dir

	accountsRepo := accounts.NewMemoryRepository()
	recordsRepo := records.NewMemoryRepository()
	sessionsSvc := sessions.NewService(sessions.NewMemoryStore(), cfg.Session.TTL)

	r := gin.New()
	gate := middleware.RequireSession(sessionsSvc, cfg.Session.CookieName)
	NewAuthHandler(cfg, accounts.NewService(accountsRepo), sessionsSvc).Register(r.Group("/"))
	NewPageHandler(cfg).Register(r, gate)
	NewRecordHandler(records.NewService(recordsRepo)).Register(r, gate)

	return &testApp{
		router:      r,
		cfg:         cfg,
		accounts:    accountsRepo,
		records:     recordsRepo,
		sessionsSvc: sessionsSvc,
	}
}

func (a *testApp) do(method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// sessionCookie pulls the session cookie out of a login response.
func (a *testApp) sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == a.cfg.Session.CookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", a.cfg.Session.CookieName)
	return nil
}
