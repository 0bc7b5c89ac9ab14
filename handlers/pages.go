package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/toursproject/booking-backend/internal/config"
)

// demoCookieName is the throwaway cookie used by the diagnostic endpoints.
const demoCookieName = "userSession"

// PageHandler serves the static site pages. The landing and booking pages sit
// behind the access gate; the login and signup entry pages do not.
type PageHandler struct {
	cfg *config.Config
}

func NewPageHandler(cfg *config.Config) *PageHandler {
	return &PageHandler{cfg: cfg}
}

// Register wires the page routes. gate is the session middleware applied to
// the protected pages.
func (h *PageHandler) Register(r *gin.Engine, gate gin.HandlerFunc) {
	r.GET("/", h.page("login.html"))
	r.GET("/login.html", h.page("login.html"))
	r.GET("/signup.html", h.page("signup.html"))

	r.GET("/mainPage/index.html", gate, h.page("index.html"))
	r.GET("/mainPage/booking.html", gate, h.page("booking.html"))
	r.GET("/booking", gate, h.page("booking.html"))
	r.GET("/mainPage/payment.html", h.page("payment.html"))

	// diagnostic cookie endpoints, kept from the original site
	r.GET("/setCookie", h.SetCookie)
	r.GET("/getCookie", h.GetCookie)
	r.GET("/clearCookie", h.ClearCookie)
}

func (h *PageHandler) page(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.File(filepath.Join(h.cfg.Pages.Dir, name))
	}
}

// SetCookie sets a demonstration cookie.
func (h *PageHandler) SetCookie(c *gin.Context) {
	c.SetCookie(demoCookieName, "abc123", 60, "/", "", false, true)
	c.String(http.StatusOK, "Cookie has been set!")
}

// GetCookie echoes the demonstration cookie value.
func (h *PageHandler) GetCookie(c *gin.Context) {
	v, err := c.Cookie(demoCookieName)
	if err != nil {
		v = ""
	}
	c.String(http.StatusOK, fmt.Sprintf("User session is: %s", v))
}

// ClearCookie removes the demonstration cookie.
func (h *PageHandler) ClearCookie(c *gin.Context) {
	c.SetCookie(demoCookieName, "", -1, "/", "", false, true)
	c.String(http.StatusOK, "Cookie cleared!")
}
