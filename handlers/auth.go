package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/toursproject/booking-backend/internal/accounts"
	"github.com/toursproject/booking-backend/internal/config"
	"github.com/toursproject/booking-backend/internal/sessions"
	"github.com/toursproject/booking-backend/pkg/logger"
	"github.com/toursproject/booking-backend/pkg/metrics"
)

// SignupRequest mirrors the signup form fields.
type SignupRequest struct {
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// LoginRequest mirrors the login form fields.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthHandler holds dependencies
type AuthHandler struct {
	cfg         *config.Config
	accountsSvc *accounts.Service
	sessionsSvc *sessions.Service
}

func NewAuthHandler(cfg *config.Config, a *accounts.Service, s *sessions.Service) *AuthHandler {
	return &AuthHandler{cfg: cfg, accountsSvc: a, sessionsSvc: s}
}

// Register routes at the root; the frontend posts plain form-derived JSON.
func (h *AuthHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/signup", h.Signup)
	rg.POST("/login", h.Login)
	rg.POST("/logout", h.Logout)
	rg.GET("/check-session", h.CheckSession)
}

// Signup creates an account. Duplicate emails get a structured 409 pointing
// the client back at the login page, matching the original site's flow.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_FAILED", "message": err.Error()})
		return
	}

	_, err := h.accountsSvc.Signup(c.Request.Context(), req.Name, req.PhoneNumber, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, accounts.ErrDuplicateAccount) {
			metrics.Signups.WithLabelValues("duplicate").Inc()
			c.JSON(http.StatusConflict, gin.H{
				"code":        "DUPLICATE_ACCOUNT",
				"message":     "User already exists. Please login.",
				"redirectUrl": "/login.html",
			})
			return
		}
		metrics.Signups.WithLabelValues("error").Inc()
		logger.Errorf("signup failed for %s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": "PERSISTENCE_FAILED", "message": "Unable to create account. Please try again."})
		return
	}

	metrics.Signups.WithLabelValues("ok").Inc()
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Signup successful! Please login.",
		"redirectUrl": "/login.html",
	})
}

// Login verifies credentials and establishes a session. The cookie carries
// only the opaque session id; its max-age is aligned with the session TTL.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_FAILED", "message": err.Error()})
		return
	}

	a, err := h.accountsSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrAccountNotFound):
			metrics.Logins.WithLabelValues("not_found").Inc()
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":        "ACCOUNT_NOT_FOUND",
				"message":     "User not found. Please sign up first.",
				"redirectUrl": "/signup.html",
			})
		case errors.Is(err, accounts.ErrInvalidCredentials):
			metrics.Logins.WithLabelValues("invalid").Inc()
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":        "INVALID_CREDENTIALS",
				"message":     "Incorrect password. Please try again.",
				"redirectUrl": "/login.html",
			})
		default:
			metrics.Logins.WithLabelValues("error").Inc()
			logger.Errorf("login failed for %s: %v", req.Email, err)
			c.JSON(http.StatusInternalServerError, gin.H{"code": "PERSISTENCE_FAILED", "message": "Unable to log in. Please try again."})
		}
		return
	}

	token, err := h.sessionsSvc.Create(c.Request.Context(), sessions.Identity{Email: a.Email, Name: a.Name})
	if err != nil {
		metrics.Logins.WithLabelValues("error").Inc()
		logger.Errorf("failed to create session for %s: %v", a.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": "PERSISTENCE_FAILED", "message": "Unable to log in. Please try again."})
		return
	}

	metrics.Logins.WithLabelValues("ok").Inc()
	maxAge := int(h.sessionsSvc.TTL().Seconds())
	c.SetCookie(h.cfg.Session.CookieName, token, maxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"message":     "Login successful",
		"redirectUrl": "/mainPage/index.html",
	})
}

// Logout destroys the current session, if any, and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if id, err := c.Cookie(h.cfg.Session.CookieName); err == nil && id != "" {
		if err := h.sessionsSvc.Destroy(c.Request.Context(), id); err != nil {
			logger.Errorf("failed to destroy session: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"code": "PERSISTENCE_FAILED", "message": "Unable to log out. Please try again."})
			return
		}
	}
	c.SetCookie(h.cfg.Session.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// CheckSession is the poll endpoint for client-side code: a plain boolean,
// never a redirect, so polling has no side effects.
func (h *AuthHandler) CheckSession(c *gin.Context) {
	active := false
	if id, err := c.Cookie(h.cfg.Session.CookieName); err == nil && id != "" {
		sess, lerr := h.sessionsSvc.Lookup(c.Request.Context(), id)
		if lerr != nil {
			logger.Errorf("session check lookup failed: %v", lerr)
		}
		active = sess != nil
	}
	c.JSON(http.StatusOK, gin.H{"active": active})
}
