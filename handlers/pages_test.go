package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProtectedPagesDenyWithoutSession(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/mainPage/index.html", "/mainPage/booking.html", "/booking"} {
		w := app.do("GET", path, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, "path %s", path)
		assert.Contains(t, w.Body.String(), "SESSION_EXPIRED")
		assert.Contains(t, w.Body.String(), "/login.html")
	}
}

func TestEntryPagesAreOpen(t *testing.T) {
	app := newTestApp(t)

	for path, marker := range map[string]string{
		"/":            "login.html",
		"/login.html":  "login.html",
		"/signup.html": "signup.html",
	} {
		w := app.do("GET", path, "")
		require.Equal(t, http.StatusOK, w.Code, "path %s", path)
		assert.Contains(t, w.Body.String(), marker)
	}
}

func TestBookingRouteServesBookingPage(t *testing.T) {
	app := newTestApp(t)
	require.Equal(t, http.StatusCreated, app.do("POST", "/signup", signupAlice).Code)
	login := app.do("POST", "/login", `{"email":"a@x.com","password":"pw123"}`)
	cookie := app.sessionCookie(t, login)

	w := app.do("GET", "/booking", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "booking.html")
}

func TestDemoCookieEndpoints(t *testing.T) {
	app := newTestApp(t)

	w := app.do("GET", "/setCookie", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Cookie has been set!")
	var demo *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "userSession" {
			demo = c
		}
	}
	require.NotNil(t, demo)
	assert.Equal(t, "abc123", demo.Value)

	w = app.do("GET", "/getCookie", "", demo)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "User session is: abc123")

	w = app.do("GET", "/clearCookie", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Cookie cleared!")
}
