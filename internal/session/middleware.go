package session

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	CookieName = "diner_session"
	ContextKey = "session"
)

// Middleware resolves the session cookie, creating a fresh session (and
// setting the cookie) when it is missing, expired or unknown.
func (s *Store) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if ck, err := c.Cookie(CookieName); err == nil && ck.Value != "" {
			if st, ok := s.Resolve(ck.Value); ok {
				c.Set(ContextKey, st)
				return next(c)
			}
		}

		st, token, err := s.Create()
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "session error")
		}
		c.SetCookie(&http.Cookie{
			Name:     CookieName,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   int(s.ttl.Seconds()),
		})
		c.Set(ContextKey, st)
		return next(c)
	}
}

// FromEchoContext pulls the session the middleware stashed. The second
// return is false on routes that skipped the middleware.
func FromEchoContext(c echo.Context) (*State, bool) {
	st, ok := c.Get(ContextKey).(*State)
	return st, ok
}
