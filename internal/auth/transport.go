package auth

import (
	"net/http"
	"time"
)

// DefaultCookieName is the cookie carrying the session token.
const DefaultCookieName = "token"

// CookieTransport is the single channel used to hand out and read session
// tokens. The cookie lives exactly as long as the token it carries.
type CookieTransport struct {
	Name   string
	Secure bool
	MaxAge time.Duration
}

// Extract returns the session token sent with r, or "" when absent.
func (t CookieTransport) Extract(r *http.Request) string {
	c, err := r.Cookie(t.name())
	if err != nil {
		return ""
	}
	return c.Value
}

// Set attaches token to the response.
func (t CookieTransport) Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     t.name(),
		Value:    token,
		Path:     "/",
		MaxAge:   int(t.MaxAge.Seconds()),
		Expires:  time.Now().Add(t.MaxAge),
		HttpOnly: true,
		Secure:   t.Secure,
		SameSite: http.SameSiteNoneMode,
	})
}

// Clear instructs the client to drop the session cookie.
func (t CookieTransport) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     t.name(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   t.Secure,
		SameSite: http.SameSiteNoneMode,
	})
}

func (t CookieTransport) name() string {
	if t.Name == "" {
		return DefaultCookieName
	}
	return t.Name
}
