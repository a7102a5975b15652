package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolify/internal/domain"
)

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	issuer, err := NewIssuer("super-secret", time.Hour)
	require.NoError(t, err)

	tok, err := issuer.Issue("user-123")
	require.NoError(t, err)

	claims, err := issuer.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestDefaultTTLIsSevenDays(t *testing.T) {
	t.Parallel()

	issuer, err := NewIssuer("k", 0)
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, issuer.TTL())
}

func TestVerifyExpired(t *testing.T) {
	t.Parallel()

	issuer, err := NewIssuer("secret", time.Minute)
	require.NoError(t, err)
	issuer.now = func() time.Time { return time.Now().Add(-time.Hour) }

	tok, err := issuer.Issue("u1")
	require.NoError(t, err)

	issuer.now = time.Now
	_, err = issuer.Verify(tok)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerifyWrongSecret(t *testing.T) {
	t.Parallel()

	a, _ := NewIssuer("right-secret", time.Hour)
	b, _ := NewIssuer("wrong-secret", time.Hour)

	tok, err := a.Issue("u2")
	require.NoError(t, err)

	_, err = b.Verify(tok)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerifyMalformedAndMissing(t *testing.T) {
	t.Parallel()

	issuer, _ := NewIssuer("k", time.Hour)

	_, err := issuer.Verify("not.a.jwt")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = issuer.Verify("")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestNewIssuerRequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := NewIssuer("", time.Hour)
	assert.Error(t, err)
}

func TestCookieTransportRoundTrip(t *testing.T) {
	t.Parallel()

	tr := CookieTransport{Secure: true, MaxAge: DefaultTTL}
	rec := httptest.NewRecorder()
	tr.Set(rec, "abc")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, DefaultCookieName, c.Name)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteNoneMode, c.SameSite)
	assert.Equal(t, int(DefaultTTL.Seconds()), c.MaxAge)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(c)
	assert.Equal(t, "abc", tr.Extract(req))

	assert.Equal(t, "", tr.Extract(httptest.NewRequest(http.MethodGet, "/", nil)))
}

func TestCookieTransportClear(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	CookieTransport{}.Clear(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.True(t, cookies[0].MaxAge < 0)
}
