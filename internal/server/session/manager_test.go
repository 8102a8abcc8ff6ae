package session_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/technest/technest/internal/server/session"
)

func TestManagerIssueAndVerify(t *testing.T) {
	m := session.NewManager([]byte("secret"), "technest_session", false)

	identity := session.Identity{UserID: "u1", Email: "george.abitbol@nowhere.lan"}
	token, err := m.Issue(identity)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	verified, err := m.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, identity, verified)
}

func TestManagerVerifyFailures(t *testing.T) {
	m := session.NewManager([]byte("secret"), "technest_session", false)

	_, err := m.Verify("not-a-token")
	assert.Error(t, err)

	// Token signed with another key.
	other := session.NewManager([]byte("other-secret"), "technest_session", false)
	token, err := other.Issue(session.Identity{UserID: "u1"})
	assert.NoError(t, err)

	_, err = m.Verify(token)
	assert.Error(t, err)
}

func TestManagerCookieScope(t *testing.T) {
	local := session.NewManager([]byte("secret"), "technest_session", false)

	cookie := local.Cookie("token42")
	assert.Equal(t, "technest_session", cookie.Name)
	assert.Equal(t, "token42", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.WithinDuration(t, time.Now().Add(session.TokenTTL), cookie.Expires, time.Minute)

	production := session.NewManager([]byte("secret"), "technest_session", true)

	cookie = production.Cookie("token42")
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
}

func TestManagerClearCookie(t *testing.T) {
	m := session.NewManager([]byte("secret"), "technest_session", true)

	issued := m.Cookie("token42")
	cleared := m.ClearCookie()

	// Scope attributes must match the issued cookie or browsers keep the stale copy.
	assert.Equal(t, issued.Name, cleared.Name)
	assert.Equal(t, issued.Path, cleared.Path)
	assert.Equal(t, issued.Secure, cleared.Secure)
	assert.Equal(t, issued.SameSite, cleared.SameSite)
	assert.Equal(t, issued.HttpOnly, cleared.HttpOnly)

	assert.Empty(t, cleared.Value)
	assert.Equal(t, -1, cleared.MaxAge)
	assert.True(t, cleared.Expires.Before(time.Now()))
}
