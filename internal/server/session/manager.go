package session

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/pkg/errors"
)

// TokenTTL is the lifetime of an issued session token.
const TokenTTL = 24 * time.Hour

const issuer = "github.com/technest/technest"

type (
	// A Manager issues and verifies the signed session tokens carried by
	// the session cookie.
	Manager interface {
		// Issue creates a signed token bound to the given identity.
		Issue(identity Identity) (string, error)
		// Verify validates a token and extracts its identity.
		Verify(token string) (Identity, error)
		// Cookie returns the scoped session cookie carrying the token.
		Cookie(token string) *http.Cookie
		// ClearCookie returns an expired cookie with the same scope
		// attributes, so the browser actually drops the session.
		ClearCookie() *http.Cookie
		// CookieName returns the name of the session cookie.
		CookieName() string
	}

	manager struct {
		signingKey []byte
		cookieName string
		production bool
	}
)

// NewManager returns a new manager. In the production posture the cookie is
// Secure and cross-site capable; the local posture relaxes it for plain
// HTTP development.
func NewManager(signingKey []byte, cookieName string, production bool) Manager {
	return &manager{
		signingKey: signingKey,
		cookieName: cookieName,
		production: production,
	}
}

func (m *manager) Issue(identity Identity) (string, error) {
	now := time.Now()

	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = identity.UserID
	claims["email"] = identity.Email
	claims["iss"] = issuer
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(TokenTTL).Unix()

	t, err := token.SignedString(m.signingKey)
	return t, errors.Wrap(err, "could not sign session token")
}

func (m *manager) Verify(token string) (Identity, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.signingKey, nil
	})
	if err != nil {
		return Identity{}, errors.Wrap(err, "could not verify session token")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return Identity{}, errors.New("invalid session token")
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Identity{}, errors.New("session token has no user id")
	}
	email, _ := claims["email"].(string)

	return Identity{UserID: userID, Email: email}, nil
}

func (m *manager) Cookie(token string) *http.Cookie {
	cookie := m.scoped()
	cookie.Value = token
	cookie.Expires = time.Now().Add(TokenTTL)
	return cookie
}

func (m *manager) ClearCookie() *http.Cookie {
	cookie := m.scoped()
	cookie.Expires = time.Unix(0, 0)
	cookie.MaxAge = -1
	return cookie
}

func (m *manager) CookieName() string {
	return m.cookieName
}

func (m *manager) scoped() *http.Cookie {
	cookie := &http.Cookie{
		Name:     m.cookieName,
		Path:     "/",
		HttpOnly: true,
	}
	if m.production {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	} else {
		cookie.SameSite = http.SameSiteLaxMode
	}
	return cookie
}
