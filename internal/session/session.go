package session

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/securecookie"

	"github.com/noah-isme/campusai-api/pkg/config"
	appErrors "github.com/noah-isme/campusai-api/pkg/errors"
)

// Session is the server-side record behind one authenticated cookie.
type Session struct {
	ID        string    `json:"id"`
	UserID    int       `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session has passed its expiry.
func (s *Session) Expired(now time.Time) bool {
	return s == nil || now.After(s.ExpiresAt)
}

// Store persists sessions keyed by id. Absence is a nil session, not an
// error, so the backing store (memory, Redis) stays swappable.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

// Manager issues and resolves session cookies. The cookie value is the
// session id signed (and optionally encrypted) with securecookie; all
// session state lives server-side in the Store.
type Manager struct {
	store      Store
	codec      *securecookie.SecureCookie
	cookieName string
	ttl        time.Duration
	secure     bool
}

// NewManager wires a manager from configuration.
func NewManager(cfg config.SessionConfig, store Store) *Manager {
	var blockKey []byte
	if cfg.BlockKey != "" {
		blockKey = []byte(cfg.BlockKey)
	}
	return &Manager{
		store:      store,
		codec:      securecookie.New([]byte(cfg.HashKey), blockKey),
		cookieName: cfg.CookieName,
		ttl:        cfg.TTL,
		secure:     cfg.Secure,
	}
}

// Issue creates a session for the user and sets the cookie.
func (m *Manager) Issue(c *gin.Context, userID int) (*Session, error) {
	now := time.Now().UTC()
	sess := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}

	if err := m.store.Save(c.Request.Context(), sess); err != nil {
		return nil, err
	}

	encoded, err := m.codec.Encode(m.cookieName, sess.ID)
	if err != nil {
		return nil, err
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     m.cookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return sess, nil
}

// Resolve loads the session referenced by the request cookie. A missing,
// tampered, or expired cookie resolves to ErrUnauthorized.
func (m *Manager) Resolve(c *gin.Context) (*Session, error) {
	cookie, err := c.Request.Cookie(m.cookieName)
	if err != nil {
		return nil, appErrors.ErrUnauthorized
	}

	var id string
	if err := m.codec.Decode(m.cookieName, cookie.Value, &id); err != nil {
		return nil, appErrors.ErrUnauthorized
	}

	sess, err := m.store.Get(c.Request.Context(), id)
	if err != nil {
		return nil, err
	}
	if sess.Expired(time.Now().UTC()) {
		if sess != nil {
			_ = m.store.Delete(c.Request.Context(), id)
		}
		return nil, appErrors.ErrUnauthorized
	}

	return sess, nil
}

// Destroy deletes the server-side session and clears the cookie.
func (m *Manager) Destroy(c *gin.Context) error {
	if cookie, err := c.Request.Cookie(m.cookieName); err == nil {
		var id string
		if err := m.codec.Decode(m.cookieName, cookie.Value, &id); err == nil {
			if err := m.store.Delete(c.Request.Context(), id); err != nil {
				return err
			}
		}
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}
