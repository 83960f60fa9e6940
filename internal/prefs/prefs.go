// Package prefs keeps per-browser playground preferences in a signed,
// encrypted cookie.
package prefs

import (
	"encoding/gob"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"

	"github.com/vango-dev/setclassname/pkg/classname"
)

func init() {
	gob.Register(Preferences{})
}

// ErrSecretTooShort is returned by NewStore for secrets under 64 bytes.
var ErrSecretTooShort = errors.New("prefs secret must be at least 64 bytes")

// Preferences is the cookie payload.
type Preferences struct {
	Prefix    string
	Debug     bool
	UpdatedAt time.Time
}

// Config converts p to a resolver configuration.
func (p Preferences) Config() classname.Config {
	return classname.Config{Prefix: p.Prefix, Debug: p.Debug}
}

// Store reads and writes the preferences cookie.
type Store struct {
	cookie *securecookie.SecureCookie
	name   string
	maxAge int
	secure bool
}

// NewStore creates a store. The first 32 bytes of secret are the hash key
// and the next 32 the block key.
func NewStore(secret string, maxAge time.Duration, secure bool) (*Store, error) {
	if len(secret) < 64 {
		return nil, ErrSecretTooShort
	}
	hashKey := []byte(secret)[:32]
	blockKey := []byte(secret)[32:64]

	return &Store{
		cookie: securecookie.New(hashKey, blockKey),
		name:   "setclassname_prefs",
		maxAge: int(maxAge.Seconds()),
		secure: secure,
	}, nil
}

// Get returns the stored preferences. A missing or tampered cookie yields
// the zero Preferences and false.
func (s *Store) Get(r *http.Request) (Preferences, bool) {
	cookie, err := r.Cookie(s.name)
	if err != nil {
		return Preferences{}, false
	}

	var p Preferences
	if err := s.cookie.Decode(s.name, cookie.Value, &p); err != nil {
		return Preferences{}, false
	}
	return p, true
}

// Set writes p to the response.
func (s *Store) Set(w http.ResponseWriter, p Preferences) error {
	p.UpdatedAt = time.Now()

	encoded, err := s.cookie.Encode(s.name, p)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    encoded,
		Path:     "/",
		MaxAge:   s.maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear expires the cookie.
func (s *Store) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
