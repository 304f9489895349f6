package auth

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ErrNotLoggedIn is returned when an authenticated call is attempted
// without a stored token.
var ErrNotLoggedIn = errors.New("not logged in")

// Context is the single holder of the bearer token: set at login, cleared
// at logout, read-only everywhere else. The token is persisted to one file
// so a session survives between invocations, the same way the browser UI
// kept it under a fixed local-storage key.
type Context struct {
	mu    sync.RWMutex
	file  string
	token string
}

func NewContext(file string) *Context {
	return &Context{file: file}
}

// Load reads the persisted token. A missing file is the logged-out state,
// not an error.
func (c *Context) Load() error {
	data, err := os.ReadFile(c.file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read token file: %w", err)
	}

	c.mu.Lock()
	c.token = strings.TrimSpace(string(data))
	c.mu.Unlock()
	return nil
}

// SetToken stores the token in memory and persists it.
func (c *Context) SetToken(token string) error {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(c.file), 0o700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}
	if err := os.WriteFile(c.file, []byte(token), 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// Clear forgets the token and removes the file.
func (c *Context) Clear() error {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()

	if err := os.Remove(c.file); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}

func (c *Context) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Context) LoggedIn() bool {
	return c.Token() != ""
}

// ExpiresWithin reports whether the stored token's exp claim falls inside
// the given window. The client holds no signing secret, so the claims are
// decoded without verification; the server remains the authority and a
// stale token still just surfaces as a failed request. Tokens that cannot
// be decoded, or that carry no exp claim, are treated as expired.
func (c *Context) ExpiresWithin(window time.Duration) bool {
	token := c.Token()
	if token == "" {
		return true
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return true
	}
	return time.Until(claims.ExpiresAt.Time) < window
}
