package auth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"

	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

// ErrNoToken is returned by a token manager holding no key.
var ErrNoToken = errors.New("no API token available")

// TokenManager supplies the bearer token for each request.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
}

// StaticTokenManager serves a fixed API key. MailerSend keys do not expire,
// so there is nothing to refresh; SetToken exists for key rotation.
type StaticTokenManager struct {
	mutex sync.RWMutex
	token string
}

// NewStaticTokenManager creates a token manager for key.
func NewStaticTokenManager(key string) *StaticTokenManager {
	return &StaticTokenManager{token: strings.TrimSpace(key)}
}

// GetToken returns the key.
func (m *StaticTokenManager) GetToken(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.token == "" {
		return "", ErrNoToken
	}

	return m.token, nil
}

// SetToken replaces the key used by subsequent requests.
func (m *StaticTokenManager) SetToken(key string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.token = strings.TrimSpace(key)
}

// ResolveAPIKey picks the API key: explicit wins, then the
// MAILERSEND_API_KEY environment variable, then the same variable read from
// envFile. The process environment is never modified.
func ResolveAPIKey(explicit, envFile string) (string, error) {
	if key := strings.TrimSpace(explicit); key != "" {
		return key, nil
	}

	if key := strings.TrimSpace(os.Getenv(mailersend.APIKeyEnv)); key != "" {
		return key, nil
	}

	if envFile != "" {
		values, err := godotenv.Read(envFile)
		if err != nil {
			return "", fmt.Errorf("reading env file %s: %w", envFile, err)
		}

		if key := strings.TrimSpace(values[mailersend.APIKeyEnv]); key != "" {
			return key, nil
		}
	}

	return "", mailersend.ErrMissingAPIKey
}

// MaskKey hides all but the last visible characters of key.
func MaskKey(key string, visible int) string {
	if len(key) <= visible {
		return strings.Repeat("*", len(key))
	}

	return strings.Repeat("*", len(key)-visible) + key[len(key)-visible:]
}
