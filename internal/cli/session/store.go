package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/zalando/go-keyring"
)

const keyringService = "sevenplus-cli"

// TokenStore persists the bearer token between runs. Load returns an empty
// token (and nil error) when nothing is stored.
type TokenStore interface {
	Save(token string) error
	Load() (string, error)
	Delete() error
}

// UserStore persists the last known user snapshot. Load returns (nil, nil)
// when nothing is stored.
type UserStore interface {
	Save(u *User) error
	Load() (*User, error)
	Delete() error
}

// serverKey derives a per-server storage key so sessions against different
// backends don't clobber each other.
func serverKey(serverURL string) string {
	if u, err := url.Parse(serverURL); err == nil && u.Host != "" {
		return u.Host
	}
	return strings.NewReplacer("/", "_", ":", "_").Replace(serverURL)
}

// keyringTokenStore stores the token in the OS keychain/credential manager.
type keyringTokenStore struct {
	key string
}

// NewKeyringTokenStore returns a TokenStore backed by the OS keyring,
// scoped to the given server URL.
func NewKeyringTokenStore(serverURL string) TokenStore {
	return &keyringTokenStore{key: fmt.Sprintf("auth_token-%s", serverKey(serverURL))}
}

func (s *keyringTokenStore) Save(token string) error {
	if err := keyring.Set(keyringService, s.key, token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

func (s *keyringTokenStore) Load() (string, error) {
	token, err := keyring.Get(keyringService, s.key)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to load token: %w", err)
	}
	return token, nil
}

func (s *keyringTokenStore) Delete() error {
	if err := keyring.Delete(keyringService, s.key); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}

// fileUserStore keeps the user snapshot as JSON under the user config dir.
type fileUserStore struct {
	path string
}

// NewFileUserStore returns a UserStore writing to
// ~/.config/sevenplus/user-<host>.json, scoped to the given server URL.
func NewFileUserStore(serverURL string) (UserStore, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	dir := filepath.Join(homeDir, ".config", "sevenplus")
	name := fmt.Sprintf("user-%s.json", serverKey(serverURL))
	return &fileUserStore{path: filepath.Join(dir, name)}, nil
}

func (s *fileUserStore) Save(u *User) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(u, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal user snapshot: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write user snapshot: %w", err)
	}
	return nil
}

func (s *fileUserStore) Load() (*User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read user snapshot: %w", err)
	}
	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("failed to parse user snapshot: %w", err)
	}
	return &u, nil
}

func (s *fileUserStore) Delete() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete user snapshot: %w", err)
	}
	return nil
}
