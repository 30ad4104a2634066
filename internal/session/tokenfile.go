package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/basketeer/basketeer/internal/errors"
)

const (
	credentialsDir  = "basketeer"
	credentialsFile = "credentials.json"
)

// credentials is the on-disk shape of the persisted session token
type credentials struct {
	Token   string    `json:"token"`
	Phone   string    `json:"phone,omitempty"`
	SavedAt time.Time `json:"saved_at"`
}

// TokenFile persists the opaque session token in the user's config
// directory. An absent or unreadable file means anonymous on next load.
type TokenFile struct {
	path string
}

// NewTokenFile creates a TokenFile at the default location
// (e.g. ~/.config/basketeer/credentials.json)
func NewTokenFile() (*TokenFile, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSessionTokenLoad, "cannot resolve config directory", err)
	}
	return &TokenFile{path: filepath.Join(dir, credentialsDir, credentialsFile)}, nil
}

// NewTokenFileAt creates a TokenFile at an explicit path
func NewTokenFileAt(path string) *TokenFile {
	return &TokenFile{path: path}
}

// Path returns the location of the credentials file
func (t *TokenFile) Path() string {
	return t.path
}

// Save persists the token, creating the parent directory if needed.
// The file is written 0600: it holds a live credential.
func (t *TokenFile) Save(token, phone string) error {
	if err := os.MkdirAll(filepath.Dir(t.path), 0o700); err != nil {
		return errors.Wrap(errors.ErrCodeSessionTokenSave, "failed to create config directory", err)
	}

	data, err := json.MarshalIndent(credentials{
		Token:   token,
		Phone:   phone,
		SavedAt: time.Now().UTC(),
	}, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeSessionTokenSave, "failed to encode credentials", err)
	}

	if err := os.WriteFile(t.path, data, 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeSessionTokenSave, "failed to write credentials", err)
	}
	return nil
}

// Load returns the persisted token, or "" when none exists.
// A corrupt file is treated the same as an absent one.
func (t *TokenFile) Load() string {
	data, err := os.ReadFile(t.path)
	if err != nil {
		return ""
	}

	var creds credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return ""
	}
	return creds.Token
}

// Clear removes the persisted token. Removing an absent file is not an error.
func (t *TokenFile) Clear() error {
	if err := os.Remove(t.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeSessionTokenSave, "failed to remove credentials", err)
	}
	return nil
}
