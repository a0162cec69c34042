package client

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// UserKind is the session-only role flag: "user" or "admin".
type UserKind string

const (
	KindUser  UserKind = "user"
	KindAdmin UserKind = "admin"
)

// DefaultLanguage is used when no preference has been saved.
const DefaultLanguage = "en"

// Prefs is the persisted local state: the current-user flag and the
// language preference. Both are non-authoritative session conveniences.
type Prefs struct {
	path string

	CurrentUser *AuthUser `json:"currentUser,omitempty"`
	Language    string    `json:"language,omitempty"`
}

// AuthUser is the saved current-user flag.
type AuthUser struct {
	Kind  UserKind `json:"kind"`
	Email string   `json:"email,omitempty"`
}

// LoadPrefs reads preferences from the given file. A missing or malformed
// file is treated as absent state and yields defaults, never an error.
func LoadPrefs(path string) *Prefs {
	prefs := &Prefs{path: path, Language: DefaultLanguage}

	data, err := os.ReadFile(path)
	if err != nil {
		return prefs
	}

	var stored Prefs
	if err := json.Unmarshal(data, &stored); err != nil {
		return prefs
	}

	if stored.CurrentUser != nil {
		switch stored.CurrentUser.Kind {
		case KindUser, KindAdmin:
			prefs.CurrentUser = stored.CurrentUser
		}
	}
	if stored.Language != "" {
		prefs.Language = stored.Language
	}
	return prefs
}

// Save writes the preferences back to disk.
func (p *Prefs) Save() error {
	if dir := filepath.Dir(p.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p.path, data, 0o600)
}

// SetCurrentUser records the signed-in user flag.
func (p *Prefs) SetCurrentUser(kind UserKind, email string) error {
	p.CurrentUser = &AuthUser{Kind: kind, Email: email}
	return p.Save()
}

// ClearCurrentUser removes the signed-in user flag (logout).
func (p *Prefs) ClearCurrentUser() error {
	p.CurrentUser = nil
	return p.Save()
}

// IsAdmin reports whether the saved current user is an admin.
func (p *Prefs) IsAdmin() bool {
	return p.CurrentUser != nil && p.CurrentUser.Kind == KindAdmin
}

// SetLanguage records the language preference.
func (p *Prefs) SetLanguage(lang string) error {
	p.Language = lang
	return p.Save()
}
