package session

import (
	"encoding/json"
	"fmt"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

// Keys names where the auth values live. They are configurable so several
// panels can share one store.
type Keys struct {
	Token string
	User  string
	Role  string
}

func DefaultKeys() Keys {
	return Keys{Token: "adminToken", User: "adminUser", Role: "adminRole"}
}

const (
	ViewTable = "table"
	ViewGrid  = "grid"
)

// Session reads and writes auth and preferences through a Store. It
// satisfies listview.Preferences.
type Session struct {
	store Store
	keys  Keys
	title cases.Caser
}

// New fills empty key names from DefaultKeys.
func New(store Store, keys Keys) *Session {
	def := DefaultKeys()
	if keys.Token == "" {
		keys.Token = def.Token
	}
	if keys.User == "" {
		keys.User = def.User
	}
	if keys.Role == "" {
		keys.Role = def.Role
	}
	return &Session{store: store, keys: keys, title: cases.Title(language.Und, cases.NoLower)}
}

// ════════════════════════════════════════════════════════════
// Auth
// ════════════════════════════════════════════════════════════

func (s *Session) Token() string {
	v, _ := s.store.Get(s.keys.Token)
	return v
}

func (s *Session) Role() string {
	v, _ := s.store.Get(s.keys.Role)
	return v
}

// User is false when nobody is signed in or the stored value is unreadable.
func (s *Session) User() (models.AdminResponse, bool) {
	var u models.AdminResponse
	raw, ok := s.store.Get(s.keys.User)
	if !ok || raw == "" {
		return u, false
	}
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return u, false
	}
	return u, true
}

func (s *Session) SaveLogin(resp models.AdminLoginResponse) error {
	user, err := json.Marshal(resp.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.store.Set(s.keys.Token, resp.Token); err != nil {
		return err
	}
	if err := s.store.Set(s.keys.User, string(user)); err != nil {
		return err
	}
	return s.store.Set(s.keys.Role, resp.User.Role)
}

// Clear signs out. Preferences survive.
func (s *Session) Clear() error {
	return s.store.Delete(s.keys.Token, s.keys.User, s.keys.Role)
}

// ════════════════════════════════════════════════════════════
// Preferences
// ════════════════════════════════════════════════════════════

func (s *Session) viewModeKey(entity string) string { return entity + "ViewMode" }

func (s *Session) showInactiveKey(entity string) string {
	return "showInactive" + s.title.String(entity)
}

// ViewMode defaults to ViewTable.
func (s *Session) ViewMode(entity string) string {
	v, ok := s.store.Get(s.viewModeKey(entity))
	if !ok || (v != ViewTable && v != ViewGrid) {
		return ViewTable
	}
	return v
}

func (s *Session) SetViewMode(entity, mode string) error {
	if mode != ViewTable && mode != ViewGrid {
		return fmt.Errorf("view mode must be %q or %q, got %q", ViewTable, ViewGrid, mode)
	}
	return s.store.Set(s.viewModeKey(entity), mode)
}

// ShowInactive defaults to true: a fresh screen lists everything.
func (s *Session) ShowInactive(entity string) bool {
	v, ok := s.store.Get(s.showInactiveKey(entity))
	if !ok {
		return true
	}
	show, err := strconv.ParseBool(v)
	if err != nil {
		return true
	}
	return show
}

func (s *Session) SetShowInactive(entity string, show bool) error {
	return s.store.Set(s.showInactiveKey(entity), strconv.FormatBool(show))
}
