package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/listview"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

var _ listview.Preferences = (*Session)(nil)

func login() models.AdminLoginResponse {
	return models.AdminLoginResponse{
		Token: "tok",
		User:  models.AdminResponse{ID: "a1", Email: "admin@federalparts.ph", Role: models.AdminRoleSuperAdmin},
	}
}

func TestSession_Auth(t *testing.T) {
	s := New(NewMemoryStore(), Keys{})
	_, ok := s.User()
	assert.False(t, ok)
	assert.Empty(t, s.Token())

	require.NoError(t, s.SaveLogin(login()))
	assert.Equal(t, "tok", s.Token())
	assert.Equal(t, models.AdminRoleSuperAdmin, s.Role())
	u, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, "admin@federalparts.ph", u.Email)

	require.NoError(t, s.SetViewMode("products", ViewGrid))
	require.NoError(t, s.Clear())
	assert.Empty(t, s.Token())
	assert.Equal(t, ViewGrid, s.ViewMode("products"), "preferences survive sign-out")
}

func TestSession_CustomKeys(t *testing.T) {
	store := NewMemoryStore()
	s := New(store, Keys{Token: "fpToken"})
	require.NoError(t, s.SaveLogin(login()))

	v, ok := store.Get("fpToken")
	require.True(t, ok)
	assert.Equal(t, "tok", v)
	_, ok = store.Get("adminToken")
	assert.False(t, ok)
	_, ok = store.Get("adminUser")
	assert.True(t, ok, "unset names fall back to the defaults")
}

func TestSession_Preferences(t *testing.T) {
	store := NewMemoryStore()
	s := New(store, DefaultKeys())

	assert.Equal(t, ViewTable, s.ViewMode("brands"))
	assert.True(t, s.ShowInactive("brands"))

	require.NoError(t, s.SetViewMode("brands", ViewGrid))
	require.NoError(t, s.SetShowInactive("brands", false))
	assert.Error(t, s.SetViewMode("brands", "carousel"))

	assert.Equal(t, ViewGrid, s.ViewMode("brands"))
	assert.False(t, s.ShowInactive("brands"))
	assert.True(t, s.ShowInactive("categories"))

	v, _ := store.Get("brandsViewMode")
	assert.Equal(t, "grid", v)
	v, _ = store.Get("showInactiveBrands")
	assert.Equal(t, "false", v)

	require.NoError(t, store.Set("showInactiveBrands", "maybe"))
	assert.True(t, s.ShowInactive("brands"), "unreadable values fall back to the default")
}

func TestFileStore_PersistsAcrossOpens(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "federalparts")

	fs, err := OpenFile(dir)
	require.NoError(t, err)
	s := New(fs, DefaultKeys())
	require.NoError(t, s.SaveLogin(login()))
	require.NoError(t, s.SetShowInactive("products", false))

	info, err := os.Stat(fs.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	reopened, err := OpenFile(dir)
	require.NoError(t, err)
	s = New(reopened, DefaultKeys())
	assert.Equal(t, "tok", s.Token())
	assert.False(t, s.ShowInactive("products"))

	require.NoError(t, s.Clear())
	reopened, err = OpenFile(dir)
	require.NoError(t, err)
	assert.Empty(t, New(reopened, DefaultKeys()).Token())
}

func TestFileStore_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{not json"), 0o600))

	_, err := OpenFile(dir)
	assert.ErrorContains(t, err, "parse session")
}

func TestSession_DrivesControllerDefaults(t *testing.T) {
	s := New(NewMemoryStore(), DefaultKeys())
	require.NoError(t, s.SetShowInactive("categories", false))

	ctrl, err := listview.NewController(listview.Config[models.Category]{
		Schema: models.CategorySchema(),
		Source: listview.SourceFunc[models.Category](func(context.Context) ([]models.Category, error) {
			return nil, nil
		}),
		Prefs: s,
	})
	require.NoError(t, err)
	assert.Equal(t, listview.StatusActiveOnly, ctrl.Filter().Status)

	require.NoError(t, ctrl.SetShowInactive(true))
	assert.True(t, s.ShowInactive("categories"))
}
