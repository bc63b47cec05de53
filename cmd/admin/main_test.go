package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/client"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/config"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/database/dbtest"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/listview"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/routes"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/services"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/session"
)

const (
	testEmail    = "console@federalparts.ph"
	testPassword = "console-pw"
)

type console struct {
	t   *testing.T
	app *app
	out *bytes.Buffer
}

func newConsole(t *testing.T) *console {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Server: config.Server{AppEnv: "test", CORSOrigins: []string{"http://localhost:3000"}},
		Auth:   config.Auth{JWTSecret: "console-secret", JWTTTL: time.Hour},
		Images: config.Images{UploadsBaseURL: "http://localhost:5000", Placeholder: "none.png"},
	}
	db := dbtest.Open(t)
	jwt, err := services.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.JWTTTL)
	require.NoError(t, err)
	_, err = services.NewAdminAuthService(db, jwt).
		EnsureAdmin(context.Background(), testEmail, "Console", testPassword, models.AdminRoleSuperAdmin)
	require.NoError(t, err)

	router, err := routes.NewRouter(routes.Deps{Config: cfg, DB: db, Log: zap.NewNop()})
	require.NoError(t, err)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	out := new(bytes.Buffer)
	a, err := newApp(&config.Console{
		APIURL:   srv.URL + "/api",
		PageSize: 10,
		Timeout:  5 * time.Second,
	}, zap.NewNop(), session.NewMemoryStore(), strings.NewReader(""), out)
	require.NoError(t, err)
	a.now = func() time.Time { return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC) }
	return &console{t: t, app: a, out: out}
}

// run executes one command line and returns what it printed.
func (c *console) run(stdin string, args ...string) (string, error) {
	c.t.Helper()
	c.out.Reset()
	c.app.in = bufio.NewReader(strings.NewReader(stdin))
	err := rootCommand(c.app).Run(context.Background(), append([]string{"fpadmin"}, args...))
	return c.out.String(), err
}

func (c *console) mustRun(args ...string) string {
	c.t.Helper()
	out, err := c.run("", args...)
	require.NoError(c.t, err, out)
	return out
}

func (c *console) productID(sku string) string {
	c.t.Helper()
	products, err := c.app.api.Products.List(context.Background())
	require.NoError(c.t, err)
	for _, p := range products {
		if p.SKU == sku {
			return p.ID
		}
	}
	c.t.Fatalf("no product with sku %s", sku)
	return ""
}

func TestConsole_CatalogSession(t *testing.T) {
	c := newConsole(t)

	out := c.mustRun("login", "--email", testEmail, "--password", testPassword)
	assert.Contains(t, out, "signed in as "+testEmail+" (super_admin)")
	assert.NotEmpty(t, c.app.sess.Token())

	out = c.mustRun("whoami")
	assert.Contains(t, out, testEmail)

	// Invalid forms never reach the API.
	out, err := c.run("", "categories", "create", "--name", "X", "--image", "ftp://nope")
	require.ErrorIs(t, err, errValidation)
	assert.Contains(t, out, "name: must be at least 2 characters")
	assert.Contains(t, out, "image: must be an http(s) URL")

	out = c.mustRun("categories", "create", "--name", "Brakes")
	assert.Contains(t, out, "created category Brakes")
	cats, err := c.app.api.Categories.List(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 1)
	brakes := cats[0].ID

	c.mustRun("products", "create", "--name", "Front Brake Pad", "--sku", "FBP-1",
		"--price", "1450", "--stock", "2", "--category", brakes, "--brand", "Honda")
	c.mustRun("products", "create", "--name", "Rear Brake Shoe", "--sku", "RBS-1",
		"--price", "900", "--stock", "5", "--category", brakes)
	front, rear := c.productID("FBP-1"), c.productID("RBS-1")

	out = c.mustRun("products", "list", "--search", "brake", "--sort", "price", "--order", "desc")
	assert.Contains(t, out, "page 1 of 1, 2 matching")
	assert.Less(t, strings.Index(out, "Front Brake Pad"), strings.Index(out, "Rear Brake Shoe"))

	_, err = c.run("", "products", "list", "--sort", "colour")
	require.ErrorIs(t, err, listview.ErrUnknownSortKey)

	// Hiding inactive products is a stored preference.
	c.mustRun("products", "show-inactive", "false")
	out = c.mustRun("products", "bulk", "--action", "deactivate", "--ids", rear)
	assert.Contains(t, out, "deactivate: 1 of 1 succeeded")
	out = c.mustRun("products", "list")
	assert.Contains(t, out, "1 matching")
	assert.NotContains(t, out, "Rear Brake Shoe")
	assert.Contains(t, out, "inactive 1")

	out = c.mustRun("products", "update", "--price", "1500", front)
	assert.Contains(t, out, "updated product Front Brake Pad")
	p, err := c.app.api.Products.Get(context.Background(), front)
	require.NoError(t, err)
	assert.InDelta(t, 1500, p.Price, 0.001)
	assert.Equal(t, "Honda", p.Brand, "unset flags keep their value")
	assert.Empty(t, p.Image, "placeholder is not written back")

	c.mustRun("products", "view", "grid")
	out = c.mustRun("products", "list")
	assert.Contains(t, out, "Name      Front Brake Pad")

	// Delete asks first; anything but yes declines.
	out, err = c.run("n\n", "products", "bulk", "--action", "delete", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "Delete 1 selected item(s)? This cannot be undone. [y/N]")
	assert.Contains(t, out, "cancelled, nothing was changed")

	out, err = c.run("y\n", "products", "bulk", "--action", "delete", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "delete: 1 of 1 succeeded")

	// A category with products is refused, the rest of the batch goes on.
	c.mustRun("categories", "create", "--name", "Lights")
	out, err = c.run("yes\n", "categories", "bulk", "--action", "delete", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "delete: 1 of 2 succeeded")
	assert.Contains(t, out, brakes+": ")

	out = c.mustRun("brands", "list")
	assert.Contains(t, out, "no results", "the only branded product was deleted")

	c.mustRun("logout")
	assert.Empty(t, c.app.sess.Token())
	_, err = c.run("", "whoami")
	assert.ErrorIs(t, err, client.ErrUnauthorized)
	assert.Equal(t, "grid", c.app.sess.ViewMode("products"), "logout keeps preferences")
}

func TestConsole_Export(t *testing.T) {
	c := newConsole(t)
	c.mustRun("login", "--email", testEmail, "--password", testPassword)
	c.mustRun("categories", "create", "--name", "Chains")
	cats, err := c.app.api.Categories.List(context.Background())
	require.NoError(t, err)
	c.mustRun("products", "create", "--name", "Drive Chain", "--sku", "DC-1",
		"--price", "2100", "--stock", "3", "--category", cats[0].ID)

	dir := t.TempDir()
	csvPath := filepath.Join(dir, "products.csv")
	out := c.mustRun("products", "export", "--output", csvPath)
	assert.Contains(t, out, "wrote 1 rows to "+csvPath)
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "ID,Name,SKU,Category"))
	assert.Contains(t, string(data), "Drive Chain")

	pdfPath := filepath.Join(dir, "products.pdf")
	c.mustRun("products", "export", "--format", "pdf", "-o", pdfPath)
	data, err = os.ReadFile(pdfPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	empty := filepath.Join(dir, "none.csv")
	_, err = c.run("", "products", "export", "--search", "no such part", "--output", empty)
	require.ErrorIs(t, err, listview.ErrNothingToExport)
	assert.NoFileExists(t, empty)

	out = c.mustRun("categories", "export", "--output", "-")
	assert.Contains(t, out, "Chains")
}

func TestConsole_Dashboard(t *testing.T) {
	c := newConsole(t)

	// Every card fails without a token.
	_, err := c.run("", "dashboard")
	require.ErrorIs(t, err, client.ErrUnauthorized)

	c.mustRun("login", "--email", testEmail, "--password", testPassword)
	out := c.mustRun("dashboard")
	assert.Contains(t, out, "== Summary")
	assert.Contains(t, out, "revenue")
	assert.Contains(t, out, "PHP 0.00")
	assert.Contains(t, out, "== Recent orders")
	assert.Contains(t, out, "== Top products")
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{" yes \n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"sure\n", false},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.in), func(t *testing.T) {
			a := &app{in: bufio.NewReader(strings.NewReader(tt.in)), out: new(bytes.Buffer)}
			got, err := a.confirm(context.Background(), "Delete?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDescribe(t *testing.T) {
	assert.Contains(t, describe(&client.APIError{Status: 401, Message: "token expired"}), "fpadmin login")
	assert.Equal(t, "SKU already exists", describe(&client.APIError{Status: 409, Message: "SKU already exists"}))
	assert.Equal(t, "api error (500)", describe(&client.APIError{Status: 500}))
	assert.Equal(t, "boom", describe(errors.New("boom")))
}
