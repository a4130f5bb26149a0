package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pocketdiner/pocket-diner/internal/cart"
	"github.com/pocketdiner/pocket-diner/internal/checkout"
	"github.com/pocketdiner/pocket-diner/internal/models"
	"github.com/pocketdiner/pocket-diner/internal/repo"
	"github.com/pocketdiner/pocket-diner/internal/service"
	"github.com/pocketdiner/pocket-diner/internal/session"
)

type testEnv struct {
	T        *testing.T
	E        *echo.Echo
	Cart     *CartHTTP
	Checkout *CheckoutHTTP
	Menu     *MenuHTTP
	St       *session.State
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.MenuItem{}))

	menuRepo := &repo.GormRepo{DB: db}
	require.NoError(t, menuRepo.SeedMenu(context.Background(), models.DefaultMenu()))

	menuSvc := &service.MenuService{Repo: menuRepo, Index: "menu_items"}

	st := &session.State{
		ID:       uuid.New(),
		Cart:     cart.New(decimal.RequireFromString("0.08"), cart.DemoSeed()),
		Checkout: checkout.New(),
	}

	return &testEnv{
		T:        t,
		E:        echo.New(),
		Cart:     &CartHTTP{Menu: menuSvc},
		Checkout: &CheckoutHTTP{},
		Menu:     &MenuHTTP{Svc: menuSvc},
		St:       st,
	}
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	c.Set(session.ContextKey, env.St)
	return rec, c
}

func (env *testEnv) fillValidCheckout() {
	fields := map[string]string{
		"name":       "Nobita Nobi",
		"email":      "nobita@doraemon.com",
		"phone":      "09012345678",
		"address":    "123 Anywhere Street",
		"city":       "Tokyo",
		"postalCode": "123-4567",
		"cardNumber": "4111111111111111",
		"expiryDate": "09/27",
		"cvv":        "123",
	}
	for name, value := range fields {
		require.NoError(env.T, env.St.Checkout.SetField(name, value))
	}
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
