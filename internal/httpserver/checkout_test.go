package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketdiner/pocket-diner/internal/checkout"
	"github.com/pocketdiner/pocket-diner/internal/transport"
)

func TestGetCheckout_Defaults(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/checkout", nil)
	require.NoError(t, env.Checkout.GetCheckout(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.CheckoutResponse
	decodeJSON(t, rec, &resp)

	assert.Equal(t, checkout.OrderTypeDelivery, resp.Form.OrderType)
	assert.Equal(t, checkout.PaymentCreditCard, resp.Form.PaymentMethod)
	assert.True(t, resp.SubmissionAllowed)
	assert.Equal(t, checkout.StatusEditing, resp.Status)
	assert.Empty(t, resp.Errors)
}

func TestSetField(t *testing.T) {
	env := newTestEnv(t)

	load := transport.SetFieldRequest{Field: "name", Value: "Nobita Nobi"}
	rec, c := env.doJSONRequest(http.MethodPatch, "/checkout", load)
	require.NoError(t, env.Checkout.SetField(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.CheckoutResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "Nobita Nobi", resp.Form.Name)
}

func TestSetField_Unknown(t *testing.T) {
	env := newTestEnv(t)

	load := transport.SetFieldRequest{Field: "favoriteGadget", Value: "take-copter"}
	rec, c := env.doJSONRequest(http.MethodPatch, "/checkout", load)
	require.NoError(t, env.Checkout.SetField(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetField_DoraPayClosesGate(t *testing.T) {
	env := newTestEnv(t)

	load := transport.SetFieldRequest{Field: "paymentMethod", Value: "dorapay"}
	rec, c := env.doJSONRequest(http.MethodPatch, "/checkout", load)
	require.NoError(t, env.Checkout.SetField(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.CheckoutResponse
	decodeJSON(t, rec, &resp)
	assert.False(t, resp.SubmissionAllowed)
}

func TestSubmit_UsesRealCartTotals(t *testing.T) {
	env := newTestEnv(t)
	env.fillValidCheckout()

	rec, c := env.doJSONRequest(http.MethodPost, "/checkout/submit", nil)
	require.NoError(t, env.Checkout.Submit(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp transport.OrderResponse
	decodeJSON(t, rec, &resp)

	assert.NotEmpty(t, resp.OrderID)
	assert.Equal(t, "delivery", resp.OrderType)
	assert.Equal(t, 3, resp.ItemCount)
	assert.Equal(t, "19.00", resp.Subtotal)
	assert.Equal(t, "1.52", resp.Tax)
	assert.Equal(t, "20.52", resp.Total)
}

func TestSubmit_ValidationErrors(t *testing.T) {
	env := newTestEnv(t)
	env.fillValidCheckout()
	require.NoError(t, env.St.Checkout.SetField("address", ""))

	rec, c := env.doJSONRequest(http.MethodPost, "/checkout/submit", nil)
	require.NoError(t, env.Checkout.Submit(c))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	decodeJSON(t, rec, &resp)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "Address is required for delivery.", resp.Errors["address"])
}

func TestSubmit_DoraPayUnavailable(t *testing.T) {
	env := newTestEnv(t)
	env.fillValidCheckout()
	require.NoError(t, env.St.Checkout.SetField("paymentMethod", "dorapay"))

	rec, c := env.doJSONRequest(http.MethodPost, "/checkout/submit", nil)
	require.NoError(t, env.Checkout.Submit(c))
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestSubmit_StartsFreshInstance(t *testing.T) {
	env := newTestEnv(t)
	env.fillValidCheckout()

	rec, c := env.doJSONRequest(http.MethodPost, "/checkout/submit", nil)
	require.NoError(t, env.Checkout.Submit(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	// The submitted instance is discarded; the session edits a new one.
	assert.Equal(t, checkout.StatusEditing, env.St.Checkout.Status())
	assert.Empty(t, env.St.Checkout.Form().Name)
}
