package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pocketdiner/pocket-diner/internal/checkout"
	"github.com/pocketdiner/pocket-diner/internal/events"
	"github.com/pocketdiner/pocket-diner/internal/logging"
	"github.com/pocketdiner/pocket-diner/internal/transport"
)

type CheckoutHTTP struct {
	Producer *events.Producer
}

func (h *CheckoutHTTP) GetCheckout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.get")

	st, err := sessionFrom(c)
	if err != nil {
		l.Error("get_checkout_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, transport.CheckoutResponse{
		Form:              st.Checkout.Form(),
		Errors:            st.Checkout.Errors(),
		SubmissionAllowed: st.Checkout.SubmissionAllowed(),
		Status:            st.Checkout.Status(),
	})
}

func (h *CheckoutHTTP) SetField(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.set_field")

	st, err := sessionFrom(c)
	if err != nil {
		l.Error("set_field_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	var req transport.SetFieldRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("set_field_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	if err := st.Checkout.SetField(req.Field, req.Value); err != nil {
		if errors.Is(err, checkout.ErrSubmitted) {
			l.Warn("set_field_error", "status", 410, "error", err)
			return c.JSON(http.StatusGone, "order already submitted")
		}
		l.Warn("set_field_error", "status", 400, "field", req.Field, "error", err)
		return c.JSON(http.StatusBadRequest, "unknown field")
	}

	return c.JSON(http.StatusOK, transport.CheckoutResponse{
		Form:              st.Checkout.Form(),
		Errors:            st.Checkout.Errors(),
		SubmissionAllowed: st.Checkout.SubmissionAllowed(),
		Status:            st.Checkout.Status(),
	})
}

func (h *CheckoutHTTP) Submit(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.submit")

	st, err := sessionFrom(c)
	if err != nil {
		l.Error("submit_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	// The receipt carries the ledger's real totals, not a placeholder.
	totals := st.Cart.Totals()
	order, err := st.Checkout.Submit(st.Cart.UnitCount(), totals.Subtotal, totals.Tax, totals.Total)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrValidation):
			l.Warn("submit_rejected", "status", 422, "error", err)
			return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
				"errors": st.Checkout.Errors(),
			})
		case errors.Is(err, checkout.ErrUnavailable):
			l.Warn("submit_unavailable", "status", 409, "error", err)
			return c.JSON(http.StatusConflict, map[string]string{
				"error": "submission unavailable: DoraPay is coming soon",
			})
		case errors.Is(err, checkout.ErrSubmitted):
			l.Warn("submit_error", "status", 410, "error", err)
			return c.JSON(http.StatusGone, "order already submitted")
		default:
			l.Error("submit_error", "status", 500, "error", err)
			return c.JSON(http.StatusInternalServerError, "internal error")
		}
	}

	h.Producer.PublishOrder(ctx, st.ID.String(), order)

	// The submitted instance is terminal; the next order starts clean.
	st.ResetCheckout()

	l.Info("order_accepted", "order_id", order.ID)
	return c.JSON(http.StatusCreated, transport.NewOrderResponse(order))
}
