package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pocketdiner/pocket-diner/internal/cart"
	"github.com/pocketdiner/pocket-diner/internal/logging"
	"github.com/pocketdiner/pocket-diner/internal/service"
	"github.com/pocketdiner/pocket-diner/internal/session"
	"github.com/pocketdiner/pocket-diner/internal/transport"
)

type CartHTTP struct {
	Menu *service.MenuService
}

func sessionFrom(c echo.Context) (*session.State, error) {
	st, ok := session.FromEchoContext(c)
	if !ok {
		return nil, errors.New("no session in context")
	}
	return st, nil
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	st, err := sessionFrom(c)
	if err != nil {
		l.Error("get_cart_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, transport.NewCartResponse(st.Cart.Items(), st.Cart.Totals()))
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	st, err := sessionFrom(c)
	if err != nil {
		l.Error("add_to_cart_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	var req transport.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}
	if req.ItemID == "" {
		l.Warn("add_to_cart_error", "status", 400)
		return c.JSON(http.StatusBadRequest, "item_id required")
	}

	item, err := h.Menu.Get(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("add_to_cart_not_found", "status", 404, "item_id", req.ItemID)
			return c.JSON(http.StatusNotFound, "menu item not found")
		}
		l.Error("add_to_cart_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	st.Cart.Add(cart.Item{
		ID:        item.ID,
		Name:      item.Name,
		UnitPrice: item.Price,
		Quantity:  req.Quantity,
	})

	l.Info("item_added_to_cart", "item_id", item.ID)
	return c.JSON(http.StatusCreated, transport.NewCartResponse(st.Cart.Items(), st.Cart.Totals()))
}

func (h *CartHTTP) SetQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.set_quantity")

	st, err := sessionFrom(c)
	if err != nil {
		l.Error("set_quantity_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	var req transport.SetQuantityRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("set_quantity_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	// Malformed quantities are normalized, never rejected.
	st.Cart.SetQuantityFromInput(c.Param("id"), req.Quantity)

	return c.JSON(http.StatusOK, transport.NewCartResponse(st.Cart.Items(), st.Cart.Totals()))
}

func (h *CartHTTP) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	st, err := sessionFrom(c)
	if err != nil {
		l.Error("remove_item_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	// Removing an unknown id is a no-op, not an error.
	st.Cart.Remove(c.Param("id"))

	return c.JSON(http.StatusOK, transport.NewCartResponse(st.Cart.Items(), st.Cart.Totals()))
}
