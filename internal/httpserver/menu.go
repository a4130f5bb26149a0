package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pocketdiner/pocket-diner/internal/logging"
	"github.com/pocketdiner/pocket-diner/internal/service"
	"github.com/pocketdiner/pocket-diner/internal/transport"
	"github.com/pocketdiner/pocket-diner/internal/util"
)

type MenuHTTP struct {
	Svc *service.MenuService
}

func pageParams(c echo.Context) (from, size int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ = strconv.Atoi(c.QueryParam("size"))
	return util.Calculate(page, size)
}

func (h *MenuHTTP) GetMenu(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.list")

	from, size := pageParams(c)
	total, items, err := h.Svc.List(ctx, from, size)
	if err != nil {
		l.Error("list_menu_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, transport.MenuListResponse{Total: total, Items: items})
}

func (h *MenuHTTP) GetItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.get")

	item, err := h.Svc.Get(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, "menu item not found")
		}
		l.Error("get_menu_item_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, item)
}

func (h *MenuHTTP) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.search")

	query := c.QueryParam("q")
	from, size := pageParams(c)

	total, items, err := h.Svc.Search(ctx, query, from, size)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.JSON(http.StatusBadRequest, "q required")
		}
		l.Error("search_menu_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, transport.MenuListResponse{Total: total, Items: items})
}

func (h *MenuHTTP) Specials(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.specials")

	items, err := h.Svc.Specials(ctx)
	if err != nil {
		l.Error("specials_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, items)
}
