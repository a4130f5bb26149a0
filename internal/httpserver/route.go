package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pocketdiner/pocket-diner/internal/session"
)

type Deps struct {
	MenuHandler     *MenuHTTP
	CartHandler     *CartHTTP
	CheckoutHandler *CheckoutHTTP
	Sessions        *session.Store
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	menu := e.Group("/menu")
	menu.GET("", d.MenuHandler.GetMenu)
	menu.GET("/search", d.MenuHandler.Search)
	menu.GET("/specials", d.MenuHandler.Specials)
	menu.GET("/:id", d.MenuHandler.GetItem)

	cart := e.Group("/cart")
	cart.Use(d.Sessions.Middleware)
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("", d.CartHandler.AddToCart)
	cart.PATCH("/items/:id", d.CartHandler.SetQuantity)
	cart.DELETE("/items/:id", d.CartHandler.RemoveItem)

	co := e.Group("/checkout")
	co.Use(d.Sessions.Middleware)
	co.GET("", d.CheckoutHandler.GetCheckout)
	co.PATCH("", d.CheckoutHandler.SetField)
	co.POST("/submit", d.CheckoutHandler.Submit)
}
