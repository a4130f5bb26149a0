package transport

import (
	"github.com/pocketdiner/pocket-diner/internal/cart"
	"github.com/pocketdiner/pocket-diner/internal/checkout"
	"github.com/pocketdiner/pocket-diner/internal/models"
)

type MenuListResponse struct {
	Total int64             `json:"total"`
	Items []models.MenuItem `json:"items"`
}

// Monetary values cross the wire as strings rounded to 2 decimal places.
// Rounding happens here and nowhere else: the core keeps full precision.

type CartItemResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type TotalsResponse struct {
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
}

type CartResponse struct {
	Items  []CartItemResponse `json:"items"`
	Totals TotalsResponse     `json:"totals"`
}

func NewCartResponse(items []cart.Item, totals cart.Totals) CartResponse {
	resp := CartResponse{
		Items:  make([]CartItemResponse, 0, len(items)),
		Totals: NewTotalsResponse(totals),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, CartItemResponse{
			ID:        it.ID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice.StringFixed(2),
			Quantity:  it.Quantity,
			LineTotal: it.LineTotal().StringFixed(2),
		})
	}
	return resp
}

func NewTotalsResponse(t cart.Totals) TotalsResponse {
	return TotalsResponse{
		Subtotal: t.Subtotal.StringFixed(2),
		Tax:      t.Tax.StringFixed(2),
		Total:    t.Total.StringFixed(2),
	}
}

type AddToCartRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// Quantity arrives as the raw text of the input control; the ledger
// normalizes whatever it gets.
type SetQuantityRequest struct {
	Quantity string `json:"quantity"`
}

type SetFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type CheckoutResponse struct {
	Form              checkout.Form   `json:"form"`
	Errors            checkout.Errors `json:"errors"`
	SubmissionAllowed bool            `json:"submission_allowed"`
	Status            checkout.Status `json:"status"`
}

type OrderResponse struct {
	OrderID       string `json:"order_id"`
	OrderType     string `json:"order_type"`
	PaymentMethod string `json:"payment_method"`
	ItemCount     int    `json:"item_count"`
	Subtotal      string `json:"subtotal"`
	Tax           string `json:"tax"`
	Total         string `json:"total"`
}

func NewOrderResponse(o *checkout.Order) OrderResponse {
	return OrderResponse{
		OrderID:       o.ID.String(),
		OrderType:     string(o.OrderType),
		PaymentMethod: string(o.PaymentMethod),
		ItemCount:     o.ItemCount,
		Subtotal:      o.Subtotal.StringFixed(2),
		Tax:           o.Tax.StringFixed(2),
		Total:         o.Total.StringFixed(2),
	}
}
