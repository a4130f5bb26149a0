package checkout

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrValidation   = errors.New("validation")
	ErrUnavailable  = errors.New("payment method unavailable")
	ErrSubmitted    = errors.New("order already submitted")
	ErrUnknownField = errors.New("unknown field")
)

type Status string

const (
	StatusEditing   Status = "editing"
	StatusSubmitted Status = "submitted"
)

// Checkout is one form instance: it is edited field by field, validated as a
// whole on submit, and becomes terminal once submitted. A new order starts a
// new instance with defaults.
type Checkout struct {
	mu     sync.Mutex
	form   Form
	errs   Errors
	status Status
}

// Order is the receipt produced on acceptance. Totals are the cart's real
// totals, snapshotted at submission.
type Order struct {
	ID            uuid.UUID       `json:"id"`
	OrderType     OrderType       `json:"order_type"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address,omitempty"`
	City          string          `json:"city,omitempty"`
	PostalCode    string          `json:"postal_code,omitempty"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	SavePayment   bool            `json:"save_payment"`
	ItemCount     int             `json:"item_count"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
}

func New() *Checkout {
	return &Checkout{
		form:   NewForm(),
		errs:   Errors{},
		status: StatusEditing,
	}
}

func (c *Checkout) Form() Form {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

func (c *Checkout) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Errors returns the field errors from the last validation pass, for inline
// display.
func (c *Checkout) Errors() Errors {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(Errors, len(c.errs))
	for k, v := range c.errs {
		out[k] = v
	}
	return out
}

func (c *Checkout) SubmissionAllowed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return SubmissionAllowed(c.form)
}

// SetField applies one field edit. Field names follow the form payload
// ("orderType", "cardNumber", ...).
func (c *Checkout) SetField(name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status == StatusSubmitted {
		return ErrSubmitted
	}

	switch name {
	case "orderType":
		c.form.OrderType = OrderType(value)
	case "name":
		c.form.Name = value
	case "email":
		c.form.Email = value
	case "phone":
		c.form.Phone = value
	case "address":
		c.form.Address = value
	case "city":
		c.form.City = value
	case "postalCode":
		c.form.PostalCode = value
	case "paymentMethod":
		c.form.PaymentMethod = PaymentMethod(value)
	case "cardNumber":
		c.form.CardNumber = value
	case "expiryDate":
		c.form.ExpiryDate = value
	case "cvv":
		c.form.CVV = value
	case "savePayment":
		v, err := strconv.ParseBool(value)
		if err != nil {
			v = false
		}
		c.form.SavePayment = v
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return nil
}

// Submit validates the whole form, checks the submission gate and, when both
// pass, transitions to the terminal submitted state. On a validation failure
// the errors stay attached and the instance returns to editing.
func (c *Checkout) Submit(itemCount int, subtotal, tax, total decimal.Decimal) (*Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status == StatusSubmitted {
		return nil, ErrSubmitted
	}

	errs := Validate(c.form)
	c.errs = errs
	if len(errs) > 0 {
		return nil, fmt.Errorf("%d field(s) invalid: %w", len(errs), ErrValidation)
	}

	if !SubmissionAllowed(c.form) {
		return nil, fmt.Errorf("%s: %w", c.form.PaymentMethod, ErrUnavailable)
	}

	order := &Order{
		ID:            uuid.New(),
		OrderType:     c.form.OrderType,
		Name:          c.form.Name,
		Email:         c.form.Email,
		Phone:         c.form.Phone,
		PaymentMethod: c.form.PaymentMethod,
		SavePayment:   c.form.SavePayment,
		ItemCount:     itemCount,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         total,
	}
	if c.form.OrderType == OrderTypeDelivery {
		order.Address = c.form.Address
		order.City = c.form.City
		order.PostalCode = c.form.PostalCode
	}

	c.status = StatusSubmitted
	return order, nil
}
