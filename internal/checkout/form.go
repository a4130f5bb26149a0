package checkout

type OrderType string

const (
	OrderTypeDelivery OrderType = "delivery"
	OrderTypePickup   OrderType = "pickup"
)

func (t OrderType) Valid() bool {
	return t == OrderTypeDelivery || t == OrderTypePickup
}

type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentDoraPay    PaymentMethod = "dorapay"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentCreditCard || m == PaymentDoraPay
}

// Form is the full checkout field snapshot. Which fields are required is
// never stored: it is recomputed from OrderType and PaymentMethod on every
// validation pass.
type Form struct {
	OrderType  OrderType `json:"order_type"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	PostalCode string    `json:"postal_code"`

	PaymentMethod PaymentMethod `json:"payment_method"`
	CardNumber    string        `json:"card_number"`
	ExpiryDate    string        `json:"expiry_date"`
	CVV           string        `json:"cvv"`
	SavePayment   bool          `json:"save_payment"`
}

func NewForm() Form {
	return Form{
		OrderType:     OrderTypeDelivery,
		PaymentMethod: PaymentCreditCard,
	}
}
