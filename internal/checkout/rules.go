package checkout

import "regexp"

// Errors maps a field name to one human-readable message. The first violated
// rule wins per field.
type Errors map[string]string

type rule struct {
	field   string
	ok      func(Form) bool
	message string
}

var (
	emailRe      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	cardNumberRe = regexp.MustCompile(`^[0-9]{13,19}$`)
	expiryRe     = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)
	cvvRe        = regexp.MustCompile(`^[0-9]{3,4}$`)
)

var baseRules = []rule{
	{"orderType", func(f Form) bool { return f.OrderType.Valid() }, "Please select an order type."},
	{"name", func(f Form) bool { return len(f.Name) >= 2 }, "Name must be at least 2 characters."},
	{"email", func(f Form) bool { return emailRe.MatchString(f.Email) }, "Invalid email address."},
	{"phone", func(f Form) bool { return len(f.Phone) >= 10 }, "Phone number must be at least 10 digits."},
	{"phone", func(f Form) bool { return len(f.Phone) <= 15 }, "Phone number too long."},
	{"paymentMethod", func(f Form) bool { return f.PaymentMethod.Valid() }, "Please select a payment method."},
}

// Conditional rules are keyed by the governing enum value. A new order type
// or payment method adds a map entry, not another branch. When the governing
// value has no entry the dependent fields are exempt regardless of content.
var orderTypeRules = map[OrderType][]rule{
	OrderTypeDelivery: {
		{"address", func(f Form) bool { return len(f.Address) >= 5 }, "Address is required for delivery."},
		{"city", func(f Form) bool { return len(f.City) >= 2 }, "City is required for delivery."},
		{"postalCode", func(f Form) bool { return len(f.PostalCode) >= 3 }, "Postal code is required for delivery."},
	},
}

var paymentMethodRules = map[PaymentMethod][]rule{
	PaymentCreditCard: {
		{"cardNumber", func(f Form) bool { return cardNumberRe.MatchString(f.CardNumber) }, "Valid card number is required."},
		{"expiryDate", func(f Form) bool { return expiryRe.MatchString(f.ExpiryDate) }, "Valid expiry date (MM/YY) is required."},
		{"cvv", func(f Form) bool { return cvvRe.MatchString(f.CVV) }, "Valid CVV is required."},
	},
}

// Validate runs every unconditional rule, then the two conditional tables
// independently. It never short-circuits across fields, so a submission can
// report several field errors at once. Pure and idempotent.
func Validate(f Form) Errors {
	errs := Errors{}
	apply := func(rules []rule) {
		for _, r := range rules {
			if _, taken := errs[r.field]; taken {
				continue
			}
			if !r.ok(f) {
				errs[r.field] = r.message
			}
		}
	}

	apply(baseRules)
	apply(orderTypeRules[f.OrderType])
	apply(paymentMethodRules[f.PaymentMethod])

	return errs
}

// SubmissionAllowed is the capability gate, independent of field validity:
// DoraPay is declared but not operational yet, so it blocks submission
// entirely.
func SubmissionAllowed(f Form) bool {
	return f.PaymentMethod != PaymentDoraPay
}
