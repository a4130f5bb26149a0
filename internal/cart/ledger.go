package cart

import (
	"strconv"
	"sync"

	"github.com/shopspring/decimal"
)

// Item is one line in the cart. Quantity is always >= 1.
type Item struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

func (it Item) LineTotal() decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Ledger owns an ordered list of items keyed by id. Totals are derived on
// read and never stored. Rounding happens at the transport layer only.
type Ledger struct {
	mu       sync.Mutex
	taxRate  decimal.Decimal
	items    []Item
	watchers []func(Event)
}

func New(taxRate decimal.Decimal, seed []Item) *Ledger {
	l := &Ledger{taxRate: taxRate}
	l.items = make([]Item, 0, len(seed))
	for _, it := range seed {
		if it.Quantity < 1 {
			it.Quantity = 1
		}
		l.items = append(l.items, it)
	}
	return l
}

// SetQuantity never fails: anything below 1 clamps to 1. Unknown ids are
// ignored.
func (l *Ledger) SetQuantity(id string, qty int) {
	if qty < 1 {
		qty = 1
	}

	l.mu.Lock()
	found := false
	for i := range l.items {
		if l.items[i].ID == id {
			l.items[i].Quantity = qty
			found = true
			break
		}
	}
	l.mu.Unlock()

	if found {
		l.notify(Event{Kind: EventQuantityChanged, ItemID: id, Quantity: qty})
	}
}

// SetQuantityFromInput takes the raw text of a quantity input. Anything that
// does not parse as an integer is coerced to 1, same as out-of-range values.
func (l *Ledger) SetQuantityFromInput(id, raw string) {
	qty, err := strconv.Atoi(raw)
	if err != nil {
		qty = 1
	}
	l.SetQuantity(id, qty)
}

// Add merges by id: an existing line gains the quantity, a new line is
// appended at the end.
func (l *Ledger) Add(item Item) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	l.mu.Lock()
	merged := false
	qty := item.Quantity
	for i := range l.items {
		if l.items[i].ID == item.ID {
			l.items[i].Quantity += item.Quantity
			qty = l.items[i].Quantity
			merged = true
			break
		}
	}
	if !merged {
		l.items = append(l.items, item)
	}
	l.mu.Unlock()

	l.notify(Event{Kind: EventItemAdded, ItemID: item.ID, Quantity: qty})
}

// Remove is a no-op when the id is not present.
func (l *Ledger) Remove(id string) {
	l.mu.Lock()
	found := false
	for i := range l.items {
		if l.items[i].ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			found = true
			break
		}
	}
	l.mu.Unlock()

	if found {
		l.notify(Event{Kind: EventItemRemoved, ItemID: id})
	}
}

func (l *Ledger) Items() []Item {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

func (l *Ledger) Empty() bool {
	return l.Len() == 0
}

// UnitCount is the total number of units across all lines.
func (l *Ledger) UnitCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0
	for _, it := range l.items {
		n += it.Quantity
	}
	return n
}

// Totals is a pure function of the current item list. The sum is
// order-independent, so repeated recomputation is stable.
func (l *Ledger) Totals() Totals {
	l.mu.Lock()
	defer l.mu.Unlock()

	subtotal := decimal.Zero
	for _, it := range l.items {
		subtotal = subtotal.Add(it.LineTotal())
	}
	tax := subtotal.Mul(l.taxRate)

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
