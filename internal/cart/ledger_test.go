package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRate() decimal.Decimal {
	return decimal.RequireFromString("0.08")
}

func itemQty(t *testing.T, l *Ledger, id string) int {
	t.Helper()
	for _, it := range l.Items() {
		if it.ID == id {
			return it.Quantity
		}
	}
	t.Fatalf("item %s not in ledger", id)
	return 0
}

func TestLedger_SetQuantity_Clamps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		qty  int
		want int
	}{
		{name: "negative", qty: -3, want: 1},
		{name: "zero", qty: 0, want: 1},
		{name: "one", qty: 1, want: 1},
		{name: "many", qty: 7, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := New(testRate(), DemoSeed())
			l.SetQuantity("d1", tt.qty)
			assert.Equal(t, tt.want, itemQty(t, l, "d1"))
		})
	}
}

func TestLedger_SetQuantityFromInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want int
	}{
		{name: "plain number", raw: "4", want: 4},
		{name: "zero", raw: "0", want: 1},
		{name: "negative", raw: "-2", want: 1},
		{name: "empty", raw: "", want: 1},
		{name: "garbage", raw: "abc", want: 1},
		{name: "float", raw: "2.5", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := New(testRate(), DemoSeed())
			l.SetQuantityFromInput("g1", tt.raw)
			assert.Equal(t, tt.want, itemQty(t, l, "g1"))
		})
	}
}

func TestLedger_RemoveUnknownIsNoop(t *testing.T) {
	t.Parallel()

	l := New(testRate(), DemoSeed())
	before := l.Items()

	l.Remove("nope")

	assert.Equal(t, before, l.Items())
}

func TestLedger_Remove(t *testing.T) {
	t.Parallel()

	l := New(testRate(), DemoSeed())
	l.Remove("d1")

	require.Equal(t, 1, l.Len())
	assert.Equal(t, "g1", l.Items()[0].ID)
}

func TestLedger_Totals_Demo(t *testing.T) {
	t.Parallel()

	// 3.50*2 + 12.00*1 at 8% tax.
	l := New(testRate(), DemoSeed())
	totals := l.Totals()

	assert.Equal(t, "19.00", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "1.52", totals.Tax.StringFixed(2))
	assert.Equal(t, "20.52", totals.Total.StringFixed(2))
}

func TestLedger_Totals_OrderIndependent(t *testing.T) {
	t.Parallel()

	a := New(testRate(), DemoSeed())
	a.SetQuantity("d1", 5)
	a.Remove("g1")

	b := New(testRate(), DemoSeed())
	b.Remove("g1")
	b.SetQuantity("d1", 5)

	assert.True(t, a.Totals().Subtotal.Equal(b.Totals().Subtotal))
	assert.True(t, a.Totals().Total.Equal(b.Totals().Total))
}

func TestLedger_SubtotalMatchesSum(t *testing.T) {
	t.Parallel()

	l := New(testRate(), DemoSeed())
	l.Add(Item{ID: "s2", Name: "Strawberry Parfait", UnitPrice: decimal.RequireFromString("6.50"), Quantity: 3})
	l.SetQuantity("d1", 4)
	l.Remove("g1")
	l.SetQuantityFromInput("s2", "not a number")

	want := decimal.Zero
	for _, it := range l.Items() {
		want = want.Add(it.LineTotal())
	}
	assert.True(t, want.Equal(l.Totals().Subtotal))
}

func TestLedger_AddMergesById(t *testing.T) {
	t.Parallel()

	l := New(testRate(), DemoSeed())
	l.Add(Item{ID: "d1", Name: "Classic Red Bean Dorayaki", UnitPrice: decimal.RequireFromString("3.50"), Quantity: 3})

	require.Equal(t, 2, l.Len())
	assert.Equal(t, 5, itemQty(t, l, "d1"))

	l.Add(Item{ID: "s1", Name: "Sweet Potato Cake", UnitPrice: decimal.RequireFromString("5.00"), Quantity: 0})
	require.Equal(t, 3, l.Len())
	assert.Equal(t, 1, itemQty(t, l, "s1"))
}

func TestLedger_UnitCount(t *testing.T) {
	t.Parallel()

	l := New(testRate(), DemoSeed())
	assert.Equal(t, 3, l.UnitCount())

	l.SetQuantity("g1", 2)
	assert.Equal(t, 4, l.UnitCount())
}

func TestLedger_SubscribeSeesMutations(t *testing.T) {
	t.Parallel()

	l := New(testRate(), DemoSeed())

	var got []Event
	l.Subscribe(func(e Event) { got = append(got, e) })

	l.SetQuantity("d1", 3)
	l.Remove("g1")
	l.Remove("g1")           // no-op, no event
	l.SetQuantity("nope", 2) // unknown id, no event
	l.Add(Item{ID: "s1", UnitPrice: decimal.RequireFromString("5.00"), Quantity: 1})

	require.Len(t, got, 3)
	assert.Equal(t, Event{Kind: EventQuantityChanged, ItemID: "d1", Quantity: 3}, got[0])
	assert.Equal(t, Event{Kind: EventItemRemoved, ItemID: "g1"}, got[1])
	assert.Equal(t, Event{Kind: EventItemAdded, ItemID: "s1", Quantity: 1}, got[2])
}
