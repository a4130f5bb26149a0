package cart

type EventKind string

const (
	EventItemAdded       EventKind = "item_added"
	EventQuantityChanged EventKind = "quantity_changed"
	EventItemRemoved     EventKind = "item_removed"
)

// Event describes one completed mutation of the ledger.
type Event struct {
	Kind     EventKind `json:"kind"`
	ItemID   string    `json:"item_id"`
	Quantity int       `json:"quantity,omitempty"`
}

// Subscribe registers a callback invoked after every mutation. Callbacks run
// outside the ledger lock, so they may call back into the ledger.
func (l *Ledger) Subscribe(fn func(Event)) {
	l.mu.Lock()
	l.watchers = append(l.watchers, fn)
	l.mu.Unlock()
}

func (l *Ledger) notify(e Event) {
	l.mu.Lock()
	watchers := make([]func(Event), len(l.watchers))
	copy(watchers, l.watchers)
	l.mu.Unlock()

	for _, fn := range watchers {
		fn(e)
	}
}
