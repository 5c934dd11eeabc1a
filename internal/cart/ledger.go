package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"lojinha/internal/model"
	"lojinha/internal/notify"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Ledger holds the items one session intends to purchase and computes the
// derived totals. It keeps insertion order for display, enforces at most one
// line item per product ID, and re-serialises itself to its durable store
// slot after every successful mutation.
//
// Notifications raised by a mutation are queued while the state transition
// runs and dispatched to the sink only after the ledger has settled, so a
// notification handler can never observe (or trigger) a half-applied update.
type Ledger struct {
	mu      sync.Mutex
	items   []*LineItem
	index   map[string]*LineItem
	pending []notify.Notification

	store    Store
	key      string
	notifier notify.Notifier
	logger   zerolog.Logger
}

// NewLedger creates an empty ledger bound to the given durable slot. Call
// Restore to rehydrate a previous session's snapshot.
func NewLedger(store Store, key string, notifier notify.Notifier, logger zerolog.Logger) *Ledger {
	return &Ledger{
		index:    make(map[string]*LineItem),
		store:    store,
		key:      key,
		notifier: notifier,
		logger:   logger.With().Str("component", "cart").Logger(),
	}
}

// Restore rehydrates the ledger from its durable slot. A missing, corrupt or
// non-array payload leaves the ledger empty; such failures are logged and
// never surfaced.
func (l *Ledger) Restore(ctx context.Context) {
	raw, err := l.store.Get(ctx, l.key)
	if err != nil {
		if err != ErrSnapshotNotFound {
			l.logger.Warn().Err(err).Str("key", l.key).Msg("failed to read cart snapshot")
		}
		return
	}

	var items []*LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		l.logger.Warn().Err(err).Str("key", l.key).Msg("corrupt cart snapshot, starting empty")
		return
	}

	l.mu.Lock()
	l.items = l.items[:0]
	l.index = make(map[string]*LineItem)
	for _, item := range items {
		if item == nil || item.ID == "" || item.Quantity <= 0 {
			continue
		}
		if _, exists := l.index[item.ID]; exists {
			continue
		}
		l.items = append(l.items, item)
		l.index[item.ID] = item
	}
	count := len(l.items)
	l.mu.Unlock()

	l.logger.Debug().Int("items", count).Msg("cart snapshot restored")
}

// AddItem inserts the product with quantity 1, or increments the existing
// line's quantity. The stored unit price and promo rule are never refreshed
// from the incoming product: the first-add snapshot wins for the session.
func (l *Ledger) AddItem(ctx context.Context, p ProductInput) {
	l.mu.Lock()
	if existing, ok := l.index[p.ID]; ok {
		existing.Quantity++
		l.queueLocked(notify.Notification{
			Title:       "Quantity updated",
			Description: fmt.Sprintf("%s - quantity increased to %d", existing.Name, existing.Quantity),
		})
	} else {
		item := normalise(p)
		l.items = append(l.items, item)
		l.index[item.ID] = item
		l.queueLocked(notify.Notification{
			Title:       "Product added",
			Description: fmt.Sprintf("%s was added to the cart", item.Name),
		})
	}
	snap := l.encodeLocked()
	l.mu.Unlock()

	l.persist(ctx, snap)
	l.flush()
}

// RemoveItem deletes the line item with the given product ID. Removing an
// absent ID is a no-op and raises no notification.
func (l *Ledger) RemoveItem(ctx context.Context, id string) {
	l.mu.Lock()
	item, ok := l.index[id]
	if !ok {
		l.mu.Unlock()
		return
	}
	l.removeLocked(id)
	l.queueLocked(notify.Notification{
		Title:       "Product removed",
		Description: fmt.Sprintf("%s was removed from the cart", item.Name),
	})
	snap := l.encodeLocked()
	l.mu.Unlock()

	l.persist(ctx, snap)
	l.flush()
}

// UpdateQuantity sets the quantity for a line item. A quantity of zero or
// less removes the item; an unknown ID is a no-op.
func (l *Ledger) UpdateQuantity(ctx context.Context, id string, quantity int) {
	if quantity <= 0 {
		l.RemoveItem(ctx, id)
		return
	}

	l.mu.Lock()
	item, ok := l.index[id]
	if !ok {
		l.mu.Unlock()
		return
	}
	item.Quantity = quantity
	snap := l.encodeLocked()
	l.mu.Unlock()

	l.persist(ctx, snap)
}

// Clear empties the ledger and always raises a cleared notification.
func (l *Ledger) Clear(ctx context.Context) {
	l.mu.Lock()
	l.items = nil
	l.index = make(map[string]*LineItem)
	l.queueLocked(notify.Notification{
		Title:       "Cart cleared",
		Description: "All items were removed from the cart",
	})
	snap := l.encodeLocked()
	l.mu.Unlock()

	l.persist(ctx, snap)
	l.flush()
}

// TotalItems returns the sum of all line quantities; 0 for an empty ledger.
func (l *Ledger) TotalItems() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	total := 0
	for _, item := range l.items {
		if item.Quantity > 0 {
			total += item.Quantity
		}
	}
	return total
}

// TotalPrice returns the sum of all line contributions at full precision.
// Callers round only when presenting the value.
func (l *Ledger) TotalPrice() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	total := decimal.Zero
	for _, item := range l.items {
		total = total.Add(item.Contribution())
	}
	return total
}

// Items returns a copy of the line items in insertion order.
func (l *Ledger) Items() []LineItem {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]LineItem, len(l.items))
	for i, item := range l.items {
		out[i] = *item
	}
	return out
}

// Len returns the number of distinct line items.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// OrderItems freezes the current lines into order items for checkout.
func (l *Ledger) OrderItems() []model.OrderItem {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]model.OrderItem, len(l.items))
	for i, item := range l.items {
		out[i] = model.OrderItem{
			ProductID:   item.ID,
			ProductName: item.Name,
			Price:       item.UnitPrice.InexactFloat64(),
			Quantity:    item.Quantity,
			ImageURL:    item.Image,
			Category:    item.Category,
			Size:        item.Size,
			Brand:       item.Brand,
		}
	}
	return out
}

// removeLocked deletes an item while holding the lock.
func (l *Ledger) removeLocked(id string) {
	delete(l.index, id)
	for i, item := range l.items {
		if item.ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return
		}
	}
}

// encodeLocked serialises the item list while holding the lock.
func (l *Ledger) encodeLocked() string {
	items := l.items
	if items == nil {
		items = []*LineItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		l.logger.Error().Err(err).Msg("failed to encode cart snapshot")
		return "[]"
	}
	return string(data)
}

// queueLocked appends a notification for dispatch after the mutation settles.
func (l *Ledger) queueLocked(n notify.Notification) {
	l.pending = append(l.pending, n)
}

// persist writes the serialised snapshot to the durable slot. Failures are
// logged only; the in-memory ledger remains authoritative for the session.
func (l *Ledger) persist(ctx context.Context, snapshot string) {
	if err := l.store.Set(ctx, l.key, snapshot); err != nil {
		l.logger.Warn().Err(err).Str("key", l.key).Msg("failed to persist cart snapshot")
	}
}

// flush dispatches queued notifications outside the ledger lock.
func (l *Ledger) flush() {
	l.mu.Lock()
	pending := l.pending
	l.pending = nil
	l.mu.Unlock()

	if l.notifier == nil {
		return
	}
	for _, n := range pending {
		l.notifier.Notify(n)
	}
}
