// Package cart holds the authoritative shopping cart of the terminal and
// mirrors it to key-value storage.
//
// Mutations are applied in memory immediately and persisted asynchronously by
// a single writer goroutine. Pending snapshots are coalesced so only the most
// recent cart is written. A crash between a mutation and its write loses that
// mutation; Flush narrows the window for callers that need it closed.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"scan-kart/internal/model"
	"scan-kart/internal/pricing"
	"scan-kart/internal/storage"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// StorageKey is the key the cart is persisted under.
const StorageKey = "@cart_items"

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("cart store is closed")

// Options tunes a Store. Zero values select defaults.
type Options struct {
	// Now is the clock used for AddedAt. Default: time.Now.
	Now func() time.Time

	// WriteTimeout bounds a single persistence write. Default: 5s.
	WriteTimeout time.Duration
}

// Store is the cart store. It is safe for concurrent use.
type Store struct {
	kv     storage.Store
	logger zerolog.Logger
	now    func() time.Time

	writeTimeout time.Duration

	ready   chan struct{}
	notify  chan struct{}
	done    chan struct{}
	stopped chan struct{}

	mu      sync.Mutex
	items   []model.CartItem
	locked  bool
	closed  bool
	version uint64
	saved   uint64
	lastErr error
	flushed chan struct{}
}

// Open creates a store and starts loading the persisted cart in the
// background. Operations block until the load has finished; a missing or
// unreadable value yields an empty cart.
func Open(ctx context.Context, kv storage.Store, logger zerolog.Logger, opts Options) *Store {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = 5 * time.Second
	}

	s := &Store{
		kv:           kv,
		logger:       logger.With().Str("component", "cart-store").Logger(),
		now:          opts.Now,
		writeTimeout: opts.WriteTimeout,
		ready:        make(chan struct{}),
		notify:       make(chan struct{}, 1),
		done:         make(chan struct{}),
		stopped:      make(chan struct{}),
		items:        []model.CartItem{},
		flushed:      make(chan struct{}),
	}

	go s.load(ctx)
	go s.writeLoop()

	return s
}

func (s *Store) load(ctx context.Context) {
	defer close(s.ready)

	items := s.readPersisted(ctx)

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()

	s.logger.Info().Int("items", len(items)).Msg("cart loaded")
}

func (s *Store) readPersisted(ctx context.Context) []model.CartItem {
	raw, ok, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to load cart, starting empty")
		return []model.CartItem{}
	}
	if !ok {
		return []model.CartItem{}
	}

	var persisted []model.CartItem
	if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
		s.logger.Warn().Err(err).Msg("persisted cart is unreadable, starting empty")
		return []model.CartItem{}
	}

	items := make([]model.CartItem, 0, len(persisted))
	seen := make(map[int64]bool, len(persisted))
	for _, item := range persisted {
		if item.Quantity < 1 || seen[item.Product.ID] {
			s.logger.Warn().
				Int64("product_id", item.Product.ID).
				Int("quantity", item.Quantity).
				Msg("dropping invalid persisted cart item")
			continue
		}
		seen[item.Product.ID] = true
		items = append(items, item)
	}
	return items
}

// WaitReady blocks until the persisted cart has been loaded.
func (s *Store) WaitReady(ctx context.Context) error {
	select {
	case <-s.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Ready reports whether the persisted cart has been loaded.
func (s *Store) Ready() bool {
	select {
	case <-s.ready:
		return true
	default:
		return false
	}
}

// mutate waits for the load, then runs fn under the lock. fn reports whether
// it changed the cart; only changes are persisted.
func (s *Store) mutate(ctx context.Context, fn func() bool) error {
	if err := s.WaitReady(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.locked {
		return model.ErrCartLocked
	}
	if fn() {
		s.markDirty()
	}
	return nil
}

// markDirty must be called with mu held.
func (s *Store) markDirty() {
	s.version++
	select {
	case s.notify <- struct{}{}:
	default:
	}
}

func (s *Store) indexOf(productID int64) int {
	for i, item := range s.items {
		if item.Product.ID == productID {
			return i
		}
	}
	return -1
}

// AddToCart adds one unit of product. A product already in the cart has its
// quantity incremented and keeps its first sale price and snapshot.
func (s *Store) AddToCart(ctx context.Context, product model.Product, unitPriceAtSale float64) error {
	return s.mutate(ctx, func() bool {
		if i := s.indexOf(product.ID); i >= 0 {
			s.items[i].Quantity++
			s.logger.Debug().
				Int64("product_id", product.ID).
				Int("quantity", s.items[i].Quantity).
				Msg("quantity increased")
			return true
		}

		s.items = append(s.items, model.CartItem{
			Product:         product.Clone(),
			Quantity:        1,
			UnitPriceAtSale: unitPriceAtSale,
			AddedAt:         s.now().UTC(),
		})
		s.logger.Debug().
			Int64("product_id", product.ID).
			Str("label", product.Label).
			Msg("product added to cart")
		return true
	})
}

// RemoveFromCart deletes the line for productID. Removing an absent product
// is a no-op.
func (s *Store) RemoveFromCart(ctx context.Context, productID int64) error {
	return s.mutate(ctx, func() bool {
		return s.remove(productID)
	})
}

func (s *Store) remove(productID int64) bool {
	i := s.indexOf(productID)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	s.logger.Debug().Int64("product_id", productID).Msg("product removed from cart")
	return true
}

// UpdateQuantity sets the quantity of a line. A quantity of zero or less
// removes the line. Updating an absent product is a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, productID int64, quantity int) error {
	return s.mutate(ctx, func() bool {
		if quantity <= 0 {
			return s.remove(productID)
		}
		i := s.indexOf(productID)
		if i < 0 || s.items[i].Quantity == quantity {
			return false
		}
		s.items[i].Quantity = quantity
		s.logger.Debug().
			Int64("product_id", productID).
			Int("quantity", quantity).
			Msg("quantity updated")
		return true
	})
}

// ClearCart empties the cart. Clearing an empty cart is a no-op.
func (s *Store) ClearCart(ctx context.Context) error {
	return s.mutate(ctx, s.clear)
}

func (s *Store) clear() bool {
	if len(s.items) == 0 {
		return false
	}
	s.items = []model.CartItem{}
	s.logger.Debug().Msg("cart cleared")
	return true
}

// Items returns a deep copy of the cart lines in insertion order.
func (s *Store) Items() []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.CloneItems(s.items)
}

// TotalPrice returns Σ unit_price_at_sale × weight × quantity, computed from
// the current lines on every call.
func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pricing.CartTotal(s.items)
}

// TotalItems returns the number of units in the cart.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pricing.TotalQuantity(s.items)
}

// Lock freezes the cart: mutations fail with model.ErrCartLocked until Unlock
// or ClearAndUnlock. It returns the frozen lines.
func (s *Store) Lock(ctx context.Context) ([]model.CartItem, error) {
	if err := s.WaitReady(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrClosed
	}
	if s.locked {
		return nil, model.ErrCartLocked
	}
	s.locked = true
	return model.CloneItems(s.items), nil
}

// Unlock re-enables mutations.
func (s *Store) Unlock() {
	s.mu.Lock()
	s.locked = false
	s.mu.Unlock()
}

// ClearAndUnlock empties a locked cart and re-enables mutations in one step,
// so no mutation can slip in between. A locked cart has finished loading, so
// there is nothing to wait for.
func (s *Store) ClearAndUnlock() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	s.locked = false
	if s.clear() {
		s.markDirty()
	}
	return nil
}

// Locked reports whether the cart is frozen.
func (s *Store) Locked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locked
}
