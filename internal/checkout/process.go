// Package checkout drives the cart through payment into the order history.
//
// The process moves idle → paying → paid → idle. While paying and paid the
// cart is locked so the charged total cannot drift. A failed or timed-out
// payment, or an explicit Cancel, returns to idle and unlocks the cart.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"scan-kart/internal/history"
	"scan-kart/internal/model"
	"scan-kart/internal/pricing"

	"github.com/rs/zerolog"
)

// State is a checkout process state.
type State string

const (
	StateIdle   State = "idle"
	StatePaying State = "paying"
	StatePaid   State = "paid"
)

// ErrPaymentCancelled is recorded when a payment is cancelled.
var ErrPaymentCancelled = errors.New("payment cancelled")

// CartStore is the part of the cart store the checkout drives.
type CartStore interface {
	Lock(ctx context.Context) ([]model.CartItem, error)
	Unlock()
	ClearAndUnlock() error
}

// Config holds the process timings and clock.
type Config struct {
	// PaymentTimeout bounds a single charge. Default: 30s.
	PaymentTimeout time.Duration

	// HistoryWriteTimeout bounds the order history write. Default: 5s.
	HistoryWriteTimeout time.Duration

	// Now is the clock used for order ids and dates. Default: time.Now.
	Now func() time.Time
}

// Snapshot describes the process at one point in time.
type Snapshot struct {
	State     State        `json:"state"`
	Order     *model.Order `json:"order,omitempty"`
	LastError string       `json:"lastError,omitempty"`
}

// Process is the checkout state machine. It is safe for concurrent use.
type Process struct {
	cart    CartStore
	history history.Repository
	gateway PaymentGateway
	cfg     Config
	logger  zerolog.Logger

	mu        sync.Mutex
	state     State
	attempt   uint64
	cancel    context.CancelFunc
	settled   chan struct{}
	lastOrder *model.Order
	lastErr   error
}

// NewProcess creates an idle checkout process.
func NewProcess(cart CartStore, orders history.Repository, gateway PaymentGateway, cfg Config, logger zerolog.Logger) *Process {
	if cfg.PaymentTimeout <= 0 {
		cfg.PaymentTimeout = 30 * time.Second
	}
	if cfg.HistoryWriteTimeout <= 0 {
		cfg.HistoryWriteTimeout = 5 * time.Second
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	settled := make(chan struct{})
	close(settled)

	return &Process{
		cart:    cart,
		history: orders,
		gateway: gateway,
		cfg:     cfg,
		logger:  logger.With().Str("component", "checkout").Logger(),
		state:   StateIdle,
		settled: settled,
	}
}

// Start locks the cart and begins the payment. It returns once the process
// is paying; the payment settles in the background.
func (p *Process) Start(ctx context.Context) (Snapshot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != StateIdle {
		return p.snapshotLocked(), model.ErrCheckoutInProgress
	}

	items, err := p.cart.Lock(ctx)
	if err != nil {
		if errors.Is(err, model.ErrCartLocked) {
			return p.snapshotLocked(), model.ErrCheckoutInProgress
		}
		return p.snapshotLocked(), fmt.Errorf("failed to lock cart: %w", err)
	}

	if len(items) == 0 {
		p.cart.Unlock()
		return p.snapshotLocked(), model.ErrEmptyCart
	}

	payCtx, cancel := context.WithTimeout(context.Background(), p.cfg.PaymentTimeout)

	p.attempt++
	p.state = StatePaying
	p.cancel = cancel
	p.settled = make(chan struct{})
	p.lastOrder = nil
	p.lastErr = nil

	total := pricing.CartTotal(items)

	p.logger.Info().
		Uint64("attempt", p.attempt).
		Int("lines", len(items)).
		Str("total", total.StringFixed(2)).
		Msg("checkout started")

	go p.pay(payCtx, cancel, p.attempt, p.settled, items)

	return p.snapshotLocked(), nil
}

func (p *Process) pay(ctx context.Context, cancel context.CancelFunc, attempt uint64, settled chan struct{}, items []model.CartItem) {
	defer cancel()

	total := pricing.CartTotal(items)
	err := p.gateway.Charge(ctx, total)

	p.mu.Lock()
	if p.attempt != attempt || p.state != StatePaying {
		// Cancelled while the gateway was running.
		p.mu.Unlock()
		return
	}

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("payment timed out after %s: %w", p.cfg.PaymentTimeout, err)
		} else {
			err = fmt.Errorf("payment failed: %w", err)
		}
		p.state = StateIdle
		p.lastErr = err
		p.cancel = nil
		p.cart.Unlock()
		close(settled)
		p.mu.Unlock()

		p.logger.Warn().Err(err).Uint64("attempt", attempt).Msg("payment did not complete, cart unlocked")
		return
	}

	now := p.cfg.Now()
	order := model.Order{
		ID:    now.UnixMilli(),
		Date:  now.UTC(),
		Total: total.InexactFloat64(),
		Items: model.CloneItems(items),
	}
	p.state = StatePaid
	p.cancel = nil
	p.lastOrder = &order
	p.mu.Unlock()

	p.logger.Info().
		Int64("order_id", order.ID).
		Float64("total", order.Total).
		Msg("payment accepted")

	p.recordOrder(order)
	close(settled)
}

// recordOrder is best-effort: a failed history write is logged and the
// process stays paid.
func (p *Process) recordOrder(order model.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), p.cfg.HistoryWriteTimeout)
	defer cancel()

	if err := p.history.Prepend(ctx, order); err != nil {
		p.logger.Error().Err(err).Int64("order_id", order.ID).Msg("failed to record order in history")
	}
}

// Cancel aborts a payment in progress, unlocks the cart and returns to idle.
func (p *Process) Cancel() (Snapshot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != StatePaying {
		return p.snapshotLocked(), model.ErrInvalidTransition
	}

	p.cancel()
	p.cancel = nil
	p.state = StateIdle
	p.lastErr = ErrPaymentCancelled
	p.cart.Unlock()
	close(p.settled)

	p.logger.Info().Uint64("attempt", p.attempt).Msg("checkout cancelled")

	return p.snapshotLocked(), nil
}

// Acknowledge closes a paid checkout: the cart is cleared and unlocked and
// the process returns to idle. If the cart cannot be cleared the process
// stays paid so the customer can retry.
func (p *Process) Acknowledge() (Snapshot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != StatePaid {
		return p.snapshotLocked(), model.ErrInvalidTransition
	}

	if err := p.cart.ClearAndUnlock(); err != nil {
		p.logger.Error().Err(err).Uint64("attempt", p.attempt).Msg("failed to clear cart after checkout")
		return p.snapshotLocked(), fmt.Errorf("failed to clear cart: %w", err)
	}

	p.state = StateIdle
	p.lastOrder = nil
	p.lastErr = nil

	p.logger.Info().Uint64("attempt", p.attempt).Msg("checkout acknowledged")

	return p.snapshotLocked(), nil
}

// Snapshot returns the current state.
func (p *Process) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

func (p *Process) snapshotLocked() Snapshot {
	s := Snapshot{State: p.state}
	if p.lastOrder != nil {
		order := *p.lastOrder
		order.Items = model.CloneItems(p.lastOrder.Items)
		s.Order = &order
	}
	if p.lastErr != nil {
		s.LastError = p.lastErr.Error()
	}
	return s
}

// Wait blocks until the current payment has settled, including the history
// write, and returns the resulting state.
func (p *Process) Wait(ctx context.Context) (Snapshot, error) {
	p.mu.Lock()
	settled := p.settled
	p.mu.Unlock()

	select {
	case <-settled:
		return p.Snapshot(), nil
	case <-ctx.Done():
		return p.Snapshot(), ctx.Err()
	}
}

// Close cancels a payment in progress.
func (p *Process) Close() {
	if _, err := p.Cancel(); err == nil {
		p.logger.Warn().Msg("payment in progress was cancelled on shutdown")
	}
}

// Shutdown cancels a payment in progress and waits for a pending history
// write, so the last order reaches storage before it is closed.
func (p *Process) Shutdown(ctx context.Context) error {
	p.Close()
	if _, err := p.Wait(ctx); err != nil {
		p.logger.Error().Err(err).Msg("order history write did not finish before shutdown")
		return err
	}
	return nil
}
