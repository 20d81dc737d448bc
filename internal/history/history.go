// Package history stores completed orders, newest first.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"scan-kart/internal/model"
	"scan-kart/internal/storage"

	"github.com/rs/zerolog"
)

// StorageKey is the key the order history is persisted under.
const StorageKey = "orderHistory"

// Repository is an append-only order history.
type Repository interface {
	// List returns all orders, newest first. Unreadable history is reported
	// as empty.
	List(ctx context.Context) ([]model.Order, error)

	// Prepend records order as the newest entry.
	Prepend(ctx context.Context, order model.Order) error
}

type repository struct {
	kv     storage.Store
	logger zerolog.Logger

	// mu serializes read-modify-write cycles of Prepend.
	mu sync.Mutex
}

// NewRepository creates a history repository over kv.
func NewRepository(kv storage.Store, logger zerolog.Logger) Repository {
	return &repository{
		kv:     kv,
		logger: logger.With().Str("repository", "history").Logger(),
	}
}

func (r *repository) List(ctx context.Context) ([]model.Order, error) {
	orders, err := r.read(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		r.logger.Warn().Err(err).Msg("failed to load order history, reporting empty")
		return []model.Order{}, nil
	}
	return orders, nil
}

// Prepend never overwrites history it could not read: a failed or unparsable
// read aborts the write.
func (r *repository) Prepend(ctx context.Context, order model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.read(ctx)
	if err != nil {
		return fmt.Errorf("failed to read order history: %w", err)
	}

	order.Items = model.CloneItems(order.Items)
	orders = append([]model.Order{order}, orders...)

	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("failed to encode order history: %w", err)
	}

	if err := r.kv.Set(ctx, StorageKey, string(data)); err != nil {
		return fmt.Errorf("failed to write order history: %w", err)
	}

	r.logger.Info().
		Int64("order_id", order.ID).
		Int("orders", len(orders)).
		Msg("order recorded in history")

	return nil
}

func (r *repository) read(ctx context.Context) ([]model.Order, error) {
	raw, ok, err := r.kv.Get(ctx, StorageKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.Order{}, nil
	}

	var orders []model.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		return nil, fmt.Errorf("order history is unreadable: %w", err)
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}
