package service

import (
	"context"
	"fmt"

	"scan-kart/internal/history"
	"scan-kart/internal/model"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	history history.Repository
	logger  zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(history history.Repository, logger zerolog.Logger) OrderService {
	return &orderService{
		history: history,
		logger:  logger.With().Str("service", "order").Logger(),
	}
}

// List returns past orders, newest first.
func (s *orderService) List(ctx context.Context) ([]model.Order, error) {
	orders, err := s.history.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	s.logger.Debug().Int("count", len(orders)).Msg("retrieved orders")

	return orders, nil
}
