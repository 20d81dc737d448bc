package service

import (
	"context"

	"scan-kart/internal/checkout"

	"github.com/rs/zerolog"
)

// CheckoutProcess is the state machine driven by the checkout service.
type CheckoutProcess interface {
	Start(ctx context.Context) (checkout.Snapshot, error)
	Snapshot() checkout.Snapshot
	Cancel() (checkout.Snapshot, error)
	Acknowledge() (checkout.Snapshot, error)
}

// checkoutService implements CheckoutService.
type checkoutService struct {
	process CheckoutProcess
	logger  zerolog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(process CheckoutProcess, logger zerolog.Logger) CheckoutService {
	return &checkoutService{
		process: process,
		logger:  logger.With().Str("service", "checkout").Logger(),
	}
}

func (s *checkoutService) Start(ctx context.Context) (checkout.Snapshot, error) {
	snap, err := s.process.Start(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Str("state", string(snap.State)).Msg("checkout not started")
		return snap, err
	}
	return snap, nil
}

func (s *checkoutService) Status() checkout.Snapshot {
	return s.process.Snapshot()
}

func (s *checkoutService) Cancel() (checkout.Snapshot, error) {
	snap, err := s.process.Cancel()
	if err != nil {
		s.logger.Warn().Err(err).Str("state", string(snap.State)).Msg("checkout not cancelled")
	}
	return snap, err
}

func (s *checkoutService) Acknowledge() (checkout.Snapshot, error) {
	snap, err := s.process.Acknowledge()
	if err != nil {
		s.logger.Warn().Err(err).Str("state", string(snap.State)).Msg("checkout not acknowledged")
	}
	return snap, err
}
