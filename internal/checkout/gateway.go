package checkout

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// PaymentGateway charges the customer for a checkout.
type PaymentGateway interface {
	// Charge blocks until the payment is settled or ctx is done.
	Charge(ctx context.Context, amount decimal.Decimal) error
}

// simulatedGateway stands in for a real payment provider: every charge
// succeeds after a fixed delay.
type simulatedGateway struct {
	delay  time.Duration
	logger zerolog.Logger
}

// NewSimulatedGateway creates a gateway that approves every charge after delay.
func NewSimulatedGateway(delay time.Duration, logger zerolog.Logger) PaymentGateway {
	return &simulatedGateway{
		delay:  delay,
		logger: logger.With().Str("component", "simulated-gateway").Logger(),
	}
}

func (g *simulatedGateway) Charge(ctx context.Context, amount decimal.Decimal) error {
	g.logger.Debug().Str("amount", amount.StringFixed(2)).Dur("delay", g.delay).Msg("processing payment")

	timer := time.NewTimer(g.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
