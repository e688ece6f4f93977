// Package payment holds the two-call gateway contract the coordinator
// mediates: create an order, then verify the payment reference against a
// signature. The default implementations simulate the gateway; production
// swaps them behind the same interfaces.
package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // minor units
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type Gateway interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*Order, error)
}

// SimulatedGateway issues opaque order references without calling anything.
type SimulatedGateway struct{}

func (SimulatedGateway) CreateOrder(_ context.Context, amount int64, currency, receipt string) (*Order, error) {
	return &Order{
		ID:       "order_" + uuid.NewString(),
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
		Status:   "created",
	}, nil
}

// SimulatedPaymentID mimics the reference a gateway would return for a
// simulated capture.
func SimulatedPaymentID() string {
	return fmt.Sprintf("sim_%d", time.Now().UnixMilli())
}
