package services

import (
	"context"
	"time"

	"github.com/Sunilkumarmehta2002/swipemyhood/models"
)

// SimulatedProcessor approves every charge after a fixed delay, standing in
// for an external payment gateway.
type SimulatedProcessor struct {
	Latency time.Duration
}

func NewSimulatedProcessor(latency time.Duration) *SimulatedProcessor {
	return &SimulatedProcessor{Latency: latency}
}

func (p *SimulatedProcessor) Process(ctx context.Context, _ models.CheckoutForm, _ int) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(p.Latency):
		return nil
	}
}
