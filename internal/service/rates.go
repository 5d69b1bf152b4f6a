package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/KarimF430/Assad-motors-sub000/internal/integrations/ratefeed"
	"github.com/KarimF430/Assad-motors-sub000/internal/models"
	"github.com/sirupsen/logrus"
)

// RateSource publishes the current reference loan rate
type RateSource interface {
	ReferenceRate(ctx context.Context) (ratefeed.LenderRate, error)
}

// RateBook holds the default annual rate applied when a quote omits one
type RateBook struct {
	mu        sync.RWMutex
	percent   float64
	source    string
	updatedAt time.Time
}

// NewRateBook starts with a configured fallback rate
func NewRateBook(defaultPercent float64) *RateBook {
	return &RateBook{percent: defaultPercent, source: "config"}
}

// Current returns the rate in effect
func (b *RateBook) Current() models.ReferenceRate {
	b.mu.RLock()
	defer b.mu.RUnlock()

	rate := models.ReferenceRate{AnnualRatePercent: b.percent, Source: b.source}
	if !b.updatedAt.IsZero() {
		rate.UpdatedAt = b.updatedAt.Format(time.RFC3339)
	}
	return rate
}

// Set replaces the rate in effect
func (b *RateBook) Set(percent float64, source string, at time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.percent = percent
	b.source = source
	b.updatedAt = at
}

// RefreshRate pulls the reference rate from src into book. On failure the
// previous rate stays in effect.
func RefreshRate(ctx context.Context, src RateSource, book *RateBook, log *logrus.Logger) error {
	rate, err := src.ReferenceRate(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh reference rate: %w", err)
	}
	if rate.Percent > MaxRatePercent {
		return fmt.Errorf("reference rate %.2f%% out of range", rate.Percent)
	}

	book.Set(rate.Percent, rate.Lender, time.Now())
	log.Infof("Reference rate updated to %.2f%% from %s", rate.Percent, rate.Lender)
	return nil
}

// ReferenceRate returns the rate applied to quotes without an explicit one
func (s *Service) ReferenceRate() models.ReferenceRate {
	return s.rates.Current()
}
