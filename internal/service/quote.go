package service

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/KarimF430/Assad-motors-sub000/internal/emi"
	"github.com/KarimF430/Assad-motors-sub000/internal/models"
	"github.com/google/uuid"
)

func validateQuote(req models.EMIQuoteRequest) error {
	if req.ExShowroom <= 0 {
		return fmt.Errorf("%w: ex-showroom price must be positive", ErrInvalidInput)
	}
	if req.ExShowroom > MaxExShowroom {
		return fmt.Errorf("%w: ex-showroom price exceeds %d", ErrInvalidInput, MaxExShowroom)
	}
	if req.DownPayment < 0 {
		return fmt.Errorf("%w: down payment must not be negative", ErrInvalidInput)
	}
	if req.DownPayment >= req.ExShowroom {
		return fmt.Errorf("%w: down payment must be below the ex-showroom price", ErrInvalidInput)
	}
	if req.TenureMonths < MinTenureMonths || req.TenureMonths > MaxTenureMonths {
		return fmt.Errorf("%w: tenure must be between %d and %d months", ErrInvalidInput, MinTenureMonths, MaxTenureMonths)
	}
	if req.AnnualRatePercent != nil {
		r := *req.AnnualRatePercent
		if r < 0 || r > MaxRatePercent {
			return fmt.Errorf("%w: interest rate must be between 0 and %.0f%%", ErrInvalidInput, MaxRatePercent)
		}
	}
	return nil
}

// QuoteEMI validates a request and computes the installment and schedule
func (s *Service) QuoteEMI(req models.EMIQuoteRequest) (models.EMIQuote, error) {
	if err := validateQuote(req); err != nil {
		return models.EMIQuote{}, err
	}

	rate := s.rates.Current().AnnualRatePercent
	if req.AnnualRatePercent != nil {
		rate = *req.AnnualRatePercent
	}

	terms := models.LoanTerms{
		Principal:         req.ExShowroom - req.DownPayment,
		AnnualRatePercent: rate,
		TenureMonths:      req.TenureMonths,
	}
	monthly := emi.ComputeEMI(terms)
	// Rounding can leave the installment at or below the first month's
	// interest, and the balance would then grow instead of amortizing.
	if float64(monthly) <= float64(terms.Principal)*emi.MonthlyRate(rate) || monthly <= 0 {
		return models.EMIQuote{}, fmt.Errorf("%w: loan too small for this tenure/rate", ErrInvalidInput)
	}
	schedule := emi.BuildSchedule(terms, monthly, emi.ClosingCheckpoints(terms.TenureMonths))

	last := schedule[len(schedule)-1]
	quote := models.EMIQuote{
		ID:            uuid.New(),
		ExShowroom:    req.ExShowroom,
		DownPayment:   req.DownPayment,
		Terms:         terms,
		MonthlyEMI:    monthly,
		TotalPayable:  last.CumulativePrincipalPaid + last.CumulativeInterestPaid,
		TotalInterest: last.CumulativeInterestPaid,
		Schedule:      schedule,
	}

	s.log.Debugf("Quote %s: principal %d at %.2f%% for %d months -> %d/month",
		quote.ID, terms.Principal, rate, terms.TenureMonths, monthly)
	return quote, nil
}

// EmailQuote computes a quote and mails it to the lead
func (s *Service) EmailQuote(req models.QuoteEmailRequest) (models.EMIQuote, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.EMIQuote{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	addr, err := mail.ParseAddress(req.Email)
	if err != nil {
		return models.EMIQuote{}, fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}

	quote, err := s.QuoteEMI(req.Quote)
	if err != nil {
		return models.EMIQuote{}, err
	}

	if err := s.mailer.SendQuote(addr.Address, name, quote); err != nil {
		return models.EMIQuote{}, err
	}

	s.log.Infof("Quote %s emailed to %s", quote.ID, addr.Address)
	return quote, nil
}
