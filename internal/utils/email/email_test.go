package email

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/KarimF430/Assad-motors-sub000/internal/config"
	"github.com/KarimF430/Assad-motors-sub000/internal/models"
	"github.com/google/uuid"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

func testSender() *Sender {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewSender(&config.Config{SenderEmail: "quotes@example.com"}, logger)
}

func sampleQuote() models.EMIQuote {
	return models.EMIQuote{
		ID:          uuid.MustParse("6f1c1f5e-8b1a-4a55-9a53-0a1b2c3d4e5f"),
		ExShowroom:  1000000,
		DownPayment: 200000,
		Terms:       models.LoanTerms{Principal: 800000, AnnualRatePercent: 8, TenureMonths: 84},
		MonthlyEMI:  12469,
		Schedule: []models.AmortizationRow{
			{MonthsElapsed: 84, CumulativePrincipalPaid: 800000, CumulativeInterestPaid: 247393},
		},
	}
}

func TestComposeQuote(t *testing.T) {
	e := testSender().ComposeQuote("lead@example.com", "Asha", sampleQuote())

	if e.From != "quotes@example.com" || len(e.To) != 1 || e.To[0] != "lead@example.com" {
		t.Errorf("unexpected envelope: %v -> %v", e.From, e.To)
	}
	if !strings.Contains(e.Subject, "₹12,469") {
		t.Errorf("subject missing EMI: %s", e.Subject)
	}
	body := string(e.Text)
	for _, want := range []string{"Dear Asha", "₹8,00,000", "84 months", "₹2,47,393", "6f1c1f5e"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestSendQuote_Delivers(t *testing.T) {
	s := testSender()
	var delivered *email.Email
	s.deliver = func(e *email.Email) error {
		delivered = e
		return nil
	}

	if err := s.SendQuote("lead@example.com", "Asha", sampleQuote()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if delivered == nil {
		t.Errorf("expected email to be delivered")
	}
}

func TestSendQuote_WrapsError(t *testing.T) {
	s := testSender()
	smtpErr := errors.New("connection refused")
	s.deliver = func(e *email.Email) error { return smtpErr }

	err := s.SendQuote("lead@example.com", "Asha", sampleQuote())

	if !errors.Is(err, smtpErr) {
		t.Errorf("expected wrapped smtp error, got %v", err)
	}
}
