package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/KarimF430/Assad-motors-sub000/internal/config"
	"github.com/KarimF430/Assad-motors-sub000/internal/geo"
	"github.com/KarimF430/Assad-motors-sub000/internal/integrations/ratefeed"
	"github.com/KarimF430/Assad-motors-sub000/internal/models"
	"github.com/KarimF430/Assad-motors-sub000/internal/pricing"
	"github.com/KarimF430/Assad-motors-sub000/internal/repository"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type MockMailer struct {
	SendCalled bool
	To         string
	ForceError bool
}

func (m *MockMailer) SendQuote(to, name string, q models.EMIQuote) error {
	m.SendCalled = true
	m.To = to
	if m.ForceError {
		return errors.New("smtp error")
	}
	return nil
}

type MockRateSource struct {
	Rate ratefeed.LenderRate
	Err  error
}

func (m *MockRateSource) ReferenceRate(ctx context.Context) (ratefeed.LenderRate, error) {
	return m.Rate, m.Err
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestService(t *testing.T, mailer QuoteMailer, cfg *config.Config) *Service {
	t.Helper()

	catalog := repository.NewMemoryCatalog()
	if err := repository.SeedDemo(context.Background(), catalog); err != nil {
		t.Fatalf("seed: %v", err)
	}
	policy, err := pricing.DefaultPolicy()
	if err != nil {
		t.Fatalf("policy: %v", err)
	}
	cities, err := geo.Cities()
	if err != nil {
		t.Fatalf("cities: %v", err)
	}
	if cfg == nil {
		cfg = &config.Config{JWTSecret: "test-secret"}
	}
	return NewService(catalog, policy, cities, NewRateBook(9.5), mailer, quietLogger(), cfg)
}

func ratePtr(v float64) *float64 { return &v }

func TestQuoteEMI_WithRate(t *testing.T) {
	svc := newTestService(t, &MockMailer{}, nil)

	quote, err := svc.QuoteEMI(models.EMIQuoteRequest{
		ExShowroom:        1000000,
		DownPayment:       200000,
		AnnualRatePercent: ratePtr(8),
		TenureMonths:      84,
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.Terms.Principal != 800000 {
		t.Errorf("expected principal 800000, got %d", quote.Terms.Principal)
	}
	if quote.MonthlyEMI != 12469 {
		t.Errorf("expected EMI 12469, got %d", quote.MonthlyEMI)
	}
	if quote.TotalPayable != 1047393 || quote.TotalInterest != 247393 {
		t.Errorf("unexpected totals %d/%d", quote.TotalPayable, quote.TotalInterest)
	}
	if len(quote.Schedule) != 7 {
		t.Errorf("expected 7 schedule rows, got %d", len(quote.Schedule))
	}
}

func TestQuoteEMI_UsesReferenceRate(t *testing.T) {
	svc := newTestService(t, &MockMailer{}, nil)

	quote, err := svc.QuoteEMI(models.EMIQuoteRequest{ExShowroom: 500000, TenureMonths: 30})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.Terms.AnnualRatePercent != 9.5 {
		t.Errorf("expected reference rate 9.5, got %v", quote.Terms.AnnualRatePercent)
	}
	last := quote.Schedule[len(quote.Schedule)-1]
	if last.MonthsElapsed != 30 || last.RemainingBalance != 0 {
		t.Errorf("expected schedule to close at month 30, got %+v", last)
	}
}

func TestQuoteEMI_ZeroRateAllowed(t *testing.T) {
	svc := newTestService(t, &MockMailer{}, nil)

	quote, err := svc.QuoteEMI(models.EMIQuoteRequest{
		ExShowroom: 1200, AnnualRatePercent: ratePtr(0), TenureMonths: 12,
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.MonthlyEMI != 100 || quote.TotalInterest != 0 {
		t.Errorf("unexpected interest-free quote: %+v", quote)
	}
}

func TestQuoteEMI_InstallmentMustCoverInterest(t *testing.T) {
	svc := newTestService(t, &MockMailer{}, nil)

	tests := map[string]models.EMIQuoteRequest{
		"rounded below first interest": {ExShowroom: 10437, AnnualRatePercent: ratePtr(27.5), TenureMonths: 308},
		"rounds to zero":               {ExShowroom: 1, AnnualRatePercent: ratePtr(0), TenureMonths: 3},
	}

	for name, req := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.QuoteEMI(req)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestQuoteEMI_Invalid(t *testing.T) {
	svc := newTestService(t, &MockMailer{}, nil)

	tests := map[string]models.EMIQuoteRequest{
		"zero price":        {ExShowroom: 0, TenureMonths: 12},
		"negative down":     {ExShowroom: 100000, DownPayment: -1, TenureMonths: 12},
		"down covers price": {ExShowroom: 100000, DownPayment: 100000, TenureMonths: 12},
		"zero tenure":       {ExShowroom: 100000, TenureMonths: 0},
		"tenure too long":   {ExShowroom: 100000, TenureMonths: 601},
		"negative rate":     {ExShowroom: 100000, TenureMonths: 12, AnnualRatePercent: ratePtr(-1)},
		"absurd rate":       {ExShowroom: 100000, TenureMonths: 12, AnnualRatePercent: ratePtr(101)},
	}

	for name, req := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := svc.QuoteEMI(req); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestEmailQuote(t *testing.T) {
	mailer := &MockMailer{}
	svc := newTestService(t, mailer, nil)

	_, err := svc.EmailQuote(models.QuoteEmailRequest{
		Name:  "Asha",
		Email: "Asha <asha@example.com>",
		Quote: models.EMIQuoteRequest{ExShowroom: 800000, TenureMonths: 60},
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !mailer.SendCalled || mailer.To != "asha@example.com" {
		t.Errorf("expected mail to asha@example.com, got %+v", mailer)
	}
}

func TestEmailQuote_InvalidAddressDoesNotSend(t *testing.T) {
	mailer := &MockMailer{}
	svc := newTestService(t, mailer, nil)

	_, err := svc.EmailQuote(models.QuoteEmailRequest{
		Name:  "Asha",
		Email: "not-an-address",
		Quote: models.EMIQuoteRequest{ExShowroom: 800000, TenureMonths: 60},
	})

	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if mailer.SendCalled {
		t.Errorf("mailer should NOT be called")
	}
}

func TestEmailQuote_MailerFailure(t *testing.T) {
	svc := newTestService(t, &MockMailer{ForceError: true}, nil)

	_, err := svc.EmailQuote(models.QuoteEmailRequest{
		Name:  "Asha",
		Email: "asha@example.com",
		Quote: models.EMIQuoteRequest{ExShowroom: 800000, TenureMonths: 60},
	})

	if err == nil {
		t.Errorf("expected mailer error")
	}
}

func TestNearbyCities(t *testing.T) {
	svc := newTestService(t, &MockMailer{}, nil)

	got, err := svc.NearbyCities(" Mumbai ", 250, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := false
	for _, c := range got {
		if c.Slug == "pune" {
			found = true
		}
		if c.Slug == "delhi" {
			t.Errorf("delhi should be out of range")
		}
	}
	if !found {
		t.Errorf("expected pune near mumbai")
	}
}

func TestNearbyCities_Fallback(t *testing.T) {
	svc := newTestService(t, &MockMailer{}, nil)

	got, err := svc.NearbyCities("gotham", 100, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Slug != "mumbai" || got[1].Slug != "delhi" {
		t.Errorf("unexpected fallback: %+v", got)
	}
}

func TestNearbyCities_Invalid(t *testing.T) {
	svc := newTestService(t, &MockMailer{}, nil)

	if _, err := svc.NearbyCities("mumbai", 0, 8); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected error for zero radius, got %v", err)
	}
	if _, err := svc.NearbyCities("mumbai", 250, 51); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected error for large limit, got %v", err)
	}
}

func TestResolveVariant(t *testing.T) {
	svc := newTestService(t, &MockMailer{}, nil)
	ctx := context.Background()

	match, err := svc.ResolveVariant(ctx, "Maruti-Suzuki", "Swift", "vxi-amt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if match.Variant.Name != "VXi AMT" || match.Tier != models.MatchExact {
		t.Errorf("unexpected match: %+v", match)
	}

	match, _ = svc.ResolveVariant(ctx, "hyundai", "creta", "s-o")
	if match.Variant.Name != "S (O)" {
		t.Errorf("expected S (O), got %+v", match)
	}

	match, _ = svc.ResolveVariant(ctx, "hyundai", "creta", "knight")
	if match.Tier != models.MatchFallback || match.Variant.Name != "E" {
		t.Errorf("expected cheapest fallback, got %+v", match)
	}
}

func TestResolveVariant_UnknownModel(t *testing.T) {
	svc := newTestService(t, &MockMailer{}, nil)

	_, err := svc.ResolveVariant(context.Background(), "tata", "sierra", "adventure")

	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestOnRoadPrice(t *testing.T) {
	svc := newTestService(t, &MockMailer{}, nil)

	got, err := svc.OnRoadPrice(context.Background(), "maruti-suzuki", "swift", "vxi-amt", "pune")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Region != "maharashtra" {
		t.Errorf("expected maharashtra, got %s", got.Region)
	}
	if got.OnRoad <= got.ExShowroom {
		t.Errorf("expected on-road above ex-showroom: %+v", got)
	}

	got, _ = svc.OnRoadPrice(context.Background(), "maruti-suzuki", "swift", "vxi-amt", "gotham")
	if got.Region != pricing.DefaultRegion {
		t.Errorf("expected default region for unknown city, got %s", got.Region)
	}
}

func TestReplaceVariants(t *testing.T) {
	svc := newTestService(t, &MockMailer{}, nil)
	ctx := context.Background()

	err := svc.ReplaceVariants(ctx, "admin@example.com", "Tata", "Punch", []models.Variant{{Name: "Pure", Price: 600000}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	match, err := svc.ResolveVariant(ctx, "tata", "punch", "pure")
	if err != nil || match.Variant.Name != "Pure" {
		t.Errorf("expected stored variant, got %+v (%v)", match, err)
	}
}

func TestReplaceVariants_Invalid(t *testing.T) {
	svc := newTestService(t, &MockMailer{}, nil)
	ctx := context.Background()

	cases := [][]models.Variant{
		nil,
		{{Name: "", Price: 100}},
		{{Name: "Pure", Price: 0}},
		{{Name: "(!)", Price: 100}},
	}
	for _, variants := range cases {
		if err := svc.ReplaceVariants(ctx, "admin@example.com", "tata", "punch", variants); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%+v: expected ErrInvalidInput, got %v", variants, err)
		}
	}
}

func TestRefreshRate(t *testing.T) {
	book := NewRateBook(9.5)
	src := &MockRateSource{Rate: ratefeed.LenderRate{Lender: "HDFC Bank", Percent: 8.75}}

	if err := RefreshRate(context.Background(), src, book, quietLogger()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := book.Current()
	if got.AnnualRatePercent != 8.75 || got.Source != "HDFC Bank" || got.UpdatedAt == "" {
		t.Errorf("unexpected rate: %+v", got)
	}
}

func TestRefreshRate_KeepsPreviousOnError(t *testing.T) {
	book := NewRateBook(9.5)
	src := &MockRateSource{Err: errors.New("feed down")}

	if err := RefreshRate(context.Background(), src, book, quietLogger()); err == nil {
		t.Errorf("expected error")
	}
	if got := book.Current(); got.AnnualRatePercent != 9.5 || got.Source != "config" {
		t.Errorf("expected previous rate, got %+v", got)
	}
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	cfg := &config.Config{
		JWTSecret:         "test-secret",
		AdminEmail:        "admin@example.com",
		AdminPasswordHash: string(hash),
	}
	svc := newTestService(t, &MockMailer{}, cfg)

	token, err := svc.Login(models.Credentials{Email: "Admin@Example.com", Password: "s3cret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.AccessToken == "" || token.ExpiresIn != int64(TokenTTL.Seconds()) {
		t.Errorf("unexpected token: %+v", token)
	}

	if _, err := svc.Login(models.Credentials{Email: "admin@example.com", Password: "wrong"}); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestLogin_DisabledWithoutHash(t *testing.T) {
	svc := newTestService(t, &MockMailer{}, nil)

	if _, err := svc.Login(models.Credentials{Email: "", Password: ""}); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}
