package models

import "github.com/google/uuid"

// LoanTerms describes a reducing-balance loan
type LoanTerms struct {
	Principal         Money   `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TenureMonths      int     `json:"tenure_months"`
}

// AmortizationRow is a cumulative snapshot of the schedule after MonthsElapsed installments
type AmortizationRow struct {
	MonthsElapsed           int   `json:"months_elapsed"`
	CumulativePrincipalPaid Money `json:"cumulative_principal_paid"`
	CumulativeInterestPaid  Money `json:"cumulative_interest_paid"`
	RemainingBalance        Money `json:"remaining_balance"`
}

// EMIQuoteRequest is the caller-facing input for a quote. A nil rate means
// "use the current reference rate".
type EMIQuoteRequest struct {
	ExShowroom        Money    `json:"ex_showroom"`
	DownPayment       Money    `json:"down_payment"`
	AnnualRatePercent *float64 `json:"annual_rate_percent,omitempty"`
	TenureMonths      int      `json:"tenure_months"`
}

// EMIQuote is a computed installment with its repayment schedule
type EMIQuote struct {
	ID            uuid.UUID         `json:"id"`
	ExShowroom    Money             `json:"ex_showroom"`
	DownPayment   Money             `json:"down_payment"`
	Terms         LoanTerms         `json:"terms"`
	MonthlyEMI    Money             `json:"monthly_emi"`
	TotalPayable  Money             `json:"total_payable"`
	TotalInterest Money             `json:"total_interest"`
	Schedule      []AmortizationRow `json:"schedule"`
}

// QuoteEmailRequest asks for a quote to be mailed to a lead
type QuoteEmailRequest struct {
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Quote EMIQuoteRequest `json:"quote"`
}
