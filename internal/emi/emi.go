package emi

import (
	"math"

	"github.com/KarimF430/Assad-motors-sub000/internal/models"
)

// yearlyCheckpoints are the month offsets shown on the repayment table
var yearlyCheckpoints = []int{12, 24, 36, 48, 60, 72, 84}

// MonthlyRate converts an annual percentage into a monthly fraction
func MonthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 12 / 100
}

// ComputeEMI returns the reducing-balance equated monthly installment.
// Callers must ensure TenureMonths >= 1 and non-negative principal and rate.
func ComputeEMI(loan models.LoanTerms) models.Money {
	principal := float64(loan.Principal)
	n := float64(loan.TenureMonths)
	r := MonthlyRate(loan.AnnualRatePercent)

	if r == 0 {
		return models.RoundMoney(principal / n)
	}

	growth := math.Pow(1+r, n)
	return models.RoundMoney(principal * r * growth / (growth - 1))
}

// BuildSchedule simulates the loan month by month and emits a cumulative row
// at every requested checkpoint. Checkpoints beyond the tenure are skipped.
// The closing installment settles whatever balance is left, so the row at
// the full tenure always reports a zero balance and the full principal repaid.
func BuildSchedule(loan models.LoanTerms, monthlyEMI models.Money, checkpoints []int) []models.AmortizationRow {
	wanted := make(map[int]bool, len(checkpoints))
	for _, c := range checkpoints {
		if c >= 1 && c <= loan.TenureMonths {
			wanted[c] = true
		}
	}

	r := MonthlyRate(loan.AnnualRatePercent)
	balance := float64(loan.Principal)
	installment := float64(monthlyEMI)

	var principalPaid, interestPaid float64
	rows := make([]models.AmortizationRow, 0, len(wanted))

	for month := 1; month <= loan.TenureMonths; month++ {
		interest := balance * r
		principalPortion := installment - interest
		if month == loan.TenureMonths {
			principalPortion = balance
		}

		balance -= principalPortion
		if balance < 0 {
			principalPortion += balance
			balance = 0
		}
		principalPaid += principalPortion
		interestPaid += interest

		if !wanted[month] {
			continue
		}

		remaining := models.RoundMoney(balance)
		if month == loan.TenureMonths {
			remaining = 0
		}
		rows = append(rows, models.AmortizationRow{
			MonthsElapsed:           month,
			CumulativePrincipalPaid: models.RoundMoney(principalPaid),
			CumulativeInterestPaid:  models.RoundMoney(interestPaid),
			RemainingBalance:        remaining,
		})
	}

	return rows
}

// DefaultCheckpoints returns the yearly checkpoints that fall within tenure
func DefaultCheckpoints(tenureMonths int) []int {
	out := make([]int, 0, len(yearlyCheckpoints))
	for _, c := range yearlyCheckpoints {
		if c <= tenureMonths {
			out = append(out, c)
		}
	}
	return out
}

// ClosingCheckpoints is DefaultCheckpoints with the tenure itself appended
// when it is not already a checkpoint.
func ClosingCheckpoints(tenureMonths int) []int {
	out := DefaultCheckpoints(tenureMonths)
	if len(out) == 0 || out[len(out)-1] != tenureMonths {
		out = append(out, tenureMonths)
	}
	return out
}
