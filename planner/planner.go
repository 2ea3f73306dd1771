// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package planner

import (
	"errors"
	"fmt"
)

// SupportedMonths lists the plan durations offered for zero-interest
// installment financing.
var SupportedMonths = []int{18, 24, 30}

var (
	ErrNonPositivePrice  = errors.New("total price must be positive")
	ErrUnsupportedMonths = errors.New("unsupported plan duration")
)

// Sizing constants for the vendor-facing estimates: every 70 SAR of monthly
// electricity bill maps to roughly 1 kW of capacity, priced at 6500 SAR/kW.
const (
	billPerKw = 70
	costPerKw = 6500
)

// discount percentage applied for full up-front or early payoff
const discountPercent = 95

// Plan is a complete zero-interest installment breakdown. All installments
// except the last equal MonthlyPayment; the last absorbs the rounding
// remainder so that the plan sums to TotalPayable exactly.
type Plan struct {
	Months           int
	MonthlyPayment   int64
	FinalInstallment int64
	TotalPayable     int64
}

// IsSupportedMonths reports whether months is an offered plan duration.
func IsSupportedMonths(months int) bool {
	for _, m := range SupportedMonths {
		if months == m {
			return true
		}
	}
	return false
}

// MonthlyPayment computes the recurring installment for a plan using
// round-half-up integer division. Whole currency units in, whole units out.
func MonthlyPayment(totalPrice int64, months int) (int64, error) {
	if totalPrice <= 0 {
		return 0, ErrNonPositivePrice
	}
	if !IsSupportedMonths(months) {
		return 0, fmt.Errorf("%w: %d months", ErrUnsupportedMonths, months)
	}
	return divRoundHalfUp(totalPrice, int64(months)), nil
}

// Build computes the full plan for a price and duration. The final
// installment is totalPrice minus the months-1 regular installments,
// never a redistributed remainder.
func Build(totalPrice int64, months int) (Plan, error) {
	monthly, err := MonthlyPayment(totalPrice, months)
	if err != nil {
		return Plan{}, err
	}
	final := totalPrice - monthly*int64(months-1)
	return Plan{
		Months:           months,
		MonthlyPayment:   monthly,
		FinalInstallment: final,
		TotalPayable:     totalPrice,
	}, nil
}

// CashDiscount returns the price after the 5% full-upfront-payment discount.
func CashDiscount(totalPrice int64) (int64, error) {
	if totalPrice <= 0 {
		return 0, ErrNonPositivePrice
	}
	return divRoundHalfUp(totalPrice*discountPercent, 100), nil
}

// EarlyPayoffDiscount returns the amount due when a customer pays off an
// active plan early: 95% of the remaining balance.
func EarlyPayoffDiscount(remainingBalance int64) (int64, error) {
	if remainingBalance <= 0 {
		return 0, ErrNonPositivePrice
	}
	return divRoundHalfUp(remainingBalance*discountPercent, 100), nil
}

// SystemSizeEstimateKw estimates installed capacity from a monthly bill,
// rounding up to the next whole kilowatt. Returns 0 for non-positive bills.
func SystemSizeEstimateKw(monthlyBill int64) int64 {
	if monthlyBill <= 0 {
		return 0
	}
	return (monthlyBill + billPerKw - 1) / billPerKw
}

// BudgetEstimate converts an estimated system size into an expected
// installation budget.
func BudgetEstimate(systemSizeKw int64) int64 {
	if systemSizeKw <= 0 {
		return 0
	}
	return systemSizeKw * costPerKw
}

// divRoundHalfUp divides a by b rounding half away from zero.
// Both arguments must be positive.
func divRoundHalfUp(a, b int64) int64 {
	return (2*a + b) / (2 * b)
}
