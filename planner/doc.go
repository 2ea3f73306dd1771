// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package planner implements installment plan and discount arithmetic.

All amounts are whole Saudi Riyals (int64). No floating point enters any
money calculation, so identical inputs always produce identical plans.

# Installment Plans

Plans are zero-interest over a fixed set of durations (18, 24, or 30 months):

	plan, err := planner.Build(85000, 24)
	// plan.MonthlyPayment = 3542
	// plan.FinalInstallment = 85000 - 3542*23
	// plan.TotalPayable = 85000

The monthly payment is the price divided by the months, rounded half up.
The final installment absorbs the rounding remainder so the installments
sum to exactly the total price.

# Discounts

Paying cash up front, or paying off a plan early, earns a 5% discount:

	cash, err := planner.CashDiscount(85000)       // 80750
	payoff, err := planner.EarlyPayoffDiscount(45500) // 43225

The discounted amount is price*95/100 in integer arithmetic, rounded
half up like the installments.

# Estimates

Rough sizing shown to vendors browsing open requests:

	kw := planner.SystemSizeEstimateKw(850) // ceil(850/70) = 13
	budget := planner.BudgetEstimate(13)    // 13 * 6500 = 84500
*/
package planner
