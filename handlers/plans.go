// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/danielhkuo/solarmatch/middleware"
	"github.com/danielhkuo/solarmatch/models"
	"github.com/danielhkuo/solarmatch/planner"
)

type PlanHandler struct{}

func NewPlanHandler() *PlanHandler {
	return &PlanHandler{}
}

// Preview handles POST /plans/preview
// Pure computation; nothing is stored. Returns the installment breakdown
// for a price and duration alongside the discounted cash price.
func (h *PlanHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req models.PlanPreviewRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	plan, err := planner.Build(req.TotalPrice, req.Months)
	if err != nil {
		if errors.Is(err, planner.ErrNonPositivePrice) || errors.Is(err, planner.ErrUnsupportedMonths) {
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to compute plan")
		return
	}

	cashPrice, err := planner.CashDiscount(req.TotalPrice)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PlanPreviewResponse{
		Months:           plan.Months,
		MonthlyPayment:   plan.MonthlyPayment,
		FinalInstallment: plan.FinalInstallment,
		TotalPayable:     plan.TotalPayable,
		CashPrice:        cashPrice,
		CashSavings:      req.TotalPrice - cashPrice,
	})
}
