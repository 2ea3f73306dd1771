// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/solarmatch/auth"
	"github.com/danielhkuo/solarmatch/cliparse"
	"github.com/danielhkuo/solarmatch/middleware"
	"github.com/danielhkuo/solarmatch/models"
	"github.com/danielhkuo/solarmatch/planner"
	"github.com/danielhkuo/solarmatch/store"
)

type LifecycleHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewLifecycleHandler(st *store.Store, cfg cliparse.Config) *LifecycleHandler {
	return &LifecycleHandler{store: st, cfg: cfg}
}

// Accept handles POST /requests/{id}/responses/{rid}/accept
// On success the response is accepted, the request completes, and - when the
// customer selected BNPL financing - the installment plan is computed and
// returned. Sibling responses are left untouched.
func (h *LifecycleHandler) Accept(w http.ResponseWriter, r *http.Request) {
	requestID := r.PathValue("id")
	responseID := r.PathValue("rid")
	if requestID == "" || responseID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "request and response ids are required")
		return
	}

	requestKey := r.Header.Get("X-Request-Key")
	if err := auth.ValidateRequestKey(requestID, requestKey, h.cfg.RequestKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid request key")
		return
	}

	// Body is optional; an empty body means acceptance without a payment choice
	var req models.AcceptResponseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil && err != io.EOF {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate the payment selection before any state changes
	if req.Payment != nil {
		if err := req.Payment.Validate(); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.Payment.Method == models.PaymentBNPL && !planner.IsSupportedMonths(req.Payment.InstallmentMonths) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "installment_months must be one of the supported plan durations")
			return
		}
	}

	response, requestStatus, err := h.store.AcceptResponse(requestID, responseID)
	if err != nil {
		middleware.StoreErrorResponse(w, err)
		return
	}

	result := models.AcceptResponseResponse{
		Response:      response,
		RequestStatus: requestStatus,
	}

	if req.Payment != nil && req.Payment.Method == models.PaymentBNPL {
		plan, err := planner.Build(response.TotalPrice, req.Payment.InstallmentMonths)
		if err != nil {
			// Months were validated above; price positivity is a schema invariant
			slog.Error("failed to build plan for accepted response", "error", err, "response_id", responseID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to compute plan")
			return
		}
		result.Plan = &models.PaymentPlan{
			Months:           plan.Months,
			MonthlyPayment:   plan.MonthlyPayment,
			FinalInstallment: plan.FinalInstallment,
			TotalPayable:     plan.TotalPayable,
		}
	}

	slog.Info("vendor response accepted",
		"request_id", requestID,
		"response_id", responseID,
		"vendor_id", response.VendorID,
	)

	middleware.JSONResponse(w, http.StatusOK, result)
}

// Reject handles POST /requests/{id}/responses/{rid}/reject
// The request stays active; other offers remain open.
func (h *LifecycleHandler) Reject(w http.ResponseWriter, r *http.Request) {
	requestID := r.PathValue("id")
	responseID := r.PathValue("rid")
	if requestID == "" || responseID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "request and response ids are required")
		return
	}

	requestKey := r.Header.Get("X-Request-Key")
	if err := auth.ValidateRequestKey(requestID, requestKey, h.cfg.RequestKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid request key")
		return
	}

	response, requestStatus, err := h.store.RejectResponse(requestID, responseID)
	if err != nil {
		middleware.StoreErrorResponse(w, err)
		return
	}

	slog.Info("vendor response rejected",
		"request_id", requestID,
		"response_id", responseID,
		"vendor_id", response.VendorID,
	)

	middleware.JSONResponse(w, http.StatusOK, models.RejectResponseResponse{
		Response:      response,
		RequestStatus: requestStatus,
	})
}
