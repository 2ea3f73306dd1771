// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/solarmatch/auth"
	"github.com/danielhkuo/solarmatch/cliparse"
	"github.com/danielhkuo/solarmatch/middleware"
	"github.com/danielhkuo/solarmatch/models"
	"github.com/danielhkuo/solarmatch/store"
)

type RequestHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewRequestHandler(st *store.Store, cfg cliparse.Config) *RequestHandler {
	return &RequestHandler{store: st, cfg: cfg}
}

// Submit handles POST /requests
func (h *RequestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitRequestRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	request, err := h.store.SubmitRequest(req)
	if err != nil {
		middleware.StoreErrorResponse(w, err)
		return
	}

	// The request key is handed out once; it gates accept/reject/cancel
	requestKey := auth.GenerateRequestKey(request.ID, h.cfg.RequestKeySalt)

	slog.Info("quote request submitted", "request_id", request.ID, "submitter", request.SubmitterID, "city", request.City)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitRequestResponse{
		RequestID:  request.ID,
		RequestKey: requestKey,
		Status:     request.Status,
	})
}

// GetMine handles GET /requests/mine
// Returns the calling customer's requests, newest first
func (h *RequestHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	submitterID := r.Header.Get("X-Customer-ID")
	if submitterID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "X-Customer-ID header required")
		return
	}

	requests, err := h.store.RequestsBySubmitter(submitterID)
	if err != nil {
		middleware.StoreErrorResponse(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, requests)
}

// GetAvailable handles GET /requests/available
// Lists open requests a vendor may still respond to, with sizing estimates.
// Without an X-Vendor-ID header it returns all open requests.
func (h *RequestHandler) GetAvailable(w http.ResponseWriter, r *http.Request) {
	vendorID := r.Header.Get("X-Vendor-ID")

	available, err := h.store.AvailableRequests(vendorID)
	if err != nil {
		middleware.StoreErrorResponse(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, available)
}

// GetByID handles GET /requests/{id}
func (h *RequestHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	requestID := r.PathValue("id")
	if requestID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "request id is required")
		return
	}

	request, err := h.store.RequestByID(requestID)
	if err != nil {
		middleware.StoreErrorResponse(w, err)
		return
	}

	responses, err := h.store.ResponsesForRequest(requestID)
	if err != nil {
		middleware.StoreErrorResponse(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RequestWithResponses{
		Request:   request,
		Responses: responses,
	})
}

// Cancel handles POST /requests/{id}/cancel
func (h *RequestHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	requestID := r.PathValue("id")
	if requestID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "request id is required")
		return
	}

	requestKey := r.Header.Get("X-Request-Key")
	if err := auth.ValidateRequestKey(requestID, requestKey, h.cfg.RequestKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid request key")
		return
	}

	request, err := h.store.CancelRequest(requestID)
	if err != nil {
		middleware.StoreErrorResponse(w, err)
		return
	}

	slog.Info("quote request cancelled", "request_id", requestID)

	cancelledAt := time.Now()
	if request.CancelledAt != nil {
		cancelledAt = *request.CancelledAt
	}
	middleware.JSONResponse(w, http.StatusOK, models.CancelRequestResponse{
		Status:      request.Status,
		CancelledAt: cancelledAt,
	})
}
