// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/solarmatch/auth"
	"github.com/danielhkuo/solarmatch/cliparse"
	"github.com/danielhkuo/solarmatch/middleware"
	"github.com/danielhkuo/solarmatch/models"
	"github.com/danielhkuo/solarmatch/store"
)

type ResponseHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewResponseHandler(st *store.Store, cfg cliparse.Config) *ResponseHandler {
	return &ResponseHandler{store: st, cfg: cfg}
}

// Attach handles POST /requests/{id}/responses
// The calling vendor must be registered; name and rating come from the
// registry, not the payload.
func (h *ResponseHandler) Attach(w http.ResponseWriter, r *http.Request) {
	requestID := r.PathValue("id")
	if requestID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "request id is required")
		return
	}

	vendorID := r.Header.Get("X-Vendor-ID")
	if vendorID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "X-Vendor-ID header required")
		return
	}

	vendor, err := h.store.VendorByID(vendorID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Vendor is not registered")
		return
	}
	if err != nil {
		middleware.StoreErrorResponse(w, err)
		return
	}

	var req models.AttachResponseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Audit fields, stored but never exposed
	ipHash := auth.HashIP(middleware.GetClientIP(r), h.cfg.RequestKeySalt)
	var userAgent *string
	if ua := r.UserAgent(); ua != "" {
		userAgent = &ua
	}

	response, err := h.store.AttachResponse(requestID, vendor, req, &ipHash, userAgent)
	if err != nil {
		middleware.StoreErrorResponse(w, err)
		return
	}

	slog.Info("vendor response attached",
		"request_id", requestID,
		"response_id", response.ID,
		"vendor_id", vendor.ID,
		"total_price", response.TotalPrice,
	)

	middleware.JSONResponse(w, http.StatusCreated, models.AttachResponseResponse{
		ResponseID:     response.ID,
		MonthlyPayment: response.MonthlyPayment,
		RequestStatus:  models.StatusActive,
	})
}

// ListForRequest handles GET /requests/{id}/responses
func (h *ResponseHandler) ListForRequest(w http.ResponseWriter, r *http.Request) {
	requestID := r.PathValue("id")
	if requestID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "request id is required")
		return
	}

	responses, err := h.store.ResponsesForRequest(requestID)
	if err != nil {
		middleware.StoreErrorResponse(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, responses)
}
