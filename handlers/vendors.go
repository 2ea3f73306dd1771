// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/solarmatch/cliparse"
	"github.com/danielhkuo/solarmatch/middleware"
	"github.com/danielhkuo/solarmatch/models"
	"github.com/danielhkuo/solarmatch/store"
)

type VendorHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewVendorHandler(st *store.Store, cfg cliparse.Config) *VendorHandler {
	return &VendorHandler{store: st, cfg: cfg}
}

// Register handles POST /vendors/register
func (h *VendorHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterVendorRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	vendor, err := h.store.RegisterVendor(req)
	if err != nil {
		middleware.StoreErrorResponse(w, err)
		return
	}

	slog.Info("vendor registered", "vendor_id", vendor.ID, "name", vendor.Name)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterVendorResponse{
		VendorID: vendor.ID,
	})
}

// GetMe handles GET /vendors/me
func (h *VendorHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	vendorID := r.Header.Get("X-Vendor-ID")
	if vendorID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "X-Vendor-ID header required")
		return
	}

	vendor, err := h.store.VendorByID(vendorID)
	if err != nil {
		middleware.StoreErrorResponse(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, vendor)
}

// MyResponses handles GET /vendors/me/responses
// Lists every response this vendor has submitted across all requests.
func (h *VendorHandler) MyResponses(w http.ResponseWriter, r *http.Request) {
	vendorID := r.Header.Get("X-Vendor-ID")
	if vendorID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "X-Vendor-ID header required")
		return
	}

	responses, err := h.store.ResponsesForVendor(vendorID)
	if err != nil {
		middleware.StoreErrorResponse(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, responses)
}
