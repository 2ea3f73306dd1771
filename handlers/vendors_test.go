// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/solarmatch/models"
	"github.com/danielhkuo/solarmatch/store"
	"github.com/danielhkuo/solarmatch/testutil"
)

func TestRegister(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewVendorHandler(store.New(conn), testutil.GetTestConfig())

	body := models.RegisterVendorRequest{Name: "Desert Solar Co", Rating: 4.7}
	req := testutil.MakeRequest("POST", "/vendors/register", body, nil)
	w := httptest.NewRecorder()

	handler.Register(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.RegisterVendorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.VendorID == "" {
		t.Error("Expected a vendor ID")
	}
}

func TestRegister_Invalid(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewVendorHandler(store.New(conn), testutil.GetTestConfig())

	tests := []struct {
		name string
		body models.RegisterVendorRequest
	}{
		{"missing name", models.RegisterVendorRequest{Rating: 4.0}},
		{"rating too high", models.RegisterVendorRequest{Name: "Desert Solar Co", Rating: 5.5}},
		{"negative rating", models.RegisterVendorRequest{Name: "Desert Solar Co", Rating: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/vendors/register", tt.body, nil)
			w := httptest.NewRecorder()

			handler.Register(w, req)

			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}
}

func TestGetMe(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewVendorHandler(store.New(conn), testutil.GetTestConfig())

	vendorID := testutil.CreateTestVendor(t, conn, "Desert Solar Co", 4.7)

	req := testutil.MakeRequest("GET", "/vendors/me", nil, map[string]string{"X-Vendor-ID": vendorID})
	w := httptest.NewRecorder()

	handler.GetMe(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var vendor models.Vendor
	testutil.AssertJSON(t, w, &vendor)
	if vendor.ID != vendorID {
		t.Errorf("Vendor ID = %s, want %s", vendor.ID, vendorID)
	}
	if vendor.Name != "Desert Solar Co" {
		t.Errorf("Name = %s, want Desert Solar Co", vendor.Name)
	}
}

func TestGetMe_Unknown(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewVendorHandler(store.New(conn), testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/vendors/me", nil, map[string]string{"X-Vendor-ID": "ghost"})
	w := httptest.NewRecorder()

	handler.GetMe(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestMyResponses(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewVendorHandler(store.New(conn), cfg)

	requestID, _ := testutil.CreateTestRequest(t, conn, cfg, models.StatusActive)
	vendorID := testutil.CreateTestVendor(t, conn, "Desert Solar Co", 4.7)
	testutil.AttachTestResponse(t, conn, requestID, vendorID, models.ResponseSubmitted, 85000)

	req := testutil.MakeRequest("GET", "/vendors/me/responses", nil, map[string]string{"X-Vendor-ID": vendorID})
	w := httptest.NewRecorder()

	handler.MyResponses(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var responses []models.VendorResponse
	testutil.AssertJSON(t, w, &responses)
	if len(responses) != 1 {
		t.Errorf("Expected 1 response, got %d", len(responses))
	}
}

func TestMyResponses_RequiresHeader(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewVendorHandler(store.New(conn), testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/vendors/me/responses", nil, nil)
	w := httptest.NewRecorder()

	handler.MyResponses(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}
