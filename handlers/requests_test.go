// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/lib/pq"

	"github.com/danielhkuo/solarmatch/models"
	"github.com/danielhkuo/solarmatch/store"
	"github.com/danielhkuo/solarmatch/testutil"
)

func submitBody() models.SubmitRequestRequest {
	return models.SubmitRequestRequest{
		SubmitterID:       "customer-1",
		PropertyType:      models.PropertyResidential,
		Address:           "12 Olaya Street",
		City:              "Riyadh",
		MonthlyBillAmount: 850,
	}
}

func TestSubmit(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewRequestHandler(store.New(conn), cfg)

	req := testutil.MakeRequest("POST", "/requests", submitBody(), nil)
	w := httptest.NewRecorder()

	handler.Submit(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.SubmitRequestResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.RequestID == "" {
		t.Error("Expected a request ID")
	}
	if resp.RequestKey == "" {
		t.Error("Expected a request key")
	}
	if resp.Status != models.StatusPending {
		t.Errorf("Status = %s, want pending", resp.Status)
	}
}

func TestSubmit_Invalid(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewRequestHandler(store.New(conn), cfg)

	tests := []struct {
		name   string
		mutate func(*models.SubmitRequestRequest)
	}{
		{"zero bill", func(r *models.SubmitRequestRequest) { r.MonthlyBillAmount = 0 }},
		{"negative bill", func(r *models.SubmitRequestRequest) { r.MonthlyBillAmount = -10 }},
		{"missing submitter", func(r *models.SubmitRequestRequest) { r.SubmitterID = "" }},
		{"bad property type", func(r *models.SubmitRequestRequest) { r.PropertyType = "boat" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := submitBody()
			tt.mutate(&body)

			req := testutil.MakeRequest("POST", "/requests", body, nil)
			w := httptest.NewRecorder()

			handler.Submit(w, req)

			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}
}

func TestGetMine(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	st := store.New(conn)
	handler := NewRequestHandler(st, cfg)

	if _, err := st.SubmitRequest(submitBody()); err != nil {
		t.Fatal(err)
	}

	req := testutil.MakeRequest("GET", "/requests/mine", nil, map[string]string{"X-Customer-ID": "customer-1"})
	w := httptest.NewRecorder()

	handler.GetMine(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var requests []models.QuoteRequest
	testutil.AssertJSON(t, w, &requests)
	if len(requests) != 1 {
		t.Errorf("Expected 1 request, got %d", len(requests))
	}
}

func TestGetMine_RequiresHeader(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewRequestHandler(store.New(conn), testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/requests/mine", nil, nil)
	w := httptest.NewRecorder()

	handler.GetMine(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestGetByID(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewRequestHandler(store.New(conn), cfg)

	requestID, _ := testutil.CreateTestRequest(t, conn, cfg, models.StatusActive)
	vendorID := testutil.CreateTestVendor(t, conn, "Test Vendor", 4.5)
	testutil.AttachTestResponse(t, conn, requestID, vendorID, models.ResponseSubmitted, 85000)

	req := testutil.MakeRequest("GET", "/requests/"+requestID, nil, nil)
	req.SetPathValue("id", requestID)
	w := httptest.NewRecorder()

	handler.GetByID(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.RequestWithResponses
	testutil.AssertJSON(t, w, &resp)

	if resp.Request.ID != requestID {
		t.Errorf("Request ID = %s, want %s", resp.Request.ID, requestID)
	}
	if len(resp.Responses) != 1 {
		t.Fatalf("Expected 1 response, got %d", len(resp.Responses))
	}
	if resp.Request.QuotesReceived != len(resp.Responses) {
		t.Errorf("QuotesReceived = %d, want %d", resp.Request.QuotesReceived, len(resp.Responses))
	}
}

func TestGetByID_NotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewRequestHandler(store.New(conn), testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/requests/missing", nil, nil)
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()

	handler.GetByID(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestCancel(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewRequestHandler(store.New(conn), cfg)

	requestID, requestKey := testutil.CreateTestRequest(t, conn, cfg, models.StatusPending)

	req := testutil.MakeRequest("POST", "/requests/"+requestID+"/cancel", nil, map[string]string{"X-Request-Key": requestKey})
	req.SetPathValue("id", requestID)
	w := httptest.NewRecorder()

	handler.Cancel(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.CancelRequestResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Status != models.StatusCancelled {
		t.Errorf("Status = %s, want cancelled", resp.Status)
	}

	// Second cancel conflicts
	req = testutil.MakeRequest("POST", "/requests/"+requestID+"/cancel", nil, map[string]string{"X-Request-Key": requestKey})
	req.SetPathValue("id", requestID)
	w = httptest.NewRecorder()

	handler.Cancel(w, req)

	testutil.AssertStatus(t, w, http.StatusConflict)
}

func TestCancel_InvalidKey(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewRequestHandler(store.New(conn), cfg)

	requestID, _ := testutil.CreateTestRequest(t, conn, cfg, models.StatusPending)

	req := testutil.MakeRequest("POST", "/requests/"+requestID+"/cancel", nil, map[string]string{"X-Request-Key": "wrong"})
	req.SetPathValue("id", requestID)
	w := httptest.NewRecorder()

	handler.Cancel(w, req)

	testutil.AssertStatus(t, w, http.StatusUnauthorized)
}

func TestGetAvailable(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	st := store.New(conn)
	handler := NewRequestHandler(st, cfg)

	if _, err := st.SubmitRequest(submitBody()); err != nil {
		t.Fatal(err)
	}

	req := testutil.MakeRequest("GET", "/requests/available", nil, nil)
	w := httptest.NewRecorder()

	handler.GetAvailable(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var available []models.AvailableRequest
	testutil.AssertJSON(t, w, &available)
	if len(available) != 1 {
		t.Fatalf("Expected 1 available request, got %d", len(available))
	}
	if available[0].SystemSizeKwEstimate != 13 || available[0].BudgetEstimate != 84500 {
		t.Errorf("Estimates = %d kW / %d, want 13 kW / 84500",
			available[0].SystemSizeKwEstimate, available[0].BudgetEstimate)
	}
}
