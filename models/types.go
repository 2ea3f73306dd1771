// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Quote request status constants
const (
	StatusPending   = "pending"
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Vendor response status constants
const (
	ResponseSubmitted = "submitted"
	ResponseAccepted  = "accepted"
	ResponseRejected  = "rejected"
)

// Property type constants
const (
	PropertyResidential = "residential"
	PropertyCommercial  = "commercial"
	PropertyIndustrial  = "industrial"
)

// Request types

type SubmitRequestRequest struct {
	SubmitterID       string `json:"submitter_id"`
	PropertyType      string `json:"property_type"`
	Address           string `json:"address"`
	City              string `json:"city"`
	MonthlyBillAmount int64  `json:"monthly_bill_amount"`
	BudgetRange       string `json:"budget_range"`
}

type AttachResponseRequest struct {
	SystemSizeKw      float64    `json:"system_size_kw"`
	TotalPrice        int64      `json:"total_price"`
	InstallmentMonths int        `json:"installment_months"`
	WarrantyYears     int        `json:"warranty_years"`
	InstallationWeeks int        `json:"installation_weeks"`
	ValidUntil        *time.Time `json:"valid_until,omitempty"`
}

type AcceptResponseRequest struct {
	Payment *PaymentSelection `json:"payment,omitempty"`
}

type RegisterVendorRequest struct {
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
}

type PlanPreviewRequest struct {
	TotalPrice int64 `json:"total_price"`
	Months     int   `json:"months"`
}

// Response types

type SubmitRequestResponse struct {
	RequestID  string `json:"request_id"`
	RequestKey string `json:"request_key"`
	Status     string `json:"status"`
}

type AttachResponseResponse struct {
	ResponseID     string `json:"response_id"`
	MonthlyPayment int64  `json:"monthly_payment"`
	RequestStatus  string `json:"request_status"`
}

type AcceptResponseResponse struct {
	Response      VendorResponse `json:"response"`
	RequestStatus string         `json:"request_status"`
	Plan          *PaymentPlan   `json:"plan,omitempty"`
}

type RejectResponseResponse struct {
	Response      VendorResponse `json:"response"`
	RequestStatus string         `json:"request_status"`
}

type CancelRequestResponse struct {
	Status      string    `json:"status"`
	CancelledAt time.Time `json:"cancelled_at"`
}

type RegisterVendorResponse struct {
	VendorID string `json:"vendor_id"`
}

type PlanPreviewResponse struct {
	Months           int   `json:"months"`
	MonthlyPayment   int64 `json:"monthly_payment"`
	FinalInstallment int64 `json:"final_installment"`
	TotalPayable     int64 `json:"total_payable"`
	CashPrice        int64 `json:"cash_price"`
	CashSavings      int64 `json:"cash_savings"`
}

// PaymentPlan is the installment breakdown attached to an acceptance
// when the customer chose BNPL financing.
type PaymentPlan struct {
	Months           int   `json:"months"`
	MonthlyPayment   int64 `json:"monthly_payment"`
	FinalInstallment int64 `json:"final_installment"`
	TotalPayable     int64 `json:"total_payable"`
}

// Domain types

type QuoteRequest struct {
	ID                string     `json:"id"`
	SubmitterID       string     `json:"submitter_id"`
	PropertyType      string     `json:"property_type"`
	Address           string     `json:"address"`
	City              string     `json:"city"`
	MonthlyBillAmount int64      `json:"monthly_bill_amount"`
	BudgetRange       string     `json:"budget_range,omitempty"`
	Status            string     `json:"status"`
	SubmittedAt       time.Time  `json:"submitted_at"`
	CancelledAt       *time.Time `json:"cancelled_at,omitempty"`
	QuotesReceived    int        `json:"quotes_received"`
}

type VendorResponse struct {
	ID                string     `json:"id"`
	RequestID         string     `json:"request_id"`
	VendorID          string     `json:"vendor_id"`
	VendorName        string     `json:"vendor_name"`
	VendorRating      float64    `json:"vendor_rating"`
	SystemSizeKw      float64    `json:"system_size_kw"`
	TotalPrice        int64      `json:"total_price"`
	InstallmentMonths int        `json:"installment_months"`
	MonthlyPayment    int64      `json:"monthly_payment"`
	WarrantyYears     int        `json:"warranty_years"`
	InstallationWeeks int        `json:"installation_weeks"`
	Status            string     `json:"status"`
	SubmittedAt       time.Time  `json:"submitted_at"`
	ValidUntil        *time.Time `json:"valid_until,omitempty"`
	IPHash            *string    `json:"-"` // Never expose in JSON
	UserAgent         *string    `json:"-"` // Never expose in JSON
}

type RequestWithResponses struct {
	Request   QuoteRequest     `json:"request"`
	Responses []VendorResponse `json:"responses"`
}

// AvailableRequest is the vendor-facing projection of an open request,
// carrying the sizing and budget estimates vendors quote against.
type AvailableRequest struct {
	Request              QuoteRequest `json:"request"`
	SystemSizeKwEstimate int64        `json:"system_size_kw_estimate"`
	BudgetEstimate       int64        `json:"budget_estimate"`
}

type Vendor struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Rating     float64   `json:"rating"`
	CreatedAt  time.Time `json:"created_at"`
	LastSeenAt time.Time `json:"last_seen_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
