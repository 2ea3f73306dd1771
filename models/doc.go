// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SubmitRequestRequest: submitter_id, property_type, address, city, monthly_bill_amount
  - AttachResponseRequest: system_size_kw, total_price, installment_months, warranty, validity
  - AcceptResponseRequest: optional payment selection
  - RegisterVendorRequest: name, rating
  - PlanPreviewRequest: total_price, months

# Response Types

Types for JSON responses:

  - SubmitRequestResponse: request_id, request_key, status
  - AttachResponseResponse: response_id, monthly_payment, request_status
  - AcceptResponseResponse: response, request_status, optional plan
  - RejectResponseResponse: response, request_status
  - CancelRequestResponse: status, cancelled_at
  - RegisterVendorResponse: vendor_id
  - PlanPreviewResponse: installment breakdown with cash price
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - QuoteRequest: customer request with lifecycle state and quote count
  - VendorResponse: an installer's offer against a request
  - Vendor: registered installer identity
  - AvailableRequest: open request with size and budget estimates
  - PaymentPlan: installment breakdown for a financed acceptance
  - PaymentSelection: tagged payment method variant, see payment.go

# Constants

Request status values:

	StatusPending   = "pending"
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"

Response status values:

	ResponseSubmitted = "submitted"
	ResponseAccepted  = "accepted"
	ResponseRejected  = "rejected"

Property types:

	PropertyResidential = "residential"
	PropertyCommercial  = "commercial"
	PropertyIndustrial  = "industrial"

Payment methods:

	PaymentCash, PaymentCard, PaymentWallet,
	PaymentBNPL, PaymentBankTransfer, PaymentCheck
*/
package models
