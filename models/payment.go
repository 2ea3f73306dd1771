// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "fmt"

// Payment method constants
const (
	PaymentCash         = "cash"
	PaymentCard         = "card"
	PaymentWallet       = "digital_wallet"
	PaymentBNPL         = "bnpl"
	PaymentBankTransfer = "bank_transfer"
	PaymentCheck        = "check"
)

// PaymentSelection is the customer's choice of payment method at acceptance
// time. Each method uses only its own fields; Validate rejects selections
// that mix fields across methods or omit a required one.
type PaymentSelection struct {
	Method string `json:"method"`

	// card
	CardLast4 string `json:"card_last4,omitempty"`

	// digital_wallet
	WalletProvider string `json:"wallet_provider,omitempty"`

	// bnpl
	InstallmentMonths int `json:"installment_months,omitempty"`

	// bank_transfer
	IBAN string `json:"iban,omitempty"`

	// check
	CheckNumber string `json:"check_number,omitempty"`
}

// Validate checks that the selection carries exactly the fields its method
// requires and nothing from another method.
func (p PaymentSelection) Validate() error {
	switch p.Method {
	case PaymentCash:
		// No extra fields
	case PaymentCard:
		if len(p.CardLast4) != 4 {
			return fmt.Errorf("card payment requires card_last4 (4 digits)")
		}
	case PaymentWallet:
		if p.WalletProvider == "" {
			return fmt.Errorf("digital_wallet payment requires wallet_provider")
		}
	case PaymentBNPL:
		if p.InstallmentMonths <= 0 {
			return fmt.Errorf("bnpl payment requires installment_months")
		}
	case PaymentBankTransfer:
		if p.IBAN == "" {
			return fmt.Errorf("bank_transfer payment requires iban")
		}
	case PaymentCheck:
		if p.CheckNumber == "" {
			return fmt.Errorf("check payment requires check_number")
		}
	case "":
		return fmt.Errorf("payment method is required")
	default:
		return fmt.Errorf("unknown payment method: %s", p.Method)
	}

	if err := p.rejectForeignFields(); err != nil {
		return err
	}
	return nil
}

// rejectForeignFields ensures fields belonging to other methods are unset.
func (p PaymentSelection) rejectForeignFields() error {
	if p.Method != PaymentCard && p.CardLast4 != "" {
		return fmt.Errorf("card_last4 is only valid for card payments")
	}
	if p.Method != PaymentWallet && p.WalletProvider != "" {
		return fmt.Errorf("wallet_provider is only valid for digital_wallet payments")
	}
	if p.Method != PaymentBNPL && p.InstallmentMonths != 0 {
		return fmt.Errorf("installment_months is only valid for bnpl payments")
	}
	if p.Method != PaymentBankTransfer && p.IBAN != "" {
		return fmt.Errorf("iban is only valid for bank_transfer payments")
	}
	if p.Method != PaymentCheck && p.CheckNumber != "" {
		return fmt.Errorf("check_number is only valid for check payments")
	}
	return nil
}

// IsValidPropertyType reports whether t is a supported property type.
func IsValidPropertyType(t string) bool {
	switch t {
	case PropertyResidential, PropertyCommercial, PropertyIndustrial:
		return true
	}
	return false
}
