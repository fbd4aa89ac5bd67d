package domain

import (
	"errors"
)

const (
	// PremiumPriceIDR is the flat monthly premium price, in rupiah.
	PremiumPriceIDR int64 = 49000
	// PremiumDurationDays is how long one settlement extends premium.
	PremiumDurationDays = 30
)

var (
	MessageSuccessSubscribe = "subscription transaction created successfully"
	MessageSuccessWebhook   = "notification processed successfully"

	MessageFailedSubscribe = "failed to create subscription transaction"
	MessageFailedWebhook   = "failed to process notification"

	ErrPaymentFailed       = errors.New("payment processing failed")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidSignature    = errors.New("invalid webhook signature")
)

type (
	SubscribeRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	SubscribeResponse struct {
		OrderID    string `json:"order_id"`
		InvoiceURL string `json:"invoice_url"`
	}

	// MidtransNotification is the subset of the webhook payload we act on.
	MidtransNotification struct {
		OrderID           string `json:"order_id"`
		StatusCode        string `json:"status_code"`
		GrossAmount       string `json:"gross_amount"`
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status"`
		SignatureKey      string `json:"signature_key"`
	}
)
