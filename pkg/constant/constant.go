package constant

import (
	"errors"
)

const (
	PaymentMethodCard     = "card"
	ExternalReferencePfx  = "REF-"
	BackendCreatePath     = "/api/payment/create/"
	DefaultTotalAmount    = "100.00"
	DefaultCurrencyCode   = "USD"
	MetadataKeyTest       = "test"
	RequestHeaderAPIKey   = "X-API-Key"
	RequestHeaderSecret   = "X-API-Secret"
	RequestHeaderID       = "X-Request-ID"
	LocalsRequestID       = "request_id"
	LocalsSessionID       = "session_id"
	CurrencyValidationTag = "oneof=USD EUR GBP KES ZAR"
	ContentTypeJSON       = "application/json"
)

const (
	MessageSessionCreated   = "Payment session created successfully"
	MessageGenericFailure   = "Failed to create payment session"
	MessageRequiredFields   = "Please fill in all required fields"
	MessageMissingCreds     = "Missing API credentials. Please set PEXIBLOCK_API_KEY and PEXIBLOCK_API_SECRET"
	MessageMalformedNoURL   = "Malformed response: no payment URL received from backend"
	MessageMalformedBody    = "Malformed response from backend"
	MessageSubmissionActive = "A payment request is already in progress"
	MessageCheckoutActive   = "A payment session is already open, close it before starting another"
)

// Currency is one entry of the checkout currency selector.
type Currency struct {
	Code string
	Name string
}

// Currencies is the fixed allow-list, in selector order.
var Currencies = []Currency{
	{Code: "USD", Name: "US Dollar"},
	{Code: "EUR", Name: "Euro"},
	{Code: "GBP", Name: "British Pound"},
	{Code: "KES", Name: "Kenyan Shilling"},
	{Code: "ZAR", Name: "South African Rand"},
}

var (
	ErrInvalidAmount = errors.New("amount must be a non-negative decimal")
)
