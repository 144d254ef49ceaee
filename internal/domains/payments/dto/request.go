package dto

type CustomerDetails struct {
	Email     string `json:"email"      validate:"required" example:"mail@example.com"`
	FirstName string `json:"first_name" validate:"required" example:"Jane"`
	LastName  string `json:"last_name"  validate:"required" example:"Doe"`
	Phone     string `json:"phone"      validate:"required" example:"+254748885672"`
}

// CreatePaymentRequest is the caller's input. ExternalReference and Metadata are
// defaulted by the service when empty.
type CreatePaymentRequest struct {
	TotalAmount       string          `json:"total_amount"                 validate:"required,amount"                    example:"100.00"`
	CurrencyCode      string          `json:"currency_code"                validate:"required,oneof=USD EUR GBP KES ZAR" example:"USD"`
	ExternalReference string          `json:"external_reference,omitempty" example:"REF-1700000000000"`
	CustomerDetails   CustomerDetails `json:"customer_details"`
	Metadata          map[string]any  `json:"metadata,omitempty"           swaggertype:"object"`
}

// BackendPaymentRequest is the body sent to the backend.
type BackendPaymentRequest struct {
	TotalAmount       string          `json:"total_amount"`
	CurrencyCode      string          `json:"currency_code"`
	PaymentMethod     string          `json:"payment_method"`
	ExternalReference string          `json:"external_reference"`
	CustomerDetails   CustomerDetails `json:"customer_details"`
	Metadata          map[string]any  `json:"metadata"`
}
