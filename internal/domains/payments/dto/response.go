package dto

// BackendPaymentResponse is the raw backend body. Both URL and reference may
// arrive under two field names.
type BackendPaymentResponse struct {
	Success           bool   `json:"success"`
	PaymentURL        string `json:"payment_url"`
	URL               string `json:"url"`
	Reference         string `json:"reference"`
	ExternalReference string `json:"external_reference"`
	Message           string `json:"message"`
	Error             string `json:"error"`
}

type CreatePaymentResponse struct {
	PaymentURL string `json:"payment_url" example:"https://checkout.pexiblock.com/pay/abc"`
	Reference  string `json:"reference"   example:"REF-1700000000000"`
	Message    string `json:"message"     example:"Payment session created successfully"`
}
