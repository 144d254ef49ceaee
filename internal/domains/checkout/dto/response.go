package dto

type ViewMode string

const (
	ViewForm     ViewMode = "form"
	ViewCheckout ViewMode = "checkout"
)

// ViewState is what the checkout page renders. PaymentURL and Reference are
// only set in ViewCheckout; Error only in ViewForm.
type ViewState struct {
	Mode       ViewMode `json:"mode"                  example:"form"`
	PaymentURL string   `json:"payment_url,omitempty" example:"https://checkout.pexiblock.com/pay/abc"`
	Reference  string   `json:"reference,omitempty"   example:"REF-1700000000000"`
	Error      string   `json:"error,omitempty"       example:"bad currency"`
	Loading    bool     `json:"loading"`
}

func InitialState() ViewState {
	return ViewState{Mode: ViewForm}
}
