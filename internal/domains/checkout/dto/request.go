package dto

import (
	paymentDto "github.com/savioruz/pexiblock-checkout/internal/domains/payments/dto"
	"github.com/savioruz/pexiblock-checkout/pkg/constant"
)

// CheckoutForm mirrors the fields of the checkout page form.
type CheckoutForm struct {
	TotalAmount  string `json:"total_amount"        form:"total_amount"        validate:"required,amount"`
	CurrencyCode string `json:"currency_code"       form:"currency_code"       validate:"required,oneof=USD EUR GBP KES ZAR"`
	Email        string `json:"customer_email"      form:"customer_email"      validate:"required"`
	FirstName    string `json:"customer_first_name" form:"customer_first_name" validate:"required"`
	LastName     string `json:"customer_last_name"  form:"customer_last_name"  validate:"required"`
	Phone        string `json:"customer_phone"      form:"customer_phone"      validate:"required"`
}

// DefaultForm is what a fresh page load shows.
func DefaultForm() CheckoutForm {
	return CheckoutForm{
		TotalAmount:  constant.DefaultTotalAmount,
		CurrencyCode: constant.DefaultCurrencyCode,
	}
}

func (f CheckoutForm) ToPaymentRequest() paymentDto.CreatePaymentRequest {
	return paymentDto.CreatePaymentRequest{
		TotalAmount:  f.TotalAmount,
		CurrencyCode: f.CurrencyCode,
		CustomerDetails: paymentDto.CustomerDetails{
			Email:     f.Email,
			FirstName: f.FirstName,
			LastName:  f.LastName,
			Phone:     f.Phone,
		},
	}
}
