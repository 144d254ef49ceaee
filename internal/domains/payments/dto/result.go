package dto

import "github.com/savioruz/pexiblock-checkout/pkg/constant"

type FailureKind string

const (
	// FailureConfiguration means credentials were missing; nothing was sent.
	FailureConfiguration FailureKind = "configuration"
	// FailureRequest covers both unreachable backends and rejected requests.
	FailureRequest FailureKind = "request"
	// FailureMalformed means the backend answered 2xx but the body was unusable.
	FailureMalformed FailureKind = "malformed"
)

type PaymentSession struct {
	PaymentURL string
	Reference  string
	Message    string
}

type PaymentFailure struct {
	ErrorMessage string
	Kind         FailureKind
}

// PaymentResult holds exactly one of Session or Failure. Build it with
// Succeeded or Failed.
type PaymentResult struct {
	Session *PaymentSession
	Failure *PaymentFailure
}

// Succeeded returns a successful result, or a malformed failure when url is empty.
func Succeeded(url, reference, message string) PaymentResult {
	if url == "" {
		return Failed(FailureMalformed, constant.MessageMalformedNoURL)
	}

	return PaymentResult{Session: &PaymentSession{
		PaymentURL: url,
		Reference:  reference,
		Message:    message,
	}}
}

func Failed(kind FailureKind, message string) PaymentResult {
	return PaymentResult{Failure: &PaymentFailure{
		ErrorMessage: message,
		Kind:         kind,
	}}
}

func (r PaymentResult) OK() bool {
	return r.Session != nil && r.Failure == nil
}

func (r PaymentResult) ToResponse() CreatePaymentResponse {
	if r.Session == nil {
		return CreatePaymentResponse{}
	}

	return CreatePaymentResponse{
		PaymentURL: r.Session.PaymentURL,
		Reference:  r.Session.Reference,
		Message:    r.Session.Message,
	}
}
