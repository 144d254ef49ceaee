package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/savioruz/pexiblock-checkout/internal/domains/payments/dto"
	"github.com/savioruz/pexiblock-checkout/pkg/constant"
	"github.com/savioruz/pexiblock-checkout/pkg/helper"
)

var errNotObject = errors.New("response body is not a JSON object")

// Normalize turns one backend exchange into a PaymentResult.
//
// Field priority: payment_url over url, reference over external_reference,
// error over message. A transport error means no response was received.
func Normalize(status int, body []byte, transportErr error) dto.PaymentResult {
	if transportErr != nil {
		return dto.Failed(dto.FailureRequest, helper.FirstNonEmpty(transportErr.Error(), constant.MessageGenericFailure))
	}

	raw, decodeErr := DecodeBackendResponse(body)

	if !isSuccessStatus(status) {
		return dto.Failed(dto.FailureRequest, helper.FirstNonEmpty(
			raw.Error,
			raw.Message,
			fmt.Sprintf("request failed with status code %d", status),
		))
	}

	if decodeErr != nil {
		return dto.Failed(dto.FailureMalformed, constant.MessageMalformedBody)
	}

	if !raw.Success {
		return dto.Failed(dto.FailureRequest, helper.FirstNonEmpty(
			raw.Error,
			raw.Message,
			constant.MessageGenericFailure,
		))
	}

	url := helper.FirstNonEmpty(raw.PaymentURL, raw.URL)
	if url == "" {
		return dto.Failed(dto.FailureMalformed, constant.MessageMalformedNoURL)
	}

	return dto.Succeeded(
		url,
		helper.FirstNonEmpty(raw.Reference, raw.ExternalReference),
		helper.FirstNonEmpty(raw.Message, constant.MessageSessionCreated),
	)
}

// DecodeBackendResponse reads the known fields from a JSON object. Fields with
// unexpected types are treated as absent; success is true only for a JSON true.
func DecodeBackendResponse(body []byte) (dto.BackendPaymentResponse, error) {
	var fields map[string]any

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	if err := dec.Decode(&fields); err != nil {
		return dto.BackendPaymentResponse{}, err
	}

	if fields == nil {
		return dto.BackendPaymentResponse{}, errNotObject
	}

	success, _ := fields["success"].(bool)

	return dto.BackendPaymentResponse{
		Success:           success,
		PaymentURL:        stringField(fields, "payment_url"),
		URL:               stringField(fields, "url"),
		Reference:         stringField(fields, "reference"),
		ExternalReference: stringField(fields, "external_reference"),
		Message:           stringField(fields, "message"),
		Error:             stringField(fields, "error"),
	}, nil
}

func stringField(fields map[string]any, key string) string {
	switch v := fields[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

func isSuccessStatus(status int) bool {
	return status >= 200 && status < 300
}
