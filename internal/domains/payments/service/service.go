package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/savioruz/pexiblock-checkout/config"
	"github.com/savioruz/pexiblock-checkout/internal/domains/payments/dto"
	"github.com/savioruz/pexiblock-checkout/pkg/constant"
	"github.com/savioruz/pexiblock-checkout/pkg/helper"
	"github.com/savioruz/pexiblock-checkout/pkg/logger"
	"github.com/savioruz/pexiblock-checkout/pkg/metrics"
	"github.com/savioruz/pexiblock-checkout/pkg/pexiblock"
)

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../mock/service_mock.go -package=mock github.com/savioruz/pexiblock-checkout/internal/domains/payments/service PaymentService

// PaymentService asks the merchant backend for a hosted payment session.
// CreatePayment never returns an error; every failure is a Failure result.
type PaymentService interface {
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) dto.PaymentResult
}

type paymentService struct {
	cfg    *config.Config
	client pexiblock.Client
	logger logger.Interface
	now    func() time.Time
}

func New(cfg *config.Config, c pexiblock.Client, l logger.Interface) PaymentService {
	return &paymentService{
		cfg:    cfg,
		client: c,
		logger: l,
		now:    time.Now,
	}
}

const (
	identifier = "service - payments - %s"
)

func (s *paymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) dto.PaymentResult {
	backend := s.cfg.Backend
	endpoint := strings.TrimRight(backend.BaseURL, "/") + constant.BackendCreatePath
	reqID := requestID(ctx)

	s.logger.Debug(identifier+" - request_id: %s - endpoint: %s", "CreatePayment", reqID, endpoint)
	s.logger.Debug(identifier+" - request_id: %s - api key set: %t, api secret set: %t",
		"CreatePayment", reqID, backend.APIKey != "", backend.APISecret != "")

	if !backend.HasCredentials() {
		s.logger.Error(identifier+" - request_id: %s - missing API credentials", "CreatePayment", reqID)

		return record(dto.Failed(dto.FailureConfiguration, constant.MessageMissingCreds))
	}

	body, err := json.Marshal(BuildBackendRequest(req, s.now()))
	if err != nil {
		s.logger.Error(identifier+" - request_id: %s - failed to encode payload: %v", "CreatePayment", reqID, err)

		return record(dto.Failed(dto.FailureRequest, err.Error()))
	}

	s.logger.Debug(identifier+" - request_id: %s - payload: %s", "CreatePayment", reqID, body)

	res, err := s.client.CreatePayment(pexiblock.Request{
		Endpoint:  endpoint,
		APIKey:    backend.APIKey,
		APISecret: backend.APISecret,
		Body:      body,
	})
	if err != nil {
		s.logger.Error(identifier+" - request_id: %s - network error, backend may not be running at %s: %v",
			"CreatePayment", reqID, backend.BaseURL, err)

		return record(Normalize(0, nil, err))
	}

	s.logger.Info(identifier+" - request_id: %s - response status: %d", "CreatePayment", reqID, res.StatusCode)

	if !isSuccessStatus(res.StatusCode) {
		s.logger.Error(identifier+" - request_id: %s - backend rejected the request, check the payload format: status %d, body %s",
			"CreatePayment", reqID, res.StatusCode, res.Body)
	}

	result := Normalize(res.StatusCode, res.Body, nil)
	if result.Failure != nil && result.Failure.Kind == dto.FailureMalformed {
		s.logger.Warn(identifier+" - request_id: %s - unusable backend response: %s", "CreatePayment", reqID, res.Body)
	}

	return record(result)
}

// BuildBackendRequest fills the fixed and defaulted fields of the backend body.
func BuildBackendRequest(req dto.CreatePaymentRequest, now time.Time) dto.BackendPaymentRequest {
	reference := req.ExternalReference
	if reference == "" {
		reference = helper.GenerateReference(now)
	}

	metadata := req.Metadata
	if metadata == nil {
		metadata = map[string]any{constant.MetadataKeyTest: false}
	}

	return dto.BackendPaymentRequest{
		TotalAmount:       req.TotalAmount,
		CurrencyCode:      req.CurrencyCode,
		PaymentMethod:     constant.PaymentMethodCard,
		ExternalReference: reference,
		CustomerDetails:   req.CustomerDetails,
		Metadata:          metadata,
	}
}

func record(result dto.PaymentResult) dto.PaymentResult {
	if result.Failure != nil {
		metrics.RecordPayment(string(result.Failure.Kind))
	} else {
		metrics.RecordPayment(metrics.OutcomeSuccess)
	}

	return result
}

func requestID(ctx context.Context) string {
	if ctx != nil {
		if id, ok := ctx.Value(constant.LocalsRequestID).(string); ok && id != "" {
			return id
		}
	}

	return "unknown"
}
