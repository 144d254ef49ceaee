package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/pexiblock-checkout/internal/delivery/http/response"
	"github.com/savioruz/pexiblock-checkout/internal/domains/payments/dto"
	"github.com/savioruz/pexiblock-checkout/internal/domains/payments/service"
	"github.com/savioruz/pexiblock-checkout/pkg/failure"
	"github.com/savioruz/pexiblock-checkout/pkg/logger"
	"github.com/savioruz/pexiblock-checkout/pkg/validation"
)

type Handler struct {
	service   service.PaymentService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.PaymentService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

const (
	identifier = "http - payments - %s"

	routepath = "/payments"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	payments := r.Group(routepath)

	payments.Post("/", h.Create)
}

// Create godoc
// @Summary Create payment session
// @Description Request a hosted payment page from the merchant backend
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body dto.CreatePaymentRequest true "Payment request"
// @Success 201 {object} response.Data[dto.CreatePaymentResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /payments [post]
func (h *Handler) Create(ctx *fiber.Ctx) error {
	var req dto.CreatePaymentRequest

	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error(identifier+" - body parser error: %v", "Create", err)

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		transformErr := failure.BadRequestFromString(validation.Describe(err))

		h.logger.Error(identifier+" - validation error: %v", "Create", transformErr)

		return response.WithError(ctx, transformErr)
	}

	result := h.service.CreatePayment(ctx.Context(), req)
	if result.Failure != nil {
		return response.WithError(ctx, ToError(*result.Failure))
	}

	return response.WithJSON(ctx, fiber.StatusCreated, result.ToResponse())
}

// ToError maps a failed payment result onto an HTTP failure.
func ToError(f dto.PaymentFailure) error {
	switch f.Kind {
	case dto.FailureConfiguration:
		return &failure.Failure{Code: http.StatusInternalServerError, Message: f.ErrorMessage}
	default:
		return failure.BadGateway(f.ErrorMessage)
	}
}
