package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/pexiblock-checkout/internal/domains/payments/dto"
	"github.com/savioruz/pexiblock-checkout/internal/domains/payments/mock"
	log "github.com/savioruz/pexiblock-checkout/pkg/logger/mock"
	"github.com/savioruz/pexiblock-checkout/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const validBody = `{
	"total_amount": "100.00",
	"currency_code": "USD",
	"customer_details": {"email": "jane@example.com", "first_name": "Jane", "last_name": "Doe", "phone": "+254748885672"}
}`

func setup(t *testing.T) (*fiber.App, *mock.MockPaymentService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := mock.NewMockPaymentService(ctrl)
	mockLogger := log.NewMockInterface(ctrl)
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

	app := fiber.New()
	New(mockService, mockLogger, validation.New()).RegisterRoutes(app.Group("/v1"))

	return app, mockService
}

func do(t *testing.T, app *fiber.App, body string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/v1/payments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))

	return res.StatusCode, out
}

func TestHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		app, mockService := setup(t)

		mockService.EXPECT().
			CreatePayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req dto.CreatePaymentRequest) dto.PaymentResult {
				assert.Equal(t, "Jane", req.CustomerDetails.FirstName)

				return dto.Succeeded("https://x", "R1", "Payment session created successfully")
			})

		code, out := do(t, app, validBody)

		assert.Equal(t, http.StatusCreated, code)
		assert.Equal(t, map[string]any{
			"payment_url": "https://x",
			"reference":   "R1",
			"message":     "Payment session created successfully",
		}, out["data"])
	})

	t.Run("error: missing customer field", func(t *testing.T) {
		app, mockService := setup(t)
		mockService.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Times(0)

		body := strings.Replace(validBody, `"phone": "+254748885672"`, `"phone": ""`, 1)
		code, out := do(t, app, body)

		assert.Equal(t, http.StatusBadRequest, code)
		assert.Contains(t, out["error"], "Phone")
	})

	t.Run("error: unsupported currency", func(t *testing.T) {
		app, mockService := setup(t)
		mockService.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Times(0)

		code, _ := do(t, app, strings.Replace(validBody, `"USD"`, `"JPY"`, 1))

		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("error: invalid json", func(t *testing.T) {
		app, _ := setup(t)

		code, _ := do(t, app, `{"total_amount":`)

		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("error: backend rejection", func(t *testing.T) {
		app, mockService := setup(t)

		mockService.EXPECT().
			CreatePayment(gomock.Any(), gomock.Any()).
			Return(dto.Failed(dto.FailureRequest, "bad currency"))

		code, out := do(t, app, validBody)

		assert.Equal(t, http.StatusBadGateway, code)
		assert.Equal(t, "bad currency", out["error"])
	})

	t.Run("error: configuration", func(t *testing.T) {
		app, mockService := setup(t)

		mockService.EXPECT().
			CreatePayment(gomock.Any(), gomock.Any()).
			Return(dto.Failed(dto.FailureConfiguration, "Missing API credentials"))

		code, _ := do(t, app, validBody)

		assert.Equal(t, http.StatusInternalServerError, code)
	})
}

func TestToError(t *testing.T) {
	assert.Equal(t, "malformed", ToError(dto.PaymentFailure{Kind: dto.FailureMalformed, ErrorMessage: "malformed"}).Error())
}
