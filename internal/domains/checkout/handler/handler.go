package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/pexiblock-checkout/config"
	"github.com/savioruz/pexiblock-checkout/internal/delivery/http/response"
	"github.com/savioruz/pexiblock-checkout/internal/domains/checkout/controller"
	"github.com/savioruz/pexiblock-checkout/internal/domains/checkout/dto"
	"github.com/savioruz/pexiblock-checkout/pkg/constant"
	"github.com/savioruz/pexiblock-checkout/pkg/failure"
	"github.com/savioruz/pexiblock-checkout/pkg/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type Handler struct {
	registry *controller.Registry
	logger   logger.Interface
	cfg      *config.Config
}

func New(r *controller.Registry, l logger.Interface, cfg *config.Config) *Handler {
	return &Handler{
		registry: r,
		logger:   l,
		cfg:      cfg,
	}
}

const (
	identifier = "http - checkout - %s"

	routepath = "/checkout"
)

type page struct {
	Title      string
	State      dto.ViewState
	Form       dto.CheckoutForm
	Prompt     string
	Currencies []constant.Currency
}

// RegisterRoutes mounts the browser pages.
func (h *Handler) RegisterRoutes(r fiber.Router) {
	r.Get("/", h.Index)

	checkout := r.Group(routepath)

	checkout.Post("/", h.Submit)
	checkout.Post("/reset", h.Reset)
}

// RegisterAPIRoutes mounts the JSON view-state endpoints.
func (h *Handler) RegisterAPIRoutes(r fiber.Router) {
	checkout := r.Group(routepath)

	checkout.Get("/state", h.State)
	checkout.Post("/reset", h.ResetState)
}

// Index always starts from an empty form, so a reload never resumes a checkout.
func (h *Handler) Index(ctx *fiber.Ctx) error {
	c := h.session(ctx)

	return h.render(ctx, http.StatusOK, page{State: c.Reset(), Form: dto.DefaultForm()})
}

func (h *Handler) Submit(ctx *fiber.Ctx) error {
	c := h.session(ctx)

	var form dto.CheckoutForm

	if err := ctx.BodyParser(&form); err != nil {
		h.logger.Error(identifier+" - body parser error: %v", "Submit", err)

		return h.render(ctx, http.StatusBadRequest, page{State: c.State(), Form: dto.DefaultForm(), Prompt: err.Error()})
	}

	state, err := c.Submit(ctx.Context(), form)
	if err != nil {
		code := failure.GetCode(err)
		if code == http.StatusBadRequest {
			code = http.StatusUnprocessableEntity
		}

		return h.render(ctx, code, page{State: state, Form: form, Prompt: err.Error()})
	}

	if state.Mode == dto.ViewCheckout {
		return h.render(ctx, http.StatusOK, page{State: state})
	}

	return h.render(ctx, http.StatusOK, page{State: state, Form: form})
}

func (h *Handler) Reset(ctx *fiber.Ctx) error {
	c := h.session(ctx)

	return h.render(ctx, http.StatusOK, page{State: c.Reset(), Form: dto.DefaultForm()})
}

// State godoc
// @Summary Checkout view state
// @Description Current view state of the caller's checkout session
// @Tags checkout
// @Produce json
// @Success 200 {object} response.Data[dto.ViewState]
// @Router /checkout/state [get]
func (h *Handler) State(ctx *fiber.Ctx) error {
	c := h.session(ctx)

	return response.WithJSON(ctx, fiber.StatusOK, c.State())
}

// ResetState godoc
// @Summary Reset checkout view
// @Description Return the caller's checkout session to the empty form
// @Tags checkout
// @Produce json
// @Success 200 {object} response.Message
// @Router /checkout/reset [post]
func (h *Handler) ResetState(ctx *fiber.Ctx) error {
	h.session(ctx).Reset()

	return response.WithMessage(ctx, fiber.StatusOK, "checkout reset")
}

func (h *Handler) session(ctx *fiber.Ctx) *controller.Controller {
	id, c, created := h.registry.Resolve(ctx.Cookies(h.cfg.Session.CookieName))
	if created {
		ctx.Cookie(&fiber.Cookie{
			Name:     h.cfg.Session.CookieName,
			Value:    id,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}

	ctx.Locals(constant.LocalsSessionID, id)

	return c
}

func (h *Handler) render(ctx *fiber.Ctx, code int, p page) error {
	p.Title = h.cfg.App.Name
	p.Currencies = constant.Currencies

	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, "page", p); err != nil {
		h.logger.Error(identifier+" - failed to render page: %v", "render", err)

		return response.WithError(ctx, failure.InternalError(err))
	}

	return response.WithHTML(ctx, code, buf.Bytes())
}
