package response

import (
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/pexiblock-checkout/pkg/failure"
)

type Data[T any] struct {
	Data T `json:"data,omitempty"`
}

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message string `json:"message"`
}

func WithJSON(ctx *fiber.Ctx, code int, payload interface{}) error {
	return response(ctx, code, Data[any]{Data: payload})
}

func WithMessage(ctx *fiber.Ctx, code int, msg string) error {
	return response(ctx, code, Message{Message: msg})
}

func WithError(ctx *fiber.Ctx, err error) error {
	code := failure.GetCode(err)
	errMsg := err.Error()

	return response(ctx, code, Error{Error: &errMsg})
}

// WithHTML writes a rendered page.
func WithHTML(ctx *fiber.Ctx, code int, page []byte) error {
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)

	return ctx.Status(code).Send(page)
}

func response(ctx *fiber.Ctx, code int, payload interface{}) error {
	if payload == nil {
		return ctx.SendStatus(code)
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)

	if err := ctx.Status(code).JSON(payload); err != nil {
		return err
	}

	return nil
}
