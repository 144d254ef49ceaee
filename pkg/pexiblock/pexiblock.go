package pexiblock

import (
	"fmt"

	"github.com/savioruz/pexiblock-checkout/pkg/constant"
	"github.com/valyala/fasthttp"
)

//go:generate go run go.uber.org/mock/mockgen -source=pexiblock.go -destination=mock/pexiblock_mock.go -package=mock github.com/savioruz/pexiblock-checkout/pkg/pexiblock Client

// Client sends payment-creation requests to the merchant backend.
type Client interface {
	CreatePayment(req Request) (Response, error)
}

// Request is a single POST to the backend. Credentials travel as headers only.
type Request struct {
	Endpoint  string
	APIKey    string
	APISecret string
	Body      []byte
}

type Response struct {
	StatusCode int
	Body       []byte
}

type client struct {
	http *fasthttp.Client
}

func New(name string) Client {
	return &client{
		http: &fasthttp.Client{
			Name: name,
		},
	}
}

// NewWithClient wraps an existing fasthttp client.
func NewWithClient(c *fasthttp.Client) Client {
	return &client{http: c}
}

func (c *client) CreatePayment(r Request) (Response, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()

	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.Header.DisableNormalizing()
	req.Header.SetMethod(fasthttp.MethodPost)
	req.SetRequestURI(r.Endpoint)
	req.Header.SetContentType(constant.ContentTypeJSON)
	req.Header.Set(constant.RequestHeaderAPIKey, r.APIKey)
	req.Header.Set(constant.RequestHeaderSecret, r.APISecret)
	req.SetBody(r.Body)

	if err := c.http.Do(req, resp); err != nil {
		return Response{}, fmt.Errorf("pexiblock: request failed: %w", err)
	}

	return Response{
		StatusCode: resp.StatusCode(),
		Body:       append([]byte(nil), resp.Body()...),
	}, nil
}
