// Package api is the typed client for the admin REST API. Every call is a
// plain request/response: no retries, no caching, no special handling per
// status code. Failures collapse into one Error carrying the server's
// message when it sent one and the caller's fallback text otherwise.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/checkturnitin/adminctl/internal/auth"
)

const requestTimeout = 30 * time.Second

// Error is the flat failure the console surfaces as a transient notice.
type Error struct {
	StatusCode int
	Message    string
	cause      error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

// errorBody covers both envelope styles the backend uses.
type errorBody struct {
	Message string `json:"message"`
	Err     string `json:"error"`
}

type Client struct {
	http *resty.Client
	auth *auth.Context
	log  *logrus.Logger
}

func NewClient(serverURL string, authCtx *auth.Context, log *logrus.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(serverURL).
		SetTimeout(requestTimeout)

	httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-ID", uuid.NewString())
		return nil
	})

	httpClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.WithFields(logrus.Fields{
			"uri":      resp.Request.URL,
			"method":   resp.Request.Method,
			"status":   resp.StatusCode(),
			"duration": resp.Time(),
			"size":     len(resp.Body()),
		}).Debug("request completed")
		return nil
	})

	return &Client{
		http: httpClient,
		auth: authCtx,
		log:  log,
	}
}

// request builds an authenticated request. The bearer token comes from the
// auth context on every call, so a fresh login is picked up immediately.
func (c *Client) request(ctx context.Context) (*resty.Request, error) {
	token := c.auth.Token()
	if token == "" {
		return nil, auth.ErrNotLoggedIn
	}
	return c.http.R().SetContext(ctx).SetAuthToken(token), nil
}

// execute runs req, decodes a 2xx JSON body into out (when out is non-nil)
// and converts every failure into *Error with the given fallback message.
func (c *Client) execute(req *resty.Request, method, path string, out any, fallback string) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return &Error{Message: fallback, cause: err}
	}
	if resp.IsError() {
		return c.responseError(resp, fallback)
	}
	if out != nil {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return &Error{
				StatusCode: resp.StatusCode(),
				Message:    fallback,
				cause:      fmt.Errorf("failed to decode response: %w", err),
			}
		}
	}
	return nil
}

func (c *Client) responseError(resp *resty.Response, fallback string) error {
	apiErr := &Error{
		StatusCode: resp.StatusCode(),
		Message:    fallback,
	}
	var body errorBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		if body.Message != "" {
			apiErr.Message = body.Message
		} else if body.Err != "" {
			apiErr.Message = body.Err
		}
	}
	return apiErr
}

func (c *Client) get(ctx context.Context, path string, query map[string]string, out any, fallback string) error {
	req, err := c.request(ctx)
	if err != nil {
		return err
	}
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	return c.execute(req, resty.MethodGet, path, out, fallback)
}

func (c *Client) send(ctx context.Context, method, path string, body, out any, fallback string) error {
	req, err := c.request(ctx)
	if err != nil {
		return err
	}
	if body != nil {
		req.SetBody(body)
	}
	return c.execute(req, method, path, out, fallback)
}

// download fetches a binary endpoint (CSV/PDF exports) and returns the raw
// body. Failures are reported exactly like any other request.
func (c *Client) download(ctx context.Context, method, path string, query map[string]string, body any, fallback string) ([]byte, error) {
	req, err := c.request(ctx)
	if err != nil {
		return nil, err
	}
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, &Error{Message: fallback, cause: err}
	}
	if resp.IsError() {
		return nil, c.responseError(resp, fallback)
	}
	return resp.Body(), nil
}
