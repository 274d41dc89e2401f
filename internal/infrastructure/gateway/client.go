package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/plantpass/pos-api/internal/config"
	domaingw "github.com/plantpass/pos-api/internal/domain/gateway"
	"github.com/plantpass/pos-api/pkg/apperror"
)

// Client is the shared HTTP plumbing for all backend gateways: JSON codec,
// bearer forwarding, timeout, and the error mapping of the API contract
// (transport failure -> 502, non-2xx -> backend status + message, 204 ->
// success with no body).
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a gateway client with the configured explicit timeout.
// Timeouts surface as network errors; retry is left to the user.
func NewClient(cfg *config.GatewayConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// errorBody is the backend's error envelope; some handlers use "message",
// others "error".
type errorBody struct {
	Message string `json:"message"`
	ErrMsg  string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperror.NewBadRequestError("invalid request payload: " + err.Error())
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return apperror.NewBadRequestError("invalid gateway request: " + err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	if token, ok := domaingw.TokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apperror.NewNetworkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		msg := eb.Message
		if msg == "" {
			msg = eb.ErrMsg
		}
		return apperror.NewGatewayError(resp.StatusCode, msg)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperror.NewGatewayError(http.StatusBadGateway,
			fmt.Sprintf("malformed backend response for %s %s: %v", method, path, err))
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
