// Package payment talks to the hosted Paystack checkout API. Only the two
// calls the booking flow needs are implemented: initializing a transaction
// for the plan's first charge and verifying it after the provider callback.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Johnmalala/ziarazetupromaxx/internal/pkg/config"
	"github.com/Johnmalala/ziarazetupromaxx/internal/pkg/errs"
)

type Checkout struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type Verification struct {
	Reference   string `json:"reference"`
	Status      string `json:"status"`
	AmountCents int64  `json:"amount"`
}

// Succeeded reports whether the provider settled the charge.
func (v *Verification) Succeeded() bool {
	return v.Status == "success"
}

type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

func NewClient(cfg config.PaystackConfig) *Client {
	return &Client{
		baseURL:   cfg.BaseURL,
		secretKey: cfg.SecretKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type apiEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) InitializeTransaction(ctx context.Context, email string, amountCents int64, reference string) (*Checkout, error) {
	body := map[string]any{
		"email":     email,
		"amount":    amountCents, // minor unit, per the provider API
		"reference": reference,
	}

	var checkout Checkout
	if err := c.call(ctx, http.MethodPost, "/transaction/initialize", body, &checkout); err != nil {
		return nil, errs.Wrap(err, "failed to initialize transaction")
	}
	return &checkout, nil
}

func (c *Client) VerifyTransaction(ctx context.Context, reference string) (*Verification, error) {
	var verification Verification
	if err := c.call(ctx, http.MethodGet, "/transaction/verify/"+reference, nil, &verification); err != nil {
		return nil, errs.Wrap(err, "failed to verify transaction")
	}
	return &verification, nil
}

func (c *Client) call(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var envelope apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode provider response: %w", err)
	}

	if resp.StatusCode >= 400 || !envelope.Status {
		return fmt.Errorf("provider error (%d): %s", resp.StatusCode, envelope.Message)
	}

	return json.Unmarshal(envelope.Data, out)
}
