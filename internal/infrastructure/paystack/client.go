// Package paystack is a client for the Paystack transaction API.
package paystack

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fredriick/Electrify-sub009/internal/domain/currency"
	"github.com/fredriick/Electrify-sub009/internal/domain/payments"
	"github.com/fredriick/Electrify-sub009/internal/pkg/config"
	"github.com/fredriick/Electrify-sub009/internal/pkg/logger"

	"github.com/tidwall/gjson"
)

// SignatureHeader carries the HMAC of webhook bodies
const SignatureHeader = "X-Paystack-Signature"

const (
	defaultTimeout  = 30 * time.Second
	maxResponseSize = 1 << 20
)

// client talks to the Paystack REST API with the merchant secret key
type client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
	logger     logger.Logger
}

// NewClient creates a PaymentGateway backed by Paystack
func NewClient(settings *config.PaystackSettings, httpClient *http.Client, logger logger.Logger) (payments.PaymentGateway, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	if httpClient == nil {
		timeout := settings.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &client{
		baseURL:    strings.TrimSuffix(settings.BaseURL, "/"),
		secretKey:  settings.SecretKey,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

type initializeBody struct {
	Email       string            `json:"email"`
	Amount      int64             `json:"amount"`
	Currency    string            `json:"currency,omitempty"`
	Reference   string            `json:"reference,omitempty"`
	CallbackURL string            `json:"callback_url,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Initialize starts a transaction. The amount is sent in minor units.
func (c *client) Initialize(ctx context.Context, req *payments.InitializeRequest) (*payments.InitializeResult, error) {
	body, err := json.Marshal(initializeBody{
		Email:       req.Email,
		Amount:      currency.ToMinorUnits(req.Amount, req.Currency),
		Currency:    req.Currency,
		Reference:   req.Reference,
		CallbackURL: req.CallbackURL,
		Metadata:    req.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode initialize request: %w", err)
	}

	data, err := c.do(ctx, http.MethodPost, "/transaction/initialize", body)
	if err != nil {
		return nil, err
	}

	result := &payments.InitializeResult{
		AuthorizationURL: data.Get("authorization_url").String(),
		AccessCode:       data.Get("access_code").String(),
		Reference:        data.Get("reference").String(),
	}
	if result.Reference == "" {
		result.Reference = req.Reference
	}

	c.logger.Info("Initialized Paystack transaction ", result.Reference)
	return result, nil
}

// Verify fetches the current state of the transaction behind reference
func (c *client) Verify(ctx context.Context, reference string) (*payments.VerifyResult, error) {
	data, err := c.do(ctx, http.MethodGet, "/transaction/verify/"+url.PathEscape(reference), nil)
	if err != nil {
		return nil, err
	}

	result := parseTransaction(data)
	if result.Reference == "" {
		result.Reference = reference
	}
	return result, nil
}

// ParseWebhook checks the HMAC-SHA512 signature of body and decodes the event
func (c *client) ParseWebhook(signature string, body []byte) (*payments.WebhookEvent, error) {
	if !c.validSignature(signature, body) {
		return nil, payments.ErrInvalidSignature
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("malformed webhook body")
	}

	parsed := gjson.ParseBytes(body)
	return &payments.WebhookEvent{
		Event: parsed.Get("event").String(),
		Data:  *parseTransaction(parsed.Get("data")),
	}, nil
}

func (c *client) validSignature(signature string, body []byte) bool {
	expected, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil || len(expected) == 0 {
		return false
	}
	mac := hmac.New(sha512.New, []byte(c.secretKey))
	mac.Write(body)
	return hmac.Equal(mac.Sum(nil), expected)
}

// Sign returns the signature Paystack would send for body
func Sign(secretKey string, body []byte) string {
	mac := hmac.New(sha512.New, []byte(secretKey))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func parseTransaction(data gjson.Result) *payments.VerifyResult {
	code := strings.ToUpper(data.Get("currency").String())
	result := &payments.VerifyResult{
		Reference:       data.Get("reference").String(),
		Status:          payments.ParseGatewayStatus(data.Get("status").String()),
		Amount:          currency.FromMinorUnits(data.Get("amount").Int(), code),
		Currency:        code,
		GatewayResponse: data.Get("gateway_response").String(),
		Email:           data.Get("customer.email").String(),
	}

	paidAt := data.Get("paid_at")
	if !paidAt.Exists() || paidAt.Type == gjson.Null {
		paidAt = data.Get("paidAt")
	}
	if paidAt.Type == gjson.String {
		if t, err := time.Parse(time.RFC3339, paidAt.String()); err == nil {
			t = t.UTC()
			result.PaidAt = &t
		}
	}
	return result
}

// do sends the request and returns the "data" member of a successful answer.
// Non-2xx answers and answers with "status": false become a GatewayError.
func (c *client) do(ctx context.Context, method, path string, body []byte) (gjson.Result, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to build gateway request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to reach payment gateway: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to read gateway response: %w", err)
	}

	parsed := gjson.ParseBytes(raw)
	message := parsed.Get("message").String()
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("Paystack ", method, " ", path, " failed with status ", resp.StatusCode, ": ", message)
		return gjson.Result{}, &payments.GatewayError{StatusCode: resp.StatusCode, Message: message}
	}
	if !gjson.ValidBytes(raw) || !parsed.Get("status").Bool() {
		return gjson.Result{}, &payments.GatewayError{StatusCode: http.StatusBadGateway, Message: message}
	}
	return parsed.Get("data"), nil
}
