// Package paystack wraps the payment gateway's transaction-verification API.
package paystack

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://api.paystack.co"

// Client calls the gateway with the configured secret key.
type Client struct {
	http *resty.Client
}

// NewClient builds a client from PAYSTACK_BASE_URL and PAYSTACK_SECRET_KEY.
func NewClient() *Client {
	base := os.Getenv("PAYSTACK_BASE_URL")
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		http: resty.New().
			SetBaseURL(base).
			SetAuthToken(os.Getenv("PAYSTACK_SECRET_KEY")).
			SetTimeout(15 * time.Second),
	}
}

// VerifyResponse is the gateway's verification envelope.
type VerifyResponse struct {
	Status  bool       `json:"status"`
	Message string     `json:"message"`
	Data    VerifyData `json:"data"`
}

// VerifyData carries the transaction verdict. Status is "success" for a
// settled transaction.
type VerifyData struct {
	Status    string `json:"status"`
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	PaidAt    string `json:"paid_at"`
	Channel   string `json:"channel"`
}

// VerifyTransaction fetches the gateway's verdict for a transaction
// reference. Transport failures and non-2xx gateway responses surface as
// errors; the verdict itself is in the returned envelope.
func (c *Client) VerifyTransaction(ctx context.Context, reference string) (*VerifyResponse, error) {
	var out VerifyResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&out).
		Get("/transaction/verify/" + reference)
	if err != nil {
		return nil, fmt.Errorf("verify transaction %s: %w", reference, err)
	}
	if resp.IsError() {
		return &out, fmt.Errorf("verify transaction %s: gateway returned %s", reference, resp.Status())
	}
	return &out, nil
}
