package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Sahill13/backendhost/internal/model"
	"github.com/Sahill13/backendhost/pgk/retryablehttp"
)

const sessionPath = "/v1/orders"

type Session struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type createSessionRequest struct {
	Amount         int64  `json:"amount"` // smallest currency unit
	Currency       string `json:"currency"`
	Receipt        string `json:"receipt"`
	PaymentCapture int    `json:"payment_capture"`
}

// Client talks to the external payment processor. Session creation is the
// only outbound call; the paid confirmation arrives as a signed callback.
type Client struct {
	address   string
	keyID     string
	keySecret string
	timeout   time.Duration
	client    *retryablehttp.RetryableClient
}

func NewClient(address, keyID, keySecret string, timeout time.Duration) *Client {
	return &Client{
		address:   address,
		keyID:     keyID,
		keySecret: keySecret,
		timeout:   timeout,
		client:    retryablehttp.NewRetryableClient(retryablehttp.RetryConfig{}),
	}
}

// CreateSession registers a checkout session for the given amount (major
// currency units) and returns the processor-side order id.
func (c *Client) CreateSession(ctx context.Context, amount float64, currency, receipt string) (*Session, error) {
	if c.keyID == "" || c.keySecret == "" {
		return nil, model.ErrConfiguration
	}

	// a stalled processor must not hang the approval request
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body, err := json.Marshal(createSessionRequest{
		Amount:         int64(amount * 100),
		Currency:       currency,
		Receipt:        receipt,
		PaymentCapture: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrProcessor, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.address+sessionPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrProcessor, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.client.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrProcessor, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", model.ErrProcessor, http.StatusText(resp.StatusCode))
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrProcessor, err)
	}

	return &session, nil
}
