package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const deliveryLineName = "Delivery Charges"

// StripeClient talks to the Stripe Checkout REST API with form-encoded
// requests. Only session creation is used; payment settlement arrives via
// the provider redirect.
type StripeClient struct {
	baseURL   string
	secretKey string
	currency  string
	http      *http.Client
}

// NewStripe builds a client for the given API base (https://api.stripe.com
// in production, an httptest server in tests).
func NewStripe(baseURL, secretKey string) *StripeClient {
	return &StripeClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
		currency:  "usd",
		http:      &http.Client{Timeout: 15 * time.Second},
	}
}

type stripeSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type stripeError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *StripeClient) CreateCheckoutSession(ctx context.Context, in SessionInput) (*Session, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", in.SuccessURL)
	form.Set("cancel_url", in.CancelURL)
	form.Set("client_reference_id", in.OrderID)

	lines := in.Lines
	if in.DeliveryFeeCents > 0 {
		lines = append(lines, Line{Name: deliveryLineName, UnitCents: in.DeliveryFeeCents, Quantity: 1})
	}
	for i, line := range lines {
		prefix := fmt.Sprintf("line_items[%d]", i)
		form.Set(prefix+"[price_data][currency]", c.currency)
		form.Set(prefix+"[price_data][product_data][name]", line.Name)
		form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(line.UnitCents, 10))
		form.Set(prefix+"[quantity]", strconv.Itoa(line.Quantity))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("checkout session request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr stripeError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("checkout session: %s (status %d)", apiErr.Error.Message, resp.StatusCode)
		}
		return nil, fmt.Errorf("checkout session: status %d", resp.StatusCode)
	}

	var sess stripeSession
	if err := json.Unmarshal(body, &sess); err != nil {
		return nil, fmt.Errorf("decode checkout session: %w", err)
	}
	if sess.ID == "" || sess.URL == "" {
		return nil, fmt.Errorf("checkout session response missing id or url")
	}
	return &Session{ID: sess.ID, URL: sess.URL}, nil
}
