package payment

import "context"

// Line is one purchasable row of a checkout session.
type Line struct {
	Name      string
	UnitCents int64
	Quantity  int
}

// SessionInput describes the checkout session to create for one order.
type SessionInput struct {
	OrderID          string
	Lines            []Line
	DeliveryFeeCents int64
	SuccessURL       string
	CancelURL        string
}

// Session is the provider's opaque handle plus the redirect target for the
// customer's browser.
type Session struct {
	ID  string
	URL string
}

// Gateway creates remote checkout sessions. The provider reports the payment
// outcome later through the verification endpoint; this boundary never
// settles orders itself.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, in SessionInput) (*Session, error)
}
