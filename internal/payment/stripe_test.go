package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCreateCheckoutSession(t *testing.T) {
	var gotForm map[string][]string
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/checkout/sessions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		gotForm = r.PostForm
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"cs_test_abc","url":"https://checkout.stripe.com/pay/cs_test_abc"}`))
	}))
	defer srv.Close()

	client := NewStripe(srv.URL, "sk_test_key")
	sess, err := client.CreateCheckoutSession(context.Background(), SessionInput{
		OrderID: "order-1",
		Lines: []Line{
			{Name: "Greek Salad", UnitCents: 1000, Quantity: 2},
		},
		DeliveryFeeCents: 200,
		SuccessURL:       "https://shop.example/verify?orderId=order-1&success=true",
		CancelURL:        "https://shop.example/verify?orderId=order-1&success=false",
	})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if sess.ID != "cs_test_abc" {
		t.Fatalf("unexpected session id: %s", sess.ID)
	}
	if sess.URL != "https://checkout.stripe.com/pay/cs_test_abc" {
		t.Fatalf("unexpected session url: %s", sess.URL)
	}

	if gotAuth != "Bearer sk_test_key" {
		t.Fatalf("unexpected auth header: %s", gotAuth)
	}
	expect := map[string]string{
		"mode":                "payment",
		"client_reference_id": "order-1",
		"line_items[0][price_data][product_data][name]": "Greek Salad",
		"line_items[0][price_data][unit_amount]":        "1000",
		"line_items[0][quantity]":                       "2",
		"line_items[1][price_data][product_data][name]": "Delivery Charges",
		"line_items[1][price_data][unit_amount]":        "200",
		"line_items[1][quantity]":                       "1",
	}
	for key, want := range expect {
		vals := gotForm[key]
		if len(vals) != 1 || vals[0] != want {
			t.Fatalf("form %q = %v, want %q", key, vals, want)
		}
	}
}

func TestCreateCheckoutSessionNoDeliveryLineWhenFeeZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		if _, ok := r.PostForm["line_items[1][quantity]"]; ok {
			t.Error("unexpected delivery fee line")
		}
		w.Write([]byte(`{"id":"cs_1","url":"https://checkout.example/cs_1"}`))
	}))
	defer srv.Close()

	client := NewStripe(srv.URL, "sk_test_key")
	if _, err := client.CreateCheckoutSession(context.Background(), SessionInput{
		OrderID:    "order-1",
		Lines:      []Line{{Name: "A", UnitCents: 100, Quantity: 1}},
		SuccessURL: "https://shop.example/ok",
		CancelURL:  "https://shop.example/no",
	}); err != nil {
		t.Fatalf("create session: %v", err)
	}
}

func TestCreateCheckoutSessionAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"message":"Your card was declined."}}`))
	}))
	defer srv.Close()

	client := NewStripe(srv.URL, "sk_test_key")
	_, err := client.CreateCheckoutSession(context.Background(), SessionInput{
		OrderID:    "order-1",
		Lines:      []Line{{Name: "A", UnitCents: 100, Quantity: 1}},
		SuccessURL: "https://shop.example/ok",
		CancelURL:  "https://shop.example/no",
	})
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestCreateCheckoutSessionMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewStripe(srv.URL, "sk_test_key")
	_, err := client.CreateCheckoutSession(context.Background(), SessionInput{
		OrderID:    "order-1",
		Lines:      []Line{{Name: "A", UnitCents: 100, Quantity: 1}},
		SuccessURL: "https://shop.example/ok",
		CancelURL:  "https://shop.example/no",
	})
	if err == nil {
		t.Fatal("expected error for response missing id/url")
	}
}
