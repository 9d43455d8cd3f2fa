package shiprocket

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *atomic.Int64) {
	t.Helper()
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	client := NewClient(Config{
		BaseURL: srv.URL,
		Token:   func() string { return "test-token" },
	})
	return client, &hits
}

func TestLoginSuccess(t *testing.T) {
	client, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "" {
			t.Errorf("login must not carry an Authorization header")
		}
		w.Write([]byte(`{"token":"T1","first_name":"A","last_name":"B","email":"a@b.com"}`))
	})

	result, err := client.Login(context.Background(), Credentials{Email: "a@b.com", Password: "secret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Token != "T1" {
		t.Fatalf("expected token T1, got %q", result.Token)
	}
	if result.CompanyName != "N/A" {
		t.Fatalf("expected company placeholder N/A, got %q", result.CompanyName)
	}
	if hits.Load() != 1 {
		t.Fatalf("expected exactly 1 upstream call, got %d", hits.Load())
	}
}

func TestLoginValidation(t *testing.T) {
	client, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	cases := []Credentials{
		{Email: "", Password: "secret"},
		{Email: "not-an-email", Password: "secret"},
		{Email: "a@b.com", Password: ""},
	}
	for _, creds := range cases {
		if _, err := client.Login(context.Background(), creds); !IsValidation(err) {
			t.Fatalf("expected validation error for %+v, got %v", creds, err)
		}
	}
	if hits.Load() != 0 {
		t.Fatalf("validation failures must not reach the network, got %d calls", hits.Load())
	}
}

func TestTrackOrderEmptyAWB(t *testing.T) {
	client, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := client.TrackOrder(context.Background(), TrackingQuery{AWBNumber: ""})
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if hits.Load() != 0 {
		t.Fatalf("expected no upstream call, got %d", hits.Load())
	}
}

func TestTrackOrderPlaceholders(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/courier/track/awb/AWB123" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-token" {
			t.Errorf("missing bearer token, got %q", r.Header.Get("Authorization"))
		}
		w.Write([]byte(`{"tracking_data":{"delivered":true}}`))
	})

	result, err := client.TrackOrder(context.Background(), TrackingQuery{AWBNumber: "AWB123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TrackStatus != "Unknown" || result.CurrentStatus != "N/A" || result.LastUpdate != "N/A" {
		t.Fatalf("expected placeholders for absent fields, got %+v", result)
	}
	if !result.Delivered {
		t.Fatalf("expected delivered true")
	}
}

func TestCalculateRateCountsCouriers(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/courier/serviceability/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"data":{"available_courier_companies":[{},{}]}}`))
	})

	result, err := client.CalculateRate(context.Background(), RateQuery{
		PickupPostcode:   "110001",
		DeliveryPostcode: "400001",
		Weight:           2.5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.AvailableCouriers != 2 {
		t.Fatalf("expected 2 available couriers, got %d", result.AvailableCouriers)
	}
	if result.PickupPostcode != "110001" || result.DeliveryPostcode != "400001" {
		t.Fatalf("expected query echoed in result, got %+v", result)
	}
}

func TestCalculateRateValidation(t *testing.T) {
	client, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	cases := []RateQuery{
		{PickupPostcode: "", DeliveryPostcode: "400001", Weight: 1},
		{PickupPostcode: "110001", DeliveryPostcode: "", Weight: 1},
		{PickupPostcode: "110001", DeliveryPostcode: "400001", Weight: 0},
		{PickupPostcode: "110001", DeliveryPostcode: "400001", Weight: 1, COD: -5},
	}
	for _, q := range cases {
		if _, err := client.CalculateRate(context.Background(), q); !IsValidation(err) {
			t.Fatalf("expected validation error for %+v, got %v", q, err)
		}
	}
	if hits.Load() != 0 {
		t.Fatalf("expected no upstream calls, got %d", hits.Load())
	}
}

func TestUpstreamStatusError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})

	_, err := client.WalletBalance(context.Background())
	if !IsUpstream(err) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if !strings.Contains(err.Error(), "502") {
		t.Fatalf("expected status code in message, got %q", err.Error())
	}
}

func TestMalformedBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	})

	_, err := client.WalletBalance(context.Background())
	if !IsParse(err) {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestWalletDefaults(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	result, err := client.WalletBalance(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Balance != 0 || result.Currency != "INR" {
		t.Fatalf("expected zero balance and INR placeholder, got %+v", result)
	}
}

func TestBookOrderPlaceholders(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orders/create/adhoc" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"order_id":401,"shipment_id":77,"status":"NEW"}`))
	})

	result, err := client.BookOrder(context.Background(), validOrder())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.OrderID != "401" || result.ShipmentID != "77" || result.Status != "NEW" {
		t.Fatalf("unexpected booking result %+v", result)
	}
	if result.AWBCode != "Will be assigned soon" {
		t.Fatalf("expected AWB placeholder, got %q", result.AWBCode)
	}
	if result.CourierName != "To be assigned" {
		t.Fatalf("expected courier placeholder, got %q", result.CourierName)
	}
}

func TestBookOrderDefaults(t *testing.T) {
	var body string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		w.Write([]byte(`{"order_id":1}`))
	})

	order := validOrder()
	order.BillingCountry = ""
	order.PaymentMethod = ""
	order.ShippingIsBilling = nil
	if _, err := client.BookOrder(context.Background(), order); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{`"billing_country":"India"`, `"payment_method":"COD"`, `"shipping_is_billing":true`} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %s in upstream body, got %s", want, body)
		}
	}
}

func TestBookOrderValidation(t *testing.T) {
	client, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	mutate := []struct {
		name  string
		apply func(*OrderRecord)
	}{
		{"missing order_id", func(o *OrderRecord) { o.OrderID = "" }},
		{"short phone", func(o *OrderRecord) { o.BillingPhone = "12345" }},
		{"short pincode", func(o *OrderRecord) { o.BillingPincode = "110" }},
		{"bad payment method", func(o *OrderRecord) { o.PaymentMethod = "Barter" }},
		{"no items", func(o *OrderRecord) { o.OrderItems = nil }},
		{"zero units", func(o *OrderRecord) { o.OrderItems[0].Units = 0 }},
		{"zero weight", func(o *OrderRecord) { o.Weight = 0 }},
		{"negative subtotal", func(o *OrderRecord) { o.SubTotal = -1 }},
	}
	for _, tc := range mutate {
		order := validOrder()
		tc.apply(&order)
		if _, err := client.BookOrder(context.Background(), order); !IsValidation(err) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}
	if hits.Load() != 0 {
		t.Fatalf("expected no upstream calls, got %d", hits.Load())
	}
}

func TestGetOrdersPagination(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("expected page=2, got %q", got)
		}
		if got := r.URL.Query().Get("per_page"); got != "10" {
			t.Errorf("expected per_page=10, got %q", got)
		}
		w.Write([]byte(`{"data":[{"id":9,"status":"NEW","customer_name":"C","total":"150"}]}`))
	})

	result, err := client.GetOrders(context.Background(), PageQuery{Page: 2, PerPage: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(result.Orders))
	}
	if result.Orders[0].ID != "9" || result.Orders[0].Total != "150" {
		t.Fatalf("unexpected order summary %+v", result.Orders[0])
	}
}

func TestGetOrdersPerPageCap(t *testing.T) {
	client, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := client.GetOrders(context.Background(), PageQuery{Page: 1, PerPage: 60})
	if !IsValidation(err) {
		t.Fatalf("expected validation error for per_page above 50, got %v", err)
	}
	if hits.Load() != 0 {
		t.Fatalf("expected no upstream call, got %d", hits.Load())
	}
}

func TestGetOrdersDefaults(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("page"); got != "1" {
			t.Errorf("expected default page=1, got %q", got)
		}
		if got := r.URL.Query().Get("per_page"); got != "10" {
			t.Errorf("expected default per_page=10, got %q", got)
		}
		w.Write([]byte(`{"data":[]}`))
	})

	result, err := client.GetOrders(context.Background(), PageQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Page != 1 || result.PerPage != 10 {
		t.Fatalf("expected defaults echoed, got %+v", result)
	}
}

func TestCancelOrderIdempotent(t *testing.T) {
	client, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orders/cancel" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		raw, _ := io.ReadAll(r.Body)
		if got := string(raw); got != `{"ids":["ORD-1"]}` {
			t.Errorf("unexpected cancel body %s", got)
		}
		w.Write([]byte(`{"message":"cancelled"}`))
	})

	for i := 0; i < 2; i++ {
		result, err := client.CancelOrder(context.Background(), CancelQuery{OrderID: "ORD-1"})
		if err != nil {
			t.Fatalf("call %d: unexpected error: %v", i+1, err)
		}
		if result.Message != "cancelled" {
			t.Fatalf("call %d: unexpected message %q", i+1, result.Message)
		}
	}
	if hits.Load() != 2 {
		t.Fatalf("expected 2 independent upstream calls, got %d", hits.Load())
	}
}

func TestCancelOrderMessagePlaceholder(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	result, err := client.CancelOrder(context.Background(), CancelQuery{OrderID: "ORD-2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Message != "Cancellation processed" {
		t.Fatalf("expected placeholder message, got %q", result.Message)
	}
}

func TestUpstreamTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
	_, err := client.WalletBalance(context.Background())
	if !IsUpstream(err) {
		t.Fatalf("expected upstream error on timeout, got %v", err)
	}
}

func TestEmptyTokenStillSent(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	_, err := client.WalletBalance(context.Background())
	if !IsUpstream(err) || !strings.Contains(err.Error(), "401") {
		t.Fatalf("expected 401 upstream error, got %v", err)
	}
	if auth != "Bearer " {
		t.Fatalf("expected empty bearer header to be sent, got %q", auth)
	}
}

func validOrder() OrderRecord {
	return OrderRecord{
		OrderID:             "ORD-100",
		OrderDate:           "2025-05-01",
		PickupLocation:      "Primary",
		BillingCustomerName: "Asha Rao",
		BillingPhone:        "9876543210",
		BillingAddress:      "12 MG Road",
		BillingCity:         "Bengaluru",
		BillingPincode:      "560001",
		BillingState:        "Karnataka",
		PaymentMethod:       PaymentCOD,
		OrderItems: []OrderItem{
			{Name: "Widget", SKU: "W-1", Units: 2, SellingPrice: 250},
		},
		SubTotal: 500,
		Length:   10,
		Breadth:  10,
		Height:   5,
		Weight:   1.5,
	}
}
