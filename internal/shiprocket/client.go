// Package shiprocket wraps the Shiprocket external HTTP API behind a
// uniform validate-call-interpret adapter. Every operation issues
// exactly one upstream request, never retries, and converts all
// failure modes into typed errors.
package shiprocket

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-logr/logr"
	"github.com/tidwall/gjson"

	"github.com/cargodham/cargodham-mcp/internal/logging"
)

// DefaultTimeout bounds every upstream call when no explicit timeout is
// configured.
const DefaultTimeout = 30 * time.Second

// Config carries the adapter's collaborators. All fields are optional.
type Config struct {
	// BaseURL of the upstream API, without a trailing slash.
	BaseURL string
	// Timeout applied to every outbound call.
	Timeout time.Duration
	// Token returns the bearer token for authenticated endpoints. It is
	// consulted on every call; an empty result still produces a request
	// (which fails upstream with an authorization error).
	Token  func() string
	Logger logging.Logger
}

// Client is the remote-call adapter for the seven gateway operations.
// It holds no mutable state; concurrent calls are independent.
type Client struct {
	baseURL string
	http    *http.Client
	token   func() string
	log     logging.Logger
}

// NewClient builds a Client, filling unset Config fields with defaults.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://apiv2.shiprocket.in/v1/external"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Token == nil {
		cfg.Token = func() string { return "" }
	}
	if cfg.Logger.Logr().GetSink() == nil {
		cfg.Logger = logging.New(logr.Discard())
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		token:   cfg.Token,
		log:     cfg.Logger,
	}
}

// call performs the single upstream exchange for one operation and
// returns the raw JSON body of a 2xx response.
func (c *Client) call(ctx context.Context, op, method, path string, query url.Values, body any, authed bool) (string, error) {
	u := c.baseURL + "/" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return "", &UpstreamError{Op: op, Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return "", &UpstreamError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.token())
	}

	c.log.Debug("calling upstream", "op", op, "method", method, "path", path)
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(err, "upstream call failed", "op", op)
		return "", &UpstreamError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &UpstreamError{Op: op, Err: err}
	}
	if resp.StatusCode >= 300 {
		c.log.Info("upstream rejected call", "op", op, "status", resp.StatusCode)
		return "", &UpstreamError{Op: op, Status: resp.StatusCode}
	}
	if !gjson.ValidBytes(raw) {
		return "", &ParseError{Op: op}
	}
	return string(raw), nil
}

// Login exchanges credentials for an API token. The token is returned
// to the caller, never stored by the adapter.
func (c *Client) Login(ctx context.Context, creds Credentials) (LoginResult, error) {
	if err := creds.Validate(); err != nil {
		return LoginResult{}, err
	}
	raw, err := c.call(ctx, "login", http.MethodPost, "auth/login", nil, creds, false)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{
		Token:       gjson.Get(raw, "token").String(),
		FirstName:   gjson.Get(raw, "first_name").String(),
		LastName:    gjson.Get(raw, "last_name").String(),
		Email:       gjson.Get(raw, "email").String(),
		CompanyName: stringOr(gjson.Get(raw, "company_name"), "N/A"),
	}, nil
}

// TrackOrder fetches the tracking state for one AWB number.
func (c *Client) TrackOrder(ctx context.Context, q TrackingQuery) (TrackingResult, error) {
	if err := q.Validate(); err != nil {
		return TrackingResult{}, err
	}
	raw, err := c.call(ctx, "track order", http.MethodGet, "courier/track/awb/"+url.PathEscape(q.AWBNumber), nil, nil, true)
	if err != nil {
		return TrackingResult{}, err
	}
	tracking := gjson.Get(raw, "tracking_data")
	return TrackingResult{
		AWBNumber:     q.AWBNumber,
		TrackStatus:   stringOr(tracking.Get("track_status"), "Unknown"),
		CurrentStatus: stringOr(tracking.Get("current_status"), "N/A"),
		Delivered:     tracking.Get("delivered").Bool(),
		LastUpdate:    stringOr(tracking.Get("last_update_date"), "N/A"),
	}, nil
}

// CalculateRate checks courier serviceability and reports how many
// services are available. The query fields are validated and echoed in
// the result; the upstream call itself carries no parameters.
func (c *Client) CalculateRate(ctx context.Context, q RateQuery) (RateResult, error) {
	if err := q.Validate(); err != nil {
		return RateResult{}, err
	}
	raw, err := c.call(ctx, "calculate rate", http.MethodGet, "courier/serviceability/", nil, nil, true)
	if err != nil {
		return RateResult{}, err
	}
	return RateResult{
		PickupPostcode:    q.PickupPostcode,
		DeliveryPostcode:  q.DeliveryPostcode,
		Weight:            q.Weight,
		COD:               q.COD,
		AvailableCouriers: len(gjson.Get(raw, "data.available_courier_companies").Array()),
	}, nil
}

// BookOrder creates an adhoc shipping order from the full record.
func (c *Client) BookOrder(ctx context.Context, order OrderRecord) (BookingResult, error) {
	order.normalize()
	if err := order.Validate(); err != nil {
		return BookingResult{}, err
	}
	raw, err := c.call(ctx, "book order", http.MethodPost, "orders/create/adhoc", nil, order, true)
	if err != nil {
		return BookingResult{}, err
	}
	return BookingResult{
		OrderID:     gjson.Get(raw, "order_id").String(),
		ShipmentID:  gjson.Get(raw, "shipment_id").String(),
		Status:      gjson.Get(raw, "status").String(),
		AWBCode:     stringOr(gjson.Get(raw, "awb_code"), "Will be assigned soon"),
		CourierName: stringOr(gjson.Get(raw, "courier_name"), "To be assigned"),
	}, nil
}

// WalletBalance fetches the account's available balance.
func (c *Client) WalletBalance(ctx context.Context) (WalletResult, error) {
	raw, err := c.call(ctx, "wallet balance", http.MethodGet, "account/details/wallet-balance", nil, nil, true)
	if err != nil {
		return WalletResult{}, err
	}
	return WalletResult{
		Balance:  gjson.Get(raw, "data.balance").Float(),
		Currency: stringOr(gjson.Get(raw, "data.currency"), "INR"),
	}, nil
}

// GetOrders fetches one page of the order listing.
func (c *Client) GetOrders(ctx context.Context, q PageQuery) (OrdersResult, error) {
	q.normalize()
	if err := q.Validate(); err != nil {
		return OrdersResult{}, err
	}
	query := url.Values{}
	query.Set("page", strconv.Itoa(q.Page))
	query.Set("per_page", strconv.Itoa(q.PerPage))
	raw, err := c.call(ctx, "get orders", http.MethodGet, "orders", query, nil, true)
	if err != nil {
		return OrdersResult{}, err
	}
	entries := gjson.Get(raw, "data").Array()
	orders := make([]OrderSummary, 0, len(entries))
	for _, entry := range entries {
		orders = append(orders, OrderSummary{
			ID:           entry.Get("id").String(),
			Status:       stringOr(entry.Get("status"), "Unknown"),
			CustomerName: stringOr(entry.Get("customer_name"), "N/A"),
			Total:        stringOr(entry.Get("total"), "0"),
		})
	}
	return OrdersResult{Page: q.Page, PerPage: q.PerPage, Orders: orders}, nil
}

// CancelOrder requests cancellation of a single order. Each call is an
// independent upstream request; repeating it simply repeats the request.
func (c *Client) CancelOrder(ctx context.Context, q CancelQuery) (CancelResult, error) {
	if err := q.Validate(); err != nil {
		return CancelResult{}, err
	}
	body := struct {
		IDs []string `json:"ids"`
	}{IDs: []string{q.OrderID}}
	raw, err := c.call(ctx, "cancel order", http.MethodPost, "orders/cancel", nil, body, true)
	if err != nil {
		return CancelResult{}, err
	}
	return CancelResult{
		OrderID: q.OrderID,
		Message: stringOr(gjson.Get(raw, "message"), "Cancellation processed"),
	}, nil
}

// stringOr extracts a string field, substituting def when the field is
// absent or empty.
func stringOr(res gjson.Result, def string) string {
	if !res.Exists() || res.String() == "" {
		return def
	}
	return res.String()
}
