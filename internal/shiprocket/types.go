package shiprocket

import (
	"fmt"
	"strings"
)

// Credentials is the login input. The password is forwarded once and
// never retained.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c Credentials) Validate() error {
	if strings.TrimSpace(c.Email) == "" {
		return requiredErr("email")
	}
	if !strings.Contains(c.Email, "@") {
		return &ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	if c.Password == "" {
		return requiredErr("password")
	}
	return nil
}

// TrackingQuery identifies a shipment by its AWB number.
type TrackingQuery struct {
	AWBNumber string `json:"awb_number"`
}

func (q TrackingQuery) Validate() error {
	if strings.TrimSpace(q.AWBNumber) == "" {
		return requiredErr("awb_number")
	}
	return nil
}

// RateQuery describes a shipment for rate calculation. COD is the
// optional cash-on-delivery amount, zero when absent.
type RateQuery struct {
	PickupPostcode   string  `json:"pickup_postcode"`
	DeliveryPostcode string  `json:"delivery_postcode"`
	Weight           float64 `json:"weight"`
	COD              float64 `json:"cod"`
}

func (q RateQuery) Validate() error {
	if strings.TrimSpace(q.PickupPostcode) == "" {
		return requiredErr("pickup_postcode")
	}
	if strings.TrimSpace(q.DeliveryPostcode) == "" {
		return requiredErr("delivery_postcode")
	}
	if q.Weight <= 0 {
		return positiveErr("weight")
	}
	if q.COD < 0 {
		return &ValidationError{Field: "cod", Reason: "must not be negative"}
	}
	return nil
}

// OrderItem is one line item of an order.
type OrderItem struct {
	Name         string  `json:"name"`
	SKU          string  `json:"sku"`
	Units        int     `json:"units"`
	SellingPrice float64 `json:"selling_price"`
}

func (i OrderItem) validate(idx int) error {
	prefix := fmt.Sprintf("order_items[%d].", idx)
	if strings.TrimSpace(i.Name) == "" {
		return requiredErr(prefix + "name")
	}
	if strings.TrimSpace(i.SKU) == "" {
		return requiredErr(prefix + "sku")
	}
	if i.Units <= 0 {
		return positiveErr(prefix + "units")
	}
	if i.SellingPrice <= 0 {
		return positiveErr(prefix + "selling_price")
	}
	return nil
}

// Payment methods accepted by the booking endpoint.
const (
	PaymentCOD     = "COD"
	PaymentPrepaid = "Prepaid"
)

// OrderRecord is the adhoc order creation input, serialized verbatim as
// the upstream request body.
type OrderRecord struct {
	OrderID             string      `json:"order_id"`
	OrderDate           string      `json:"order_date"`
	PickupLocation      string      `json:"pickup_location"`
	BillingCustomerName string      `json:"billing_customer_name"`
	BillingPhone        string      `json:"billing_phone"`
	BillingAddress      string      `json:"billing_address"`
	BillingCity         string      `json:"billing_city"`
	BillingPincode      string      `json:"billing_pincode"`
	BillingState        string      `json:"billing_state"`
	BillingCountry      string      `json:"billing_country"`
	ShippingIsBilling   *bool       `json:"shipping_is_billing"`
	OrderItems          []OrderItem `json:"order_items"`
	PaymentMethod       string      `json:"payment_method"`
	SubTotal            float64     `json:"sub_total"`
	Length              float64     `json:"length"`
	Breadth             float64     `json:"breadth"`
	Height              float64     `json:"height"`
	Weight              float64     `json:"weight"`
}

// normalize fills the documented defaults: country India, payment COD,
// shipping address mirroring billing.
func (o *OrderRecord) normalize() {
	if o.BillingCountry == "" {
		o.BillingCountry = "India"
	}
	if o.PaymentMethod == "" {
		o.PaymentMethod = PaymentCOD
	}
	if o.ShippingIsBilling == nil {
		t := true
		o.ShippingIsBilling = &t
	}
}

func (o OrderRecord) Validate() error {
	for field, value := range map[string]string{
		"order_id":              o.OrderID,
		"order_date":            o.OrderDate,
		"pickup_location":       o.PickupLocation,
		"billing_customer_name": o.BillingCustomerName,
		"billing_address":       o.BillingAddress,
		"billing_city":          o.BillingCity,
		"billing_state":         o.BillingState,
	} {
		if strings.TrimSpace(value) == "" {
			return requiredErr(field)
		}
	}
	if len(o.BillingPhone) < 10 {
		return &ValidationError{Field: "billing_phone", Reason: "must be at least 10 characters"}
	}
	if len(o.BillingPincode) < 6 {
		return &ValidationError{Field: "billing_pincode", Reason: "must be at least 6 characters"}
	}
	if o.PaymentMethod != PaymentCOD && o.PaymentMethod != PaymentPrepaid {
		return &ValidationError{Field: "payment_method", Reason: `must be "COD" or "Prepaid"`}
	}
	if len(o.OrderItems) == 0 {
		return &ValidationError{Field: "order_items", Reason: "must contain at least one item"}
	}
	for idx, item := range o.OrderItems {
		if err := item.validate(idx); err != nil {
			return err
		}
	}
	for field, value := range map[string]float64{
		"sub_total": o.SubTotal,
		"length":    o.Length,
		"breadth":   o.Breadth,
		"height":    o.Height,
		"weight":    o.Weight,
	} {
		if value <= 0 {
			return positiveErr(field)
		}
	}
	return nil
}

// CancelQuery identifies the order to cancel.
type CancelQuery struct {
	OrderID string `json:"order_id"`
}

func (q CancelQuery) Validate() error {
	if strings.TrimSpace(q.OrderID) == "" {
		return requiredErr("order_id")
	}
	return nil
}

// MaxPerPage is the upstream listing page size cap.
const MaxPerPage = 50

// PageQuery selects a page of the order listing. Non-positive values
// fall back to the defaults (page 1, 10 per page).
type PageQuery struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

func (q *PageQuery) normalize() {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PerPage <= 0 {
		q.PerPage = 10
	}
}

func (q PageQuery) Validate() error {
	if q.PerPage > MaxPerPage {
		return &ValidationError{Field: "per_page", Reason: fmt.Sprintf("must not exceed %d", MaxPerPage)}
	}
	return nil
}

// LoginResult is the extracted login response.
type LoginResult struct {
	Token       string `json:"token"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	CompanyName string `json:"company_name"`
}

// TrackingResult is the extracted shipment tracking state.
type TrackingResult struct {
	AWBNumber     string `json:"awb_number"`
	TrackStatus   string `json:"track_status"`
	CurrentStatus string `json:"current_status"`
	Delivered     bool   `json:"delivered"`
	LastUpdate    string `json:"last_update_date"`
}

// RateResult echoes the rate query and reports how many courier
// services the upstream considers available.
type RateResult struct {
	PickupPostcode    string  `json:"pickup_postcode"`
	DeliveryPostcode  string  `json:"delivery_postcode"`
	Weight            float64 `json:"weight"`
	COD               float64 `json:"cod"`
	AvailableCouriers int     `json:"available_couriers"`
}

// BookingResult is the extracted order creation response.
type BookingResult struct {
	OrderID     string `json:"order_id"`
	ShipmentID  string `json:"shipment_id"`
	Status      string `json:"status"`
	AWBCode     string `json:"awb_code"`
	CourierName string `json:"courier_name"`
}

// WalletResult is the extracted wallet balance.
type WalletResult struct {
	Balance  float64 `json:"balance"`
	Currency string  `json:"currency"`
}

// OrderSummary is one entry of the order listing.
type OrderSummary struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	CustomerName string `json:"customer_name"`
	Total        string `json:"total"`
}

// OrdersResult is one page of the order listing. The full page is
// always present; renderers may truncate for display.
type OrdersResult struct {
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
	Orders  []OrderSummary `json:"orders"`
}

// CancelResult is the provider's cancellation acknowledgement.
type CancelResult struct {
	OrderID string `json:"order_id"`
	Message string `json:"message"`
}
