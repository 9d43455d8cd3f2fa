package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/cargodham/cargodham-mcp/internal/shiprocket"
)

type BookingService interface {
	BookOrder(ctx context.Context, order shiprocket.OrderRecord) (shiprocket.BookingResult, error)
}

type BookOrderHandler struct{ Service BookingService }

func (h *BookOrderHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	items, err := parseOrderItems(args["order_items"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	order := shiprocket.OrderRecord{
		OrderID:             stringArg(args, "order_id"),
		OrderDate:           stringArg(args, "order_date"),
		PickupLocation:      stringArg(args, "pickup_location"),
		BillingCustomerName: stringArg(args, "billing_customer_name"),
		BillingPhone:        stringArg(args, "billing_phone"),
		BillingAddress:      stringArg(args, "billing_address"),
		BillingCity:         stringArg(args, "billing_city"),
		BillingPincode:      stringArg(args, "billing_pincode"),
		BillingState:        stringArg(args, "billing_state"),
		BillingCountry:      stringArg(args, "billing_country"),
		OrderItems:          items,
		PaymentMethod:       stringArg(args, "payment_method"),
		SubTotal:            floatArg(args, "sub_total", 0),
		Length:              floatArg(args, "length", 0),
		Breadth:             floatArg(args, "breadth", 0),
		Height:              floatArg(args, "height", 0),
		Weight:              floatArg(args, "weight", 0),
	}
	if v, ok := args["shipping_is_billing"].(bool); ok {
		order.ShippingIsBilling = &v
	}

	result, err := h.Service.BookOrder(ctx, order)
	if err != nil {
		return mcp.NewToolResultError("Order booking failed: " + err.Error()), nil
	}
	text := fmt.Sprintf("Order Created Successfully!\n\nOrder ID: %s\nShipment ID: %s\nStatus: %s\nAWB Code: %s\nCourier: %s",
		result.OrderID, result.ShipmentID, result.Status, result.AWBCode, result.CourierName)
	return mcp.NewToolResultText(text), nil
}

func parseOrderItems(raw any) ([]shiprocket.OrderItem, error) {
	if raw == nil {
		return nil, nil
	}
	entries, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("order_items must be an array of items")
	}
	items := make([]shiprocket.OrderItem, 0, len(entries))
	for _, entry := range entries {
		fields, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("order_items entries must be objects")
		}
		items = append(items, shiprocket.OrderItem{
			Name:         stringArg(fields, "name"),
			SKU:          stringArg(fields, "sku"),
			Units:        intArg(fields, "units", 0),
			SellingPrice: floatArg(fields, "selling_price", 0),
		})
	}
	return items, nil
}
