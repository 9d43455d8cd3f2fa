package mcp

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ToolAdapter is implemented by every tool handler: convert the call
// arguments, invoke the shared gateway adapter, render the result.
type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		"cargodham-server",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Register tools with their declared schemas using the mcp-go
	// builder pattern.
	toolDefinitions := map[string]mcp.Tool{
		"cargodham_login": mcp.NewTool("cargodham_login",
			mcp.WithDescription("Login to the CargoDham/Shiprocket API to get an authentication token"),
			mcp.WithString("email",
				mcp.Required(),
				mcp.Description("User email address"),
			),
			mcp.WithString("password",
				mcp.Required(),
				mcp.Description("User password"),
			),
		),
		"cargodham_track_order": mcp.NewTool("cargodham_track_order",
			mcp.WithDescription("Track a shipment using its AWB (Air Waybill) number"),
			mcp.WithString("awb_number",
				mcp.Required(),
				mcp.Description("AWB tracking number"),
			),
		),
		"cargodham_calculate_rate": mcp.NewTool("cargodham_calculate_rate",
			mcp.WithDescription("Calculate shipping rates between pickup and delivery locations"),
			mcp.WithString("pickup_postcode",
				mcp.Required(),
				mcp.Description("Pickup postal code"),
			),
			mcp.WithString("delivery_postcode",
				mcp.Required(),
				mcp.Description("Delivery postal code"),
			),
			mcp.WithNumber("weight",
				mcp.Required(),
				mcp.Description("Package weight in kg"),
			),
			mcp.WithNumber("cod",
				mcp.Description("Cash on Delivery amount (optional, default 0)"),
			),
		),
		"cargodham_book_order": mcp.NewTool("cargodham_book_order",
			mcp.WithDescription("Create a new shipping order"),
			mcp.WithString("order_id",
				mcp.Required(),
				mcp.Description("Unique order ID"),
			),
			mcp.WithString("order_date",
				mcp.Required(),
				mcp.Description("Order date (YYYY-MM-DD)"),
			),
			mcp.WithString("pickup_location",
				mcp.Required(),
				mcp.Description("Pickup address"),
			),
			mcp.WithString("billing_customer_name",
				mcp.Required(),
				mcp.Description("Customer name"),
			),
			mcp.WithString("billing_phone",
				mcp.Required(),
				mcp.Description("Customer phone number (at least 10 digits)"),
			),
			mcp.WithString("billing_address",
				mcp.Required(),
				mcp.Description("Billing address"),
			),
			mcp.WithString("billing_city",
				mcp.Required(),
				mcp.Description("Billing city"),
			),
			mcp.WithString("billing_pincode",
				mcp.Required(),
				mcp.Description("Billing pincode (at least 6 digits)"),
			),
			mcp.WithString("billing_state",
				mcp.Required(),
				mcp.Description("Billing state"),
			),
			mcp.WithString("billing_country",
				mcp.DefaultString("India"),
				mcp.Description("Billing country"),
			),
			mcp.WithBoolean("shipping_is_billing",
				mcp.DefaultBool(true),
				mcp.Description("Use the billing address for shipping"),
			),
			mcp.WithArray("order_items",
				mcp.Required(),
				mcp.Description("Order line items"),
				mcp.Items(map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name":          map[string]any{"type": "string", "description": "Item name"},
						"sku":           map[string]any{"type": "string", "description": "Item SKU"},
						"units":         map[string]any{"type": "number", "description": "Quantity"},
						"selling_price": map[string]any{"type": "number", "description": "Item price"},
					},
					"required": []string{"name", "sku", "units", "selling_price"},
				}),
			),
			mcp.WithString("payment_method",
				mcp.Description("Payment method"),
				mcp.Enum("COD", "Prepaid"),
				mcp.DefaultString("COD"),
			),
			mcp.WithNumber("sub_total",
				mcp.Required(),
				mcp.Description("Order subtotal"),
			),
			mcp.WithNumber("length",
				mcp.Required(),
				mcp.Description("Package length (cm)"),
			),
			mcp.WithNumber("breadth",
				mcp.Required(),
				mcp.Description("Package breadth (cm)"),
			),
			mcp.WithNumber("height",
				mcp.Required(),
				mcp.Description("Package height (cm)"),
			),
			mcp.WithNumber("weight",
				mcp.Required(),
				mcp.Description("Package weight (kg)"),
			),
		),
		"cargodham_wallet_balance": mcp.NewTool("cargodham_wallet_balance",
			mcp.WithDescription("Get the current wallet balance and account details"),
		),
		"cargodham_get_orders": mcp.NewTool("cargodham_get_orders",
			mcp.WithDescription("Retrieve the list of orders with pagination"),
			mcp.WithNumber("page",
				mcp.Description("Page number (default 1)"),
			),
			mcp.WithNumber("per_page",
				mcp.Description("Orders per page (default 10, max 50)"),
			),
		),
		"cargodham_cancel_order": mcp.NewTool("cargodham_cancel_order",
			mcp.WithDescription("Cancel an existing order"),
			mcp.WithString("order_id",
				mcp.Required(),
				mcp.Description("Order ID to cancel"),
			),
		),
	}

	for name, adapter := range cfg.ToolAdapters {
		tool := toolDefinitions[name]
		mcpServer.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return adapter.ToolAdapter(ctx, req)
		})
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: httpServer,
	}
}
