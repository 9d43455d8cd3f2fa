package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/cargodham/cargodham-mcp/internal/shiprocket"
)

// displayLimit caps how many orders the free-text rendering lists; the
// remainder is summarized as a count. The full page stays in the payload.
const displayLimit = 5

type OrderListService interface {
	GetOrders(ctx context.Context, q shiprocket.PageQuery) (shiprocket.OrdersResult, error)
}

type GetOrdersHandler struct{ Service OrderListService }

func (h *GetOrdersHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	query := shiprocket.PageQuery{
		Page:    intArg(args, "page", 0),
		PerPage: intArg(args, "per_page", 0),
	}
	result, err := h.Service.GetOrders(ctx, query)
	if err != nil {
		return mcp.NewToolResultError("Failed to get orders: " + err.Error()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Orders List (Page %d)\n\n", result.Page)
	fmt.Fprintf(&b, "Total Orders: %d\nPer Page: %d\n\n", len(result.Orders), result.PerPage)
	for i, order := range result.Orders {
		if i == displayLimit {
			break
		}
		fmt.Fprintf(&b, "%d. Order #%s\n   Status: %s\n   Customer: %s\n   Amount: %s\n",
			i+1, order.ID, order.Status, order.CustomerName, order.Total)
	}
	if rest := len(result.Orders) - displayLimit; rest > 0 {
		fmt.Fprintf(&b, "\n... and %d more orders", rest)
	}
	return mcp.NewToolResultText(b.String()), nil
}
