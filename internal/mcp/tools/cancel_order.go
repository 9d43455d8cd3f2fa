package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/cargodham/cargodham-mcp/internal/shiprocket"
)

type CancelService interface {
	CancelOrder(ctx context.Context, q shiprocket.CancelQuery) (shiprocket.CancelResult, error)
}

type CancelOrderHandler struct{ Service CancelService }

func (h *CancelOrderHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := shiprocket.CancelQuery{OrderID: stringArg(req.GetArguments(), "order_id")}
	result, err := h.Service.CancelOrder(ctx, query)
	if err != nil {
		return mcp.NewToolResultError("Order cancellation failed: " + err.Error()), nil
	}
	text := fmt.Sprintf("Order Cancellation\n\nOrder ID: %s\nStatus: %s",
		result.OrderID, result.Message)
	return mcp.NewToolResultText(text), nil
}
