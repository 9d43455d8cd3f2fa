package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/cargodham/cargodham-mcp/internal/shiprocket"
)

type TrackingService interface {
	TrackOrder(ctx context.Context, q shiprocket.TrackingQuery) (shiprocket.TrackingResult, error)
}

type TrackOrderHandler struct{ Service TrackingService }

func (h *TrackOrderHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := shiprocket.TrackingQuery{AWBNumber: stringArg(req.GetArguments(), "awb_number")}
	result, err := h.Service.TrackOrder(ctx, query)
	if err != nil {
		return mcp.NewToolResultError("Tracking failed: " + err.Error()), nil
	}
	delivered := "No"
	if result.Delivered {
		delivered = "Yes"
	}
	text := fmt.Sprintf("Tracking Status for AWB: %s\n\nStatus: %s\nCurrent Location: %s\nDelivered: %s\nLast Update: %s",
		result.AWBNumber, result.TrackStatus, result.CurrentStatus, delivered, result.LastUpdate)
	return mcp.NewToolResultText(text), nil
}
