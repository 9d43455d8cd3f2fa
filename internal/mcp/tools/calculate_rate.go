package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/cargodham/cargodham-mcp/internal/shiprocket"
)

type RateService interface {
	CalculateRate(ctx context.Context, q shiprocket.RateQuery) (shiprocket.RateResult, error)
}

type CalculateRateHandler struct{ Service RateService }

func (h *CalculateRateHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	query := shiprocket.RateQuery{
		PickupPostcode:   stringArg(args, "pickup_postcode"),
		DeliveryPostcode: stringArg(args, "delivery_postcode"),
		Weight:           floatArg(args, "weight", 0),
		COD:              floatArg(args, "cod", 0),
	}
	result, err := h.Service.CalculateRate(ctx, query)
	if err != nil {
		return mcp.NewToolResultError("Rate calculation failed: " + err.Error()), nil
	}
	text := fmt.Sprintf("Shipping Rate Calculation\n\nFrom: %s -> To: %s\nWeight: %gkg\nCOD Amount: %g\n\nAvailable Services: %d couriers",
		result.PickupPostcode, result.DeliveryPostcode, result.Weight, result.COD, result.AvailableCouriers)
	return mcp.NewToolResultText(text), nil
}
