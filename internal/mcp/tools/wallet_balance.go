package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/cargodham/cargodham-mcp/internal/shiprocket"
)

type WalletService interface {
	WalletBalance(ctx context.Context) (shiprocket.WalletResult, error)
}

type WalletBalanceHandler struct{ Service WalletService }

func (h *WalletBalanceHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := h.Service.WalletBalance(ctx)
	if err != nil {
		return mcp.NewToolResultError("Failed to get wallet balance: " + err.Error()), nil
	}
	text := fmt.Sprintf("Wallet Balance\n\nAvailable Balance: %g\nCurrency: %s",
		result.Balance, result.Currency)
	return mcp.NewToolResultText(text), nil
}
