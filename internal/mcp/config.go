package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/cargodham/cargodham-mcp/internal/config"
	"github.com/cargodham/cargodham-mcp/internal/logging"
	"github.com/cargodham/cargodham-mcp/internal/mcp/tools"
	"github.com/cargodham/cargodham-mcp/internal/shiprocket"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
}

func DefaultConfig() Config {
	baseLogger := logging.DefaultLogger()
	client := shiprocket.NewClient(shiprocket.Config{
		BaseURL: config.BaseURL(),
		Timeout: config.UpstreamTimeout(),
		Token:   config.APIToken,
		Logger:  logging.New(baseLogger.WithName("shiprocket")),
	})

	return Config{
		ToolAdapters: map[string]ToolAdapter{
			"cargodham_login":          &tools.LoginHandler{Service: client},
			"cargodham_track_order":    &tools.TrackOrderHandler{Service: client},
			"cargodham_calculate_rate": &tools.CalculateRateHandler{Service: client},
			"cargodham_book_order":     &tools.BookOrderHandler{Service: client},
			"cargodham_wallet_balance": &tools.WalletBalanceHandler{Service: client},
			"cargodham_get_orders":     &tools.GetOrdersHandler{Service: client},
			"cargodham_cancel_order":   &tools.CancelOrderHandler{Service: client},
		},
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath("/mcp"),
			server.WithStateLess(true),
		},
	}
}
