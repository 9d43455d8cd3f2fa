// Package rest exposes the gateway operations as a JSON REST API with
// a uniform {success, data, error} envelope.
package rest

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/cargodham/cargodham-mcp/internal/logging"
	"github.com/cargodham/cargodham-mcp/internal/shiprocket"
)

// Gateway is the adapter surface the REST handlers delegate to.
// *shiprocket.Client satisfies it.
type Gateway interface {
	Login(ctx context.Context, creds shiprocket.Credentials) (shiprocket.LoginResult, error)
	TrackOrder(ctx context.Context, q shiprocket.TrackingQuery) (shiprocket.TrackingResult, error)
	CalculateRate(ctx context.Context, q shiprocket.RateQuery) (shiprocket.RateResult, error)
	BookOrder(ctx context.Context, order shiprocket.OrderRecord) (shiprocket.BookingResult, error)
	WalletBalance(ctx context.Context) (shiprocket.WalletResult, error)
	GetOrders(ctx context.Context, q shiprocket.PageQuery) (shiprocket.OrdersResult, error)
	CancelOrder(ctx context.Context, q shiprocket.CancelQuery) (shiprocket.CancelResult, error)
}

var availableEndpoints = []string{
	"GET /",
	"GET /health",
	"POST /api/login",
	"GET /api/track/:awb",
	"POST /api/rate",
	"POST /api/book",
	"GET /api/wallet",
	"GET /api/orders",
	"POST /api/cancel",
}

// NewRouter builds the gin engine serving the seven operations plus the
// informational root, health check, and catch-all 404.
func NewRouter(gateway Gateway, log logging.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	_ = engine.SetTrustedProxies(nil)

	h := &handlers{gateway: gateway, log: log}

	engine.GET("/", h.root)
	engine.GET("/health", h.health)

	api := engine.Group("/api")
	api.POST("/login", h.login)
	api.GET("/track/:awb", h.track)
	api.POST("/rate", h.rate)
	api.POST("/book", h.book)
	api.GET("/wallet", h.wallet)
	api.GET("/orders", h.orders)
	api.POST("/cancel", h.cancel)

	engine.NoRoute(h.notFound)
	return engine
}
