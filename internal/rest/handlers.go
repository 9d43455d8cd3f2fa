package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cargodham/cargodham-mcp/internal/config"
	"github.com/cargodham/cargodham-mcp/internal/logging"
	"github.com/cargodham/cargodham-mcp/internal/shiprocket"
)

type handlers struct {
	gateway Gateway
	log     logging.Logger
}

func (h *handlers) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "CargoDham shipping gateway",
		"status":  "running",
		"version": "1.0.0",
		"endpoints": gin.H{
			"login":  "POST /api/login",
			"track":  "GET /api/track/:awb",
			"rate":   "POST /api/rate",
			"book":   "POST /api/book",
			"wallet": "GET /api/wallet",
			"orders": "GET /api/orders",
			"cancel": "POST /api/cancel",
		},
	})
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": config.Environment(),
	})
}

func (h *handlers) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success":             false,
		"error":               "Endpoint not found",
		"available_endpoints": availableEndpoints,
	})
}

func (h *handlers) login(c *gin.Context) {
	var creds shiprocket.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		badRequest(c, "Invalid JSON body")
		return
	}
	if creds.Email == "" || creds.Password == "" {
		badRequest(c, "Email and password required")
		return
	}
	result, err := h.gateway.Login(c.Request.Context(), creds)
	if err != nil {
		h.failed(c, "login", err)
		return
	}
	ok(c, result)
}

func (h *handlers) track(c *gin.Context) {
	query := shiprocket.TrackingQuery{AWBNumber: c.Param("awb")}
	result, err := h.gateway.TrackOrder(c.Request.Context(), query)
	if err != nil {
		h.failed(c, "track", err)
		return
	}
	ok(c, result)
}

func (h *handlers) rate(c *gin.Context) {
	var query shiprocket.RateQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		badRequest(c, "Invalid JSON body")
		return
	}
	if query.PickupPostcode == "" || query.DeliveryPostcode == "" || query.Weight == 0 {
		badRequest(c, "Pickup postcode, delivery postcode, and weight required")
		return
	}
	result, err := h.gateway.CalculateRate(c.Request.Context(), query)
	if err != nil {
		h.failed(c, "rate", err)
		return
	}
	ok(c, result)
}

func (h *handlers) book(c *gin.Context) {
	var order shiprocket.OrderRecord
	if err := c.ShouldBindJSON(&order); err != nil {
		badRequest(c, "Invalid JSON body")
		return
	}
	if order.OrderID == "" {
		badRequest(c, "Order data with order_id required")
		return
	}
	result, err := h.gateway.BookOrder(c.Request.Context(), order)
	if err != nil {
		h.failed(c, "book", err)
		return
	}
	ok(c, result)
}

func (h *handlers) wallet(c *gin.Context) {
	result, err := h.gateway.WalletBalance(c.Request.Context())
	if err != nil {
		h.failed(c, "wallet", err)
		return
	}
	ok(c, result)
}

func (h *handlers) orders(c *gin.Context) {
	query := shiprocket.PageQuery{
		Page:    intQuery(c, "page"),
		PerPage: intQuery(c, "per_page"),
	}
	result, err := h.gateway.GetOrders(c.Request.Context(), query)
	if err != nil {
		h.failed(c, "orders", err)
		return
	}
	ok(c, result)
}

func (h *handlers) cancel(c *gin.Context) {
	var query shiprocket.CancelQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		badRequest(c, "Invalid JSON body")
		return
	}
	if query.OrderID == "" {
		badRequest(c, "Order ID required")
		return
	}
	result, err := h.gateway.CancelOrder(c.Request.Context(), query)
	if err != nil {
		h.failed(c, "cancel", err)
		return
	}
	ok(c, result)
}

// intQuery parses a query parameter, treating absent or unparseable
// values as unset so the adapter applies its defaults.
func intQuery(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return v
}

func (h *handlers) failed(c *gin.Context, op string, err error) {
	h.log.Info("operation failed", "op", op, "error", err.Error())
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
}
