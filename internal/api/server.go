package api

import (
	"net/http"
	"strconv"

	"tabletab/internal/analytics"
	"tabletab/internal/auth"
	"tabletab/internal/chat"
	"tabletab/internal/live"
	"tabletab/internal/menu"
	"tabletab/internal/models"
	"tabletab/internal/monitoring"
	"tabletab/internal/orders"
	"tabletab/internal/settings"

	"github.com/gin-gonic/gin"
)

// Server wires the HTTP API together.
type Server struct {
	Router *gin.Engine

	auth      *auth.Service
	menu      *menu.Service
	orders    *orders.Service
	analytics *analytics.Service
	assistant *chat.Assistant
	settings  *settings.Service
	hub       *live.Hub
	metrics   *monitoring.Collector

	publicBaseURL string
}

// Deps carries everything the server needs.
type Deps struct {
	Auth          *auth.Service
	Menu          *menu.Service
	Orders        *orders.Service
	Analytics     *analytics.Service
	Assistant     *chat.Assistant
	Settings      *settings.Service
	Hub           *live.Hub
	Metrics       *monitoring.Collector
	PublicBaseURL string
}

// NewServer creates the API server and registers all routes.
func NewServer(deps Deps) *Server {
	s := &Server{
		Router:        gin.Default(),
		auth:          deps.Auth,
		menu:          deps.Menu,
		orders:        deps.Orders,
		analytics:     deps.Analytics,
		assistant:     deps.Assistant,
		settings:      deps.Settings,
		hub:           deps.Hub,
		metrics:       deps.Metrics,
		publicBaseURL: deps.PublicBaseURL,
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all API endpoints
func (s *Server) setupRoutes() {
	s.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "TableTab API is running"})
	})

	v1 := s.Router.Group("/api/v1")

	v1.POST("/auth/signup", s.SignUp)
	v1.POST("/auth/login", s.Login)

	// Customer-facing routes reached from the table QR code; no account.
	public := v1.Group("/public/restaurants/:restaurant_id")
	{
		public.GET("/menu", s.PublicMenu)
		public.POST("/chat", s.Chat)
		public.POST("/orders", s.PublicCreateOrder)
	}

	authed := v1.Group("", s.auth.Middleware())

	// Waiters and owners share order tracking and the live feed.
	staff := authed.Group("", auth.RequireRole(models.RoleOwner, models.RoleWaiter))
	{
		staff.GET("/orders", s.ListOrders)
		staff.PATCH("/orders/:id/status", s.UpdateOrderStatus)
		staff.GET("/ws", s.LiveFeed)
	}

	// Everything else is owner-only.
	owner := authed.Group("", auth.RequireRole(models.RoleOwner))
	{
		owner.GET("/menu", s.ListMenu)
		owner.POST("/menu", s.CreateMenuItem)
		owner.PUT("/menu/:id", s.UpdateMenuItem)
		owner.DELETE("/menu/:id", s.DeleteMenuItem)
		owner.PATCH("/menu/:id/stock", s.ToggleMenuItemStock)

		owner.GET("/analytics", s.GetAnalytics)

		owner.GET("/settings", s.GetSettings)
		owner.PUT("/settings", s.SaveSettings)

		owner.GET("/waiters", s.ListWaiters)
		owner.POST("/waiters", s.CreateWaiter)
		owner.DELETE("/waiters/:id", s.DeleteWaiter)

		owner.GET("/qrcode", s.QRCode)

		owner.GET("/orders/:id/bill", s.OrderBill)
		owner.GET("/orders/:id/kot", s.OrderKOT)
	}
}

// claims returns the authenticated claims; handlers behind Middleware can
// rely on it being non-nil.
func (s *Server) claims(c *gin.Context) *auth.Claims {
	return auth.ClaimsFrom(c)
}

// pathID parses a numeric path parameter, replying 400 on garbage.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}
