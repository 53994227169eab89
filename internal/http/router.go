package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"comercialsoares.com/app/internal/config"
	"comercialsoares.com/app/internal/http/handlers"
	"comercialsoares.com/app/internal/http/middleware"
	"comercialsoares.com/app/internal/http/session"
)

// Handlers bundles the API surface for route registration.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Orders    *handlers.OrdersHandler
	Receipts  *handlers.ReceiptsHandler
	Customers *handlers.CustomersHandler
	Dashboard *handlers.DashboardHandler
}

func NewRouter(cfg *config.Config, codec *session.Codec, h Handlers, l *slog.Logger) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(l))
	r.Use(middleware.Recovery(l))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.ErrorHandler(l))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.POST("/login", h.Auth.Login)
	api.POST("/logout", h.Auth.Logout)
	api.GET("/session", h.Auth.Me)

	priv := api.Group("")
	priv.Use(middleware.RequireAuth(codec))

	priv.GET("/orders", h.Orders.List)
	priv.POST("/orders", h.Orders.Start)
	priv.GET("/orders/:id", h.Orders.Get)
	priv.DELETE("/orders/:id", h.Orders.Delete)
	priv.POST("/orders/:id/items", h.Orders.AddItem)
	priv.DELETE("/orders/:id/items/:index", h.Orders.RemoveItem)
	priv.POST("/orders/:id/bulk", h.Orders.AddBulk)
	priv.POST("/orders/:id/copy", h.Orders.SetCopy)
	priv.POST("/orders/:id/finalize", h.Orders.Finalize)
	priv.POST("/orders/:id/reopen", h.Orders.Reopen)
	priv.GET("/orders/:id/receipt", h.Receipts.Download)
	priv.POST("/orders/:id/reprint", h.Receipts.Reprint)
	priv.POST("/orders/:id/email", h.Receipts.Email)

	priv.GET("/customers", h.Customers.List)
	priv.POST("/customers", h.Customers.Create)
	priv.PUT("/customers/:id", h.Customers.Update)
	priv.DELETE("/customers/:id", h.Customers.Delete)
	priv.GET("/customers/:id/stats", h.Customers.Stats)

	priv.GET("/dashboard", h.Dashboard.Summary)

	return r
}
