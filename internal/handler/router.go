package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ranch-booking/internal/handler/api"
	"ranch-booking/internal/handler/middleware"
	"ranch-booking/internal/infra/ratelimit"
	"ranch-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups the HTTP handlers the router mounts.
type Handlers struct {
	Auth         *api.AuthHandler
	Reservation  *api.ReservationHandler
	Availability *api.AvailabilityHandler
	Service      *api.ServiceHandler
	Slot         *api.SlotHandler
	Image        *api.ImageHandler
	Stats        *api.StatsHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter ratelimit.Limiter) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, h, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(slog.Default(), cfg.Log, "/health", cfg.Upload.URLPrefix))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter ratelimit.Limiter) {
	engine.GET("/health", healthCheck)
	engine.Static(cfg.Upload.URLPrefix, cfg.Upload.Dir)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	admin := authMiddleware.RequireAdmin()
	rateLimited := middleware.RateLimit(limiter, cfg.RateLimit)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{rateLimited}},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{admin}},
		})

		addRoutes(apiGroup.Group("/availability"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Availability.Get},
			{Method: http.MethodGet, Path: "/slots", Handler: h.Availability.Slots},
			{Method: http.MethodGet, Path: "/calendar", Handler: h.Availability.Calendar},
		})

		addRoutes(apiGroup.Group("/reservations"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create, Mw: []gin.HandlerFunc{rateLimited}},
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.List, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Reservation.UpdateStatus, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.Delete, Mw: []gin.HandlerFunc{admin}},
		})

		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(admin)
		addRoutes(adminGroup, []route{
			{Method: http.MethodPost, Path: "/reservations", Handler: h.Reservation.AdminCreate},
		})

		addRoutes(apiGroup.Group("/services"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Service.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Service.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Service.Create, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Service.Update, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Service.Delete, Mw: []gin.HandlerFunc{admin}},
		})

		addRoutes(apiGroup.Group("/riding-slots"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Slot.List},
			{Method: http.MethodPost, Path: "", Handler: h.Slot.Create, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodPost, Path: "/generate", Handler: h.Slot.Generate, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Slot.Delete, Mw: []gin.HandlerFunc{admin}},
		})

		addRoutes(apiGroup.Group("/images"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Image.List},
			{Method: http.MethodPost, Path: "", Handler: h.Image.Upload, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Image.Update, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Image.Delete, Mw: []gin.HandlerFunc{admin}},
		})

		stats := apiGroup.Group("/stats")
		stats.Use(admin)
		addRoutes(stats, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Stats.Dashboard},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
