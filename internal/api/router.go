package api

import (
	"sync"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/hotelops/hotel-console/docs"
	"github.com/hotelops/hotel-console/internal/api/handler"
	"github.com/hotelops/hotel-console/internal/api/middleware"
	"github.com/hotelops/hotel-console/internal/infrastructure/pms"
)

// Deps are the collaborators the router wires into handlers and middleware.
type Deps struct {
	Log             zerolog.Logger
	Backend         *pms.Client
	Sessions        middleware.SessionProvider
	Submissions     middleware.SubmitClaimer
	BrowsingContext middleware.BrowsingContextConfig
	Readiness       map[string]handler.DependencyCheck
}

// httpMetrics registers the echoprometheus collectors once per process.
var httpMetrics = sync.OnceValue(func() echo.MiddlewareFunc {
	return echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace: "hotel_console",
		Subsystem: "http",
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	})
})

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	e.Use(httpMetrics())

	// --- Operational endpoints (outside the guard) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(deps.Readiness).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Console routes: every page and action passes the route guard ---
	console := e.Group("",
		middleware.BrowsingContext(deps.BrowsingContext),
		middleware.Session(deps.Sessions),
		middleware.Guard(),
		middleware.SubmitGuard(deps.Submissions, deps.Log),
	)

	auth := handler.NewAuthHandler(deps.Backend, deps.Log)
	console.GET("/login", auth.LoginPage)
	console.POST("/login", auth.Login)
	console.POST("/logout", auth.Logout)
	console.GET("/session", auth.Session)
	console.GET("/", auth.Home)

	users := handler.NewUserHandler(deps.Backend)
	ug := console.Group("/users")
	ug.GET("", users.List)
	ug.POST("", users.Create)
	ug.GET("/active", users.ListActive)
	ug.GET("/inactive", users.ListInactive)
	ug.GET("/statistics", users.Statistics)
	ug.GET("/role/:role", users.ListByRole)
	ug.GET("/username/:username", users.GetByUsername)
	ug.GET("/:id", users.Get)
	ug.PUT("/:id", users.Update)
	ug.DELETE("/:id", users.Delete)
	ug.PUT("/:id/password", users.ChangePassword)
	ug.PUT("/:id/activate", users.Activate)
	ug.PUT("/:id/deactivate", users.Deactivate)

	roomTypes := handler.NewRoomTypeHandler(deps.Backend)
	rt := console.Group("/property/room-types")
	rt.GET("", roomTypes.List)
	rt.POST("", roomTypes.Create)
	rt.GET("/active", roomTypes.ListActive)
	rt.GET("/inactive", roomTypes.ListInactive)
	rt.GET("/statistics", roomTypes.Statistics)
	rt.GET("/name/:name", roomTypes.GetByName)
	rt.GET("/:id", roomTypes.Get)
	rt.PUT("/:id", roomTypes.Update)
	rt.DELETE("/:id", roomTypes.Delete)
	rt.PUT("/:id/activate", roomTypes.Activate)
	rt.PUT("/:id/deactivate", roomTypes.Deactivate)

	property := handler.NewPropertyHandler(deps.Backend)
	pg := console.Group("/property")
	pg.POST("/rooms/bulk-create", property.BulkCreateRooms)
	pg.PUT("/rooms/bulk-update-status", property.BulkUpdateStatus)
	pg.DELETE("/rooms/bulk-delete", property.BulkDeleteRooms)
	pg.PUT("/rooms/bulk-assign-type", property.BulkAssignType)
	pg.GET("/floors/:floor/rooms", property.FloorRooms)
	pg.PUT("/floors/:floor/status", property.UpdateFloorStatus)

	financial := handler.NewFinancialHandler(deps.Backend)
	fg := console.Group("/financial")
	fg.GET("/dashboard", financial.Dashboard)
	fg.GET("/stats/quick", financial.QuickStats)
	fg.GET("/revenue", financial.Revenue)
	fg.GET("/revenue/month/:year/:month", financial.RevenueForMonth)
	fg.GET("/expenses", financial.Expenses)
	fg.GET("/occupancy", financial.Occupancy)

	return e
}

// requestLogger emits one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Warn().Err(v.Error)
			}
			evt.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
