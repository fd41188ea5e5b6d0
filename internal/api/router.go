package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zdzdigital/booky-backend/internal/auth"
	"github.com/zdzdigital/booky-backend/internal/reservation"
	reservationHttp "github.com/zdzdigital/booky-backend/internal/reservation/http"
	"github.com/zdzdigital/booky-backend/internal/resource"
	resourceHttp "github.com/zdzdigital/booky-backend/internal/resource/http"
	"github.com/zdzdigital/booky-backend/internal/schedule"
	scheduleHttp "github.com/zdzdigital/booky-backend/internal/schedule/http"
	"github.com/zdzdigital/booky-backend/internal/servicetype"
	servicetypeHttp "github.com/zdzdigital/booky-backend/internal/servicetype/http"
	"github.com/zdzdigital/booky-backend/internal/user"
)

// Config holds the services and settings the router depends on.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	Location     *time.Location
	Now          func() time.Time

	UserService        user.Service
	ServiceTypeService servicetype.Service
	ResourceService    resource.Service
	ScheduleService    schedule.Service
	ReservationService reservation.Service
	JWTManager         *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = allowedOrigins(cfg.IsProduction, cfg.ProdOrigins)
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	// staffMiddleware: Further checks if the authenticated user has staff privileges.
	staffMiddleware := RequireStaff()

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	authHandler := NewAuthHandler(cfg.UserService, cfg.JWTManager)
	userHandler := NewUserHandler(cfg.UserService)
	serviceHandler := servicetypeHttp.NewHandler(cfg.ServiceTypeService)
	resourceHandler := resourceHttp.NewHandler(cfg.ResourceService)
	scheduleHandler := scheduleHttp.NewHandler(cfg.ScheduleService, cfg.Location, cfg.Now)
	reservationHandler := reservationHttp.NewHandler(cfg.ReservationService, cfg.Location)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		v1.POST("/auth/register", authHandler.Register)
		v1.POST("/auth/login", authHandler.Login)
		v1.GET("/me", authMiddleware, authHandler.Me)
		v1.GET("/users", authMiddleware, staffMiddleware, userHandler.List)

		servicetypeHttp.RegisterRoutes(v1, serviceHandler, authMiddleware, staffMiddleware)
		resourceHttp.RegisterRoutes(v1, resourceHandler, authMiddleware, staffMiddleware)
		scheduleHttp.RegisterRoutes(v1, scheduleHandler, authMiddleware, staffMiddleware)
		reservationHttp.RegisterRoutes(v1, reservationHandler, authMiddleware, staffMiddleware)
	}

	return r
}

func allowedOrigins(isProduction bool, prodOrigins string) []string {
	if !isProduction {
		return []string{
			"http://localhost:3000",
			"http://localhost:8081", // Swagger
		}
	}

	var origins []string
	for _, o := range strings.Split(prodOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
