package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zdzdigital/booky-backend/internal/api"
	"github.com/zdzdigital/booky-backend/internal/auth"
	"github.com/zdzdigital/booky-backend/internal/reservation"
	"github.com/zdzdigital/booky-backend/internal/resource"
	"github.com/zdzdigital/booky-backend/internal/schedule"
	"github.com/zdzdigital/booky-backend/internal/servicetype"
	"github.com/zdzdigital/booky-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
	Location     *time.Location
	Notifier     reservation.Notifier

	// Now overrides the clock; nil means the wall clock. Tests inject a
	// fixed time here.
	Now func() time.Time
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Init Components
	passwordHasher := auth.NewBcryptHasher(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Service Catalog Module
	serviceRepo := servicetype.NewPgxRepository(cfg.DBPool)
	serviceService := servicetype.NewService(serviceRepo)

	// Resource Module
	resourceRepo := resource.NewPgxRepository(cfg.DBPool)
	resourceService := resource.NewService(resourceRepo)

	// Schedule Module (business hours + holidays)
	scheduleRepo := schedule.NewPgxRepository(cfg.DBPool)
	scheduleService := schedule.NewService(scheduleRepo)

	// Reservation Module
	reservationRepo := reservation.NewPgxRepository(cfg.DBPool)
	reservationService := reservation.NewService(
		reservationRepo,
		serviceService,
		scheduleService,
		cfg.Notifier,
		cfg.Location,
		cfg.Now,
	)

	// API Router Config
	routerParams := api.Config{
		IsProduction:       cfg.IsProduction,
		ProdOrigins:        cfg.ProdOrigins,
		Location:           cfg.Location,
		Now:                cfg.Now,
		UserService:        userService,
		ServiceTypeService: serviceService,
		ResourceService:    resourceService,
		ScheduleService:    scheduleService,
		ReservationService: reservationService,
		JWTManager:         jwtManager,
	}

	// Router
	router := api.NewRouter(routerParams)

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}
}
