package router

import (
	"time"

	"flotagest/internal/config"
	"flotagest/internal/handler"
	"flotagest/internal/middleware"
	"flotagest/internal/repository"
	"flotagest/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Deps are the repository implementations the router serves — GORM-backed in
// postgres mode, repository.Memory in memory mode. Redis may be nil.
type Deps struct {
	Vehicles repository.VehicleRepository
	Drivers  repository.DriverRepository
	Records  repository.RecordRepository
	Redis    *redis.Client
}

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository
func New(cfg *config.Config, deps Deps) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute))

	// ── Services ─────────────────────────────────────────────────────────────
	cache := service.NewFilterOptionsCache(deps.Redis)
	vehicleSvc := service.NewVehicleService(deps.Vehicles, cache)
	driverSvc := service.NewDriverService(deps.Drivers, cache)
	recordSvc := service.NewRecordService(deps.Records, deps.Vehicles, deps.Drivers, cache)

	// ── Handlers ─────────────────────────────────────────────────────────────
	vehiclesH := handler.NewVehiclesHandler(vehicleSvc)
	driversH := handler.NewDriversHandler(driverSvc)
	recordsH := handler.NewRecordsHandler(recordSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health)

	r.GET("/vehicles", vehiclesH.Listar)
	r.POST("/vehicles", vehiclesH.Crear)
	r.PUT("/vehicles/:id", vehiclesH.Actualizar)
	r.DELETE("/vehicles/:id", vehiclesH.Eliminar)

	r.GET("/drivers", driversH.Listar)
	r.GET("/drivers/active", driversH.ListarActivos)
	r.POST("/drivers", driversH.Crear)
	r.PUT("/drivers/:id", driversH.Actualizar)
	r.DELETE("/drivers/:id", driversH.Eliminar)

	r.GET("/records", recordsH.Listar)
	r.GET("/records/filters", recordsH.OpcionesFiltros)
	r.POST("/records", recordsH.Crear)
	r.PUT("/records/:id", recordsH.Actualizar)
	r.DELETE("/records/:id", recordsH.Eliminar)

	return r
}
