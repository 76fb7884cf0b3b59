package main

import (
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"sistema_juridico_api/config"
	"sistema_juridico_api/db"
	"sistema_juridico_api/handlers"
	"sistema_juridico_api/middleware"
	"sistema_juridico_api/models"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	database, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close(database)

	// Run migrations
	if err := db.AutoMigrate(database,
		&models.Persona{},
		&models.Usuario{},
		&models.UsuarioRol{},
		&models.Demanda{},
		&models.Bitacora{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{cfg.AllowedOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut},
	}))

	h := handlers.New(database, cfg)

	// Credential endpoints are rate limited per client IP
	loginLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Requests: 10,
		Window:   1 * time.Minute,
	})

	api := e.Group("/api")
	{
		api.GET("/healthcheck", h.Healthcheck)
		api.POST("/registro", h.Registro, loginLimiter.Middleware())
		api.POST("/login", h.Login, loginLimiter.Middleware())

		admin := api.Group("/admin")
		{
			admin.GET("/usuarios-pendientes", h.UsuariosPendientes)
			admin.POST("/asignar-rol", h.AsignarRol)
			admin.POST("/desactivar-usuario", h.DesactivarUsuario)
		}

		demandas := api.Group("/demandas")
		{
			demandas.GET("/generar-folio", h.GenerarFolio)
			demandas.POST("/buscar-demandado", h.BuscarDemandado)
			demandas.POST("/crear", h.CrearDemanda)
			demandas.GET("/mis-demandas", h.MisDemandas)
		}

		autoridad := api.Group("/autoridad")
		{
			autoridad.GET("/pendientes", h.DemandasPendientes)
			autoridad.PUT("/asignar/:demanda_id", h.AsignarAutoridad)
			autoridad.GET("/activos/:autoridad_id", h.CasosActivos)
		}
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
