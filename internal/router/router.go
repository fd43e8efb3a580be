package router

import (
	"github.com/2001Hector/api-movil/internal/config"
	"github.com/2001Hector/api-movil/internal/handler"
	"github.com/2001Hector/api-movil/internal/imagestore"
	"github.com/2001Hector/api-movil/internal/middleware"
	"github.com/2001Hector/api-movil/internal/repository"
	"github.com/2001Hector/api-movil/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB, images *imagestore.Store) *gin.Engine {
	ramoRepo := repository.NewRamoRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)

	ramoSvc := service.NewRamoService(ramoRepo, images)
	pedidoSvc := service.NewPedidoService(pedidoRepo)

	return build(cfg,
		handler.Health(db),
		handler.NewRamosHandler(ramoSvc),
		handler.NewPedidosHandler(pedidoSvc),
		images.Dir(),
	)
}

// build assembles the engine from ready-made handlers; split out from New
// so tests can mount the real route table over stub services.
func build(cfg *config.Config, health gin.HandlerFunc, ramos *handler.RamosHandler, pedidos *handler.PedidosHandler, uploadDir string) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters). CORS also short-circuits
	// OPTIONS preflights before any route matching.
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())

	// The mobile client historically hit both the bare paths and the
	// /api-prefixed ones; both mounts serve the same table.
	mount := func(g *gin.RouterGroup, root string) {
		// The probe answers any method, matching what the client's
		// connectivity check sends.
		g.Any(root, health)
		g.Any("/health", health)

		g.GET("/ramos", ramos.Listar)
		g.POST("/ramos", ramos.Crear)
		g.GET("/ramos/:id", ramos.ObtenerPorID)
		g.PUT("/ramos/:id", ramos.Actualizar)
		g.DELETE("/ramos/:id", ramos.Eliminar)

		g.GET("/pedidos", pedidos.Listar)
		g.POST("/pedidos", pedidos.Crear)
		g.GET("/pedidos/:id", pedidos.ObtenerPorID)
		g.PUT("/pedidos/:id", pedidos.Actualizar)
		g.DELETE("/pedidos/:id", pedidos.Eliminar)
	}
	mount(&r.RouterGroup, "/")
	mount(r.Group("/api"), "")

	// Uploaded images as static content — the target of imagen_url.
	if uploadDir != "" {
		r.Static("/uploads", uploadDir)
	}

	r.NoRoute(handler.RouteNotFound)

	return r
}
