package router

import (
	"time"

	"github.com/fiis-disenobd/bd252-grupo2-app/internal/config"
	"github.com/fiis-disenobd/bd252-grupo2-app/internal/handler"
	"github.com/fiis-disenobd/bd252-grupo2-app/internal/middleware"
	"github.com/fiis-disenobd/bd252-grupo2-app/internal/repository"
	"github.com/fiis-disenobd/bd252-grupo2-app/internal/service"
	"github.com/fiis-disenobd/bd252-grupo2-app/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
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
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	productoRepo := repository.NewProductoRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	instalacionRepo := repository.NewInstalacionRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)
	solicitudRepo := repository.NewSolicitudRepository(db)
	cotizacionRepo := repository.NewCotizacionRepository(db)
	ordenRepo := repository.NewOrdenRepository(db)
	recepcionRepo := repository.NewRecepcionRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	catalogoSvc := service.NewCatalogoService(productoRepo, proveedorRepo, instalacionRepo, rdb)
	pedidoSvc := service.NewPedidoService(pedidoRepo)
	solicitudSvc := service.NewSolicitudService(solicitudRepo, pedidoRepo)
	cotizacionSvc := service.NewCotizacionService(cotizacionRepo, solicitudRepo, pedidoRepo, proveedorRepo)
	adjudicacionSvc := service.NewAdjudicacionService(cotizacionRepo, solicitudRepo, pedidoRepo, ordenRepo, dispatcher)
	recepcionSvc := service.NewRecepcionService(ordenRepo, recepcionRepo, solicitudRepo, instalacionRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	catalogoH := handler.NewCatalogoHandler(catalogoSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)
	solicitudesH := handler.NewSolicitudesHandler(solicitudSvc)
	cotizacionesH := handler.NewCotizacionesHandler(cotizacionSvc)
	adjudicacionH := handler.NewAdjudicacionHandler(adjudicacionSvc)
	recepcionesH := handler.NewRecepcionesHandler(recepcionSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb))

	ab := r.Group("/api/abastecimiento")
	{
		// Catálogo (solo lectura)
		ab.GET("/productos", catalogoH.ListarProductos)
		ab.GET("/productos/:id", catalogoH.ObtenerProducto)
		ab.GET("/proveedores", catalogoH.ListarProveedores)
		ab.GET("/proveedores/buscar", cotizacionesH.BuscarProveedores)
		ab.GET("/proveedores/:id", catalogoH.ObtenerProveedor)
		ab.GET("/instalaciones", catalogoH.ListarInstalaciones)

		// Revisión de pedidos
		ab.GET("/pedidos", pedidosH.Listar)
		ab.GET("/pedidos/:id/detalle", pedidosH.Obtener)
		ab.PUT("/pedidos/:id/revisar", pedidosH.MarcarRevisado)

		// Solicitudes de cotización
		ab.GET("/solicitudes", solicitudesH.Listar)
		ab.GET("/solicitudes/items-pendientes", pedidosH.ListarItemsPendientes)
		ab.POST("/solicitudes/generar", solicitudesH.Generar)
		ab.GET("/solicitudes/:id/productos-para-cotizar", cotizacionesH.ProductosParaCotizar)
		ab.GET("/solicitudes/:id/proveedores-cotizantes", adjudicacionH.ProveedoresCotizantes)
		ab.GET("/solicitudes/:id/ofertas/:idProveedor", adjudicacionH.ObtenerOferta)

		// Cotizaciones
		ab.POST("/cotizaciones", cotizacionesH.Registrar)

		// Adjudicación y órdenes de compra
		ab.POST("/ordenes-compra/generar", adjudicacionH.GenerarOrdenes)
		ab.GET("/ordenes-compra/pendientes-recepcion", recepcionesH.OrdenesPendientes)
		ab.GET("/ordenes-compra/:id/productos-programables", recepcionesH.ProductosProgramables)

		// Recepciones
		ab.POST("/recepciones/programar", recepcionesH.Programar)
	}

	return r
}
