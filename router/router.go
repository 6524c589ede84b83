package router

import (
	"time"

	"activos/api"
	"activos/config"
	_ "activos/docs"
	"activos/middleware"
	"activos/repository"
	"activos/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter arma repositorios, servicios y handlers sobre la conexión recibida
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	// modo de ejecución
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), middleware.Recovery(), middleware.CORS())

	// repositorios
	categoriaRepo := repository.NewCategoriaRepository(db)
	activoRepo := repository.NewActivoRepository(db)
	movimientoRepo := repository.NewMovimientoRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)
	reporteRepo := repository.NewReporteRepository(db)
	plantillaRepo := repository.NewPlantillaRepository(db)
	txRunner := repository.NewTxRunner(db)

	// servicios
	categoriaSvc := service.NewCategoriaService(categoriaRepo)
	activoSvc := service.NewActivoService(activoRepo, categoriaRepo)
	movimientoSvc := service.NewMovimientoService(movimientoRepo, activoRepo, txRunner)
	dashboardSvc := service.NewDashboardService(dashboardRepo, activoRepo)
	depreciacionSvc := service.NewDepreciacionService(activoRepo, nil)
	reporteSvc := service.NewReporteService(reporteRepo)
	plantillaSvc := service.NewPlantillaService(plantillaRepo, activoRepo, cfg.Empresa)

	// handlers
	categoriaHandler := api.NewCategoriaHandler(categoriaSvc)
	activoHandler := api.NewActivoHandler(activoSvc, dashboardSvc)
	movimientoHandler := api.NewMovimientoHandler(movimientoSvc)
	depreciacionHandler := api.NewDepreciacionHandler(depreciacionSvc)
	reporteHandler := api.NewReporteHandler(reporteSvc)
	plantillaHandler := api.NewPlantillaHandler(plantillaSvc)

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/health", api.Health)

	apiGroup := r.Group("/api")
	{
		movimientos := apiGroup.Group("/movimientos")
		{
			movimientos.GET("", movimientoHandler.List)
			movimientos.POST("", movimientoHandler.Create)
			movimientos.GET("/activo/:id", movimientoHandler.ListByActivo)
		}

		categorias := apiGroup.Group("/categorias")
		{
			categorias.GET("", categoriaHandler.List)
			categorias.POST("", categoriaHandler.Create)
			categorias.GET("/:id", categoriaHandler.Get)
			categorias.PUT("/:id", categoriaHandler.Update)
		}

		activos := apiGroup.Group("/activos")
		{
			activos.GET("", activoHandler.List)
			activos.POST("", activoHandler.Create)
			activos.GET("/dashboard", activoHandler.Dashboard)
			activos.GET("/:id", activoHandler.Get)
		}

		depreciacion := apiGroup.Group("/depreciacion")
		{
			depreciacion.GET("/reporte/:periodo", depreciacionHandler.Reporte)
			depreciacion.POST("/calcular", depreciacionHandler.Calcular)
			depreciacion.GET("/exportar/:periodo", depreciacionHandler.ExportarExcel)
			depreciacion.GET("/exportar/:periodo/pdf", depreciacionHandler.ExportarPDF)
		}

		reportes := apiGroup.Group("/reportes")
		{
			reportes.GET("/:formato/:periodo", reporteHandler.Get)
			reportes.POST("/:formato/:periodo/excel", reporteHandler.Excel)
		}

		// subida y generación limitadas por IP
		uploadLimit := middleware.RateLimit(cfg.Limits.UploadPerMinute, time.Minute)
		plantillas := apiGroup.Group("/plantillas")
		{
			plantillas.GET("", plantillaHandler.List)
			plantillas.POST("", uploadLimit, plantillaHandler.Upload)
			plantillas.GET("/:id", plantillaHandler.Preview)
			plantillas.DELETE("/:id", plantillaHandler.Delete)
			plantillas.POST("/:id/generar", uploadLimit, plantillaHandler.Generar)
		}
	}

	return r
}
