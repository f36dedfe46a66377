package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/caffeinepub/supply-chain-management-app/internal/config"
	"github.com/caffeinepub/supply-chain-management-app/internal/handler"
	"github.com/caffeinepub/supply-chain-management-app/internal/infra"
	"github.com/caffeinepub/supply-chain-management-app/internal/middleware"
	"github.com/caffeinepub/supply-chain-management-app/internal/repository"
	"github.com/caffeinepub/supply-chain-management-app/internal/service"
	"github.com/caffeinepub/supply-chain-management-app/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, mailCB *infra.CircuitBreaker, dispatcher *worker.Dispatcher) *gin.Engine {
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
	vendorRepo := repository.NewVendorRepository(db)
	requestRepo := repository.NewQuotationRequestRepository(db)
	quotationRepo := repository.NewQuotationRepository(db)
	requisitionRepo := repository.NewRequisitionRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	vendorSvc := service.NewVendorService(vendorRepo, rdb)
	quotationSvc := service.NewQuotationService(requestRepo, quotationRepo)
	requisitionSvc := service.NewRequisitionService(requisitionRepo, rdb, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	vendorsH := handler.NewVendorsHandler(vendorSvc)
	requestsH := handler.NewQuotationRequestsHandler(quotationSvc)
	quotationsH := handler.NewQuotationsHandler(quotationSvc)
	requisitionsH := handler.NewRequisitionsHandler(requisitionSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb, mailCB))

	v1 := r.Group("/v1")
	{
		vendors := v1.Group("/vendors")
		{
			vendors.POST("", vendorsH.Create)
			vendors.GET("", vendorsH.List)
			vendors.GET("/:id", vendorsH.GetByID)
			vendors.PUT("/:id", vendorsH.Update)
			vendors.DELETE("/:id", vendorsH.Delete)
		}

		requests := v1.Group("/quotation-requests")
		{
			requests.POST("", requestsH.Create)
			requests.GET("", requestsH.List)
			requests.GET("/:id", requestsH.GetByID)
			requests.PATCH("/:id/status", requestsH.UpdateStatus)
			requests.GET("/:id/quotations", requestsH.ListQuotations)
		}

		quotations := v1.Group("/quotations")
		{
			quotations.POST("", quotationsH.Submit)
			quotations.PATCH("/:id/status", quotationsH.UpdateStatus)
		}

		requisitions := v1.Group("/requisitions")
		{
			requisitions.POST("", requisitionsH.Create)
			requisitions.GET("", requisitionsH.List)
			requisitions.GET("/pending", requisitionsH.ListPending)
			requisitions.GET("/:id", requisitionsH.GetByID)
			requisitions.PUT("/:id", requisitionsH.Update)
			requisitions.DELETE("/:id", requisitionsH.Delete)
			requisitions.POST("/:id/submit", requisitionsH.Submit)
			requisitions.POST("/:id/approve", requisitionsH.Approve)
			requisitions.POST("/:id/reject", requisitionsH.Reject)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
