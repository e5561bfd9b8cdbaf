package routes

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	_ "lpu_quotation/docs" // swagger docs registration
	"lpu_quotation/internal/adapter/http/handlers"
	"lpu_quotation/internal/adapter/http/middleware"
	"lpu_quotation/internal/adapter/persistence/memory"
	"lpu_quotation/internal/adapter/persistence/repository"
	"lpu_quotation/internal/infrastructure/catalogdata"
	"lpu_quotation/internal/infrastructure/clock"
	"lpu_quotation/internal/infrastructure/database"
	"lpu_quotation/internal/infrastructure/token"
	"lpu_quotation/internal/usecase"
	"lpu_quotation/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	StoreDynamoDB = "dynamodb"
	StoreMemory   = "memory"
)

// Run will start the server
func Run() {
	router, err := NewRouter(context.Background())
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}

	port := getenvDefault("PORT", "8080")
	log.Printf("[http][server] listening port=%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter wires stores, use cases and handlers from the environment.
func NewRouter(ctx context.Context) (*gin.Engine, error) {
	lpus, suppliers, err := newStores(ctx)
	if err != nil {
		return nil, err
	}

	cat, err := catalogdata.Load()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	tokenLength := token.DefaultLength
	if raw := os.Getenv("QUOTE_TOKEN_LENGTH"); raw != "" {
		if tokenLength, err = strconv.Atoi(raw); err != nil {
			return nil, fmt.Errorf("QUOTE_TOKEN_LENGTH: %w", err)
		}
	}
	tokens, err := token.NewGenerator(tokenLength)
	if err != nil {
		return nil, err
	}

	sysClock := clock.System{}
	lpuHandler := handlers.NewLPUHandler(usecase.NewLPUUseCase(lpus, suppliers, cat, sysClock, tokens))
	supplierHandler := handlers.NewSupplierHandler(usecase.NewSupplierUseCase(suppliers, sysClock))
	portalHandler := handlers.NewSupplierPortalHandler(usecase.NewSupplierPortalUseCase(lpus, suppliers, cat, sysClock))
	catalogHandler := handlers.NewCatalogHandler(cat)

	loginLimiter := middleware.NewIPRateLimiter(
		getenvInt("SUPPLIER_LOGIN_RATE", 10),
		getenvInt("SUPPLIER_LOGIN_BURST", 5),
	)
	// Filling a quotation is one request per field, so writes get their own, larger budget.
	writeLimiter := middleware.NewIPRateLimiter(
		getenvInt("SUPPLIER_WRITE_RATE", 600),
		getenvInt("SUPPLIER_WRITE_BURST", 120),
	)

	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Rotas internas
	protected := v1.Group("", middleware.JWTAuth(os.Getenv("JWT_SECRET")))
	addLPURoutes(protected, lpuHandler)
	addSupplierRoutes(protected, supplierHandler)
	addCatalogRoutes(protected, catalogHandler)

	// Rotas publicas
	addSupplierPortalRoutes(v1, portalHandler, loginLimiter, writeLimiter)

	log.Printf("[http][server] routes ready catalog_entries=%d token_length=%d", len(cat.Entries()), tokenLength)
	return router, nil
}

func newStores(ctx context.Context) (interfaces.ILPURepository, interfaces.ISupplierDirectory, error) {
	switch store := getenvDefault("LPU_STORE", StoreDynamoDB); store {
	case StoreMemory:
		log.Printf("[http][server] store=memory (data is lost on restart)")
		return memory.NewLPUStore(), memory.NewSupplierStore(), nil
	case StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, nil, err
		}
		if os.Getenv("DYNAMODB_CREATE_TABLES") == "true" {
			if err := database.EnsureTables(ctx, ddb, database.LPUTables()); err != nil {
				return nil, nil, err
			}
		}
		return repository.NewLPUDynamoRepository(ddb), repository.NewSupplierDynamoRepository(ddb), nil
	default:
		return nil, nil, fmt.Errorf("unknown LPU_STORE %q", store)
	}
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.RequestID())
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v request_id=%s", recovered, c.GetString(middleware.ContextRequestID))
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}
