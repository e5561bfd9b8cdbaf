package routes

import (
	"lpu_quotation/internal/adapter/http/handlers"
	"lpu_quotation/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathLPUs           = "/lpus"
	PathSuppliers      = "/suppliers"
	PathCatalog        = "/catalog"
	PathSupplierPortal = "/public/supplier"
)

func addLPURoutes(rg *gin.RouterGroup, h *handlers.LPUHandler) {
	lpus := rg.Group(PathLPUs)
	{
		lpus.POST("", h.CreateLPU)
		lpus.GET("", h.ListLPUs)
		lpus.GET("/:id", h.GetLPU)
		lpus.PUT("/:id", h.UpdateLPU)
		lpus.DELETE("/:id", h.DeleteLPU)

		// Edicao do rascunho.
		lpus.PATCH("/:id/items/:item_id", h.SetItemValues)
		lpus.PUT("/:id/selection", h.ReplaceSelection)
		lpus.POST("/:id/selection/groups/:group_id/toggle", h.ToggleGroupSelection)
		lpus.POST("/:id/selection/items/:item_id/toggle", h.ToggleItemSelection)

		// Rodadas de cotacao e revisoes.
		lpus.POST("/:id/round", h.OpenRound)
		lpus.DELETE("/:id/round", h.CancelRound)
		lpus.POST("/:id/revision", h.RequestRevision)
		lpus.POST("/:id/approve", h.Approve)
		lpus.GET("/:id/revisions", h.ListRevisions)
		lpus.GET("/:id/revisions/compare", h.CompareRevisions)
	}
}

func addSupplierRoutes(rg *gin.RouterGroup, h *handlers.SupplierHandler) {
	suppliers := rg.Group(PathSuppliers)
	{
		suppliers.POST("", h.CreateSupplier)
		suppliers.GET("", h.ListSuppliers)
		suppliers.GET("/:id", h.GetSupplier)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("", h.ListCatalog)
		catalog.GET("/groups/:group_id", h.GetGroup)
	}
}

// addSupplierPortalRoutes registers the public supplier surface. Login and writes are throttled
// per client IP from separate buckets.
func addSupplierPortalRoutes(rg *gin.RouterGroup, h *handlers.SupplierPortalHandler, login, writes *middleware.IPRateLimiter) {
	portal := rg.Group(PathSupplierPortal)
	{
		portal.POST("/login", login.Middleware(), h.Login)

		quotation := portal.Group("/lpus/:id", writes.Middleware())
		quotation.PUT("/items/:item_id/price", h.SetPrice)
		quotation.PUT("/items/:item_id/quantity", h.SetQuantity)
		quotation.POST("/submit", h.Submit)
	}
}
