package handlers

import (
	"net/http"
	"strings"

	response "lpu_quotation/internal/adapter/http/dto/response"
	"lpu_quotation/internal/domain/catalog"
	"lpu_quotation/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the read-only standard item catalog.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// ListCatalog returns every entry in catalog order. With ?selected=1.1.2,2.1 only those leaves
// and their headers are returned.
func (h *CatalogHandler) ListCatalog(c *gin.Context) {
	raw := strings.TrimSpace(c.Query("selected"))
	if raw == "" {
		c.JSON(http.StatusOK, response.FromCatalogEntries(h.catalog.Entries()))
		return
	}
	selected := strings.Split(raw, ",")
	for i := range selected {
		selected[i] = strings.TrimSpace(selected[i])
	}
	if err := h.catalog.ValidateLeaves(selected); err != nil {
		writeError(c, errInvalidRequest.WithField("selected"))
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogEntries(h.catalog.VisibleTree(selected)))
}

func (h *CatalogHandler) GetGroup(c *gin.Context) {
	groupID := c.Param("group_id")
	entry, ok := h.catalog.Get(groupID)
	if !ok || !entry.IsGroup {
		writeError(c, pkg.NewDomainErrorSimple("GROUP_NOT_FOUND", "Catalog group not found", http.StatusNotFound))
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogEntries(h.catalog.EntriesOf(groupID)))
}
