package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/services"
)

type CatalogHandler struct {
	catalogService services.CatalogService
}

func NewCatalogHandler(catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) ListItems(c *gin.Context) {
	items, err := h.catalogService.ListItems()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetItemOrCategory serves both /items/:key forms: an all-digit key is
// an item id lookup, anything else a category filter.
func (h *CatalogHandler) GetItemOrCategory(c *gin.Context) {
	key := c.Param("key")

	if id, err := strconv.ParseUint(key, 10, 32); err == nil {
		item, err := h.catalogService.GetItem(uint(id))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
		return
	}

	items, err := h.catalogService.ListByCategory(key)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *CatalogHandler) SearchItems(c *gin.Context) {
	items, err := h.catalogService.SearchItems(c.Query("q"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
