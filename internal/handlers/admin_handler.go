package handlers

import (
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/services"
)

type AdminHandler struct {
	adminService   services.AdminService
	catalogService services.CatalogService
	uploadDir      string
}

func NewAdminHandler(adminService services.AdminService, catalogService services.CatalogService, uploadDir string) *AdminHandler {
	return &AdminHandler{
		adminService:   adminService,
		catalogService: catalogService,
		uploadDir:      uploadDir,
	}
}

func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.adminService.GetStats()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders, err := h.adminService.ListOrders()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminService.ListCustomers()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) ListOrderItems(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		abortWithError(c, apperrors.Validation("invalid order id"))
		return
	}

	items, err := h.adminService.ListOrderItems(uint(id))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateItem accepts a multipart form with the item fields and an image
// file. The image is stored under a generated unique filename.
func (h *AdminHandler) CreateItem(c *gin.Context) {
	name := c.PostForm("name")
	description := c.PostForm("description")
	category := c.PostForm("category")

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		abortWithError(c, apperrors.Validation("invalid price"))
		return
	}
	quantity, err := strconv.Atoi(c.PostForm("quantity"))
	if err != nil {
		abortWithError(c, apperrors.Validation("invalid quantity"))
		return
	}

	var imageName string
	if file, err := c.FormFile("file"); err == nil {
		imageName = uuid.NewString() + filepath.Ext(file.Filename)
		if err := c.SaveUploadedFile(file, filepath.Join(h.uploadDir, imageName)); err != nil {
			abortWithError(c, err)
			return
		}
	}

	item, err := h.catalogService.CreateItem(name, description, price, quantity, category, imageName)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}
