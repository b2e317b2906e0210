package delivery

import (
	"jersey_store/internal/domain"
	"jersey_store/internal/usecase"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	useCase domain.CatalogUseCase
	log     *logrus.Logger
}

func NewProductHandler(uc domain.CatalogUseCase, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	products := router.Group("/api/products")
	{
		products.GET("", h.ListProducts)
		products.POST("", h.CreateProduct)
	}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	query := c.Query("q")

	limitStr := c.DefaultQuery("limit", strconv.Itoa(usecase.DefaultListLimit))
	limit, err := strconv.ParseInt(limitStr, 10, 64)
	if err != nil || limit <= 0 {
		h.log.Warnf("Invalid limit parameter '%s', using default %d", limitStr, usecase.DefaultListLimit)
		limit = usecase.DefaultListLimit
	}

	products, err := h.useCase.ListProducts(c.Request.Context(), query, limit)
	if err != nil {
		h.log.Errorf("Failed to list products (query: %q): %v", query, err)
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	if products == nil {
		products = []map[string]any{}
	}
	h.log.Infof("Listed %d products (query: %q, limit: %d)", len(products), query, limit)
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var product domain.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		h.log.Errorf("Failed to bind JSON for create product: %v", err)
		ErrorResponse(c, http.StatusUnprocessableEntity, "Invalid request body: "+err.Error())
		return
	}

	id, err := h.useCase.CreateProduct(c.Request.Context(), &product)
	if err != nil {
		h.log.Errorf("Failed to create product '%s': %v", product.Title, err)
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.log.Infof("Product created successfully: ID %s, Title '%s'", id, product.Title)
	c.JSON(http.StatusOK, gin.H{"_id": id})
}
