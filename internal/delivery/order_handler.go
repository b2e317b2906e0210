package delivery

import (
	"jersey_store/internal/domain"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type OrderHandler struct {
	useCase domain.OrderUseCase
	log     *logrus.Logger
}

func NewOrderHandler(uc domain.OrderUseCase, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *OrderHandler) RegisterRoutes(router gin.IRouter) {
	orders := router.Group("/api/orders")
	{
		orders.POST("", h.CreateOrder)
	}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var order domain.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		h.log.Errorf("Failed to bind JSON for create order: %v", err)
		ErrorResponse(c, http.StatusUnprocessableEntity, "Invalid request body: "+err.Error())
		return
	}

	id, err := h.useCase.CreateOrder(c.Request.Context(), &order)
	if err != nil {
		h.log.Errorf("Failed to create order for customer '%s': %v", order.CustomerName, err)
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.log.Infof("Order created successfully: ID %s, customer '%s'", id, order.CustomerName)
	c.JSON(http.StatusOK, gin.H{"_id": id, "status": "received"})
}
