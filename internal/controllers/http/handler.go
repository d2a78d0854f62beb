package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"backoffice-service/internal/domain"
	"backoffice-service/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *services.OrderService
	db      *gorm.DB
}

func NewHandler(s *services.OrderService, db *gorm.DB) *Handler {
	return &Handler{service: s, db: db}
}

// RegisterRoutes mounts the API. Reads are open; everything that mutates an
// order sits behind the bearer-token gate, matching how the storefront's
// admin panel authenticates.
func (h *Handler) RegisterRoutes(r *gin.Engine, authRequired gin.HandlerFunc) {
	r.GET("/health", h.Health)

	api := r.Group("/api")
	api.GET("/orders", h.ListOrders)
	api.GET("/orders/statistics", h.Statistics)
	api.GET("/orders/search", h.SearchOrders)
	api.GET("/orders/status/:status", h.ListByStatus)
	api.GET("/orders/customer/:customerId", h.ListByCustomer)
	api.GET("/orders/:id", h.GetOrder)

	protected := api.Group("", authRequired)
	protected.POST("/orders", h.CreateOrder)
	protected.PUT("/orders/:id", h.UpdateOrder)
	protected.PUT("/orders/:id/status", h.UpdateOrderStatus)
	protected.DELETE("/orders/:id", h.DeleteOrder)
}

func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.service.ListOrders(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, successList(orders, len(orders)))
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	order, err := h.service.GetOrder(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, success(order))
}

func (h *Handler) ListByStatus(c *gin.Context) {
	status := domain.OrderStatus(c.Param("status"))
	orders, err := h.service.ListByStatus(c.Request.Context(), status)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, successList(orders, len(orders)))
}

func (h *Handler) ListByCustomer(c *gin.Context) {
	customerID, ok := parseID(c, "customerId")
	if !ok {
		return
	}

	orders, err := h.service.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, successList(orders, len(orders)))
}

func (h *Handler) SearchOrders(c *gin.Context) {
	orders, err := h.service.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, successList(orders, len(orders)))
}

func (h *Handler) Statistics(c *gin.Context) {
	stats, err := h.service.Statistics(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, success(stats))
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail(err.Error()))
		return
	}

	order, err := h.service.CreateOrder(c.Request.Context(), req.CustomerID, req.AddressID, req.Total, domain.OrderStatus(req.Status))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, success(order))
}

func (h *Handler) UpdateOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail(err.Error()))
		return
	}

	var status *domain.OrderStatus
	if req.Status != nil {
		s := domain.OrderStatus(*req.Status)
		status = &s
	}

	order, err := h.service.UpdateOrder(c.Request.Context(), id, status, req.Total)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, success(order))
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail("estado is required"))
		return
	}

	order, err := h.service.UpdateStatus(c.Request.Context(), id, domain.OrderStatus(req.Status))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, success(order))
}

func (h *Handler) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteOrder(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, Response{Success: true})
}

func (h *Handler) Health(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		log.Printf("health check failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, fail("database unreachable"))
		return
	}
	c.JSON(http.StatusOK, success(gin.H{"database": "connected"}))
}

// respondError maps service errors onto the envelope. Unexpected errors stay
// server-side: the caller only sees a generic message.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, fail("order not found"))
	case errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrEmptySearch),
		errors.Is(err, services.ErrEmptyUpdate),
		errors.Is(err, services.ErrInvalidTotal):
		c.JSON(http.StatusBadRequest, fail(err.Error()))
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, fail("internal server error"))
	}
}

func parseID(c *gin.Context, param string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, fail("invalid "+param))
		return 0, false
	}
	return id, true
}
