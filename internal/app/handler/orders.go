package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"littlelemon/internal/app/auth"
	"littlelemon/internal/app/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func orderScope(u repository.PublicUser) repository.OrderScope {
	return repository.OrderScope{
		UserID:           u.ID,
		IsManagerOrStaff: u.IsManager || u.IsStaff,
		IsDeliveryCrew:   u.IsDeliveryCrew,
	}
}

// ApiListOrders godoc
// @Summary      List orders
// @Description  Customers see their own orders, delivery crew see assigned orders, managers see all
// @Tags         Orders
// @Security     BearerAuth
// @Produce      json
// @Param        status query bool false "Filter by status (false=pending, true=delivered)"
// @Param        date query string false "Filter by date YYYY-MM-DD"
// @Param        ordering query string false "date, -date, total, -total"
// @Success      200 {object} map[string]interface{}
// @Failure      401 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /api/orders [get]
func (h *Handler) ApiListOrders(c *gin.Context) {
	user, err := auth.GetUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var f repository.OrderFilter
	if v := c.Query("status"); v != "" {
		status := v == "true" || v == "1"
		f.Status = &status
	}
	if v := strings.TrimSpace(c.Query("date")); v != "" {
		f.Date = &v
	}
	f.OrderBy = strings.TrimSpace(c.Query("ordering"))

	orders, err := h.Repository.ListOrders(orderScope(user), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": orders})
}

// ApiGetOrder godoc
// @Summary      Get order by ID
// @Tags         Orders
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Order ID"
// @Success      200 {object} repository.Order
// @Failure      400 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/orders/{id} [get]
func (h *Handler) ApiGetOrder(c *gin.Context) {
	user, err := auth.GetUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	visible, err := h.Repository.IsOrderVisible(orderScope(user), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if !visible {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	o, err := h.Repository.GetOrder(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, o)
}

// ApiCreateOrder godoc
// @Summary      Place order
// @Description  Create order from the current cart: items are copied, cart is emptied
// @Tags         Orders
// @Security     BearerAuth
// @Produce      json
// @Success      201 {object} repository.Order
// @Failure      400 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /api/orders [post]
func (h *Handler) ApiCreateOrder(c *gin.Context) {
	user, err := auth.GetUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	o, err := h.Repository.CreateOrderFromCart(user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusCreated, o)
}

type orderUpdateDTO struct {
	Status       *bool  `json:"status"`
	DeliveryCrew *int64 `json:"deliveryCrew"`
}

// ApiUpdateOrder godoc
// @Summary      Update order
// @Description  Delivery crew may update status only, managers may update status and crew
// @Tags         Orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Order ID"
// @Param        request body orderUpdateDTO true "Update data"
// @Success      200 {object} repository.Order
// @Failure      400 {object} map[string]string
// @Failure      403 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/orders/{id} [put]
func (h *Handler) ApiUpdateOrder(c *gin.Context) {
	user, err := auth.GetUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var in orderUpdateDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
		return
	}

	// Курьер видит только назначенные ему заказы, чужие для него не существуют
	visible, err := h.Repository.IsOrderVisible(orderScope(user), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if !visible {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	// Курьер может менять только статус
	isCrewOnly := user.IsDeliveryCrew && !user.IsManager && !user.IsStaff
	if isCrewOnly && in.DeliveryCrew != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "delivery crew cannot assign orders"})
		return
	}

	if in.DeliveryCrew != nil {
		if err := h.Repository.AssignDeliveryCrew(id, *in.DeliveryCrew); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "user not found or not in delivery crew"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
	}
	if in.Status != nil {
		if err := h.Repository.UpdateOrderStatus(id, *in.Status); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
	}

	o, err := h.Repository.GetOrder(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, o)
}

type assignCrewDTO struct {
	DeliveryCrewID *int64 `json:"delivery_crew_id"`
}

// ApiAssignDeliveryCrew godoc
// @Summary      Assign delivery crew
// @Description  Assign order to a Delivery crew member (manager only)
// @Tags         Orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Order ID"
// @Param        request body assignCrewDTO true "Delivery crew user ID"
// @Success      200 {object} repository.Order
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/orders/{id}/assign-delivery-crew [patch]
func (h *Handler) ApiAssignDeliveryCrew(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var in assignCrewDTO
	if err := c.ShouldBindJSON(&in); err != nil || in.DeliveryCrewID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "delivery_crew_id is required"})
		return
	}
	if err := h.Repository.AssignDeliveryCrew(id, *in.DeliveryCrewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found or not in delivery crew"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	o, err := h.Repository.GetOrder(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, o)
}
