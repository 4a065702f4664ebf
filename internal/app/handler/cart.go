package handler

import (
	"errors"
	"net/http"
	"strconv"

	"littlelemon/internal/app/auth"
	"littlelemon/internal/app/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type cartAddDTO struct {
	MenuItemID int `json:"menuitem" binding:"required"`
	Quantity   int `json:"quantity"`
}

type cartQuantityDTO struct {
	Quantity int `json:"quantity" binding:"required"`
}

// ApiGetCart godoc
// @Summary      Get cart
// @Description  Get current user's cart items
// @Tags         Cart
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Failure      401 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /api/cart/menu-items [get]
func (h *Handler) ApiGetCart(c *gin.Context) {
	user, err := auth.GetUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	items, err := h.Repository.GetCartItems(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// ApiAddToCart godoc
// @Summary      Add item to cart
// @Description  Add menu item to cart, re-adding replaces the quantity
// @Tags         Cart
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body cartAddDTO true "Cart item"
// @Success      201 {object} repository.CartItem
// @Failure      400 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/cart/menu-items [post]
func (h *Handler) ApiAddToCart(c *gin.Context) {
	user, err := auth.GetUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var in cartAddDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
		return
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}
	item, err := h.Repository.AddToCart(user.ID, in.MenuItemID, in.Quantity)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// ApiUpdateCartItem godoc
// @Summary      Update cart item quantity
// @Tags         Cart
// @Security     BearerAuth
// @Accept       json
// @Param        id path int true "Cart item ID"
// @Param        request body cartQuantityDTO true "New quantity"
// @Success      204
// @Failure      400 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/cart/menu-items/{id} [put]
func (h *Handler) ApiUpdateCartItem(c *gin.Context) {
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
	var in cartQuantityDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
		return
	}
	if err := h.Repository.UpdateCartItemQuantity(user.ID, id, in.Quantity); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// ApiDeleteCartItem godoc
// @Summary      Delete cart item
// @Tags         Cart
// @Security     BearerAuth
// @Param        id path int true "Cart item ID"
// @Success      204
// @Failure      400 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/cart/menu-items/{id} [delete]
func (h *Handler) ApiDeleteCartItem(c *gin.Context) {
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
	if err := h.Repository.DeleteCartItem(user.ID, id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ApiClearCart godoc
// @Summary      Clear cart
// @Description  Remove all items from the current user's cart
// @Tags         Cart
// @Security     BearerAuth
// @Success      204
// @Failure      401 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /api/cart/menu-items [delete]
func (h *Handler) ApiClearCart(c *gin.Context) {
	user, err := auth.GetUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	if err := h.Repository.ClearCart(user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Status(http.StatusNoContent)
}
