package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"littlelemon/internal/app/auth"
	"littlelemon/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// GetMenuPage: главная страница с меню и поиском
func (h *Handler) GetMenuPage(ctx *gin.Context) {
	counter := 0
	if user, err := auth.GetUserFromContext(ctx); err == nil {
		if cnt, err := h.Repository.CountCartItems(user.ID); err == nil {
			counter = cnt
		}
	}

	searchQuery := strings.TrimSpace(ctx.Query("search"))
	items, _, err := h.Repository.GetMenuItems(repository.MenuFilter{Search: searchQuery})
	if err != nil {
		logrus.Error(err)
		ctx.String(http.StatusInternalServerError, "internal error")
		return
	}

	featured := make([]repository.MenuItem, 0)
	for _, item := range items {
		if item.Featured {
			featured = append(featured, item)
		}
	}

	ctx.HTML(http.StatusOK, "menu_list.html", gin.H{
		"items":     items,
		"featured":  featured,
		"query":     searchQuery,
		"counter":   counter,
		"timestamp": time.Now().Unix(),
	})
}

// GetMenuItemPage: страница блюда
func (h *Handler) GetMenuItemPage(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id <= 0 {
		ctx.String(http.StatusBadRequest, "invalid id")
		return
	}
	item, err := h.Repository.GetMenuItem(id)
	if err != nil {
		ctx.String(http.StatusNotFound, "not found")
		return
	}
	ctx.HTML(http.StatusOK, "menu_item.html", gin.H{
		"item":      item,
		"timestamp": time.Now().Unix(),
	})
}
